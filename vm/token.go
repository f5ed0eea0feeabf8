package vm

import "fmt"

// TokenKind discriminates the two valid lazy-token domains plus the
// explicit invalid case.
type TokenKind uint8

const (
	// TokenTableIndex routes to the generated native pointer table.
	TokenTableIndex TokenKind = iota
	// TokenTag routes to one of the reserved stream-source loaders.
	TokenTag
	// TokenInvalid covers everything else, including the non-dispatched
	// placeholders and the Invalid sentinel.
	TokenInvalid
)

// Token is a decoded lazy-dispatch token. Raw tokens are signed integers
// embedded in generated or hand-written builtin source: negative values
// index the generated table, a small set of non-negative values name
// reserved loaders, and nothing else is ever produced by a conforming
// caller. Decoding happens once at the dispatch boundary so the two
// numbering spaces stay explicit instead of arithmetic-derived.
type Token struct {
	Kind  TokenKind
	Raw   int32
	Index int               // table slot, valid when Kind == TokenTableIndex
	Tag   ReadableStreamTag // loader tag, valid when Kind == TokenTag
}

// DecodeToken classifies a raw lazy token. A negative raw value t maps to
// table slot -t-1. Non-negative values are matched against the dispatchable
// reserved tags; anything else decodes as invalid.
func DecodeToken(raw int32) Token {
	if raw < 0 {
		// Widen before negating: -math.MinInt32 overflows in int32.
		return Token{Kind: TokenTableIndex, Raw: raw, Index: -int(raw) - 1, Tag: StreamTagInvalid}
	}
	tag := ReadableStreamTag(raw)
	if tag.Dispatchable() {
		return Token{Kind: TokenTag, Raw: raw, Tag: tag}
	}
	return Token{Kind: TokenInvalid, Raw: raw, Tag: StreamTagInvalid}
}

func (t Token) String() string {
	switch t.Kind {
	case TokenTableIndex:
		return fmt.Sprintf("table[%d]", t.Index)
	case TokenTag:
		return fmt.Sprintf("tag(%s)", t.Tag)
	}
	return fmt.Sprintf("invalid(%d)", t.Raw)
}
