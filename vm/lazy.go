package vm

import "fmt"

// Dispatch resolves a lazy token and invokes the native it names, returning
// the native's result unchanged. This is the implementation behind the
// compiler-emitted lazy-dispatch call in builtin source: trusted, hot-path
// code, so the success path takes no locks, does no logging, and allocates
// nothing of its own.
//
// Negative tokens index the generated pointer table at -t-1. With
// dispatch.checked off (the default), that index is used with no bounds
// check; the invariant is enforced by the code generator, not here. With
// dispatch.checked on, an out-of-range or empty slot halts with a
// generator-bug diagnostic instead of a raw panic.
//
// Non-negative tokens must match a dispatchable reserved tag. Anything
// else, including the placeholder and sentinel tag values, halts the
// runtime: no error is ever returned to calling code.
func Dispatch(ctx *Context, token Value) Value {
	rt := ctx.rt

	if rt.cfg.Dispatch.DebugAsserts && !token.IsInt() {
		panic(fmt.Sprintf("lazy dispatch: expected integer token, got %s", token.String()))
	}

	tok := DecodeToken(int32(token.AsInt()))
	switch tok.Kind {
	case TokenTableIndex:
		if rt.cfg.Dispatch.Checked {
			if tok.Index >= rt.natives.Len() || rt.natives.fns[tok.Index] == nil {
				rt.halt(&HaltError{
					Cause:  HaltGeneratorBug,
					Token:  tok.Raw,
					Detail: fmt.Sprintf("slot %d not in generated table (%d entries)", tok.Index, rt.natives.Len()),
				})
			}
		}
		return rt.natives.fns[tok.Index](ctx)

	case TokenTag:
		switch tok.Tag {
		case StreamTagBlob:
			return loadBlobSource(ctx)
		case StreamTagFile:
			return loadFileSource(ctx)
		case StreamTagBytes:
			return loadByteSource(ctx)
		}
	}

	rt.halt(&HaltError{
		Cause:  HaltExternalMisuse,
		Token:  tok.Raw,
		Detail: "token matches no reserved tag; lazy dispatch is only callable from runtime-controlled source",
	})
	return NilValue() // unreachable, halt does not return
}

// DispatchRaw is Dispatch for callers that already hold the decoded integer,
// such as the bytecode interpreter's lazy-call opcode.
func DispatchRaw(ctx *Context, raw int32) Value {
	return Dispatch(ctx, IntValue(int64(raw)))
}
