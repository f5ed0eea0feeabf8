package vm

// ReadableStreamTag identifies one of the fixed, hand-written native entry
// points reachable through lazy dispatch. The numbering is part of the
// contract with generated builtin source and must not change.
type ReadableStreamTag int32

const (
	// StreamTagInvalid is a sentinel. It is never dispatched.
	StreamTagInvalid ReadableStreamTag = -1

	// StreamTagJavaScript marks a script-implemented stream controller.
	// It is a placeholder in the numbering space, not a dispatch target.
	StreamTagJavaScript ReadableStreamTag = 0

	// StreamTagBlob selects the blob-backed stream source loader.
	StreamTagBlob ReadableStreamTag = 1

	// StreamTagFile selects the file-backed stream source loader.
	StreamTagFile ReadableStreamTag = 2

	// StreamTagDirect marks a direct stream. Placeholder, not dispatched.
	StreamTagDirect ReadableStreamTag = 3

	// StreamTagBytes selects the generic byte-stream source loader.
	StreamTagBytes ReadableStreamTag = 4
)

// Dispatchable reports whether the tag names a loader the dispatcher may
// invoke. The placeholders and the sentinel are valid enum members but are
// never legal dispatch tokens.
func (t ReadableStreamTag) Dispatchable() bool {
	switch t {
	case StreamTagBlob, StreamTagFile, StreamTagBytes:
		return true
	}
	return false
}

func (t ReadableStreamTag) String() string {
	switch t {
	case StreamTagInvalid:
		return "Invalid"
	case StreamTagJavaScript:
		return "JavaScript"
	case StreamTagBlob:
		return "Blob"
	case StreamTagFile:
		return "File"
	case StreamTagDirect:
		return "Direct"
	case StreamTagBytes:
		return "Bytes"
	}
	return "ReadableStreamTag(?)"
}
