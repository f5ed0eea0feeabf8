package vm

// NativeFn is a lazily bound native entry point. It runs synchronously on
// the calling context's goroutine and returns its result as an ordinary
// value; the caller cannot tell it apart from a compile-time-resolved call.
type NativeFn func(*Context) Value

// NativeTable is the generated pointer table: a dense, zero-based array of
// native entry points, one per compiler-generated lazy binding. It is built
// once before the first dispatch and never mutated afterwards, so any number
// of contexts may read it concurrently without locking.
type NativeTable struct {
	fns   []NativeFn
	names []string
}

// NewNativeTable builds an immutable table from the generated entry list.
// names carries the generator's symbol name for each slot and is used only
// for diagnostics; it may be shorter than fns in stripped builds.
func NewNativeTable(fns []NativeFn, names []string) *NativeTable {
	t := &NativeTable{
		fns:   make([]NativeFn, len(fns)),
		names: make([]string, len(names)),
	}
	copy(t.fns, fns)
	copy(t.names, names)
	return t
}

// Len returns the number of generated bindings.
func (t *NativeTable) Len() int {
	return len(t.fns)
}

// Name returns the generator symbol name for a slot, or "" when unknown.
func (t *NativeTable) Name(i int) string {
	if i < 0 || i >= len(t.names) {
		return ""
	}
	return t.names[i]
}

// TokenFor returns the raw lazy token for a table slot.
func (t *NativeTable) TokenFor(i int) int32 {
	return int32(-(i + 1))
}
