package vm

import "io"

// pendingStream is the stream binding the engine stages on a context before
// evaluating builtin code that loads a stream source. Exactly one field is
// set at a time.
type pendingStream struct {
	blob   []byte
	path   string
	reader io.Reader
	kind   ReadableStreamTag
}

// Context is one execution thread's view of the runtime. Natives receive
// the active context and run synchronously on its goroutine. A Context is
// not safe for concurrent use; create one per execution thread.
type Context struct {
	rt      *Runtime
	pending *pendingStream
}

// NewContext creates an execution context bound to the runtime.
func (rt *Runtime) NewContext() *Context {
	return &Context{rt: rt}
}

// Runtime returns the owning runtime.
func (ctx *Context) Runtime() *Runtime {
	return ctx.rt
}

// StageBlob stages an in-memory payload for the next blob-source load.
func (ctx *Context) StageBlob(data []byte) {
	ctx.pending = &pendingStream{blob: data, kind: StreamTagBlob}
}

// StageFile stages a file path for the next file-source load.
func (ctx *Context) StageFile(path string) {
	ctx.pending = &pendingStream{path: path, kind: StreamTagFile}
}

// StageReader stages a reader for the next byte-stream source load.
func (ctx *Context) StageReader(r io.Reader) {
	ctx.pending = &pendingStream{reader: r, kind: StreamTagBytes}
}

// takePending consumes the staged binding, if any.
func (ctx *Context) takePending() *pendingStream {
	p := ctx.pending
	ctx.pending = nil
	return p
}
