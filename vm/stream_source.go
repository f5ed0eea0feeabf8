package vm

import (
	"io"
	"os"
)

// StreamSource is the native backing object for one readable byte-stream
// flavor. Pull returns the next chunk, or (nil, io.EOF) when the stream is
// exhausted. Sources are single-consumer.
type StreamSource interface {
	Flavor() ReadableStreamTag
	Pull() ([]byte, error)
	Close() error
}

// ---------------------------------------------------------------------------
// Blob-backed source
// ---------------------------------------------------------------------------

// BlobSource serves an in-memory payload in a single pull. The blob loader
// skips the generic chunking machinery entirely: the whole payload is
// already resident, so the first pull hands it over and the stream ends.
type BlobSource struct {
	data    []byte
	drained bool
}

// NewBlobSource creates a blob-backed source over data. The source does not
// copy data; the engine stages an owned snapshot.
func NewBlobSource(data []byte) *BlobSource {
	return &BlobSource{data: data}
}

func (s *BlobSource) Flavor() ReadableStreamTag { return StreamTagBlob }

func (s *BlobSource) Pull() ([]byte, error) {
	if s.drained {
		return nil, io.EOF
	}
	s.drained = true
	if len(s.data) == 0 {
		return nil, io.EOF
	}
	return s.data, nil
}

func (s *BlobSource) Close() error {
	s.data = nil
	s.drained = true
	return nil
}

// ---------------------------------------------------------------------------
// File-backed source
// ---------------------------------------------------------------------------

// FileSource serves a file in fixed-size chunks. The file is opened on the
// first pull, not at construction, so loading the source never fails; open
// and read errors surface through Pull like any other stream error.
type FileSource struct {
	path   string
	chunk  int
	f      *os.File
	opened bool
}

// NewFileSource creates a file-backed source reading chunk-sized pulls.
func NewFileSource(path string, chunk int) *FileSource {
	return &FileSource{path: path, chunk: chunk}
}

func (s *FileSource) Flavor() ReadableStreamTag { return StreamTagFile }

// Path returns the backing file path.
func (s *FileSource) Path() string { return s.path }

func (s *FileSource) Pull() ([]byte, error) {
	if !s.opened {
		f, err := os.Open(s.path)
		if err != nil {
			return nil, err
		}
		s.f = f
		s.opened = true
	}
	buf := make([]byte, s.chunk)
	n, err := s.f.Read(buf)
	if n > 0 {
		return buf[:n], nil
	}
	if err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (s *FileSource) Close() error {
	if s.f == nil {
		return nil
	}
	f := s.f
	s.f = nil
	return f.Close()
}

// ---------------------------------------------------------------------------
// Generic byte-stream source
// ---------------------------------------------------------------------------

// ByteSource serves an ambiguous stream of bytes from any reader.
type ByteSource struct {
	r     io.Reader
	chunk int
}

// NewByteSource creates a byte-stream source over r.
func NewByteSource(r io.Reader, chunk int) *ByteSource {
	return &ByteSource{r: r, chunk: chunk}
}

func (s *ByteSource) Flavor() ReadableStreamTag { return StreamTagBytes }

func (s *ByteSource) Pull() ([]byte, error) {
	if s.r == nil {
		return nil, io.EOF
	}
	buf := make([]byte, s.chunk)
	n, err := s.r.Read(buf)
	if n > 0 {
		return buf[:n], nil
	}
	if err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (s *ByteSource) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ---------------------------------------------------------------------------
// Reserved-tag loaders
// ---------------------------------------------------------------------------

// The three loaders behind the reserved dispatch tags. Each consumes the
// binding the engine staged on the context and returns the constructed
// source as the dispatch result. An unstaged or mismatched binding yields
// an empty source of the requested flavor.

func loadBlobSource(ctx *Context) Value {
	p := ctx.takePending()
	if p == nil || p.kind != StreamTagBlob {
		return StreamValue(NewBlobSource(nil))
	}
	return StreamValue(NewBlobSource(p.blob))
}

func loadFileSource(ctx *Context) Value {
	chunk := ctx.rt.cfg.Stream.FileChunkSize
	p := ctx.takePending()
	if p == nil || p.kind != StreamTagFile {
		return StreamValue(NewFileSource("", chunk))
	}
	return StreamValue(NewFileSource(p.path, chunk))
}

func loadByteSource(ctx *Context) Value {
	chunk := ctx.rt.cfg.Stream.FileChunkSize
	p := ctx.takePending()
	if p == nil || p.kind != StreamTagBytes {
		return StreamValue(NewByteSource(nil, chunk))
	}
	return StreamValue(NewByteSource(p.reader, chunk))
}
