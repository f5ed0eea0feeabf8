package vm

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/perchlang/perch/config"
)

func drain(t *testing.T, s StreamSource) []byte {
	t.Helper()
	var out []byte
	for {
		chunk, err := s.Pull()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Pull failed: %v", err)
		}
		out = append(out, chunk...)
	}
}

func TestBlobSourceSinglePull(t *testing.T) {
	payload := []byte("hello blob")
	s := NewBlobSource(payload)

	chunk, err := s.Pull()
	if err != nil {
		t.Fatalf("first Pull failed: %v", err)
	}
	if !bytes.Equal(chunk, payload) {
		t.Errorf("first Pull = %q, want the whole payload", chunk)
	}

	if _, err := s.Pull(); err != io.EOF {
		t.Errorf("second Pull = %v, want io.EOF", err)
	}
}

func TestBlobSourceEmpty(t *testing.T) {
	s := NewBlobSource(nil)
	if _, err := s.Pull(); err != io.EOF {
		t.Errorf("Pull on empty blob = %v, want io.EOF", err)
	}
}

func TestFileSourceChunkedReads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")
	content := bytes.Repeat([]byte("abcdefgh"), 100) // 800 bytes
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	s := NewFileSource(path, 256)
	defer s.Close()

	first, err := s.Pull()
	if err != nil {
		t.Fatalf("first Pull failed: %v", err)
	}
	if len(first) != 256 {
		t.Errorf("first chunk is %d bytes, want 256", len(first))
	}

	rest := drain(t, s)
	if got := append(first, rest...); !bytes.Equal(got, content) {
		t.Errorf("chunked reads reassembled %d bytes, want %d identical", len(got), len(content))
	}
}

func TestFileSourceOpenErrorSurfacesOnPull(t *testing.T) {
	s := NewFileSource(filepath.Join(t.TempDir(), "missing"), 64)

	// Construction never fails; the open error is a stream error.
	if _, err := s.Pull(); !os.IsNotExist(err) {
		t.Errorf("Pull on missing file = %v, want a not-exist error", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close on never-opened source failed: %v", err)
	}
}

func TestByteSourceWrapsReader(t *testing.T) {
	s := NewByteSource(strings.NewReader("streamed bytes"), 5)

	got := drain(t, s)
	if string(got) != "streamed bytes" {
		t.Errorf("drained %q", got)
	}
}

func TestByteSourceNilReader(t *testing.T) {
	s := NewByteSource(nil, 16)
	if _, err := s.Pull(); err != io.EOF {
		t.Errorf("Pull on nil reader = %v, want io.EOF", err)
	}
}

// ---------------------------------------------------------------------------
// Loader dispatch
// ---------------------------------------------------------------------------

func TestBlobLoaderConsumesStagedPayload(t *testing.T) {
	rt := NewGeneratedRuntime(nil)
	ctx := rt.NewContext()

	ctx.StageBlob([]byte("staged"))
	result := DispatchRaw(ctx, int32(StreamTagBlob))

	if result.Type != TypeStream {
		t.Fatalf("blob tag returned %s", result)
	}
	if got := drain(t, result.StreamVal); string(got) != "staged" {
		t.Errorf("blob source drained %q", got)
	}

	// Binding is consumed: the next load gets an empty source.
	again := DispatchRaw(ctx, int32(StreamTagBlob))
	if got := drain(t, again.StreamVal); len(got) != 0 {
		t.Errorf("second blob load drained %q, want empty", got)
	}
}

func TestFileLoaderUsesConfiguredChunkSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("0123456789"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Stream.FileChunkSize = 4
	rt := NewGeneratedRuntime(cfg)
	ctx := rt.NewContext()

	ctx.StageFile(path)
	result := DispatchRaw(ctx, int32(StreamTagFile))

	fs, ok := result.StreamVal.(*FileSource)
	if !ok {
		t.Fatalf("file tag loaded %T", result.StreamVal)
	}
	if fs.Path() != path {
		t.Errorf("file source path = %q, want %q", fs.Path(), path)
	}
	chunk, err := fs.Pull()
	if err != nil {
		t.Fatal(err)
	}
	if len(chunk) != 4 {
		t.Errorf("first chunk is %d bytes, want configured 4", len(chunk))
	}
	fs.Close()
}

func TestByteLoaderWrapsStagedReader(t *testing.T) {
	rt := NewGeneratedRuntime(nil)
	ctx := rt.NewContext()

	ctx.StageReader(strings.NewReader("reader-backed"))
	result := DispatchRaw(ctx, int32(StreamTagBytes))

	if result.StreamVal.Flavor() != StreamTagBytes {
		t.Fatalf("bytes tag loaded a %s source", result.StreamVal.Flavor())
	}
	if got := drain(t, result.StreamVal); string(got) != "reader-backed" {
		t.Errorf("byte source drained %q", got)
	}
}

func TestLoaderIgnoresMismatchedBinding(t *testing.T) {
	rt := NewGeneratedRuntime(nil)
	ctx := rt.NewContext()

	// A blob staged for a bytes load is discarded, not misread.
	ctx.StageBlob([]byte("wrong flavor"))
	result := DispatchRaw(ctx, int32(StreamTagBytes))

	if got := drain(t, result.StreamVal); len(got) != 0 {
		t.Errorf("mismatched binding produced %q, want empty source", got)
	}
}
