// Package vm implements the native-binding core of the Perch runtime:
// the lazy dispatcher that resolves integer tokens embedded in trusted
// builtin code to native Go entry points, the generated pointer table it
// consumes, and the reserved stream-source loaders.
package vm

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/perchlang/perch/config"
)

// Runtime holds the process-wide dispatch state: configuration, the
// generated native table, and the fatal handler. The table and config are
// read-only after construction; a Runtime is safe for use from any number
// of contexts concurrently.
type Runtime struct {
	cfg     *config.Config
	natives *NativeTable
	fatal   FatalHandler
	halted  atomic.Bool
	started time.Time
}

// NewRuntime builds a runtime around an injected native table.
func NewRuntime(cfg *config.Config, natives *NativeTable) *Runtime {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Runtime{
		cfg:     cfg,
		natives: natives,
		fatal:   defaultFatalHandler,
		started: time.Now(),
	}
}

// NewGeneratedRuntime builds a runtime around the compiled-in generated
// table. This is the constructor embedding hosts normally use.
func NewGeneratedRuntime(cfg *config.Config) *Runtime {
	return NewRuntime(cfg, GeneratedNatives())
}

// SetFatalHandler installs the host's halt policy. Must be called before
// the first dispatch; installing nil restores the default.
func (rt *Runtime) SetFatalHandler(h FatalHandler) {
	if h == nil {
		h = defaultFatalHandler
	}
	rt.fatal = h
}

// Natives exposes the injected table for inspection tools.
func (rt *Runtime) Natives() *NativeTable {
	return rt.natives
}

// Config returns the runtime configuration.
func (rt *Runtime) Config() *config.Config {
	return rt.cfg
}

// Halted reports whether a fatal dispatch has occurred.
func (rt *Runtime) Halted() bool {
	return rt.halted.Load()
}

// Uptime returns time elapsed since the runtime was constructed.
func (rt *Runtime) Uptime() time.Duration {
	return time.Since(rt.started)
}

// DescribeToken renders a human-readable description of a raw lazy token,
// for debugging generated builtin source.
func (rt *Runtime) DescribeToken(raw int32) string {
	tok := DecodeToken(raw)
	switch tok.Kind {
	case TokenTableIndex:
		if tok.Index >= rt.natives.Len() {
			return fmt.Sprintf("%d -> table slot %d (OUT OF RANGE, table has %d entries)",
				raw, tok.Index, rt.natives.Len())
		}
		name := rt.natives.Name(tok.Index)
		if name == "" {
			name = "?"
		}
		return fmt.Sprintf("%d -> table slot %d (%s)", raw, tok.Index, name)
	case TokenTag:
		return fmt.Sprintf("%d -> reserved tag %s", raw, tok.Tag)
	}
	return fmt.Sprintf("%d -> invalid", raw)
}
