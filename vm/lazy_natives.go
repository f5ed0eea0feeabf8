package vm

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ---------------------------------------------------------------------------
// Lazily bound natives
// ---------------------------------------------------------------------------
//
// These are the native implementations behind generated negative tokens.
// Builtin source never names them directly; the generator assigns each a
// table slot and emits the matching token at the call site.

// Version is the runtime version reported by the version native.
const Version = "0.3.1"

func nativeRuntimeVersion(ctx *Context) Value {
	return StringValue(Version)
}

func nativeProcessInfo(ctx *Context) Value {
	return ObjectValue(map[string]Value{
		"pid":  IntValue(int64(os.Getpid())),
		"ppid": IntValue(int64(os.Getppid())),
		"os":   StringValue(runtime.GOOS),
		"arch": StringValue(runtime.GOARCH),
	})
}

// nativeMonotonicNow returns nanoseconds since the runtime was constructed.
func nativeMonotonicNow(ctx *Context) Value {
	return IntValue(ctx.rt.Uptime().Nanoseconds())
}

func nativeEnvironSnapshot(ctx *Context) Value {
	env := os.Environ()
	fields := make(map[string]Value, len(env))
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok {
			fields[k] = StringValue(v)
		}
	}
	return ObjectValue(fields)
}

func nativeWorkingDir(ctx *Context) Value {
	wd, err := os.Getwd()
	if err != nil {
		return NilValue()
	}
	return StringValue(wd)
}

func nativePathSeparator(ctx *Context) Value {
	return StringValue(string(filepath.Separator))
}
