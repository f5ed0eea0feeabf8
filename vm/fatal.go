package vm

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("perch.vm")

// HaltCause classifies why dispatch halted the runtime.
type HaltCause int

const (
	// HaltGeneratorBug means a negative-space token did not resolve to a
	// table slot: the code generator and the compiled table disagree.
	HaltGeneratorBug HaltCause = iota

	// HaltExternalMisuse means a non-negative token matched no reserved
	// tag. Lazy dispatch is not exposed to script authors, so this means
	// something outside the trusted builtin code got hold of it.
	HaltExternalMisuse
)

func (c HaltCause) String() string {
	switch c {
	case HaltGeneratorBug:
		return "generator bug"
	case HaltExternalMisuse:
		return "external misuse"
	}
	return "unknown"
}

// HaltError describes an unresolvable lazy token. It is never returned to
// calling code; it is handed to the runtime's fatal handler and then the
// runtime stops for good.
type HaltError struct {
	Cause  HaltCause
	Token  int32
	Detail string
}

func (e *HaltError) Error() string {
	return fmt.Sprintf("lazy dispatch halted (%s): token %d: %s", e.Cause, e.Token, e.Detail)
}

// FatalHandler decides how a halt manifests. The default logs the
// diagnostic and exits the process; an embedding host may install its own
// (e.g. for supervised restart). Whatever the handler does, the runtime
// never resumes: if the handler returns, dispatch panics with the error.
type FatalHandler func(*HaltError)

func defaultFatalHandler(e *HaltError) {
	log.Criticalf("%s", e.Error())
	os.Exit(1)
}

// halt transitions the runtime to its terminal state. It never returns.
func (rt *Runtime) halt(e *HaltError) {
	rt.halted.Store(true)
	log.Errorf("%s", e.Error())
	rt.fatal(e)
	panic(e)
}
