package errors

import (
	"runtime"
	"strconv"
	"strings"
)

// Handler receives errors reported by the toolkit outside normal return
// paths: hook failures and recovered panics. One bad hook is reported here
// rather than unwinding the stack, so its siblings still run.
type Handler interface {
	// HandleError is called when a reportable error occurs.
	HandleError(err error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Recover is a helper for deferred panic recovery.
// Usage: defer errors.Recover(handler, "operation.name")
func Recover(h Handler, op string) {
	if r := recover(); r != nil {
		if h != nil {
			h.HandlePanic(&PanicError{
				Op:         op,
				Value:      r,
				StackTrace: CaptureStack(),
			})
		}
	}
}

// CaptureStack returns the current call stack as a string.
// It skips the first few frames to exclude the CaptureStack call itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
