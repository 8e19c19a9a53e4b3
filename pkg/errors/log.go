package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is a Handler that logs errors to a writer, stderr by default.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out is the destination writer. Nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs an error to the destination writer.
func (h *LogHandler) HandleError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(h.out(), "[loom error] %v\n", err)
}

// HandlePanic logs a PanicError to the destination writer.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(h.out(), "[loom panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(h.out(), "[loom panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(h.out(), "Stack trace:\n%s\n", err.StackTrace)
	}
}
