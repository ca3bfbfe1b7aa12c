package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every report. It starts as a LogHandler on
	// slog.Default().
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler installs h as the global handler and returns the previous one.
// Nil restores a default LogHandler.
//
//	defer errors.SetHandler(errors.SetHandler(h))
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := DefaultHandler
	DefaultHandler = h
	return prev
}

func handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report hands err to the global handler, stamping it if needed.
func Report(err *ToolsAreaError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := handler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic hands err to the global handler, stamping it if needed.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := handler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover reports a panic in op instead of letting it unwind into the host.
// It must be deferred directly:
//
//	defer errors.Recover("toolsarea.Dispatch")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, 0, r)
	}
}

// RecoverWindow is Recover for work scoped to one host window, such as a
// debounced pass. The window identity is attached to the report.
func RecoverWindow(op string, window uint64) {
	if r := recover(); r != nil {
		reportRecovered(op, window, r)
	}
}

func reportRecovered(op string, window uint64, value any) {
	ReportPanic(&PanicError{
		Op:         op,
		Window:     window,
		Value:      value,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack returns the calling goroutine's stack, one function and
// file:line pair per frame. Runtime frames and the recovery helpers are
// left out, so inside a deferred Recover the trace starts at the code that
// panicked.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !skipFrame(frame.Function) {
			sb.WriteString(frame.Function)
			sb.WriteString("\n\t")
			sb.WriteString(frame.File)
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(frame.Line))
			sb.WriteByte('\n')
		}
		if !more {
			break
		}
	}
	return sb.String()
}

const pkgPath = "github.com/go-drift/toolsarea/pkg/errors."

func skipFrame(fn string) bool {
	if strings.HasPrefix(fn, "runtime.") {
		return true
	}
	switch strings.TrimPrefix(fn, pkgPath) {
	case "Recover", "RecoverWindow", "reportRecovered":
		return true
	}
	return false
}
