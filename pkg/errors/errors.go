// Package errors provides structured error reporting for the tools area.
//
// Nothing in the tools area is allowed to take the host down. Failures are
// wrapped in a [ToolsAreaError] or [PanicError] and handed to the global
// [ErrorHandler]; the caller then falls back to an empty tools area.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration load or validation failure.
	KindConfig
	// KindTheme indicates a color scheme load or watch failure.
	KindTheme
	// KindHost indicates inconsistent data delivered by the host tree.
	KindHost
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTheme:
		return "theme"
	case KindHost:
		return "host"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ToolsAreaError represents a structured, non-fatal failure.
type ToolsAreaError struct {
	// Op is the operation that failed (e.g., "theme.Watcher").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Window is the host identity of the affected window, if any.
	Window uint64
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ToolsAreaError) Error() string {
	if e.Window != 0 {
		return fmt.Sprintf("%s [%s] window=%d: %v", e.Op, e.Kind, e.Window, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ToolsAreaError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "toolsarea.Dispatch").
	Op string
	// Window is the host identity of the window whose work panicked, if any.
	Window uint64
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" && e.Window != 0 {
		return fmt.Sprintf("panic in %s window=%d: %v", e.Op, e.Window, e.Value)
	}
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the tools area.
type ErrorHandler interface {
	// HandleError is called when a recoverable error occurs.
	HandleError(err *ToolsAreaError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
