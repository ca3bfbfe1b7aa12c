package errors

import (
	"log/slog"
)

// LogHandler is an ErrorHandler that writes through a slog.Logger.
type LogHandler struct {
	// Logger receives the records. Nil means slog.Default().
	Logger *slog.Logger
	// Verbose adds stack traces to the records.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs a ToolsAreaError at error level.
func (h *LogHandler) HandleError(err *ToolsAreaError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
		slog.Any("error", err.Err),
	}
	if err.Window != 0 {
		attrs = append(attrs, slog.Uint64("window", err.Window))
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	h.logger().Error("toolsarea error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.Any("value", err.Value),
	}
	if err.Window != 0 {
		attrs = append(attrs, slog.Uint64("window", err.Window))
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	h.logger().Error("toolsarea panic", attrs...)
}
