package vecmath

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// Logger wraps slog.Logger with vecmath-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
	warned sync.Map // op+kind -> struct{}
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithOp adds an operation field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// LogUnsignedHazard warns, once per operation and element kind, that an operation
// on unsigned elements may wrap around. The operation still runs.
func (l *Logger) LogUnsignedHazard(op string, kind Kind) {
	key := op + "/" + kind.String()
	if _, loaded := l.warned.LoadOrStore(key, struct{}{}); loaded {
		return
	}
	l.WarnContext(context.Background(), "operation on unsigned vector might wrap around",
		"op", op,
		"kind", kind.String(),
	)
}

// LogFault logs a fault recovered by Catch.
func (l *Logger) LogFault(f *Fault) {
	l.DebugContext(context.Background(), "vector fault",
		"op", f.Op,
		"error", f.Err,
		"expected", f.Expected,
		"actual", f.Actual,
	)
}

// LogBatch logs the outcome of a batch operation.
func (l *Logger) LogBatch(ctx context.Context, op string, count, failed int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "batch failed",
			"op", op,
			"count", count,
			"failed", failed,
			"error", err,
		)
	case failed > 0:
		l.WarnContext(ctx, "batch completed with failures",
			"op", op,
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	default:
		l.DebugContext(ctx, "batch completed",
			"op", op,
			"count", count,
		)
	}
}

var pkgLogger atomic.Pointer[Logger]

// SetLogger installs the logger used by the package. Passing nil restores the
// default stderr logger.
func SetLogger(l *Logger) {
	if l == nil {
		l = NewLogger(nil)
	}
	pkgLogger.Store(l)
}

// DefaultLogger returns the logger installed with SetLogger.
func DefaultLogger() *Logger {
	return defaultLogger()
}

func defaultLogger() *Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	pkgLogger.CompareAndSwap(nil, NewLogger(nil))
	return pkgLogger.Load()
}

func warnUnsigned[T Scalar](op string) {
	if k := KindOf[T](); k.IsUnsigned() {
		defaultLogger().LogUnsignedHazard(op, k)
	}
}
