package hashdb

import (
	"io"
	"log/slog"
	"os"
)

// Logger - Wraps slog.Logger with table specific helpers
type Logger struct {
	*slog.Logger
}

// NewLogger - Returns a new Logger using handler.
//   - handler is the slog handler to log through, if nil a text handler to stderr at info level is used
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger - Returns a Logger writing text logs to w at or above level
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger - Returns a Logger that discards everything
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// LogResize - Logs a rehash into a new slot array at debug level, or a failed attempt at one as a warning.
//   - reason is what triggered it, grow, shrink, cleanup or ensure
//   - from and to are the old and new capacity
//   - count is the number of entries rehashed
//   - err is nil on success
func (l *Logger) LogResize(reason string, from, to, count uint64, err error) {
	if err != nil {
		l.Warn("resize failed",
			"reason", reason,
			"from", from,
			"to", to,
			"count", count,
			"error", err,
		)
		return
	}

	l.Debug("resized",
		"reason", reason,
		"from", from,
		"to", to,
		"count", count,
	)
}
