package bitarray

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bit-array specific fields.
// Codecs and tools built on this package log through it; BitArray itself
// never logs.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// A nil w writes to stderr.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
// A nil w writes to stderr.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithCount adds a bit count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", count),
	}
}

// WithCodec adds a codec name field to the logger.
func (l *Logger) WithCodec(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("codec", name),
	}
}

// LogMarshal logs an encode of a bit array.
func (l *Logger) LogMarshal(ctx context.Context, codec string, bits, rawBytes, encodedBytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "marshal failed",
			"codec", codec,
			"bits", bits,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "marshal completed",
		"codec", codec,
		"bits", bits,
		"raw_bytes", rawBytes,
		"encoded_bytes", encodedBytes,
	)
}

// LogUnmarshal logs a decode of a bit array.
func (l *Logger) LogUnmarshal(ctx context.Context, codec string, encodedBytes, bits int, err error) {
	if err != nil {
		l.WarnContext(ctx, "unmarshal failed",
			"codec", codec,
			"encoded_bytes", encodedBytes,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "unmarshal completed",
		"codec", codec,
		"encoded_bytes", encodedBytes,
		"bits", bits,
	)
}

// LogBatch logs a batch encode or decode.
func (l *Logger) LogBatch(ctx context.Context, op string, count int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch failed",
			"op", op,
			"count", count,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "batch completed",
		"op", op,
		"count", count,
	)
}
