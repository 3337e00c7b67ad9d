package bitarray_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/bitarray"
)

func newBufferLogger(buf *bytes.Buffer, level slog.Level) *bitarray.Logger {
	return bitarray.NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, slog.LevelInfo).WithCodec("binary").WithCount(12)

	logger.Info("hello")

	assert.Contains(t, buf.String(), `"codec":"binary"`)
	assert.Contains(t, buf.String(), `"bits":12`)
}

func TestLogMarshal(t *testing.T) {
	ctx := context.Background()

	t.Run("success logs at debug", func(t *testing.T) {
		var buf bytes.Buffer
		newBufferLogger(&buf, slog.LevelInfo).LogMarshal(ctx, "binary", 8, 1, 28, nil)
		assert.Empty(t, buf.String())

		newBufferLogger(&buf, slog.LevelDebug).LogMarshal(ctx, "binary", 8, 1, 28, nil)
		assert.Contains(t, buf.String(), `"msg":"marshal completed"`)
		assert.Contains(t, buf.String(), `"encoded_bytes":28`)
	})

	t.Run("failure logs at error", func(t *testing.T) {
		var buf bytes.Buffer
		newBufferLogger(&buf, slog.LevelInfo).LogMarshal(ctx, "binary", 8, 1, 0, errors.New("boom"))
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), `"error":"boom"`)
	})
}

func TestLogUnmarshalAndBatch(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, slog.LevelInfo)

	logger.LogUnmarshal(ctx, "cbor", 17, 0, errors.New("short"))
	assert.Contains(t, buf.String(), `"msg":"unmarshal failed"`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)

	buf.Reset()
	logger.LogBatch(ctx, "marshal", 4, nil)
	assert.Contains(t, buf.String(), `"msg":"batch completed"`)
	assert.Contains(t, buf.String(), `"count":4`)
}

func TestNoopLogger(t *testing.T) {
	logger := bitarray.NoopLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	logger.LogBatch(context.Background(), "marshal", 1, errors.New("ignored"))
}

func TestLoggerFormats(t *testing.T) {
	var buf bytes.Buffer

	bitarray.NewJSONLogger(&buf, slog.LevelDebug).WithCount(3).Debug("json")
	assert.Contains(t, buf.String(), `"msg":"json"`)
	assert.Contains(t, buf.String(), `"bits":3`)

	buf.Reset()
	bitarray.NewTextLogger(&buf, slog.LevelInfo).WithCodec("cbor").Info("text")
	assert.Contains(t, buf.String(), "msg=text")
	assert.Contains(t, buf.String(), "codec=cbor")

	buf.Reset()
	bitarray.NewTextLogger(&buf, slog.LevelWarn).Info("hidden")
	assert.Empty(t, buf.String())

	assert.True(t, bitarray.NewJSONLogger(nil, slog.LevelInfo).Enabled(context.Background(), slog.LevelInfo))
}
