package sink

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oshokin/httpfmt/internal/emitter"
)

func newObservedLogger(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)

	return NewLogger(zap.New(core)), logs
}

// TestLoggerEmitText tests that text records keep their level and timestamp.
func TestLoggerEmitText(t *testing.T) {
	t.Parallel()

	sink, logs := newObservedLogger(zapcore.DebugLevel)
	timestamp := time.Date(2024, time.May, 5, 10, 0, 0, 0, time.UTC)
	ctx := emitter.WithExchangeID(context.Background(), "exchange-1")

	require.NoError(t, sink.EmitText(ctx, "**>>> REQUEST**", zapcore.WarnLevel, timestamp))

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)

	all := logs.All()
	assert.Equal(t, timestamp, all[0].Time)
	assert.Equal(t, "**>>> REQUEST**", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "exchange-1", entries[0].ContextMap()[fieldExchangeID])
}

// TestLoggerEmitBinary tests that binary records log the caption and payload size only.
func TestLoggerEmitBinary(t *testing.T) {
	t.Parallel()

	sink, logs := newObservedLogger(zapcore.InfoLevel)

	err := sink.EmitBinary(context.Background(), "", make([]byte, 2048), "image/png", zapcore.InfoLevel, time.Now())
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, binaryMessage, entries[0].Message)
	assert.Equal(t, "image/png", fields[fieldMimeType])
	assert.Equal(t, "2.0 kB", fields[fieldSize])
	assert.NotContains(t, fields, fieldExchangeID)
}

// TestLoggerDisabledLevel tests that records below the logger level are dropped.
func TestLoggerDisabledLevel(t *testing.T) {
	t.Parallel()

	sink, logs := newObservedLogger(zapcore.InfoLevel)

	require.NoError(t, sink.EmitText(context.Background(), "hidden", zapcore.DebugLevel, time.Now()))
	assert.Zero(t, logs.Len())
}

// TestLoggerSteps tests that steps are logged with their labels and unbalanced ends are ignored.
func TestLoggerSteps(t *testing.T) {
	t.Parallel()

	sink, logs := newObservedLogger(zapcore.DebugLevel)
	ctx := context.Background()

	require.NoError(t, sink.BeginStep(ctx, zapcore.InfoLevel, "outer"))
	require.NoError(t, sink.BeginStep(ctx, zapcore.DebugLevel, "inner"))
	require.NoError(t, sink.EndStep(ctx))
	require.NoError(t, sink.EndStep(ctx))
	require.NoError(t, sink.EndStep(ctx))

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	labels := make([]any, 0, len(entries))
	for _, entry := range entries {
		labels = append(labels, entry.ContextMap()[fieldStep])
	}

	assert.Equal(t, []any{"outer", "inner", "inner", "outer"}, labels)
	assert.Equal(t, "step finished", entries[2].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
}

// TestLoggerStepsPerExchange tests that interleaved exchanges close their own steps.
func TestLoggerStepsPerExchange(t *testing.T) {
	t.Parallel()

	sink, logs := newObservedLogger(zapcore.DebugLevel)

	first := emitter.WithExchangeID(context.Background(), "A")
	second := emitter.WithExchangeID(context.Background(), "B")

	require.NoError(t, sink.BeginStep(first, zapcore.InfoLevel, "title A"))
	require.NoError(t, sink.BeginStep(second, zapcore.WarnLevel, "title B"))
	require.NoError(t, sink.EndStep(first))
	require.NoError(t, sink.EndStep(second))

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	finishedA := entries[2].ContextMap()
	assert.Equal(t, "title A", finishedA[fieldStep])
	assert.Equal(t, "A", finishedA[fieldExchangeID])
	assert.Equal(t, zapcore.InfoLevel, entries[2].Level)

	finishedB := entries[3].ContextMap()
	assert.Equal(t, "title B", finishedB[fieldStep])
	assert.Equal(t, "B", finishedB[fieldExchangeID])
	assert.Equal(t, zapcore.WarnLevel, entries[3].Level)
}

// TestNewLoggerNil tests that a nil logger yields a working no-op sink.
func TestNewLoggerNil(t *testing.T) {
	t.Parallel()

	sink := NewLogger(nil)
	require.NoError(t, sink.EmitText(context.Background(), "text", zapcore.ErrorLevel, time.Now()))
}
