package sink

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/httpfmt/internal/emitter"
)

const (
	fieldExchangeID = "exchange_id"
	fieldMimeType   = "mime_type"
	fieldSize       = "size"
	fieldStep       = "step"

	binaryMessage = "binary payload"
)

// Logger writes records to a zap logger, keeping the record timestamps.
type Logger struct {
	log   *zap.Logger
	steps stepStacks[stepEntry]
}

type stepEntry struct {
	level zapcore.Level
	label string
}

// NewLogger creates a sink over log.
func NewLogger(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}

	return &Logger{log: log}
}

// EmitText writes text as the message of one entry.
func (l *Logger) EmitText(ctx context.Context, text string, level zapcore.Level, timestamp time.Time) error {
	l.write(ctx, level, timestamp, text)

	return nil
}

// EmitBinary writes the caption with the MIME type and a human-readable payload size.
// The payload itself is not logged.
func (l *Logger) EmitBinary(
	ctx context.Context,
	caption string,
	payload []byte,
	mimeType string,
	level zapcore.Level,
	timestamp time.Time,
) error {
	if caption == "" {
		caption = binaryMessage
	}

	l.write(ctx, level, timestamp, caption,
		zap.String(fieldMimeType, mimeType),
		zap.String(fieldSize, humanize.Bytes(uint64(len(payload)))),
	)

	return nil
}

// BeginStep writes the step label and remembers it until EndStep of the same exchange.
func (l *Logger) BeginStep(ctx context.Context, level zapcore.Level, label string) error {
	l.steps.push(emitter.ExchangeID(ctx), stepEntry{level: level, label: label})

	l.write(ctx, level, time.Now(), "step started", zap.String(fieldStep, label))

	return nil
}

// EndStep writes the label of the step the exchange opened last. Unbalanced calls are ignored.
func (l *Logger) EndStep(ctx context.Context) error {
	step, ok := l.steps.pop(emitter.ExchangeID(ctx))
	if !ok {
		return nil
	}

	l.write(ctx, step.level, time.Now(), "step finished", zap.String(fieldStep, step.label))

	return nil
}

func (l *Logger) write(ctx context.Context, level zapcore.Level, timestamp time.Time, message string, fields ...zap.Field) {
	entry := l.log.Check(level, message)
	if entry == nil {
		return
	}

	entry.Time = timestamp

	if id := emitter.ExchangeID(ctx); id != "" {
		fields = append(fields, zap.String(fieldExchangeID, id))
	}

	entry.Write(fields...)
}

var _ emitter.StepSink = (*Logger)(nil)
