package emitter

//go:generate $MOCKGEN -source=sink.go -destination=mocks/sink_mock.go

import (
	"context"
	"time"

	"go.uber.org/zap/zapcore"
)

// Sink receives log records.
type Sink interface {
	// EmitText stores a text record.
	EmitText(ctx context.Context, text string, level zapcore.Level, timestamp time.Time) error
	// EmitBinary stores an attachment with an optional caption.
	EmitBinary(
		ctx context.Context,
		caption string,
		payload []byte,
		mimeType string,
		level zapcore.Level,
		timestamp time.Time,
	) error
}

// StepSink is a Sink that can group records into nested steps.
// Multipart requests are emitted inside a step when the sink supports it.
type StepSink interface {
	Sink

	// BeginStep opens a step labelled with label.
	BeginStep(ctx context.Context, level zapcore.Level, label string) error
	// EndStep closes the step opened last.
	EndStep(ctx context.Context) error
}
