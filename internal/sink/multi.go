package sink

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/oshokin/httpfmt/internal/emitter"
)

// Multi forwards every record to each of its sinks in order.
// Step calls reach only the sinks that implement emitter.StepSink.
// Errors of all sinks are joined; a failing sink does not stop the others.
type Multi []emitter.Sink

// NewMulti returns a sink over sinks, dropping nil entries.
// A single sink is returned unwrapped.
func NewMulti(sinks ...emitter.Sink) emitter.Sink {
	multi := make(Multi, 0, len(sinks))

	for _, s := range sinks {
		if s != nil {
			multi = append(multi, s)
		}
	}

	if len(multi) == 1 {
		return multi[0]
	}

	return multi
}

// EmitText forwards text to every sink.
func (m Multi) EmitText(ctx context.Context, text string, level zapcore.Level, timestamp time.Time) error {
	var errs []error

	for _, s := range m {
		errs = append(errs, s.EmitText(ctx, text, level, timestamp))
	}

	return errors.Join(errs...)
}

// EmitBinary forwards the attachment to every sink.
func (m Multi) EmitBinary(
	ctx context.Context,
	caption string,
	payload []byte,
	mimeType string,
	level zapcore.Level,
	timestamp time.Time,
) error {
	var errs []error

	for _, s := range m {
		errs = append(errs, s.EmitBinary(ctx, caption, payload, mimeType, level, timestamp))
	}

	return errors.Join(errs...)
}

// BeginStep opens a step on every step-aware sink.
func (m Multi) BeginStep(ctx context.Context, level zapcore.Level, label string) error {
	var errs []error

	for _, s := range m {
		if stepSink, ok := s.(emitter.StepSink); ok {
			errs = append(errs, stepSink.BeginStep(ctx, level, label))
		}
	}

	return errors.Join(errs...)
}

// EndStep closes the current step on every step-aware sink.
func (m Multi) EndStep(ctx context.Context) error {
	var errs []error

	for _, s := range m {
		if stepSink, ok := s.(emitter.StepSink); ok {
			errs = append(errs, stepSink.EndStep(ctx))
		}
	}

	return errors.Join(errs...)
}

var _ emitter.StepSink = Multi(nil)
