package emitter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/oshokin/httpfmt/internal/format"
)

// partInterval separates the synthetic timestamps of consecutive multipart records.
const partInterval = time.Millisecond

// ErrMultipartResponse is returned when a MULTIPART body belongs to a formatter that cannot list its parts.
var ErrMultipartResponse = errors.New("multipart body is supported for requests only")

// Emitter sends formatters to a sink at a fixed record level.
type Emitter struct {
	sink  Sink
	level zapcore.Level
	now   func() time.Time
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithClock replaces the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Emitter) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an emitter writing records of the given level to sink.
func New(sink Sink, level zapcore.Level, opts ...Option) *Emitter {
	e := &Emitter{
		sink:  sink,
		level: level,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Emit sends f to sink at level using the wall clock.
func Emit(ctx context.Context, f format.HTTPFormatter, sink Sink, level zapcore.Level) error {
	return New(sink, level).Emit(ctx, f)
}

// Level returns the level attached to emitted records.
func (e *Emitter) Level() zapcore.Level {
	return e.level
}

// Emit sends the records of one formatter.
func (e *Emitter) Emit(ctx context.Context, f format.HTTPFormatter) error {
	switch bodyType := f.Type(); bodyType {
	case format.BodyTypeNone:
		return e.sink.EmitText(ctx, f.FormatHead(), e.level, e.now())
	case format.BodyTypeText, format.BodyTypeForm:
		text, err := f.FormatAsText()
		if err != nil {
			return err
		}

		return e.sink.EmitText(ctx, text, e.level, e.now())
	case format.BodyTypeBinary:
		payload, err := f.BinaryBody()
		if err != nil {
			return err
		}

		return e.emitBinary(ctx, f.FormatHead(), payload, f.MimeType(), e.now())
	case format.BodyTypeMultipart:
		multipart, ok := f.(format.MultipartFormatter)
		if !ok {
			return fmt.Errorf("%w: got %T", ErrMultipartResponse, f)
		}

		return e.emitMultipart(ctx, multipart)
	default:
		return e.sink.EmitText(ctx, "Unknown entity type: "+bodyType.String(), zapcore.ErrorLevel, e.now())
	}
}

// emitBinary falls back to a text record when there is no payload.
func (e *Emitter) emitBinary(
	ctx context.Context,
	caption string,
	payload []byte,
	mimeType string,
	timestamp time.Time,
) error {
	if payload == nil {
		return e.sink.EmitText(ctx, caption, e.level, timestamp)
	}

	if mimeType == "" {
		mimeType = format.MimeApplicationOctetStream
	}

	return e.sink.EmitBinary(ctx, caption, payload, mimeType, e.level, timestamp)
}

func (e *Emitter) emitMultipart(ctx context.Context, f format.MultipartFormatter) error {
	parts, err := f.MultipartBody()
	if err != nil {
		return err
	}

	stepSink, hasSteps := e.sink.(StepSink)
	if hasSteps {
		if err = stepSink.BeginStep(ctx, e.level, f.FormatTitle()); err != nil {
			return err
		}
	}

	err = e.emitParts(ctx, f, parts)

	if hasSteps {
		err = errors.Join(err, stepSink.EndStep(ctx))
	}

	return err
}

func (e *Emitter) emitParts(ctx context.Context, f format.MultipartFormatter, parts []*format.PartFormatter) error {
	timestamp := e.now()

	if head := format.JoinParts(format.SectionDelimiter, f.FormatHeaders(), f.FormatCookies()); head != "" {
		if err := e.sink.EmitText(ctx, head, e.level, timestamp); err != nil {
			return err
		}
	}

	for _, part := range parts {
		timestamp = timestamp.Add(partInterval)

		if err := e.emitPart(ctx, part, timestamp); err != nil {
			return err
		}
	}

	return nil
}

func (e *Emitter) emitPart(ctx context.Context, part *format.PartFormatter, timestamp time.Time) error {
	switch part.Type() {
	case format.PartTypeText:
		text, err := part.FormatAsText()
		if err != nil {
			return err
		}

		return e.sink.EmitText(ctx, text, e.level, timestamp)
	case format.PartTypeBinary:
		payload, err := part.BinaryPayload()
		if err != nil {
			return err
		}

		return e.emitBinary(ctx, part.FormatForBinaryDataPrefix(), payload, part.MimeType(), timestamp)
	default:
		return fmt.Errorf("%w: unknown part type %s", format.ErrPartTypeMismatch, part.Type())
	}
}
