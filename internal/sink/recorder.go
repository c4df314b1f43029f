package sink

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/oshokin/httpfmt/internal/emitter"
)

// RecordKind tells what a Record holds.
type RecordKind int

const (
	// RecordText is a text record.
	RecordText RecordKind = iota
	// RecordBinary is an attachment with an optional caption.
	RecordBinary
	// RecordBeginStep opens a step.
	RecordBeginStep
	// RecordEndStep closes a step.
	RecordEndStep
)

// String returns the lower-case name of the kind.
func (k RecordKind) String() string {
	switch k {
	case RecordText:
		return "text"
	case RecordBinary:
		return "binary"
	case RecordBeginStep:
		return "begin_step"
	case RecordEndStep:
		return "end_step"
	default:
		return "unknown"
	}
}

// Record is one call received by a sink.
type Record struct {
	Kind       RecordKind
	ExchangeID string
	// Text is the text of a text record or the label of a step.
	Text      string
	Caption   string
	Payload   []byte
	MimeType  string
	Level     zapcore.Level
	Timestamp time.Time
}

// Recorder keeps every record in memory. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// EmitText records a text record.
func (r *Recorder) EmitText(ctx context.Context, text string, level zapcore.Level, timestamp time.Time) error {
	r.add(Record{
		Kind:       RecordText,
		ExchangeID: emitter.ExchangeID(ctx),
		Text:       text,
		Level:      level,
		Timestamp:  timestamp,
	})

	return nil
}

// EmitBinary records an attachment. The payload is copied.
func (r *Recorder) EmitBinary(
	ctx context.Context,
	caption string,
	payload []byte,
	mimeType string,
	level zapcore.Level,
	timestamp time.Time,
) error {
	r.add(Record{
		Kind:       RecordBinary,
		ExchangeID: emitter.ExchangeID(ctx),
		Caption:    caption,
		Payload:    slices.Clone(payload),
		MimeType:   mimeType,
		Level:      level,
		Timestamp:  timestamp,
	})

	return nil
}

// BeginStep records the start of a step.
func (r *Recorder) BeginStep(ctx context.Context, level zapcore.Level, label string) error {
	r.add(Record{
		Kind:       RecordBeginStep,
		ExchangeID: emitter.ExchangeID(ctx),
		Text:       label,
		Level:      level,
		Timestamp:  time.Now(),
	})

	return nil
}

// EndStep records the end of a step.
func (r *Recorder) EndStep(ctx context.Context) error {
	r.add(Record{
		Kind:       RecordEndStep,
		ExchangeID: emitter.ExchangeID(ctx),
		Timestamp:  time.Now(),
	})

	return nil
}

// Records returns a copy of the records in arrival order.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.records)
}

// Reset drops all records.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}

func (r *Recorder) add(record Record) {
	r.mu.Lock()
	r.records = append(r.records, record)
	r.mu.Unlock()
}

var _ emitter.StepSink = (*Recorder)(nil)
