package sink

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/httpfmt/internal/emitter"
	"github.com/oshokin/httpfmt/internal/logger"
)

const (
	// DefaultConnectTimeout bounds connecting to and pinging the server.
	DefaultConnectTimeout = 10 * time.Second

	documentKind       = "kind"
	documentExchangeID = "exchange_id"
	documentLevel      = "level"
	documentTimestamp  = "timestamp"
	documentText       = "text"
	documentCaption    = "caption"
	documentPayload    = "payload"
	documentMimeType   = "mime_type"
	documentStep       = "step"
)

// inserter is the part of *mongo.Collection used by Mongo.
type inserter interface {
	InsertOne(ctx context.Context, document any, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// Mongo stores every record as a document of one collection.
// Records emitted inside a step carry the label of the step open in their exchange.
type Mongo struct {
	client     *mongo.Client
	collection inserter
	steps      stepStacks[string]
}

// NewMongo connects to uri and returns a sink writing into database.collection.
// Indexes on timestamp and exchange id are created on a best-effort basis.
func NewMongo(ctx context.Context, uri, database, collection string) (*Mongo, error) {
	connectCtx, cancel := context.WithTimeout(ctx, DefaultConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err = client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(ctx)

		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	coll := client.Database(database).Collection(collection)

	_, err = coll.Indexes().CreateMany(connectCtx, []mongo.IndexModel{
		{Keys: bson.D{{Key: documentTimestamp, Value: 1}}},
		{Keys: bson.D{{Key: documentExchangeID, Value: 1}}},
	})
	if err != nil {
		logger.Warnf(ctx, "Failed to create MongoDB indexes: %v", err)
	}

	return &Mongo{client: client, collection: coll}, nil
}

// Close disconnects from the server.
func (m *Mongo) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}

	return m.client.Disconnect(ctx)
}

// EmitText stores a text document.
func (m *Mongo) EmitText(ctx context.Context, text string, level zapcore.Level, timestamp time.Time) error {
	return m.insert(ctx, toDocument(Record{
		Kind:       RecordText,
		ExchangeID: emitter.ExchangeID(ctx),
		Text:       text,
		Level:      level,
		Timestamp:  timestamp,
	}, m.currentStep(ctx)))
}

// EmitBinary stores a document with the payload as binary data.
func (m *Mongo) EmitBinary(
	ctx context.Context,
	caption string,
	payload []byte,
	mimeType string,
	level zapcore.Level,
	timestamp time.Time,
) error {
	return m.insert(ctx, toDocument(Record{
		Kind:       RecordBinary,
		ExchangeID: emitter.ExchangeID(ctx),
		Caption:    caption,
		Payload:    payload,
		MimeType:   mimeType,
		Level:      level,
		Timestamp:  timestamp,
	}, m.currentStep(ctx)))
}

// BeginStep stores a step document and labels the following records with label.
func (m *Mongo) BeginStep(ctx context.Context, level zapcore.Level, label string) error {
	m.steps.push(emitter.ExchangeID(ctx), label)

	return m.insert(ctx, toDocument(Record{
		Kind:       RecordBeginStep,
		ExchangeID: emitter.ExchangeID(ctx),
		Text:       label,
		Level:      level,
		Timestamp:  time.Now(),
	}, label))
}

// EndStep stores a document closing the step the exchange opened last.
func (m *Mongo) EndStep(ctx context.Context) error {
	label, _ := m.steps.pop(emitter.ExchangeID(ctx))

	return m.insert(ctx, toDocument(Record{
		Kind:       RecordEndStep,
		ExchangeID: emitter.ExchangeID(ctx),
		Timestamp:  time.Now(),
	}, label))
}

func (m *Mongo) currentStep(ctx context.Context) string {
	label, _ := m.steps.top(emitter.ExchangeID(ctx))

	return label
}

func (m *Mongo) insert(ctx context.Context, document bson.D) error {
	if _, err := m.collection.InsertOne(ctx, document); err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	return nil
}

// toDocument converts a record to the stored document. Empty optional fields are omitted.
func toDocument(record Record, step string) bson.D {
	document := bson.D{
		{Key: documentKind, Value: record.Kind.String()},
		{Key: documentLevel, Value: record.Level.String()},
		{Key: documentTimestamp, Value: primitive.NewDateTimeFromTime(record.Timestamp)},
	}

	if record.ExchangeID != "" {
		document = append(document, bson.E{Key: documentExchangeID, Value: record.ExchangeID})
	}

	if step != "" {
		document = append(document, bson.E{Key: documentStep, Value: step})
	}

	switch record.Kind {
	case RecordText, RecordBeginStep:
		document = append(document, bson.E{Key: documentText, Value: record.Text})
	case RecordBinary:
		if record.Caption != "" {
			document = append(document, bson.E{Key: documentCaption, Value: record.Caption})
		}

		document = append(document,
			bson.E{Key: documentMimeType, Value: record.MimeType},
			bson.E{Key: documentPayload, Value: primitive.Binary{Data: record.Payload}},
		)
	case RecordEndStep:
	}

	return document
}

var _ emitter.StepSink = (*Mongo)(nil)
