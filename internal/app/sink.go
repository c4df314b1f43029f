package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshokin/httpfmt/internal/config"
	"github.com/oshokin/httpfmt/internal/emitter"
	"github.com/oshokin/httpfmt/internal/logger"
	"github.com/oshokin/httpfmt/internal/sink"
)

// CloseFunc releases the resources held by a sink.
type CloseFunc func(ctx context.Context) error

// NewSink builds the sink selected by cfg.
// Records go to a directory when output_path is set and to the process logger otherwise;
// a MongoDB sink is added next to it when mongo_uri is set.
func NewSink(ctx context.Context, cfg *config.Config) (emitter.Sink, CloseFunc, error) {
	var (
		sinks   []emitter.Sink
		closers []CloseFunc
	)

	if cfg.OutputPath != "" {
		directory, err := sink.NewDirectory(cfg.OutputPath)
		if err != nil {
			return nil, nil, err
		}

		logger.Infof(ctx, "Writing records to %s", directory.Path())

		sinks = append(sinks, directory)
	} else {
		sinks = append(sinks, sink.NewLogger(logger.Logger().Desugar()))
	}

	if cfg.MongoURI != "" {
		mongoSink, err := sink.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create MongoDB sink: %w", err)
		}

		logger.Infof(ctx, "Storing records in MongoDB collection %s.%s", cfg.MongoDatabase, cfg.MongoCollection)

		sinks = append(sinks, mongoSink)
		closers = append(closers, mongoSink.Close)
	}

	closeAll := func(ctx context.Context) error {
		var errs []error

		for _, closeSink := range closers {
			errs = append(errs, closeSink(ctx))
		}

		return errors.Join(errs...)
	}

	return sink.NewMulti(sinks...), closeAll, nil
}
