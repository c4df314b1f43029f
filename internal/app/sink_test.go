package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/httpfmt/internal/config"
	"github.com/oshokin/httpfmt/internal/sink"
)

// TestNewSink tests the sink selection by output path.
func TestNewSink(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	cfg := config.Default()

	s, closeSink, err := NewSink(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &sink.Logger{}, s)
	require.NoError(t, closeSink(ctx))

	cfg.OutputPath = filepath.Join(t.TempDir(), "records")

	s, closeSink, err = NewSink(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &sink.Directory{}, s)
	require.NoError(t, closeSink(ctx))
}
