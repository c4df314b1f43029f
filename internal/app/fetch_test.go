package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/httpfmt/internal/config"
	"github.com/oshokin/httpfmt/internal/emitter"
	"github.com/oshokin/httpfmt/internal/sink"
)

// TestFetch tests that a fetched exchange is emitted with the default User-Agent.
func TestFetch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "httpfmt/"))
		assert.Equal(t, "yes", r.Header.Get("X-Test"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, "payload", string(body))

		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("pong"))
	}))
	defer server.Close()

	cfg := config.Default()
	require.NoError(t, config.ValidateConfig(cfg))

	recorder := sink.NewRecorder()
	client := NewClient(http.DefaultTransport, emitter.New(recorder, zapcore.InfoLevel), cfg)

	resp, err := Fetch(context.Background(), client, FetchOptions{
		Method:  "post",
		URL:     server.URL + "/ping",
		Headers: []string{"X-Test: yes"},
		Data:    "payload",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	records := recorder.Records()
	require.Len(t, records, 2)
	assert.True(t, strings.HasPrefix(records[0].Text, "**>>> REQUEST**\nPOST to "+server.URL+"/ping"))
	assert.Contains(t, records[0].Text, "X-Test: yes")
	assert.Contains(t, records[1].Text, "pong")
}

// TestFetchInvalidURL tests that an unparsable URL is rejected before sending.
func TestFetchInvalidURL(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, config.ValidateConfig(cfg))

	client := NewClient(http.DefaultTransport, emitter.New(sink.NewRecorder(), zapcore.InfoLevel), cfg)

	_, err := Fetch(context.Background(), client, FetchOptions{URL: "://bad"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create request")
}
