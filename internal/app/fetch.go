package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/oshokin/httpfmt/internal/config"
	"github.com/oshokin/httpfmt/internal/emitter"
	"github.com/oshokin/httpfmt/internal/format"
	"github.com/oshokin/httpfmt/internal/logger"
	http_transport "github.com/oshokin/httpfmt/internal/transport/http"
	"github.com/oshokin/httpfmt/internal/version"
)

// FetchOptions describes the request sent by the fetch command.
type FetchOptions struct {
	// Method is the HTTP method; GET when empty.
	Method string
	// URL is the target URL.
	URL string
	// Headers are "Name: value" lines.
	Headers []string
	// Data is the request body.
	Data string
}

// ExecuteFetchCommand sends one request through the logging transport, so the exchange is emitted to the sink.
// The response body is read and discarded.
func ExecuteFetchCommand(ctx context.Context, cfg *config.Config, opts FetchOptions) error {
	s, closeSink, err := NewSink(ctx, cfg)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeSink(ctx); closeErr != nil {
			logger.Warnf(ctx, "Failed to close sink: %v", closeErr)
		}
	}()

	client := NewClient(http.DefaultTransport, emitter.New(s, cfg.ParsedRecordLevel), cfg)

	resp, err := Fetch(ctx, client, opts)
	if err != nil {
		return err
	}

	logger.Infof(ctx, "%s %s: %s", requestMethod(opts), opts.URL, resp.Status)

	return nil
}

// NewClient returns an HTTP client whose exchanges are emitted through e.
func NewClient(next http.RoundTripper, e *emitter.Emitter, cfg *config.Config) *http.Client {
	transport := http_transport.NewLogTransport(next, e, cfg.FormatConfig(), cfg.ParsedMaxBodySize)

	return &http.Client{
		Timeout:   http_transport.DefaultTimeout,
		Transport: http_transport.NewUserAgentInjector(transport, http_transport.UserAgentPrefix+version.Short()),
	}
}

// Fetch sends the request described by opts with client and drains the response body.
func Fetch(ctx context.Context, client *http.Client, opts FetchOptions) (*http.Response, error) {
	var body io.Reader
	if opts.Data != "" {
		body = strings.NewReader(opts.Data)
	}

	req, err := http.NewRequestWithContext(ctx, requestMethod(opts), opts.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for _, line := range opts.Headers {
		header := format.ParseHeader(line)
		req.Header.Add(header.Name(), header.Value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if _, err = io.Copy(io.Discard, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp, nil
}

func requestMethod(opts FetchOptions) string {
	if opts.Method == "" {
		return http.MethodGet
	}

	return strings.ToUpper(opts.Method)
}
