package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/oshokin/httpfmt/internal/capture"
	"github.com/oshokin/httpfmt/internal/emitter"
	"github.com/oshokin/httpfmt/internal/format"
	"github.com/oshokin/httpfmt/internal/logger"
)

// LogTransport is a custom http.RoundTripper that emits every request and response as log records.
// Bodies are read in full and restored, so the caller and the next round tripper see them unchanged.
// Emission failures are logged and never fail the round trip.
type LogTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// emitter sends the captured formatters to the sink.
	emitter *emitter.Emitter
	// cfg is the rendering configuration of captured messages.
	cfg format.Config
	// maxBodySize is the largest text body emitted in full; 0 disables the limit.
	maxBodySize int64
}

// Static error definitions for better error handling.
var (
	// ErrNilRequest indicates that the HTTP request is nil.
	ErrNilRequest = errors.New("request is nil")
)

// NewLogTransport creates and returns a new instance of LogTransport.
// A nil next uses http.DefaultTransport. A non-positive maxBodySize disables truncation.
func NewLogTransport(next http.RoundTripper, e *emitter.Emitter, cfg format.Config, maxBodySize int64) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return &LogTransport{
		next:        next,
		emitter:     e,
		cfg:         cfg,
		maxBodySize: max(maxBodySize, 0),
	}
}

// RoundTrip executes a single HTTP transaction and emits the request and the response.
// It implements the http.RoundTripper interface.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	exchangeID := uuid.NewString()

	ctx := emitter.WithExchangeID(req.Context(), exchangeID)
	ctx = logger.WithKV(ctx, "exchange_id", exchangeID)
	req = req.Clone(ctx)

	requestBody, err := readBody(&req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	if req.Body != nil {
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(requestBody)), nil
		}
	}

	t.emitRequest(ctx, req, requestBody)

	// Record the start time to measure the duration of the request.
	startTime := time.Now()

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		logger.Debugf(ctx, "Request failed: %s %s | Error: %v", req.Method, req.URL.String(), err)

		return nil, err
	}

	logger.Debugf(ctx, "%s %s [%d] %s", req.Method, req.URL.Path, resp.StatusCode, time.Since(startTime))

	responseBody, err := readBody(&resp.Body)
	if err != nil {
		_ = resp.Body.Close()

		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	t.emitResponse(ctx, resp, responseBody)

	return resp, nil
}

func (t *LogTransport) emitRequest(ctx context.Context, req *http.Request, body []byte) {
	shadow := *req
	shadow.Header, body = capture.Truncate(req.Header, body, t.cfg.BodyTypes, t.maxBodySize)

	formatter, err := capture.Request(&shadow, body, t.cfg)
	if err != nil {
		logger.Warnf(ctx, "Failed to capture request: %v", err)

		return
	}

	if err = t.emitter.Emit(ctx, formatter); err != nil {
		logger.Warnf(ctx, "Failed to emit request: %v", err)
	}
}

func (t *LogTransport) emitResponse(ctx context.Context, resp *http.Response, body []byte) {
	shadow := *resp
	shadow.Header, body = capture.Truncate(resp.Header, body, t.cfg.BodyTypes, t.maxBodySize)

	formatter, err := capture.Response(&shadow, body, t.cfg)
	if err != nil {
		logger.Warnf(ctx, "Failed to capture response: %v", err)

		return
	}

	if err = t.emitter.Emit(ctx, formatter); err != nil {
		logger.Warnf(ctx, "Failed to emit response: %v", err)
	}
}

// readBody reads *body in full and replaces it with a reader over the same bytes.
func readBody(body *io.ReadCloser) ([]byte, error) {
	if *body == nil || *body == http.NoBody {
		return nil, nil
	}

	data, err := io.ReadAll(*body)
	closeErr := (*body).Close()

	if err != nil {
		return nil, err
	}

	if closeErr != nil {
		return nil, closeErr
	}

	*body = io.NopCloser(bytes.NewReader(data))

	return data, nil
}
