package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/oshokin/httpfmt/internal/capture"
	"github.com/oshokin/httpfmt/internal/config"
	"github.com/oshokin/httpfmt/internal/emitter"
	"github.com/oshokin/httpfmt/internal/format"
	"github.com/oshokin/httpfmt/internal/logger"
)

const responsePrefix = "HTTP/"

// ErrRenderFailed indicates that at least one file could not be rendered.
var ErrRenderFailed = errors.New("some files could not be rendered")

// ExecuteRenderCommand renders every file in paths and emits the records to the sink selected by cfg.
// A failing file is logged and the remaining files are still rendered.
func ExecuteRenderCommand(ctx context.Context, cfg *config.Config, paths []string) error {
	s, closeSink, err := NewSink(ctx, cfg)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeSink(ctx); closeErr != nil {
			logger.Warnf(ctx, "Failed to close sink: %v", closeErr)
		}
	}()

	var (
		e         = emitter.New(s, cfg.ParsedRecordLevel)
		formatCfg = cfg.FormatConfig()
		failed    int
	)

	for _, path := range paths {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		count, renderErr := RenderFile(ctx, path, formatCfg, cfg.ParsedMaxBodySize, e)
		if renderErr != nil {
			logger.Errorf(ctx, "Failed to render %s: %v", path, renderErr)

			failed++

			continue
		}

		logger.Debugf(ctx, "Rendered %d message(s) from %s", count, path)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrRenderFailed, failed, len(paths))
	}

	return nil
}

// RenderFile emits every HTTP message stored in the file at path.
// Messages of one file share an exchange id.
func RenderFile(
	ctx context.Context,
	path string,
	cfg format.Config,
	maxBodySize int64,
	e *emitter.Emitter,
) (int, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return 0, fmt.Errorf("failed to open message file: %w", err)
	}

	defer file.Close() //nolint:errcheck // Error on close is not critical here.

	ctx = emitter.WithExchangeID(ctx, uuid.NewString())

	return RenderMessages(ctx, file, cfg, maxBodySize, e)
}

// RenderMessages reads raw HTTP/1.x messages from r until EOF and emits each one.
// A message starting with "HTTP/" is a response; anything else is a request.
// A response without Content-Length takes the rest of the input as its body.
// Text bodies longer than maxBodySize are truncated; a non-positive maxBodySize disables the limit.
func RenderMessages(
	ctx context.Context,
	r io.Reader,
	cfg format.Config,
	maxBodySize int64,
	e *emitter.Emitter,
) (int, error) {
	var (
		reader = bufio.NewReader(r)
		count  int
	)

	for {
		if err := skipBlankLines(reader); err != nil {
			if errors.Is(err, io.EOF) {
				return count, nil
			}

			return count, err
		}

		formatter, err := readMessage(reader, cfg, maxBodySize)
		if err != nil {
			return count, fmt.Errorf("failed to parse message %d: %w", count+1, err)
		}

		if err = e.Emit(ctx, formatter); err != nil {
			return count, fmt.Errorf("failed to emit message %d: %w", count+1, err)
		}

		count++
	}
}

func readMessage(reader *bufio.Reader, cfg format.Config, maxBodySize int64) (format.HTTPFormatter, error) {
	prefix, err := reader.Peek(len(responsePrefix))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if bytes.Equal(prefix, []byte(responsePrefix)) {
		resp, readErr := http.ReadResponse(reader, nil)
		if readErr != nil {
			return nil, readErr
		}

		body, readErr := readAndClose(resp.Body)
		if readErr != nil {
			return nil, readErr
		}

		resp.Header, body = capture.Truncate(resp.Header, body, cfg.BodyTypes, maxBodySize)

		return capture.Response(resp, body, cfg)
	}

	req, err := http.ReadRequest(reader)
	if err != nil {
		return nil, err
	}

	body, err := readAndClose(req.Body)
	if err != nil {
		return nil, err
	}

	req.Header, body = capture.Truncate(req.Header, body, cfg.BodyTypes, maxBodySize)

	return capture.Request(req, body, cfg)
}

func readAndClose(body io.ReadCloser) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	data, err := io.ReadAll(body)
	closeErr := body.Close()

	return data, errors.Join(err, closeErr)
}

// skipBlankLines consumes the empty lines separating messages.
func skipBlankLines(reader *bufio.Reader) error {
	for {
		next, err := reader.Peek(1)
		if err != nil {
			return err
		}

		if next[0] != '\n' && next[0] != '\r' {
			return nil
		}

		if _, err = reader.ReadByte(); err != nil {
			return err
		}
	}
}
