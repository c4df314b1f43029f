package capture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"

	"github.com/oshokin/httpfmt/internal/format"
)

const boundaryParameter = "boundary"

// ErrMissingBoundary indicates a multipart content type without a boundary.
var ErrMissingBoundary = errors.New("multipart content type has no boundary")

// parseMultipart splits a multipart body into part formatters in declared order.
// A part is TEXT if its content type, text/plain by default, classifies as TEXT, and BINARY otherwise.
func parseMultipart(data []byte, contentType string, cfg format.Config) ([]*format.PartFormatter, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to parse multipart content type: %w", err)
	}

	boundary := params[boundaryParameter]
	if boundary == "" {
		return nil, ErrMissingBoundary
	}

	reader := multipart.NewReader(bytes.NewReader(data), boundary)

	var parts []*format.PartFormatter

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read multipart part: %w", err)
		}

		formatter, err := capturePart(part, cfg)
		if err != nil {
			return nil, err
		}

		parts = append(parts, formatter)
	}

	return parts, nil
}

func capturePart(part *multipart.Part, cfg format.Config) (*format.PartFormatter, error) {
	defer part.Close()

	content, err := io.ReadAll(part)
	if err != nil {
		return nil, fmt.Errorf("failed to read multipart part body: %w", err)
	}

	contentType := part.Header.Get(format.HeaderContentType)
	if contentType == "" {
		contentType = format.MimeTextPlain
	}

	var builder *format.PartBuilder

	if format.BodyTypeOf(contentType, cfg.BodyTypes) == format.BodyTypeText {
		builder = format.NewTextPartBuilder(format.GetMimeType(contentType), decodeText(content, contentType))
	} else {
		builder = format.NewBinaryPartBuilder(format.GetMimeType(contentType), content)
	}

	return builder.
		Config(cfg).
		ControlName(part.FormName()).
		FileName(part.FileName()).
		Charset(format.CharsetOf(contentType)).
		Headers(partHeaders(part.Header)).
		Build(), nil
}
