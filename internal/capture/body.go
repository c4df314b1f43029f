package capture

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/oshokin/httpfmt/internal/format"
)

const (
	headerContentEncoding = "Content-Encoding"

	encodingIdentity = "identity"
	encodingGzip     = "gzip"
	encodingXGzip    = "x-gzip"
	encodingDeflate  = "deflate"
	encodingZstd     = "zstd"

	encodingSeparator = ","
)

// payload is a decoded and classified body.
type payload struct {
	bodyType    format.BodyType
	contentType string
	mimeType    string
	text        string
	data        []byte
}

// classify decodes body by the Content-Encoding of header and classifies it with table.
// A body without Content-Type is sniffed. A body that cannot be decoded stays BINARY.
func classify(header http.Header, body []byte, table map[string]format.BodyType) payload {
	if len(body) == 0 {
		return payload{bodyType: format.BodyTypeNone}
	}

	contentType := header.Get(format.HeaderContentType)

	decoded, err := Decode(body, header.Get(headerContentEncoding))
	if err != nil {
		return payload{
			bodyType:    format.BodyTypeBinary,
			contentType: contentType,
			mimeType:    format.GetMimeType(contentType),
			data:        body,
		}
	}

	if contentType == "" {
		contentType = http.DetectContentType(decoded)
	}

	result := payload{
		bodyType:    format.BodyTypeOf(contentType, table),
		contentType: contentType,
		mimeType:    format.GetMimeType(contentType),
		data:        decoded,
	}

	if result.bodyType == format.BodyTypeText {
		result.text = decodeText(decoded, contentType)
	}

	return result
}

// Decode reverses the content codings listed in contentEncoding, last applied first.
// gzip, deflate and zstd are supported; any other coding is an error.
func Decode(body []byte, contentEncoding string) ([]byte, error) {
	codings := strings.Split(contentEncoding, encodingSeparator)

	for i := len(codings) - 1; i >= 0; i-- {
		coding := strings.ToLower(strings.TrimSpace(codings[i]))

		var err error

		switch coding {
		case "", encodingIdentity:
			continue
		case encodingGzip, encodingXGzip:
			body, err = decodeGzip(body)
		case encodingDeflate:
			body, err = decodeDeflate(body)
		case encodingZstd:
			body, err = decodeZstd(body)
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, coding)
		}

		if err != nil {
			return nil, err
		}
	}

	return body, nil
}

func decodeGzip(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer reader.Close()

	result, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress gzip data: %w", err)
	}

	return result, nil
}

// decodeDeflate reads zlib-wrapped data and falls back to raw deflate streams some servers send.
func decodeDeflate(data []byte) ([]byte, error) {
	if reader, err := zlib.NewReader(bytes.NewReader(data)); err == nil {
		result, readErr := io.ReadAll(reader)
		_ = reader.Close()

		if readErr == nil {
			return result, nil
		}
	}

	reader := flate.NewReader(bytes.NewReader(data))
	defer reader.Close()

	result, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress deflate data: %w", err)
	}

	return result, nil
}

func decodeZstd(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer decoder.Close()

	result, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress zstd data: %w", err)
	}

	return result, nil
}

// decodeText converts data to UTF-8 using the charset parameter of contentType.
// Unknown charsets and decoding failures keep the bytes as they are.
func decodeText(data []byte, contentType string) string {
	charset := format.CharsetOf(contentType)
	if charset == "" {
		return string(data)
	}

	enc, err := htmlindex.Get(charset)
	if err != nil || enc == nil {
		return string(data)
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}

	return string(decoded)
}
