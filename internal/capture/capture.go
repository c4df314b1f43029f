package capture

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/oshokin/httpfmt/internal/format"
)

var (
	// ErrNilRequest indicates that a nil request was given.
	ErrNilRequest = errors.New("request is nil")
	// ErrNilResponse indicates that a nil response was given.
	ErrNilResponse = errors.New("response is nil")
	// ErrUnsupportedEncoding indicates a content coding that cannot be decoded.
	ErrUnsupportedEncoding = errors.New("unsupported content encoding")
)

const (
	schemeHTTP  = "http"
	schemeHTTPS = "https"
	headerHost  = "Host"
)

// Request builds a formatter of req with body as its payload.
// body is the raw payload read off req.Body; the request body itself is not read.
func Request(req *http.Request, body []byte, cfg format.Config) (*format.RequestFormatter, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	builder := format.NewRequestBuilder(req.Method, requestURI(req)).Config(cfg)

	header := req.Header
	if req.Host != "" && header.Get(headerHost) == "" {
		header = header.Clone()
		if header == nil {
			header = make(http.Header, 1)
		}

		header.Set(headerHost, req.Host)
	}

	addHeaders[*format.RequestBuilder](header, builder)

	switch payload := classify(header, body, cfg.BodyTypes); payload.bodyType {
	case format.BodyTypeText:
		builder.BodyText(payload.mimeType, payload.text)
	case format.BodyTypeForm:
		builder.BodyParams(format.ParseForm(string(payload.data), payload.contentType))
	case format.BodyTypeMultipart:
		parts, err := parseMultipart(payload.data, payload.contentType, cfg)
		if err != nil {
			builder.BodyBytes(payload.mimeType, payload.data)

			break
		}

		for _, part := range parts {
			builder.AddBodyPart(part)
		}
	case format.BodyTypeBinary:
		builder.BodyBytes(payload.mimeType, payload.data)
	case format.BodyTypeNone:
	}

	return builder.Build(), nil
}

// Response builds a formatter of resp with body as its payload.
// Multipart responses are captured as binary payloads.
func Response(resp *http.Response, body []byte, cfg format.Config) (*format.ResponseFormatter, error) {
	if resp == nil {
		return nil, ErrNilResponse
	}

	builder := format.NewResponseBuilder(resp.StatusCode, reasonPhrase(resp)).Config(cfg)

	addHeaders[*format.ResponseBuilder](resp.Header, builder)

	switch payload := classify(resp.Header, body, cfg.BodyTypes); payload.bodyType {
	case format.BodyTypeText:
		builder.BodyText(payload.mimeType, payload.text)
	case format.BodyTypeForm:
		builder.BodyParams(format.ParseForm(string(payload.data), payload.contentType))
	case format.BodyTypeBinary, format.BodyTypeMultipart:
		builder.BodyBytes(payload.mimeType, payload.data)
	case format.BodyTypeNone:
	}

	return builder.Build(), nil
}

// requestURI returns the absolute URI of req.
// Server-side requests carry only the path in URL, so the host and scheme are restored.
func requestURI(req *http.Request) string {
	if req.URL == nil {
		return req.RequestURI
	}

	if req.URL.Host != "" || req.Host == "" {
		return req.URL.String()
	}

	uri := url.URL{
		Scheme:   schemeHTTP,
		Host:     req.Host,
		Path:     req.URL.Path,
		RawPath:  req.URL.RawPath,
		RawQuery: req.URL.RawQuery,
		Fragment: req.URL.Fragment,
	}

	if req.TLS != nil {
		uri.Scheme = schemeHTTPS
	}

	return uri.String()
}

// reasonPhrase extracts the phrase from a status line such as "200 OK".
func reasonPhrase(resp *http.Response) string {
	status := strings.TrimSpace(resp.Status)

	code := strconv.Itoa(resp.StatusCode)
	if phrase, found := strings.CutPrefix(status, code); found {
		return strings.TrimSpace(phrase)
	}

	return status
}
