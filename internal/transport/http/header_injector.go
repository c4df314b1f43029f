package http

import (
	"net/http"
)

// HeaderInjector is a custom http.RoundTripper that adds default headers to requests missing them.
// The caller's request is never modified: a clone is sent when a header is added.
type HeaderInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// headers holds the default values.
	headers http.Header
}

// NewHeaderInjector creates and returns a new instance of HeaderInjector.
func NewHeaderInjector(next http.RoundTripper, headers http.Header) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return &HeaderInjector{
		next:    next,
		headers: headers.Clone(),
	}
}

// NewUserAgentInjector returns a HeaderInjector that sets only the User-Agent header.
func NewUserAgentInjector(next http.RoundTripper, userAgent string) http.RoundTripper {
	return NewHeaderInjector(next, http.Header{headerUserAgent: {userAgent}})
}

// RoundTrip executes a single HTTP transaction with the missing default headers added.
// It implements the http.RoundTripper interface.
func (t *HeaderInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	cloned := false

	for name, values := range t.headers {
		if len(values) == 0 || req.Header.Get(name) != "" {
			continue
		}

		if !cloned {
			req = req.Clone(req.Context())
			if req.Header == nil {
				req.Header = make(http.Header, len(t.headers))
			}

			cloned = true
		}

		req.Header[name] = append([]string(nil), values...)
	}

	return t.next.RoundTrip(req)
}
