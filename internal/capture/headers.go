package capture

import (
	"net/http"
	"slices"

	"github.com/oshokin/httpfmt/internal/format"
	"github.com/oshokin/httpfmt/internal/format/entity"
	"github.com/oshokin/httpfmt/internal/utils"
)

// headerSink is implemented by the request and response builders.
type headerSink[T any] interface {
	AddHeader(name, value string) T
	AddCookie(cookie *entity.Cookie) T
}

// addHeaders adds header to builder sorted by name, keeping the order of repeated values.
// Cookie and Set-Cookie headers are added as cookies instead.
func addHeaders[T any](header http.Header, builder headerSink[T]) {
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		for _, value := range header[name] {
			switch {
			case format.IsCookie(name):
				for _, cookie := range format.ParseCookieHeader(value) {
					builder.AddCookie(cookie)
				}
			case format.IsSetCookie(name):
				builder.AddCookie(format.ParseSetCookie(value))
			default:
				builder.AddHeader(name, value)
			}
		}
	}
}

// partHeaders converts multipart part headers into entities sorted by name.
func partHeaders(header map[string][]string) []*entity.Header {
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}

	slices.Sort(names)

	headers := make([]*entity.Header, 0, len(header))

	for _, name := range names {
		headers = append(headers, utils.Map(header[name], func(value string) *entity.Header {
			return entity.NewHeader(name, value)
		})...)
	}

	return headers
}
