package converter

import (
	"strconv"
	"strings"
	"time"

	"github.com/oshokin/httpfmt/internal/format/entity"
)

// HeaderFunc converts a header into one display line.
// A nil header converts to an empty string, which is dropped by the list formatters.
type HeaderFunc func(header *entity.Header) string

// CookieFunc converts a cookie into one display line.
type CookieFunc func(cookie *entity.Cookie) string

// ParamFunc converts a form parameter into one display line.
type ParamFunc func(param *entity.Param) string

// URIFunc converts a request URI before it is rendered in the title.
type URIFunc func(uri string) string

const (
	// RemovedTag replaces sanitized values. It is already HTML-escaped.
	RemovedTag = "&lt;removed&gt;"

	// DefaultCookieDateLayout is the layout of the cookie Expires attribute.
	DefaultCookieDateLayout = "Mon, 02 Jan 2006 15:04:05 MST"

	// undefinedMaxAge is the Max-Age value that means "not set".
	undefinedMaxAge = -1

	nameDelimiter      = ": "
	attributeSeparator = "; "
	attributeValue     = "="
)

//nolint:gochecknoglobals // Stateless converters used as constants.
var (
	// DefaultHeader renders "Name: value" with Markdown emphasis escaped.
	DefaultHeader HeaderFunc = defaultHeader

	// DefaultCookie renders cookies with Expires formatted in UTC.
	DefaultCookie = NewCookie(DefaultCookieDateLayout, time.UTC)

	// DefaultParam renders "name: value".
	DefaultParam ParamFunc = defaultParam

	// DefaultURI returns the URI unchanged.
	DefaultURI URIFunc = func(uri string) string { return uri }
)

func defaultHeader(header *entity.Header) string {
	if header == nil {
		return ""
	}

	return header.Name() + nameDelimiter + strings.ReplaceAll(header.Value, "*", `\*`)
}

func defaultParam(param *entity.Param) string {
	if param == nil {
		return ""
	}

	return param.Name() + nameDelimiter + param.Value
}

// NewCookie returns a cookie converter that formats Expires with the given layout in the given location.
// Attributes are rendered in a fixed order: Comment, Path, Domain, Max-Age, Secure, HttpOnly,
// Expires, Version, SameSite. A cookie without value and attributes renders as its name alone.
func NewCookie(dateLayout string, location *time.Location) CookieFunc {
	if location == nil {
		location = time.UTC
	}

	return func(cookie *entity.Cookie) string {
		if cookie == nil {
			return ""
		}

		values := make([]string, 0, 10)

		if cookie.Value != "" {
			values = append(values, cookie.Value)
		}

		values = appendAttribute(values, "Comment", cookie.Comment)
		values = appendAttribute(values, "Path", cookie.Path)
		values = appendAttribute(values, "Domain", cookie.Domain)

		if cookie.MaxAge != nil && *cookie.MaxAge != undefinedMaxAge {
			values = appendAttribute(values, "Max-Age", strconv.FormatInt(*cookie.MaxAge, 10))
		}

		if cookie.Secured != nil && *cookie.Secured {
			values = appendAttribute(values, "Secure", "true")
		}

		if cookie.HTTPOnly != nil && *cookie.HTTPOnly {
			values = appendAttribute(values, "HttpOnly", "true")
		}

		if cookie.ExpiryDate != nil {
			values = appendAttribute(values, "Expires", cookie.ExpiryDate.In(location).Format(dateLayout))
		}

		if cookie.Version != nil {
			values = appendAttribute(values, "Version", strconv.Itoa(*cookie.Version))
		}

		values = appendAttribute(values, "SameSite", cookie.SameSite)

		if len(values) == 0 {
			return cookie.Name()
		}

		return cookie.Name() + nameDelimiter + strings.Join(values, attributeSeparator)
	}
}

func appendAttribute(values []string, name, value string) []string {
	if value == "" {
		return values
	}

	return append(values, name+attributeValue+value)
}
