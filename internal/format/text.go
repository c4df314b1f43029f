package format

import (
	"strings"

	"github.com/oshokin/httpfmt/internal/format/converter"
	"github.com/oshokin/httpfmt/internal/format/entity"
	"github.com/oshokin/httpfmt/internal/format/prettifier"
)

// JoinParts joins the non-empty parts with delimiter.
func JoinParts(delimiter string, parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}

	return strings.Join(nonEmpty, delimiter)
}

// FormatList converts every item, drops empty lines and joins the rest with newlines.
// A non-empty tag is put on its own line in front of a non-empty result.
func FormatList[T any](items []T, convert func(T) string, tag string) string {
	lines := make([]string, 0, len(items))

	for _, item := range items {
		if line := convert(item); line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return ""
	}

	result := strings.Join(lines, LineDelimiter)
	if tag == "" {
		return result
	}

	return tag + LineDelimiter + result
}

// FormatHeaders renders headers under the Headers tag. A nil convert uses converter.DefaultHeader.
func FormatHeaders(headers []*entity.Header, convert converter.HeaderFunc) string {
	if convert == nil {
		convert = converter.DefaultHeader
	}

	return FormatList(headers, convert, HeadersTag)
}

// FormatCookies renders cookies under the Cookies tag. A nil convert uses converter.DefaultCookie.
func FormatCookies(cookies []*entity.Cookie, convert converter.CookieFunc) string {
	if convert == nil {
		convert = converter.DefaultCookie
	}

	return FormatList(cookies, convert, CookiesTag)
}

// FormatText appends a fenced body to header.
// The body is prettified only if prettifiers has an entry for exactly contentType.
// An empty body returns header unchanged.
func FormatText(
	header, body, tag string,
	prettifiers map[string]prettifier.Prettifier,
	contentType string,
) string {
	if body == "" {
		return header
	}

	if p, ok := prettifiers[contentType]; ok && p != nil {
		body = p.Apply(body)
	}

	return fence(header, tag, body)
}

// FormatFormText appends a fenced block with one converted parameter per line to header.
// An empty parameter list returns header unchanged. A nil convert uses converter.DefaultParam.
func FormatFormText(header string, params []*entity.Param, tag string, convert converter.ParamFunc) string {
	if convert == nil {
		convert = converter.DefaultParam
	}

	body := FormatList(params, convert, "")
	if body == "" {
		return header
	}

	return fence(header, tag, body)
}

func fence(header, tag, body string) string {
	var builder strings.Builder

	builder.Grow(len(header) + len(tag) + len(body) + 2*len(BodyHighlight) + 4)

	if header != "" {
		builder.WriteString(header)
		builder.WriteString(SectionDelimiter)
	}

	if tag != "" {
		builder.WriteString(tag)
		builder.WriteString(LineDelimiter)
	}

	builder.WriteString(BodyHighlight)
	builder.WriteString(LineDelimiter)
	builder.WriteString(body)
	builder.WriteString(LineDelimiter)
	builder.WriteString(BodyHighlight)

	return builder.String()
}
