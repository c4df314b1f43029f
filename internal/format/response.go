package format

import (
	"strconv"

	"github.com/oshokin/httpfmt/internal/format/converter"
	"github.com/oshokin/httpfmt/internal/format/entity"
	"github.com/oshokin/httpfmt/internal/format/prettifier"
)

// ResponseFormatter renders an HTTP response. Responses never carry a multipart body.
type ResponseFormatter struct {
	message

	statusCode int
	phrase     string
}

// StatusCode returns the response status code.
func (r *ResponseFormatter) StatusCode() int {
	return r.statusCode
}

// Phrase returns the reason phrase.
func (r *ResponseFormatter) Phrase() string {
	return r.phrase
}

// FormatTitle implements HTTPFormatter.
// The reason phrase is used if set, the numeric status code otherwise.
func (r *ResponseFormatter) FormatTitle() string {
	status := r.phrase
	if status == "" {
		status = strconv.Itoa(r.statusCode)
	}

	return ResponseTag + LineDelimiter + status
}

// FormatHead implements HTTPFormatter.
func (r *ResponseFormatter) FormatHead() string {
	return JoinParts(SectionDelimiter, r.FormatTitle(), r.FormatHeaders(), r.FormatCookies())
}

// FormatAsText implements HTTPFormatter.
func (r *ResponseFormatter) FormatAsText() (string, error) {
	return r.formatAsText(r.FormatHead())
}

// ResponseBuilder assembles a ResponseFormatter.
type ResponseBuilder struct {
	draft

	statusCode int
	phrase     string
}

// NewResponseBuilder starts a response with the given status code and reason phrase.
func NewResponseBuilder(statusCode int, phrase string) *ResponseBuilder {
	return &ResponseBuilder{
		statusCode: statusCode,
		phrase:     phrase,
	}
}

// Config replaces the whole rendering configuration.
func (b *ResponseBuilder) Config(cfg Config) *ResponseBuilder {
	b.setConfig(cfg)

	return b
}

// HeaderConverter sets the header converter.
func (b *ResponseBuilder) HeaderConverter(convert converter.HeaderFunc) *ResponseBuilder {
	b.cfg.HeaderConverter = convert

	return b
}

// CookieConverter sets the cookie converter.
func (b *ResponseBuilder) CookieConverter(convert converter.CookieFunc) *ResponseBuilder {
	b.cfg.CookieConverter = convert

	return b
}

// ParamConverter sets the form parameter converter.
func (b *ResponseBuilder) ParamConverter(convert converter.ParamFunc) *ResponseBuilder {
	b.cfg.ParamConverter = convert

	return b
}

// Prettifiers sets a copy of the prettifier table.
func (b *ResponseBuilder) Prettifiers(prettifiers map[string]prettifier.Prettifier) *ResponseBuilder {
	b.setPrettifiers(prettifiers)

	return b
}

// BodyTypes sets a copy of the body type table.
func (b *ResponseBuilder) BodyTypes(bodyTypes map[string]BodyType) *ResponseBuilder {
	b.setBodyTypes(bodyTypes)

	return b
}

// AddHeader appends a header.
func (b *ResponseBuilder) AddHeader(name, value string) *ResponseBuilder {
	b.addHeader(name, value)

	return b
}

// AddCookie appends a cookie.
func (b *ResponseBuilder) AddCookie(cookie *entity.Cookie) *ResponseBuilder {
	b.addCookie(cookie)

	return b
}

// AddCookieValue appends a cookie with only a name and a value.
func (b *ResponseBuilder) AddCookieValue(name, value string) *ResponseBuilder {
	b.addCookieValue(name, value)

	return b
}

// BodyText sets a TEXT body.
func (b *ResponseBuilder) BodyText(mimeType, payload string) *ResponseBuilder {
	b.setText(mimeType, payload)

	return b
}

// BodyBytes sets a BINARY body. A nil payload means no body.
func (b *ResponseBuilder) BodyBytes(mimeType string, payload []byte) *ResponseBuilder {
	b.setBytes(mimeType, payload)

	return b
}

// BodyParams sets a FORM body.
func (b *ResponseBuilder) BodyParams(params []*entity.Param) *ResponseBuilder {
	b.setParams(params)

	return b
}

// BodyParamsMap sets a FORM body from a map, ordered by name.
func (b *ResponseBuilder) BodyParamsMap(values map[string]string) *ResponseBuilder {
	b.setParams(FormFromMap(values))

	return b
}

// BodyParamsString sets a FORM body from a URL-encoded string.
func (b *ResponseBuilder) BodyParamsString(form string) *ResponseBuilder {
	params := ParseForm(form, "")
	if params == nil {
		params = []*entity.Param{}
	}

	b.setParams(params)

	return b
}

// Build returns the formatter.
func (b *ResponseBuilder) Build() *ResponseFormatter {
	return &ResponseFormatter{
		message:    b.build(),
		statusCode: b.statusCode,
		phrase:     b.phrase,
	}
}
