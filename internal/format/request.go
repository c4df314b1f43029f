package format

import (
	"github.com/oshokin/httpfmt/internal/format/converter"
	"github.com/oshokin/httpfmt/internal/format/entity"
	"github.com/oshokin/httpfmt/internal/format/prettifier"
)

// RequestFormatter renders an HTTP request.
type RequestFormatter struct {
	message

	method string
	uri    string
}

// Method returns the request method.
func (r *RequestFormatter) Method() string {
	return r.method
}

// URI returns the request URI as given, before conversion.
func (r *RequestFormatter) URI() string {
	return r.uri
}

// FormatTitle implements HTTPFormatter.
func (r *RequestFormatter) FormatTitle() string {
	return RequestTag + LineDelimiter + r.method + " to " + r.cfg.URIConverter(r.uri)
}

// FormatHead implements HTTPFormatter.
func (r *RequestFormatter) FormatHead() string {
	return JoinParts(SectionDelimiter, r.FormatTitle(), r.FormatHeaders(), r.FormatCookies())
}

// FormatAsText implements HTTPFormatter.
func (r *RequestFormatter) FormatAsText() (string, error) {
	return r.formatAsText(r.FormatHead())
}

// MultipartBody implements MultipartFormatter.
func (r *RequestFormatter) MultipartBody() ([]*PartFormatter, error) {
	if r.body.kind != BodyTypeMultipart {
		return nil, mismatch("multipart", r.body.kind)
	}

	return r.body.parts, nil
}

// RequestBuilder assembles a RequestFormatter.
type RequestBuilder struct {
	draft

	method string
	uri    string
}

// NewRequestBuilder starts a request with the given method and URI.
func NewRequestBuilder(method, uri string) *RequestBuilder {
	return &RequestBuilder{
		method: method,
		uri:    uri,
	}
}

// Config replaces the whole rendering configuration.
func (b *RequestBuilder) Config(cfg Config) *RequestBuilder {
	b.setConfig(cfg)

	return b
}

// URIConverter sets the URI converter.
func (b *RequestBuilder) URIConverter(convert converter.URIFunc) *RequestBuilder {
	b.cfg.URIConverter = convert

	return b
}

// HeaderConverter sets the header converter.
func (b *RequestBuilder) HeaderConverter(convert converter.HeaderFunc) *RequestBuilder {
	b.cfg.HeaderConverter = convert

	return b
}

// CookieConverter sets the cookie converter.
func (b *RequestBuilder) CookieConverter(convert converter.CookieFunc) *RequestBuilder {
	b.cfg.CookieConverter = convert

	return b
}

// ParamConverter sets the form parameter converter.
func (b *RequestBuilder) ParamConverter(convert converter.ParamFunc) *RequestBuilder {
	b.cfg.ParamConverter = convert

	return b
}

// Prettifiers sets a copy of the prettifier table.
func (b *RequestBuilder) Prettifiers(prettifiers map[string]prettifier.Prettifier) *RequestBuilder {
	b.setPrettifiers(prettifiers)

	return b
}

// BodyTypes sets a copy of the body type table.
func (b *RequestBuilder) BodyTypes(bodyTypes map[string]BodyType) *RequestBuilder {
	b.setBodyTypes(bodyTypes)

	return b
}

// AddHeader appends a header.
func (b *RequestBuilder) AddHeader(name, value string) *RequestBuilder {
	b.addHeader(name, value)

	return b
}

// AddCookie appends a cookie.
func (b *RequestBuilder) AddCookie(cookie *entity.Cookie) *RequestBuilder {
	b.addCookie(cookie)

	return b
}

// AddCookieValue appends a cookie with only a name and a value.
func (b *RequestBuilder) AddCookieValue(name, value string) *RequestBuilder {
	b.addCookieValue(name, value)

	return b
}

// BodyText sets a TEXT body.
func (b *RequestBuilder) BodyText(mimeType, payload string) *RequestBuilder {
	b.setText(mimeType, payload)

	return b
}

// BodyBytes sets a BINARY body. A nil payload means no body.
func (b *RequestBuilder) BodyBytes(mimeType string, payload []byte) *RequestBuilder {
	b.setBytes(mimeType, payload)

	return b
}

// BodyParams sets a FORM body.
func (b *RequestBuilder) BodyParams(params []*entity.Param) *RequestBuilder {
	b.setParams(params)

	return b
}

// BodyParamsMap sets a FORM body from a map, ordered by name.
func (b *RequestBuilder) BodyParamsMap(values map[string]string) *RequestBuilder {
	b.setParams(FormFromMap(values))

	return b
}

// BodyParamsString sets a FORM body from a URL-encoded string.
func (b *RequestBuilder) BodyParamsString(form string) *RequestBuilder {
	params := ParseForm(form, "")
	if params == nil {
		params = []*entity.Param{}
	}

	b.setParams(params)

	return b
}

// AddBodyPart appends a multipart section and switches the body to MULTIPART.
func (b *RequestBuilder) AddBodyPart(part *PartFormatter) *RequestBuilder {
	b.addPart(part)

	return b
}

// Build returns the formatter.
func (b *RequestBuilder) Build() *RequestFormatter {
	return &RequestFormatter{
		message: b.build(),
		method:  b.method,
		uri:     b.uri,
	}
}
