package format

import (
	"fmt"
	"maps"
	"slices"

	"github.com/oshokin/httpfmt/internal/format/entity"
	"github.com/oshokin/httpfmt/internal/format/prettifier"
)

// body is a tagged union: only the field matching kind is meaningful.
type body struct {
	kind   BodyType
	text   string
	params []*entity.Param
	binary []byte
	parts  []*PartFormatter
}

// message holds what requests and responses have in common.
type message struct {
	cfg      Config
	headers  []*entity.Header
	cookies  []*entity.Cookie
	mimeType string
	body     body
}

// FormatHeaders implements HTTPFormatter.
func (m *message) FormatHeaders() string {
	return FormatHeaders(m.headers, m.cfg.HeaderConverter)
}

// FormatCookies implements HTTPFormatter.
func (m *message) FormatCookies() string {
	return FormatCookies(m.cookies, m.cfg.CookieConverter)
}

// Type implements HTTPFormatter.
func (m *message) Type() BodyType {
	return m.body.kind
}

// MimeType implements HTTPFormatter.
func (m *message) MimeType() string {
	return m.mimeType
}

// Headers returns the message headers in insertion order.
func (m *message) Headers() []*entity.Header {
	return m.headers
}

// Cookies returns the message cookies in insertion order.
func (m *message) Cookies() []*entity.Cookie {
	return m.cookies
}

// TextBody returns the payload of a TEXT body.
func (m *message) TextBody() (string, error) {
	if m.body.kind != BodyTypeText {
		return "", mismatch("text", m.body.kind)
	}

	return m.body.text, nil
}

// FormBody returns the parameters of a FORM body.
func (m *message) FormBody() ([]*entity.Param, error) {
	if m.body.kind != BodyTypeForm {
		return nil, mismatch("form", m.body.kind)
	}

	return m.body.params, nil
}

// BinaryBody implements HTTPFormatter.
func (m *message) BinaryBody() ([]byte, error) {
	if m.body.kind != BodyTypeBinary {
		return nil, mismatch("binary", m.body.kind)
	}

	return m.body.binary, nil
}

// formatAsText renders head followed by the body.
func (m *message) formatAsText(head string) (string, error) {
	switch m.body.kind {
	case BodyTypeNone:
		return head, nil
	case BodyTypeText:
		return FormatText(head, m.body.text, BodyTag, m.cfg.Prettifiers, m.mimeType), nil
	case BodyTypeForm:
		return FormatFormText(head, m.body.params, BodyFormTag, m.cfg.ParamConverter), nil
	default:
		return "", fmt.Errorf("%w: cannot render %s body as text", ErrBodyTypeMismatch, m.body.kind)
	}
}

func mismatch(accessor string, actual BodyType) error {
	return fmt.Errorf("%w: cannot return %s body for body type %s", ErrBodyTypeMismatch, accessor, actual)
}

// draft accumulates builder state shared by request and response builders.
type draft struct {
	cfg      Config
	headers  []*entity.Header
	cookies  []*entity.Cookie
	mimeType string
	body     body
	hasBody  bool
}

func (d *draft) setText(mimeType, payload string) {
	d.mimeType = mimeType
	d.body = body{kind: BodyTypeText, text: payload}
	d.hasBody = true
}

func (d *draft) setBytes(mimeType string, payload []byte) {
	d.mimeType = mimeType
	d.body = body{kind: BodyTypeBinary, binary: payload}
	d.hasBody = payload != nil
}

func (d *draft) setParams(params []*entity.Param) {
	d.mimeType = MimeFormURLEncoded
	d.body = body{kind: BodyTypeForm, params: slices.Clone(params)}
	d.hasBody = params != nil
}

func (d *draft) setPrettifiers(prettifiers map[string]prettifier.Prettifier) {
	d.cfg.Prettifiers = maps.Clone(prettifiers)
}

func (d *draft) setBodyTypes(bodyTypes map[string]BodyType) {
	d.cfg.BodyTypes = maps.Clone(bodyTypes)
}

func (d *draft) addPart(part *PartFormatter) {
	if part == nil {
		return
	}

	if d.body.kind != BodyTypeMultipart {
		d.body = body{kind: BodyTypeMultipart}
	}

	d.body.parts = append(d.body.parts, part)
	d.hasBody = true
}

func (d *draft) addHeader(name, value string) {
	d.headers = append(d.headers, entity.NewHeader(name, value))
}

func (d *draft) addCookie(cookie *entity.Cookie) {
	if cookie != nil {
		d.cookies = append(d.cookies, cookie)
	}
}

func (d *draft) addCookieValue(name, value string) {
	cookie := entity.NewCookie(name)
	cookie.Value = value

	d.cookies = append(d.cookies, cookie)
}

// build resolves the defaults. Without a body the message is NONE whatever mime type was set.
func (d *draft) build() message {
	m := message{
		cfg:     d.cfg.withDefaults(),
		headers: slices.Clone(d.headers),
		cookies: slices.Clone(d.cookies),
	}

	if d.hasBody {
		m.mimeType = d.mimeType
		m.body = d.body
		m.body.parts = slices.Clone(d.body.parts)
	}

	return m
}

// setConfig replaces the whole rendering configuration.
func (d *draft) setConfig(cfg Config) {
	d.cfg = cfg
}
