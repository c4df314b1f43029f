package format

import (
	"maps"
	"strconv"
	"strings"
)

// BodyType selects how a formatter renders and emits its body.
type BodyType uint8

// Supported body types.
const (
	// BodyTypeNone means the message has no body.
	BodyTypeNone BodyType = iota
	// BodyTypeText is a textual body rendered inside a fenced block.
	BodyTypeText
	// BodyTypeForm is a URL-encoded form rendered one parameter per line.
	BodyTypeForm
	// BodyTypeBinary is an opaque payload emitted as an attachment.
	BodyTypeBinary
	// BodyTypeMultipart is a list of sections, each emitted separately.
	BodyTypeMultipart
)

// String returns the upper-case name of the body type.
func (t BodyType) String() string {
	switch t {
	case BodyTypeNone:
		return "NONE"
	case BodyTypeText:
		return "TEXT"
	case BodyTypeForm:
		return "FORM"
	case BodyTypeBinary:
		return "BINARY"
	case BodyTypeMultipart:
		return "MULTIPART"
	default:
		return "BodyType(" + strconv.Itoa(int(t)) + ")"
	}
}

//nolint:gochecknoglobals // Read-only default table, handed out as copies.
var defaultBodyTypes = map[string]BodyType{
	MimeApplicationJSON:      BodyTypeText,
	MimeTextJSON:             BodyTypeText,
	MimeTextPlain:            BodyTypeText,
	MimeTextHTML:             BodyTypeText,
	MimeTextXML:              BodyTypeText,
	MimeApplicationXML:       BodyTypeText,
	MimeApplicationSOAPXML:   BodyTypeText,
	MimeApplicationAtomXML:   BodyTypeText,
	MimeApplicationXHTMLXML:  BodyTypeText,
	MimeApplicationSVGXML:    BodyTypeText,
	MimeFormURLEncoded:       BodyTypeForm,
	MimeMultipartFormData:    BodyTypeMultipart,
	MimeMultipartMixed:       BodyTypeMultipart,
	MimeMultipartAlternative: BodyTypeMultipart,
	MimeMultipartDigest:      BodyTypeMultipart,
	MimeMultipartParallel:    BodyTypeMultipart,
}

// DefaultBodyTypes returns a copy of the default MIME type to body type table.
func DefaultBodyTypes() map[string]BodyType {
	return maps.Clone(defaultBodyTypes)
}

// BodyTypeOf classifies a Content-Type value using table.
// An empty content type has no body. Parameters are stripped and the bare MIME type
// is matched exactly; anything not listed is BINARY. A nil table uses the defaults.
func BodyTypeOf(contentType string, table map[string]BodyType) BodyType {
	if contentType == "" {
		return BodyTypeNone
	}

	if table == nil {
		table = defaultBodyTypes
	}

	if bodyType, ok := table[ParseMimeType(contentType)]; ok {
		return bodyType
	}

	return BodyTypeBinary
}

// ParseMimeType strips parameters from a Content-Type value.
func ParseMimeType(contentType string) string {
	mimeType, _, _ := strings.Cut(contentType, ";")

	return strings.TrimSpace(mimeType)
}

// GetMimeType returns the bare MIME type of contentType, or application/octet-stream if it is empty.
func GetMimeType(contentType string) string {
	if contentType == "" {
		return MimeApplicationOctetStream
	}

	return ParseMimeType(contentType)
}

// ParseBodyType parses a body type name such as "TEXT", case-insensitively.
func ParseBodyType(name string) (BodyType, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "NONE":
		return BodyTypeNone, true
	case "TEXT":
		return BodyTypeText, true
	case "FORM":
		return BodyTypeForm, true
	case "BINARY":
		return BodyTypeBinary, true
	case "MULTIPART":
		return BodyTypeMultipart, true
	default:
		return BodyTypeBinary, false
	}
}
