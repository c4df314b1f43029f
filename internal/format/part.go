package format

import (
	"fmt"
	"maps"
	"slices"

	"github.com/oshokin/httpfmt/internal/format/converter"
	"github.com/oshokin/httpfmt/internal/format/entity"
	"github.com/oshokin/httpfmt/internal/format/prettifier"
)

// PartType is the payload kind of a multipart section.
type PartType uint8

// Supported part types.
const (
	// PartTypeText is a textual section rendered inside a fenced block.
	PartTypeText PartType = iota
	// PartTypeBinary is a section emitted as an attachment.
	PartTypeBinary
)

// String returns the upper-case name of the part type.
func (t PartType) String() string {
	switch t {
	case PartTypeText:
		return "TEXT"
	case PartTypeBinary:
		return "BINARY"
	default:
		return fmt.Sprintf("PartType(%d)", t)
	}
}

// PartFormatter renders one section of a multipart request body.
type PartFormatter struct {
	partType    PartType
	mimeType    string
	text        string
	binary      []byte
	controlName string
	fileName    string
	charset     string
	headers     []*entity.Header

	headerConverter converter.HeaderFunc
	prettifiers     map[string]prettifier.Prettifier
}

// Type returns the part type.
func (p *PartFormatter) Type() PartType {
	return p.partType
}

// MimeType returns the content type of the part.
func (p *PartFormatter) MimeType() string {
	return p.mimeType
}

// ControlName returns the form field name of the part.
func (p *PartFormatter) ControlName() string {
	return p.controlName
}

// FileName returns the file name of the part.
func (p *PartFormatter) FileName() string {
	return p.fileName
}

// Charset returns the charset of the part.
func (p *PartFormatter) Charset() string {
	return p.charset
}

// Headers returns the part headers.
func (p *PartFormatter) Headers() []*entity.Header {
	return p.headers
}

// TextPayload returns the payload of a TEXT part.
func (p *PartFormatter) TextPayload() (string, error) {
	if p.partType != PartTypeText {
		return "", fmt.Errorf("%w: cannot return text for payload type %s", ErrPartTypeMismatch, p.partType)
	}

	return p.text, nil
}

// BinaryPayload returns the payload of a BINARY part.
func (p *PartFormatter) BinaryPayload() ([]byte, error) {
	if p.partType != PartTypeBinary {
		return nil, fmt.Errorf("%w: cannot return binary data for payload type %s", ErrPartTypeMismatch, p.partType)
	}

	return p.binary, nil
}

// FormatHeaders returns the tagged header list of the part.
func (p *PartFormatter) FormatHeaders() string {
	return FormatHeaders(p.headers, p.headerConverter)
}

// FormatAsText renders the headers and the fenced payload of a TEXT part.
func (p *PartFormatter) FormatAsText() (string, error) {
	text, err := p.TextPayload()
	if err != nil {
		return "", err
	}

	return FormatText(p.FormatHeaders(), text, BodyPartTag, p.prettifiers, p.mimeType), nil
}

// FormatForBinaryDataPrefix returns the caption of a BINARY part: the headers, the part tag and the MIME type.
func (p *PartFormatter) FormatForBinaryDataPrefix() string {
	postfix := BodyPartTag + LineDelimiter + p.mimeType

	return JoinParts(SectionDelimiter, p.FormatHeaders(), postfix)
}

// PartBuilder assembles a PartFormatter.
type PartBuilder struct {
	part PartFormatter
}

// NewTextPartBuilder starts a TEXT part.
func NewTextPartBuilder(mimeType, payload string) *PartBuilder {
	return &PartBuilder{
		part: PartFormatter{
			partType: PartTypeText,
			mimeType: mimeType,
			text:     payload,
		},
	}
}

// NewBinaryPartBuilder starts a BINARY part.
func NewBinaryPartBuilder(mimeType string, payload []byte) *PartBuilder {
	return &PartBuilder{
		part: PartFormatter{
			partType: PartTypeBinary,
			mimeType: mimeType,
			binary:   payload,
		},
	}
}

// ControlName sets the form field name.
func (b *PartBuilder) ControlName(name string) *PartBuilder {
	b.part.controlName = name

	return b
}

// FileName sets the file name.
func (b *PartBuilder) FileName(name string) *PartBuilder {
	b.part.fileName = name

	return b
}

// Charset sets the charset.
func (b *PartBuilder) Charset(charset string) *PartBuilder {
	b.part.charset = charset

	return b
}

// Headers replaces the header list with a copy of headers.
func (b *PartBuilder) Headers(headers []*entity.Header) *PartBuilder {
	b.part.headers = slices.Clone(headers)

	return b
}

// AddHeader appends a header.
func (b *PartBuilder) AddHeader(name, value string) *PartBuilder {
	b.part.headers = append(b.part.headers, entity.NewHeader(name, value))

	return b
}

// HeaderConverter sets the header converter.
func (b *PartBuilder) HeaderConverter(convert converter.HeaderFunc) *PartBuilder {
	b.part.headerConverter = convert

	return b
}

// Prettifiers sets a copy of the prettifier table.
func (b *PartBuilder) Prettifiers(prettifiers map[string]prettifier.Prettifier) *PartBuilder {
	b.part.prettifiers = maps.Clone(prettifiers)

	return b
}

// Config takes the header converter and the prettifier table from cfg.
func (b *PartBuilder) Config(cfg Config) *PartBuilder {
	b.part.headerConverter = cfg.HeaderConverter
	b.part.prettifiers = cfg.Prettifiers

	return b
}

// Build returns the formatter.
func (b *PartBuilder) Build() *PartFormatter {
	part := b.part
	part.headers = slices.Clone(b.part.headers)

	if part.headerConverter == nil {
		part.headerConverter = converter.DefaultHeader
	}

	if part.prettifiers == nil {
		part.prettifiers = defaultPrettifiers
	}

	return &part
}
