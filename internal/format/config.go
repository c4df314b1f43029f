package format

import (
	"maps"

	"github.com/oshokin/httpfmt/internal/format/converter"
	"github.com/oshokin/httpfmt/internal/format/prettifier"
)

// Config is the rendering configuration of a formatter.
// Zero fields are resolved to the package defaults when a formatter is built.
// Maps in a Config are treated as read-only once handed to a builder.
type Config struct {
	// URIConverter renders the request URI in the title.
	URIConverter converter.URIFunc
	// HeaderConverter renders one header line.
	HeaderConverter converter.HeaderFunc
	// CookieConverter renders one cookie line.
	CookieConverter converter.CookieFunc
	// ParamConverter renders one form parameter line.
	ParamConverter converter.ParamFunc
	// Prettifiers maps a bare MIME type to the prettifier applied to text bodies of that type.
	Prettifiers map[string]prettifier.Prettifier
	// BodyTypes maps a bare MIME type to its body type.
	BodyTypes map[string]BodyType
}

//nolint:gochecknoglobals // Read-only default table, handed out as copies.
var defaultPrettifiers = NewPrettifiers(prettifier.DefaultIndent, prettifier.DefaultIndent, 0)

// DefaultConfig returns a configuration with every field set to its default.
func DefaultConfig() Config {
	return Config{
		URIConverter:    converter.DefaultURI,
		HeaderConverter: converter.DefaultHeader,
		CookieConverter: converter.DefaultCookie,
		ParamConverter:  converter.DefaultParam,
		Prettifiers:     DefaultPrettifiers(),
		BodyTypes:       DefaultBodyTypes(),
	}
}

// SanitizingConfig returns the default configuration with redacting header, cookie and URI converters.
func SanitizingConfig() Config {
	cfg := DefaultConfig()

	cfg.URIConverter = converter.SanitizingURI
	cfg.HeaderConverter = converter.SanitizingHeader
	cfg.CookieConverter = converter.SanitizingCookie

	return cfg
}

// DefaultPrettifiers returns a copy of the default MIME type to prettifier table.
func DefaultPrettifiers() map[string]prettifier.Prettifier {
	return maps.Clone(defaultPrettifiers)
}

// NewPrettifiers builds the standard prettifier table with custom indentation.
// A positive cacheSize wraps each prettifier into an LRU cache of that size.
func NewPrettifiers(xmlIndent, htmlIndent, cacheSize int) map[string]prettifier.Prettifier {
	var (
		jsonPrettifier = prettifier.NewCached(prettifier.NewJSON(prettifier.DefaultIndent), cacheSize)
		xmlPrettifier  = prettifier.NewCached(prettifier.NewXML(xmlIndent), cacheSize)
		htmlPrettifier = prettifier.NewCached(prettifier.NewHTML(htmlIndent), cacheSize)
	)

	return map[string]prettifier.Prettifier{
		MimeApplicationXML:      xmlPrettifier,
		MimeApplicationSOAPXML:  xmlPrettifier,
		MimeApplicationAtomXML:  xmlPrettifier,
		MimeApplicationSVGXML:   xmlPrettifier,
		MimeApplicationXHTMLXML: xmlPrettifier,
		MimeTextXML:             xmlPrettifier,
		MimeApplicationJSON:     jsonPrettifier,
		MimeTextJSON:            jsonPrettifier,
		MimeTextHTML:            htmlPrettifier,
	}
}

// withDefaults fills the unset fields of c.
func (c Config) withDefaults() Config {
	if c.URIConverter == nil {
		c.URIConverter = converter.DefaultURI
	}

	if c.HeaderConverter == nil {
		c.HeaderConverter = converter.DefaultHeader
	}

	if c.CookieConverter == nil {
		c.CookieConverter = converter.DefaultCookie
	}

	if c.ParamConverter == nil {
		c.ParamConverter = converter.DefaultParam
	}

	if c.Prettifiers == nil {
		c.Prettifiers = defaultPrettifiers
	}

	if c.BodyTypes == nil {
		c.BodyTypes = defaultBodyTypes
	}

	return c
}
