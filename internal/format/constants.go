package format

// Markdown section tags.
const (
	// RequestTag opens the title of a request block.
	RequestTag = "**>>> REQUEST**"
	// ResponseTag opens the title of a response block.
	ResponseTag = "**<<< RESPONSE**"
	// HeadersTag precedes the header list.
	HeadersTag = "**Headers**"
	// CookiesTag precedes the cookie list.
	CookiesTag = "**Cookies**"
	// BodyTag precedes a text body.
	BodyTag = "**Body**"
	// BodyFormTag precedes a URL-encoded form body.
	BodyFormTag = "**Body form**"
	// BodyPartTag precedes a multipart section.
	BodyPartTag = "**Body part**"

	// LineDelimiter is the only line separator used in rendered text.
	LineDelimiter = "\n"
	// SectionDelimiter separates head sections.
	SectionDelimiter = LineDelimiter + LineDelimiter
	// BodyHighlight fences body content.
	BodyHighlight = "```"
)

// MIME types known to the default tables.
const (
	MimeApplicationJSON        = "application/json"
	MimeTextJSON               = "text/json"
	MimeTextPlain              = "text/plain"
	MimeTextHTML               = "text/html"
	MimeTextXML                = "text/xml"
	MimeApplicationXML         = "application/xml"
	MimeApplicationSOAPXML     = "application/soap+xml"
	MimeApplicationAtomXML     = "application/atom+xml"
	MimeApplicationXHTMLXML    = "application/xhtml+xml"
	MimeApplicationSVGXML      = "application/svg+xml"
	MimeFormURLEncoded         = "application/x-www-form-urlencoded"
	MimeMultipartFormData      = "multipart/form-data"
	MimeMultipartMixed         = "multipart/mixed"
	MimeMultipartAlternative   = "multipart/alternative"
	MimeMultipartDigest        = "multipart/digest"
	MimeMultipartParallel      = "multipart/parallel"
	MimeApplicationOctetStream = "application/octet-stream"
)

// Header names with special handling.
const (
	HeaderContentType = "Content-Type"
	HeaderCookie      = "Cookie"
	HeaderSetCookie   = "Set-Cookie"
)
