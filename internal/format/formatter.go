package format

// HTTPFormatter renders one HTTP message.
type HTTPFormatter interface {
	// FormatTitle returns the tagged first line block of the message.
	FormatTitle() string
	// FormatHeaders returns the tagged header list, or an empty string if there are no headers.
	FormatHeaders() string
	// FormatCookies returns the tagged cookie list, or an empty string if there are no cookies.
	FormatCookies() string
	// FormatHead joins the title, headers and cookies.
	FormatHead() string
	// FormatAsText renders the head with a NONE, TEXT or FORM body.
	FormatAsText() (string, error)
	// Type returns the body type.
	Type() BodyType
	// MimeType returns the MIME type of the body, or an empty string.
	MimeType() string
	// BinaryBody returns the payload of a BINARY body.
	BinaryBody() ([]byte, error)
}

// MultipartFormatter is an HTTPFormatter that may carry a multipart body.
type MultipartFormatter interface {
	HTTPFormatter

	// MultipartBody returns the sections of a MULTIPART body.
	MultipartBody() ([]*PartFormatter, error)
}

// Compile-time checks.
var (
	_ MultipartFormatter = (*RequestFormatter)(nil)
	_ HTTPFormatter      = (*ResponseFormatter)(nil)
)
