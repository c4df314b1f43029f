package entity

// Header is a single HTTP header or multipart part header.
type Header struct {
	// name is the header name, immutable after construction.
	name string
	// Value is the raw header value.
	Value string
}

// NewHeader creates a header with the given name and value.
func NewHeader(name, value string) *Header {
	return &Header{name: name, Value: value}
}

// Name returns the header name.
func (h *Header) Name() string {
	return h.name
}

// Clone returns a copy of the header.
func (h *Header) Clone() *Header {
	return &Header{name: h.name, Value: h.Value}
}
