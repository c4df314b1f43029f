package entity

import "time"

// Cookie is an HTTP cookie with its optional attributes.
// Empty strings and nil pointers mean "attribute not set".
type Cookie struct {
	// name is the cookie name, immutable after construction.
	name string
	// Value is the cookie value.
	Value string
	// Comment is the RFC 2109 comment attribute.
	Comment string
	// Domain is the Domain attribute.
	Domain string
	// Path is the Path attribute.
	Path string
	// MaxAge is the Max-Age attribute in seconds.
	MaxAge *int64
	// Secured reports the Secure flag.
	Secured *bool
	// HTTPOnly reports the HttpOnly flag.
	HTTPOnly *bool
	// Version is the RFC 2109 version attribute.
	Version *int
	// ExpiryDate is the Expires attribute.
	ExpiryDate *time.Time
	// SameSite is the SameSite attribute.
	SameSite string
}

// NewCookie creates a cookie with only a name set.
func NewCookie(name string) *Cookie {
	return &Cookie{name: name}
}

// Name returns the cookie name.
func (c *Cookie) Name() string {
	return c.name
}

// Clone returns a deep copy of the cookie, so the copy can be redacted
// without touching the original.
func (c *Cookie) Clone() *Cookie {
	clone := *c

	clone.MaxAge = clonePtr(c.MaxAge)
	clone.Secured = clonePtr(c.Secured)
	clone.HTTPOnly = clonePtr(c.HTTPOnly)
	clone.Version = clonePtr(c.Version)
	clone.ExpiryDate = clonePtr(c.ExpiryDate)

	return &clone
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}

	c := *v

	return &c
}
