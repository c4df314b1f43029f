package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// UserAgentPrefix starts the User-Agent string sent by httpfmt clients.
	UserAgentPrefix = "httpfmt/"

	headerUserAgent = "User-Agent"
)
