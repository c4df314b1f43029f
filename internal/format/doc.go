// Package format renders HTTP requests, responses and multipart sections into
// Markdown-flavored text blocks for execution logs.
//
// The package holds the body classifier, the format-text engine that assembles
// tagged and fenced sections, parsing helpers for raw header, cookie and form values,
// and the Request, Response and Part formatters together with their builders.
// Everything here is a pure transformation: no I/O and no logging.
package format
