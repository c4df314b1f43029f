// Package http provides custom HTTP transport utilities:
// a RoundTripper emitting every exchange as Markdown log records and a default header injector.
package http
