// Package prettifier re-serializes JSON, XML and HTML bodies into an indented canonical form.
//
// Every prettifier is best-effort: input that cannot be parsed is returned unchanged,
// and no prettifier ever panics or returns an error. Prettifiers keep no state between
// calls, so a single instance can be shared by any number of goroutines.
package prettifier
