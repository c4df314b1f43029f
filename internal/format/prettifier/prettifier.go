package prettifier

import (
	"bytes"
	"strings"
	"sync"
)

// Prettifier reformats a body string of one content type.
type Prettifier interface {
	// Apply returns the prettified text, or text itself if it cannot be parsed.
	Apply(text string) string
}

// Func adapts a plain function to the Prettifier interface.
type Func func(text string) string

// Apply calls f(text).
func (f Func) Apply(text string) string {
	return f(text)
}

const (
	// DefaultIndent is the default number of spaces per nesting level.
	DefaultIndent = 2

	// maxPooledBufferSize is the largest buffer returned to the pool.
	maxPooledBufferSize = 64 * 1024
)

// bufferPool keeps render buffers so concurrent calls never share one.
//
//nolint:gochecknoglobals // sync.Pool is safe for concurrent use.
var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

func getBuffer() *bytes.Buffer {
	buf, _ := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()

	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}

	bufferPool.Put(buf)
}

func writeIndent(buf *bytes.Buffer, width int) {
	for range width {
		buf.WriteByte(' ')
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
