package capture

import (
	"net/http"
	"unicode/utf8"

	"github.com/oshokin/httpfmt/internal/format"
)

// TruncatedSuffix marks a body cut at the size limit.
const TruncatedSuffix = "... [truncated]"

// Truncate cuts a TEXT or FORM body longer than maxBodySize bytes after content decoding.
// The body type is found the way Request and Response find it, sniffing a missing Content-Type.
// The cut never splits a UTF-8 sequence and TruncatedSuffix is appended. A truncated body is
// returned decoded, so the returned header copy no longer lists a content coding.
// Other bodies and a non-positive maxBodySize leave header and body unchanged.
func Truncate(
	header http.Header,
	body []byte,
	table map[string]format.BodyType,
	maxBodySize int64,
) (http.Header, []byte) {
	if maxBodySize <= 0 || len(body) == 0 {
		return header, body
	}

	decoded, err := Decode(body, header.Get(headerContentEncoding))
	if err != nil || int64(len(decoded)) <= maxBodySize {
		return header, body
	}

	contentType := header.Get(format.HeaderContentType)
	if contentType == "" {
		contentType = http.DetectContentType(decoded)
	}

	bodyType := format.BodyTypeOf(contentType, table)
	if bodyType != format.BodyTypeText && bodyType != format.BodyTypeForm {
		return header, body
	}

	if header.Get(headerContentEncoding) != "" {
		header = header.Clone()
		header.Del(headerContentEncoding)
	}

	cut := int(maxBodySize)
	for cut > 0 && !utf8.RuneStart(decoded[cut]) {
		cut--
	}

	truncated := make([]byte, 0, cut+len(TruncatedSuffix))
	truncated = append(truncated, decoded[:cut]...)
	truncated = append(truncated, TruncatedSuffix...)

	return header, truncated
}
