package format

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/oshokin/httpfmt/internal/format/converter"
	"github.com/oshokin/httpfmt/internal/format/entity"
)

const (
	headerNameDelimiter   = ": "
	keyValueSeparator     = "="
	cookieAttrSeparator   = ";"
	formParamSeparator    = "&"
	charsetParameter      = "charset"
	cookieAttrComment     = "comment"
	cookieAttrPath        = "path"
	cookieAttrDomain      = "domain"
	cookieAttrMaxAge      = "max-age"
	cookieAttrMaxAgeShort = "maxage"
	cookieAttrSecure      = "secure"
	cookieAttrHTTPOnly    = "httponly"
	cookieAttrExpires     = "expires"
	cookieAttrVersion     = "version"
	cookieAttrSameSite    = "samesite"
)

// keyValue is one "key=value" item of a header value.
type keyValue struct {
	key   string
	value string
}

// ParseHeader parses a "Name: value" line. A line without the delimiter becomes a header with an empty value.
func ParseHeader(line string) *entity.Header {
	name, value, _ := strings.Cut(line, headerNameDelimiter)

	return entity.NewHeader(name, value)
}

// IsCookie reports whether name is the request Cookie header name.
func IsCookie(name string) bool {
	return strings.EqualFold(name, HeaderCookie)
}

// IsSetCookie reports whether name is the response Set-Cookie header name.
func IsSetCookie(name string) bool {
	return strings.EqualFold(name, HeaderSetCookie)
}

// ParseSetCookie parses a Set-Cookie header value.
// Attribute names are case-insensitive and values are URL-decoded.
// Secure and HttpOnly are set to whether the flag is present.
// Attributes that fail to parse are left unset.
func ParseSetCookie(headerValue string) *entity.Cookie {
	pairs := splitKeyValues(headerValue)
	if len(pairs) == 0 {
		return entity.NewCookie("")
	}

	cookie := entity.NewCookie(pairs[0].key)
	cookie.Value = pairs[0].value

	attributes := make(map[string]string, len(pairs)-1)
	for _, pair := range pairs[1:] {
		attributes[strings.ToLower(pair.key)] = pair.value
	}

	cookie.Comment = attributes[cookieAttrComment]
	cookie.Path = attributes[cookieAttrPath]
	cookie.Domain = attributes[cookieAttrDomain]
	cookie.SameSite = attributes[cookieAttrSameSite]

	if maxAge, ok := lookupAny(attributes, cookieAttrMaxAge, cookieAttrMaxAgeShort); ok {
		if parsed, err := strconv.ParseInt(maxAge, 10, 64); err == nil {
			cookie.MaxAge = &parsed
		}
	}

	if version, ok := attributes[cookieAttrVersion]; ok {
		if parsed, err := strconv.Atoi(version); err == nil {
			cookie.Version = &parsed
		}
	}

	_, secure := attributes[cookieAttrSecure]
	_, httpOnly := attributes[cookieAttrHTTPOnly]
	cookie.Secured = &secure
	cookie.HTTPOnly = &httpOnly

	// Both "Tue, 06 Sep 2022 09:32:51 GMT" and "Wed, 06-Sep-2023 11:22:09 GMT" are seen in the wild.
	if expires, ok := attributes[cookieAttrExpires]; ok {
		expires = strings.ReplaceAll(expires, "-", " ")
		if parsed, err := time.Parse(converter.DefaultCookieDateLayout, expires); err == nil {
			cookie.ExpiryDate = &parsed
		}
	}

	return cookie
}

// ParseCookieHeader parses a request Cookie header value ("a=1; b=2") into cookies.
func ParseCookieHeader(headerValue string) []*entity.Cookie {
	pairs := splitKeyValues(headerValue)
	cookies := make([]*entity.Cookie, 0, len(pairs))

	for _, pair := range pairs {
		if pair.key == "" {
			continue
		}

		cookie := entity.NewCookie(pair.key)
		cookie.Value = pair.value

		cookies = append(cookies, cookie)
	}

	return cookies
}

// ParseForm parses a URL-encoded form body.
// Names and values are decoded with the charset parameter of contentType, UTF-8 by default.
func ParseForm(body, contentType string) []*entity.Param {
	if body == "" {
		return nil
	}

	decoder := charsetEncoding(contentType).NewDecoder()
	segments := strings.Split(body, formParamSeparator)
	params := make([]*entity.Param, 0, len(segments))

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		name, value, _ := strings.Cut(segment, keyValueSeparator)

		params = append(params, entity.NewParam(
			decodeFormValue(name, decoder),
			decodeFormValue(value, decoder),
		))
	}

	return params
}

// FormFromMap converts a name to value map into parameters ordered by name.
func FormFromMap(values map[string]string) []*entity.Param {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}

	slices.Sort(names)

	params := make([]*entity.Param, 0, len(names))
	for _, name := range names {
		params = append(params, entity.NewParam(name, values[name]))
	}

	return params
}

// CharsetOf returns the charset parameter of a Content-Type value, or an empty string.
func CharsetOf(contentType string) string {
	for _, pair := range splitKeyValues(contentType) {
		if strings.EqualFold(pair.key, charsetParameter) {
			return strings.Trim(pair.value, `"`)
		}
	}

	return ""
}

func charsetEncoding(contentType string) encoding.Encoding {
	charset := CharsetOf(contentType)
	if charset == "" {
		return unicode.UTF8
	}

	enc, err := htmlindex.Get(charset)
	if err != nil || enc == nil {
		return unicode.UTF8
	}

	return enc
}

func decodeFormValue(raw string, decoder *encoding.Decoder) string {
	unescaped, err := url.QueryUnescape(raw)
	if err != nil {
		return raw
	}

	decoded, err := decoder.String(unescaped)
	if err != nil {
		return unescaped
	}

	return decoded
}

// splitKeyValues splits "k1=v1; k2; k3=v3" into URL-decoded pairs.
func splitKeyValues(headerValue string) []keyValue {
	segments := strings.Split(headerValue, cookieAttrSeparator)
	pairs := make([]keyValue, 0, len(segments))

	for i, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" && i > 0 {
			continue
		}

		key, value, _ := strings.Cut(segment, keyValueSeparator)
		if unescaped, err := url.QueryUnescape(value); err == nil {
			value = unescaped
		}

		pairs = append(pairs, keyValue{key: key, value: value})
	}

	return pairs
}

func lookupAny(values map[string]string, keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := values[key]; ok {
			return value, true
		}
	}

	return "", false
}
