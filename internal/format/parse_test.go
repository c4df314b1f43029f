package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/httpfmt/internal/format/entity"
)

// TestParseHeader tests the ParseHeader function.
func TestParseHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line          string
		expectedName  string
		expectedValue string
	}{
		{
			line:          "Content-Type: multipart/form-data; boundary=LjalBsLkAYGgsOfzTPStiqo8-Ur9wnV9",
			expectedName:  "Content-Type",
			expectedValue: "multipart/form-data; boundary=LjalBsLkAYGgsOfzTPStiqo8-Ur9wnV9",
		},
		{line: "Host: docker.local:8080", expectedName: "Host", expectedValue: "docker.local:8080"},
		{line: "X-Custom-Header: a: b", expectedName: "X-Custom-Header", expectedValue: "a: b"},
		{line: "X-Custom-Header: ", expectedName: "X-Custom-Header", expectedValue: ""},
		{line: "X-Custom-Header", expectedName: "X-Custom-Header", expectedValue: ""},
		{line: "", expectedName: "", expectedValue: ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			header := ParseHeader(tt.line)
			assert.Equal(t, tt.expectedName, header.Name())
			assert.Equal(t, tt.expectedValue, header.Value)
		})
	}
}

// TestParseSetCookie tests the ParseSetCookie function.
func TestParseSetCookie(t *testing.T) {
	t.Parallel()

	expiry := time.Date(2022, time.September, 6, 9, 32, 51, 0, time.UTC)

	tests := []struct {
		name             string
		headerValue      string
		expectedName     string
		expectedValue    string
		expectedExpiry   *time.Time
		expectedPath     string
		expectedSecure   bool
		expectedHTTPOnly bool
	}{
		{
			name:          "name and value only",
			headerValue:   "test=value",
			expectedName:  "test",
			expectedValue: "value",
		},
		{
			name:             "all flags",
			headerValue:      "test=value; expires=Tue, 06 Sep 2022 09:32:51 UTC; path=/; secure; httponly",
			expectedName:     "test",
			expectedValue:    "value",
			expectedExpiry:   &expiry,
			expectedPath:     "/",
			expectedSecure:   true,
			expectedHTTPOnly: true,
		},
		{
			name:             "dashed date and upper-case attributes",
			headerValue:      "test=va%20lue; Expires=Tue, 06-Sep-2022 09:32:51 GMT; Path=/; HttpOnly",
			expectedName:     "test",
			expectedValue:    "va lue",
			expectedExpiry:   &expiry,
			expectedPath:     "/",
			expectedHTTPOnly: true,
		},
		{
			name:          "broken date is dropped",
			headerValue:   "test=value; expires=yesterday",
			expectedName:  "test",
			expectedValue: "value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cookie := ParseSetCookie(tt.headerValue)
			assert.Equal(t, tt.expectedName, cookie.Name())
			assert.Equal(t, tt.expectedValue, cookie.Value)
			assert.Equal(t, tt.expectedPath, cookie.Path)

			require.NotNil(t, cookie.Secured)
			require.NotNil(t, cookie.HTTPOnly)
			assert.Equal(t, tt.expectedSecure, *cookie.Secured)
			assert.Equal(t, tt.expectedHTTPOnly, *cookie.HTTPOnly)

			if tt.expectedExpiry == nil {
				assert.Nil(t, cookie.ExpiryDate)

				return
			}

			require.NotNil(t, cookie.ExpiryDate)
			assert.True(t, tt.expectedExpiry.Equal(*cookie.ExpiryDate), "got %s", cookie.ExpiryDate)
		})
	}
}

// TestParseSetCookieNumbers tests Max-Age and Version parsing.
func TestParseSetCookieNumbers(t *testing.T) {
	t.Parallel()

	cookie := ParseSetCookie("sid=1; Max-Age=3600; Version=1; SameSite=Lax; Domain=example.com; Comment=hi")

	require.NotNil(t, cookie.MaxAge)
	require.NotNil(t, cookie.Version)
	assert.Equal(t, int64(3600), *cookie.MaxAge)
	assert.Equal(t, 1, *cookie.Version)
	assert.Equal(t, "Lax", cookie.SameSite)
	assert.Equal(t, "example.com", cookie.Domain)
	assert.Equal(t, "hi", cookie.Comment)

	broken := ParseSetCookie("sid=1; Max-Age=soon")
	assert.Nil(t, broken.MaxAge)
}

// TestParseCookieHeader tests the ParseCookieHeader function.
func TestParseCookieHeader(t *testing.T) {
	t.Parallel()

	cookies := ParseCookieHeader("a=1; b=two%20words;; c")
	require.Len(t, cookies, 3)

	assert.Equal(t, "a", cookies[0].Name())
	assert.Equal(t, "1", cookies[0].Value)
	assert.Equal(t, "b", cookies[1].Name())
	assert.Equal(t, "two words", cookies[1].Value)
	assert.Equal(t, "c", cookies[2].Name())
	assert.Empty(t, cookies[2].Value)

	assert.Empty(t, ParseCookieHeader(""))
}

// TestIsCookie tests the IsCookie and IsSetCookie functions.
func TestIsCookie(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCookie("cookie"))
	assert.True(t, IsCookie("Cookie"))
	assert.False(t, IsCookie("Cook"))
	assert.True(t, IsSetCookie("set-cookie"))
	assert.True(t, IsSetCookie("Set-Cookie"))
	assert.False(t, IsSetCookie("setcookie"))
}

// TestParseForm tests the ParseForm function.
func TestParseForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		contentType string
		expected    []*entity.Param
	}{
		{
			name:        "percent-encoded values",
			body:        "test1=test1&test2=wefwfqwef%20df%20qwef%20%23%24%25&test3=&F%23%24%25DFFG=dclk%20345%25%2056%20",
			contentType: MimeFormURLEncoded,
			expected: []*entity.Param{
				entity.NewParam("test1", "test1"),
				entity.NewParam("test2", "wefwfqwef df qwef #$%"),
				entity.NewParam("test3", ""),
				entity.NewParam("F#$%DFFG", "dclk 345% 56 "),
			},
		},
		{
			name:     "plus is a space",
			body:     "q=a+b",
			expected: []*entity.Param{entity.NewParam("q", "a b")},
		},
		{
			name:        "latin-1 charset",
			body:        "name=caf%E9",
			contentType: "application/x-www-form-urlencoded; charset=ISO-8859-1",
			expected:    []*entity.Param{entity.NewParam("name", "café")},
		},
		{
			name:     "name without value",
			body:     "flag&x=1&",
			expected: []*entity.Param{entity.NewParam("flag", ""), entity.NewParam("x", "1")},
		},
		{
			name:     "broken escape is kept",
			body:     "x=%zz",
			expected: []*entity.Param{entity.NewParam("x", "%zz")},
		},
		{
			name:     "empty body",
			body:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ParseForm(tt.body, tt.contentType))
		})
	}
}

// TestFormFromMap tests that map parameters are ordered by name.
func TestFormFromMap(t *testing.T) {
	t.Parallel()

	params := FormFromMap(map[string]string{"b": "2", "a": "1"})

	assert.Equal(t, []*entity.Param{entity.NewParam("a", "1"), entity.NewParam("b", "2")}, params)
	assert.Empty(t, FormFromMap(nil))
}

// TestCharsetOf tests the CharsetOf function.
func TestCharsetOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "utf-16", CharsetOf("text/html; charset=utf-16"))
	assert.Equal(t, "UTF-8", CharsetOf(`text/plain;Charset="UTF-8"`))
	assert.Empty(t, CharsetOf("application/json"))
}
