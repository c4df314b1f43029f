package capture

import (
	"bytes"
	"crypto/tls"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/httpfmt/internal/format"
	"github.com/oshokin/httpfmt/internal/format/entity"
)

func headerNames(headers []*entity.Header) []string {
	names := make([]string, 0, len(headers))
	for _, header := range headers {
		names = append(names, header.Name())
	}

	return names
}

func gzipped(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer

	writer := gzip.NewWriter(&buf)
	_, err := writer.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return buf.Bytes()
}

// TestRequestNil tests that a nil request is rejected.
func TestRequestNil(t *testing.T) {
	t.Parallel()

	_, err := Request(nil, nil, format.DefaultConfig())
	require.ErrorIs(t, err, ErrNilRequest)

	_, err = Response(nil, nil, format.DefaultConfig())
	require.ErrorIs(t, err, ErrNilResponse)
}

// TestRequestHeadersAndCookies tests header ordering and cookie extraction.
func TestRequestHeadersAndCookies(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "https://example.com/path?q=1", nil)
	req.Header.Set("X-Trace", "abc")
	req.Header.Add("Accept", "text/html")
	req.Header.Add("Accept", "application/json")
	req.Header.Set("Cookie", "sid=1; theme=dark")

	formatter, err := Request(req, nil, format.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, formatter.Method())
	assert.Equal(t, "https://example.com/path?q=1", formatter.URI())
	assert.Equal(t, format.BodyTypeNone, formatter.Type())
	assert.Equal(t, []string{"Accept", "Accept", "Host", "X-Trace"}, headerNames(formatter.Headers()))
	assert.Equal(t, "application/json", formatter.Headers()[1].Value)

	cookies := formatter.Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, "sid", cookies[0].Name())
	assert.Equal(t, "dark", cookies[1].Value)
}

// TestRequestServerSideURI tests that server requests get an absolute URI.
func TestRequestServerSideURI(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/items?page=2", nil)
	req.Host = "api.example.com"

	formatter, err := Request(req, nil, format.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "http://api.example.com/items?page=2", formatter.URI())

	req.TLS = &tls.ConnectionState{}

	formatter, err = Request(req, nil, format.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/items?page=2", formatter.URI())
}

// TestRequestBodies tests body classification of captured requests.
func TestRequestBodies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		contentType      string
		contentEncoding  string
		body             []byte
		expectedType     format.BodyType
		expectedMimeType string
		check            func(t *testing.T, formatter *format.RequestFormatter)
	}{
		{
			name:             "json text",
			contentType:      "application/json; charset=utf-8",
			body:             []byte(`{"a":1}`),
			expectedType:     format.BodyTypeText,
			expectedMimeType: "application/json",
			check: func(t *testing.T, formatter *format.RequestFormatter) {
				t.Helper()

				text, err := formatter.TextBody()
				require.NoError(t, err)
				assert.Equal(t, `{"a":1}`, text)
			},
		},
		{
			name:             "gzipped json",
			contentType:      "application/json",
			contentEncoding:  "gzip",
			body:             gzipped(t, `{"b":2}`),
			expectedType:     format.BodyTypeText,
			expectedMimeType: "application/json",
			check: func(t *testing.T, formatter *format.RequestFormatter) {
				t.Helper()

				text, err := formatter.TextBody()
				require.NoError(t, err)
				assert.Equal(t, `{"b":2}`, text)
			},
		},
		{
			name:             "unknown encoding stays binary",
			contentType:      "application/json",
			contentEncoding:  "br",
			body:             []byte{0x0b, 0x01},
			expectedType:     format.BodyTypeBinary,
			expectedMimeType: "application/json",
		},
		{
			name:             "form",
			contentType:      "application/x-www-form-urlencoded",
			body:             []byte("a=1&b=x+y"),
			expectedType:     format.BodyTypeForm,
			expectedMimeType: format.MimeFormURLEncoded,
			check: func(t *testing.T, formatter *format.RequestFormatter) {
				t.Helper()

				params, err := formatter.FormBody()
				require.NoError(t, err)
				require.Len(t, params, 2)
				assert.Equal(t, "x y", params[1].Value)
			},
		},
		{
			name:             "latin-1 text",
			contentType:      "text/plain; charset=ISO-8859-1",
			body:             []byte{'c', 'a', 'f', 0xe9},
			expectedType:     format.BodyTypeText,
			expectedMimeType: "text/plain",
			check: func(t *testing.T, formatter *format.RequestFormatter) {
				t.Helper()

				text, err := formatter.TextBody()
				require.NoError(t, err)
				assert.Equal(t, "café", text)
			},
		},
		{
			name:             "sniffed content type",
			body:             []byte("plain words"),
			expectedType:     format.BodyTypeText,
			expectedMimeType: "text/plain",
		},
		{
			name:             "binary",
			contentType:      "image/png",
			body:             []byte{0x89, 'P', 'N', 'G'},
			expectedType:     format.BodyTypeBinary,
			expectedMimeType: "image/png",
			check: func(t *testing.T, formatter *format.RequestFormatter) {
				t.Helper()

				data, err := formatter.BinaryBody()
				require.NoError(t, err)
				assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
			},
		},
		{
			name:             "multipart without boundary falls back to binary",
			contentType:      "multipart/form-data",
			body:             []byte("--x\r\n\r\nvalue\r\n--x--\r\n"),
			expectedType:     format.BodyTypeBinary,
			expectedMimeType: "multipart/form-data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "https://example.com/", nil)
			if tt.contentType != "" {
				req.Header.Set(format.HeaderContentType, tt.contentType)
			}

			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			formatter, err := Request(req, tt.body, format.DefaultConfig())
			require.NoError(t, err)

			assert.Equal(t, tt.expectedType, formatter.Type())
			assert.Equal(t, tt.expectedMimeType, formatter.MimeType())

			if tt.check != nil {
				tt.check(t, formatter)
			}
		})
	}
}

// TestRequestMultipart tests that multipart requests are split into parts in order.
func TestRequestMultipart(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("name", "value"))

	fileHeader := make(textproto.MIMEHeader)
	fileHeader.Set("Content-Disposition", `form-data; name="file"; filename="a.png"`)
	fileHeader.Set("Content-Type", "image/png")

	fileWriter, err := writer.CreatePart(fileHeader)
	require.NoError(t, err)

	_, err = fileWriter.Write([]byte("PNG"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "https://example.com/upload", nil)
	req.Header.Set(format.HeaderContentType, writer.FormDataContentType())

	formatter, err := Request(req, buf.Bytes(), format.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, format.BodyTypeMultipart, formatter.Type())

	parts, err := formatter.MultipartBody()
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, format.PartTypeText, parts[0].Type())
	assert.Equal(t, "name", parts[0].ControlName())
	assert.Equal(t, format.MimeTextPlain, parts[0].MimeType())

	text, err := parts[0].TextPayload()
	require.NoError(t, err)
	assert.Equal(t, "value", text)

	assert.Equal(t, format.PartTypeBinary, parts[1].Type())
	assert.Equal(t, "file", parts[1].ControlName())
	assert.Equal(t, "a.png", parts[1].FileName())
	assert.Equal(t, []string{"Content-Disposition", "Content-Type"}, headerNames(parts[1].Headers()))

	data, err := parts[1].BinaryPayload()
	require.NoError(t, err)
	assert.Equal(t, []byte("PNG"), data)
}

// TestResponse tests response capture.
func TestResponse(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	recorder.Header().Set(format.HeaderContentType, "text/html")
	recorder.Header().Add("Set-Cookie", "sid=abc; Path=/; HttpOnly")
	recorder.Header().Set("Server", "test")
	recorder.WriteHeader(http.StatusNotFound)

	resp := recorder.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })

	formatter, err := Response(resp, []byte("<p>missing</p>"), format.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, formatter.StatusCode())
	assert.Equal(t, "Not Found", formatter.Phrase())
	assert.Equal(t, format.BodyTypeText, formatter.Type())
	assert.Equal(t, []string{format.HeaderContentType, "Server"}, headerNames(formatter.Headers()))

	cookies := formatter.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "/", cookies[0].Path)

	text, err := formatter.FormatAsText()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "**<<< RESPONSE**\nNot Found"))
}

// TestResponseMultipartIsBinary tests that multipart responses are not split.
func TestResponseMultipartIsBinary(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{format.HeaderContentType: {"multipart/mixed; boundary=x"}},
	}

	formatter, err := Response(resp, []byte("--x\r\n\r\nvalue\r\n--x--\r\n"), format.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, format.BodyTypeBinary, formatter.Type())
	assert.Empty(t, formatter.Phrase())
	assert.Equal(t, "**<<< RESPONSE**\n200", formatter.FormatTitle())
}

// TestReasonPhrase tests phrase extraction from status lines.
func TestReasonPhrase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   string
		code     int
		expected string
	}{
		{status: "200 OK", code: 200, expected: "OK"},
		{status: "418 I'm a teapot", code: 418, expected: "I'm a teapot"},
		{status: "Created", code: 201, expected: "Created"},
		{status: "", code: 204, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, reasonPhrase(&http.Response{Status: tt.status, StatusCode: tt.code}))
		})
	}
}
