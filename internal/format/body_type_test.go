package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBodyTypeOf tests the BodyTypeOf function.
func TestBodyTypeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    BodyType
	}{
		{
			name:        "html with charset",
			contentType: "text/html; charset=utf-16",
			expected:    BodyTypeText,
		},
		{
			name:        "json",
			contentType: "application/json",
			expected:    BodyTypeText,
		},
		{
			name:        "empty",
			contentType: "",
			expected:    BodyTypeNone,
		},
		{
			name:        "form with charset",
			contentType: "application/x-www-form-urlencoded; charset=ISO-8859-1",
			expected:    BodyTypeForm,
		},
		{
			name:        "image",
			contentType: "image/jpeg",
			expected:    BodyTypeBinary,
		},
		{
			name:        "multipart with boundary",
			contentType: "multipart/form-data; boundary=----WebKitFormBoundary7MA4YWxkTrZu0gW",
			expected:    BodyTypeMultipart,
		},
		{
			name:        "lookup is case-sensitive",
			contentType: "Application/JSON",
			expected:    BodyTypeBinary,
		},
		{
			name:        "only parameters",
			contentType: "; charset=utf-8",
			expected:    BodyTypeBinary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, BodyTypeOf(tt.contentType, nil))
			assert.Equal(t, tt.expected, BodyTypeOf(tt.contentType, DefaultBodyTypes()))
		})
	}
}

// TestBodyTypeOfCustomTable tests classification with a custom table.
func TestBodyTypeOfCustomTable(t *testing.T) {
	t.Parallel()

	table := map[string]BodyType{"application/vnd.custom": BodyTypeText}

	assert.Equal(t, BodyTypeText, BodyTypeOf("application/vnd.custom; v=1", table))
	assert.Equal(t, BodyTypeBinary, BodyTypeOf("application/json", table))
	assert.Equal(t, BodyTypeNone, BodyTypeOf("", table))
}

// TestDefaultBodyTypesIsCopy tests that changing the returned table does not change the defaults.
func TestDefaultBodyTypesIsCopy(t *testing.T) {
	t.Parallel()

	table := DefaultBodyTypes()
	table[MimeApplicationJSON] = BodyTypeBinary

	assert.Equal(t, BodyTypeText, BodyTypeOf(MimeApplicationJSON, nil))
}

// TestGetMimeType tests the GetMimeType function.
func TestGetMimeType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		contentType string
		expected    string
	}{
		{contentType: "text/html; charset=utf-16", expected: "text/html"},
		{contentType: "application/json", expected: "application/json"},
		{contentType: "", expected: "application/octet-stream"},
		{
			contentType: "application/x-www-form-urlencoded; charset=ISO-8859-1",
			expected:    "application/x-www-form-urlencoded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, GetMimeType(tt.contentType))
		})
	}
}

// TestBodyTypeString tests the BodyType.String method.
func TestBodyTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NONE", BodyTypeNone.String())
	assert.Equal(t, "TEXT", BodyTypeText.String())
	assert.Equal(t, "FORM", BodyTypeForm.String())
	assert.Equal(t, "BINARY", BodyTypeBinary.String())
	assert.Equal(t, "MULTIPART", BodyTypeMultipart.String())
	assert.Equal(t, "BodyType(42)", BodyType(42).String())
}

// TestParseBodyType tests the ParseBodyType function.
func TestParseBodyType(t *testing.T) {
	t.Parallel()

	for _, bodyType := range []BodyType{BodyTypeNone, BodyTypeText, BodyTypeForm, BodyTypeBinary, BodyTypeMultipart} {
		parsed, ok := ParseBodyType(bodyType.String())
		assert.True(t, ok)
		assert.Equal(t, bodyType, parsed)
	}

	parsed, ok := ParseBodyType(" text ")
	assert.True(t, ok)
	assert.Equal(t, BodyTypeText, parsed)

	_, ok = ParseBodyType("json")
	assert.False(t, ok)
}
