//nolint:nolintlint,revive // utils is a common and acceptable package name for utility functions.
package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/httpfmt/internal/constants"
)

// TestSafeUint64ToInt64 tests the SafeUint64ToInt64 function.
func TestSafeUint64ToInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    uint64
		expected int64
	}{
		{name: "normal value", input: 100, expected: 100},
		{name: "zero value", input: 0, expected: 0},
		{name: "max int64 value", input: 9223372036854775807, expected: 9223372036854775807},
		{name: "value exceeding max int64", input: 9223372036854775808, expected: 9223372036854775807},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SafeUint64ToInt64(tt.input))
		})
	}
}

// TestSanitizeFilename tests the SanitizeFilename function.
func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "exchange id", input: "0b7c6d3e-8f4a-4b7e-9d51-3f1c2a9e7b10", expected: "0b7c6d3e-8f4a-4b7e-9d51-3f1c2a9e7b10"},
		{name: "invalid characters", input: "GET /items?page=2", expected: "GET _items_page=2"},
		{name: "Windows reserved name", input: "CON.md", expected: "_CON.md"},
		{name: "trailing dots", input: "record...", expected: "record"},
		{name: "only dots", input: "...", expected: "_"},
		{name: "control characters", input: "a\x00b", expected: "a_b"},
		{name: "long name", input: strings.Repeat("x", 300), expected: strings.Repeat("x", MaxFilenameLength)},
		{name: "long multibyte name", input: "a" + strings.Repeat("ж", 200), expected: "a" + strings.Repeat("ж", 127)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

// TestIsFileExist tests the IsFileExist function.
func TestIsFileExist(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "record.md")
	require.NoError(t, os.WriteFile(path, []byte("text"), constants.DefaultFilePermissions))

	exists, err := IsFileExist(path)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = IsFileExist(dir)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = IsFileExist(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestReadUniqueLines tests the ReadUniqueLines function.
func TestReadUniqueLines(t *testing.T) {
	t.Parallel()

	lines, err := ReadUniqueLines(strings.NewReader("a.http\n\n# comment\n  b.http \na.http\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.http", "b.http"}, lines)
}

// TestReadUniqueLinesFromFile tests the ReadUniqueLinesFromFile function.
func TestReadUniqueLinesFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("line1\nline2\nline1\n"), constants.DefaultFilePermissions))

	lines, err := ReadUniqueLinesFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"line1", "line2"}, lines)

	_, err = ReadUniqueLinesFromFile("/non/existing/file")
	require.Error(t, err)
}

// TestMap tests the Map function.
func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"HELLO", "WORLD"}, Map([]string{"hello", "world"}, strings.ToUpper))
	assert.Empty(t, Map([]string{}, strings.ToUpper))
}
