package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCookieClone tests that Clone produces an independent deep copy.
func TestCookieClone(t *testing.T) {
	t.Parallel()

	var (
		maxAge  int64 = 3600
		secured       = true
		version       = 1
		expires       = time.Date(2022, time.September, 6, 9, 32, 51, 0, time.UTC)
	)

	original := NewCookie("session_id")
	original.Value = "secret"
	original.Path = "/"
	original.MaxAge = &maxAge
	original.Secured = &secured
	original.Version = &version
	original.ExpiryDate = &expires

	clone := original.Clone()
	require.NotSame(t, original, clone)
	assert.Equal(t, original, clone)

	clone.Value = "changed"
	*clone.MaxAge = 10
	*clone.Secured = false
	*clone.Version = 2
	*clone.ExpiryDate = expires.Add(time.Hour)

	assert.Equal(t, "session_id", clone.Name())
	assert.Equal(t, "secret", original.Value)
	assert.Equal(t, int64(3600), *original.MaxAge)
	assert.True(t, *original.Secured)
	assert.Equal(t, 1, *original.Version)
	assert.Equal(t, expires, *original.ExpiryDate)
}

// TestCookieCloneEmpty tests cloning a cookie without attributes.
func TestCookieCloneEmpty(t *testing.T) {
	t.Parallel()

	clone := NewCookie("test").Clone()

	assert.Equal(t, "test", clone.Name())
	assert.Nil(t, clone.MaxAge)
	assert.Nil(t, clone.Secured)
	assert.Nil(t, clone.HTTPOnly)
	assert.Nil(t, clone.Version)
	assert.Nil(t, clone.ExpiryDate)
}

// TestHeaderAndParamClone tests Header and Param copies.
func TestHeaderAndParamClone(t *testing.T) {
	t.Parallel()

	header := NewHeader("Accept", "*/*")
	headerClone := header.Clone()
	headerClone.Value = "text/plain"

	assert.Equal(t, "Accept", headerClone.Name())
	assert.Equal(t, "*/*", header.Value)

	param := NewParam("q", "go")
	paramClone := param.Clone()
	paramClone.Value = "java"

	assert.Equal(t, "q", paramClone.Name())
	assert.Equal(t, "go", param.Value)
}
