package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/httpfmt/internal/format/entity"
)

// TestPartFormatAsText tests text part rendering.
func TestPartFormatAsText(t *testing.T) {
	t.Parallel()

	part := NewTextPartBuilder(MimeApplicationJSON, `{"a":1}`).
		ControlName("meta").
		AddHeader("Content-Disposition", `form-data; name="meta"`).
		AddHeader(HeaderContentType, MimeApplicationJSON).
		Build()

	assert.Equal(t, PartTypeText, part.Type())
	assert.Equal(t, "meta", part.ControlName())

	text, err := part.FormatAsText()
	require.NoError(t, err)
	assert.Equal(t,
		"**Headers**\nContent-Disposition: form-data; name=\"meta\"\nContent-Type: application/json\n\n"+
			"**Body part**\n```\n{\n  \"a\" : 1\n}\n```",
		text,
	)

	_, err = part.BinaryPayload()
	require.ErrorIs(t, err, ErrPartTypeMismatch)
}

// TestPartFormatForBinaryDataPrefix tests the caption of binary parts.
func TestPartFormatForBinaryDataPrefix(t *testing.T) {
	t.Parallel()

	withHeaders := NewBinaryPartBuilder("image/png", []byte{1, 2}).
		Headers([]*entity.Header{entity.NewHeader("Content-Type", "image/png")}).
		FileName("a.png").
		Charset("utf-8").
		Build()

	assert.Equal(t, "**Headers**\nContent-Type: image/png\n\n**Body part**\nimage/png", withHeaders.FormatForBinaryDataPrefix())
	assert.Equal(t, "a.png", withHeaders.FileName())
	assert.Equal(t, "utf-8", withHeaders.Charset())

	payload, err := withHeaders.BinaryPayload()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, payload)

	_, err = withHeaders.TextPayload()
	require.ErrorIs(t, err, ErrPartTypeMismatch)

	_, err = withHeaders.FormatAsText()
	require.ErrorIs(t, err, ErrPartTypeMismatch)

	bare := NewBinaryPartBuilder("application/octet-stream", nil).Build()
	assert.Equal(t, "**Body part**\napplication/octet-stream", bare.FormatForBinaryDataPrefix())
}

// TestPartTypeString tests the PartType.String method.
func TestPartTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TEXT", PartTypeText.String())
	assert.Equal(t, "BINARY", PartTypeBinary.String())
	assert.Equal(t, "PartType(9)", PartType(9).String())
}
