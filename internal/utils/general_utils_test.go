package utils

import (
	"testing"

	"duoChat/internal/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewId(t *testing.T) {
	first := NewId()
	second := NewId()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
}

func TestParseDataURI(t *testing.T) {
	uri, err := ParseDataURI("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/png", uri.ContentType)
	assert.Equal(t, []byte("hello"), uri.Data)

	invalid := []string{
		"",
		"https://example.com/a.png",
		"data:image/png,hello",
		"data:image/png;base64",
		"data:image/png;base64,***",
		"data:image/png;base64,",
	}
	for _, s := range invalid {
		t.Run(s, func(t *testing.T) {
			_, err := ParseDataURI(s)
			assert.ErrorIs(t, err, errs.ErrInvalidImage)
		})
	}
}

func TestIsHttpURL(t *testing.T) {
	assert.True(t, IsHttpURL("https://cdn.example.com/a.png"))
	assert.True(t, IsHttpURL("http://localhost:9000/bucket/a.png"))
	assert.False(t, IsHttpURL("ftp://example.com/a.png"))
	assert.False(t, IsHttpURL("/relative/path.png"))
	assert.False(t, IsHttpURL("data:image/png;base64,aGVsbG8="))
}
