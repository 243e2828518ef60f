package utils

import (
	"encoding/base64"
	"net/url"
	"strings"

	"duoChat/internal/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextUserIdKey = "user_id"
	ContextClaimsKey = "claims"
)

// NewId returns a UUIDv7 so ids sort by creation time.
func NewId() string {
	return uuid.Must(uuid.NewV7()).String()
}

func GetUserIdFromContext(ctx *gin.Context) string {
	return ctx.GetString(ContextUserIdKey)
}

type DataURI struct {
	ContentType string
	Data        []byte
}

// IsDataURI reports whether s looks like an inline data URI.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// ParseDataURI decodes "data:<mediatype>;base64,<payload>". Only base64
// payloads are accepted.
func ParseDataURI(s string) (*DataURI, error) {
	if !IsDataURI(s) {
		return nil, errs.ErrInvalidImage
	}
	header, payload, found := strings.Cut(s[len("data:"):], ",")
	if !found || !strings.HasSuffix(header, ";base64") {
		return nil, errs.ErrInvalidImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errs.ErrInvalidImage
	}
	if len(data) == 0 {
		return nil, errs.ErrInvalidImage
	}

	return &DataURI{
		ContentType: strings.TrimSuffix(header, ";base64"),
		Data:        data,
	}, nil
}

// IsHttpURL reports whether s is an absolute http or https URL.
func IsHttpURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
