package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret!", hash)
	assert.NoError(t, CompareHashAndPassword(hash, "s3cret!"))
	assert.Error(t, CompareHashAndPassword(hash, "wrong"))
}

func TestCreateAndVerifyJwtToken(t *testing.T) {
	token, claims, err := CreateJwtToken("user-1", testSecret, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.NotEmpty(t, claims.ID)

	verified, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", verified.UserID)
	assert.Equal(t, claims.ID, verified.ID)
}

func TestCreateJwtToken_UniqueTokenIds(t *testing.T) {
	_, first, err := CreateJwtToken("user-1", testSecret, time.Now().Add(time.Hour))
	require.NoError(t, err)
	_, second, err := CreateJwtToken("user-1", testSecret, time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestVerifyToken_Rejects(t *testing.T) {
	valid, _, err := CreateJwtToken("user-1", testSecret, time.Now().Add(time.Hour))
	require.NoError(t, err)
	expired, _, err := CreateJwtToken("user-1", testSecret, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "user-1"}).SignedString(testSecret)
	require.NoError(t, err)
	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret []byte
	}{
		{"wrong secret", valid, []byte("other")},
		{"expired", expired, testSecret},
		{"garbage", "not-a-token", testSecret},
		{"missing expiry", noExpiry, testSecret},
		{"missing user id", noUser, testSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := VerifyToken(tt.token, tt.secret)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header   string
		expected string
	}{
		{"Bearer abc.def", "abc.def"},
		{"bearer abc.def", "abc.def"},
		{"Bearer ", ""},
		{"abc.def", ""},
		{"Basic dXNlcg==", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractBearerToken(tt.header))
		})
	}
}
