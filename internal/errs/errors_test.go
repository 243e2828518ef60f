package errs

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"validation", Validation(ErrMissingDetails), KindValidation},
		{"auth", Auth(ErrInvalidToken), KindAuth},
		{"not found", NotFound(ErrUserNotFound), KindNotFound},
		{"conflict", Conflict(ErrAccountAlreadyExists), KindConflict},
		{"storage wrapped by pkg/errors", Storage(errors.Wrap(fmt.Errorf("boom"), "insert")), KindStorage},
		{"external", ExternalService(ErrUploadFailed), KindExternalService},
		{"kind survives fmt wrapping", fmt.Errorf("send: %w", NotFound(ErrUserNotFound)), KindNotFound},
		{"plain error", fmt.Errorf("plain"), KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
		})
	}
}

func TestKindError_KeepsSentinel(t *testing.T) {
	err := Conflict(ErrAccountAlreadyExists)

	assert.ErrorIs(t, err, ErrAccountAlreadyExists)
	assert.Equal(t, "Account already exists", err.Error())
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(nil, KindConflict))
}

func TestMessages(t *testing.T) {
	assert.Nil(t, Messages(nil))
	assert.Equal(t, []string{"User not found"}, Messages(NotFound(ErrUserNotFound)))
	assert.Equal(t,
		[]string{"invalid email", "password must be at least 6 characters"},
		Messages(Validation(ErrInvalidEmail, ErrInvalidPassword)),
	)
	assert.Equal(t, []string{"validation"}, Messages(Validation()))
}
