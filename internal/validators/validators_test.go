package validators

import (
	"testing"

	"duoChat/internal/errs"
	"duoChat/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateSignup(t *testing.T) {
	valid := models.SignupRequestBody{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "engine1",
		Bio:      "first programmer",
	}

	tests := []struct {
		name   string
		modify func(b *models.SignupRequestBody)
		want   []error
	}{
		{"valid", func(b *models.SignupRequestBody) {}, nil},
		{"missing full name", func(b *models.SignupRequestBody) { b.FullName = "  " }, []error{errs.ErrMissingDetails}},
		{"missing bio", func(b *models.SignupRequestBody) { b.Bio = "" }, []error{errs.ErrMissingDetails}},
		{"missing password", func(b *models.SignupRequestBody) { b.Password = "" }, []error{errs.ErrMissingDetails}},
		{"bad email", func(b *models.SignupRequestBody) { b.Email = "ada.example.com" }, []error{errs.ErrInvalidEmail}},
		{"short password", func(b *models.SignupRequestBody) { b.Password = "abc" }, []error{errs.ErrInvalidPassword}},
		{
			"bad email and short password",
			func(b *models.SignupRequestBody) { b.Email = "ada@"; b.Password = "abc" },
			[]error{errs.ErrInvalidEmail, errs.ErrInvalidPassword},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := valid
			tt.modify(&body)
			assert.Equal(t, tt.want, ValidateSignup(&body))
		})
	}

	assert.Equal(t, []error{errs.ErrMissingDetails}, ValidateSignup(nil))
}

func TestValidateProfileUpdate(t *testing.T) {
	empty := " "
	name := "Grace"

	assert.Empty(t, ValidateProfileUpdate(&models.UpdateProfileRequestBody{}))
	assert.Empty(t, ValidateProfileUpdate(&models.UpdateProfileRequestBody{FullName: &name}))
	assert.Equal(t, []error{errs.ErrInvalidFullName}, ValidateProfileUpdate(&models.UpdateProfileRequestBody{FullName: &empty}))
}

func TestValidateMessage(t *testing.T) {
	assert.NoError(t, ValidateMessage(&models.SendMessageRequestBody{Text: "hi"}))
	assert.NoError(t, ValidateMessage(&models.SendMessageRequestBody{Image: "https://cdn.example.com/a.png"}))
	assert.ErrorIs(t, ValidateMessage(&models.SendMessageRequestBody{}), errs.ErrEmptyMessage)
	assert.ErrorIs(t, ValidateMessage(&models.SendMessageRequestBody{Text: "   "}), errs.ErrEmptyMessage)
	assert.ErrorIs(t, ValidateMessage(nil), errs.ErrEmptyMessage)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", NormalizeEmail("  Ada@Example.COM "))
}
