package validators

import (
	"regexp"
	"strings"

	"duoChat/internal/errs"
	"duoChat/internal/models"
)

const minPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateSignup reports every problem with a signup body. A missing field
// short-circuits the format checks.
func ValidateSignup(body *models.SignupRequestBody) []error {
	if body == nil {
		return []error{errs.ErrMissingDetails}
	}
	if strings.TrimSpace(body.FullName) == "" ||
		strings.TrimSpace(body.Email) == "" ||
		body.Password == "" ||
		strings.TrimSpace(body.Bio) == "" {
		return []error{errs.ErrMissingDetails}
	}

	var errors []error
	if !ValidateEmail(body.Email) {
		errors = append(errors, errs.ErrInvalidEmail)
	}
	if !ValidatePassword(body.Password) {
		errors = append(errors, errs.ErrInvalidPassword)
	}
	return errors
}

func ValidateProfileUpdate(body *models.UpdateProfileRequestBody) []error {
	var errors []error
	if body.FullName != nil && strings.TrimSpace(*body.FullName) == "" {
		errors = append(errors, errs.ErrInvalidFullName)
	}
	return errors
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

func ValidatePassword(password string) bool {
	return len(password) >= minPasswordLength
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
