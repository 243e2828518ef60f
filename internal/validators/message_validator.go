package validators

import (
	"strings"

	"duoChat/internal/errs"
	"duoChat/internal/models"
)

// ValidateMessage requires text or an image.
func ValidateMessage(body *models.SendMessageRequestBody) error {
	if body == nil || (strings.TrimSpace(body.Text) == "" && strings.TrimSpace(body.Image) == "") {
		return errs.ErrEmptyMessage
	}
	return nil
}
