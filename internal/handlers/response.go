package handlers

import (
	"net/http"

	"duoChat/internal/errs"
	"duoChat/internal/logger"
	"duoChat/internal/models"
	"duoChat/internal/msgs"
	"duoChat/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// failure builds the envelope for err. Storage and unexpected errors are
// logged and reported generically so driver text never reaches clients.
func failure(ctx *gin.Context, err error) models.Response {
	var messages []string
	switch errs.KindOf(err) {
	case errs.KindStorage, errs.KindUnknown:
		logger.Error("request failed",
			zap.String("path", ctx.FullPath()),
			zap.String("user_id", utils.GetUserIdFromContext(ctx)),
			zap.Error(err),
		)
		messages = []string{msgs.MsgOperationFailed}
	default:
		messages = errs.Messages(err)
	}

	response := models.Response{Success: false, Message: messages[0]}
	if len(messages) > 1 {
		response.Errors = messages
	}
	return response
}

// respondError answers with HTTP 200 and a failed envelope, the way every
// route past the auth gate reports errors.
func respondError(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(http.StatusOK, failure(ctx, err))
}

func success(message string) models.Response {
	return models.Response{Success: true, Message: message}
}
