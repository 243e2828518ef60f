package handlers

import (
	"net/http"
	"time"

	"duoChat/internal/errs"
	"duoChat/internal/logger"
	"duoChat/internal/models"
	"duoChat/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const contextUserKey = "user"

// MustAuthenticateMiddleware rejects requests without a valid, unrevoked
// bearer token: 401 for token problems, 404 when its user is gone.
func (rh *RestHandler) MustAuthenticateMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := utils.ExtractBearerToken(ctx.GetHeader("Authorization"))

		claims, user, err := rh.authService.Authenticate(ctx.Request.Context(), token)
		if err != nil {
			status := http.StatusUnauthorized
			if errs.IsKind(err, errs.KindNotFound) {
				status = http.StatusNotFound
			}
			ctx.AbortWithStatusJSON(status, failure(ctx, err))
			return
		}

		ctx.Set(utils.ContextUserIdKey, user.ID)
		ctx.Set(utils.ContextClaimsKey, claims)
		ctx.Set(contextUserKey, user)
		ctx.Next()
	}
}

func currentUser(ctx *gin.Context) *models.User {
	user, _ := ctx.MustGet(contextUserKey).(*models.User)
	return user
}

func currentClaims(ctx *gin.Context) *models.Claims {
	claims, _ := ctx.MustGet(utils.ContextClaimsKey).(*models.Claims)
	return claims
}

// RequestLogger replaces gin's default logger with a zap line per request.
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		fields := []zap.Field{
			zap.Int("status", ctx.Writer.Status()),
			zap.String("method", ctx.Request.Method),
			zap.String("path", path),
			zap.String("ip", ctx.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if userID := utils.GetUserIdFromContext(ctx); userID != "" {
			fields = append(fields, zap.String("user_id", userID))
		}
		if len(ctx.Errors) > 0 {
			fields = append(fields, zap.String("errors", ctx.Errors.String()))
		}

		switch status := ctx.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

// BodyLimit caps request bodies at limit bytes. Reading past it fails the
// JSON bind, which is reported as an invalid request body.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if limit > 0 && ctx.Request.Body != nil {
			ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)
		}
		ctx.Next()
	}
}
