package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "finvault/internal/errors"
	"finvault/internal/logger"
)

// ErrorHandler renders the last error recorded on the context with c.Error.
// AppErrors keep their status and code; anything else becomes INTERNAL_ERROR.
// Causes are logged with the request id, never sent to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"user_id", c.GetString(userIDKey),
			"request_id", c.GetString(requestIDKey),
		}

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			logger.Get().Errorw("unexpected error", append(fields, "error", err.Error())...)
			appErr = apperrors.ErrInternalServer
		} else if appErr.Internal != nil {
			logger.Get().Errorw("ledger operation failed",
				append(fields, "code", appErr.Code, "internal", appErr.Internal.Error())...)
		}

		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}
