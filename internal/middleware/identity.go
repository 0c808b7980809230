package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "finvault/internal/errors"
	"finvault/internal/uuid"
)

// UserIDHeader carries the caller identity on each request.
const UserIDHeader = "X-User-ID"

const userIDKey = "userID"

// Identity sets "userID" on the Gin context from the X-User-ID header,
// falling back to defaultUserID when the header is absent. It is the only
// place a caller identity enters the system.
func Identity(defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			userID = defaultUserID
		}
		if !uuid.IsValid(userID) {
			appErr := apperrors.WithMessage(apperrors.ErrInvalidInput, "X-User-ID must be a UUID")
			c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
				"error": gin.H{"code": appErr.Code, "message": appErr.Message},
			})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}
