package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/task-tracker-api/internal/constants"
	apierrors "github.com/mizuki-dev/task-tracker-api/internal/errors"
	"github.com/mizuki-dev/task-tracker-api/internal/services"
)

// RequireAuth resolves the acting user's identity from the Authorization
// header. A missing, malformed, expired, or tampered token aborts the request
// with 401 before any handler runs.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "Token requerido")
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			apierrors.Unauthorized(c, "Token requerido")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			apierrors.Unauthorized(c, "Token inválido o expirado")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	if !ok {
		return 0, false
	}
	return id, true
}
