package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aprilfamily/cookbook-backend/internal/session"
)

// Context keys set by RequireSession for downstream handlers.
const (
	ContextUserIDKey   = "user_id"
	ContextUserNameKey = "user_name"
)

// RequireSession rejects requests lacking a valid session cookie before they
// reach the handler. On success the authenticated identity is stored in the
// gin context.
func RequireSession(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := mgr.Current(c.Request)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Auth required"})
			return
		}

		c.Set(ContextUserIDKey, ident.UserID)
		c.Set(ContextUserNameKey, ident.Name)
		c.Next()
	}
}
