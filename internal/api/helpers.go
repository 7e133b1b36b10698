package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aprilfamily/cookbook-backend/internal/middleware"
)

// currentUserName returns the display name set by the session middleware.
func currentUserName(c *gin.Context) string {
	if v, ok := c.Get(middleware.ContextUserNameKey); ok {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}

// parseID parses a numeric path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
