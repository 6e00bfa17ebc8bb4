package middleware

import "github.com/gin-gonic/gin"

// UserID is a placeholder identity layer: it reads X-User-Id and falls back
// to "user-1". There is no real authentication, and no handler reads the
// "userId" context value yet; it exists so per-user behavior can be added
// without touching the route setup.
func UserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-Id")
		if userID == "" {
			userID = "user-1"
		}
		c.Set("userId", userID)
		c.Next()
	}
}
