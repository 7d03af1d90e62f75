// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "session_id"

// Session ensures every request carries a session id cookie. Each
// session owns an independent cart and order history.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie("session_id")
		if err != nil || sessionID == "" {
			// Generate new session ID
			sessionID = uuid.New().String()

			// Set session cookie (30 days)
			c.SetCookie("session_id", sessionID, 30*86400, "/", "", false, true)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session id attached to the request context.
func GetSessionID(c *gin.Context) string {
	if sessionID, exists := c.Get(sessionContextKey); exists {
		if id, ok := sessionID.(string); ok {
			return id
		}
	}
	return ""
}
