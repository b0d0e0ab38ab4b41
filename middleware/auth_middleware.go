package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joshbuilds/portfolio-api/auth"
)

// SessionCookie is the cookie carrying the admin session token.
const SessionCookie = "sessionId"

// RequireAuth guards every mutating endpoint and the analytics read path.
// The request must carry a session cookie whose token the gate still knows;
// anything else is a flat 401 with no further detail.
func RequireAuth(gate *auth.SessionGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || !gate.Verify(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
