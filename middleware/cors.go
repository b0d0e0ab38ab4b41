package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// devOrigins are the local dev servers the site frontend runs on.
const devOrigins = "http://localhost:8080,http://localhost:8081,http://localhost:8082,http://localhost:5173"

// CORSMiddleware handles cross-origin requests from the site frontend.
// origins is a comma-separated allow list (FE_ORIGIN), defaulting to the
// local dev servers; the matching request origin is echoed back so
// credentials keep working with more than one allowed origin. Credentials
// stay enabled so the session cookie travels with admin requests.
func CORSMiddleware(origins string) gin.HandlerFunc {
	if origins == "" {
		origins = devOrigins
	}

	allowed := make(map[string]bool)
	var fallback string
	for _, o := range strings.Split(origins, ",") {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if fallback == "" {
			fallback = o
		}
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if !allowed[origin] {
			origin = fallback
		}
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
