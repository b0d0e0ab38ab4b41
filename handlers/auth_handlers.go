package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/joshbuilds/portfolio-api/auth"
	"github.com/joshbuilds/portfolio-api/config"
	"github.com/joshbuilds/portfolio-api/middleware"
	"github.com/joshbuilds/portfolio-api/models"
)

const sessionMaxAge = 24 * 60 * 60 // seconds

type AuthHandlers struct {
	Gate *auth.SessionGate
	Cfg  *config.Config
}

func NewAuthHandlers(gate *auth.SessionGate, cfg *config.Config) *AuthHandlers {
	return &AuthHandlers{Gate: gate, Cfg: cfg}
}

// Login checks the admin password and, on success, mints a session token
// and sets it as an http-only cookie with a 24 hour lifetime.
func (h *AuthHandlers) Login(c *gin.Context) {
	// An unreadable body leaves the password empty and fails the comparison
	// below, so every bad login answers 401.
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Login request body unreadable: %v", err)
	}

	if !h.checkPassword(req.Password) {
		log.Println("Login failed: password mismatch")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token := h.Gate.Mint()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookie,
		token,
		sessionMaxAge,
		"/",
		"",
		false,
		true,
	)

	log.Println("Admin logged in, session minted")
	c.JSON(http.StatusOK, gin.H{"success": true, "sessionId": token})
}

// Verify reports whether the request carries a live session cookie.
func (h *AuthHandlers) Verify(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err == nil && h.Gate.Verify(token) {
		c.JSON(http.StatusOK, gin.H{"authenticated": true})
		return
	}
	c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
}

// Logout revokes the session token and clears the cookie. Always succeeds,
// even when no session existed.
func (h *AuthHandlers) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		h.Gate.Revoke(token)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookie,
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	log.Println("Admin logged out (session cookie cleared).")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// checkPassword prefers the bcrypt hash when one is configured and falls
// back to constant-time comparison against the plain secret.
func (h *AuthHandlers) checkPassword(password string) bool {
	if h.Cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.Cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(h.Cfg.AdminPassword)) == 1
}
