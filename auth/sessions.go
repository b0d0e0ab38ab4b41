package auth

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"sync"
	"time"
)

// SessionInfo records what the gate knows about an admin session. Expiry is
// cookie-enforced; CreatedAt is kept for dashboard display, not validated.
type SessionInfo struct {
	Authenticated bool
	CreatedAt     int64
}

// SessionGate is the process-lifetime store of admin session tokens. Tokens
// are opaque bearer credentials: present in the map means authenticated,
// absent means not. A restart drops every session, forcing re-login.
type SessionGate struct {
	mu       sync.RWMutex
	sessions map[string]SessionInfo
}

func NewSessionGate() *SessionGate {
	return &SessionGate{
		sessions: make(map[string]SessionInfo),
	}
}

// Mint creates and stores a fresh session token.
func (g *SessionGate) Mint() string {
	token := "session-" + generateToken()

	g.mu.Lock()
	g.sessions[token] = SessionInfo{
		Authenticated: true,
		CreatedAt:     time.Now().UnixMilli(),
	}
	g.mu.Unlock()

	return token
}

// Verify reports whether the token belongs to a live session. No expiry
// check happens here; the cookie's MaxAge bounds the nominal lifetime.
func (g *SessionGate) Verify(token string) bool {
	if token == "" {
		return false
	}
	g.mu.RLock()
	_, ok := g.sessions[token]
	g.mu.RUnlock()
	return ok
}

// Revoke removes the token. Idempotent if it was never minted.
func (g *SessionGate) Revoke(token string) {
	g.mu.Lock()
	delete(g.sessions, token)
	g.mu.Unlock()
}

// Count returns the number of live sessions.
func (g *SessionGate) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.sessions)
}

func generateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Printf("ERROR: Failed to generate random bytes for session token: %v", err)
		return "fallback-" + time.Now().Format("20060102150405.000000000")
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
