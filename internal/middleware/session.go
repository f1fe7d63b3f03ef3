// Package middleware provides HTTP middleware components for the application.
// It includes session and rate limiting setup for the fiber web framework.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

// SessionConfig controls the operator session cookie.
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
	// Storage nil keeps sessions in process memory.
	Storage fiber.Storage
}

// NewSessionStore creates the per-client session store holding the history log.
func NewSessionStore(cfg SessionConfig) *session.Store {
	name := cfg.CookieName
	if name == "" {
		name = "session_id"
	}
	return session.New(session.Config{
		Expiration:     cfg.TTL,
		Storage:        cfg.Storage,
		KeyLookup:      "cookie:" + name,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Secure,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		KeyGenerator:   uuid.NewString,
	})
}
