package domain

import (
	"context"
	"time"
)

// Session is the provider-issued authentication state of a request.
type Session struct {
	// UserID is the provider's identifier for the signed-in account (e.g. "user:8rfx9").
	UserID string
	// Token is the opaque credential the browser presents back on each request.
	Token string
	// ExpiresAt is zero when the provider issued a token without an expiry.
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// AuthProvider is the external service that issues and validates sessions.
// It lives in the domain because the sign-in flow depends on it, not on any
// particular backend.
type AuthProvider interface {
	CurrentSession(ctx context.Context, token string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password string) error
	SignOut(ctx context.Context, token string) error
}
