package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nfrund/hive/internal/domain"
)

// SurrealDB record-access tokens carry the record id of the signed-in account
// in the "ID" claim.
const claimRecordID = "ID"

// SessionClaims is the subset of a session token the server reads locally.
type SessionClaims struct {
	UserID    string
	ExpiresAt time.Time
}

// ParseSessionToken decodes a session token without verifying its signature.
// Verification is the provider's job; the claims only let the server reject
// expired tokens before making a network call.
func ParseSessionToken(token string) (*SessionClaims, error) {
	if token == "" {
		return nil, domain.ErrNoSession
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("malformed session token: %w", err)
	}

	sc := &SessionClaims{}
	if id, ok := claims[claimRecordID].(string); ok && id != "" {
		sc.UserID = id
	} else if sub, err := claims.GetSubject(); err == nil && sub != "" {
		sc.UserID = sub
	}
	if sc.UserID == "" {
		return nil, errors.New("session token carries no user id")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp != nil {
		sc.ExpiresAt = exp.Time
	}
	return sc, nil
}

// Session builds the domain session for the token these claims came from.
func (c *SessionClaims) Session(token string) *domain.Session {
	return &domain.Session{
		UserID:    c.UserID,
		Token:     token,
		ExpiresAt: c.ExpiresAt,
	}
}
