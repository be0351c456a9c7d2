package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nfrund/hive/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go"
)

// signToken issues a token shaped like a SurrealDB record-access token.
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return token
}

func TestParseSessionToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	t.Run("reads record id and expiry", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"ID":  "user:8rfx9",
			"AC":  "account",
			"NS":  "hive",
			"DB":  "dashboard",
			"exp": exp.Unix(),
		})

		claims, err := ParseSessionToken(token)

		require.NoError(t, err)
		assert.Equal(t, "user:8rfx9", claims.UserID)
		assert.True(t, exp.Equal(claims.ExpiresAt))

		session := claims.Session(token)
		assert.Equal(t, token, session.Token)
		assert.Equal(t, "user:8rfx9", session.UserID)
	})

	t.Run("falls back to subject", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"sub": "user:abc"})

		claims, err := ParseSessionToken(token)

		require.NoError(t, err)
		assert.Equal(t, "user:abc", claims.UserID)
		assert.True(t, claims.ExpiresAt.IsZero())
	})

	t.Run("empty token is no session", func(t *testing.T) {
		_, err := ParseSessionToken("")
		assert.ErrorIs(t, err, domain.ErrNoSession)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := ParseSessionToken("not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("token without a user id is rejected", func(t *testing.T) {
		_, err := ParseSessionToken(signToken(t, jwt.MapClaims{"exp": exp.Unix()}))
		assert.Error(t, err)
	})
}

func TestSurrealAuth_CurrentSession_LocalChecks(t *testing.T) {
	dialed := false
	auth := NewSurrealAuth(func(ctx context.Context) (*surrealdb.DB, error) {
		dialed = true
		return nil, errors.New("dial should not happen")
	}, "hive", "dashboard", "account")
	auth.now = func() time.Time { return time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC) }

	t.Run("missing token", func(t *testing.T) {
		_, err := auth.CurrentSession(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrNoSession)
	})

	t.Run("expired token never reaches the provider", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"ID":  "user:1",
			"exp": time.Date(2025, 4, 1, 11, 0, 0, 0, time.UTC).Unix(),
		})

		_, err := auth.CurrentSession(context.Background(), token)
		assert.ErrorIs(t, err, domain.ErrSessionExpired)
	})

	t.Run("malformed token is treated as expired", func(t *testing.T) {
		_, err := auth.CurrentSession(context.Background(), "a.b.c")
		assert.ErrorIs(t, err, domain.ErrSessionExpired)
	})

	assert.False(t, dialed)

	t.Run("provider unreachable", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"ID":  "user:1",
			"exp": time.Date(2025, 4, 1, 13, 0, 0, 0, time.UTC).Unix(),
		})

		_, err := auth.CurrentSession(context.Background(), token)
		assert.ErrorIs(t, err, domain.ErrSessionExpired)
		assert.True(t, dialed)
	})
}
