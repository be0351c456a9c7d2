package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nfrund/hive/internal/domain"
	"github.com/surrealdb/surrealdb.go"
)

// SurrealAuth is the auth provider backed by SurrealDB record access.
// Every operation authenticates its own short-lived connection so the shared
// root connection used by the row store is never re-scoped to a record user.
type SurrealAuth struct {
	dial   Dialer
	ns     string
	dbName string
	access string
	now    func() time.Time
}

// NewSurrealAuth creates a provider that signs users into the given access method.
func NewSurrealAuth(dial Dialer, ns, dbName, access string) *SurrealAuth {
	return &SurrealAuth{
		dial:   dial,
		ns:     ns,
		dbName: dbName,
		access: access,
		now:    time.Now,
	}
}

func (a *SurrealAuth) credentials(email, password string) map[string]any {
	return map[string]any{
		"ns":       a.ns,
		"db":       a.dbName,
		"ac":       a.access,
		"email":    email,
		"password": password,
	}
}

// withConn dials, runs fn and closes the connection. Closing uses a context
// detached from cancellation so an aborted request still releases the socket.
func (a *SurrealAuth) withConn(ctx context.Context, fn func(conn *surrealdb.DB) error) error {
	conn, err := a.dial(ctx)
	if err != nil {
		return fmt.Errorf("auth provider unavailable: %w", err)
	}
	defer func() {
		if cerr := conn.Close(context.WithoutCancel(ctx)); cerr != nil {
			slog.Debug("Failed to close auth connection", "error", cerr)
		}
	}()
	return fn(conn)
}

// CurrentSession returns the session for token, or ErrNoSession/ErrSessionExpired.
func (a *SurrealAuth) CurrentSession(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := ParseSessionToken(token)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionExpired, err)
	}

	session := claims.Session(token)
	if session.Expired(a.now()) {
		return nil, domain.ErrSessionExpired
	}

	err = a.withConn(ctx, func(conn *surrealdb.DB) error {
		return conn.Authenticate(ctx, token)
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionExpired, err)
	}
	return session, nil
}

// SignIn exchanges credentials for a session.
func (a *SurrealAuth) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	var token string
	err := a.withConn(ctx, func(conn *surrealdb.DB) error {
		t, err := conn.SignIn(ctx, a.credentials(email, password))
		token = t
		if err != nil {
			return &domain.ProviderError{Op: "signin", Message: err.Error(), Err: domain.ErrInvalidCredentials}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	claims, err := ParseSessionToken(token)
	if err != nil {
		return nil, fmt.Errorf("provider issued an unreadable token: %w", err)
	}

	slog.Info("Successfully signed in user", "email", email, "user_id", claims.UserID)
	return claims.Session(token), nil
}

// SignUp registers an account. The caller is not signed in afterwards.
func (a *SurrealAuth) SignUp(ctx context.Context, email, password string) error {
	return a.withConn(ctx, func(conn *surrealdb.DB) error {
		if _, err := conn.SignUp(ctx, a.credentials(email, password)); err != nil {
			sentinel := domain.ErrInvalidCredentials
			if strings.Contains(err.Error(), "already exists") {
				sentinel = domain.ErrUserAlreadyExists
			}
			return &domain.ProviderError{Op: "signup", Message: err.Error(), Err: sentinel}
		}
		slog.Info("Successfully signed up user", "email", email)
		return nil
	})
}

// SignOut invalidates the session on the provider side.
func (a *SurrealAuth) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrNoSession
	}
	return a.withConn(ctx, func(conn *surrealdb.DB) error {
		if err := conn.Authenticate(ctx, token); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrSessionExpired, err)
		}
		return conn.Invalidate(ctx)
	})
}
