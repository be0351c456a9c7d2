package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/hive/internal/config"
	"github.com/surrealdb/surrealdb.go"
)

// NewDB creates a SurrealDB connection signed in with the configured system
// user. It backs the row store; record-access operations never run on it.
func NewDB(ctx context.Context, cfg config.Provider) (*surrealdb.DB, error) {
	db, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	authData := &surrealdb.Auth{
		Username: cfg.GetDBUser(),
		Password: cfg.GetDBPass(),
	}

	if _, err = db.SignIn(ctx, authData); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	slog.Info("Successfully signed in to SurrealDB", "ns", cfg.GetDBNs(), "db", cfg.GetDBDb())
	return db, nil
}

// Connect opens an unauthenticated connection scoped to the configured
// namespace and database.
func Connect(ctx context.Context, cfg config.Provider) (*surrealdb.DB, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, cfg.GetDBURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to surrealdb: %w", err)
	}

	if err = db.Use(ctx, cfg.GetDBNs(), cfg.GetDBDb()); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to use namespace/db: %w", err)
	}
	return db, nil
}

// Dialer opens a fresh connection for a single record-access operation.
type Dialer func(ctx context.Context) (*surrealdb.DB, error)

// NewDialer returns a Dialer that connects with cfg.
func NewDialer(cfg config.Provider) Dialer {
	return func(ctx context.Context) (*surrealdb.DB, error) {
		return Connect(ctx, cfg)
	}
}
