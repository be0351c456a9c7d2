// Package profile looks up the application profile that belongs to a
// provider session or to a login identifier.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nfrund/hive/internal/domain"
)

const (
	// Table holds one row per account.
	Table = "profiles"

	fieldAuthID  = "auth_id"
	fieldLoginID = "user_id"
	fieldEmail   = "email"
)

// Resolver performs the point lookups the gate and the login form need.
// It keeps no state between calls.
type Resolver struct {
	rows domain.RowStore
}

// NewResolver creates a Resolver reading from rows.
func NewResolver(rows domain.RowStore) *Resolver {
	return &Resolver{rows: rows}
}

// ByID returns the profile whose auth_id matches the session user id.
// Lookup errors and missing rows both yield ErrProfileNotFound.
func (r *Resolver) ByID(ctx context.Context, userID string) (*domain.Profile, error) {
	row, err := r.rows.SelectOne(ctx, domain.RowQuery{Table: Table, Field: fieldAuthID, Value: userID})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		slog.Debug("Profile lookup failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrProfileNotFound, err)
	}
	return decode(row)
}

// ByLoginID returns the full profile for a login identifier such as "a0001.hive".
func (r *Resolver) ByLoginID(ctx context.Context, loginID string) (*domain.Profile, error) {
	row, err := r.rows.SelectOne(ctx, domain.RowQuery{Table: Table, Field: fieldLoginID, Value: loginID})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUserNotFound, err)
	}
	return decode(row)
}

// EmailForLogin resolves a login identifier to the email the provider knows.
func (r *Resolver) EmailForLogin(ctx context.Context, loginID string) (string, error) {
	row, err := r.rows.SelectOne(ctx, domain.RowQuery{
		Table:   Table,
		Field:   fieldLoginID,
		Value:   loginID,
		Columns: []string{fieldEmail},
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w: %v", domain.ErrUserNotFound, err)
	}

	email, _ := row[fieldEmail].(string)
	if email == "" {
		return "", domain.ErrUserNotFound
	}
	return email, nil
}

// decode maps a row onto the profile through its JSON tags so both row
// stores share one column mapping.
func decode(row domain.Row) (*domain.Profile, error) {
	raw, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("%w: encode row: %v", domain.ErrProfileNotFound, err)
	}
	var p domain.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: decode row: %v", domain.ErrProfileNotFound, err)
	}
	return &p, nil
}
