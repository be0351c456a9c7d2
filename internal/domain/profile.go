package domain

import (
	"context"
	"strings"
	"unicode/utf8"
)

// FallbackName is shown whenever a profile carries neither a full name nor a login id.
const FallbackName = "ユーザー"

// Profile is the application-level record describing a signed-in user.
type Profile struct {
	// ID matches Session.UserID.
	ID string `json:"auth_id"`
	// LoginID is the human-facing identifier such as "a0001.hive".
	LoginID   string  `json:"user_id"`
	Email     string  `json:"email"`
	FullName  *string `json:"full_name,omitempty"`
	Role      *string `json:"role,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// DisplayName falls back from the full name to the login id to a generic label.
func (p *Profile) DisplayName() string {
	if p == nil {
		return FallbackName
	}
	if p.FullName != nil && strings.TrimSpace(*p.FullName) != "" {
		return *p.FullName
	}
	if p.LoginID != "" {
		return p.LoginID
	}
	return FallbackName
}

// RoleLabel returns the role or the generic label when none is set.
func (p *Profile) RoleLabel() string {
	if p == nil || p.Role == nil || *p.Role == "" {
		return FallbackName
	}
	return *p.Role
}

// Initial is the first character of the full name or login id, used for the
// avatar placeholder.
func (p *Profile) Initial() string {
	if p == nil {
		return "?"
	}
	name := p.LoginID
	if p.FullName != nil && *p.FullName != "" {
		name = *p.FullName
	}
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(r)
}

// Row is a single record returned by a RowStore, keyed by column name.
type Row map[string]any

// RowQuery selects exactly one row from Table where Field equals Value.
// An empty Columns slice selects every column.
type RowQuery struct {
	Table   string
	Field   string
	Value   any
	Columns []string
}

// RowStore is the external table service the profile lookups read from.
// SelectOne must fail when zero or more than one row matches.
type RowStore interface {
	SelectOne(ctx context.Context, q RowQuery) (Row, error)
}
