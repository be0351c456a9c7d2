package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestProfile_DisplayName(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		want    string
	}{
		{"full name wins", &Profile{LoginID: "a0001.hive", FullName: strPtr("山田 太郎")}, "山田 太郎"},
		{"blank full name falls back to login id", &Profile{LoginID: "a0001.hive", FullName: strPtr("  ")}, "a0001.hive"},
		{"login id when no full name", &Profile{LoginID: "a0002.hive"}, "a0002.hive"},
		{"generic label when nothing is set", &Profile{}, FallbackName},
		{"nil profile", nil, FallbackName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.DisplayName())
		})
	}
}

func TestProfile_RoleAndInitial(t *testing.T) {
	p := &Profile{FullName: strPtr("山田 太郎"), Role: strPtr("管理者")}
	assert.Equal(t, "管理者", p.RoleLabel())
	assert.Equal(t, "山", p.Initial())

	empty := &Profile{}
	assert.Equal(t, FallbackName, empty.RoleLabel())
	assert.Equal(t, "?", empty.Initial())

	loginOnly := &Profile{LoginID: "a0001.hive"}
	assert.Equal(t, "a", loginOnly.Initial())
}

func TestSession_Expired(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, (&Session{}).Expired(now), "no expiry never expires")
	assert.False(t, (&Session{ExpiresAt: now.Add(time.Minute)}).Expired(now))
	assert.True(t, (&Session{ExpiresAt: now}).Expired(now))
	assert.True(t, (&Session{ExpiresAt: now.Add(-time.Second)}).Expired(now))
}

func TestProviderError(t *testing.T) {
	err := fmt.Errorf("sign in: %w", &ProviderError{
		Op:      "signin",
		Message: "There was a problem with authentication",
		Err:     ErrInvalidCredentials,
	})

	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	var perr *ProviderError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, "There was a problem with authentication", perr.Error())
}
