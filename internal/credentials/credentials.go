// Package credentials turns a submitted login form into a provider session.
package credentials

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/hive/internal/domain"
)

// EmailLookup resolves a login identifier to the email the provider signs in with.
type EmailLookup interface {
	EmailForLogin(ctx context.Context, loginID string) (string, error)
}

// Service submits credentials to the auth provider.
type Service struct {
	auth     domain.AuthProvider
	emails   EmailLookup
	validate *validator.Validate
}

// NewService creates a Service.
func NewService(auth domain.AuthProvider, emails EmailLookup) *Service {
	return &Service{
		auth:     auth,
		emails:   emails,
		validate: validator.New(),
	}
}

// IsEmail reports whether identifier should be sent to the provider as-is.
func (s *Service) IsEmail(identifier string) bool {
	return strings.Contains(identifier, "@") && s.validate.Var(identifier, "email") == nil
}

// Login signs in with either an email address or a login identifier.
// A login identifier that does not resolve fails with ErrUserNotFound and
// never reaches the provider.
func (s *Service) Login(ctx context.Context, identifier, password string) (*domain.Session, error) {
	identifier = strings.TrimSpace(identifier)

	email := identifier
	if !s.IsEmail(identifier) {
		resolved, err := s.emails.EmailForLogin(ctx, identifier)
		if err != nil {
			return nil, fmt.Errorf("resolve login id %q: %w", identifier, err)
		}
		email = resolved
	}

	session, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// SignUp registers a new account with the provider. The caller still has to log in.
func (s *Service) SignUp(ctx context.Context, email, password string) error {
	return s.auth.SignUp(ctx, strings.TrimSpace(email), password)
}
