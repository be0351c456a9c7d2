package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the sign-in flow and the gate in front of every dashboard page.
var (
	// ErrNoSession means the request carried no session token at all.
	ErrNoSession = errors.New("no session")

	// ErrSessionExpired means the token's expiry has passed or the provider rejected it.
	ErrSessionExpired = errors.New("session expired or invalid")

	// ErrProfileNotFound means the session is valid but no profile row matches it,
	// or the lookup itself failed.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrUserNotFound is returned when a login identifier does not resolve to an email.
	ErrUserNotFound = errors.New("user not found")

	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials provided")
)

// ProviderError carries the message the auth provider returned so it can be
// shown to the user verbatim, while still matching a domain sentinel with errors.Is.
type ProviderError struct {
	Op      string
	Message string
	Err     error
}

func (e *ProviderError) Error() string { return e.Message }

func (e *ProviderError) Unwrap() error { return e.Err }
