// Package gate protects pages that need a signed-in user with a profile.
// Every protected request runs the session check and then the profile lookup;
// only when both succeed does the page handler see the request.
package gate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nfrund/hive/internal/audit"
	"github.com/nfrund/hive/internal/domain"
)

const (
	// DefaultLoginPath is where denied requests are sent.
	DefaultLoginPath = "/auth"
	// DefaultLookupTimeout bounds each backend call made for a request.
	DefaultLookupTimeout = 5 * time.Second
	// ProfileErrorMessage is flashed when the session is valid but the profile
	// cannot be loaded.
	ProfileErrorMessage = "プロフィール取得エラー"
)

// SessionSource reports the session a token belongs to.
type SessionSource interface {
	CurrentSession(ctx context.Context, token string) (*domain.Session, error)
}

// ProfileSource loads the profile of a session user.
type ProfileSource interface {
	ByID(ctx context.Context, userID string) (*domain.Profile, error)
}

// Viewer is who a protected page is rendered for.
type Viewer struct {
	Session *domain.Session
	Profile *domain.Profile
}

// Options parameterises a Gate.
type Options struct {
	LoginPath string
	// NotifyOnProfileFailure flashes ProfileErrorMessage before redirecting
	// when the profile lookup fails. Session failures never notify.
	NotifyOnProfileFailure bool
	LookupTimeout          time.Duration
	Recorder               audit.Recorder
}

// Gate runs the session check and the profile lookup for protected routes.
type Gate struct {
	sessions SessionSource
	profiles ProfileSource
	opts     Options
}

// New creates a Gate. Zero options fall back to the defaults.
func New(sessions SessionSource, profiles ProfileSource, opts Options) *Gate {
	if opts.LoginPath == "" {
		opts.LoginPath = DefaultLoginPath
	}
	if opts.LookupTimeout <= 0 {
		opts.LookupTimeout = DefaultLookupTimeout
	}
	if opts.Recorder == nil {
		opts.Recorder = audit.Nop{}
	}
	return &Gate{sessions: sessions, profiles: profiles, opts: opts}
}

// LoginPath is where the gate redirects denied requests.
func (g *Gate) LoginPath() string {
	return g.opts.LoginPath
}

// DeniedError explains why a request was turned away.
type DeniedError struct {
	// UserID is set when the session was valid but the profile was not.
	UserID string
	Err    error
}

func (e *DeniedError) Error() string {
	if e.UserID != "" {
		return fmt.Sprintf("access denied for %s: %v", e.UserID, e.Err)
	}
	return fmt.Sprintf("access denied: %v", e.Err)
}

func (e *DeniedError) Unwrap() error { return e.Err }

// ProfileFailure reports whether the session was fine and the profile lookup failed.
func (e *DeniedError) ProfileFailure() bool {
	return errors.Is(e.Err, domain.ErrProfileNotFound)
}

// Resolve turns a session token into a Viewer. Each backend call gets its own
// LookupTimeout and is abandoned as soon as ctx ends. A context error is
// returned unwrapped so callers can tell a vanished client from a denial.
func (g *Gate) Resolve(ctx context.Context, token string) (*Viewer, error) {
	if token == "" {
		return nil, &DeniedError{Err: domain.ErrNoSession}
	}

	sessCtx, cancel := context.WithTimeout(ctx, g.opts.LookupTimeout)
	session, err := g.sessions.CurrentSession(sessCtx, token)
	cancel()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &DeniedError{Err: err}
	}

	profCtx, cancel := context.WithTimeout(ctx, g.opts.LookupTimeout)
	profile, err := g.profiles.ByID(profCtx, session.UserID)
	cancel()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !errors.Is(err, domain.ErrProfileNotFound) {
			err = fmt.Errorf("%w: %v", domain.ErrProfileNotFound, err)
		}
		return nil, &DeniedError{UserID: session.UserID, Err: err}
	}

	return &Viewer{Session: session, Profile: profile}, nil
}
