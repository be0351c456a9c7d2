package testutils

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nfrund/hive/internal/domain"
)

// ErrNoRows is what FakeRowStore returns when nothing matches.
var ErrNoRows = errors.New("fake: no rows")

// FakeAccount is a user known to FakeAuthProvider.
type FakeAccount struct {
	UserID   string
	Password string
}

// FakeAuthProvider is an in-memory domain.AuthProvider that records every call.
type FakeAuthProvider struct {
	mu       sync.Mutex
	accounts map[string]FakeAccount
	sessions map[string]*domain.Session

	SignOutErr error

	SignInCalls  []string
	SignUpCalls  []string
	SignOutCalls []string
}

// NewFakeAuthProvider creates an empty provider.
func NewFakeAuthProvider() *FakeAuthProvider {
	return &FakeAuthProvider{
		accounts: make(map[string]FakeAccount),
		sessions: make(map[string]*domain.Session),
	}
}

// AddAccount registers credentials that SignIn will accept.
func (f *FakeAuthProvider) AddAccount(email, userID, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[email] = FakeAccount{UserID: userID, Password: password}
}

// IssueSession stores a session directly and returns its token.
func (f *FakeAuthProvider) IssueSession(userID string, ttl time.Duration) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	token := fmt.Sprintf("token-%s-%d", userID, len(f.sessions)+1)
	f.sessions[token] = &domain.Session{UserID: userID, Token: token, ExpiresAt: time.Now().Add(ttl)}
	return token
}

func (f *FakeAuthProvider) CurrentSession(ctx context.Context, token string) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, domain.ErrNoSession
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[token]
	if !ok || s.Expired(time.Now()) {
		return nil, domain.ErrSessionExpired
	}
	return s, nil
}

func (f *FakeAuthProvider) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	f.mu.Lock()
	f.SignInCalls = append(f.SignInCalls, email)
	acct, ok := f.accounts[email]
	f.mu.Unlock()

	if !ok || acct.Password != password {
		return nil, &domain.ProviderError{Op: "signin", Message: "Invalid login credentials", Err: domain.ErrInvalidCredentials}
	}
	token := f.IssueSession(acct.UserID, time.Hour)
	return f.CurrentSession(ctx, token)
}

func (f *FakeAuthProvider) SignUp(ctx context.Context, email, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignUpCalls = append(f.SignUpCalls, email)
	if _, ok := f.accounts[email]; ok {
		return &domain.ProviderError{Op: "signup", Message: "User already registered", Err: domain.ErrUserAlreadyExists}
	}
	f.accounts[email] = FakeAccount{UserID: fmt.Sprintf("user:%d", len(f.accounts)+1), Password: password}
	return nil
}

func (f *FakeAuthProvider) SignOut(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignOutCalls = append(f.SignOutCalls, token)
	if f.SignOutErr != nil {
		return f.SignOutErr
	}
	delete(f.sessions, token)
	return nil
}

// SignInCount returns how many sign-in attempts reached the provider.
func (f *FakeAuthProvider) SignInCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.SignInCalls)
}

// FakeRowStore is an in-memory domain.RowStore.
type FakeRowStore struct {
	mu    sync.Mutex
	rows  map[string][]domain.Row
	Err   error
	Calls []domain.RowQuery
	// Block makes SelectOne wait for the context to end.
	Block bool
}

// NewFakeRowStore creates an empty store.
func NewFakeRowStore() *FakeRowStore {
	return &FakeRowStore{rows: make(map[string][]domain.Row)}
}

// Insert appends a row to table.
func (f *FakeRowStore) Insert(table string, row domain.Row) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[table] = append(f.rows[table], row)
}

func (f *FakeRowStore) SelectOne(ctx context.Context, q domain.RowQuery) (domain.Row, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, q)
	block, failure := f.Block, f.Err
	f.mu.Unlock()

	if block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if failure != nil {
		return nil, failure
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	var matches []domain.Row
	for _, row := range f.rows[q.Table] {
		if row[q.Field] == q.Value {
			matches = append(matches, project(row, q.Columns))
		}
	}
	switch len(matches) {
	case 0:
		return nil, ErrNoRows
	case 1:
		return matches[0], nil
	default:
		return nil, errors.New("fake: multiple rows")
	}
}

// CallCount returns how many lookups reached the store.
func (f *FakeRowStore) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

func project(row domain.Row, columns []string) domain.Row {
	if len(columns) == 0 {
		out := make(domain.Row, len(row))
		for k, v := range row {
			out[k] = v
		}
		return out
	}
	out := make(domain.Row, len(columns))
	for _, c := range columns {
		if v, ok := row[c]; ok {
			out[c] = v
		}
	}
	return out
}
