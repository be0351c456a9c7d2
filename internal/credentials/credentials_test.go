package credentials_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nfrund/hive/internal/credentials"
	"github.com/nfrund/hive/internal/domain"
	"github.com/nfrund/hive/internal/profile"
	"github.com/nfrund/hive/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() (*credentials.Service, *testutils.FakeAuthProvider, *testutils.FakeRowStore) {
	auth := testutils.NewFakeAuthProvider()
	auth.AddAccount("a@x.com", "user:1", "correct-horse")

	rows := testutils.NewFakeRowStore()
	rows.Insert(profile.Table, domain.Row{"auth_id": "user:1", "user_id": "a0001.hive", "email": "a@x.com"})

	return credentials.NewService(auth, profile.NewResolver(rows)), auth, rows
}

func TestService_IsEmail(t *testing.T) {
	svc, _, _ := newService()

	assert.True(t, svc.IsEmail("a@x.com"))
	assert.False(t, svc.IsEmail("a0001.hive"))
	assert.False(t, svc.IsEmail(""))
	assert.False(t, svc.IsEmail("@"))
}

func TestService_Login_LoginIDMatchesEmailLogin(t *testing.T) {
	svc, auth, _ := newService()
	ctx := context.Background()

	byEmail, err := svc.Login(ctx, "a@x.com", "correct-horse")
	require.NoError(t, err)

	byLoginID, err := svc.Login(ctx, "a0001.hive", "correct-horse")
	require.NoError(t, err)

	assert.Equal(t, byEmail.UserID, byLoginID.UserID)
	assert.Equal(t, []string{"a@x.com", "a@x.com"}, auth.SignInCalls)
}

func TestService_Login_UnknownLoginID(t *testing.T) {
	svc, auth, _ := newService()

	_, err := svc.Login(context.Background(), "zzz.hive", "whatever")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, 0, auth.SignInCount(), "provider must not be called")
}

func TestService_Login_LookupFailure(t *testing.T) {
	svc, auth, rows := newService()
	rows.Err = errors.New("row store down")

	_, err := svc.Login(context.Background(), "a0001.hive", "correct-horse")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, 0, auth.SignInCount())
}

func TestService_Login_EmailSkipsLookup(t *testing.T) {
	svc, _, rows := newService()

	_, err := svc.Login(context.Background(), "  a@x.com ", "correct-horse")

	require.NoError(t, err)
	assert.Empty(t, rows.Calls)
}

func TestService_Login_ProviderMessageIsVerbatim(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Login(context.Background(), "a0001.hive", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, "Invalid login credentials", err.Error())
}

func TestService_SignUp(t *testing.T) {
	svc, auth, _ := newService()
	ctx := context.Background()

	require.NoError(t, svc.SignUp(ctx, "new@x.com", "long-enough"))
	assert.Equal(t, []string{"new@x.com"}, auth.SignUpCalls)
	assert.Equal(t, 0, auth.SignInCount(), "sign-up does not sign in")

	err := svc.SignUp(ctx, "a@x.com", "long-enough")
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}
