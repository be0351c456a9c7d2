package gate_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/hive/internal/audit"
	"github.com/nfrund/hive/internal/domain"
	"github.com/nfrund/hive/internal/gate"
	"github.com/nfrund/hive/internal/profile"
	"github.com/nfrund/hive/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

type recordingRecorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordingRecorder) Record(_ context.Context, ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingRecorder) Events() []audit.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]audit.Event(nil), r.events...)
}

type fixture struct {
	e        *echo.Echo
	auth     *testutils.FakeAuthProvider
	rows     *testutils.FakeRowStore
	recorder *recordingRecorder
	rendered int
}

func setup(t *testing.T, opts gate.Options) *fixture {
	t.Helper()
	f := &fixture{
		e:        echo.New(),
		auth:     testutils.NewFakeAuthProvider(),
		rows:     testutils.NewFakeRowStore(),
		recorder: &recordingRecorder{},
	}
	opts.Recorder = f.recorder
	g := gate.New(f.auth, profile.NewResolver(f.rows), opts)

	f.e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	f.e.GET("/", func(c echo.Context) error {
		f.rendered++
		viewer, ok := gate.ViewerFrom(c)
		require.True(t, ok)
		return c.String(http.StatusOK, "hello "+viewer.Profile.DisplayName())
	}, g.Middleware())
	return f
}

func (f *fixture) get(token string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: gate.CookieName, Value: token})
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func clearedCookie(rec *httptest.ResponseRecorder) bool {
	for _, c := range rec.Result().Cookies() {
		if c.Name == gate.CookieName && c.MaxAge < 0 {
			return true
		}
	}
	return false
}

func hasFlashCookie(rec *httptest.ResponseRecorder) bool {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash-session" {
			return true
		}
	}
	return false
}

func TestMiddleware_NoSessionRedirects(t *testing.T) {
	f := setup(t, gate.Options{NotifyOnProfileFailure: true})

	rec := f.get("", nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, gate.DefaultLoginPath, rec.Header().Get(echo.HeaderLocation))
	assert.Zero(t, f.rendered)
	assert.Empty(t, f.rows.Calls, "no profile lookup without a session")
	assert.False(t, hasFlashCookie(rec), "no user-visible error")
	assert.Empty(t, f.recorder.Events())
}

func TestMiddleware_InvalidOrExpiredSessionRedirects(t *testing.T) {
	f := setup(t, gate.Options{LoginPath: "/login", NotifyOnProfileFailure: true})
	expired := f.auth.IssueSession("user:1", -time.Minute)

	for name, token := range map[string]string{"unknown token": "garbage", "expired token": expired} {
		t.Run(name, func(t *testing.T) {
			rec := f.get(token, nil)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
			assert.True(t, clearedCookie(rec))
			assert.False(t, hasFlashCookie(rec))
		})
	}
	assert.Zero(t, f.rendered)
	assert.Empty(t, f.rows.Calls)

	events := f.recorder.Events()
	require.Len(t, events, 2)
	assert.Equal(t, audit.KindAccessDenied, events[0].Kind)
	assert.Equal(t, "/", events[0].Path)
}

func TestMiddleware_MissingProfileRedirects(t *testing.T) {
	tests := []struct {
		name      string
		notify    bool
		wantFlash bool
	}{
		{name: "with notice", notify: true, wantFlash: true},
		{name: "silent", notify: false, wantFlash: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t, gate.Options{NotifyOnProfileFailure: tt.notify})
			token := f.auth.IssueSession("user:ghost", time.Hour)

			rec := f.get(token, nil)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, gate.DefaultLoginPath, rec.Header().Get(echo.HeaderLocation))
			assert.True(t, clearedCookie(rec))
			assert.Equal(t, tt.wantFlash, hasFlashCookie(rec))
			assert.Zero(t, f.rendered)

			events := f.recorder.Events()
			require.Len(t, events, 1)
			assert.Equal(t, "user:ghost", events[0].UserID)
		})
	}
}

func TestMiddleware_ProfileStoreErrorRedirects(t *testing.T) {
	f := setup(t, gate.Options{})
	f.rows.Err = errors.New("connection refused")
	token := f.auth.IssueSession("user:1", time.Hour)

	rec := f.get(token, nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Zero(t, f.rendered)
}

func TestMiddleware_RendersFromProfile(t *testing.T) {
	f := setup(t, gate.Options{})
	f.rows.Insert(profile.Table, domain.Row{"auth_id": "user:1", "user_id": "a0001.hive", "email": "a@x.com", "full_name": "山田太郎"})
	f.rows.Insert(profile.Table, domain.Row{"auth_id": "user:2", "user_id": "a0002.hive", "email": "b@x.com"})

	rec := f.get(f.auth.IssueSession("user:1", time.Hour), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello 山田太郎", rec.Body.String())

	rec = f.get(f.auth.IssueSession("user:2", time.Hour), nil)
	assert.Equal(t, "hello a0002.hive", rec.Body.String(), "display name falls back to the login id")
	assert.Equal(t, 2, f.rendered)
	assert.Empty(t, f.recorder.Events())
}

func TestMiddleware_HTMXRedirect(t *testing.T) {
	f := setup(t, gate.Options{})

	rec := f.get("", map[string]string{"HX-Request": "true"})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, gate.DefaultLoginPath, rec.Header().Get("HX-Redirect"))
}

func TestMiddleware_ClientGoneRendersNothing(t *testing.T) {
	f := setup(t, gate.Options{LookupTimeout: time.Minute})
	f.rows.Block = true
	token := f.auth.IssueSession("user:1", time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	req.AddCookie(&http.Cookie{Name: gate.CookieName, Value: token})
	rec := httptest.NewRecorder()

	go func() {
		assert.Eventually(t, func() bool { return f.rows.CallCount() > 0 }, time.Second, 5*time.Millisecond)
		cancel()
	}()
	f.e.ServeHTTP(rec, req)

	assert.Zero(t, f.rendered)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
	assert.Empty(t, f.recorder.Events())
}

func TestResolve_LookupTimeout(t *testing.T) {
	rows := testutils.NewFakeRowStore()
	rows.Block = true
	auth := testutils.NewFakeAuthProvider()
	g := gate.New(auth, profile.NewResolver(rows), gate.Options{LookupTimeout: 20 * time.Millisecond})

	_, err := g.Resolve(context.Background(), auth.IssueSession("user:1", time.Hour))

	var denied *gate.DeniedError
	require.ErrorAs(t, err, &denied)
	assert.True(t, denied.ProfileFailure())
	assert.Equal(t, "user:1", denied.UserID)
}

func TestResolve_NoToken(t *testing.T) {
	g := gate.New(testutils.NewFakeAuthProvider(), profile.NewResolver(testutils.NewFakeRowStore()), gate.Options{})

	_, err := g.Resolve(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrNoSession)
	assert.Equal(t, gate.DefaultLoginPath, g.LoginPath())
}
