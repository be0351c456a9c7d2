package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hive/internal/audit"
	"github.com/nfrund/hive/internal/credentials"
	"github.com/nfrund/hive/internal/domain"
	"github.com/nfrund/hive/internal/gate"
	"github.com/nfrund/hive/internal/middleware"
	"github.com/nfrund/hive/internal/view"
	"github.com/nfrund/hive/internal/view/dto/auth"
	"github.com/nfrund/hive/web/src/templates/layouts"
	"github.com/nfrund/hive/web/src/templates/pages"
)

const (
	// HomePath is where a successful login lands.
	HomePath = "/"

	signUpMode = "signup"

	MsgSignUpSucceeded = "サインアップ成功！ログインできます"
	MsgLoginSucceeded  = "ログイン成功！"
	MsgUserNotFound    = "ユーザーが見つかりません"
	msgProviderDown    = "認証サービスに接続できません"
)

// AuthHandler handles the login page and the credential forms posted from it.
type AuthHandler struct {
	credentials *credentials.Service
	provider    domain.AuthProvider
	recorder    audit.Recorder
	loginPath   string
}

// NewAuthHandler creates a new AuthHandler. A nil recorder discards audit events.
func NewAuthHandler(creds *credentials.Service, provider domain.AuthProvider, recorder audit.Recorder, loginPath string) *AuthHandler {
	if recorder == nil {
		recorder = audit.Nop{}
	}
	if loginPath == "" {
		loginPath = gate.DefaultLoginPath
	}
	return &AuthHandler{
		credentials: creds,
		provider:    provider,
		recorder:    recorder,
		loginPath:   loginPath,
	}
}

// AuthGet renders the login page (GET /auth). Values from a failed POST are
// pre-filled, and a failed sign-up reopens the sign-up form.
func (h *AuthHandler) AuthGet(c echo.Context) error {
	data := auth.LoginData{
		Identifier:  view.PopFormValue(c, "identifier"),
		SignUpEmail: view.PopFormValue(c, "email"),
	}
	data.ShowSignUp = data.SignUpEmail != "" || c.QueryParam("mode") == signUpMode

	flashes := view.GetFlashData(c)
	pageContent := view.AdaptGomponentToTempl(pages.Auth(data))
	finalComponent := layouts.Base("ログイン", flashes, pageContent)
	return c.Render(http.StatusOK, "", finalComponent)
}

// LoginPost handles the login form. On success the session cookie is set and
// the user lands on the dashboard; otherwise the form is shown again with the
// provider's message.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.loginFailed(c, req.Identifier, validationMessage(err), err)
	}

	session, err := h.credentials.Login(ctx, req.Identifier, req.Password)
	if err != nil {
		return h.loginFailed(c, req.Identifier, credentialMessage(err), err)
	}

	gate.SetSessionCookie(c, session)
	h.recorder.Record(ctx, audit.Event{
		Kind:       audit.KindSignedIn,
		UserID:     session.UserID,
		Identifier: req.Identifier,
		Path:       c.Path(),
	})
	view.SetFlashSuccess(c, MsgLoginSucceeded)
	return c.Redirect(http.StatusSeeOther, HomePath)
}

func (h *AuthHandler) loginFailed(c echo.Context, identifier, message string, err error) error {
	ctx := c.Request().Context()
	middleware.FromContext(ctx).Warn("Failed login attempt", "identifier", identifier, "error", err)
	h.recorder.Record(ctx, audit.Event{
		Kind:       audit.KindSignInFailed,
		Identifier: identifier,
		Path:       c.Path(),
		Reason:     err.Error(),
	})

	view.SetFormValue(c, "identifier", identifier)
	view.SetFlashError(c, "ログインエラー: "+message)
	return c.Redirect(http.StatusSeeOther, h.loginPath)
}

// SignUpPost handles the sign-up form. A new account is not signed in; the
// user is sent back to the login form with a confirmation.
func (h *AuthHandler) SignUpPost(c echo.Context) error {
	ctx := c.Request().Context()

	var req SignUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.signUpFailed(c, req.Email, validationMessage(err), err)
	}

	if err := h.credentials.SignUp(ctx, req.Email, req.Password); err != nil {
		return h.signUpFailed(c, req.Email, credentialMessage(err), err)
	}

	h.recorder.Record(ctx, audit.Event{Kind: audit.KindSignedUp, Identifier: req.Email, Path: c.Path()})
	view.SetFlashSuccess(c, MsgSignUpSucceeded)
	return c.Redirect(http.StatusSeeOther, h.loginPath)
}

func (h *AuthHandler) signUpFailed(c echo.Context, email, message string, err error) error {
	ctx := c.Request().Context()
	middleware.FromContext(ctx).Warn("Failed sign-up attempt", "email", email, "error", err)
	h.recorder.Record(ctx, audit.Event{
		Kind:       audit.KindSignUpFailed,
		Identifier: email,
		Path:       c.Path(),
		Reason:     err.Error(),
	})

	view.SetFormValue(c, "email", email)
	view.SetFlashError(c, "サインアップエラー: "+message)
	return c.Redirect(http.StatusSeeOther, h.loginPath+"?mode="+signUpMode)
}

// Logout ends the provider session and always sends the user to the login
// page. A provider failure is logged and audited but never shown.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if token := gate.SessionToken(c); token != "" {
		// The provider call should complete even if the browser navigates away.
		signOutCtx := context.WithoutCancel(ctx)
		if err := h.provider.SignOut(signOutCtx, token); err != nil {
			middleware.FromContext(ctx).Warn("Sign-out failed at the provider", "error", err)
			h.recorder.Record(ctx, audit.Event{Kind: audit.KindSignOutFailed, Path: c.Path(), Reason: err.Error()})
		} else {
			h.recorder.Record(ctx, audit.Event{Kind: audit.KindSignedOut, Path: c.Path()})
		}
	}

	gate.ClearSessionCookie(c)
	return gate.Redirect(c, h.loginPath)
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

// credentialMessage is the text shown after "ログインエラー: ". Provider
// messages are passed through unchanged.
func credentialMessage(err error) string {
	var providerErr *domain.ProviderError
	switch {
	case errors.As(err, &providerErr):
		return providerErr.Message
	case errors.Is(err, domain.ErrUserNotFound):
		return MsgUserNotFound
	default:
		return msgProviderDown
	}
}
