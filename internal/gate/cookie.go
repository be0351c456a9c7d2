package gate

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hive/internal/domain"
)

// CookieName holds the provider session token.
const CookieName = "auth_token"

// defaultCookieTTL applies when the provider gives no expiry.
const defaultCookieTTL = 24 * time.Hour

// SessionToken returns the token from the request cookie, or "".
func SessionToken(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetSessionCookie stores the session token so it expires with the session.
func SetSessionCookie(c echo.Context, session *domain.Session) {
	expires := session.ExpiresAt
	if expires.IsZero() {
		expires = time.Now().Add(defaultCookieTTL)
	}
	c.SetCookie(newCookie(c, session.Token, expires.UTC()))
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c echo.Context) {
	cookie := newCookie(c, "", time.Unix(0, 0))
	cookie.MaxAge = -1
	c.SetCookie(cookie)
}

// newCookie marks the cookie Secure only when served over TLS, so local
// development over plain HTTP keeps working.
func newCookie(c echo.Context, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.Request().TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
}
