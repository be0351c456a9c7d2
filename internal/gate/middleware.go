package gate

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hive/internal/audit"
	"github.com/nfrund/hive/internal/middleware"
	"github.com/nfrund/hive/internal/view"
)

// ViewerContextKey is where Middleware stores the resolved *Viewer.
const ViewerContextKey = "viewer"

// ViewerFrom returns the viewer stored by Middleware.
func ViewerFrom(c echo.Context) (*Viewer, bool) {
	v, ok := c.Get(ViewerContextKey).(*Viewer)
	return v, ok && v != nil
}

// Middleware wraps protected routes. Denied requests are redirected to the
// login path with the stale cookie cleared. When the client goes away while a
// lookup is outstanding the request ends without a response body.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			token := SessionToken(c)

			viewer, err := g.Resolve(ctx, token)
			if err != nil {
				var denied *DeniedError
				if !errors.As(err, &denied) {
					middleware.FromContext(ctx).Debug("Request abandoned during gate lookup", "error", err)
					return nil
				}
				return g.deny(c, token, denied)
			}

			c.Set(ViewerContextKey, viewer)
			return next(c)
		}
	}
}

func (g *Gate) deny(c echo.Context, token string, denied *DeniedError) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	if token != "" {
		ClearSessionCookie(c)
	}

	if denied.ProfileFailure() {
		logger.Warn("Profile lookup failed, sending user to login", "user_id", denied.UserID, "error", denied.Err)
		if g.opts.NotifyOnProfileFailure {
			view.SetFlashError(c, ProfileErrorMessage)
		}
	} else {
		logger.Debug("No valid session, sending user to login", "error", denied.Err)
	}

	// Anonymous visits are routine; only rejected tokens are audited.
	if token != "" {
		g.opts.Recorder.Record(ctx, audit.Event{
			Kind:   audit.KindAccessDenied,
			UserID: denied.UserID,
			Path:   c.Request().URL.Path,
			Reason: denied.Err.Error(),
		})
	}

	return Redirect(c, g.opts.LoginPath)
}

// Redirect sends the browser to path. htmx requests get an HX-Redirect header
// so the whole page navigates instead of the login form being swapped into a
// fragment.
func Redirect(c echo.Context, path string) error {
	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Redirect", path)
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusSeeOther, path)
}
