package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hive/internal/gate"
	"github.com/nfrund/hive/internal/view"
	"github.com/nfrund/hive/web/src/templates/layouts"
	"github.com/nfrund/hive/web/src/templates/pages"
)

// AccountPath is the signed-in user's account page.
const AccountPath = "/dashboard"

// DashboardHandler handles requests for the user's account page.
type DashboardHandler struct{}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// DashboardGet shows who is signed in.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	// The gate has already run and placed the viewer in the context.
	viewer, ok := gate.ViewerFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	shell := layouts.Shell{Title: "アカウント", ActivePath: AccountPath, Profile: viewer.Profile}
	pageContent := view.AdaptGomponentToTempl(layouts.App(shell, pages.Account(viewer.Profile)))
	return c.Render(http.StatusOK, "", layouts.Base(shell.Title, view.GetFlashData(c), pageContent))
}
