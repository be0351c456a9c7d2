package board

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hive/internal/dashboard"
	"github.com/nfrund/hive/internal/gate"
	"github.com/nfrund/hive/internal/view"
	"github.com/nfrund/hive/web/src/templates/components"
	"github.com/nfrund/hive/web/src/templates/layouts"
	"github.com/nfrund/hive/web/src/templates/pages"
	g "maragu.dev/gomponents"
)

// DataSource hands out the dataset to render. Implementations may swap the
// set between requests but never mutate one that was handed out.
type DataSource interface {
	Current() *dashboard.Set
}

// Handler renders the dashboard pages. Filters are read from the query string
// on every request; htmx requests that target a fragment get only that fragment.
type Handler struct {
	data DataSource
}

// NewHandler creates a new Handler.
func NewHandler(data DataSource) *Handler {
	return &Handler{data: data}
}

// Overview renders the dashboard root.
func (h *Handler) Overview(c echo.Context) error {
	f := dashboard.ParseFilter(c.QueryParams())
	o := h.data.Current().Overview(f)

	switch {
	case view.IsFragmentRequest(c, components.TaskTableID):
		return c.Render(http.StatusOK, "", components.TaskTable(o.Tasks))
	case view.IsFragmentRequest(c, components.NotificationPanelID):
		return c.Render(http.StatusOK, "", components.NotificationPanel(o.Notifications, pages.DashboardPath, f))
	}
	return h.page(c, "ダッシュボード", pages.DashboardPath, pages.Dashboard(o))
}

// Department renders /department/:dept. Unknown departments are a 404.
func (h *Handler) Department(c echo.Context) error {
	dept, ok := dashboard.Lookup(dashboard.Departments, c.Param("dept"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown department")
	}
	f := dashboard.ParseFilter(c.QueryParams())
	set := h.data.Current()
	path := "/department/" + dept.Key

	if dept.Key == dashboard.DeptPulse {
		p := set.Pulse(f)
		if view.IsFragmentRequest(c, components.AccountTableID) {
			return c.Render(http.StatusOK, "", components.AccountTable(p.Accounts))
		}
		return h.page(c, dept.Label, path, pages.Pulse(p))
	}

	p := set.Department(dept, f)
	if view.IsFragmentRequest(c, components.TaskTableID) {
		return c.Render(http.StatusOK, "", components.TaskTable(p.Tasks))
	}
	return h.page(c, dept.Label, path, pages.Department(p))
}

// Tasks renders the full task list.
func (h *Handler) Tasks(c echo.Context) error {
	p := h.data.Current().TaskList(dashboard.ParseFilter(c.QueryParams()))
	if view.IsFragmentRequest(c, components.TaskTableID) {
		return c.Render(http.StatusOK, "", components.TaskTable(p.Tasks))
	}
	return h.page(c, "タスク管理", pages.TasksPath, pages.Tasks(p))
}

// page wraps body in the signed-in chrome. The header is built from the
// profile the gate resolved.
func (h *Handler) page(c echo.Context, title, activePath string, body g.Node) error {
	viewer, ok := gate.ViewerFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	shell := layouts.Shell{Title: title, ActivePath: activePath, Profile: viewer.Profile}
	pageContent := view.AdaptGomponentToTempl(layouts.App(shell, body))
	return c.Render(http.StatusOK, "", layouts.Base(title, view.GetFlashData(c), pageContent))
}
