package board

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hive/internal/handlers"
	"github.com/nfrund/hive/internal/module"
	"github.com/nfrund/hive/web/src/templates/pages"
	"github.com/samber/do/v2"
)

// Dependencies holds all the services that the module requires.
type Dependencies struct {
	Data DataSource
}

// Module serves every page behind the gate.
type Module struct {
	module.BaseModule
	data DataSource
}

// New creates a new instance of the module.
func New(deps Dependencies) *Module {
	return &Module{data: deps.Data}
}

// Name returns the module's unique identifier.
func (m *Module) Name() string {
	return "dashboard"
}

// Register provides the page handler.
func (m *Module) Register(i do.Injector) error {
	do.Provide(i, func(do.Injector) (*Handler, error) {
		return NewHandler(m.data), nil
	})
	return nil
}

// Boot mounts the pages on the gated router group.
func (m *Module) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	slog.Info("Booting dashboard module: setting up routes...")
	h, err := do.Invoke[*Handler](i)
	if err != nil {
		return err
	}
	account := handlers.NewDashboardHandler()

	g.GET(pages.DashboardPath, h.Overview)
	g.GET("/department/:dept", h.Department)
	g.GET(pages.TasksPath, h.Tasks)
	g.GET(handlers.AccountPath, account.DashboardGet)
	return nil
}
