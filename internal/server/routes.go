package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hive/internal/app"
	"github.com/nfrund/hive/internal/audit"
	"github.com/nfrund/hive/internal/credentials"
	"github.com/nfrund/hive/internal/domain"
	"github.com/nfrund/hive/internal/fixtures"
	"github.com/nfrund/hive/internal/gate"
	"github.com/nfrund/hive/internal/handlers"
	"github.com/nfrund/hive/internal/middleware"
	"github.com/nfrund/hive/web"
	"github.com/samber/do/v2"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	creds, err := do.Invoke[*credentials.Service](s.injector)
	if err != nil {
		return err
	}
	provider, err := do.Invoke[domain.AuthProvider](s.injector)
	if err != nil {
		return err
	}
	recorder, err := do.Invoke[audit.Recorder](s.injector)
	if err != nil {
		return err
	}
	g, err := do.Invoke[*gate.Gate](s.injector)
	if err != nil {
		return err
	}
	store, err := do.Invoke[*fixtures.Store](s.injector)
	if err != nil {
		return err
	}

	authHandler := handlers.NewAuthHandler(creds, provider, recorder, g.LoginPath())
	rateLimiter := middleware.RateLimiter()

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	s.E.StaticFS("/static", web.Static())

	s.E.GET(g.LoginPath(), authHandler.AuthGet)
	s.E.POST("/auth/login", authHandler.LoginPost, rateLimiter)
	s.E.POST("/auth/signup", authHandler.SignUpPost, rateLimiter)
	s.E.POST("/auth/logout", authHandler.Logout)
	s.E.GET("/auth/logout", authHandler.Logout)

	// Everything a module mounts sits behind the gate.
	protected := s.E.Group("", g.Middleware())

	s.modules = app.NewModules(app.Dependencies{
		Fixtures:    store,
		FixturesDir: s.Cfg.GetFixturesDir(),
	})
	for _, m := range s.modules {
		if err := m.Register(s.injector); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	for _, m := range s.modules {
		if err := m.Boot(ctx, protected, s.injector); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
	}
	return nil
}
