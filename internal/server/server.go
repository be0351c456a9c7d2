package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/hive/internal/config"
	"github.com/nfrund/hive/internal/handlers"
	"github.com/nfrund/hive/internal/logging"
	appmiddleware "github.com/nfrund/hive/internal/middleware"
	"github.com/nfrund/hive/internal/module"
	"github.com/nfrund/hive/internal/rendering"
	"github.com/samber/do/v2"
)

// sessionMaxAge is how long the flash session cookie lives.
const sessionMaxAge = 86400 * 7

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider

	injector *do.RootScope
	modules  []module.Module
}

// New loads the configuration, wires the backing services and registers
// every route.
func New(ctx context.Context) (*Server, error) {
	logging.New()
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewWithDependencies(ctx, cfg, NewContainer(cfg))
}

// NewWithDependencies builds a server on an existing container. Tests use it
// to swap backing services for fakes.
func NewWithDependencies(ctx context.Context, cfg config.Provider, injector *do.RootScope) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Renderer = rendering.NewUniversalRenderer()

	setupMiddleware(e, cfg)
	setupErrorHandling(e)

	s := &Server{E: e, Cfg: cfg, injector: injector}
	if err := s.RegisterRoutes(ctx); err != nil {
		return nil, fmt.Errorf("failed to register routes: %w", err)
	}
	return s, nil
}

func setupMiddleware(e *echo.Echo, cfg config.Provider) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(appmiddleware.Logger)
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger := appmiddleware.FromContext(c.Request().Context())
			if v.Error != nil {
				logger.Warn("Request failed", "uri", v.URI, "status", v.Status, "latency", v.Latency, "error", v.Error)
				return nil
			}
			logger.Info("Request", "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))
}

// setupErrorHandling logs unexpected errors with a stack trace. HTTP errors
// raised on purpose keep echo's default handling.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			appmiddleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err,
				"stack_trace", string(debug.Stack()),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
