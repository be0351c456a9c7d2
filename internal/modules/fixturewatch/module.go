// Package fixturewatch reloads the dashboard fixtures while the server runs.
package fixturewatch

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hive/internal/module"
	"github.com/samber/do/v2"
)

// Watcher is the part of the fixture store the module drives.
type Watcher interface {
	Watch(ctx context.Context, dir string) error
}

// Dependencies holds all the services that the module requires.
type Dependencies struct {
	Store Watcher
	// Dir is the fixture directory; empty disables watching.
	Dir string
}

// Module runs the watcher from Boot until Shutdown.
type Module struct {
	module.BaseModule
	store Watcher
	dir   string

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a new instance of the module.
func New(deps Dependencies) *Module {
	return &Module{store: deps.Store, dir: deps.Dir}
}

// Name returns the module's unique identifier.
func (m *Module) Name() string {
	return "fixturewatch"
}

// Boot starts watching. It returns immediately.
func (m *Module) Boot(ctx context.Context, _ *echo.Group, _ do.Injector) error {
	if m.dir == "" {
		slog.Debug("Fixture watching disabled; serving embedded fixtures")
		return nil
	}

	watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	m.cancel = cancel
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		slog.Info("Watching fixtures", "dir", m.dir)
		if err := m.store.Watch(watchCtx, m.dir); err != nil {
			slog.Error("Fixture watcher stopped", "dir", m.dir, "error", err)
		}
	}()
	return nil
}

// Shutdown stops the watcher and waits for it, or for ctx to end.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.cancel == nil {
		return nil
	}
	m.cancel()
	select {
	case <-m.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
