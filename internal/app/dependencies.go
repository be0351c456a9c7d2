package app

import (
	"github.com/nfrund/hive/internal/fixtures"
	"github.com/nfrund/hive/internal/modules/board"
	"github.com/nfrund/hive/internal/modules/fixturewatch"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the server to wire up the modules.
type Dependencies struct {
	Fixtures    *fixtures.Store
	FixturesDir string
}

// boardDeps creates the dependency struct for the board module.
func boardDeps(deps Dependencies) board.Dependencies {
	return board.Dependencies{
		Data: deps.Fixtures,
	}
}

// fixturewatchDeps creates the dependency struct for the fixturewatch module.
func fixturewatchDeps(deps Dependencies) fixturewatch.Dependencies {
	return fixturewatch.Dependencies{
		Store: deps.Fixtures,
		Dir:   deps.FixturesDir,
	}
}
