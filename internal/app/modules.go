package app

import (
	"github.com/nfrund/hive/internal/module"
	"github.com/nfrund/hive/internal/modules/board"
	"github.com/nfrund/hive/internal/modules/fixturewatch"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		board.New(boardDeps(deps)),
		fixturewatch.New(fixturewatchDeps(deps)),
	}
}
