package application

import (
	"fmt"

	"github.com/your-org/roster/internal/config"
	"github.com/your-org/roster/internal/logger"
	"github.com/your-org/roster/internal/mediator"
	"github.com/your-org/roster/internal/store"
	"github.com/your-org/roster/internal/ui"
)

// Container holds the wired application components. Only the container knows
// about both the store and the surface; the store never sees the mediator and
// the mediator never renders directly.
type Container struct {
	Store    *store.RecordStore
	Mediator *mediator.Mediator
	UI       *ui.Model
}

// Build wires up the store, the mediator, and the terminal surface from
// configuration. The store is seeded once here and lives for the process;
// nothing is persisted at exit.
func Build(cfg *config.Config) (*Container, error) {
	seed := store.DefaultSeed()
	if cfg.SeedFile != "" {
		loaded, err := store.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("load seed file: %w", err)
		}
		seed = loaded
		logger.Logger.Info().Str("path", cfg.SeedFile).Int("students", len(loaded)).Msg("seeded roster from file")
	}

	recordStore := store.NewSeeded(seed)
	surface := ui.New(cfg.UI.Color)

	// The mediator's constructor performs the initial render into the surface.
	med := mediator.New(recordStore, surface)
	surface.Bind(med)

	return &Container{
		Store:    recordStore,
		Mediator: med,
		UI:       surface,
	}, nil
}
