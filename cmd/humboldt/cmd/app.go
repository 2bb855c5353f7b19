package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/msto63/mCW/internal/humboldt/catalog"
	"github.com/msto63/mCW/internal/humboldt/service"
	"github.com/msto63/mCW/pkg/core/config"
	"github.com/msto63/mCW/pkg/core/logging"
)

// registryFile is the catalog file mutating commands write back to.
const registryFile = "registry.yaml"

// quietLogs suppresses component logs below the error level. The TUI
// sets it so log output does not corrupt the alternate screen.
var quietLogs bool

// app bundles the components every command works with.
type app struct {
	cfg    *config.Config
	svc    *service.Service
	loader *catalog.Loader
	seed   *catalog.ApplyResult
}

// newApp loads the configuration, seeds the registry from the catalog
// directory and returns the wired components.
func newApp(ctx context.Context) (*app, error) {
	cfg := loadConfig()

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	} else if quietLogs {
		level = "error"
	}
	logging.Configure(logging.LoggerConfig{
		Level:  level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})

	svc := service.NewService(service.DefaultConfig())

	loader := catalog.NewLoader(cfg.Catalog.Directory)
	loader.SetDebounce(cfg.Catalog.Debounce.Duration)
	if err := loader.LoadAll(); err != nil {
		return nil, err
	}
	seed, err := loader.Apply(ctx, svc)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, svc: svc, loader: loader, seed: seed}, nil
}

// save writes the registry snapshot back to the catalog directory so
// the next invocation starts from the same state.
func (a *app) save(ctx context.Context) error {
	return catalog.Export(ctx, a.svc, filepath.Join(a.loader.GetDirectory(), registryFile))
}
