// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"

	"mimectl/internal/alias"
	"mimectl/internal/assoc"
	"mimectl/internal/config"
	"mimectl/internal/desktop"
	"mimectl/internal/xdg"

	"github.com/charmbracelet/log"
)

// App bundles the collaborators every command needs: the tool config, the
// application registry, the alias resolver and a logger. All of them are
// loaded once per invocation and passed explicitly; there is no lazily
// initialized global state.
type App struct {
	Config   config.Config
	Logger   *log.Logger
	Registry *desktop.Registry
	Aliases  *alias.Resolver
}

// newApp wires up the collaborators. Config and alias-database trouble is
// reported but not fatal: the former falls back to defaults, the latter to
// identity canonicalization.
func newApp() *App {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "mimectl",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("using default configuration", "err", err)
	}

	dataDirs := xdg.DataDirs()
	aliases, err := alias.Load(dataDirs)
	if err != nil {
		logger.Warn("shared MIME database unavailable, aliases not canonicalized", "err", err)
	}
	logger.Debug("loaded alias database", "entries", aliases.Len())

	return &App{
		Config:   cfg,
		Logger:   logger,
		Registry: desktop.NewRegistry(dataDirs...),
		Aliases:  aliases,
	}
}

// loadCanonical reads mimeapps.list and wraps it in its canonical view.
func (a *App) loadCanonical() (*assoc.Canonical, error) {
	table, err := assoc.Load(a.Registry)
	if err != nil {
		return nil, err
	}
	a.Logger.Debug("loaded associations",
		"defaults", len(table.Defaults),
		"added", len(table.Added),
		"removed", len(table.Removed))
	return assoc.Canonicalize(table, a.Aliases), nil
}
