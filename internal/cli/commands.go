// Package cli defines the termilink command tree and console rendering.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/starford/termilink/internal"
	"github.com/starford/termilink/internal/apperr"
	"github.com/starford/termilink/internal/configstore"
	"github.com/starford/termilink/internal/noteservice"
	"github.com/starford/termilink/internal/storage"
)

// New builds the root termilink command.
func New() *cli.Command {
	return &cli.Command{
		Name:  "termilink",
		Usage: "CLI tool for taking notes in terminal and appending to an Obsidian vault",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (overrides the well-known locations)",
				Sources: cli.EnvVars("TERMILINK_CONFIG_FILE"),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			addCommand(),
			quickCommand(),
			createCommand(),
			recentCommand(),
			todayCommand(),
			configCommand(),
		},
	}
}

// setup configures the process-wide logger from the global flags.
func setup(cmd *cli.Command) {
	level := slog.LevelWarn
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// loadConfig loads the configuration for a note command, translating a
// missing config into a hint to run config init.
func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	var (
		cfg  *internal.Config
		path string
		err  error
	)
	if p := cmd.String("config"); p != "" {
		path = p
		cfg, err = configstore.LoadFrom(p)
	} else {
		cfg, path, err = configstore.Load()
	}
	if err != nil {
		if errors.Is(err, apperr.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w. Run 'termilink config init <vault_path>' first", apperr.ErrConfigNotFound)
		}
		return nil, err
	}
	slog.Debug("configuration loaded", slog.String("path", path))
	return cfg, nil
}

// buildService creates the note service backed by the configured vault.
func buildService(cfg *internal.Config) (*noteservice.Service, error) {
	store, err := storage.NewFS(cfg.VaultPath)
	if err != nil {
		return nil, err
	}
	return noteservice.NewService(store, cfg), nil
}

// Run executes the root command against the given arguments.
func Run(ctx context.Context, args []string) error {
	return New().Run(ctx, args)
}
