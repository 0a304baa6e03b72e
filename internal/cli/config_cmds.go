package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/starford/termilink/internal"
	"github.com/starford/termilink/internal/apperr"
	"github.com/starford/termilink/internal/configstore"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			configInitCommand(),
			configShowCommand(),
			configSetVaultCommand(),
		},
	}
}

func configInitCommand() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Initialize termiLink configuration",
		ArgsUsage: "<vault_path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "daily-notes-path",
				Usage: "Relative path to daily notes folder",
				Value: internal.DefaultDailyNotesPath,
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Override existing config",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			setup(cmd)
			vaultArg := cmd.Args().First()
			if vaultArg == "" {
				return fmt.Errorf("a vault path is required")
			}

			savePath := cmd.String("config")
			var existing string
			var exists bool
			if savePath != "" {
				if _, err := os.Stat(savePath); err == nil {
					existing, exists = savePath, true
				}
			} else {
				savePath = configstore.DefaultPath()
				existing, exists = configstore.Find()
			}
			if exists && !cmd.Bool("force") {
				return fmt.Errorf("configuration already exists at %s. Use --force to override", existing)
			}

			cfg, err := configstore.CreateDefault(vaultArg,
				configstore.WithDailyNotesPath(cmd.String("daily-notes-path")))
			if err != nil {
				return err
			}
			if err := configstore.Save(cfg, savePath); err != nil {
				return err
			}

			renderPanel("Configuration Initialized",
				fmt.Sprintf("%s Configuration created at: %s", checkMark(), cyan(savePath)),
				"Vault: "+cyan(cfg.VaultPath),
				"Daily Notes: "+cyan(cfg.DailyNotesPath))
			return nil
		},
	}
}

func configShowCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Show current configuration",
		Action: func(_ context.Context, cmd *cli.Command) error {
			setup(cmd)
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			renderConfigTable(cfg)
			return nil
		},
	}
}

func configSetVaultCommand() *cli.Command {
	return &cli.Command{
		Name:      "set-vault",
		Usage:     "Update vault path in configuration",
		ArgsUsage: "<path>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			setup(cmd)
			vaultArg := cmd.Args().First()
			if vaultArg == "" {
				return fmt.Errorf("a vault path is required")
			}

			savePath := cmd.String("config")
			var cfg *internal.Config
			var err error
			if savePath != "" {
				cfg, err = configstore.LoadFrom(savePath)
			} else {
				cfg, savePath, err = configstore.Load()
			}
			if err != nil {
				if errors.Is(err, apperr.ErrConfigNotFound) {
					return fmt.Errorf("%w. Run 'termilink config init <vault_path>' first", apperr.ErrConfigNotFound)
				}
				return err
			}

			abs, err := filepath.Abs(vaultArg)
			if err != nil {
				return fmt.Errorf("resolve vault path: %w", err)
			}
			cfg.VaultPath = abs
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := configstore.Save(cfg, savePath); err != nil {
				return err
			}

			fmt.Printf("%s Vault path updated to: %s\n", checkMark(), cyan(cfg.VaultPath))
			return nil
		},
	}
}
