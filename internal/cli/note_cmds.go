package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/starford/termilink/internal/models"
)

func addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a note to the vault",
		ArgsUsage: "<content>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Target file name instead of the daily note",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"F"},
				Usage:   "Note format: plain, timestamp, bullet, or task",
			},
			&cli.StringSliceFlag{
				Name:    "tag",
				Aliases: []string{"t"},
				Usage:   "Tags to append as #tag tokens (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "no-timestamp",
				Usage: "Disable the timestamp for this note",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setup(cmd)
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			format := cfg.DefaultFormat
			if s := cmd.String("format"); s != "" {
				format, err = models.ParseFormat(s)
				if err != nil {
					return err
				}
			}
			if cmd.Bool("no-timestamp") {
				cfg.IncludeTimestamp = false
			}

			note, err := models.NewNote(cmd.Args().First(), format, cmd.StringSlice("tag"))
			if err != nil {
				return err
			}

			svc, err := buildService(cfg)
			if err != nil {
				return err
			}
			res, err := svc.Append(ctx, note, cmd.String("file"))
			if err != nil {
				return err
			}

			renderPanel("Success",
				fmt.Sprintf("%s Note added to: %s", checkMark(), cyan(res.Path)),
				dim(res.Formatted))
			return nil
		},
	}
}

func quickCommand() *cli.Command {
	return &cli.Command{
		Name:      "quick",
		Usage:     "Quickly add a note with default settings",
		ArgsUsage: "<content>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setup(cmd)
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			note, err := models.NewNote(cmd.Args().First(), cfg.DefaultFormat, nil)
			if err != nil {
				return err
			}

			svc, err := buildService(cfg)
			if err != nil {
				return err
			}
			res, err := svc.Append(ctx, note, "")
			if err != nil {
				return err
			}

			fmt.Printf("%s Added to %s\n", checkMark(), cyan(res.Path))
			return nil
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a new note file in the vault",
		ArgsUsage: "<title> [content]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Subdirectory in the vault",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setup(cmd)
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			title := cmd.Args().First()
			if strings.TrimSpace(title) == "" {
				return fmt.Errorf("a note title is required")
			}
			content := cmd.Args().Get(1)
			if content == "" {
				content = promptContent()
			}

			svc, err := buildService(cfg)
			if err != nil {
				return err
			}
			rel, err := svc.Create(ctx, title, content, cmd.String("dir"))
			if err != nil {
				return err
			}

			renderPanel("Success", fmt.Sprintf("%s Created: %s", checkMark(), cyan(rel)))
			return nil
		},
	}
}

// promptContent asks for initial content on stderr and reads one line from
// stdin; EOF or a blank line yields empty content.
func promptContent() string {
	fmt.Fprint(os.Stderr, "Enter initial content (or press Enter to skip): ")
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}

func recentCommand() *cli.Command {
	return &cli.Command{
		Name:  "recent",
		Usage: "List recently modified notes",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "Number of recent notes to show",
				Value:   10,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setup(cmd)
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := buildService(cfg)
			if err != nil {
				return err
			}

			limit := int(cmd.Int("limit"))
			notes, err := svc.Recent(ctx, limit)
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				fmt.Println(yellow("No notes found in vault."))
				return nil
			}
			renderRecentTable(limit, notes)
			return nil
		},
	}
}

func todayCommand() *cli.Command {
	return &cli.Command{
		Name:  "today",
		Usage: "Show path to today's daily note",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setup(cmd)
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := buildService(cfg)
			if err != nil {
				return err
			}

			info, err := svc.Today(ctx)
			if err != nil {
				return err
			}

			status := crossMark() + " not created yet"
			if info.Exists {
				status = checkMark() + " exists"
			}
			renderPanel("Today's Daily Note", cyan(info.Path), "Status: "+status)
			return nil
		},
	}
}
