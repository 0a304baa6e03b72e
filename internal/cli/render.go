package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/starford/termilink/internal"
	"github.com/starford/termilink/internal/storage"
)

var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

func checkMark() string {
	return color.GreenString("✓")
}

func crossMark() string {
	return yellow("✗")
}

// renderPanel prints a titled block of lines, skipping empty ones.
func renderPanel(title string, lines ...string) {
	fmt.Println(dim("── " + title + " ──"))
	for _, line := range lines {
		if line == "" {
			continue
		}
		fmt.Println(line)
	}
}

// RenderError prints err to stderr in the CLI's error style.
func RenderError(err error) {
	fmt.Fprintf(os.Stderr, "%s %s\n", red("Error:"), err)
}

func renderRecentTable(limit int, notes []storage.RecentNote) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"File", "Modified"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	for _, n := range notes {
		table.Append([]string{n.Path, n.ModTime.Format("2006-01-02 15:04")})
	}
	fmt.Printf("Recently Modified Notes (Top %d)\n", limit)
	table.Render()
}

func renderConfigTable(cfg *internal.Config) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Setting", "Value"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.AppendBulk([][]string{
		{"Vault Path", cfg.VaultPath},
		{"Daily Notes Path", cfg.DailyNotesPath},
		{"Daily Note Format", cfg.DailyNoteFormat},
		{"Default Format", string(cfg.DefaultFormat)},
		{"Include Timestamp", boolMark(cfg.IncludeTimestamp)},
		{"Timestamp Format", cfg.TimestampFormat},
		{"Append Newline", boolMark(cfg.AppendNewline)},
	})
	fmt.Println("Current Configuration")
	table.Render()
}

func boolMark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}
