// Package internal holds the application configuration model.
package internal

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/termilink/internal/apperr"
	"github.com/starford/termilink/internal/models"
	"github.com/starford/termilink/internal/timefmt"
)

// Default configuration values.
const (
	DefaultDailyNotesPath  = "Daily Notes"
	DefaultDailyNoteFormat = "%Y-%m-%d"
	DefaultTimestampFormat = "%H:%M"
)

// Config represents the termiLink configuration.
type Config struct {
	VaultPath        string        `yaml:"vault_path" json:"vault_path"`
	DailyNotesPath   string        `yaml:"daily_notes_path" json:"daily_notes_path"`
	DailyNoteFormat  string        `yaml:"daily_note_format" json:"daily_note_format"`
	DefaultFormat    models.Format `yaml:"default_format" json:"default_format"`
	IncludeTimestamp bool          `yaml:"include_timestamp" json:"include_timestamp"`
	TimestampFormat  string        `yaml:"timestamp_format" json:"timestamp_format"`
	AppendNewline    bool          `yaml:"append_newline" json:"append_newline"`
}

// Validate validates the configuration. The vault path is resolved to an
// absolute path and must exist as a directory at validation time.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.VaultPath, validation.Required),
		validation.Field(&c.DailyNotesPath, validation.Required),
		validation.Field(&c.DailyNoteFormat, validation.Required, validation.By(strftimePattern)),
		validation.Field(&c.DefaultFormat, validation.Required, validation.In(
			models.FormatPlain, models.FormatTimestamp, models.FormatBullet, models.FormatTask)),
		validation.Field(&c.TimestampFormat, validation.Required, validation.By(strftimePattern)),
	); err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrConfigInvalid, err)
	}

	abs, err := filepath.Abs(c.VaultPath)
	if err != nil {
		return fmt.Errorf("%w: resolve vault path: %w", apperr.ErrVaultPathInvalid, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("%w: %s does not exist", apperr.ErrVaultPathInvalid, abs)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", apperr.ErrVaultPathInvalid, abs)
	}
	c.VaultPath = abs

	if filepath.IsAbs(c.DailyNotesPath) {
		return fmt.Errorf("%w: daily_notes_path must be relative to the vault", apperr.ErrConfigInvalid)
	}
	return nil
}

func strftimePattern(value interface{}) error {
	s, _ := value.(string)
	return timefmt.Validate(s)
}

// NewDefaultConfig returns a Config with default field values and no vault
// path. Loading overlays a config file onto this so omitted fields keep
// their defaults.
func NewDefaultConfig() *Config {
	return &Config{
		DailyNotesPath:   DefaultDailyNotesPath,
		DailyNoteFormat:  DefaultDailyNoteFormat,
		DefaultFormat:    models.FormatTimestamp,
		IncludeTimestamp: true,
		TimestampFormat:  DefaultTimestampFormat,
		AppendNewline:    true,
	}
}
