// Package configstore locates, loads, and saves the termiLink configuration
// file at its well-known locations.
package configstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/starford/termilink/internal"
	"github.com/starford/termilink/internal/apperr"
	"github.com/starford/termilink/internal/models"
)

// Locations returns the candidate config file paths in priority order:
// ~/.termilink.yaml, the XDG config directory, then the working directory.
func Locations() []string {
	return []string{
		filepath.Join(xdg.Home, ".termilink.yaml"),
		filepath.Join(xdg.ConfigHome, "termilink", "config.yaml"),
		filepath.Join(".", ".termilink.yaml"),
	}
}

// DefaultPath is where Save writes when no explicit path is given.
func DefaultPath() string {
	return Locations()[0]
}

// Find returns the first existing config file path.
func Find() (string, bool) {
	for _, p := range Locations() {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// Load searches the well-known locations and loads the first config found.
// It returns apperr.ErrConfigNotFound when no file exists at any location.
func Load() (*internal.Config, string, error) {
	path, ok := Find()
	if !ok {
		return nil, "", apperr.ErrConfigNotFound
	}
	cfg, err := LoadFrom(path)
	return cfg, path, err
}

// LoadFrom decodes the config file at path onto the defaults and validates
// the result. YAML and JSON are dispatched by file extension.
func LoadFrom(path string) (*internal.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", apperr.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("configstore: read %s: %w", path, err)
	}

	cfg := internal.NewDefaultConfig()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", apperr.ErrConfigInvalid, path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", apperr.ErrConfigInvalid, path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config file format: %s", apperr.ErrConfigInvalid, filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save serializes cfg as YAML and writes it atomically: tmp file → fsync →
// rename. Parent directories are created as needed.
func Save(cfg *internal.Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("configstore: marshal: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("configstore: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".termilink-tmp-*")
	if err != nil {
		return fmt.Errorf("configstore: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("configstore: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("configstore: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("configstore: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("configstore: rename: %w", err)
	}
	success = true
	return nil
}

// Option overrides a default field when building a new configuration.
type Option func(*internal.Config)

// WithDailyNotesPath overrides the daily notes folder.
func WithDailyNotesPath(p string) Option {
	return func(c *internal.Config) {
		c.DailyNotesPath = p
	}
}

// WithDefaultFormat overrides the default note format.
func WithDefaultFormat(f models.Format) Option {
	return func(c *internal.Config) {
		c.DefaultFormat = f
	}
}

// CreateDefault builds a validated Config for the given vault path with
// default field values layered with any explicit overrides.
func CreateDefault(vaultPath string, opts ...Option) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	cfg.VaultPath = vaultPath
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
