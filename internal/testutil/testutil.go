// Package testutil provides shared test helpers for setting up vaults and
// configurations.
package testutil

import (
	"testing"

	"github.com/starford/termilink/internal"
	"github.com/starford/termilink/internal/storage"
)

// TestVault creates a temporary vault directory with a storage.Provider.
func TestVault(t *testing.T) (string, storage.Provider) {
	t.Helper()
	vaultDir := t.TempDir()
	store, err := storage.NewFS(vaultDir)
	if err != nil {
		t.Fatal(err)
	}
	return vaultDir, store
}

// TestConfig returns a validated default configuration rooted at a
// temporary vault directory.
func TestConfig(t *testing.T) *internal.Config {
	t.Helper()
	cfg := internal.NewDefaultConfig()
	cfg.VaultPath = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return cfg
}
