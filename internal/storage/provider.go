// Package storage defines the vault file-system abstraction.
package storage

import "time"

// RecentNote is a vault file with its last modification time.
type RecentNote struct {
	Path    string // relative to vault root
	ModTime time.Time
}

// Provider is the interface for vault file operations. All paths are
// relative to the vault root.
type Provider interface {
	// Append appends text to the file at path, creating it (and parent
	// directories) if absent. A separating newline is written first when
	// appendNewline is set and the file is non-empty.
	Append(path, text string, appendNewline bool) error
	// Create writes a new file; it fails if the file already exists.
	Create(path string, content []byte) error
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Exists reports whether a file exists at path.
	Exists(path string) (bool, error)
	// ListRecent returns up to limit .md files sorted by modification
	// time, most recent first.
	ListRecent(limit int) ([]RecentNote, error)
}
