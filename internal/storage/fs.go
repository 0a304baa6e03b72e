package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/starford/termilink/internal/apperr"
)

// FS implements Provider backed by the local file system.
type FS struct {
	root string // absolute path to vault directory, symlinks resolved
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve root: %w", apperr.ErrVaultPathInvalid, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s does not exist", apperr.ErrVaultPathInvalid, abs)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", apperr.ErrVaultPathInvalid, abs)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve root: %w", apperr.ErrVaultPathInvalid, err)
	}
	return &FS{root: resolved}, nil
}

// Root returns the absolute vault root.
func (f *FS) Root() string {
	return f.root
}

// safePath resolves a relative path against the vault root and rejects
// any result that escapes it, after following symlinks on the nearest
// existing ancestor.
func (f *FS) safePath(rel string) (string, error) {
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("%w: absolute paths not allowed: %s", apperr.ErrPathOutsideVault, rel)
	}
	abs, err := filepath.Abs(filepath.Join(f.root, cleaned))
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	if !f.within(abs) {
		return "", fmt.Errorf("%w: %s", apperr.ErrPathOutsideVault, rel)
	}
	// A symlink inside the vault must not smuggle the write outside it.
	resolved, err := resolveExisting(abs)
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	if !f.within(resolved) {
		return "", fmt.Errorf("%w: %s", apperr.ErrPathOutsideVault, rel)
	}
	return abs, nil
}

func (f *FS) within(abs string) bool {
	return abs == f.root || strings.HasPrefix(abs, f.root+string(os.PathSeparator))
}

// resolveExisting evaluates symlinks on the deepest existing ancestor of
// path and rejoins the non-existing remainder.
func resolveExisting(path string) (string, error) {
	suffix := ""
	cur := path
	for {
		resolved, err := filepath.EvalSymlinks(cur)
		if err == nil {
			return filepath.Join(resolved, suffix), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		suffix = filepath.Join(filepath.Base(cur), suffix)
		parent := filepath.Dir(cur)
		if parent == cur {
			return path, nil
		}
		cur = parent
	}
}

// Append appends text to a vault file: parent directories are created, the
// file is opened in append mode (created if absent), and a separating
// newline precedes the text when appendNewline is set and the file already
// has content. Prior content is never truncated.
func (f *FS) Append(path, text string, appendNewline bool) error {
	abs, err := f.safePath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}
	fh, err := os.OpenFile(abs, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("storage: open %s: %w", path, err)
	}
	defer fh.Close()

	info, err := fh.Stat()
	if err != nil {
		return fmt.Errorf("storage: stat %s: %w", path, err)
	}
	var b strings.Builder
	if appendNewline && info.Size() > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(text)
	b.WriteByte('\n')

	if _, err := fh.WriteString(b.String()); err != nil {
		return fmt.Errorf("storage: append %s: %w", path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("storage: close %s: %w", path, err)
	}
	return nil
}

// Create writes a new vault file with the given content. An existing file
// is left untouched and reported as a conflict.
func (f *FS) Create(path string, content []byte) error {
	abs, err := f.safePath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}
	fh, err := os.OpenFile(abs, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", apperr.ErrAlreadyExists, path)
		}
		return fmt.Errorf("storage: create %s: %w", path, err)
	}
	defer fh.Close()

	if _, err := fh.Write(content); err != nil {
		return fmt.Errorf("storage: write %s: %w", path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("storage: close %s: %w", path, err)
	}
	return nil
}

// Read returns the raw bytes of a vault file.
func (f *FS) Read(path string) ([]byte, error) {
	abs, err := f.safePath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return data, nil
}

// Exists reports whether a vault file exists.
func (f *FS) Exists(path string) (bool, error) {
	abs, err := f.safePath(path)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("storage: stat %s: %w", path, err)
	}
	return true, nil
}

// ListRecent walks the vault and returns up to limit .md files sorted by
// modification time, most recent first. Unreadable subtrees are skipped
// rather than aborting the scan.
func (f *FS) ListRecent(limit int) ([]RecentNote, error) {
	var out []RecentNote
	err := filepath.WalkDir(f.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Permission denied or similar: skip this subtree.
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(f.root, p)
		if err != nil {
			return nil
		}
		out = append(out, RecentNote{Path: rel, ModTime: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: list recent: %w", err)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ModTime.After(out[j].ModTime)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
