// Package noteservice coordinates configuration, note formatting, and vault
// file operations.
package noteservice

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/starford/termilink/internal"
	"github.com/starford/termilink/internal/models"
	"github.com/starford/termilink/internal/storage"
	"github.com/starford/termilink/internal/timefmt"
)

// AppendResult reports where a note landed and what was written.
type AppendResult struct {
	Path      string // vault-relative path
	Formatted string
}

// TodayInfo describes the state of today's daily note.
type TodayInfo struct {
	Path   string // vault-relative path
	Exists bool
}

// Service coordinates storage and note operations for one invocation.
type Service struct {
	store storage.Provider
	cfg   *internal.Config
}

// NewService creates a new note service.
func NewService(store storage.Provider, cfg *internal.Config) *Service {
	return &Service{store: store, cfg: cfg}
}

// DailyNotePath returns the vault-relative path of the daily note for date.
func (s *Service) DailyNotePath(date time.Time) (string, error) {
	name, err := timefmt.Format(s.cfg.DailyNoteFormat, date)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.cfg.DailyNotesPath, name+".md"), nil
}

// Append formats note and appends it to targetFile, or to today's daily
// note when targetFile is empty. A new daily note starts with a dated
// frontmatter block.
func (s *Service) Append(_ context.Context, note *models.Note, targetFile string) (*AppendResult, error) {
	daily := targetFile == ""

	var target string
	if daily {
		var err error
		target, err = s.DailyNotePath(note.Timestamp)
		if err != nil {
			return nil, err
		}
	} else {
		target = ensureMarkdownExt(targetFile)
	}

	formatted, err := note.FormatContent(s.cfg.IncludeTimestamp, s.cfg.TimestampFormat)
	if err != nil {
		return nil, err
	}

	text := formatted
	if daily {
		exists, err := s.store.Exists(target)
		if err != nil {
			return nil, err
		}
		if !exists {
			text = dailyFrontmatter(note.Timestamp) + formatted
		}
	}

	if err := s.store.Append(target, text, s.cfg.AppendNewline); err != nil {
		return nil, err
	}
	return &AppendResult{Path: target, Formatted: formatted}, nil
}

// Create makes a new note file named title (with .md appended), optionally
// under subdir, seeded with a created-timestamp frontmatter block followed
// by the initial content.
func (s *Service) Create(_ context.Context, title, content, subdir string) (string, error) {
	name := ensureMarkdownExt(title)
	target := name
	if subdir != "" {
		target = filepath.Join(subdir, name)
	}

	full := fmt.Sprintf("---\ncreated: %s\n---\n\n%s\n", time.Now().Format(time.RFC3339), content)
	if err := s.store.Create(target, []byte(full)); err != nil {
		return "", err
	}
	return target, nil
}

// Recent returns up to limit vault notes, most recently modified first.
func (s *Service) Recent(_ context.Context, limit int) ([]storage.RecentNote, error) {
	return s.store.ListRecent(limit)
}

// Today reports the path and existence of today's daily note.
func (s *Service) Today(_ context.Context) (*TodayInfo, error) {
	path, err := s.DailyNotePath(time.Now())
	if err != nil {
		return nil, err
	}
	exists, err := s.store.Exists(path)
	if err != nil {
		return nil, err
	}
	return &TodayInfo{Path: path, Exists: exists}, nil
}

func ensureMarkdownExt(name string) string {
	if strings.HasSuffix(name, ".md") {
		return name
	}
	return name + ".md"
}

func dailyFrontmatter(date time.Time) string {
	return fmt.Sprintf("---\ndate: %s\n---\n\n", date.Format("2006-01-02"))
}
