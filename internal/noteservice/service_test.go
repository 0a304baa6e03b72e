package noteservice

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/starford/termilink/internal"
	"github.com/starford/termilink/internal/apperr"
	"github.com/starford/termilink/internal/models"
	"github.com/starford/termilink/internal/storage"
	"github.com/starford/termilink/internal/testutil"
)

func newTestService(t *testing.T) (*Service, *internal.Config, storage.Provider) {
	t.Helper()
	cfg := testutil.TestConfig(t)
	store, err := storage.NewFS(cfg.VaultPath)
	if err != nil {
		t.Fatal(err)
	}
	return NewService(store, cfg), cfg, store
}

func fixedNote(content string, format models.Format, tags ...string) *models.Note {
	return &models.Note{
		Content:   content,
		Format:    format,
		Tags:      tags,
		Timestamp: time.Date(2024, 1, 15, 14, 30, 0, 0, time.Local),
	}
}

func TestDailyNotePath(t *testing.T) {
	svc, _, _ := newTestService(t)
	got, err := svc.DailyNotePath(time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("DailyNotePath: %v", err)
	}
	want := filepath.Join("Daily Notes", "2024-01-15.md")
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestDailyNotePathRoundTrip(t *testing.T) {
	// Formatting a date and parsing the filename back yields the same day.
	svc, _, _ := newTestService(t)
	date := time.Date(2023, 7, 9, 23, 59, 0, 0, time.Local)
	rel, err := svc.DailyNotePath(date)
	if err != nil {
		t.Fatalf("DailyNotePath: %v", err)
	}
	name := strings.TrimSuffix(filepath.Base(rel), ".md")
	parsed, err := time.ParseInLocation("2006-01-02", name, time.Local)
	if err != nil {
		t.Fatalf("parse %q: %v", name, err)
	}
	if parsed.Format("2006-01-02") != date.Format("2006-01-02") {
		t.Errorf("round trip %v -> %q -> %v", date, name, parsed)
	}
}

func TestAppendNewDailyNote(t *testing.T) {
	svc, _, store := newTestService(t)
	note := fixedNote("First note", models.FormatBullet)

	res, err := svc.Append(context.Background(), note, "")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if res.Path != filepath.Join("Daily Notes", "2024-01-15.md") {
		t.Errorf("path = %q", res.Path)
	}
	if res.Formatted != "- 14:30 - First note" {
		t.Errorf("formatted = %q", res.Formatted)
	}

	data, err := store.Read(res.Path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := "---\ndate: 2024-01-15\n---\n\n- 14:30 - First note\n"
	if string(data) != want {
		t.Errorf("content = %q, want %q", data, want)
	}
}

func TestAppendExistingDailyNote(t *testing.T) {
	svc, _, store := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Append(ctx, fixedNote("First", models.FormatBullet), ""); err != nil {
		t.Fatalf("Append first: %v", err)
	}
	res, err := svc.Append(ctx, fixedNote("Second", models.FormatBullet), "")
	if err != nil {
		t.Fatalf("Append second: %v", err)
	}

	data, _ := store.Read(res.Path)
	content := string(data)
	if !strings.Contains(content, "First") || !strings.Contains(content, "Second") {
		t.Errorf("content = %q", content)
	}
	if strings.Count(content, "---\ndate:") != 1 {
		t.Errorf("frontmatter should appear once: %q", content)
	}
	if !strings.HasSuffix(content, "- 14:30 - First\n\n- 14:30 - Second\n") {
		t.Errorf("entries not separated as expected: %q", content)
	}
}

func TestAppendToNamedFile(t *testing.T) {
	svc, cfg, store := newTestService(t)
	cfg.IncludeTimestamp = false

	res, err := svc.Append(context.Background(), fixedNote("hello", models.FormatPlain), "inbox")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if res.Path != "inbox.md" {
		t.Errorf("path = %q", res.Path)
	}
	data, _ := store.Read("inbox.md")
	// Named files get no frontmatter.
	if string(data) != "hello\n" {
		t.Errorf("content = %q", data)
	}
}

func TestAppendTaskWithTag(t *testing.T) {
	svc, _, _ := newTestService(t)
	res, err := svc.Append(context.Background(), fixedNote("task x", models.FormatTask, "work"), "")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if res.Formatted != "- [ ] 14:30 - task x #work" {
		t.Errorf("formatted = %q", res.Formatted)
	}
}

func TestAppendEscapingTargetRejected(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Append(context.Background(), fixedNote("x", models.FormatPlain), "../../etc/passwd")
	if !errors.Is(err, apperr.ErrPathOutsideVault) {
		t.Errorf("err = %v, want ErrPathOutsideVault", err)
	}
}

func TestCreate(t *testing.T) {
	svc, _, store := newTestService(t)
	rel, err := svc.Create(context.Background(), "Proj", "init", "Projects")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rel != filepath.Join("Projects", "Proj.md") {
		t.Errorf("path = %q", rel)
	}
	data, _ := store.Read(rel)
	content := string(data)
	if !strings.HasPrefix(content, "---\ncreated: ") {
		t.Errorf("missing frontmatter: %q", content)
	}
	if !strings.HasSuffix(content, "init\n") {
		t.Errorf("missing initial content: %q", content)
	}
}

func TestCreateExistingFails(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	if _, err := svc.Create(ctx, "Proj", "init", "Projects"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := svc.Create(ctx, "Proj", "other", "Projects")
	if !errors.Is(err, apperr.ErrAlreadyExists) {
		t.Errorf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestRecent(t *testing.T) {
	svc, _, store := newTestService(t)
	ctx := context.Background()
	for _, name := range []string{"one", "two", "three"} {
		if err := store.Append(name+".md", "x", true); err != nil {
			t.Fatal(err)
		}
	}
	notes, err := svc.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(notes) != 2 {
		t.Errorf("len = %d, want 2", len(notes))
	}
}

func TestToday(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	info, err := svc.Today(ctx)
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if info.Exists {
		t.Error("daily note should not exist yet")
	}

	note, err := models.NewNote("hello", models.FormatTimestamp, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Append(ctx, note, ""); err != nil {
		t.Fatalf("Append: %v", err)
	}

	info, err = svc.Today(ctx)
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if !info.Exists {
		t.Error("daily note should exist after append")
	}
}
