package models

import (
	"errors"
	"testing"
	"time"

	"github.com/starford/termilink/internal/apperr"
)

func fixedNote(format Format, tags ...string) *Note {
	return &Note{
		Content:   "Test note",
		Format:    format,
		Tags:      tags,
		Timestamp: time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC),
	}
}

func TestFormatContent_Plain(t *testing.T) {
	got, err := fixedNote(FormatPlain).FormatContent(true, "%H:%M")
	if err != nil {
		t.Fatalf("FormatContent: %v", err)
	}
	if got != "14:30 Test note" {
		t.Errorf("got %q", got)
	}
}

func TestFormatContent_Timestamp(t *testing.T) {
	got, err := fixedNote(FormatTimestamp).FormatContent(true, "%H:%M")
	if err != nil {
		t.Fatalf("FormatContent: %v", err)
	}
	if got != "**14:30** - Test note" {
		t.Errorf("got %q", got)
	}
}

func TestFormatContent_Bullet(t *testing.T) {
	got, err := fixedNote(FormatBullet).FormatContent(true, "%H:%M")
	if err != nil {
		t.Fatalf("FormatContent: %v", err)
	}
	if got != "- 14:30 - Test note" {
		t.Errorf("got %q", got)
	}
}

func TestFormatContent_Task(t *testing.T) {
	got, err := fixedNote(FormatTask).FormatContent(true, "%H:%M")
	if err != nil {
		t.Fatalf("FormatContent: %v", err)
	}
	if got != "- [ ] 14:30 - Test note" {
		t.Errorf("got %q", got)
	}
}

func TestFormatContent_WithTags(t *testing.T) {
	cases := []struct {
		format Format
		want   string
	}{
		{FormatPlain, "14:30 Test note #important #work"},
		{FormatTimestamp, "**14:30** - Test note #important #work"},
		{FormatBullet, "- 14:30 - Test note #important #work"},
		{FormatTask, "- [ ] 14:30 - Test note #important #work"},
	}
	for _, tc := range cases {
		got, err := fixedNote(tc.format, "important", "work").FormatContent(true, "%H:%M")
		if err != nil {
			t.Fatalf("%s: %v", tc.format, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.format, got, tc.want)
		}
	}
}

func TestFormatContent_WithoutTimestamp(t *testing.T) {
	cases := []struct {
		format Format
		want   string
	}{
		{FormatPlain, "Test note"},
		{FormatTimestamp, "Test note"},
		{FormatBullet, "- Test note"},
		{FormatTask, "- [ ] Test note"},
	}
	for _, tc := range cases {
		got, err := fixedNote(tc.format).FormatContent(false, "%H:%M")
		if err != nil {
			t.Fatalf("%s: %v", tc.format, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.format, got, tc.want)
		}
	}
}

func TestFormatContent_TagsNormalised(t *testing.T) {
	n := fixedNote(FormatPlain, "#already", " spaced ", "")
	got, err := n.FormatContent(false, "%H:%M")
	if err != nil {
		t.Fatalf("FormatContent: %v", err)
	}
	if got != "Test note #already #spaced" {
		t.Errorf("got %q", got)
	}
}

func TestFormatContent_UnknownFormat(t *testing.T) {
	n := fixedNote(Format("fancy"))
	if _, err := n.FormatContent(true, "%H:%M"); !errors.Is(err, apperr.ErrInvalidFormat) {
		t.Errorf("err = %v, want ErrInvalidFormat", err)
	}
}

func TestNewNote_EmptyContent(t *testing.T) {
	if _, err := NewNote("   ", FormatPlain, nil); !errors.Is(err, apperr.ErrEmptyContent) {
		t.Errorf("err = %v, want ErrEmptyContent", err)
	}
}

func TestNewNote_StampsCurrentTime(t *testing.T) {
	before := time.Now()
	n, err := NewNote("hello", FormatTimestamp, nil)
	if err != nil {
		t.Fatalf("NewNote: %v", err)
	}
	if n.Timestamp.Before(before) || n.Timestamp.After(time.Now()) {
		t.Errorf("timestamp %v outside call window", n.Timestamp)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(string(f))
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", f, err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %q", f, got)
		}
	}
	if _, err := ParseFormat("markdown"); !errors.Is(err, apperr.ErrInvalidFormat) {
		t.Errorf("err = %v, want ErrInvalidFormat", err)
	}
}
