// Package models defines the domain types for termiLink.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/starford/termilink/internal/apperr"
	"github.com/starford/termilink/internal/timefmt"
)

// Format is a note line-rendering style.
type Format string

// Supported note formats.
const (
	FormatPlain     Format = "plain"
	FormatTimestamp Format = "timestamp"
	FormatBullet    Format = "bullet"
	FormatTask      Format = "task"
)

// Formats lists all supported format values in declaration order.
func Formats() []Format {
	return []Format{FormatPlain, FormatTimestamp, FormatBullet, FormatTask}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	switch f {
	case FormatPlain, FormatTimestamp, FormatBullet, FormatTask:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", apperr.ErrInvalidFormat, s)
}

// Note represents a single note to be appended to a vault file.
// It is built per invocation and never persisted as an object; only the
// formatted text reaches disk.
type Note struct {
	Content   string
	Format    Format
	Tags      []string
	Timestamp time.Time
}

// NewNote constructs a validated note stamped with the current time.
func NewNote(content string, format Format, tags []string) (*Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.ErrEmptyContent
	}
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	return &Note{
		Content:   content,
		Format:    format,
		Tags:      tags,
		Timestamp: time.Now(),
	}, nil
}

// FormatContent renders the note according to its format. The time segment
// and its separator are omitted entirely when includeTimestamp is false;
// tags render as space-joined #tag tokens and are omitted when empty.
// Content is inserted verbatim, without escaping.
func (n *Note) FormatContent(includeTimestamp bool, timestampFormat string) (string, error) {
	var ts string
	if includeTimestamp && !n.Timestamp.IsZero() {
		var err error
		ts, err = timefmt.Format(timestampFormat, n.Timestamp)
		if err != nil {
			return "", err
		}
	}

	tags := n.renderTags()

	var line string
	switch n.Format {
	case FormatPlain:
		line = joinNonEmpty(" ", ts, n.Content)
	case FormatTimestamp:
		if ts != "" {
			line = fmt.Sprintf("**%s** - %s", ts, n.Content)
		} else {
			line = n.Content
		}
	case FormatBullet:
		line = "- " + joinNonEmpty(" - ", ts, n.Content)
	case FormatTask:
		line = "- [ ] " + joinNonEmpty(" - ", ts, n.Content)
	default:
		return "", fmt.Errorf("%w: %q", apperr.ErrInvalidFormat, n.Format)
	}

	return joinNonEmpty(" ", line, tags), nil
}

func (n *Note) renderTags() string {
	if len(n.Tags) == 0 {
		return ""
	}
	parts := make([]string, 0, len(n.Tags))
	for _, t := range n.Tags {
		t = strings.TrimSpace(strings.TrimPrefix(t, "#"))
		if t == "" {
			continue
		}
		parts = append(parts, "#"+t)
	}
	return strings.Join(parts, " ")
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
