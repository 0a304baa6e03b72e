// Package timefmt formats times with strftime-style patterns.
package timefmt

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

// Format renders t according to a strftime pattern such as "%Y-%m-%d".
func Format(pattern string, t time.Time) (string, error) {
	out, err := strftime.Format(pattern, t)
	if err != nil {
		return "", fmt.Errorf("timefmt: format %q: %w", pattern, err)
	}
	return out, nil
}

// Validate reports whether pattern is a usable strftime pattern.
func Validate(pattern string) error {
	if _, err := strftime.New(pattern); err != nil {
		return fmt.Errorf("timefmt: invalid pattern %q: %w", pattern, err)
	}
	return nil
}
