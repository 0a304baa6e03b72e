package timefmt

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	cases := []struct {
		pattern string
		want    string
	}{
		{"%Y-%m-%d", "2024-01-15"},
		{"%H:%M", "14:30"},
		{"%d.%m.%Y", "15.01.2024"},
	}
	for _, tc := range cases {
		got, err := Format(tc.pattern, ts)
		if err != nil {
			t.Fatalf("Format(%q): %v", tc.pattern, err)
		}
		if got != tc.want {
			t.Errorf("Format(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("%Y-%m-%d"); err != nil {
		t.Errorf("valid pattern rejected: %v", err)
	}
	if err := Validate("%Q"); err == nil {
		t.Error("expected error for unknown directive")
	}
}
