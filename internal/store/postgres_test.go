// AngelaMos | 2026
// postgres_test.go

package store

import (
	"testing"
	"time"
)

func TestParseTimeLayouts(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-01T10:30:00Z", time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"2026-03-01T10:30:00.5Z", time.Date(2026, 3, 1, 10, 30, 0, 500000000, time.UTC)},
		{"2026-03-01 10:30:00", time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"2026-03-01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got := parseTime(tt.in)
		if !got.Equal(tt.want) {
			t.Errorf("parseTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseTimeMalformedDegradesToZero(t *testing.T) {
	for _, in := range []string{"", "yesterday", "03/01/2026", "1772534400"} {
		if got := parseTime(in); !got.IsZero() {
			t.Errorf("parseTime(%q) = %v, want zero time", in, got)
		}
	}
}
