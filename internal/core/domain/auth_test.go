package domain

import (
	"sort"
	"testing"
	"time"
)

func TestParseRefreshTTL(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"30s", 30 * time.Second},
		{"15m", 15 * time.Minute},
		{"12h", 12 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"1d", 24 * time.Hour},
		{"365d", 365 * 24 * time.Hour},
		// Fallbacks
		{"", DefaultRefreshTTL},
		{"7", DefaultRefreshTTL},
		{"d", DefaultRefreshTTL},
		{"7w", DefaultRefreshTTL},
		{"-7d", DefaultRefreshTTL},
		{"7d extra", DefaultRefreshTTL},
		{"sevendays", DefaultRefreshTTL},
		// Values past the unit cap would overflow time.Duration
		{"100001d", DefaultRefreshTTL},
		{"99999999999999999999d", DefaultRefreshTTL},
		{"9223372036854775807s", DefaultRefreshTTL},
	}
	for _, tt := range tests {
		if got := ParseRefreshTTL(tt.input); got != tt.want {
			t.Errorf("ParseRefreshTTL(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if got := ParseRefreshTTL(tt.input); got <= 0 {
			t.Errorf("ParseRefreshTTL(%q) = %v, want a positive duration", tt.input, got)
		}
	}
}

func TestParseTTL_Fallback(t *testing.T) {
	tests := []struct {
		input    string
		fallback time.Duration
		want     time.Duration
	}{
		{"30m", time.Hour, 30 * time.Minute},
		{"1h", 7 * 24 * time.Hour, time.Hour},
		{"", time.Hour, time.Hour},
		{"1 hour", time.Hour, time.Hour},
		{"100000d", time.Hour, 100000 * 24 * time.Hour},
		{"100001d", time.Hour, time.Hour},
	}
	for _, tt := range tests {
		if got := ParseTTL(tt.input, tt.fallback); got != tt.want {
			t.Errorf("ParseTTL(%q, %v) = %v, want %v", tt.input, tt.fallback, got, tt.want)
		}
	}
}

func TestNewSessionID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		sid := NewSessionID()
		if len(sid) != 26 {
			t.Fatalf("expected 26-char ULID, got %q", sid)
		}
		if seen[sid] {
			t.Fatalf("duplicate session id %q", sid)
		}
		seen[sid] = true
	}
}

func TestNewSessionID_Sortable(t *testing.T) {
	ids := make([]string, 100)
	for i := range ids {
		ids[i] = NewSessionID()
	}

	if !sort.StringsAreSorted(ids) {
		t.Error("expected session ids to be lexicographically monotonic")
	}
}
