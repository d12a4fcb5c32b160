package clock

import (
	"testing"
	"time"
)

func TestFixed(t *testing.T) {
	at := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	c := Fixed(at)
	if !c.Now().Equal(at) {
		t.Errorf("Now() = %v, want %v", c.Now(), at)
	}
	if Today(c) != "2026-10-14" {
		t.Errorf("Today() = %q, want 2026-10-14", Today(c))
	}
}

func TestDate_Location(t *testing.T) {
	seoul := time.FixedZone("KST", 9*3600)
	at := time.Date(2026, 10, 14, 20, 0, 0, 0, time.UTC)
	if got := Date(at, seoul); got != "2026-10-15" {
		t.Errorf("Date in KST = %q, want 2026-10-15", got)
	}
	if got := Date(at, nil); got != "2026-10-14" {
		t.Errorf("Date without location = %q, want 2026-10-14", got)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
		ok   bool
	}{
		{"2026-10-13", "2026-10-14", 1, true},
		{"2026-10-14", "2026-10-14", 0, true},
		{"2026-02-28", "2026-03-01", 1, true},
		{"2025-12-31", "2026-01-01", 1, true},
		{"2026-10-14", "2026-10-11", -3, true},
		{"bad", "2026-10-14", 0, false},
	}
	for _, tt := range tests {
		got, ok := DaysBetween(tt.a, tt.b)
		if ok != tt.ok || got != tt.want {
			t.Errorf("DaysBetween(%q, %q) = %d, %v; want %d, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}
