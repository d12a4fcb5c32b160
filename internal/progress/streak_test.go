package progress

import (
	"context"
	"testing"
)

func TestStreakCount(t *testing.T) {
	// testNow is 2026-10-16.
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"no history", nil, 0},
		{"today yesterday and day before", []string{"2026-10-14", "2026-10-15", "2026-10-16"}, 3},
		{"gap at today and yesterday", []string{"2026-10-13", "2026-10-14"}, 0},
		{"gap at yesterday", []string{"2026-10-14", "2026-10-16"}, 1},
		{"anchored at yesterday", []string{"2026-10-13", "2026-10-14", "2026-10-15"}, 3},
		{"gap earlier", []string{"2026-10-10", "2026-10-15", "2026-10-16"}, 2},
		{"month boundary", []string{"2026-09-29", "2026-09-30", "2026-10-01"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, kv := newTestRepo(t)
			var recs []LearningRecord
			for i, d := range tt.dates {
				recs = append(recs, completedOn(string(rune('a'+i)), "stu-1", d, 10, 10))
			}
			seedRecords(t, kv, recs...)

			if got := repo.StreakCount(context.Background(), "stu-1"); got != tt.want {
				t.Errorf("StreakCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStreakFrom_MonthAndYearBoundaries(t *testing.T) {
	tests := []struct {
		dates []string
		today string
		want  int
	}{
		{[]string{"2026-09-30", "2026-10-01"}, "2026-10-01", 2},
		{[]string{"2025-12-31", "2026-01-01"}, "2026-01-02", 2},
		{[]string{"2028-02-28", "2028-02-29", "2028-03-01"}, "2028-03-01", 3},
		{[]string{"2026-10-17"}, "2026-10-16", 0},
	}
	for _, tt := range tests {
		if got := streakFrom(tt.dates, tt.today); got != tt.want {
			t.Errorf("streakFrom(%v, %s) = %d, want %d", tt.dates, tt.today, got, tt.want)
		}
	}
}

func TestCompletedDates_DistinctAndCompletedOnly(t *testing.T) {
	repo, kv := newTestRepo(t)
	open := completedOn("x", "stu-1", "2026-10-12", 0, 0)
	open.IsCompleted = false
	open.CompletedAt = nil
	seedRecords(t, kv,
		completedOn("a", "stu-1", "2026-10-15", 10, 10),
		completedOn("b", "stu-1", "2026-10-14", 10, 10),
		completedOn("c", "stu-1", "2026-10-15", 10, 10),
		open,
	)

	got := repo.CompletedDates(context.Background(), "stu-1")
	want := []string{"2026-10-14", "2026-10-15"}
	if len(got) != len(want) {
		t.Fatalf("CompletedDates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CompletedDates[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTotalPoints_CompletedOnly(t *testing.T) {
	repo, kv := newTestRepo(t)
	open := LearningRecord{ID: "open", StudentID: "stu-1", TotalScore: 500}
	seedRecords(t, kv,
		completedOn("a", "stu-1", "2026-10-15", 80, 100),
		completedOn("b", "stu-1", "2026-10-16", 100, 100),
		completedOn("c", "stu-2", "2026-10-16", 70, 100),
		open,
	)

	if got := repo.TotalPoints(context.Background(), "stu-1"); got != 180 {
		t.Errorf("TotalPoints = %d, want 180", got)
	}
}
