package progress

import (
	"context"
	"sort"

	"github.com/abhisek/dailylearn/internal/clock"
)

// CompletedDates returns the distinct calendar dates on which the student
// completed a set, ascending.
func (r *Repository) CompletedDates(ctx context.Context, studentID string) []string {
	seen := make(map[string]bool)
	var dates []string
	for _, rec := range r.LearningRecords(ctx, studentID, DateRange{}) {
		if !rec.IsCompleted {
			continue
		}
		d := r.RecordDate(rec)
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	return dates
}

// StreakCount returns the number of consecutive days with a completion,
// anchored at today or yesterday. Any gap ends the streak.
func (r *Repository) StreakCount(ctx context.Context, studentID string) int {
	return streakFrom(r.CompletedDates(ctx, studentID), clock.Today(r.clock))
}

// streakFrom computes the streak over ascending distinct dates as of today.
func streakFrom(dates []string, today string) int {
	if len(dates) == 0 {
		return 0
	}
	newest := dates[len(dates)-1]
	gap, ok := clock.DaysBetween(newest, today)
	if !ok || gap < 0 || gap > 1 {
		return 0
	}

	streak := 1
	for i := len(dates) - 1; i > 0; i-- {
		d, ok := clock.DaysBetween(dates[i-1], dates[i])
		if !ok || d != 1 {
			break
		}
		streak++
	}
	return streak
}

// TotalPoints sums the score of every completed record.
func (r *Repository) TotalPoints(ctx context.Context, studentID string) int {
	total := 0
	for _, rec := range r.LearningRecords(ctx, studentID, DateRange{}) {
		if rec.IsCompleted {
			total += rec.TotalScore
		}
	}
	return total
}
