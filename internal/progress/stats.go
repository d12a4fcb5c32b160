package progress

import (
	"context"
	"math"

	"github.com/abhisek/dailylearn/internal/curriculum"
)

// SubjectStats aggregates every graded response of the student by subject.
// Reflective subjects are excluded and subjects without responses are absent.
func (r *Repository) SubjectStats(ctx context.Context, studentID string) map[curriculum.Subject]SubjectStat {
	return r.SubjectStatsForRecords(ctx, r.LearningRecords(ctx, studentID, DateRange{}))
}

// SubjectStatsForRecords aggregates the responses of recs.
func (r *Repository) SubjectStatsForRecords(ctx context.Context, recs []LearningRecord) map[curriculum.Subject]SubjectStat {
	responses := r.ResponsesForRecords(ctx, recordIDs(recs))

	subjects := make(map[string]curriculum.Subject)
	for _, q := range r.questions.All(ctx) {
		subjects[q.ID] = q.Subject
	}
	return aggregate(responses, subjects)
}

type tally struct {
	correct, total, seconds int
}

func aggregate(responses []QuestionResponse, subjects map[string]curriculum.Subject) map[curriculum.Subject]SubjectStat {
	tallies := make(map[curriculum.Subject]*tally)
	for _, resp := range responses {
		subject, ok := subjects[resp.QuestionID]
		if !ok || subject.IsReflective() {
			continue
		}
		t := tallies[subject]
		if t == nil {
			t = &tally{}
			tallies[subject] = t
		}
		t.total++
		t.seconds += resp.TimeSpentSeconds
		if resp.IsCorrect {
			t.correct++
		}
	}

	out := make(map[curriculum.Subject]SubjectStat, len(tallies))
	for subject, t := range tallies {
		out[subject] = SubjectStat{
			Correct:  t.correct,
			Total:    t.total,
			Accuracy: Percent(t.correct, t.total),
			AvgTime:  int(math.Round(float64(t.seconds) / float64(t.total))),
		}
	}
	return out
}

// Percent returns round(part/whole*100), or 0 when whole is 0.
func Percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
