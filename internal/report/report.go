// Package report assembles a date-ranged view of a student's learning
// history for dashboards and exports.
package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/dailylearn/internal/badges"
	"github.com/abhisek/dailylearn/internal/clock"
	"github.com/abhisek/dailylearn/internal/curriculum"
	"github.com/abhisek/dailylearn/internal/logger"
	"github.com/abhisek/dailylearn/internal/progress"
)

// ErrInvalidRange is returned for malformed or inverted date bounds.
var ErrInvalidRange = errors.New("invalid report range")

const (
	weakMinAttempts = 3
	weakMaxSubjects = 3
)

// Overview totals the in-range records. Streak, TotalPoints and
// NextStreakMilestone are always current, regardless of range.
type Overview struct {
	TotalSessions       int `json:"total_sessions"`
	CompletedSessions   int `json:"completed_sessions"`
	TotalScore          int `json:"total_score"`
	MaxScore            int `json:"max_score"`
	Accuracy            int `json:"accuracy"`
	TotalTimeSeconds    int `json:"total_time_seconds"`
	Streak              int `json:"streak"`
	TotalPoints         int `json:"total_points"`
	NextStreakMilestone int `json:"next_streak_milestone"`
}

// DailyActivity is one day with at least one completed set.
type DailyActivity struct {
	Date     string `json:"date"`
	Sessions int    `json:"sessions"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
	Accuracy int    `json:"accuracy"`
}

// SubjectRow is a subject with its stats, used for ordered listings.
type SubjectRow struct {
	Subject curriculum.Subject `json:"subject"`
	progress.SubjectStat
}

// Report is the full view for one student and range.
type Report struct {
	StudentID     string                                      `json:"student_id"`
	From          string                                      `json:"from,omitempty"`
	To            string                                      `json:"to,omitempty"`
	GeneratedAt   time.Time                                   `json:"generated_at"`
	Overview      Overview                                    `json:"overview"`
	SubjectStats  map[curriculum.Subject]progress.SubjectStat `json:"subject_stats"`
	DailyActivity []DailyActivity                             `json:"daily_activity"`
	Badges        []badges.EarnedBadge                        `json:"badges"`
	WeakSubjects  []SubjectRow                                `json:"weak_subjects"`
}

// Subjects returns SubjectStats ordered by subject display order.
func (r *Report) Subjects() []SubjectRow {
	var rows []SubjectRow
	for _, s := range curriculum.AllSubjects() {
		if st, ok := r.SubjectStats[s]; ok {
			rows = append(rows, SubjectRow{Subject: s, SubjectStat: st})
		}
	}
	return rows
}

// Builder composes reports from progress and badge data.
type Builder struct {
	progress *progress.Repository
	badges   *badges.Service
	clock    clock.Clock
	log      *logger.Logger
}

// NewBuilder returns a report builder.
func NewBuilder(repo *progress.Repository, b *badges.Service, c clock.Clock, log *logger.Logger) *Builder {
	return &Builder{progress: repo, badges: b, clock: c, log: logger.OrNop(log)}
}

// LocalReport builds the report for studentID between from and to
// (YYYY-MM-DD, inclusive; empty for open-ended).
func (b *Builder) LocalReport(ctx context.Context, studentID, from, to string) (*Report, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	recs := b.progress.LearningRecords(ctx, studentID, progress.DateRange{From: from, To: to})
	streak := b.progress.StreakCount(ctx, studentID)

	r := &Report{
		StudentID:   studentID,
		From:        from,
		To:          to,
		GeneratedAt: b.clock.Now(),
		Overview: Overview{
			TotalSessions:       len(recs),
			Streak:              streak,
			TotalPoints:         b.progress.TotalPoints(ctx, studentID),
			NextStreakMilestone: badges.NextStreakMilestone(streak),
		},
		SubjectStats:  b.progress.SubjectStatsForRecords(ctx, recs),
		DailyActivity: []DailyActivity{},
		Badges:        b.badges.Earned(ctx, studentID),
	}

	days := make(map[string]*DailyActivity)
	for _, rec := range recs {
		if !rec.IsCompleted {
			continue
		}
		r.Overview.CompletedSessions++
		r.Overview.TotalScore += rec.TotalScore
		r.Overview.MaxScore += rec.MaxScore
		r.Overview.TotalTimeSeconds += rec.TimeSpentSeconds

		date := b.progress.RecordDate(rec)
		d := days[date]
		if d == nil {
			d = &DailyActivity{Date: date}
			days[date] = d
		}
		d.Sessions++
		d.Score += rec.TotalScore
		d.MaxScore += rec.MaxScore
	}
	r.Overview.Accuracy = progress.Percent(r.Overview.TotalScore, r.Overview.MaxScore)

	for _, d := range days {
		d.Accuracy = progress.Percent(d.Score, d.MaxScore)
		r.DailyActivity = append(r.DailyActivity, *d)
	}
	sort.Slice(r.DailyActivity, func(i, j int) bool { return r.DailyActivity[i].Date < r.DailyActivity[j].Date })

	r.WeakSubjects = weakSubjects(r.SubjectStats)
	if r.Badges == nil {
		r.Badges = []badges.EarnedBadge{}
	}

	b.log.Debug("report built", "student_id", studentID, "records", len(recs), "days", len(r.DailyActivity))
	return r, nil
}

// weakSubjects returns up to three subjects with enough attempts, lowest
// accuracy first. Ties go to the subject name.
func weakSubjects(stats map[curriculum.Subject]progress.SubjectStat) []SubjectRow {
	rows := []SubjectRow{}
	for s, st := range stats {
		if st.Total >= weakMinAttempts {
			rows = append(rows, SubjectRow{Subject: s, SubjectStat: st})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Accuracy != rows[j].Accuracy {
			return rows[i].Accuracy < rows[j].Accuracy
		}
		return rows[i].Subject < rows[j].Subject
	})
	if len(rows) > weakMaxSubjects {
		rows = rows[:weakMaxSubjects]
	}
	return rows
}

func validateRange(from, to string) error {
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(clock.DateLayout, d); err != nil {
			return fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidRange, d)
		}
	}
	if from != "" && to != "" && from > to {
		return fmt.Errorf("%w: from %s is after to %s", ErrInvalidRange, from, to)
	}
	return nil
}
