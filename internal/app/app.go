// Package app wires the engine's services over one store and exposes the
// operations the CLI (or any other front end) calls.
package app

import (
	"context"
	"fmt"

	"github.com/abhisek/dailylearn/internal/badges"
	"github.com/abhisek/dailylearn/internal/clock"
	"github.com/abhisek/dailylearn/internal/curriculum"
	"github.com/abhisek/dailylearn/internal/dailyset"
	"github.com/abhisek/dailylearn/internal/logger"
	"github.com/abhisek/dailylearn/internal/progress"
	"github.com/abhisek/dailylearn/internal/report"
	"github.com/abhisek/dailylearn/internal/session"
	"github.com/abhisek/dailylearn/internal/store"
)

// Options configures New.
type Options struct {
	Store  store.KV
	Clock  clock.Clock
	Logger *logger.Logger
}

// Engine is the public surface of the daily-learning engine.
type Engine struct {
	Sets     *dailyset.Service
	Progress *progress.Repository
	Badges   *badges.Service
	Reports  *report.Builder

	kv    store.KV
	clock clock.Clock
	log   *logger.Logger
}

// New builds an Engine. Store is required; Clock defaults to the system
// clock in local time.
func New(opts Options) (*Engine, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("app: store is required")
	}
	c := opts.Clock
	if c == nil {
		c = clock.System{}
	}
	log := logger.OrNop(opts.Logger)

	repo := progress.NewRepository(opts.Store, c, log)
	bs := badges.NewService(opts.Store, repo, c, log)
	return &Engine{
		Sets:     dailyset.NewService(opts.Store, c, log),
		Progress: repo,
		Badges:   bs,
		Reports:  report.NewBuilder(repo, bs, c, log),
		kv:       opts.Store,
		clock:    c,
		log:      log,
	}, nil
}

// Clock returns the engine's clock.
func (e *Engine) Clock() clock.Clock { return e.clock }

// GenerateDailySet returns today's set for grade and semester.
func (e *Engine) GenerateDailySet(ctx context.Context, grade, semester int) (*dailyset.DailySetWithQuestions, error) {
	return e.Sets.TodaySet(ctx, grade, semester)
}

// Attempt is a started session: the set, its learning record and the
// answer tracker.
type Attempt struct {
	Set    *dailyset.DailySetWithQuestions
	Record *progress.LearningRecord
	State  *session.State
}

// StartInput identifies who is starting which set.
type StartInput struct {
	StudentID string
	Name      string
	Grade     int
	Semester  int
	ClassID   *string
}

// StartSession fetches today's set, records the student's profile and
// creates an in-progress learning record.
func (e *Engine) StartSession(ctx context.Context, in StartInput) (*Attempt, error) {
	set, err := e.GenerateDailySet(ctx, in.Grade, in.Semester)
	if err != nil {
		return nil, err
	}
	if _, err := e.Progress.UpsertProfile(ctx, progress.Profile{
		ID:       in.StudentID,
		Name:     in.Name,
		Role:     progress.RoleStudent,
		Grade:    in.Grade,
		Semester: in.Semester,
	}); err != nil {
		return nil, err
	}
	rec, err := e.Progress.CreateLearningRecord(ctx, in.StudentID, set.Set.ID, in.ClassID)
	if err != nil {
		return nil, err
	}
	e.log.Info("session started", "student_id", in.StudentID, "set_id", set.Set.ID, "record_id", rec.ID)
	return &Attempt{Set: set, Record: rec, State: session.NewState(set, rec.ID, rec.StartedAt)}, nil
}

// ResumeSession rebuilds the attempt for an existing in-progress record.
func (e *Engine) ResumeSession(ctx context.Context, recordID string) (*Attempt, error) {
	rec, ok := e.Progress.LearningRecord(ctx, recordID)
	if !ok {
		return nil, fmt.Errorf("learning record %s not found", recordID)
	}
	set, ok := e.Sets.Lookup(ctx, rec.DailySetID)
	if !ok {
		return nil, fmt.Errorf("daily set %s is not cached", rec.DailySetID)
	}
	return &Attempt{Set: set, Record: rec, State: session.NewState(set, rec.ID, rec.StartedAt)}, nil
}

// Completion is the outcome of CompleteSession.
type Completion struct {
	Record    *progress.LearningRecord
	Summary   *session.Summary
	NewBadges []badges.Badge
	Profile   *progress.Profile
}

// CompleteSession scores the attempt, completes the learning record, stores
// the responses, refreshes the profile cache and awards badges. It returns
// (nil, nil) when the record no longer exists.
func (e *Engine) CompleteSession(ctx context.Context, st *session.State, emotionAfter *string) (*Completion, error) {
	res := st.Finish(emotionAfter)

	rec, err := e.Progress.CompleteLearningRecord(ctx, st.RecordID, res.Complete)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		e.log.Warn("session lost, nothing to complete", "record_id", st.RecordID)
		return nil, nil
	}

	if err := e.Progress.SaveQuestionResponses(ctx, res.Responses); err != nil {
		return nil, err
	}
	profile, err := e.Progress.SyncProfile(ctx, rec.StudentID)
	if err != nil {
		return nil, err
	}
	earned, err := e.Badges.CheckAndAward(ctx, rec.StudentID, &badges.SessionResult{
		TotalScore: rec.TotalScore,
		MaxScore:   rec.MaxScore,
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("session completed",
		"student_id", rec.StudentID, "record_id", rec.ID,
		"score", rec.TotalScore, "max", rec.MaxScore, "new_badges", len(earned))
	return &Completion{Record: rec, Summary: res.Summary, NewBadges: earned, Profile: profile}, nil
}

// CreateLearningRecord starts a learning record without fetching a set.
func (e *Engine) CreateLearningRecord(ctx context.Context, studentID, dailySetID string, classID *string) (*progress.LearningRecord, error) {
	return e.Progress.CreateLearningRecord(ctx, studentID, dailySetID, classID)
}

// CompleteLearningRecord completes a record with caller-computed scores.
func (e *Engine) CompleteLearningRecord(ctx context.Context, recordID string, in progress.CompleteInput) (*progress.LearningRecord, error) {
	return e.Progress.CompleteLearningRecord(ctx, recordID, in)
}

// SaveQuestionResponses replaces the responses of every record in the batch.
func (e *Engine) SaveQuestionResponses(ctx context.Context, responses []progress.QuestionResponse) error {
	return e.Progress.SaveQuestionResponses(ctx, responses)
}

// LearningRecords lists a student's records in range.
func (e *Engine) LearningRecords(ctx context.Context, studentID string, r progress.DateRange) []progress.LearningRecord {
	return e.Progress.LearningRecords(ctx, studentID, r)
}

// StreakCount returns the student's current streak.
func (e *Engine) StreakCount(ctx context.Context, studentID string) int {
	return e.Progress.StreakCount(ctx, studentID)
}

// TotalPoints returns the student's cumulative points.
func (e *Engine) TotalPoints(ctx context.Context, studentID string) int {
	return e.Progress.TotalPoints(ctx, studentID)
}

// SubjectStats returns per-subject accuracy and timing.
func (e *Engine) SubjectStats(ctx context.Context, studentID string) map[curriculum.Subject]progress.SubjectStat {
	return e.Progress.SubjectStats(ctx, studentID)
}

// CheckAndAwardBadges evaluates the badge catalog for the student.
func (e *Engine) CheckAndAwardBadges(ctx context.Context, studentID string, session *badges.SessionResult) ([]badges.Badge, error) {
	return e.Badges.CheckAndAward(ctx, studentID, session)
}

// LocalReport builds the report for a date range.
func (e *Engine) LocalReport(ctx context.Context, studentID, from, to string) (*report.Report, error) {
	return e.Reports.LocalReport(ctx, studentID, from, to)
}

// EarnedBadges lists the student's badges.
func (e *Engine) EarnedBadges(ctx context.Context, studentID string) []badges.EarnedBadge {
	return e.Badges.Earned(ctx, studentID)
}

// CompletedDates lists the distinct days the student completed a set.
func (e *Engine) CompletedDates(ctx context.Context, studentID string) []string {
	return e.Progress.CompletedDates(ctx, studentID)
}

// Reset removes every collection from the store.
func (e *Engine) Reset(ctx context.Context) error {
	for _, key := range store.AllKeys() {
		if err := e.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	e.log.Info("store reset")
	return nil
}
