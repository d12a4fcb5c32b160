package badges

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/dailylearn/internal/clock"
	"github.com/abhisek/dailylearn/internal/logger"
	"github.com/abhisek/dailylearn/internal/progress"
	"github.com/abhisek/dailylearn/internal/store"
)

// StudentBadge records that a student earned a badge. There is at most one
// per (StudentID, BadgeID).
type StudentBadge struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	BadgeID   string    `json:"badge_id"`
	EarnedAt  time.Time `json:"earned_at"`
}

// EarnedBadge is a catalog badge with the time it was earned.
type EarnedBadge struct {
	Badge
	EarnedAt time.Time `json:"earned_at"`
}

// SessionResult is the score of a just-completed set.
type SessionResult struct {
	TotalScore int
	MaxScore   int
}

// Perfect reports whether every graded point was earned.
func (s SessionResult) Perfect() bool {
	return s.MaxScore > 0 && s.TotalScore == s.MaxScore
}

// Service evaluates the catalog against a student's history.
type Service struct {
	progress *progress.Repository
	awards   *store.Collection[StudentBadge]
	clock    clock.Clock
	log      *logger.Logger
}

// NewService wires a Service over kv and the progress repository.
func NewService(kv store.KV, repo *progress.Repository, c clock.Clock, log *logger.Logger) *Service {
	log = logger.OrNop(log)
	return &Service{
		progress: repo,
		awards:   store.NewCollection[StudentBadge](kv, store.KeyStudentBadges, log),
		clock:    c,
		log:      log,
	}
}

// CheckAndAward awards every catalog badge the student has newly satisfied
// and returns them in catalog order. Badges already earned are skipped
// without evaluation. session, when non-nil, is the set just completed.
func (s *Service) CheckAndAward(ctx context.Context, studentID string, session *SessionResult) ([]Badge, error) {
	earned := make(map[string]bool)
	for _, sb := range s.studentAwards(ctx, studentID) {
		earned[sb.BadgeID] = true
	}

	now := s.clock.Now()
	f := &facts{
		streak:  s.progress.StreakCount(ctx, studentID),
		points:  s.progress.TotalPoints(ctx, studentID),
		stats:   s.progress.SubjectStats(ctx, studentID),
		session: session,
		loc:     now.Location(),
	}
	for _, rec := range s.progress.LearningRecords(ctx, studentID, progress.DateRange{}) {
		if rec.IsCompleted {
			f.completed = append(f.completed, rec)
		}
	}

	var (
		newly []Badge
		rows  []StudentBadge
	)
	for _, b := range catalog {
		if earned[b.ID] {
			continue
		}
		if !rules[b.ConditionType](f, b) {
			continue
		}
		newly = append(newly, b)
		rows = append(rows, StudentBadge{
			ID:        uuid.NewString(),
			StudentID: studentID,
			BadgeID:   b.ID,
			EarnedAt:  now,
		})
	}
	if len(rows) == 0 {
		return nil, nil
	}

	if err := s.awards.Append(ctx, rows...); err != nil {
		return nil, fmt.Errorf("award badges: %w", err)
	}
	for _, b := range newly {
		s.log.Info("badge earned", "student_id", studentID, "badge", b.ID, "rarity", string(b.Rarity))
	}
	return newly, nil
}

// Earned returns the student's badges, oldest first.
func (s *Service) Earned(ctx context.Context, studentID string) []EarnedBadge {
	var out []EarnedBadge
	for _, sb := range s.studentAwards(ctx, studentID) {
		b, ok := ByID(sb.BadgeID)
		if !ok {
			s.log.Warn("earned badge not in catalog", "badge", sb.BadgeID)
			continue
		}
		out = append(out, EarnedBadge{Badge: b, EarnedAt: sb.EarnedAt})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EarnedAt.Before(out[j].EarnedAt) })
	return out
}

func (s *Service) studentAwards(ctx context.Context, studentID string) []StudentBadge {
	return s.awards.Filter(ctx, func(sb StudentBadge) bool { return sb.StudentID == studentID })
}
