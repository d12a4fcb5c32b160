package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/dailylearn/internal/clock"
	"github.com/abhisek/dailylearn/internal/dailyset"
	"github.com/abhisek/dailylearn/internal/logger"
	"github.com/abhisek/dailylearn/internal/store"
)

// Repository reads and writes learning history in the store. Every write is
// a read-modify-write of one collection key; concurrent writers lose updates.
type Repository struct {
	records   *store.Collection[LearningRecord]
	responses *store.Collection[QuestionResponse]
	questions *store.Collection[dailyset.Question]
	users     *store.Collection[Profile]
	clock     clock.Clock
	log       *logger.Logger
}

// NewRepository wires a Repository over kv.
func NewRepository(kv store.KV, c clock.Clock, log *logger.Logger) *Repository {
	log = logger.OrNop(log)
	return &Repository{
		records:   store.NewCollection[LearningRecord](kv, store.KeyLearningRecords, log),
		responses: store.NewCollection[QuestionResponse](kv, store.KeyQuestionResponses, log),
		questions: store.NewCollection[dailyset.Question](kv, store.KeyQuestions, log),
		users:     store.NewCollection[Profile](kv, store.KeyUsers, log),
		clock:     c,
		log:       log,
	}
}

// Clock returns the clock the repository dates records with.
func (r *Repository) Clock() clock.Clock { return r.clock }

func (r *Repository) location() *time.Location {
	return r.clock.Now().Location()
}

// RecordDate is the calendar date of a record in the repository's clock location.
func (r *Repository) RecordDate(rec LearningRecord) string {
	return clock.Date(rec.ActivityTime(), r.location())
}

// CreateLearningRecord starts a new in-progress attempt.
func (r *Repository) CreateLearningRecord(ctx context.Context, studentID, dailySetID string, classID *string) (*LearningRecord, error) {
	now := r.clock.Now()
	rec := LearningRecord{
		ID:         uuid.NewString(),
		StudentID:  studentID,
		DailySetID: dailySetID,
		ClassID:    classID,
		StartedAt:  now,
		CreatedAt:  now,
	}
	if err := r.records.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("create learning record: %w", err)
	}
	r.log.Debug("learning record created", "record_id", rec.ID, "student_id", studentID, "set_id", dailySetID)
	return &rec, nil
}

// CompleteLearningRecord writes the terminal fields of a record. It returns
// (nil, nil) when no record has id, so callers can treat it as a lost session.
func (r *Repository) CompleteLearningRecord(ctx context.Context, id string, in CompleteInput) (*LearningRecord, error) {
	all := r.records.All(ctx)
	idx := -1
	for i := range all {
		if all[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.log.Warn("complete: learning record not found", "record_id", id)
		return nil, nil
	}

	now := r.clock.Now()
	rec := &all[idx]
	rec.CompletedAt = &now
	rec.TotalScore = in.TotalScore
	rec.MaxScore = in.MaxScore
	rec.TimeSpentSeconds = in.TimeSpentSeconds
	rec.IsCompleted = true
	if in.EmotionBefore != nil {
		rec.EmotionBefore = in.EmotionBefore
	}
	if in.EmotionAfter != nil {
		rec.EmotionAfter = in.EmotionAfter
	}
	if in.Readiness != nil {
		rec.Readiness = in.Readiness
	}

	if err := r.records.Replace(ctx, all); err != nil {
		return nil, fmt.Errorf("complete learning record %s: %w", id, err)
	}
	out := *rec
	return &out, nil
}

// SaveQuestionResponses stores a batch of responses, first removing every
// stored response that belongs to a record present in the batch.
func (r *Repository) SaveQuestionResponses(ctx context.Context, responses []QuestionResponse) error {
	if len(responses) == 0 {
		return nil
	}
	replaced := make(map[string]bool)
	for _, resp := range responses {
		replaced[resp.LearningRecordID] = true
	}

	kept := r.responses.Filter(ctx, func(resp QuestionResponse) bool {
		return !replaced[resp.LearningRecordID]
	})

	now := r.clock.Now()
	for _, resp := range responses {
		if resp.ID == "" {
			resp.ID = uuid.NewString()
		}
		if resp.CreatedAt.IsZero() {
			resp.CreatedAt = now
		}
		kept = append(kept, resp)
	}
	if err := r.responses.Replace(ctx, kept); err != nil {
		return fmt.Errorf("save question responses: %w", err)
	}
	return nil
}

// LearningRecord returns the record with id.
func (r *Repository) LearningRecord(ctx context.Context, id string) (*LearningRecord, bool) {
	for _, rec := range r.records.All(ctx) {
		if rec.ID == id {
			return &rec, true
		}
	}
	return nil, false
}

// LearningRecords returns the student's records whose date falls in rng.
func (r *Repository) LearningRecords(ctx context.Context, studentID string, rng DateRange) []LearningRecord {
	return r.records.Filter(ctx, func(rec LearningRecord) bool {
		return rec.StudentID == studentID && rng.Contains(r.RecordDate(rec))
	})
}

// ResponsesForRecords returns responses belonging to any of recordIDs.
func (r *Repository) ResponsesForRecords(ctx context.Context, recordIDs []string) []QuestionResponse {
	ids := make(map[string]bool, len(recordIDs))
	for _, id := range recordIDs {
		ids[id] = true
	}
	return r.responses.Filter(ctx, func(resp QuestionResponse) bool {
		return ids[resp.LearningRecordID]
	})
}

// StudentResponses returns every response given by the student.
func (r *Repository) StudentResponses(ctx context.Context, studentID string) []QuestionResponse {
	recs := r.LearningRecords(ctx, studentID, DateRange{})
	return r.ResponsesForRecords(ctx, recordIDs(recs))
}

func recordIDs(recs []LearningRecord) []string {
	ids := make([]string, len(recs))
	for i, rec := range recs {
		ids[i] = rec.ID
	}
	return ids
}
