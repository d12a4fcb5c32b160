// Package progress owns a student's learning history: learning records,
// question responses and the derived streak, points and subject stats.
package progress

import "time"

// LearningRecord is one attempt at a daily set. It is created in progress
// and moved to its terminal state by CompleteLearningRecord. Records are
// never deleted.
type LearningRecord struct {
	ID               string     `json:"id"`
	StudentID        string     `json:"student_id"`
	DailySetID       string     `json:"daily_set_id"`
	ClassID          *string    `json:"class_id,omitempty"`
	StartedAt        time.Time  `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	TotalScore       int        `json:"total_score"`
	MaxScore         int        `json:"max_score"`
	TimeSpentSeconds int        `json:"time_spent_seconds"`
	IsCompleted      bool       `json:"is_completed"`
	EmotionBefore    *string    `json:"emotion_before,omitempty"`
	EmotionAfter     *string    `json:"emotion_after,omitempty"`
	Readiness        *int       `json:"readiness,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ActivityTime is the instant a record is dated by: completion when set,
// creation otherwise.
func (r LearningRecord) ActivityTime() time.Time {
	if r.CompletedAt != nil {
		return *r.CompletedAt
	}
	return r.CreatedAt
}

// QuestionResponse is the student's answer to one question of a set.
type QuestionResponse struct {
	ID               string    `json:"id"`
	LearningRecordID string    `json:"learning_record_id"`
	QuestionID       string    `json:"question_id"`
	StudentAnswer    string    `json:"student_answer"`
	IsCorrect        bool      `json:"is_correct"`
	TimeSpentSeconds int       `json:"time_spent_seconds"`
	CreatedAt        time.Time `json:"created_at"`
}

// CompleteInput carries the terminal fields written on completion.
type CompleteInput struct {
	TotalScore       int
	MaxScore         int
	TimeSpentSeconds int
	EmotionBefore    *string
	EmotionAfter     *string
	Readiness        *int
}

// DateRange bounds a query by calendar date, inclusive. Empty bounds are open.
type DateRange struct {
	From string
	To   string
}

// Contains reports whether date (YYYY-MM-DD) is within the range.
func (r DateRange) Contains(date string) bool {
	if r.From != "" && date < r.From {
		return false
	}
	if r.To != "" && date > r.To {
		return false
	}
	return true
}

// SubjectStat aggregates graded responses for one subject.
type SubjectStat struct {
	Correct  int `json:"correct"`
	Total    int `json:"total"`
	Accuracy int `json:"accuracy"`
	AvgTime  int `json:"avg_time"`
}
