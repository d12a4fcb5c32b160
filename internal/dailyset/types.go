package dailyset

import (
	"time"

	"github.com/abhisek/dailylearn/internal/curriculum"
)

// QuestionType describes how the learner answers a question.
type QuestionType string

const (
	// TypeMultipleChoice means the learner picks one of Content.Choices.
	TypeMultipleChoice QuestionType = "multiple_choice"

	// TypeShortAnswer means the learner types a short answer.
	TypeShortAnswer QuestionType = "short_answer"

	// TypeFillBlank means the learner fills the ___ in Content.Sentence.
	TypeFillBlank QuestionType = "fill_blank"

	// TypeFreeText is an open response that is never auto-graded.
	TypeFreeText QuestionType = "free_text"

	// TypeEmotionSelect is the reflective mood check.
	TypeEmotionSelect QuestionType = "emotion_select"

	// TypeReadinessScale is the reflective readiness check.
	TypeReadinessScale QuestionType = "readiness_scale"
)

// PointsPerQuestion is the point value of every question in a set.
const PointsPerQuestion = 10

// DailySet is the header of one generated set. Its ID is derived from grade,
// semester and day of year, so a set is immutable once generated for a day.
type DailySet struct {
	ID               string    `json:"id"`
	Grade            int       `json:"grade"`
	Semester         int       `json:"semester"`
	SetNumber        int       `json:"set_number"`
	Title            string    `json:"title"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	TotalQuestions   int       `json:"total_questions"`
	TotalPoints      int       `json:"total_points"`
	IsPublished      bool      `json:"is_published"`
	CreatedAt        time.Time `json:"created_at"`
}

// Question is one normalized item of a daily set.
type Question struct {
	ID           string             `json:"id"`
	DailySetID   string             `json:"daily_set_id"`
	Subject      curriculum.Subject `json:"subject"`
	QuestionType QuestionType       `json:"question_type"`

	// OrderIndex is dense 0..N-1 within the set and defines display order.
	OrderIndex int `json:"order_index"`

	Title       string   `json:"title"`
	Content     Content  `json:"content"`
	Answer      Answer   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
	Points      int      `json:"points"`
	Hint        string   `json:"hint,omitempty"`
	Metadata    Metadata `json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}

// Graded reports whether the question counts toward scores and accuracy.
func (q Question) Graded() bool {
	return !q.Subject.IsReflective()
}

// Content is the subject-specific payload. Which fields are set depends on
// Subject and QuestionType.
type Content struct {
	Prompt string `json:"prompt"`

	// Choices for multiple_choice and fill_blank questions.
	Choices []string `json:"choices,omitempty"`

	// Sentence holds the ___ blank for spelling.
	Sentence string `json:"sentence,omitempty"`

	// Word is the vocabulary headword.
	Word string `json:"word,omitempty"`

	// Situation frames a safety question.
	Situation string `json:"situation,omitempty"`

	// Guide and MinLength shape a writing prompt.
	Guide     string `json:"guide,omitempty"`
	MinLength int    `json:"min_length,omitempty"`

	// Options lists the moods of an emotion check.
	Options []Option `json:"options,omitempty"`

	// Scale bounds a readiness check.
	Scale *Scale `json:"scale,omitempty"`
}

// Option is one selectable mood.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Emoji string `json:"emoji,omitempty"`
}

// Scale is a numeric self-report range.
type Scale struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	MinLabel string `json:"min_label"`
	MaxLabel string `json:"max_label"`
}

// Answer is the expected answer. Value is canonical; Accepted lists other
// spellings that also count as correct. Empty for ungraded questions.
type Answer struct {
	Value    string   `json:"value,omitempty"`
	Accepted []string `json:"accepted,omitempty"`
}

// Metadata records where a question came from.
type Metadata struct {
	// SourceID is the corpus entry or template ID the question was built from.
	SourceID string `json:"source_id,omitempty"`
	Grade    int    `json:"grade"`
	Kind     string `json:"kind,omitempty"`
	Category string `json:"category,omitempty"`

	// FallbackCorpus is set when the entry came from the fallback grade.
	FallbackCorpus bool `json:"fallback_corpus,omitempty"`
}

// DailySetWithQuestions is a set header plus its ordered questions.
type DailySetWithQuestions struct {
	Set       DailySet   `json:"set"`
	Questions []Question `json:"questions"`

	// UsingFallbackCorpus is true when the grade had no corpus of its own and
	// graded content was drawn from curriculum.FallbackGrade.
	UsingFallbackCorpus bool `json:"using_fallback_corpus"`
}

// Question returns the question with id, if present.
func (d *DailySetWithQuestions) Question(id string) (Question, bool) {
	for _, q := range d.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
