// Package session tracks a student's answers to one daily set and turns them
// into the completion payload and response batch the progress store takes.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/abhisek/dailylearn/internal/curriculum"
	"github.com/abhisek/dailylearn/internal/dailyset"
)

var (
	ErrUnknownQuestion  = errors.New("question is not part of this set")
	ErrInvalidReadiness = errors.New("readiness must be a number on the question's scale")
	ErrInvalidEmotion   = errors.New("emotion is not one of the offered options")
)

// AnswerResult is the outcome of one answered question.
type AnswerResult struct {
	QuestionID string
	Subject    curriculum.Subject
	Answer     string
	Correct    bool
	Graded     bool
	Seconds    int
}

// State tracks one attempt at a set.
type State struct {
	// Set is the set being answered.
	Set *dailyset.DailySetWithQuestions

	// RecordID is the learning record this attempt completes.
	RecordID string

	// StartedAt is when the attempt began.
	StartedAt time.Time

	// EmotionBefore is captured from the emotion check, if answered.
	EmotionBefore *string

	// Readiness is captured from the readiness check, if answered.
	Readiness *int

	answers map[string]*AnswerResult
}

// NewState starts tracking answers for set under recordID.
func NewState(set *dailyset.DailySetWithQuestions, recordID string, startedAt time.Time) *State {
	return &State{
		Set:       set,
		RecordID:  recordID,
		StartedAt: startedAt,
		answers:   make(map[string]*AnswerResult),
	}
}

// Answer records the learner's answer to questionID. Answering the same
// question again replaces the earlier answer.
func (s *State) Answer(questionID, answer string, seconds int) (*AnswerResult, error) {
	q, ok := s.Set.Question(questionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	if seconds < 0 {
		seconds = 0
	}

	switch q.QuestionType {
	case dailyset.TypeEmotionSelect:
		mood := normalize(answer)
		if !hasOption(q.Content.Options, mood) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEmotion, answer)
		}
		s.EmotionBefore = &mood
	case dailyset.TypeReadinessScale:
		n, err := strconv.Atoi(normalize(answer))
		if err != nil || q.Content.Scale == nil || n < q.Content.Scale.Min || n > q.Content.Scale.Max {
			return nil, fmt.Errorf("%w: %q", ErrInvalidReadiness, answer)
		}
		s.Readiness = &n
	}

	res := &AnswerResult{
		QuestionID: q.ID,
		Subject:    q.Subject,
		Answer:     answer,
		Correct:    CheckAnswer(answer, q),
		Graded:     q.Graded(),
		Seconds:    seconds,
	}
	s.answers[q.ID] = res
	return res, nil
}

// Answered reports whether questionID has an answer.
func (s *State) Answered(questionID string) bool {
	_, ok := s.answers[questionID]
	return ok
}

func hasOption(opts []dailyset.Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
