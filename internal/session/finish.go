package session

import (
	"github.com/abhisek/dailylearn/internal/progress"
)

// Result is everything needed to complete the learning record.
type Result struct {
	Complete  progress.CompleteInput
	Responses []progress.QuestionResponse
	Summary   *Summary
}

// Finish scores the attempt. MaxScore counts every graded question in the
// set, answered or not; TotalScore counts correctly answered ones.
// Reflective answers are kept as responses but never scored.
func (s *State) Finish(emotionAfter *string) *Result {
	res := &Result{
		Complete: progress.CompleteInput{
			EmotionBefore: s.EmotionBefore,
			EmotionAfter:  emotionAfter,
			Readiness:     s.Readiness,
		},
	}

	for _, q := range s.Set.Questions {
		if q.Graded() {
			res.Complete.MaxScore += q.Points
		}
		a, ok := s.answers[q.ID]
		if !ok {
			continue
		}
		if a.Graded && a.Correct {
			res.Complete.TotalScore += q.Points
		}
		res.Complete.TimeSpentSeconds += a.Seconds
		res.Responses = append(res.Responses, progress.QuestionResponse{
			LearningRecordID: s.RecordID,
			QuestionID:       q.ID,
			StudentAnswer:    a.Answer,
			IsCorrect:        a.Graded && a.Correct,
			TimeSpentSeconds: a.Seconds,
		})
	}

	res.Summary = BuildSummary(s)
	return res
}
