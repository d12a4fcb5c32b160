package session

import "github.com/abhisek/dailylearn/internal/curriculum"

// SubjectResult tracks per-subject performance within a single attempt.
type SubjectResult struct {
	Subject   curriculum.Subject
	Questions int
	Attempted int
	Correct   int
}

// Summary holds the data shown when an attempt ends.
type Summary struct {
	TotalQuestions int
	Answered       int
	GradedTotal    int
	TotalCorrect   int
	Accuracy       float64
	SubjectResults []SubjectResult
}

// BuildSummary creates a Summary from the current state. Subjects appear in
// set order; reflective subjects are left out.
func BuildSummary(s *State) *Summary {
	sum := &Summary{TotalQuestions: len(s.Set.Questions)}
	index := make(map[curriculum.Subject]int)

	for _, q := range s.Set.Questions {
		a, answered := s.answers[q.ID]
		if answered {
			sum.Answered++
		}
		if !q.Graded() {
			continue
		}
		sum.GradedTotal++

		i, ok := index[q.Subject]
		if !ok {
			i = len(sum.SubjectResults)
			index[q.Subject] = i
			sum.SubjectResults = append(sum.SubjectResults, SubjectResult{Subject: q.Subject})
		}
		sr := &sum.SubjectResults[i]
		sr.Questions++
		if answered {
			sr.Attempted++
			if a.Correct {
				sr.Correct++
				sum.TotalCorrect++
			}
		}
	}

	if sum.GradedTotal > 0 {
		sum.Accuracy = float64(sum.TotalCorrect) / float64(sum.GradedTotal)
	}
	return sum
}
