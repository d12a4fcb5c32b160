// Package dailyset builds the deterministic daily question set for a grade
// and semester, and caches generated sets in the store.
package dailyset

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/dailylearn/internal/curriculum"
	"github.com/abhisek/dailylearn/internal/logger"
)

var (
	ErrInvalidGrade    = errors.New("grade must be between 1 and 6")
	ErrInvalidSemester = errors.New("semester must be 1 or 2")
)

// SetID is the stable identity of the set for grade, semester and day of year.
func SetID(grade, semester, dayOfYear int) string {
	return fmt.Sprintf("set-g%d-s%d-d%03d", grade, semester, dayOfYear)
}

// Seed derives the PRNG seed for one generation call.
func Seed(dayOfYear, grade, semester int) int64 {
	return int64(dayOfYear)*1000 + int64(grade)*100 + int64(semester)
}

// Generator turns (day, grade, semester) into a set. It holds no state
// between calls; identical inputs always produce identical output.
type Generator struct {
	log *logger.Logger
}

// NewGenerator returns a generator that logs through log (nil for none).
func NewGenerator(log *logger.Logger) *Generator {
	return &Generator{log: logger.OrNop(log)}
}

// Generate builds the set for the calendar day of day, in day's location.
func (g *Generator) Generate(day time.Time, grade, semester int) (*DailySetWithQuestions, error) {
	if grade < 1 || grade > 6 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGrade, grade)
	}
	if semester != 1 && semester != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSemester, semester)
	}
	sections, err := curriculum.Composition(grade, semester)
	if err != nil {
		return nil, err
	}

	dayOfYear := day.YearDay()
	rng := SeededRandom(Seed(dayOfYear, grade, semester))

	corpus, fallback := curriculum.ForGrade(grade)
	if fallback {
		g.log.Warn("no corpus for grade, using fallback corpus",
			"grade", grade, "fallback_grade", curriculum.FallbackGrade)
	}
	bc := newBuildContext(corpus, rng, grade, fallback)

	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	setID := SetID(grade, semester, dayOfYear)

	total := curriculum.TotalCount(sections)
	questions := make([]Question, 0, total)
	minutes := 0
	for _, sec := range sections {
		minutes += sec.Minutes()
		build := builders[sec.Subject]
		for i := 0; i < sec.Count; i++ {
			d := build(bc)
			order := len(questions)
			questions = append(questions, Question{
				ID:           fmt.Sprintf("%s-q%d", setID, order),
				DailySetID:   setID,
				Subject:      sec.Subject,
				QuestionType: d.Type,
				OrderIndex:   order,
				Title:        sec.Title,
				Content:      d.Content,
				Answer:       d.Answer,
				Explanation:  d.Explanation,
				Points:       PointsPerQuestion,
				Hint:         d.Hint,
				Metadata:     d.Metadata,
				CreatedAt:    midnight,
			})
		}
	}

	set := DailySet{
		ID:               setID,
		Grade:            grade,
		Semester:         semester,
		SetNumber:        dayOfYear,
		Title:            fmt.Sprintf("%s daily set, grade %d", day.Format("Jan 2"), grade),
		EstimatedMinutes: minutes,
		TotalQuestions:   total,
		TotalPoints:      total * PointsPerQuestion,
		IsPublished:      true,
		CreatedAt:        midnight,
	}

	g.log.Debug("generated daily set", "set_id", setID, "questions", total, "fallback", fallback)
	return &DailySetWithQuestions{Set: set, Questions: questions, UsingFallbackCorpus: fallback}, nil
}
