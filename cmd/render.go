package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/dailylearn/internal/dailyset"
	"github.com/abhisek/dailylearn/internal/session"
	"github.com/abhisek/dailylearn/internal/ui/theme"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderSet prints a set with one block per question.
func renderSet(w io.Writer, s *dailyset.DailySetWithQuestions) {
	fmt.Fprintln(w, theme.Title.Render(s.Set.Title))
	fmt.Fprintln(w, theme.Hint.Render(fmt.Sprintf("%s · %d questions · %d points · about %d min",
		s.Set.ID, s.Set.TotalQuestions, s.Set.TotalPoints, s.Set.EstimatedMinutes)))
	if s.UsingFallbackCorpus {
		fmt.Fprintln(w, theme.Warn.Render(fmt.Sprintf("No corpus for grade %d yet, using grade %d material.",
			s.Set.Grade, fallbackGrade(s))))
	}

	var subject string
	for _, q := range s.Questions {
		if string(q.Subject) != subject {
			subject = string(q.Subject)
			fmt.Fprintln(w, theme.Section.Render(q.Title))
		}
		fmt.Fprintln(w, renderQuestion(q))
	}
}

func fallbackGrade(s *dailyset.DailySetWithQuestions) int {
	for _, q := range s.Questions {
		if q.Metadata.FallbackCorpus {
			return q.Metadata.Grade
		}
	}
	return 0
}

func renderQuestion(q dailyset.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  ", theme.Hint.Render(q.ID))

	c := q.Content
	switch q.QuestionType {
	case dailyset.TypeEmotionSelect:
		b.WriteString(c.Prompt)
		for _, o := range c.Options {
			fmt.Fprintf(&b, "\n    %s %s (%s)", o.Emoji, o.Label, o.Value)
		}
	case dailyset.TypeReadinessScale:
		b.WriteString(c.Prompt)
		if c.Scale != nil {
			fmt.Fprintf(&b, "\n    %d = %s ... %d = %s", c.Scale.Min, c.Scale.MinLabel, c.Scale.Max, c.Scale.MaxLabel)
		}
	case dailyset.TypeFillBlank:
		fmt.Fprintf(&b, "%s\n    %s", c.Prompt, c.Sentence)
	default:
		if c.Situation != "" {
			fmt.Fprintf(&b, "%s\n    ", c.Situation)
		}
		b.WriteString(c.Prompt)
		if c.Guide != "" {
			fmt.Fprintf(&b, "\n    %s", theme.Hint.Render(c.Guide))
		}
	}
	for i, choice := range c.Choices {
		fmt.Fprintf(&b, "\n    %d) %s", i+1, choice)
	}
	if q.Hint != "" {
		fmt.Fprintf(&b, "\n    %s", theme.Hint.Render("hint: "+q.Hint))
	}
	return b.String()
}

func renderSummary(w io.Writer, sum *session.Summary) {
	fmt.Fprintln(w, theme.Section.Render("Results"))
	fmt.Fprintf(w, "Answered %d of %d, %d of %d graded correct\n",
		sum.Answered, sum.TotalQuestions, sum.TotalCorrect, sum.GradedTotal)
	for _, sr := range sum.SubjectResults {
		style := theme.Incorrect
		if sr.Correct == sr.Questions {
			style = theme.Correct
		}
		fmt.Fprintf(w, "  %s %s\n",
			theme.Label.Render(sr.Subject.DisplayName()),
			style.Render(fmt.Sprintf("%d/%d", sr.Correct, sr.Questions)))
	}
}
