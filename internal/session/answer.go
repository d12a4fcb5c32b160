package session

import (
	"strconv"
	"strings"

	"github.com/abhisek/dailylearn/internal/dailyset"
)

// CheckAnswer compares the learner's input against the question's answer.
//
// Normalization rules:
// - Whitespace is trimmed and inner runs collapse to one space
// - Comparison is case-insensitive
// - Integers ignore leading zeros (e.g., "007" matches "7")
// - Multiple choice also accepts the 1-based choice number
// - Any of Answer.Accepted counts as correct
// - Free-text questions are credited for any non-empty submission
//
// Reflective questions are never correct.
func CheckAnswer(learnerAnswer string, q dailyset.Question) bool {
	learnerAnswer = normalize(learnerAnswer)
	if learnerAnswer == "" || !q.Graded() {
		return false
	}

	if q.QuestionType == dailyset.TypeFreeText {
		return true
	}

	if len(q.Content.Choices) > 0 {
		if idx, err := strconv.Atoi(learnerAnswer); err == nil && idx >= 1 && idx <= len(q.Content.Choices) {
			if !isChoiceText(learnerAnswer, q.Content.Choices) {
				learnerAnswer = normalize(q.Content.Choices[idx-1])
			}
		}
	}

	for _, want := range append([]string{q.Answer.Value}, q.Answer.Accepted...) {
		if matches(learnerAnswer, normalize(want)) {
			return true
		}
	}
	return false
}

// isChoiceText reports whether s is literally one of the choices, so a
// numeric choice like "12" is not mistaken for a choice number.
func isChoiceText(s string, choices []string) bool {
	for _, c := range choices {
		if normalize(c) == s {
			return true
		}
	}
	return false
}

func matches(got, want string) bool {
	if want == "" {
		return false
	}
	if got == want {
		return true
	}
	gi, errG := strconv.ParseInt(got, 10, 64)
	wi, errW := strconv.ParseInt(want, 10, 64)
	return errG == nil && errW == nil && gi == wi
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
