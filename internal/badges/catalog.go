// Package badges holds the static badge catalog and awards badges to
// students when their learning history satisfies a badge's rule.
package badges

import (
	"fmt"

	"github.com/abhisek/dailylearn/internal/curriculum"
)

// ConditionType selects the rule a badge is evaluated with.
type ConditionType string

const (
	CondFirstComplete       ConditionType = "first_complete"
	CondStreak              ConditionType = "streak"
	CondPerfectScore        ConditionType = "perfect_score"
	CondTotalPoints         ConditionType = "total_points"
	CondEarlyBird           ConditionType = "early_bird"
	CondWeekend             ConditionType = "weekend"
	CondTotalSessions       ConditionType = "total_sessions"
	CondSubjectCorrect      ConditionType = "subject_correct"
	CondAllSubjectsAccuracy ConditionType = "all_subjects_accuracy"
)

// Badge is a read-only catalog entry.
type Badge struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Icon           string             `json:"icon"`
	Description    string             `json:"description"`
	ConditionType  ConditionType      `json:"condition_type"`
	ConditionValue int                `json:"condition_value"`
	Subject        curriculum.Subject `json:"subject,omitempty"`
	Rarity         Rarity             `json:"rarity"`
}

func streakBadge(days int, icon string) Badge {
	return Badge{
		ID:             fmt.Sprintf("streak_%d", days),
		Name:           fmt.Sprintf("%d-Day Streak", days),
		Icon:           icon,
		Description:    fmt.Sprintf("Learn %d days in a row", days),
		ConditionType:  CondStreak,
		ConditionValue: days,
		Rarity:         StreakRarity(days),
	}
}

func subjectBadge(id, name, icon string, subject curriculum.Subject, correct int, rarity Rarity) Badge {
	return Badge{
		ID:             id,
		Name:           name,
		Icon:           icon,
		Description:    fmt.Sprintf("Answer %d %s questions correctly", correct, subject.DisplayName()),
		ConditionType:  CondSubjectCorrect,
		ConditionValue: correct,
		Subject:        subject,
		Rarity:         rarity,
	}
}

var catalog = []Badge{
	{ID: "first_complete", Name: "First Steps", Icon: "🌱", Description: "Complete your first daily set",
		ConditionType: CondFirstComplete, ConditionValue: 1, Rarity: RarityCommon},
	streakBadge(3, "🔥"),
	streakBadge(7, "⚡"),
	streakBadge(30, "🌟"),
	streakBadge(100, "👑"),
	{ID: "perfect_score", Name: "Perfect Score", Icon: "💯", Description: "Get every question right in a set",
		ConditionType: CondPerfectScore, ConditionValue: 100, Rarity: RarityRare},
	{ID: "points_1000", Name: "Point Collector", Icon: "🪙", Description: "Earn 1,000 points",
		ConditionType: CondTotalPoints, ConditionValue: 1000, Rarity: RarityRare},
	{ID: "points_10000", Name: "Point Master", Icon: "💰", Description: "Earn 10,000 points",
		ConditionType: CondTotalPoints, ConditionValue: 10000, Rarity: RarityEpic},
	{ID: "early_bird", Name: "Early Bird", Icon: "🐦", Description: "Finish a set before 7 AM",
		ConditionType: CondEarlyBird, ConditionValue: 7, Rarity: RarityRare},
	{ID: "weekend_warrior", Name: "Weekend Warrior", Icon: "🛡️", Description: "Finish a set on a weekend",
		ConditionType: CondWeekend, ConditionValue: 1, Rarity: RarityCommon},
	{ID: "sets_10", Name: "Ten Sets", Icon: "📘", Description: "Complete 10 daily sets",
		ConditionType: CondTotalSessions, ConditionValue: 10, Rarity: RarityCommon},
	{ID: "sets_50", Name: "Fifty Sets", Icon: "📚", Description: "Complete 50 daily sets",
		ConditionType: CondTotalSessions, ConditionValue: 50, Rarity: RarityRare},
	subjectBadge("math_master", "Math Master", "🧮", curriculum.SubjectMath, 50, RarityEpic),
	subjectBadge("spelling_star", "Spelling Star", "✏️", curriculum.SubjectSpelling, 30, RarityRare),
	subjectBadge("vocabulary_wizard", "Vocabulary Wizard", "📖", curriculum.SubjectVocabulary, 30, RarityRare),
	subjectBadge("knowledge_explorer", "Knowledge Explorer", "🔭", curriculum.SubjectGeneralKnowledge, 30, RarityRare),
	subjectBadge("safety_hero", "Safety Hero", "🦺", curriculum.SubjectSafety, 20, RarityRare),
	subjectBadge("writing_star", "Writing Star", "📝", curriculum.SubjectWriting, 10, RarityCommon),
	{ID: "all_rounder", Name: "All-Rounder", Icon: "🏆",
		Description:   "Reach 90% accuracy in 5 subjects with at least 3 answers each",
		ConditionType: CondAllSubjectsAccuracy, ConditionValue: 90, Rarity: RarityLegendary},
}

// Catalog returns every badge in display order. The slice is a copy.
func Catalog() []Badge {
	out := make([]Badge, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a catalog badge.
func ByID(id string) (Badge, bool) {
	for _, b := range catalog {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
