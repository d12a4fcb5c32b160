package store

// Collection keys. One JSON array per key.
const (
	KeyLearningRecords   = "dailylearn:learning_records"
	KeyQuestionResponses = "dailylearn:question_responses"
	KeyDailySets         = "dailylearn:daily_sets"
	KeyQuestions         = "dailylearn:questions"
	KeyStudentBadges     = "dailylearn:student_badges"
	KeyUsers             = "dailylearn:users"
)

// AllKeys lists every collection key the engine writes.
func AllKeys() []string {
	return []string{
		KeyLearningRecords,
		KeyQuestionResponses,
		KeyDailySets,
		KeyQuestions,
		KeyStudentBadges,
		KeyUsers,
	}
}
