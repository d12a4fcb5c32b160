package badges

import (
	"time"

	"github.com/abhisek/dailylearn/internal/curriculum"
	"github.com/abhisek/dailylearn/internal/progress"
)

const (
	allRounderMinSubjects = 5
	allRounderMinAttempts = 3
)

// facts is the snapshot of a student's history the rules are evaluated on.
type facts struct {
	completed []progress.LearningRecord
	streak    int
	points    int
	stats     map[curriculum.Subject]progress.SubjectStat
	session   *SessionResult
	loc       *time.Location
}

type rule func(f *facts, b Badge) bool

var rules = map[ConditionType]rule{
	CondFirstComplete: func(f *facts, b Badge) bool {
		return len(f.completed) >= max(b.ConditionValue, 1)
	},
	CondStreak: func(f *facts, b Badge) bool {
		return f.streak >= b.ConditionValue
	},
	CondPerfectScore: func(f *facts, _ Badge) bool {
		if f.session != nil {
			return f.session.Perfect()
		}
		for _, rec := range f.completed {
			if rec.MaxScore > 0 && rec.TotalScore == rec.MaxScore {
				return true
			}
		}
		return false
	},
	CondTotalPoints: func(f *facts, b Badge) bool {
		return f.points >= b.ConditionValue
	},
	CondEarlyBird: func(f *facts, b Badge) bool {
		for _, rec := range f.completed {
			if rec.ActivityTime().In(f.loc).Hour() < b.ConditionValue {
				return true
			}
		}
		return false
	},
	CondWeekend: func(f *facts, _ Badge) bool {
		for _, rec := range f.completed {
			switch rec.ActivityTime().In(f.loc).Weekday() {
			case time.Saturday, time.Sunday:
				return true
			}
		}
		return false
	},
	CondTotalSessions: func(f *facts, b Badge) bool {
		return len(f.completed) >= b.ConditionValue
	},
	CondSubjectCorrect: func(f *facts, b Badge) bool {
		return f.stats[b.Subject].Correct >= b.ConditionValue
	},
	CondAllSubjectsAccuracy: func(f *facts, b Badge) bool {
		n := 0
		for _, st := range f.stats {
			if st.Total >= allRounderMinAttempts && st.Accuracy >= b.ConditionValue {
				n++
			}
		}
		return n >= allRounderMinSubjects
	},
}

func init() {
	for _, b := range catalog {
		if _, ok := rules[b.ConditionType]; !ok {
			panic("badges: no rule for condition " + string(b.ConditionType))
		}
	}
}
