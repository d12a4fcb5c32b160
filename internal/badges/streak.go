package badges

// streakMilestones are the streak badge thresholds in days.
var streakMilestones = []int{3, 7, 30, 100}

// NextStreakMilestone returns the next streak milestone above current.
func NextStreakMilestone(current int) int {
	for _, m := range streakMilestones {
		if m > current {
			return m
		}
	}
	// Beyond the last badge, keep counting in hundreds.
	return ((current / 100) + 1) * 100
}
