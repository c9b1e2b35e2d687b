package rewards

// StreakScore is the lowest utterance score that extends a streak.
const StreakScore = 90

// BaseStreakThreshold is the first streak length that earns an award.
const BaseStreakThreshold = 5

// NextStreakThreshold returns the next streak milestone above the current streak length.
func NextStreakThreshold(current int) int {
	thresholds := []int{5, 10, 15, 20}
	for _, t := range thresholds {
		if t > current {
			return t
		}
	}
	// Beyond 20, award every 5.
	return ((current / 5) + 1) * 5
}

// IsMilestone reports whether reaching streak length n earns an award.
func IsMilestone(n int) bool {
	return n > 0 && NextStreakThreshold(n-1) == n
}
