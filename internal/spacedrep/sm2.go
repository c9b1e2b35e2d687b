package spacedrep

import (
	"math"
	"sort"
	"time"
)

// Quality is the SM-2 response grade, 0 (blackout) to 5 (perfect).
type Quality int

const (
	QualityBlackout          Quality = 0
	QualityIncorrect         Quality = 1
	QualityIncorrectFamiliar Quality = 2
	QualityCorrectDifficult  Quality = 3
	QualityCorrectHesitation Quality = 4
	QualityPerfect           Quality = 5
)

// QualityFromScore grades a pronunciation attempt from its utterance
// score (0-100): every 20 points is one grade, so 100 is perfect and
// anything from 60 up counts as recalled.
func QualityFromScore(score int) Quality {
	q := Quality(score / 20)
	return min(max(q, QualityBlackout), QualityPerfect)
}

// Review applies one SM-2 review to rs at time now.
func Review(rs *ReviewState, q Quality, now time.Time) {
	fq := float64(5 - q)
	rs.Easiness = max(rs.Easiness+(0.1-fq*(0.08+fq*0.02)), MinEasiness)

	if q >= PassQuality {
		switch rs.Repetitions {
		case 0:
			rs.IntervalDays = FirstIntervalDays
		case 1:
			rs.IntervalDays = SecondIntervalDays
		default:
			rs.IntervalDays = int(math.Round(float64(rs.IntervalDays) * rs.Easiness))
		}
		rs.IntervalDays = min(rs.IntervalDays, MaxIntervalDays)
		rs.Repetitions++
	} else {
		rs.Repetitions = 0
		rs.IntervalDays = FirstIntervalDays
	}

	rs.LastQuality = q
	rs.LastReview = now
	rs.NextReview = now.AddDate(0, 0, rs.IntervalDays)
}

// Due returns the due states ordered for practice: never-reviewed phrases
// first, then the hardest (lowest easiness), then the most overdue.
// A limit of 0 or less returns all due states.
func Due(states []*ReviewState, now time.Time, limit int) []*ReviewState {
	var due []*ReviewState
	for _, rs := range states {
		if rs.IsDue(now) {
			due = append(due, rs)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i], due[j]
		if a.IsNew() != b.IsNew() {
			return a.IsNew()
		}
		if a.Easiness != b.Easiness {
			return a.Easiness < b.Easiness
		}
		return a.NextReview.Before(b.NextReview)
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due
}

// SortForDisplay orders states by next review date, then phrase ID.
func SortForDisplay(states []*ReviewState) []*ReviewState {
	sort.Slice(states, func(i, j int) bool {
		a, b := states[i], states[j]
		if !a.NextReview.Equal(b.NextReview) {
			return a.NextReview.Before(b.NextReview)
		}
		return a.PhraseID < b.PhraseID
	})
	return states
}
