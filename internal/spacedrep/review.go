package spacedrep

import (
	"math"
	"time"
)

// ReviewState holds the SM-2 state for a single phrase.
type ReviewState struct {
	PhraseID     string    `json:"phrase_id"`
	Repetitions  int       `json:"repetitions"`
	IntervalDays int       `json:"interval_days"`
	Easiness     float64   `json:"easiness"`
	NextReview   time.Time `json:"next_review"`
	LastReview   time.Time `json:"last_review"`
	LastQuality  Quality   `json:"last_quality"`
}

// NewReviewState returns the state of a phrase that has never been practiced.
func NewReviewState(phraseID string) *ReviewState {
	return &ReviewState{
		PhraseID: phraseID,
		Easiness: InitialEasiness,
	}
}

// IsNew returns true if the phrase has never been reviewed.
func (rs *ReviewState) IsNew() bool {
	return rs.LastReview.IsZero()
}

// IsDue returns true if the phrase is due for review (at or past the review date).
// New phrases are always due.
func (rs *ReviewState) IsDue(now time.Time) bool {
	return !now.Before(rs.NextReview)
}

// OverdueDays returns how many days past due the phrase is. Returns 0 if not yet due.
func (rs *ReviewState) OverdueDays(now time.Time) float64 {
	if rs.IsNew() || now.Before(rs.NextReview) {
		return 0
	}
	return now.Sub(rs.NextReview).Hours() / 24.0
}

// IsMastered returns true once the phrase has a long, stable interval.
func (rs *ReviewState) IsMastered() bool {
	return rs.Repetitions >= MasteredRepetitions && rs.IntervalDays >= MasteredIntervalDays
}

// ReviewStatus describes a phrase's review status for display.
type ReviewStatus string

const (
	StatusNew      ReviewStatus = "new"
	StatusLearning ReviewStatus = "learning"
	StatusDue      ReviewStatus = "due"
	StatusMastered ReviewStatus = "mastered"
)

// Status returns the review status for UI display.
func (rs *ReviewState) Status(now time.Time) ReviewStatus {
	switch {
	case rs.IsNew():
		return StatusNew
	case rs.IsDue(now):
		return StatusDue
	case rs.IsMastered():
		return StatusMastered
	default:
		return StatusLearning
	}
}

// DaysUntilReview returns the number of days until the next review.
// Returns 0 if already due.
func (rs *ReviewState) DaysUntilReview(now time.Time) int {
	if rs.IsDue(now) {
		return 0
	}
	return int(math.Ceil(rs.NextReview.Sub(now).Hours() / 24.0))
}
