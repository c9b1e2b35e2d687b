package spacedrep

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/sprechen/internal/deck"
	"github.com/abhisek/sprechen/internal/store"
)

// Scheduler manages spaced repetition review scheduling for phrases.
type Scheduler struct {
	reviews map[string]*ReviewState
	repo    store.ReviewRepo
}

// NewScheduler creates a scheduler, loading review state from repo.
// A nil repo gives an in-memory scheduler.
func NewScheduler(ctx context.Context, repo store.ReviewRepo) (*Scheduler, error) {
	s := &Scheduler{
		reviews: make(map[string]*ReviewState),
		repo:    repo,
	}
	if repo == nil {
		return s, nil
	}

	records, err := repo.LoadReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("load review state: %w", err)
	}
	for _, rec := range records {
		s.reviews[rec.PhraseID] = fromRecord(rec)
	}
	return s, nil
}

// State returns the review state for a phrase. Phrases never practiced get
// a fresh state that is not stored until the first review.
func (s *Scheduler) State(phraseID string) *ReviewState {
	if rs, ok := s.reviews[phraseID]; ok {
		return rs
	}
	return NewReviewState(phraseID)
}

// Record grades an attempt by its utterance score, updates the schedule
// and persists it.
func (s *Scheduler) Record(ctx context.Context, phraseID string, score int, now time.Time) (*ReviewState, error) {
	rs, ok := s.reviews[phraseID]
	if !ok {
		rs = NewReviewState(phraseID)
		s.reviews[phraseID] = rs
	}

	Review(rs, QualityFromScore(score), now)

	if s.repo != nil {
		if err := s.repo.SaveReview(ctx, toRecord(rs)); err != nil {
			return rs, fmt.Errorf("save review state: %w", err)
		}
	}
	return rs, nil
}

// Due returns the tracked phrases that are due, in practice order.
func (s *Scheduler) Due(now time.Time, limit int) []*ReviewState {
	states := make([]*ReviewState, 0, len(s.reviews))
	for _, rs := range s.reviews {
		states = append(states, rs)
	}
	return Due(states, now, limit)
}

// Plan picks up to count phrases for a session: due reviews first, then
// phrases never practiced, in deck order. A count of 0 or less plans every
// due and new phrase.
func (s *Scheduler) Plan(phrases []deck.Phrase, now time.Time, count int) []deck.Phrase {
	byID := make(map[string]deck.Phrase, len(phrases))
	states := make([]*ReviewState, 0, len(phrases))
	var fresh []deck.Phrase
	for _, p := range phrases {
		byID[p.ID] = p
		rs, ok := s.reviews[p.ID]
		if !ok {
			fresh = append(fresh, p)
			continue
		}
		states = append(states, rs)
	}

	var plan []deck.Phrase
	full := func() bool { return count > 0 && len(plan) >= count }

	for _, rs := range Due(states, now, 0) {
		if full() {
			return plan
		}
		plan = append(plan, byID[rs.PhraseID])
	}
	for _, p := range fresh {
		if full() {
			return plan
		}
		plan = append(plan, p)
	}
	return plan
}

// AllReviewStates returns all review states (for stats/UI).
func (s *Scheduler) AllReviewStates() map[string]*ReviewState {
	result := make(map[string]*ReviewState, len(s.reviews))
	for id, rs := range s.reviews {
		result[id] = rs
	}
	return result
}

func fromRecord(rec store.ReviewRecord) *ReviewState {
	return &ReviewState{
		PhraseID:     rec.PhraseID,
		Repetitions:  rec.Repetitions,
		IntervalDays: rec.IntervalDays,
		Easiness:     rec.Easiness,
		NextReview:   rec.NextReview,
		LastReview:   rec.LastReview,
		LastQuality:  Quality(rec.LastQuality),
	}
}

func toRecord(rs *ReviewState) store.ReviewRecord {
	return store.ReviewRecord{
		PhraseID:     rs.PhraseID,
		Repetitions:  rs.Repetitions,
		IntervalDays: rs.IntervalDays,
		Easiness:     rs.Easiness,
		NextReview:   rs.NextReview,
		LastReview:   rs.LastReview,
		LastQuality:  int(rs.LastQuality),
	}
}
