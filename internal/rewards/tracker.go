package rewards

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/sprechen/internal/similarity"
	"github.com/abhisek/sprechen/internal/store"
)

// Tracker keeps the running streak and turns attempt scores into awards.
type Tracker struct {
	repo store.RewardRepo
	now  func() time.Time

	streak     int
	bestStreak int
	totalGems  int

	// SessionAwards accumulates awards earned since the tracker was created.
	SessionAwards []Award
}

// NewTracker creates a tracker and loads the persisted streak and gem
// total. A nil repo keeps everything in memory.
func NewTracker(ctx context.Context, repo store.RewardRepo) (*Tracker, error) {
	t := &Tracker{repo: repo, now: time.Now}
	if repo == nil {
		return t, nil
	}

	var err error
	if t.streak, err = repo.CurrentStreak(ctx); err != nil {
		return nil, fmt.Errorf("load streak: %w", err)
	}
	if t.totalGems, err = repo.GemTotal(ctx); err != nil {
		return nil, fmt.Errorf("load gems: %w", err)
	}
	return t, nil
}

// Record applies an attempt score. Scores of StreakScore and above extend
// the streak, anything lower resets it. A perfect score and every streak
// milestone earn an award. Awards and the streak are persisted.
func (t *Tracker) Record(ctx context.Context, phraseID string, score int) ([]Award, error) {
	now := t.now()
	var awards []Award

	if score >= StreakScore {
		t.streak++
	} else {
		t.streak = 0
	}
	t.bestStreak = max(t.bestStreak, t.streak)

	if score >= similarity.PerfectScore {
		awards = append(awards, Award{
			Kind:      KindPerfect,
			Rarity:    RarityCommon,
			PhraseID:  phraseID,
			Gems:      RarityCommon.Gems(),
			Reason:    "Perfect pronunciation!",
			AwardedAt: now,
		})
	}

	if IsMilestone(t.streak) {
		rarity := StreakRarity(t.streak)
		awards = append(awards, Award{
			Kind:      KindStreak,
			Rarity:    rarity,
			PhraseID:  phraseID,
			Streak:    t.streak,
			Gems:      rarity.Gems(),
			Reason:    fmt.Sprintf("%d in a row!", t.streak),
			AwardedAt: now,
		})
	}

	for _, a := range awards {
		t.totalGems += a.Gems
	}
	t.SessionAwards = append(t.SessionAwards, awards...)

	if t.repo == nil {
		return awards, nil
	}
	return awards, t.persist(ctx, awards)
}

// persist writes the streak and every award. One failed write does not
// stop the others.
func (t *Tracker) persist(ctx context.Context, awards []Award) error {
	var errs []error
	if err := t.repo.SaveStreak(ctx, t.streak); err != nil {
		errs = append(errs, fmt.Errorf("save streak: %w", err))
	}
	for _, a := range awards {
		err := t.repo.AppendAward(ctx, store.AwardData{
			Kind:     string(a.Kind),
			PhraseID: a.PhraseID,
			Streak:   a.Streak,
			Gems:     a.Gems,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("save %s award: %w", a.Kind, err))
		}
	}
	return errors.Join(errs...)
}

// Streak returns the current streak length.
func (t *Tracker) Streak() int {
	return t.streak
}

// BestSessionStreak returns the longest streak reached since the tracker
// was created.
func (t *Tracker) BestSessionStreak() int {
	return t.bestStreak
}

// TotalGems returns all gems ever earned, including this session.
func (t *Tracker) TotalGems() int {
	return t.totalGems
}

// SessionGems returns the gems earned since the tracker was created.
func (t *Tracker) SessionGems() int {
	n := 0
	for _, a := range t.SessionAwards {
		n += a.Gems
	}
	return n
}
