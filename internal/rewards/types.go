package rewards

import (
	"fmt"
	"time"

	"github.com/abhisek/sprechen/internal/store"
)

// Kind identifies the category of achievement.
type Kind string

const (
	KindPerfect Kind = "perfect"
	KindStreak  Kind = "streak"
)

// DisplayName returns a human-readable label for the award kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindPerfect:
		return "Perfect"
	case KindStreak:
		return "Streak"
	default:
		return string(k)
	}
}

// Icon returns the display icon for the award kind.
func (k Kind) Icon() string {
	switch k {
	case KindPerfect:
		return "💎"
	case KindStreak:
		return "⚡"
	default:
		return "✦"
	}
}

// Award is a single reward earned by an attempt.
type Award struct {
	Kind      Kind
	Rarity    Rarity
	PhraseID  string
	Streak    int // streak length for streak awards
	Gems      int
	Reason    string // human-readable, e.g. "10 in a row!"
	AwardedAt time.Time
}

// AllKinds returns every award kind in display order.
func AllKinds() []Kind {
	return []Kind{KindPerfect, KindStreak}
}

// FromRecord rebuilds an award from its stored form.
func FromRecord(rec store.AwardRecord) Award {
	a := Award{
		Kind:      Kind(rec.Kind),
		Rarity:    RarityCommon,
		PhraseID:  rec.PhraseID,
		Streak:    rec.Streak,
		Gems:      rec.Gems,
		AwardedAt: rec.Timestamp,
	}
	switch a.Kind {
	case KindPerfect:
		a.Reason = "Perfect pronunciation!"
	case KindStreak:
		a.Rarity = StreakRarity(rec.Streak)
		a.Reason = fmt.Sprintf("%d in a row!", rec.Streak)
	}
	return a
}
