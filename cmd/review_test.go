package cmd

import (
	"testing"
	"time"

	"github.com/abhisek/sprechen/internal/spacedrep"
)

func TestReviewWhen(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	reviewed := func(next time.Time) *spacedrep.ReviewState {
		return &spacedrep.ReviewState{LastReview: now.AddDate(0, 0, -10), NextReview: next}
	}

	tests := []struct {
		name string
		rs   *spacedrep.ReviewState
		want string
	}{
		{"new", spacedrep.NewReviewState("p"), "new"},
		{"upcoming", reviewed(now.AddDate(0, 0, 6)), "in 6d"},
		{"partial day", reviewed(now.Add(3 * time.Hour)), "in 1d"},
		{"due today", reviewed(now.Add(-3 * time.Hour)), "today"},
		{"overdue", reviewed(now.AddDate(0, 0, -4)), "4d overdue"},
	}
	for _, tt := range tests {
		if got := reviewWhen(tt.rs, now); got != tt.want {
			t.Errorf("%s: reviewWhen = %q, want %q", tt.name, got, tt.want)
		}
	}
}
