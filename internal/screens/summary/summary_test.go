package summary

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sprechen/internal/deck"
	"github.com/abhisek/sprechen/internal/rewards"
	"github.com/abhisek/sprechen/internal/router"
	"github.com/abhisek/sprechen/internal/store"
)

type stubAttemptRepo struct {
	store.AttemptRepo
}

type stubRewardRepo struct {
	store.RewardRepo
}

func testSummary() *Summary {
	return &Summary{
		Duration: 4*time.Minute + 30*time.Second,
		Results: []Result{
			{Phrase: deck.Phrase{Text: "Ich gehe heute in die Schule."}, Score: 100, Passed: true},
			{Phrase: deck.Phrase{Text: "Wo ist der Bahnhof?"}, Score: 92, Passed: true},
			{Phrase: deck.Phrase{Text: "Das Wetter ist schön."}, Score: 61, Passed: false},
		},
		BestStreak: 2,
		GemsEarned: 1,
		Awards: []rewards.Award{
			{Kind: rewards.KindPerfect, Rarity: rewards.RarityCommon, Gems: 1, Reason: "Perfect pronunciation!"},
		},
	}
}

func TestSummary_Aggregates(t *testing.T) {
	s := testSummary()
	if s.Attempts() != 3 {
		t.Errorf("Attempts = %d, want 3", s.Attempts())
	}
	if s.Passed() != 2 {
		t.Errorf("Passed = %d, want 2", s.Passed())
	}
	if got := s.AverageScore(); math.Abs(got-84.33) > 0.01 {
		t.Errorf("AverageScore = %.2f, want 84.33", got)
	}
}

func TestSummary_AverageScoreEmpty(t *testing.T) {
	s := &Summary{}
	if s.AverageScore() != 0 {
		t.Errorf("AverageScore = %f, want 0", s.AverageScore())
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), Repos{})
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), Repos{})
	view := s.View(100, 30)
	for _, want := range []string{"Session complete!", "Attempts: 3", "Best streak: 2", "Wo ist der Bahnhof?", "Perfect pronunciation!"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_NilSummary(t *testing.T) {
	s := New(nil, Repos{})
	if view := s.View(80, 24); view != "" {
		t.Errorf("expected empty view, got %q", view)
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary(), Repos{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (quit)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary(), Repos{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (quit)")
	}
}

func TestSummaryScreen_OtherKeysIgnored(t *testing.T) {
	s := New(testSummary(), Repos{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("expected no command for unbound key")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), Repos{})
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}

func TestSummaryScreen_History(t *testing.T) {
	s := New(testSummary(), Repos{})
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'h', Text: "h"}); cmd != nil {
		t.Error("expected no history without a repo")
	}

	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'g', Text: "g"}); cmd != nil {
		t.Error("expected no gem vault without a repo")
	}

	s = New(testSummary(), Repos{Attempts: &stubAttemptRepo{}, Rewards: &stubRewardRepo{}})
	if len(s.KeyHints()) != 4 {
		t.Errorf("KeyHints length = %d, want 4", len(s.KeyHints()))
	}
	for key, title := range map[rune]string{'h': "History", 'g': "Gem Vault"} {
		_, cmd := s.Update(tea.KeyPressMsg{Code: key, Text: string(key)})
		if cmd == nil {
			t.Fatalf("expected navigation on %q", key)
		}
		msg, ok := cmd().(router.PushScreenMsg)
		if !ok {
			t.Fatalf("expected PushScreenMsg, got %T", msg)
		}
		if msg.Screen.Title() != title {
			t.Errorf("pushed %q, want %q", msg.Screen.Title(), title)
		}
	}
}

func TestClip(t *testing.T) {
	if got := clip("Schön", 10); got != "Schön" {
		t.Errorf("clip short = %q", got)
	}
	if got := clip("Straßenbahn", 6); got != "Straß…" {
		t.Errorf("clip long = %q, want %q", got, "Straß…")
	}
}
