package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sprechen/internal/store"
)

type mockAttemptRepo struct {
	store.AttemptRepo
	attempts []store.AttemptRecord
	err      error
	opts     store.QueryOpts
}

func (m *mockAttemptRepo) RecentAttempts(_ context.Context, opts store.QueryOpts) ([]store.AttemptRecord, error) {
	m.opts = opts
	return m.attempts, m.err
}

func testAttempts() []store.AttemptRecord {
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	return []store.AttemptRecord{
		{
			Timestamp:  now,
			Expected:   "Die Straße ist lang.",
			Transcript: "die strasse ist lang",
			Score:      94,
			Passed:     true,
			Duration:   3 * time.Second,
			Words: []store.WordScoreData{
				{Expected: "die", Spoken: "die", Score: 100},
				{Expected: "straße", Spoken: "strasse", Score: 75},
				{Expected: "ist", Spoken: "ist", Score: 100},
				{Expected: "lang", Spoken: "lang", Score: 100},
			},
		},
		{
			Timestamp:  now.Add(-time.Minute),
			Expected:   "Wo ist der Bahnhof?",
			Transcript: "wo ist der banhof",
			Score:      88,
			Duration:   2 * time.Second,
		},
	}
}

func loadedScreen(t *testing.T, repo *mockAttemptRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	msg := s.Init()()
	s.Update(msg)
	return s
}

func TestHistoryScreen_Title(t *testing.T) {
	s := New(&mockAttemptRepo{})
	if s.Title() != "History" {
		t.Errorf("Title = %q, want History", s.Title())
	}
}

func TestHistoryScreen_Loading(t *testing.T) {
	s := New(&mockAttemptRepo{})
	if view := s.View(100, 30); !strings.Contains(view, "Loading history") {
		t.Errorf("expected loading view, got %q", view)
	}
}

func TestHistoryScreen_Load(t *testing.T) {
	repo := &mockAttemptRepo{attempts: testAttempts()}
	s := loadedScreen(t, repo)

	if repo.opts.Limit != historyLimit {
		t.Errorf("query limit = %d, want %d", repo.opts.Limit, historyLimit)
	}
	view := s.View(100, 30)
	for _, want := range []string{"Die Straße ist lang.", "Wo ist der Bahnhof?", "94%", "88%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := loadedScreen(t, &mockAttemptRepo{})
	if view := s.View(100, 30); !strings.Contains(view, "No attempts yet") {
		t.Errorf("expected empty view, got %q", view)
	}
}

func TestHistoryScreen_Error(t *testing.T) {
	s := loadedScreen(t, &mockAttemptRepo{err: errors.New("db locked")})
	if view := s.View(100, 30); !strings.Contains(view, "db locked") {
		t.Errorf("expected error view, got %q", view)
	}
}

func TestHistoryScreen_Navigation(t *testing.T) {
	s := loadedScreen(t, &mockAttemptRepo{attempts: testAttempts()})

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 0 {
		t.Errorf("selected = %d after up at top, want 0", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if s.selected != 1 {
		t.Errorf("selected = %d after j, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d after down at bottom, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	if s.selected != 0 {
		t.Errorf("selected = %d after k, want 0", s.selected)
	}
}

func TestHistoryScreen_ExpandWords(t *testing.T) {
	s := loadedScreen(t, &mockAttemptRepo{attempts: testAttempts()})

	if strings.Contains(s.View(100, 30), "strasse") {
		t.Fatal("word breakdown shown before expanding")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view := s.View(100, 30)
	if !strings.Contains(view, "heard:") || !strings.Contains(view, "strasse") {
		t.Errorf("expected word breakdown, got %q", view)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if strings.Contains(s.View(100, 30), "heard:") {
		t.Error("expected breakdown collapsed after second enter")
	}
}

func TestHistoryScreen_KeyHints(t *testing.T) {
	s := New(&mockAttemptRepo{})
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(s.KeyHints()))
	}
}
