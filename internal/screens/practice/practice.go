package practice

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sprechen/internal/deck"
	"github.com/abhisek/sprechen/internal/rewards"
	"github.com/abhisek/sprechen/internal/router"
	"github.com/abhisek/sprechen/internal/screen"
	"github.com/abhisek/sprechen/internal/screens/summary"
	"github.com/abhisek/sprechen/internal/spacedrep"
	"github.com/abhisek/sprechen/internal/store"
	"github.com/abhisek/sprechen/internal/transcript"
	"github.com/abhisek/sprechen/internal/ui/components"
	"github.com/abhisek/sprechen/internal/ui/layout"
)

const inputWidth = 120

// Deps are the collaborators of a practice session.
type Deps struct {
	Phrases   []deck.Phrase
	Scheduler *spacedrep.Scheduler
	Rewards   *rewards.Tracker

	// Attempts persists finished attempts. Nil keeps the session in memory.
	Attempts store.AttemptRepo

	// RewardRepo backs the gem vault reachable from the summary.
	RewardRepo store.RewardRepo

	// Fold compares both sides after NFC normalization and case folding.
	Fold bool
}

// PracticeScreen implements screen.Screen for a practice session. The
// learner types (or a recognizer streams) the transcript of each phrase;
// words are colored on every keystroke and Enter completes the utterance.
type PracticeScreen struct {
	deps    Deps
	now     func() time.Time
	started time.Time

	index       int
	phraseStart time.Time
	tracker     *transcript.Tracker
	input       components.TextInput
	feedback    transcript.Feedback

	// Set once the current utterance is complete.
	result *transcript.Result
	review *spacedrep.ReviewState
	awards []rewards.Award
	extra  bool // result is a retry of an already graded phrase

	// graded holds phrases whose first attempt already fed the
	// scheduler and rewards this session.
	graded map[string]bool

	results            []summary.Result
	showingQuitConfirm bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen over the planned phrases.
func New(deps Deps) *PracticeScreen {
	s := &PracticeScreen{
		deps:   deps,
		now:    time.Now,
		graded: make(map[string]bool),
	}
	s.started = s.now()
	if len(deps.Phrases) > 0 {
		s.startPhrase()
	}
	return s
}

func (s *PracticeScreen) Init() tea.Cmd {
	if s.tracker == nil {
		return nil
	}
	return s.input.Init()
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.tracker == nil {
		return []layout.KeyHint{
			{Key: "any key", Description: "Quit"},
		}
	}
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.result != nil {
		return []layout.KeyHint{
			{Key: "R", Description: "Try again"},
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done speaking"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *PracticeScreen) View(width, height int) string {
	if s.tracker == nil {
		return renderEmpty(width)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.result != nil {
		return s.renderResult(width, height)
	}
	return s.renderPhraseView(width, height)
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case retryMsg:
		return s.handleRetry()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward cursor blinks and the like while listening.
	if s.tracker != nil && s.result == nil && !s.showingQuitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// Phrase returns the phrase being practiced, if any.
func (s *PracticeScreen) Phrase() (deck.Phrase, bool) {
	if s.index >= len(s.deps.Phrases) {
		return deck.Phrase{}, false
	}
	return s.deps.Phrases[s.index], true
}

// Feedback returns the live word feedback for the current transcript.
func (s *PracticeScreen) Feedback() transcript.Feedback {
	return s.feedback
}

// Result returns the completed utterance, or nil while still listening.
func (s *PracticeScreen) Result() *transcript.Result {
	return s.result
}

func (s *PracticeScreen) startPhrase() {
	p := s.deps.Phrases[s.index]
	s.tracker = transcript.NewTracker(p.Text, transcript.WithFolding(s.deps.Fold))
	s.input = components.NewTextInput("Sag den Satz...", inputWidth)
	s.feedback = s.tracker.Interim("")
	s.phraseStart = s.now()
	s.result = nil
	s.review = nil
	s.awards = nil
	s.extra = false
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Nothing to practice: any key quits.
	if s.tracker == nil {
		return s, tea.Quit
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	if s.result != nil {
		switch key {
		case "r", "R":
			return s, func() tea.Msg { return retryMsg{} }
		case "esc":
			s.showingQuitConfirm = true
			return s, nil
		}
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submit()
	}

	// Every edit is an interim result.
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.feedback = s.tracker.Interim(s.input.Value())
	return s, cmd
}

// submit treats the input as the final result and completes the utterance.
func (s *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	text := s.input.Value()
	if text == "" {
		return s, nil
	}

	s.feedback = s.tracker.Final(text)
	res := s.tracker.Complete()
	s.result = &res
	s.input.Submit(res.Passed)

	p := s.deps.Phrases[s.index]
	now := s.now()
	s.record(context.Background(), p, res, now.Sub(s.phraseStart), now)
	return s, nil
}

// record persists the attempt. Only the first attempt at a phrase in a
// session feeds scheduling and rewards; retries are stored but do not
// count again. Storage failures are logged; practice carries on.
func (s *PracticeScreen) record(ctx context.Context, p deck.Phrase, res transcript.Result, took time.Duration, now time.Time) {
	if s.deps.Attempts != nil {
		words := make([]store.WordScoreData, len(res.Marks))
		for i, m := range res.Marks {
			words[i] = store.WordScoreData{Expected: m.Expected, Spoken: m.Spoken, Score: m.Score}
		}
		_, err := s.deps.Attempts.AppendAttempt(ctx, store.AttemptData{
			PhraseID:   p.ID,
			Expected:   p.Text,
			Transcript: res.Transcript,
			Score:      res.Utterance,
			Words:      words,
			Passed:     res.Passed,
			Duration:   took,
		})
		if err != nil {
			slog.Warn("failed to save attempt", "phrase", p.ID, "err", err)
		}
	}

	s.results = append(s.results, summary.Result{
		Phrase: p,
		Score:  res.Utterance,
		Passed: res.Passed,
	})

	if s.graded[p.ID] {
		s.extra = true
		if s.deps.Scheduler != nil {
			s.review = s.deps.Scheduler.State(p.ID)
		}
		return
	}
	s.graded[p.ID] = true

	if s.deps.Scheduler != nil {
		rs, err := s.deps.Scheduler.Record(ctx, p.ID, res.Utterance, now)
		if err != nil {
			slog.Warn("failed to save review state", "phrase", p.ID, "err", err)
		}
		s.review = rs
	}

	if s.deps.Rewards != nil {
		awards, err := s.deps.Rewards.Record(ctx, p.ID, res.Utterance)
		if err != nil {
			slog.Warn("failed to save rewards", "phrase", p.ID, "err", err)
		}
		s.awards = awards
	}
}

func (s *PracticeScreen) handleRetry() (screen.Screen, tea.Cmd) {
	if s.tracker == nil {
		return s, nil
	}
	s.startPhrase()
	return s, s.input.Init()
}

func (s *PracticeScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.tracker == nil {
		return s, nil
	}
	s.index++
	if s.index >= len(s.deps.Phrases) {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	s.startPhrase()
	return s, s.input.Init()
}

func (s *PracticeScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	sum := &summary.Summary{
		Duration: s.now().Sub(s.started),
		Results:  s.results,
	}
	if s.deps.Rewards != nil {
		sum.BestStreak = s.deps.Rewards.BestSessionStreak()
		sum.GemsEarned = s.deps.Rewards.SessionGems()
		sum.Awards = s.deps.Rewards.SessionAwards
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, summary.Repos{Attempts: s.deps.Attempts, Rewards: s.deps.RewardRepo})}
	}
}
