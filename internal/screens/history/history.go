// Package history lists recent attempts and, on request, what was heard
// for each word of the selected one.
package history

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/sprechen/internal/screen"
	"github.com/abhisek/sprechen/internal/similarity"
	"github.com/abhisek/sprechen/internal/store"
	"github.com/abhisek/sprechen/internal/ui/components"
	"github.com/abhisek/sprechen/internal/ui/layout"
	"github.com/abhisek/sprechen/internal/ui/theme"
)

const historyLimit = 50

type loadedMsg struct {
	attempts []store.AttemptRecord
	err      error
}

type HistoryScreen struct {
	repo     store.AttemptRepo
	attempts []store.AttemptRecord
	loaded   bool
	err      error

	selected  int
	showWords bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

func New(repo store.AttemptRepo) *HistoryScreen {
	return &HistoryScreen{repo: repo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		attempts, err := s.repo.RecentAttempts(context.Background(), store.QueryOpts{Limit: historyLimit})
		return loadedMsg{attempts: attempts, err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Words"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.attempts, s.err, s.loaded = msg.attempts, msg.err, true

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.selected = max(s.selected-1, 0)
		case "down", "j":
			s.selected = max(min(s.selected+1, len(s.attempts)-1), 0)
		case "enter":
			s.showWords = !s.showWords
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	switch {
	case s.err != nil:
		return components.Notice(width, theme.Error, "Could not load history: "+s.err.Error())
	case !s.loaded:
		return components.Notice(width, theme.TextDim, "Loading history...")
	case len(s.attempts) == 0:
		return components.Notice(width, theme.TextDim, "No attempts yet. Start practicing!")
	}

	var words string
	if s.showWords {
		words = wordTable(s.attempts[s.selected])
	}
	// Header and borders take four lines.
	rows := max(height-lipgloss.Height(words)-5, 3)

	out := lipgloss.PlaceHorizontal(width, lipgloss.Center, s.attemptTable(rows).Render())
	if words != "" {
		out += "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, words)
	}
	return "\n" + out
}

// attemptTable shows a window of at most rows attempts that keeps the
// selection in view.
func (s *HistoryScreen) attemptTable(rows int) *table.Table {
	start := max(s.selected-rows+1, 0)
	end := min(start+rows, len(s.attempts))
	window := s.attempts[start:end]

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("", "When", "Phrase", "Score", "Took").
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return st.Foreground(theme.TextDim)
			}
			st = st.Foreground(theme.ScoreColor(window[row].Score))
			if start+row == s.selected {
				st = st.Bold(true)
			}
			return st
		})

	for i, a := range window {
		marker := " "
		if start+i == s.selected {
			marker = "›"
		}
		t.Row(marker,
			a.Timestamp.Local().Format("Jan 02 15:04"),
			clip(a.Expected, 40),
			strconv.Itoa(a.Score)+"%",
			fmt.Sprintf("%.1fs", a.Duration.Seconds()))
	}
	return t
}

// wordTable lines up what was expected and heard for each word, colored
// like live feedback.
func wordTable(a store.AttemptRecord) string {
	expectedLen := 0
	for _, w := range a.Words {
		if w.Expected != "" {
			expectedLen++
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Expected", "Heard", "Score").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1)
			}
			class := similarity.Classify(row, expectedLen, a.Words[row].Score)
			return theme.WordStyle(class).Padding(0, 1)
		})
	for _, w := range a.Words {
		t.Row(w.Expected, w.Spoken, strconv.Itoa(w.Score)+"%")
	}

	heard := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render(fmt.Sprintf("heard: %q", a.Transcript))
	return lipgloss.JoinVertical(lipgloss.Center, heard, t.Render())
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}
