package summary

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/sprechen/internal/deck"
	"github.com/abhisek/sprechen/internal/rewards"
	"github.com/abhisek/sprechen/internal/router"
	"github.com/abhisek/sprechen/internal/screen"
	"github.com/abhisek/sprechen/internal/screens/gemvault"
	"github.com/abhisek/sprechen/internal/screens/history"
	"github.com/abhisek/sprechen/internal/store"
	"github.com/abhisek/sprechen/internal/ui/components"
	"github.com/abhisek/sprechen/internal/ui/layout"
	"github.com/abhisek/sprechen/internal/ui/theme"
)

// Result is the outcome of one attempt in a session.
type Result struct {
	Phrase deck.Phrase
	Score  int
	Passed bool
}

// Summary aggregates a finished practice session.
type Summary struct {
	Duration   time.Duration
	Results    []Result
	BestStreak int
	GemsEarned int
	Awards     []rewards.Award
}

// Attempts returns the number of attempts made.
func (s *Summary) Attempts() int {
	return len(s.Results)
}

// Passed returns the number of passing attempts.
func (s *Summary) Passed() int {
	n := 0
	for _, r := range s.Results {
		if r.Passed {
			n++
		}
	}
	return n
}

// AverageScore returns the mean utterance score, 0 with no attempts.
func (s *Summary) AverageScore() float64 {
	if len(s.Results) == 0 {
		return 0
	}
	total := 0
	for _, r := range s.Results {
		total += r.Score
	}
	return float64(total) / float64(len(s.Results))
}

// Repos gives the summary access to stored progress. A nil repo hides
// the screen that reads it.
type Repos struct {
	Attempts store.AttemptRepo
	Rewards  store.RewardRepo
}

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *Summary
	repos   Repos
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *Summary, repos Repos) *SummaryScreen {
	return &SummaryScreen{summary: summary, repos: repos}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Finish"},
		{Key: "Esc", Description: "Quit"},
	}
	if s.repos.Attempts != nil {
		hints = append(hints, layout.KeyHint{Key: "H", Description: "History"})
	}
	if s.repos.Rewards != nil {
		hints = append(hints, layout.KeyHint{Key: "G", Description: "Gems"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		case "h", "H":
			if s.repos.Attempts != nil {
				return s, push(history.New(s.repos.Attempts))
			}
		case "g", "G":
			if s.repos.Rewards != nil {
				return s, push(gemvault.New(s.repos.Rewards))
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := []string{
		center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Session complete!")),
		"",
		center(dim.Render(fmt.Sprintf("Duration: %d:%02d",
			int(sum.Duration.Minutes()), int(sum.Duration.Seconds())%60))),
		"",
		center(fmt.Sprintf("Attempts: %d  ·  Passed: %d  ·  Best streak: %d  ·  Gems: +%d",
			sum.Attempts(), sum.Passed(), sum.BestStreak, sum.GemsEarned)),
		"",
		center(components.NewScoreBar("Average", int(sum.AverageScore()+0.5), min(width-8, 60)).View()),
	}
	if len(sum.Results) > 0 {
		parts = append(parts, "", center(resultTable(sum.Results).Render()))
	}
	if len(sum.Awards) > 0 {
		parts = append(parts, "", center(awardTable(sum.Awards).Render()))
	}
	return strings.Join(parts, "\n")
}

func resultTable(results []Result) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("", "Phrase", "Score").
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return st.Foreground(theme.TextDim)
			}
			return st.Foreground(theme.ScoreColor(results[row].Score))
		})
	for _, r := range results {
		mark := "✗"
		if r.Passed {
			mark = "✓"
		}
		t.Row(mark, clip(r.Phrase.Text, 44), strconv.Itoa(r.Score)+"%")
	}
	return t
}

func awardTable(awards []rewards.Award) *table.Table {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1).Foreground(gemvault.RarityColor(awards[row].Rarity))
		})
	for _, a := range awards {
		t.Row(a.Kind.Icon()+" "+a.Rarity.DisplayName()+" "+a.Kind.DisplayName(),
			fmt.Sprintf("+%d ◆", a.Gems), a.Reason)
	}
	return t
}

func push(next screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func clip(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n-1]) + "…"
	}
	return s
}
