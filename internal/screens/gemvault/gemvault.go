// Package gemvault shows every stored award, one tab per award kind.
package gemvault

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/sprechen/internal/rewards"
	"github.com/abhisek/sprechen/internal/screen"
	"github.com/abhisek/sprechen/internal/store"
	"github.com/abhisek/sprechen/internal/ui/components"
	"github.com/abhisek/sprechen/internal/ui/layout"
	"github.com/abhisek/sprechen/internal/ui/theme"
)

type loadedMsg struct {
	awards []rewards.Award
	err    error
}

type GemVaultScreen struct {
	repo   store.RewardRepo
	loaded bool
	err    error

	byKind map[rewards.Kind][]rewards.Award
	count  int
	gems   int

	tab    int // index into rewards.AllKinds
	offset int // first visible award of the tab
}

var _ screen.Screen = (*GemVaultScreen)(nil)
var _ screen.KeyHintProvider = (*GemVaultScreen)(nil)

func New(repo store.RewardRepo) *GemVaultScreen {
	return &GemVaultScreen{repo: repo}
}

func (s *GemVaultScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.repo.QueryAwards(context.Background(), store.QueryOpts{})
		if err != nil {
			return loadedMsg{err: err}
		}
		awards := make([]rewards.Award, len(records))
		for i, rec := range records {
			awards[i] = rewards.FromRecord(rec)
		}
		return loadedMsg{awards: awards}
	}
}

func (s *GemVaultScreen) Title() string {
	return "Gem Vault"
}

func (s *GemVaultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next kind"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *GemVaultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded, s.err = true, msg.err
		s.byKind = make(map[rewards.Kind][]rewards.Award)
		for _, a := range msg.awards {
			s.byKind[a.Kind] = append(s.byKind[a.Kind], a)
			s.gems += a.Gems
		}
		s.count = len(msg.awards)

	case tea.KeyMsg:
		n := len(rewards.AllKinds())
		switch msg.String() {
		case "tab":
			s.tab, s.offset = (s.tab+1)%n, 0
		case "shift+tab":
			s.tab, s.offset = (s.tab+n-1)%n, 0
		case "up", "k":
			s.offset = max(s.offset-1, 0)
		case "down", "j":
			s.offset = max(min(s.offset+1, len(s.current())-1), 0)
		}
	}
	return s, nil
}

func (s *GemVaultScreen) current() []rewards.Award {
	return s.byKind[rewards.AllKinds()[s.tab]]
}

func (s *GemVaultScreen) View(width, height int) string {
	if s.err != nil {
		return components.Notice(width, theme.Error, "Could not load awards: "+s.err.Error())
	}
	if !s.loaded {
		return components.Notice(width, theme.TextDim, "Loading gems...")
	}

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}
	parts := []string{
		"",
		center(lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("Total: %d ◆ from %d awards", s.gems, s.count))),
		"",
		center(s.tabs()),
		"",
	}

	awards := s.current()
	if len(awards) == 0 {
		parts = append(parts, components.Notice(width, theme.TextDim, "No awards of this kind yet"))
		return strings.Join(parts, "\n")
	}

	// Tabs, totals and table chrome take about ten lines.
	visible := max(height-10, 3)
	end := min(s.offset+visible, len(awards))
	parts = append(parts, center(awardTable(awards[s.offset:end]).Render()))
	if rest := len(awards) - end; rest > 0 {
		parts = append(parts, center(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", rest))))
	}
	return strings.Join(parts, "\n")
}

func (s *GemVaultScreen) tabs() string {
	labels := make([]string, 0, len(rewards.AllKinds()))
	for i, k := range rewards.AllKinds() {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.tab {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
		}
		labels = append(labels, style.Render(fmt.Sprintf("%s %s (%d)", k.Icon(), k.DisplayName(), len(s.byKind[k]))))
	}
	return strings.Join(labels, "     ")
}

func awardTable(awards []rewards.Award) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Rarity", "Why", "Gems", "Earned").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(RarityColor(awards[row].Rarity)).Padding(0, 1)
		})
	for _, a := range awards {
		t.Row(a.Rarity.DisplayName(), a.Reason, "+"+strconv.Itoa(a.Gems)+" ◆",
			a.AwardedAt.Local().Format("Jan 02, 2006"))
	}
	return t
}

// RarityColor is the theme color awards of rarity r are drawn in.
func RarityColor(r rewards.Rarity) color.Color {
	switch r {
	case rewards.RarityRare:
		return theme.Secondary
	case rewards.RarityEpic:
		return theme.Primary
	case rewards.RarityLegendary:
		return theme.Accent
	}
	return theme.Text
}
