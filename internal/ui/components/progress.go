package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprechen/internal/ui/theme"
)

// ScoreBar draws a 0-100 score as a labeled bar colored by its grade.
type ScoreBar struct {
	Label string
	Score int
	Width int // total width, label and percentage included
}

func NewScoreBar(label string, score, width int) ScoreBar {
	return ScoreBar{Label: label, Score: min(max(score, 0), 100), Width: width}
}

func (b ScoreBar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render(b.Label) + "  "
	pct := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%4d%%", b.Score))

	cells := max(b.Width-lipgloss.Width(label)-lipgloss.Width(pct)-1, 4)
	filled := cells * b.Score / 100

	return label +
		lipgloss.NewStyle().Background(theme.ScoreColor(b.Score)).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", cells-filled)) +
		" " + pct
}
