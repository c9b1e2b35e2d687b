// Package layout draws the chrome around the active screen: a header with
// the session's gems and streak, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprechen/internal/ui/theme"
)

// Practice sentences and the word table need this much room.
const (
	MinWidth  = 72
	MinHeight = 20

	// Below this height screens drop secondary detail such as the
	// per-word table.
	compactHeight = 30
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactHeight reports whether screens should drop secondary detail.
func IsCompactHeight(height int) bool {
	return height < compactHeight
}

// Chrome is everything drawn around a screen.
type Chrome struct {
	Title  string
	Gems   int
	Streak int
	Hints  []KeyHint
}

// Render draws the chrome at the given terminal size and fills the space
// between header and footer with body, which receives that space's size.
func (c Chrome) Render(width, height int, body func(width, height int) string) string {
	if width < MinWidth || height < MinHeight {
		return tooSmall(width, height)
	}

	header := c.header(width)
	footer := c.footer(width)
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body(width, bodyHeight))
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

func (c Chrome) header(width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Sprechen")
	title := lipgloss.NewStyle().Foreground(theme.Text).Render(c.Title)
	stats := lipgloss.NewStyle().Foreground(theme.Accent).
		Render(fmt.Sprintf("◆ %d   ⚡ %d", c.Gems, c.Streak))

	// Center the title on the bar, keeping at least one space to either side.
	inner := width - 4
	bw, tw, sw := lipgloss.Width(brand), lipgloss.Width(title), lipgloss.Width(stats)
	left := max((inner-tw)/2-bw, 1)
	right := max(inner-bw-left-tw-sw, 1)

	return bar(width).Render(brand + strings.Repeat(" ", left) + title + strings.Repeat(" ", right) + stats)
}

func (c Chrome) footer(width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(c.Hints))
	for i, h := range c.Hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return bar(width).Render(strings.Join(parts, "   "))
}

func tooSmall(width, height int) string {
	msg := fmt.Sprintf("Das Fenster ist zu klein.\n\nNeeds %d×%d, have %d×%d.",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}
