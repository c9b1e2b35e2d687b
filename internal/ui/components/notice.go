package components

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Notice is a one-line centered message for a screen with nothing else to
// show yet: loading, empty or failed.
func Notice(width int, fg color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		MarginTop(2).
		Render(text)
}
