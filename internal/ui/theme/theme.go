// Package theme holds the palette and the styles that color scored words.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprechen/internal/similarity"
)

// Palette. The chrome stays muted so word colors carry the feedback.
var (
	Primary   = lipgloss.Color("#6366F1")
	Secondary = lipgloss.Color("#14B8A6")
	Accent    = lipgloss.Color("#F59E0B")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")

	// Feedback colors, one per word class.
	Success = lipgloss.Color("#22C55E")
	Warning = lipgloss.Color("#EAB308")
	Error   = lipgloss.Color("#F43F5E")
)

// Verdict styles for a whole utterance.
var (
	Correct   = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// Word styles. Incorrect words are underlined and extra words struck
// through so the feedback survives terminals without color.
var (
	WordExtra   = lipgloss.NewStyle().Foreground(TextDim).Strikethrough(true)
	WordPending = lipgloss.NewStyle().Foreground(TextDim)

	wordStyles = map[similarity.Class]lipgloss.Style{
		similarity.ClassCorrect:   lipgloss.NewStyle().Foreground(Success).Bold(true),
		similarity.ClassSimilar:   lipgloss.NewStyle().Foreground(Warning),
		similarity.ClassIncorrect: lipgloss.NewStyle().Foreground(Error).Underline(true),
		similarity.ClassExtra:     WordExtra,
	}
)

// WordStyle returns the style for a scored word class. Words not yet
// spoken render as WordPending.
func WordStyle(c similarity.Class) lipgloss.Style {
	if s, ok := wordStyles[c]; ok {
		return s
	}
	return WordPending
}

// ScoreColor picks the bar color for an utterance score, using the same
// thresholds as word classification.
func ScoreColor(score int) color.Color {
	switch {
	case score >= similarity.CorrectThreshold:
		return Success
	case score >= similarity.SimilarThreshold:
		return Warning
	}
	return Error
}
