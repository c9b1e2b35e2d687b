package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprechen/internal/similarity"
	"github.com/abhisek/sprechen/internal/transcript"
	"github.com/abhisek/sprechen/internal/ui/components"
	"github.com/abhisek/sprechen/internal/ui/layout"
	"github.com/abhisek/sprechen/internal/ui/theme"
)

// renderPhraseView renders the phrase with live word coloring.
func (s *PracticeScreen) renderPhraseView(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(center(width, renderWords(s.feedback, true)))
	b.WriteString("\n")

	if p, ok := s.Phrase(); ok && p.Translation != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(p.Translation))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(center(width, s.input.View()))
	b.WriteString("\n\n")

	if s.feedback.Transcript != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Words so far: %d%%", s.feedback.Overall)))
	}

	return b.String()
}

func (s *PracticeScreen) renderInfoLine(width int) string {
	p, _ := s.Phrase()

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", p.Level, p.Topic))

	passed := 0
	for _, r := range s.results {
		if r.Passed {
			passed++
		}
	}
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Phrase %d/%d  %s %d",
			s.index+1,
			len(s.deps.Phrases),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			passed,
		))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

// renderResult shows the completed utterance: colored words, the utterance
// score bar, the per-word breakdown and anything earned.
func (s *PracticeScreen) renderResult(width, height int) string {
	res := s.result

	var b strings.Builder
	b.WriteString("\n")

	if res.Passed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Sehr gut!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Noch einmal üben"))
	}
	b.WriteString("\n\n")

	b.WriteString(center(width, renderWords(res.Feedback, false)))
	b.WriteString("\n\n")

	bar := components.NewScoreBar("Score", res.Utterance, min(width-8, 60))
	b.WriteString(center(width, bar.View()))
	b.WriteString("\n\n")

	if !layout.IsCompactHeight(height) {
		if table := renderWordTable(res.Marks); table != "" {
			b.WriteString(center(width, table))
			b.WriteString("\n\n")
		}
	}

	if s.review != nil {
		note := fmt.Sprintf("Next review in %d day(s)", s.review.IntervalDays)
		if s.extra {
			note = "Extra try, review already counted. " + note
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(note))
		b.WriteString("\n")
	}

	for _, a := range s.awards {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("%s %s  +%d ◆", a.Kind.Icon(), a.Reason, a.Gems)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderWords colors the expected sentence by the class of each position.
// While listening, positions the learner has not reached are dimmed.
func renderWords(fb transcript.Feedback, live bool) string {
	parts := make([]string, 0, len(fb.Marks))
	for _, m := range fb.Marks {
		if m.Class == similarity.ClassExtra {
			parts = append(parts, theme.WordExtra.Render(m.Spoken))
			continue
		}
		if live && m.Spoken == "" {
			parts = append(parts, theme.WordPending.Render(m.Expected))
			continue
		}
		word := m.Expected
		if m.SoundsAlike {
			word += "~"
		}
		parts = append(parts, theme.WordStyle(m.Class).Render(word))
	}
	return strings.Join(parts, " ")
}

// renderWordTable lists the positions that were not correct.
func renderWordTable(marks []transcript.Mark) string {
	var b strings.Builder
	for _, m := range marks {
		if m.Class == similarity.ClassCorrect {
			continue
		}
		spoken := m.Spoken
		if spoken == "" {
			spoken = "—"
		}
		expected := m.Expected
		if expected == "" {
			expected = "(extra)"
		}
		line := fmt.Sprintf("%-16s %-16s %3d%%", expected, spoken, m.Score)
		if m.SoundsAlike {
			line += "  sounds alike"
		}
		b.WriteString(theme.WordStyle(m.Class).Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress will be saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderEmpty is shown when nothing is due and nothing is new.
func renderEmpty(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Nothing to practice right now.\n\n  Come back when reviews are due, or import more phrases.")
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
