package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestChrome_Render(t *testing.T) {
	c := Chrome{
		Title:  "Practice",
		Gems:   12,
		Streak: 3,
		Hints:  []KeyHint{{Key: "Enter", Description: "Done speaking"}},
	}

	var gotW, gotH int
	out := c.Render(90, 30, func(w, h int) string {
		gotW, gotH = w, h
		return "Ich gehe heute in die Schule."
	})

	for _, want := range []string{"Sprechen", "Practice", "◆ 12", "⚡ 3", "Enter", "Done speaking", "Schule"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
	if gotW != 90 {
		t.Errorf("body width = %d, want 90", gotW)
	}
	// Header and footer are three lines each.
	if gotH != 24 {
		t.Errorf("body height = %d, want 24", gotH)
	}
	if h := lipgloss.Height(out); h != 30 {
		t.Errorf("frame height = %d, want 30", h)
	}
}

func TestChrome_TooSmall(t *testing.T) {
	called := false
	out := Chrome{Title: "Practice"}.Render(60, 15, func(int, int) string {
		called = true
		return ""
	})
	if called {
		t.Error("body rendered below the minimum size")
	}
	if !strings.Contains(out, "zu klein") || !strings.Contains(out, "72×20") {
		t.Errorf("unexpected message:\n%s", out)
	}
}

func TestIsCompactHeight(t *testing.T) {
	if !IsCompactHeight(24) || IsCompactHeight(40) {
		t.Error("compact threshold misplaced")
	}
}
