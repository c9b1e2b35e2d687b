package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func TestScoreBar(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{87, "87%"},
		{100, "100%"},
		{-5, "0%"},
		{140, "100%"},
	}
	for _, tt := range tests {
		view := NewScoreBar("Score", tt.score, 50).View()
		if !strings.Contains(view, tt.want) {
			t.Errorf("score %d: view missing %q", tt.score, tt.want)
		}
		if w := lipgloss.Width(view); w != 50 {
			t.Errorf("score %d: width = %d, want 50", tt.score, w)
		}
	}
}

func TestTranscriptInput_FrozenAfterSubmit(t *testing.T) {
	in := NewTextInput("Sag den Satz...", 120)
	in, _ = in.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	in, _ = in.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if in.Value() != "ja" {
		t.Fatalf("Value() = %q, want ja", in.Value())
	}

	in.Submit(true)
	in, _ = in.Update(tea.KeyPressMsg{Code: '!', Text: "!"})
	if in.Value() != "ja" {
		t.Errorf("input changed after submit: %q", in.Value())
	}
	if !strings.Contains(in.View(), "✓") {
		t.Error("passed attempt not marked")
	}
}
