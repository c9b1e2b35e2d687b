package similarity

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Straße", "strasse"},
		{"MÜNCHEN", "münchen"},
		{"Mu\u0308nchen", "münchen"},
		{"Hallo", "hallo"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := Fold(tc.input); got != tc.want {
			t.Errorf("Fold(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFold_OptIn(t *testing.T) {
	// Raw comparison keeps ß and ss apart.
	if got := ScoreWord("Straße", "Strasse"); got == 100 {
		t.Errorf("ScoreWord without folding = %d, want < 100", got)
	}
	if got := ScoreWord(Fold("Straße"), Fold("Strasse")); got != 100 {
		t.Errorf("ScoreWord with folding = %d, want 100", got)
	}

	// Decomposed umlauts only match after folding.
	if got := ScoreWord("Mu\u0308nchen", "München"); got == 100 {
		t.Errorf("ScoreWord decomposed without folding = %d, want < 100", got)
	}
	if got := ScoreWord(Fold("Mu\u0308nchen"), Fold("München")); got != 100 {
		t.Errorf("ScoreWord decomposed with folding = %d, want 100", got)
	}
}

func TestFoldAll(t *testing.T) {
	in := []string{"Straße", "Fuß"}
	got := FoldAll(in)
	if got[0] != "strasse" || got[1] != "fuss" {
		t.Errorf("FoldAll = %q", got)
	}
	if in[0] != "Straße" {
		t.Error("FoldAll modified its input")
	}
}

func TestSoundsAlike(t *testing.T) {
	tests := []struct {
		expected, spoken string
		want             bool
	}{
		{"Haus", "Hauss", true},
		{"mit", "mit", true},
		{"Haus", "Katze", false},
		{"", "Haus", false},
		{"Haus", "", false},
	}

	for _, tc := range tests {
		if got := SoundsAlike(tc.expected, tc.spoken); got != tc.want {
			t.Errorf("SoundsAlike(%q, %q) = %v, want %v", tc.expected, tc.spoken, got, tc.want)
		}
	}
}
