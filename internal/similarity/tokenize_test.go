package similarity

import (
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	got := Tokenize("Ich gehe zur Schule.")
	want := []WordToken{
		{"Ich", true}, {" ", false},
		{"gehe", true}, {" ", false},
		{"zur", true}, {" ", false},
		{"Schule", true}, {".", false},
	}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTokenize_Joiners(t *testing.T) {
	tests := []struct {
		input string
		words []string
	}{
		{"Wie geht's?", []string{"Wie", "geht's"}},
		{"Schreib mir eine E-Mail!", []string{"Schreib", "mir", "eine", "E-Mail"}},
		{"Das ist - glaube ich - gut", []string{"Das", "ist", "glaube", "ich", "gut"}},
		{"'Hallo'", []string{"Hallo"}},
	}

	for _, tc := range tests {
		got := SplitWords(tc.input)
		if strings.Join(got, "|") != strings.Join(tc.words, "|") {
			t.Errorf("SplitWords(%q) = %q, want %q", tc.input, got, tc.words)
		}
	}
}

func TestTokenize_Reconstructs(t *testing.T) {
	inputs := []string{
		"",
		" Hallo",
		"Grüße aus München!",
		"  Wie   geht es dir?  ",
		"Um 8 Uhr, bitte.",
	}
	for _, in := range inputs {
		var b strings.Builder
		for _, tok := range Tokenize(in) {
			b.WriteString(tok.Text)
		}
		if b.String() != in {
			t.Errorf("Tokenize(%q) reconstructs to %q", in, b.String())
		}
	}
}

func TestTokenize_Empty(t *testing.T) {
	if got := Tokenize(""); got != nil {
		t.Errorf("Tokenize(\"\") = %+v, want nil", got)
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"  Hallo,  Welt! ", []string{"Hallo", "Welt"}},
		{"Grüße aus München", []string{"Grüße", "aus", "München"}},
		{"Um 8 Uhr.", []string{"Um", "8", "Uhr"}},
		{"...", []string{}},
		{"", []string{}},
	}

	for _, tc := range tests {
		got := SplitWords(tc.input)
		if got == nil {
			t.Errorf("SplitWords(%q) returned nil, want non-nil", tc.input)
			continue
		}
		if strings.Join(got, "|") != strings.Join(tc.want, "|") || len(got) != len(tc.want) {
			t.Errorf("SplitWords(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
