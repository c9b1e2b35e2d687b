package similarity

import "testing"

func TestScoreWord(t *testing.T) {
	tests := []struct {
		expected string
		spoken   string
		want     int
	}{
		{"Hallo", "Hallo", 100},
		{"HALLO", "hallo", 100},
		{" Hallo ", "hallo", 100},
		{"Schule", "Schul", 75},
		{"zur", "zu", 75},
		{"ab", "abc", 75},
		{"Hallo", "Hallp", 80},
		{"Hallo", "Xyzzy", 0},
		{"Haus", "Maus", 75},
		{"gehen", "geben", 80},
		{"abc", "abd", 67},
		{"abcdefgh", "axxxxxxx", 13},
		{"über", "uber", 75},
		{"ß", "ss", 0},
		{"", "", 100},
		{"", "abc", 0},
		{"abc", "", 0},
	}

	for _, tc := range tests {
		got := ScoreWord(tc.expected, tc.spoken)
		if got != tc.want {
			t.Errorf("ScoreWord(%q, %q) = %d, want %d", tc.expected, tc.spoken, got, tc.want)
		}
	}
}

func TestScoreWord_Identity(t *testing.T) {
	words := []string{"", "a", "Hallo", "Straße", "München", "E-Mail", "geht's", "12"}
	for _, w := range words {
		if got := ScoreWord(w, w); got != 100 {
			t.Errorf("ScoreWord(%q, %q) = %d, want 100", w, w, got)
		}
	}
}

func TestScoresBounded(t *testing.T) {
	inputs := []string{"", "a", "Hallo", "Hallp", "Xyzzy", "Straße", "strasse", "ä", "ö ü", "Guten Morgen!", "x y z"}
	for _, a := range inputs {
		for _, b := range inputs {
			if s := ScoreWord(a, b); s < 0 || s > 100 {
				t.Errorf("ScoreWord(%q, %q) = %d, out of range", a, b, s)
			}
			if s := LevenshteinSimilarity(a, b); s < 0 || s > 100 {
				t.Errorf("LevenshteinSimilarity(%q, %q) = %d, out of range", a, b, s)
			}
			if s := CompareSentences(a, b).Overall; s < 0 || s > 100 {
				t.Errorf("CompareSentences(%q, %q) = %d, out of range", a, b, s)
			}
		}
	}
}

func TestScoreSentence_ManualAverage(t *testing.T) {
	expected := []string{"Ich", "gehe", "zur", "Schule"}
	spoken := []string{"Ich", "gehe", "zu", "Schule"}

	got := ScoreSentence(expected, spoken)

	wantPerWord := []int{100, 100, 75, 100}
	if len(got.PerWord) != len(wantPerWord) {
		t.Fatalf("len(PerWord) = %d, want %d", len(got.PerWord), len(wantPerWord))
	}
	for i, want := range wantPerWord {
		if got.PerWord[i].Score != want {
			t.Errorf("PerWord[%d].Score = %d, want %d", i, got.PerWord[i].Score, want)
		}
	}
	// (100+100+75+100)/4 = 93.75
	if got.Overall != 94 {
		t.Errorf("Overall = %d, want 94", got.Overall)
	}
}

func TestScoreSentence_ExtraWord(t *testing.T) {
	expected := SplitWords("Wie geht es dir")
	spoken := SplitWords("Wie geht es dir heute")

	got := ScoreSentence(expected, spoken)
	if got.Overall != 80 {
		t.Errorf("Overall = %d, want 80", got.Overall)
	}
	if len(got.PerWord) != 5 {
		t.Fatalf("len(PerWord) = %d, want 5", len(got.PerWord))
	}

	classes := got.Classes(len(expected))
	for i := range 4 {
		if got.PerWord[i].Score != 100 {
			t.Errorf("PerWord[%d].Score = %d, want 100", i, got.PerWord[i].Score)
		}
		if classes[i] != ClassCorrect {
			t.Errorf("classes[%d] = %q, want correct", i, classes[i])
		}
	}
	if got.PerWord[4].Expected != "" || got.PerWord[4].Spoken != "heute" {
		t.Errorf("PerWord[4] = %+v, want empty expected and spoken heute", got.PerWord[4])
	}
	if classes[4] != ClassExtra {
		t.Errorf("classes[4] = %q, want extra", classes[4])
	}
}

func TestScoreSentence_NothingSpoken(t *testing.T) {
	got := CompareSentences("Guten Morgen", "")
	if got.Overall != 0 {
		t.Errorf("Overall = %d, want 0", got.Overall)
	}
	if len(got.PerWord) != 2 {
		t.Fatalf("len(PerWord) = %d, want 2", len(got.PerWord))
	}
	for i, ws := range got.PerWord {
		if ws.Score != 0 {
			t.Errorf("PerWord[%d].Score = %d, want 0", i, ws.Score)
		}
	}
}

func TestScoreSentence_Empty(t *testing.T) {
	got := ScoreSentence(nil, nil)
	if got.Overall != 100 {
		t.Errorf("both empty: Overall = %d, want 100", got.Overall)
	}
	if len(got.PerWord) != 0 {
		t.Errorf("both empty: len(PerWord) = %d, want 0", len(got.PerWord))
	}

	got = ScoreSentence(nil, []string{"hallo", "welt"})
	if got.Overall != 0 {
		t.Errorf("expected empty: Overall = %d, want 0", got.Overall)
	}
}

func TestCompareSentences_IgnoresCaseAndPunctuation(t *testing.T) {
	got := CompareSentences("Ich gehe zur Schule.", "ich gehe zur schule")
	if got.Overall != 100 {
		t.Errorf("Overall = %d, want 100", got.Overall)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		index, expectedLen, score int
		want                      Class
	}{
		{0, 4, 100, ClassCorrect},
		{0, 4, 90, ClassCorrect},
		{1, 4, 89, ClassSimilar},
		{2, 4, 75, ClassSimilar},
		{2, 4, 70, ClassSimilar},
		{3, 4, 69, ClassIncorrect},
		{3, 4, 0, ClassIncorrect},
		{4, 4, 100, ClassExtra},
		{7, 4, 0, ClassExtra},
		{0, 0, 100, ClassExtra},
	}

	for _, tc := range tests {
		got := Classify(tc.index, tc.expectedLen, tc.score)
		if got != tc.want {
			t.Errorf("Classify(%d, %d, %d) = %q, want %q", tc.index, tc.expectedLen, tc.score, got, tc.want)
		}
	}
}
