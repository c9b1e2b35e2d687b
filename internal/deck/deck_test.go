package deck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuiltin(t *testing.T) {
	d, err := Builtin()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, d.Len(), 30)
	assert.Contains(t, d.Topics(), "alltag")
	assert.Contains(t, d.Topics(), "essen")

	for _, p := range d.Phrases() {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Text)
		assert.GreaterOrEqual(t, p.Level.Rank(), 0, "phrase %q has unknown level", p.Text)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"A1", LevelA1, false},
		{"b2", LevelB2, false},
		{" c1 ", LevelC1, false},
		{"D1", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPhraseID_Stable(t *testing.T) {
	a := PhraseID("Ich gehe  zur Schule.")
	b := PhraseID("ich gehe zur schule.")
	c := PhraseID("Ich gehe nach Hause.")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestNew_Normalizes(t *testing.T) {
	d, err := New("test", []Phrase{
		{Text: "  Hallo!  ", Topic: " Begruessung "},
	})
	require.NoError(t, err)

	p := d.Phrases()[0]
	assert.Equal(t, "Hallo!", p.Text)
	assert.Equal(t, "begruessung", p.Topic)
	assert.Equal(t, LevelA1, p.Level)
	assert.Equal(t, PhraseID("Hallo!"), p.ID)

	got, ok := d.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, p, got)
}

func TestNew_Rejects(t *testing.T) {
	_, err := New("dup", []Phrase{
		{Text: "Hallo!"},
		{Text: "hallo!"},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 1, verr.Index)

	_, err = New("empty", []Phrase{{Text: "   "}})
	require.ErrorAs(t, err, &verr)

	_, err = New("level", []Phrase{{Text: "Hallo", Level: "Z9"}})
	require.ErrorAs(t, err, &verr)
}

func TestFilter(t *testing.T) {
	d, err := New("test", []Phrase{
		{Text: "Guten Morgen!", Topic: "begruessung", Level: LevelA1},
		{Text: "Die Rechnung, bitte.", Topic: "essen", Level: LevelA1},
		{Text: "Ich esse kein Fleisch.", Topic: "essen", Level: LevelB1},
	})
	require.NoError(t, err)

	assert.Len(t, d.Filter("", ""), 3)
	assert.Len(t, d.Filter("essen", ""), 2)
	assert.Len(t, d.Filter("ESSEN", LevelB1), 1)
	assert.Len(t, d.Filter("", LevelA1), 2)
	assert.Empty(t, d.Filter("reisen", ""))
	assert.Equal(t, []string{"begruessung", "essen"}, d.Topics())
}

func TestMerge(t *testing.T) {
	a, err := New("a", []Phrase{{Text: "Eins."}, {Text: "Zwei."}})
	require.NoError(t, err)
	b, err := New("b", []Phrase{{Text: "Zwei."}, {Text: "Drei."}})
	require.NoError(t, err)

	assert.Equal(t, 1, a.Merge(b))
	assert.Equal(t, 3, a.Len())
}

func TestLoadFromReader_UnknownField(t *testing.T) {
	src := `
deck:
  name: test
phrases:
  - text: "Hallo"
    colour: red
`
	_, err := LoadFromReader(strings.NewReader(src))
	require.Error(t, err)
}

func TestSaveFile_LoadFile(t *testing.T) {
	d, err := New("eigene", []Phrase{
		{Text: "Wo ist die Apotheke?", Translation: "Where is the pharmacy?", Topic: "reisen", Level: LevelA2},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, SaveFile(path, d))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "eigene", loaded.Name)
	assert.Equal(t, d.Phrases(), loaded.Phrases())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestImportSpreadsheet_CSV(t *testing.T) {
	src := "text,translation,topic,level\n" +
		"Guten Abend!,Good evening!,begruessung,A1\n" +
		",,,\n" +
		"Ich bin müde.,I'm tired.,,\n" +
		"Falsches Level,Wrong level,alltag,Z3\n" +
		"guten abend!,duplicate,begruessung,A1\n"
	path := filepath.Join(t.TempDir(), "phrasen.csv")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	res, err := ImportSpreadsheet(path, DefaultImportConfig())
	require.NoError(t, err)

	assert.Equal(t, 4, res.Processed)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 2, res.Skipped)
	assert.Len(t, res.Errors, 2)
	assert.Equal(t, "phrasen", res.Deck.Name)

	phrases := res.Deck.Phrases()
	require.Len(t, phrases, 2)
	assert.Equal(t, "import", phrases[1].Topic)
	assert.Equal(t, LevelA1, phrases[1].Level)
}

func TestImportSpreadsheet_XLSX(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]any{
		{"Text", "Translation", "Topic", "Level"},
		{"Wo ist der Bahnhof?", "Where is the station?", "reisen", "a1"},
		{"Ich hätte gern ein Wasser.", "I'd like a water.", "essen", "A2"},
	}
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cellName, &row))
	}
	path := filepath.Join(t.TempDir(), "reise.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	res, err := ImportSpreadsheet(path, DefaultImportConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Empty(t, res.Errors)

	phrases := res.Deck.Phrases()
	assert.Equal(t, LevelA1, phrases[0].Level)
	assert.Equal(t, "essen", phrases[1].Topic)
}

func TestImportSpreadsheet_Unsupported(t *testing.T) {
	_, err := ImportSpreadsheet("phrasen.txt", DefaultImportConfig())
	require.Error(t, err)
}
