package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprechen/internal/similarity"
	"github.com/abhisek/sprechen/internal/transcript"
	"github.com/abhisek/sprechen/internal/ui/theme"
)

var scoreCmd = &cobra.Command{
	Use:   "score <expected> <spoken>",
	Short: "Score a spoken transcript against the expected sentence",
	Example: `  sprechen score "Ich gehe heute in die Schule." "ich gehe heute in die schul"
  sprechen score --fold --json "Die Straße ist lang." "die strasse ist lang"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fold, _ := cmd.Flags().GetBool("fold")
		asJSON, _ := cmd.Flags().GetBool("json")

		t := transcript.NewTracker(args[0], transcript.WithFolding(fold))
		t.Final(args[1])
		res := t.Complete()

		out := cmd.OutOrStdout()
		if asJSON {
			return writeScoreJSON(out, args[0], res)
		}
		writeScoreText(out, res)
		return nil
	},
}

func init() {
	scoreCmd.Flags().Bool("fold", false, "Treat ß/ss and case variants as equal")
	scoreCmd.Flags().Bool("json", false, "Print the result as JSON")
}

type scoreWordJSON struct {
	Expected    string           `json:"expected"`
	Spoken      string           `json:"spoken"`
	Score       int              `json:"score"`
	Class       similarity.Class `json:"class"`
	SoundsAlike bool             `json:"sounds_alike,omitempty"`
}

type scoreJSON struct {
	Expected   string          `json:"expected"`
	Transcript string          `json:"transcript"`
	Overall    int             `json:"overall"`
	Utterance  int             `json:"utterance"`
	Passed     bool            `json:"passed"`
	Words      []scoreWordJSON `json:"words"`
}

func writeScoreJSON(w io.Writer, expected string, res transcript.Result) error {
	doc := scoreJSON{
		Expected:   expected,
		Transcript: res.Transcript,
		Overall:    res.Overall,
		Utterance:  res.Utterance,
		Passed:     res.Passed,
		Words:      make([]scoreWordJSON, len(res.Marks)),
	}
	for i, m := range res.Marks {
		doc.Words[i] = scoreWordJSON{
			Expected:    m.Expected,
			Spoken:      m.Spoken,
			Score:       m.Score,
			Class:       m.Class,
			SoundsAlike: m.SoundsAlike,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeScoreText(w io.Writer, res transcript.Result) {
	words := make([]string, 0, len(res.Marks))
	for _, m := range res.Marks {
		word := m.Expected
		if m.Class == similarity.ClassExtra {
			word = "+" + m.Spoken
		}
		words = append(words, theme.WordStyle(m.Class).Render(word))
	}
	fmt.Fprintln(w, strings.Join(words, " "))
	fmt.Fprintln(w)

	for _, m := range res.Marks {
		line := fmt.Sprintf("  %-16s %-16s %3d%%  %s", m.Expected, m.Spoken, m.Score, m.Class)
		if m.SoundsAlike {
			line += " (sounds alike)"
		}
		fmt.Fprintln(w, theme.WordStyle(m.Class).Render(line))
	}
	fmt.Fprintln(w)

	verdict := theme.Incorrect.Render("not yet")
	if res.Passed {
		verdict = theme.Correct.Render("passed")
	}
	fmt.Fprintf(w, "Words:     %d%%\n", res.Overall)
	fmt.Fprintf(w, "Utterance: %d%% (%s)\n", res.Utterance, verdict)
}
