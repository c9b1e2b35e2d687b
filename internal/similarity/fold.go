package similarity

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold composes s to NFC and applies full Unicode case folding, which
// maps "ß" to "ss" and makes decomposed umlauts equal to precomposed ones.
//
// Scoring never folds on its own. Callers opt in by folding both sides
// before comparison.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// FoldAll returns a new slice with every word folded.
func FoldAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = Fold(w)
	}
	return out
}
