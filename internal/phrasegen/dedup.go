package phrasegen

import (
	"fmt"
	"strings"

	"github.com/abhisek/sprechen/internal/deck"
)

// DedupValidator rejects phrases the learner already has and repeats
// within one batch. Comparison ignores case and spacing.
type DedupValidator struct{}

func (v *DedupValidator) Name() string { return "dedup" }

func (v *DedupValidator) Validate(c Candidate, input Input, accepted []Candidate) *ValidationError {
	id := deck.PhraseID(c.Text)
	for _, p := range input.Prior {
		if deck.PhraseID(p) == id {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("%q is already known", c.Text)}
		}
	}
	for _, a := range accepted {
		if deck.PhraseID(a.Text) == id {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("%q repeats in the batch", c.Text)}
		}
	}
	return nil
}

// buildDedup formats prior phrases for the prompt, respecting the max limit.
// Returns "None" if there are no prior phrases.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}

	// Keep only the most recent N phrases.
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, p := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return strings.TrimRight(b.String(), "\n")
}
