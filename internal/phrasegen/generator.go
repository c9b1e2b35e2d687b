package phrasegen

import (
	"context"

	"github.com/abhisek/sprechen/internal/deck"
)

// Generator produces German practice phrases using an LLM provider.
type Generator interface {
	// Generate produces up to input.Count validated phrases.
	// Phrases that fail a validator are dropped; an error is returned
	// only when none survive.
	Generate(ctx context.Context, input Input) ([]deck.Phrase, error)
}
