package phrasegen

import "github.com/abhisek/sprechen/internal/deck"

// Input holds all context needed to generate a batch of phrases.
type Input struct {
	// Topic is the subject area, e.g. "essen" or "reisen".
	Topic string

	// Level is the CEFR level the phrases should target.
	Level deck.Level

	// Count is the number of phrases to request. Zero means DefaultCount.
	Count int

	// Prior contains phrase texts the learner already has.
	// Generated phrases matching one of them are rejected.
	Prior []string
}

// Candidate is a phrase proposed by the LLM before validation.
type Candidate struct {
	Text        string `json:"text"`
	Translation string `json:"translation"`
}

const (
	// DefaultCount is the batch size when Input.Count is zero.
	DefaultCount = 5

	// MaxCount caps a single request.
	MaxCount = 20
)
