package phrasegen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated phrase. They execute in order; the first failure
	// drops the phrase.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorPhrases is the maximum number of prior phrases
	// listed in the prompt.
	MaxPriorPhrases int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&DedupValidator{},
		},
		MaxTokens:       1024,
		Temperature:     0.8,
		MaxPriorPhrases: 20,
	}
}
