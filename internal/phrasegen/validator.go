package phrasegen

import "fmt"

// Validator checks a generated phrase.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "dedup".
	Name() string

	// Validate checks c and returns nil if it passes. accepted holds the
	// phrases of the same batch that already passed every validator.
	Validate(c Candidate, input Input, accepted []Candidate) *ValidationError
}

// ValidationError describes why a phrase failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
