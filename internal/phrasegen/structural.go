package phrasegen

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/sprechen/internal/similarity"
)

const (
	minWords      = 2
	maxWords      = 20
	maxTextLength = 200
)

// StructuralValidator checks that a phrase is a complete, speakable
// sentence of reasonable length with a translation.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(c Candidate, _ Input, _ []Candidate) *ValidationError {
	text := strings.TrimSpace(c.Text)
	if text == "" {
		return v.fail("text is empty")
	}
	if utf8.RuneCountInString(text) > maxTextLength {
		return v.fail(fmt.Sprintf("text exceeds %d characters", maxTextLength))
	}
	if n := len(similarity.SplitWords(text)); n < minWords || n > maxWords {
		return v.fail(fmt.Sprintf("text has %d words, want %d to %d", n, minWords, maxWords))
	}
	if !strings.ContainsAny(text[len(text)-1:], ".!?") {
		return v.fail("text does not end with sentence punctuation")
	}
	if strings.TrimSpace(c.Translation) == "" {
		return v.fail("translation is empty")
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}
