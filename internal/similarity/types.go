// Package similarity scores a spoken or transcribed German sentence against
// the sentence the learner was asked to say.
//
// Two independent measures are provided:
//
//   - ScoreWord / ScoreSentence: a cheap positional heuristic, recomputed on
//     every interim recognition result to color words as the learner speaks.
//   - LevenshteinSimilarity: true edit distance over the whole utterance,
//     computed once per final result.
//
// Characters are compared by raw code point after lower-casing. "ß" does not
// match "ss" unless the caller folds both sides first (see Fold).
package similarity

// WordToken is a lexical unit of a sentence. IsWord is false for runs of
// punctuation and whitespace.
type WordToken struct {
	Text   string `json:"text"`
	IsWord bool   `json:"is_word"`
}

// WordScore is the comparison result for one word position.
type WordScore struct {
	Expected string `json:"expected"`
	Spoken   string `json:"spoken"`
	Score    int    `json:"score"`
}

// SentenceScore aggregates per-position word scores.
type SentenceScore struct {
	Overall int         `json:"overall"`
	PerWord []WordScore `json:"per_word"`
}

// Class is the display classification of a scored word position.
type Class string

const (
	ClassCorrect   Class = "correct"
	ClassSimilar   Class = "similar"
	ClassIncorrect Class = "incorrect"
	ClassExtra     Class = "extra"
)

const (
	// PerfectScore is awarded for an exact case-insensitive match.
	PerfectScore = 100

	// ContainmentScore is awarded when one word contains the other,
	// e.g. a recognizer truncating "Schule" to "Schul".
	ContainmentScore = 75

	// CorrectThreshold is the lowest score classified as correct.
	CorrectThreshold = 90

	// SimilarThreshold is the lowest score classified as similar.
	SimilarThreshold = 70
)
