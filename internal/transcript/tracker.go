package transcript

import (
	"strings"

	"github.com/abhisek/sprechen/internal/similarity"
)

// PassScore is the lowest utterance score that counts as a pass.
const PassScore = 90

// Mark is the live feedback for one word position.
type Mark struct {
	Expected    string
	Spoken      string
	Score       int
	Class       similarity.Class
	SoundsAlike bool
}

// Feedback is the word-level view of the transcript so far.
type Feedback struct {
	Marks      []Mark
	Overall    int
	Transcript string
}

// Result is the outcome of a completed utterance.
type Result struct {
	Feedback

	// Utterance is the edit-distance similarity of the whole transcript.
	Utterance int
	Passed    bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithFolding makes the tracker fold both sides (NFC + case folding)
// before scoring, so "Straße" and "Strasse" compare equal.
func WithFolding(enabled bool) Option {
	return func(t *Tracker) {
		t.fold = enabled
	}
}

// Tracker holds the live transcript for one expected sentence. Each call to
// Interim or Final rescores the whole transcript with the cheap word
// heuristic; Complete runs the edit-distance comparison once.
//
// A Tracker is owned by a single UI component and is not safe for
// concurrent use.
type Tracker struct {
	expected      string
	expectedWords []string
	finals        []string
	interim       string
	fold          bool
}

// NewTracker creates a Tracker for the given expected sentence.
func NewTracker(expected string, opts ...Option) *Tracker {
	t := &Tracker{
		expected:      expected,
		expectedWords: similarity.SplitWords(expected),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Expected returns the sentence being practiced.
func (t *Tracker) Expected() string {
	return t.expected
}

// Interim replaces the provisional segment and returns updated feedback.
func (t *Tracker) Interim(text string) Feedback {
	t.interim = strings.TrimSpace(text)
	return t.feedback()
}

// Final commits a segment the recognizer will not revise and clears the
// provisional segment.
func (t *Tracker) Final(text string) Feedback {
	if seg := strings.TrimSpace(text); seg != "" {
		t.finals = append(t.finals, seg)
	}
	t.interim = ""
	return t.feedback()
}

// Transcript returns the committed segments followed by the interim one.
func (t *Tracker) Transcript() string {
	parts := t.finals
	if t.interim != "" {
		parts = append(parts[:len(parts):len(parts)], t.interim)
	}
	return strings.Join(parts, " ")
}

// Complete scores the full transcript, including the edit-distance
// similarity of the whole utterance. Both sides are compared as their
// words joined by single spaces, so punctuation and spacing never cost
// points; recognizers rarely produce either.
func (t *Tracker) Complete() Result {
	fb := t.feedback()

	expected := strings.Join(t.expectedWords, " ")
	spoken := strings.Join(similarity.SplitWords(fb.Transcript), " ")
	if t.fold {
		expected, spoken = similarity.Fold(expected), similarity.Fold(spoken)
	}
	utterance := similarity.LevenshteinSimilarity(expected, spoken)

	return Result{
		Feedback:  fb,
		Utterance: utterance,
		Passed:    utterance >= PassScore,
	}
}

// Reset discards the transcript so the sentence can be attempted again.
func (t *Tracker) Reset() {
	t.finals = nil
	t.interim = ""
}

func (t *Tracker) feedback() Feedback {
	transcript := t.Transcript()
	spokenWords := similarity.SplitWords(transcript)

	expected, spoken := t.expectedWords, spokenWords
	if t.fold {
		expected, spoken = similarity.FoldAll(expected), similarity.FoldAll(spoken)
	}
	score := similarity.ScoreSentence(expected, spoken)

	marks := make([]Mark, len(score.PerWord))
	for i, ws := range score.PerWord {
		m := Mark{
			Expected: wordAt(t.expectedWords, i),
			Spoken:   wordAt(spokenWords, i),
			Score:    ws.Score,
			Class:    similarity.Classify(i, len(expected), ws.Score),
		}
		if m.Class == similarity.ClassSimilar || m.Class == similarity.ClassIncorrect {
			m.SoundsAlike = similarity.SoundsAlike(ws.Expected, ws.Spoken)
		}
		marks[i] = m
	}

	return Feedback{
		Marks:      marks,
		Overall:    score.Overall,
		Transcript: transcript,
	}
}

func wordAt(words []string, i int) string {
	if i < len(words) {
		return words[i]
	}
	return ""
}
