package similarity

import (
	"math"
	"strings"
)

// ScoreWord compares a single expected word with a spoken word and returns
// a score in [0, 100].
//
// Both words are trimmed and lower-cased. Identical words score 100. If one
// word contains the other the score is ContainmentScore. Otherwise the score
// is the share of positions (counted from index 0) holding the same
// character, relative to the longer word.
func ScoreWord(expected, spoken string) int {
	e := normalize(expected)
	s := normalize(spoken)
	if e == s {
		return PerfectScore
	}
	if e != "" && s != "" && (strings.Contains(e, s) || strings.Contains(s, e)) {
		return ContainmentScore
	}

	er, sr := []rune(e), []rune(s)
	maxLen := max(len(er), len(sr))
	if maxLen == 0 {
		return PerfectScore
	}

	matches := 0
	for i := range min(len(er), len(sr)) {
		if er[i] == sr[i] {
			matches++
		}
	}
	return percent(float64(matches) / float64(maxLen))
}

// ScoreSentence scores two word sequences position by position. The shorter
// sequence is padded with empty words, so missing and extra words both
// score 0. Overall is the rounded mean of all positions; two empty
// sequences score 100.
func ScoreSentence(expectedWords, spokenWords []string) SentenceScore {
	n := max(len(expectedWords), len(spokenWords))
	if n == 0 {
		return SentenceScore{Overall: PerfectScore, PerWord: []WordScore{}}
	}

	perWord := make([]WordScore, n)
	total := 0
	for i := range n {
		ws := WordScore{
			Expected: wordAt(expectedWords, i),
			Spoken:   wordAt(spokenWords, i),
		}
		ws.Score = ScoreWord(ws.Expected, ws.Spoken)
		total += ws.Score
		perWord[i] = ws
	}

	return SentenceScore{
		Overall: roundHalfUp(float64(total) / float64(n)),
		PerWord: perWord,
	}
}

// CompareSentences splits both sentences into words (dropping punctuation)
// and scores them with ScoreSentence.
func CompareSentences(expected, spoken string) SentenceScore {
	return ScoreSentence(SplitWords(expected), SplitWords(spoken))
}

// Classify maps a scored position to its display class. Positions at or
// beyond expectedLen have no expected counterpart and are always extra.
func Classify(index, expectedLen, score int) Class {
	switch {
	case index >= expectedLen:
		return ClassExtra
	case score >= CorrectThreshold:
		return ClassCorrect
	case score >= SimilarThreshold:
		return ClassSimilar
	default:
		return ClassIncorrect
	}
}

// Classes returns the display class of every position in s.
func (s SentenceScore) Classes(expectedLen int) []Class {
	out := make([]Class, len(s.PerWord))
	for i, ws := range s.PerWord {
		out[i] = Classify(i, expectedLen, ws.Score)
	}
	return out
}

func wordAt(words []string, i int) string {
	if i < len(words) {
		return words[i]
	}
	return ""
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// percent converts a ratio in [0, 1] to a rounded score in [0, 100].
func percent(ratio float64) int {
	return clamp(roundHalfUp(ratio * 100))
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(score int) int {
	return min(max(score, 0), PerfectScore)
}
