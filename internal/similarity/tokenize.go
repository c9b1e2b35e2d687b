package similarity

import "unicode"

// Tokenize splits s into alternating word and non-word tokens. Joining the
// Text of every token reproduces s exactly.
//
// A word is a run of letters, digits and combining marks. An apostrophe or
// hyphen between two letters stays inside the word ("geht's", "E-Mail").
func Tokenize(s string) []WordToken {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	var tokens []WordToken
	start := 0
	inWord := isWordRune(runes, 0)
	for i := 1; i < len(runes); i++ {
		w := isWordRune(runes, i)
		if w != inWord {
			tokens = append(tokens, WordToken{Text: string(runes[start:i]), IsWord: inWord})
			start = i
			inWord = w
		}
	}
	tokens = append(tokens, WordToken{Text: string(runes[start:]), IsWord: inWord})
	return tokens
}

// SplitWords returns only the word tokens of s, in order. Punctuation and
// whitespace are dropped, so "Schule." yields "Schule".
func SplitWords(s string) []string {
	words := []string{}
	for _, t := range Tokenize(s) {
		if t.IsWord {
			words = append(words, t.Text)
		}
	}
	return words
}

func isWordRune(runes []rune, i int) bool {
	r := runes[i]
	if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
		return true
	}
	if !isJoiner(r) || i == 0 || i == len(runes)-1 {
		return false
	}
	return unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1])
}

func isJoiner(r rune) bool {
	switch r {
	case '\'', '’', '-':
		return true
	}
	return false
}
