package similarity

import "github.com/antzucaro/matchr"

// PhoneticThreshold is the minimum Jaro-Winkler similarity for two words
// with overlapping Double Metaphone codes to count as sounding alike.
const PhoneticThreshold = 0.80

// SoundsAlike reports whether spoken is a plausible mis-spelling of expected
// by a recognizer that heard the right sounds. It is a display hint only and
// never feeds into a score.
func SoundsAlike(expected, spoken string) bool {
	e, s := normalize(expected), normalize(spoken)
	if e == "" || s == "" {
		return false
	}
	if e == s {
		return true
	}

	ep, es := matchr.DoubleMetaphone(e)
	sp, ss := matchr.DoubleMetaphone(s)
	if !codesOverlap([]string{ep, es}, []string{sp, ss}) {
		return false
	}
	return matchr.JaroWinkler(e, s, false) >= PhoneticThreshold
}

func codesOverlap(a, b []string) bool {
	for _, x := range a {
		if x == "" {
			continue
		}
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
