package deck

import (
	"fmt"
	"slices"
	"strings"
)

// Deck is an ordered, ID-indexed collection of phrases.
type Deck struct {
	Name    string
	phrases []Phrase
	byID    map[string]int
}

// New builds a deck, filling derived fields and rejecting invalid or
// duplicate phrases.
func New(name string, phrases []Phrase) (*Deck, error) {
	d := &Deck{Name: name, byID: make(map[string]int, len(phrases))}
	for i, p := range phrases {
		if err := normalizePhrase(&p, i); err != nil {
			return nil, err
		}
		if _, dup := d.byID[p.ID]; dup {
			return nil, &ValidationError{Index: i, Message: fmt.Sprintf("duplicate id %q", p.ID)}
		}
		d.byID[p.ID] = len(d.phrases)
		d.phrases = append(d.phrases, p)
	}
	return d, nil
}

// Len returns the number of phrases.
func (d *Deck) Len() int {
	return len(d.phrases)
}

// Phrases returns a copy of all phrases in deck order.
func (d *Deck) Phrases() []Phrase {
	return slices.Clone(d.phrases)
}

// Get returns the phrase with the given ID.
func (d *Deck) Get(id string) (Phrase, bool) {
	i, ok := d.byID[id]
	if !ok {
		return Phrase{}, false
	}
	return d.phrases[i], true
}

// Filter returns phrases matching topic and level. An empty topic or level
// matches everything.
func (d *Deck) Filter(topic string, level Level) []Phrase {
	topic = strings.ToLower(strings.TrimSpace(topic))
	var out []Phrase
	for _, p := range d.phrases {
		if topic != "" && p.Topic != topic {
			continue
		}
		if level != "" && p.Level != level {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Topics returns the distinct topics, sorted.
func (d *Deck) Topics() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range d.phrases {
		if !seen[p.Topic] {
			seen[p.Topic] = true
			out = append(out, p.Topic)
		}
	}
	slices.Sort(out)
	return out
}

// Merge appends phrases from other that are not already present and
// returns how many were added.
func (d *Deck) Merge(other *Deck) int {
	added := 0
	for _, p := range other.phrases {
		if _, ok := d.byID[p.ID]; ok {
			continue
		}
		d.byID[p.ID] = len(d.phrases)
		d.phrases = append(d.phrases, p)
		added++
	}
	return added
}
