package deck

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML layout of a deck.
//
// Example:
//
//	deck:
//	  name: "Alltag"
//	phrases:
//	  - text: "Ich gehe zur Schule."
//	    translation: "I go to school."
//	    topic: schule
//	    level: A1
type File struct {
	Deck    Meta     `yaml:"deck"`
	Phrases []Phrase `yaml:"phrases"`
}

// Meta holds deck-level metadata.
type Meta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

//go:embed builtin.yaml
var builtinYAML []byte

// Builtin returns the deck shipped with the binary.
func Builtin() (*Deck, error) {
	d, err := LoadFromReader(bytes.NewReader(builtinYAML))
	if err != nil {
		return nil, fmt.Errorf("deck: builtin: %w", err)
	}
	return d, nil
}

// LoadFile reads and validates a YAML deck from disk.
func LoadFile(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("deck: open %q: %w", path, err)
	}
	defer f.Close()

	d, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("deck: parse %q: %w", path, err)
	}
	return d, nil
}

// LoadFromReader parses a YAML deck. Unknown keys are rejected to catch
// typos in hand-written decks.
func LoadFromReader(r io.Reader) (*Deck, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return New(f.Deck.Name, f.Phrases)
}

// Save writes d as YAML.
func Save(w io.Writer, d *Deck) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Deck: Meta{Name: d.Name}, Phrases: d.phrases}); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// SaveFile writes d to path, replacing any existing file.
func SaveFile(path string, d *Deck) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("deck: create %q: %w", path, err)
	}
	if err := Save(f, d); err != nil {
		f.Close()
		return fmt.Errorf("deck: write %q: %w", path, err)
	}
	return f.Close()
}
