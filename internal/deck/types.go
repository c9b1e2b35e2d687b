package deck

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Level is a CEFR proficiency level.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// AllLevels lists the levels from easiest to hardest.
var AllLevels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// ParseLevel parses a level case-insensitively ("a1", "B2").
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllLevels {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q (want one of A1, A2, B1, B2, C1, C2)", s)
}

// Rank returns the position of l in AllLevels, or -1 if unknown.
func (l Level) Rank() int {
	for i, known := range AllLevels {
		if l == known {
			return i
		}
	}
	return -1
}

// Phrase is a single practice sentence.
type Phrase struct {
	ID          string `yaml:"id,omitempty" json:"id"`
	Text        string `yaml:"text" json:"text"`
	Translation string `yaml:"translation,omitempty" json:"translation"`
	Topic       string `yaml:"topic" json:"topic"`
	Level       Level  `yaml:"level" json:"level"`
}

// phraseNamespace scopes derived phrase IDs.
var phraseNamespace = uuid.MustParse("5c4a7e0e-3f53-4b8e-9d7e-2f1b6a0c9e21")

// PhraseID derives a stable ID from the phrase text, so the same sentence
// imported twice maps to the same review history.
func PhraseID(text string) string {
	key := strings.ToLower(strings.Join(strings.Fields(text), " "))
	return uuid.NewSHA1(phraseNamespace, []byte(key)).String()
}

// ValidationError describes a phrase that cannot be used.
type ValidationError struct {
	Index   int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("phrase %d: %s", e.Index+1, e.Message)
}

// normalizePhrase fills derived fields and validates the phrase.
func normalizePhrase(p *Phrase, index int) error {
	p.Text = strings.TrimSpace(p.Text)
	p.Translation = strings.TrimSpace(p.Translation)
	p.Topic = strings.ToLower(strings.TrimSpace(p.Topic))

	if p.Text == "" {
		return &ValidationError{Index: index, Message: "text is empty"}
	}
	if p.Level == "" {
		p.Level = LevelA1
	}
	lvl, err := ParseLevel(string(p.Level))
	if err != nil {
		return &ValidationError{Index: index, Message: err.Error()}
	}
	p.Level = lvl
	if p.Topic == "" {
		p.Topic = "allgemein"
	}
	if p.ID == "" {
		p.ID = PhraseID(p.Text)
	}
	return nil
}
