package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a JSON Schema for structured output. Providers send
// Definition in their native format; Validate checks what comes back.
// A Schema must not be copied after first use.
type Schema struct {
	Name        string // kebab-case, e.g. "german-phrases"
	Description string
	Definition  map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// Validate reports whether raw is JSON that conforms to the schema.
func (s *Schema) Validate(raw json.RawMessage) error {
	s.once.Do(s.compile)
	if s.err != nil {
		return fmt.Errorf("compile schema %s: %w", s.Name, s.err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode reply: %w", err)
	}
	return s.compiled.Validate(doc)
}

func (s *Schema) compile() {
	def, err := json.Marshal(s.Definition)
	if err != nil {
		s.err = err
		return
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		s.err = err
		return
	}

	url := "schema://sprechen/" + s.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		s.err = err
		return
	}
	s.compiled, s.err = c.Compile(url)
}
