package phrasegen

import "github.com/abhisek/sprechen/internal/llm"

// PhraseSchema defines the JSON schema for LLM phrase generation responses.
var PhraseSchema = &llm.Schema{
	Name:        "german-phrases",
	Description: "A batch of German sentences for pronunciation practice, each with an English translation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"phrases": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The German sentence, with correct capitalization, umlauts and ß, ending in . ! or ?",
						},
						"translation": map[string]any{
							"type":        "string",
							"description": "A natural English translation",
						},
					},
					"required":             []any{"text", "translation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"phrases"},
		"additionalProperties": false,
	},
}
