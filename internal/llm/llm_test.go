package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// phraseSchema mirrors the schema phrasegen sends.
var phraseSchema = &Schema{
	Name:        "german-phrases",
	Description: "German sentences with English translations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"phrases": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text":        map[string]any{"type": "string"},
						"translation": map[string]any{"type": "string"},
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

const phrasesReply = `{"phrases":[{"text":"Ich hätte gern einen Kaffee.","translation":"I'd like a coffee."}]}`

func phraseRequest() Request {
	return Request{
		System:    "You write short German sentences for pronunciation practice.",
		Prompt:    "Topic: café\nLevel: A1\nCount: 1",
		Schema:    phraseSchema,
		MaxTokens: 512,
	}
}

func TestFinish(t *testing.T) {
	req := phraseRequest()

	resp, err := finish("test", req, &Response{Content: json.RawMessage(phrasesReply), Stop: StopEnd})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != phrasesReply {
		t.Errorf("content changed: %s", resp.Content)
	}

	_, err = finish("test", req, &Response{Content: json.RawMessage(`{"phr`), Stop: StopMaxTokens})
	if !errors.Is(err, ErrMaxTokensExceeded) {
		t.Errorf("truncated reply: got %v, want ErrMaxTokensExceeded", err)
	}

	_, err = finish("test", req, &Response{Stop: StopEnd})
	if !errors.Is(err, ErrInvalidResponse) || !errors.Is(err, errEmptyReply) {
		t.Errorf("empty reply: got %v, want ErrInvalidResponse wrapping errEmptyReply", err)
	}

	bad := json.RawMessage(`{"phrases":[{"text":"Hallo!"}]}`)
	_, err = finish("test", req, &Response{Content: bad, Stop: StopEnd})
	var pe *Error
	if !errors.As(err, &pe) || !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("schema breach: got %v, want *Error with ErrInvalidResponse", err)
	}
	if string(pe.Content) != string(bad) {
		t.Errorf("offending reply not kept: %s", pe.Content)
	}
}

func TestFinish_NoSchema(t *testing.T) {
	req := phraseRequest()
	req.Schema = nil

	if _, err := finish("test", req, &Response{Content: json.RawMessage(`{"anything":1}`)}); err != nil {
		t.Fatalf("unexpected error without schema: %v", err)
	}
}

func TestUsage_Total(t *testing.T) {
	if got := (Usage{InputTokens: 120, OutputTokens: 80}).Total(); got != 200 {
		t.Errorf("Total() = %d, want 200", got)
	}
}
