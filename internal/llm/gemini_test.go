package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiConfig(t *testing.T) {
	req := phraseRequest()
	req.Temperature = 0.7

	cfg := geminiConfig(req)
	if cfg.MaxOutputTokens != 512 {
		t.Errorf("MaxOutputTokens = %d", cfg.MaxOutputTokens)
	}
	if cfg.Temperature == nil || *cfg.Temperature != float32(0.7) {
		t.Errorf("Temperature = %v", cfg.Temperature)
	}
	if cfg.SystemInstruction == nil || cfg.SystemInstruction.Parts[0].Text != req.System {
		t.Errorf("system instruction not set")
	}
	if cfg.ResponseMIMEType != "application/json" {
		t.Errorf("ResponseMIMEType = %q", cfg.ResponseMIMEType)
	}
	def, ok := cfg.ResponseJsonSchema.(map[string]any)
	if !ok || def["required"] == nil {
		t.Errorf("ResponseJsonSchema = %v", cfg.ResponseJsonSchema)
	}
}

func TestGeminiConfig_Plain(t *testing.T) {
	cfg := geminiConfig(Request{Prompt: "Sag etwas."})
	if cfg.Temperature != nil || cfg.SystemInstruction != nil || cfg.ResponseJsonSchema != nil {
		t.Errorf("unexpected settings for a plain request: %+v", cfg)
	}
}

func TestGeminiStop(t *testing.T) {
	tests := []struct {
		reason genai.FinishReason
		want   Stop
	}{
		{genai.FinishReasonStop, StopEnd},
		{genai.FinishReasonMaxTokens, StopMaxTokens},
	}
	for _, tt := range tests {
		result := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: tt.reason}},
		}
		if got := geminiStop(result); got != tt.want {
			t.Errorf("geminiStop(%s) = %q, want %q", tt.reason, got, tt.want)
		}
	}
	if got := geminiStop(&genai.GenerateContentResponse{}); got != StopEnd {
		t.Errorf("no candidates: got %q", got)
	}
}
