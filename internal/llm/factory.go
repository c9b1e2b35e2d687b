package llm

import (
	"context"
	"fmt"
)

// New builds the configured provider wrapped as caller → retry →
// recording → backend. A nil recorder skips event recording.
func New(ctx context.Context, cfg Config, events EventRecorder) (Provider, error) {
	var base Provider
	switch cfg.Provider {
	case "gemini":
		g, err := newGemini(ctx, cfg)
		if err != nil {
			return nil, err
		}
		base = g
	case "openai", "openrouter":
		base = newOpenAI(cfg)
	case "anthropic":
		base = newAnthropic(cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}

	if events != nil {
		base = Record(base, cfg.Provider, events)
	}
	return Retry(base, cfg.Retry), nil
}
