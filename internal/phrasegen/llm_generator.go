package phrasegen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abhisek/sprechen/internal/deck"
	"github.com/abhisek/sprechen/internal/llm"
)

// Purpose is the LLM event label for phrase generation.
const Purpose = "phrase-gen"

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// phrasesOutput is the raw LLM response before validation.
type phrasesOutput struct {
	Phrases []Candidate `json:"phrases"`
}

// Generate produces up to input.Count phrases for the topic and level.
func (g *LLMGenerator) Generate(ctx context.Context, input Input) ([]deck.Phrase, error) {
	ctx = llm.WithPurpose(ctx, Purpose)

	input.Topic = strings.ToLower(strings.TrimSpace(input.Topic))
	if input.Topic == "" {
		input.Topic = "allgemein"
	}
	if input.Level == "" {
		input.Level = deck.LevelA1
	}
	count := input.Count
	if count <= 0 {
		count = DefaultCount
	}
	count = min(count, MaxCount)

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserMessage(input, count, g.config),
		Schema:      PhraseSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw phrasesOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	var (
		accepted []Candidate
		lastErr  *ValidationError
	)
	for _, c := range raw.Phrases {
		c.Text = strings.TrimSpace(c.Text)
		c.Translation = strings.TrimSpace(c.Translation)

		if verr := g.validate(c, input, accepted); verr != nil {
			slog.Debug("dropping generated phrase", "text", c.Text, "err", verr)
			lastErr = verr
			continue
		}
		accepted = append(accepted, c)
		if len(accepted) == count {
			break
		}
	}

	if len(accepted) == 0 {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, errors.New("LLM returned no phrases")
	}

	phrases := make([]deck.Phrase, len(accepted))
	for i, c := range accepted {
		phrases[i] = deck.Phrase{
			Text:        c.Text,
			Translation: c.Translation,
			Topic:       input.Topic,
			Level:       input.Level,
		}
	}

	// New normalizes and assigns IDs; the validators already rejected
	// anything it would refuse.
	d, err := deck.New("generated", phrases)
	if err != nil {
		return nil, fmt.Errorf("build phrases: %w", err)
	}
	return d.Phrases(), nil
}

// validate runs the validators in order; the first failure wins.
func (g *LLMGenerator) validate(c Candidate, input Input, accepted []Candidate) *ValidationError {
	for _, v := range g.config.Validators {
		if verr := v.Validate(c, input, accepted); verr != nil {
			return verr
		}
	}
	return nil
}
