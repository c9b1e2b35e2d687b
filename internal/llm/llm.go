// Package llm sends single-turn, schema-constrained requests to hosted
// language models and returns the JSON they produce.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured output from a prompt.
type Provider interface {
	// Generate runs one request. When req.Schema is set the returned
	// Content has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model requests are sent to.
	ModelID() string
}

// Request is a single prompt with optional structured output.
type Request struct {
	System      string
	Prompt      string
	Schema      *Schema
	MaxTokens   int
	Temperature float64 // 0 leaves the provider default
}

// Stop is the normalized reason generation ended.
type Stop string

const (
	StopEnd       Stop = "end"
	StopMaxTokens Stop = "max_tokens"
)

// Response is a successful generation.
type Response struct {
	Content json.RawMessage
	Model   string // model that served the request, as reported by the provider
	Stop    Stop
	Usage   Usage
}

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total returns input plus output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// finish turns a raw provider reply into the result handed to callers.
// Truncated replies and replies that break the schema become errors.
func finish(provider string, req Request, resp *Response) (*Response, error) {
	if resp.Stop == StopMaxTokens {
		return nil, &Error{Kind: ErrMaxTokensExceeded, Provider: provider, Content: resp.Content}
	}
	if len(resp.Content) == 0 {
		return nil, &Error{Kind: ErrInvalidResponse, Provider: provider, Err: errEmptyReply}
	}
	if req.Schema != nil {
		if err := req.Schema.Validate(resp.Content); err != nil {
			return nil, &Error{Kind: ErrInvalidResponse, Provider: provider, Content: resp.Content, Err: err}
		}
	}
	return resp, nil
}
