package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockReply is one scripted outcome of MockProvider.Generate.
type MockReply struct {
	JSON  string
	Usage Usage
	Err   error
}

// MockProvider replays scripted replies in order and keeps every request.
// Replies pass through the same schema check as real providers.
type MockProvider struct {
	mu       sync.Mutex
	replies  []MockReply
	requests []Request
}

// NewMockProvider scripts the given replies.
func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.requests = append(m.requests, req)
	if len(m.replies) == 0 {
		m.mu.Unlock()
		return nil, &Error{Kind: ErrProviderUnavailable, Provider: "mock", Err: errors.New("no scripted reply left")}
	}
	reply := m.replies[0]
	m.replies = m.replies[1:]
	m.mu.Unlock()

	if reply.Err != nil {
		return nil, reply.Err
	}
	return finish("mock", req, &Response{
		Content: json.RawMessage(reply.JSON),
		Model:   "mock",
		Stop:    StopEnd,
		Usage:   reply.Usage,
	})
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// Requests returns the requests received so far.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}
