package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestRetry(p Provider, attempts int) (*retrying, *[]time.Duration) {
	var waits []time.Duration
	r := &retrying{
		next:   p,
		policy: RetryPolicy{Attempts: attempts, Base: time.Second, Max: 10 * time.Second, Factor: 2},
		sleep: func(_ context.Context, d time.Duration) error {
			waits = append(waits, d)
			return nil
		},
	}
	return r, &waits
}

func unavailable() error {
	return &Error{Kind: ErrProviderUnavailable, Provider: "mock"}
}

func TestRetry_RecoversFromOutage(t *testing.T) {
	mock := NewMockProvider(MockReply{Err: unavailable()}, MockReply{JSON: phrasesReply})
	r, waits := newTestRetry(mock, 3)

	resp, err := r.Generate(context.Background(), phraseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != phrasesReply {
		t.Errorf("content = %s", resp.Content)
	}
	if len(*waits) != 1 {
		t.Fatalf("waits = %v, want one", *waits)
	}
	if w := (*waits)[0]; w < 800*time.Millisecond || w > 1200*time.Millisecond {
		t.Errorf("first wait %v outside 1s ±20%%", w)
	}
}

func TestRetry_GivesUp(t *testing.T) {
	mock := NewMockProvider(MockReply{Err: unavailable()}, MockReply{Err: unavailable()}, MockReply{Err: unavailable()})
	r, waits := newTestRetry(mock, 3)

	_, err := r.Generate(context.Background(), phraseRequest())
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if len(mock.Requests()) != 3 || len(*waits) != 2 {
		t.Errorf("calls/waits = %d/%d, want 3/2", len(mock.Requests()), len(*waits))
	}
}

func TestRetry_HonorsRetryAfter(t *testing.T) {
	limited := &Error{Kind: ErrRateLimit, Provider: "mock", RetryAfter: 7 * time.Second}
	mock := NewMockProvider(MockReply{Err: limited}, MockReply{JSON: phrasesReply})
	r, waits := newTestRetry(mock, 3)

	if _, err := r.Generate(context.Background(), phraseRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*waits) != 1 || (*waits)[0] != 7*time.Second {
		t.Errorf("waits = %v, want [7s]", *waits)
	}
}

func TestRetry_InvalidReplyOnce(t *testing.T) {
	bad := `{"phrases":[{"text":"Hallo!"}]}`
	mock := NewMockProvider(MockReply{JSON: bad}, MockReply{JSON: bad}, MockReply{JSON: phrasesReply})
	r, _ := newTestRetry(mock, 5)

	_, err := r.Generate(context.Background(), phraseRequest())
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
	if n := len(mock.Requests()); n != 2 {
		t.Errorf("calls = %d, want 2", n)
	}
}

func TestRetry_NotRetried(t *testing.T) {
	tests := map[string]error{
		"rejected":  &Error{Kind: ErrRequestRejected, Provider: "mock"},
		"truncated": &Error{Kind: ErrMaxTokensExceeded, Provider: "mock"},
		"canceled":  context.Canceled,
		"deadline":  context.DeadlineExceeded,
	}
	for name, fail := range tests {
		mock := NewMockProvider(MockReply{Err: fail}, MockReply{JSON: phrasesReply})
		r, waits := newTestRetry(mock, 3)

		if _, err := r.Generate(context.Background(), phraseRequest()); !errors.Is(err, fail) {
			t.Errorf("%s: got %v", name, err)
		}
		if len(mock.Requests()) != 1 || len(*waits) != 0 {
			t.Errorf("%s: retried", name)
		}
	}
}

func TestRetry_SleepInterrupted(t *testing.T) {
	mock := NewMockProvider(MockReply{Err: unavailable()}, MockReply{JSON: phrasesReply})
	r, _ := newTestRetry(mock, 3)
	r.sleep = func(context.Context, time.Duration) error { return context.Canceled }

	if _, err := r.Generate(context.Background(), phraseRequest()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRetryPolicy_DelayCapped(t *testing.T) {
	p := DefaultRetryPolicy()
	for n := 0; n < 10; n++ {
		if d := p.delay(n); d > 12*time.Second {
			t.Errorf("delay(%d) = %v, above cap plus jitter", n, d)
		}
	}
}
