package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryPolicy bounds retries of transient failures.
type RetryPolicy struct {
	Attempts int // total tries, including the first
	Base     time.Duration
	Max      time.Duration
	Factor   float64
}

// DefaultRetryPolicy tries three times, waiting about 1s then 2s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 3, Base: time.Second, Max: 10 * time.Second, Factor: 2}
}

// delay is the wait after failed try n (0-based), capped at Max and
// jittered by ±20%.
func (p RetryPolicy) delay(n int) time.Duration {
	d := min(float64(p.Base)*math.Pow(p.Factor, float64(n)), float64(p.Max))
	d *= 0.8 + 0.4*rand.Float64()
	return time.Duration(d)
}

type retrying struct {
	next   Provider
	policy RetryPolicy
	sleep  func(context.Context, time.Duration) error
}

// Retry wraps p so that rate limits, outages and network failures are
// retried with backoff. A server-sent Retry-After wins over the backoff.
// An invalid reply is retried once. Context errors, rejected requests
// and truncated replies are returned at once.
func Retry(p Provider, policy RetryPolicy) Provider {
	return &retrying{next: p, policy: policy, sleep: sleepContext}
}

func (r *retrying) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := max(r.policy.Attempts, 1)
	invalidSeen := false

	for n := 0; ; n++ {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if n+1 >= attempts || !retryable(err, &invalidSeen) {
			return nil, err
		}

		wait := r.policy.delay(n)
		var pe *Error
		if errors.As(err, &pe) && pe.RetryAfter > 0 {
			wait = pe.RetryAfter
		}
		if err := r.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
}

func (r *retrying) ModelID() string {
	return r.next.ModelID()
}

func retryable(err error, invalidSeen *bool) bool {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, ErrMaxTokensExceeded), errors.Is(err, ErrRequestRejected):
		return false
	case errors.Is(err, ErrInvalidResponse):
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
	}
	return true
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
