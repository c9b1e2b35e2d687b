package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/sprechen/internal/store"
)

type purposeKey struct{}

// WithPurpose labels the requests made with ctx, e.g. "phrase-gen".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unlabeled".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return "unlabeled"
}

// EventRecorder stores one row per provider call. store.EventRepo
// satisfies it.
type EventRecorder interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

type recording struct {
	next   Provider
	name   string
	events EventRecorder
	now    func() time.Time
}

// Record wraps p so every call, failed or not, is stored as an event.
// A failure to store is logged and never fails the call.
func Record(p Provider, name string, events EventRecorder) Provider {
	return &recording{next: p, name: name, events: events, now: time.Now}
}

func (r *recording) Generate(ctx context.Context, req Request) (*Response, error) {
	start := r.now()
	resp, err := r.next.Generate(ctx, req)

	ev := store.LLMRequestEventData{
		Provider:    r.name,
		Model:       r.next.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   r.now().Sub(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: dumpRequest(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		var pe *Error
		if errors.As(err, &pe) {
			ev.ResponseBody = string(pe.Content)
		}
	}

	slog.Debug("llm request", "provider", ev.Provider, "model", ev.Model,
		"purpose", ev.Purpose, "latency_ms", ev.LatencyMs, "ok", ev.Success)

	// Recorded even when the caller gave up on ctx.
	if rerr := r.events.AppendLLMRequest(context.WithoutCancel(ctx), ev); rerr != nil {
		slog.Warn("record llm request", "err", rerr)
	}
	return resp, err
}

func (r *recording) ModelID() string {
	return r.next.ModelID()
}

// dumpRequest renders a request for later inspection with `llm view`.
func dumpRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	fmt.Fprintf(&b, "[prompt]\n%s\n", req.Prompt)
	if req.Schema != nil {
		def, err := json.MarshalIndent(req.Schema.Definition, "", "  ")
		if err == nil {
			fmt.Fprintf(&b, "\n[schema %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
