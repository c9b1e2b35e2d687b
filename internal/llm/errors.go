package llm

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"
)

// Failure kinds. Match them with errors.Is.
var (
	ErrRateLimit           = errors.New("rate limited")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrRequestRejected     = errors.New("request rejected")
	ErrInvalidResponse     = errors.New("invalid response")
	ErrMaxTokensExceeded   = errors.New("response truncated at max tokens")
)

var errEmptyReply = errors.New("empty reply")

// Error is a failed provider call.
type Error struct {
	Kind       error // one of the Err* kinds above
	Provider   string
	RetryAfter time.Duration   // server-requested wait, rate limits only
	Content    json.RawMessage // the offending reply, if any
	Err        error
}

func (e *Error) Error() string {
	msg := e.Provider + ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// statusError classifies a failed HTTP exchange. Status 0 means the
// request never got a response.
func statusError(provider string, status int, header http.Header, err error) *Error {
	e := &Error{Kind: ErrProviderUnavailable, Provider: provider, Err: err}
	switch {
	case status == http.StatusTooManyRequests:
		e.Kind = ErrRateLimit
		e.RetryAfter = retryAfter(header)
	case status >= 400 && status < 500:
		e.Kind = ErrRequestRejected
	}
	return e
}

// retryAfter reads a Retry-After header given in seconds.
func retryAfter(header http.Header) time.Duration {
	if header == nil {
		return 0
	}
	secs, err := strconv.Atoi(header.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
