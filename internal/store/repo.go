package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// WordScoreData is one word of a scored attempt.
type WordScoreData struct {
	Expected string `json:"expected"`
	Spoken   string `json:"spoken"`
	Score    int    `json:"score"`
}

// AttemptData captures a finished pronunciation attempt.
type AttemptData struct {
	PhraseID   string
	Expected   string
	Transcript string
	Score      int
	Words      []WordScoreData
	Passed     bool
	Duration   time.Duration
}

// AttemptRecord is a stored attempt.
type AttemptRecord struct {
	ID         string
	Sequence   int64
	Timestamp  time.Time
	PhraseID   string
	Expected   string
	Transcript string
	Score      int
	Words      []WordScoreData
	Passed     bool
	Duration   time.Duration
}

// PhraseStat aggregates the attempts at a single phrase.
type PhraseStat struct {
	PhraseID    string
	Expected    string
	Attempts    int
	Passed      int
	BestScore   int
	AvgScore    float64
	LastAttempt time.Time
}

// AttemptSummary aggregates all attempts.
type AttemptSummary struct {
	Attempts  int
	Passed    int
	Phrases   int
	AvgScore  float64
	BestScore int
	Practice  time.Duration
}

// AttemptRepo stores pronunciation attempts.
type AttemptRepo interface {
	// AppendAttempt records an attempt and returns its generated ID.
	AppendAttempt(ctx context.Context, data AttemptData) (string, error)

	// RecentAttempts returns attempts newest first.
	RecentAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// PhraseStats returns per-phrase aggregates ordered by most attempted.
	PhraseStats(ctx context.Context) ([]PhraseStat, error)

	// Summary returns aggregates over all attempts.
	Summary(ctx context.Context) (AttemptSummary, error)
}

// ReviewRecord is the persisted spaced-repetition state of a phrase.
type ReviewRecord struct {
	PhraseID     string
	Repetitions  int
	IntervalDays int
	Easiness     float64
	NextReview   time.Time
	LastReview   time.Time
	LastQuality  int
}

// ReviewRepo stores review schedules, one row per phrase.
type ReviewRepo interface {
	// SaveReview inserts or replaces the schedule of a phrase.
	SaveReview(ctx context.Context, rec ReviewRecord) error

	// LoadReviews returns every stored schedule.
	LoadReviews(ctx context.Context) ([]ReviewRecord, error)
}

// AwardData captures a reward granted after an attempt.
type AwardData struct {
	Kind     string
	PhraseID string
	Streak   int
	Gems     int
}

// AwardRecord is a stored award.
type AwardRecord struct {
	ID        int64
	Sequence  int64
	Timestamp time.Time
	Kind      string
	PhraseID  string
	Streak    int
	Gems      int
}

// RewardRepo stores awards and the running streak.
type RewardRepo interface {
	AppendAward(ctx context.Context, data AwardData) error
	QueryAwards(ctx context.Context, opts QueryOpts) ([]AwardRecord, error)

	// GemTotal returns the sum of gems over all awards.
	GemTotal(ctx context.Context) (int, error)

	// CurrentStreak returns the persisted streak counter (0 when unset).
	CurrentStreak(ctx context.Context) (int, error)
	SaveStreak(ctx context.Context, streak int) error

	// BestStreak returns the longest streak ever recorded.
	BestStreak(ctx context.Context) (int, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates LLM calls per purpose.
type LLMPurposeUsage struct {
	Purpose      string `db:"purpose"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	AvgLatencyMs int64  `db:"avg_latency_ms"`
}

// LLMModelUsage aggregates LLM token usage per model.
type LLMModelUsage struct {
	Model        string `db:"model"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns a single event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
