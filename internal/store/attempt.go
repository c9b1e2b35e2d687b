package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type attemptRepo struct {
	db  *sqlx.DB
	seq *sequenceCounter
}

type attemptRow struct {
	ID         string `db:"id"`
	Sequence   int64  `db:"sequence"`
	Timestamp  int64  `db:"timestamp"`
	PhraseID   string `db:"phrase_id"`
	Expected   string `db:"expected"`
	Transcript string `db:"transcript"`
	Score      int    `db:"score"`
	WordScores string `db:"word_scores"`
	Passed     bool   `db:"passed"`
	DurationMs int64  `db:"duration_ms"`
}

func (r attemptRow) record() (AttemptRecord, error) {
	rec := AttemptRecord{
		ID:         r.ID,
		Sequence:   r.Sequence,
		Timestamp:  fromMillis(r.Timestamp),
		PhraseID:   r.PhraseID,
		Expected:   r.Expected,
		Transcript: r.Transcript,
		Score:      r.Score,
		Passed:     r.Passed,
		Duration:   time.Duration(r.DurationMs) * time.Millisecond,
	}
	if err := json.Unmarshal([]byte(r.WordScores), &rec.Words); err != nil {
		return rec, fmt.Errorf("decode word scores of attempt %s: %w", r.ID, err)
	}
	return rec, nil
}

func (r *attemptRepo) AppendAttempt(ctx context.Context, data AttemptData) (string, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("next sequence: %w", err)
	}

	words := data.Words
	if words == nil {
		words = []WordScoreData{}
	}
	encoded, err := json.Marshal(words)
	if err != nil {
		return "", fmt.Errorf("encode word scores: %w", err)
	}

	row := attemptRow{
		ID:         uuid.NewString(),
		Sequence:   seqNum,
		Timestamp:  time.Now().UnixMilli(),
		PhraseID:   data.PhraseID,
		Expected:   data.Expected,
		Transcript: data.Transcript,
		Score:      data.Score,
		WordScores: string(encoded),
		Passed:     data.Passed,
		DurationMs: data.Duration.Milliseconds(),
	}

	_, err = r.db.NamedExecContext(ctx, `INSERT INTO attempts
		(id, sequence, timestamp, phrase_id, expected, transcript, score, word_scores, passed, duration_ms)
		VALUES (:id, :sequence, :timestamp, :phrase_id, :expected, :transcript, :score, :word_scores, :passed, :duration_ms)`,
		row)
	if err != nil {
		return "", fmt.Errorf("save attempt: %w", err)
	}
	return row.ID, nil
}

func (r *attemptRepo) RecentAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	where, args := whereOpts(opts)
	limit, args := limitOpts(opts, args)

	var rows []attemptRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM attempts"+where+" ORDER BY sequence DESC"+limit, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	records := make([]AttemptRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.record()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *attemptRepo) PhraseStats(ctx context.Context) ([]PhraseStat, error) {
	var rows []struct {
		PhraseID    string  `db:"phrase_id"`
		Expected    string  `db:"expected"`
		Attempts    int     `db:"attempts"`
		Passed      int     `db:"passed"`
		BestScore   int     `db:"best_score"`
		AvgScore    float64 `db:"avg_score"`
		LastAttempt int64   `db:"last_attempt"`
	}
	err := r.db.SelectContext(ctx, &rows, `SELECT
			phrase_id,
			MAX(expected) AS expected,
			COUNT(*) AS attempts,
			SUM(CASE WHEN passed THEN 1 ELSE 0 END) AS passed,
			MAX(score) AS best_score,
			AVG(score) AS avg_score,
			MAX(timestamp) AS last_attempt
		FROM attempts
		GROUP BY phrase_id
		ORDER BY attempts DESC, phrase_id`)
	if err != nil {
		return nil, fmt.Errorf("query phrase stats: %w", err)
	}

	stats := make([]PhraseStat, len(rows))
	for i, row := range rows {
		stats[i] = PhraseStat{
			PhraseID:    row.PhraseID,
			Expected:    row.Expected,
			Attempts:    row.Attempts,
			Passed:      row.Passed,
			BestScore:   row.BestScore,
			AvgScore:    row.AvgScore,
			LastAttempt: fromMillis(row.LastAttempt),
		}
	}
	return stats, nil
}

func (r *attemptRepo) Summary(ctx context.Context) (AttemptSummary, error) {
	var row struct {
		Attempts   int     `db:"attempts"`
		Passed     int     `db:"passed"`
		Phrases    int     `db:"phrases"`
		AvgScore   float64 `db:"avg_score"`
		BestScore  int     `db:"best_score"`
		DurationMs int64   `db:"duration_ms"`
	}
	err := r.db.GetContext(ctx, &row, `SELECT
			COUNT(*) AS attempts,
			COALESCE(SUM(CASE WHEN passed THEN 1 ELSE 0 END), 0) AS passed,
			COUNT(DISTINCT phrase_id) AS phrases,
			COALESCE(AVG(score), 0.0) AS avg_score,
			COALESCE(MAX(score), 0) AS best_score,
			COALESCE(SUM(duration_ms), 0) AS duration_ms
		FROM attempts`)
	if err != nil {
		return AttemptSummary{}, fmt.Errorf("query attempt summary: %w", err)
	}
	return AttemptSummary{
		Attempts:  row.Attempts,
		Passed:    row.Passed,
		Phrases:   row.Phrases,
		AvgScore:  row.AvgScore,
		BestScore: row.BestScore,
		Practice:  time.Duration(row.DurationMs) * time.Millisecond,
	}, nil
}
