package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type reviewRepo struct {
	db *sqlx.DB
}

type reviewRow struct {
	PhraseID     string  `db:"phrase_id"`
	Repetitions  int     `db:"repetitions"`
	IntervalDays int     `db:"interval_days"`
	Easiness     float64 `db:"easiness"`
	NextReview   int64   `db:"next_review"`
	LastReview   int64   `db:"last_review"`
	LastQuality  int     `db:"last_quality"`
}

func (r *reviewRepo) SaveReview(ctx context.Context, rec ReviewRecord) error {
	row := reviewRow{
		PhraseID:     rec.PhraseID,
		Repetitions:  rec.Repetitions,
		IntervalDays: rec.IntervalDays,
		Easiness:     rec.Easiness,
		NextReview:   toMillis(rec.NextReview),
		LastReview:   toMillis(rec.LastReview),
		LastQuality:  rec.LastQuality,
	}
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO reviews
		(phrase_id, repetitions, interval_days, easiness, next_review, last_review, last_quality)
		VALUES (:phrase_id, :repetitions, :interval_days, :easiness, :next_review, :last_review, :last_quality)
		ON CONFLICT (phrase_id) DO UPDATE SET
			repetitions = excluded.repetitions,
			interval_days = excluded.interval_days,
			easiness = excluded.easiness,
			next_review = excluded.next_review,
			last_review = excluded.last_review,
			last_quality = excluded.last_quality`,
		row)
	if err != nil {
		return fmt.Errorf("save review %s: %w", rec.PhraseID, err)
	}
	return nil
}

func (r *reviewRepo) LoadReviews(ctx context.Context) ([]ReviewRecord, error) {
	var rows []reviewRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM reviews ORDER BY phrase_id`); err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	records := make([]ReviewRecord, len(rows))
	for i, row := range rows {
		records[i] = ReviewRecord{
			PhraseID:     row.PhraseID,
			Repetitions:  row.Repetitions,
			IntervalDays: row.IntervalDays,
			Easiness:     row.Easiness,
			NextReview:   fromMillis(row.NextReview),
			LastReview:   fromMillis(row.LastReview),
			LastQuality:  row.LastQuality,
		}
	}
	return records, nil
}
