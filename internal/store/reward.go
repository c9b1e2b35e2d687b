package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	keyCurrentStreak = "current_streak"
	keyBestStreak    = "best_streak"
)

type rewardRepo struct {
	db  *sqlx.DB
	seq *sequenceCounter
}

type awardRow struct {
	ID        int64  `db:"id"`
	Sequence  int64  `db:"sequence"`
	Timestamp int64  `db:"timestamp"`
	Kind      string `db:"kind"`
	PhraseID  string `db:"phrase_id"`
	Streak    int    `db:"streak"`
	Gems      int    `db:"gems"`
}

func (r *rewardRepo) AppendAward(ctx context.Context, data AwardData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.NamedExecContext(ctx, `INSERT INTO awards
		(sequence, timestamp, kind, phrase_id, streak, gems)
		VALUES (:sequence, :timestamp, :kind, :phrase_id, :streak, :gems)`,
		awardRow{
			Sequence:  seqNum,
			Timestamp: time.Now().UnixMilli(),
			Kind:      data.Kind,
			PhraseID:  data.PhraseID,
			Streak:    data.Streak,
			Gems:      data.Gems,
		})
	if err != nil {
		return fmt.Errorf("save award: %w", err)
	}
	return nil
}

func (r *rewardRepo) QueryAwards(ctx context.Context, opts QueryOpts) ([]AwardRecord, error) {
	where, args := whereOpts(opts)
	limit, args := limitOpts(opts, args)

	var rows []awardRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM awards"+where+" ORDER BY sequence DESC"+limit, args...)
	if err != nil {
		return nil, fmt.Errorf("query awards: %w", err)
	}

	records := make([]AwardRecord, len(rows))
	for i, row := range rows {
		records[i] = AwardRecord{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: fromMillis(row.Timestamp),
			Kind:      row.Kind,
			PhraseID:  row.PhraseID,
			Streak:    row.Streak,
			Gems:      row.Gems,
		}
	}
	return records, nil
}

func (r *rewardRepo) GemTotal(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COALESCE(SUM(gems), 0) FROM awards`); err != nil {
		return 0, fmt.Errorf("query gem total: %w", err)
	}
	return total, nil
}

func (r *rewardRepo) CurrentStreak(ctx context.Context) (int, error) {
	return r.stateValue(ctx, keyCurrentStreak)
}

func (r *rewardRepo) BestStreak(ctx context.Context) (int, error) {
	return r.stateValue(ctx, keyBestStreak)
}

// SaveStreak stores the running streak and raises the best streak when
// it is exceeded.
func (r *rewardRepo) SaveStreak(ctx context.Context, streak int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save streak: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO learner_state (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`, keyCurrentStreak, streak)
	if err != nil {
		return fmt.Errorf("save current streak: %w", err)
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO learner_state (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = MAX(value, excluded.value)`, keyBestStreak, streak)
	if err != nil {
		return fmt.Errorf("save best streak: %w", err)
	}
	return tx.Commit()
}

func (r *rewardRepo) stateValue(ctx context.Context, key string) (int, error) {
	var v int
	err := r.db.GetContext(ctx, &v, `SELECT value FROM learner_state WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query %s: %w", key, err)
	}
	return v, nil
}
