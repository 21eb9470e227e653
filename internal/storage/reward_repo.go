package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type RewardRepo struct {
	db querier
}

func NewRewardRepo(db *sql.DB) *RewardRepo {
	return &RewardRepo{db: db}
}

// Grant records a reward. It returns false when the reward was already held.
func (r *RewardRepo) Grant(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO rewards (id, granted_at) VALUES (?, ?)
		ON CONFLICT(id) DO NOTHING
	`, id, formatTime(at))
	if err != nil {
		return false, fmt.Errorf("reward grant: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reward rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *RewardRepo) Has(ctx context.Context, id string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rewards WHERE id = ?`, id)
	var n int
	if err := row.Scan(&n); err != nil {
		return false, fmt.Errorf("reward has: %w", err)
	}
	return n > 0, nil
}

func (r *RewardRepo) ListAll(ctx context.Context) ([]Reward, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, granted_at FROM rewards ORDER BY granted_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("reward list: %w", err)
	}
	defer rows.Close()

	var out []Reward
	for rows.Next() {
		var (
			rw  Reward
			raw string
		)
		if err := rows.Scan(&rw.ID, &raw); err != nil {
			return nil, fmt.Errorf("reward scan: %w", err)
		}
		if rw.GrantedAt, err = parseTime(raw); err != nil {
			return nil, err
		}
		out = append(out, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reward rows: %w", err)
	}
	return out, nil
}
