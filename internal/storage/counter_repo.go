package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Counter names.
const CounterCompletedTasks = "completed_tasks"

type CounterRepo struct {
	db querier
}

func NewCounterRepo(db *sql.DB) *CounterRepo {
	return &CounterRepo{db: db}
}

func (r *CounterRepo) Get(ctx context.Context, name string) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM counters WHERE name = ?`, name)
	var n int
	if err := row.Scan(&n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("counter get %s: %w", name, err)
	}
	return n, nil
}

// Add increments the counter by delta and returns the new value.
func (r *CounterRepo) Add(ctx context.Context, name string, delta int) (int, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO counters (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = value + excluded.value
	`, name, delta)
	if err != nil {
		return 0, fmt.Errorf("counter add %s: %w", name, err)
	}
	return r.Get(ctx, name)
}
