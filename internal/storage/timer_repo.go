package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/byten0kami/Neon-sub001/internal/schedule"
)

type TimerRepo struct {
	db querier
}

func NewTimerRepo(db *sql.DB) *TimerRepo {
	return &TimerRepo{db: db}
}

func (r *TimerRepo) Insert(ctx context.Context, t schedule.ActiveTimer) error {
	var eventID sql.NullString
	if t.EventID != nil {
		eventID = sql.NullString{String: *t.EventID, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO timers (id, label, start_time, end_time, event_id)
		VALUES (?, ?, ?, ?, ?)
	`, t.ID, t.Label, formatTime(t.StartTime), formatTime(t.EndTime), eventID)
	if err != nil {
		return fmt.Errorf("timer insert: %w", err)
	}
	return nil
}

func (r *TimerRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM timers WHERE id = ?`, id); err != nil {
		return fmt.Errorf("timer delete: %w", err)
	}
	return nil
}

// ListAll returns timers ordered by end time, soonest first.
func (r *TimerRepo) ListAll(ctx context.Context) ([]schedule.ActiveTimer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, label, start_time, end_time, event_id
		FROM timers
		ORDER BY end_time ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("timer list: %w", err)
	}
	defer rows.Close()

	var out []schedule.ActiveTimer
	for rows.Next() {
		var (
			t          schedule.ActiveTimer
			start, end string
			eventID    sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Label, &start, &end, &eventID); err != nil {
			return nil, fmt.Errorf("timer scan: %w", err)
		}
		if t.StartTime, err = parseTime(start); err != nil {
			return nil, err
		}
		if t.EndTime, err = parseTime(end); err != nil {
			return nil, err
		}
		if eventID.Valid {
			id := eventID.String
			t.EventID = &id
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("timer rows: %w", err)
	}
	return out, nil
}
