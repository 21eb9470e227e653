package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/byten0kami/Neon-sub001/internal/schedule"
	"github.com/byten0kami/Neon-sub001/internal/theme"
)

type EventRepo struct {
	db querier
}

func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

func (r *EventRepo) Insert(ctx context.Context, e schedule.ScheduledEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (id, title, notes, location, start_time, end_time, priority, all_day)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Title, e.Notes, e.Location, formatTime(e.StartTime), formatTime(e.EndTime), e.Priority.String(), boolToInt(e.IsAllDay))
	if err != nil {
		return fmt.Errorf("event insert: %w", err)
	}
	return nil
}

func (r *EventRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("event delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("event rows affected: %w", err)
	}
	return n > 0, nil
}

// ListAll returns every event ordered by start time.
func (r *EventRepo) ListAll(ctx context.Context) ([]schedule.ScheduledEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, notes, location, start_time, end_time, priority, all_day
		FROM events
		ORDER BY start_time ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("event list: %w", err)
	}
	defer rows.Close()

	var out []schedule.ScheduledEvent
	for rows.Next() {
		var (
			e               schedule.ScheduledEvent
			notes, location sql.NullString
			start, end      string
			prio            string
			allDay          int
		)
		if err := rows.Scan(&e.ID, &e.Title, &notes, &location, &start, &end, &prio, &allDay); err != nil {
			return nil, fmt.Errorf("event scan: %w", err)
		}
		e.Notes = notes.String
		e.Location = location.String
		e.Priority = theme.ParsePriority(prio)
		e.IsAllDay = allDay != 0
		if e.StartTime, err = parseTime(start); err != nil {
			return nil, err
		}
		if e.EndTime, err = parseTime(end); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("event rows: %w", err)
	}
	return out, nil
}
