package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type QuestRepo struct {
	db querier
}

func NewQuestRepo(db *sql.DB) *QuestRepo {
	return &QuestRepo{db: db}
}

func (r *QuestRepo) Get(ctx context.Context, id string) (*QuestState, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, phase, progress, completed_at FROM quests WHERE id = ?`, id)
	var (
		q   QuestState
		raw sql.NullString
	)
	if err := row.Scan(&q.ID, &q.Phase, &q.Progress, &raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("quest get: %w", err)
	}
	at, err := parseNullTime(raw)
	if err != nil {
		return nil, err
	}
	q.CompletedAt = at
	return &q, nil
}

func (r *QuestRepo) Upsert(ctx context.Context, q QuestState) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quests (id, phase, progress, completed_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			phase = excluded.phase,
			progress = excluded.progress,
			completed_at = excluded.completed_at
	`, q.ID, q.Phase, q.Progress, formatNullTime(q.CompletedAt))
	if err != nil {
		return fmt.Errorf("quest upsert: %w", err)
	}
	return nil
}

func (r *QuestRepo) ListAll(ctx context.Context) ([]QuestState, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, phase, progress, completed_at FROM quests ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("quest list: %w", err)
	}
	defer rows.Close()

	var out []QuestState
	for rows.Next() {
		var (
			q   QuestState
			raw sql.NullString
		)
		if err := rows.Scan(&q.ID, &q.Phase, &q.Progress, &raw); err != nil {
			return nil, fmt.Errorf("quest scan: %w", err)
		}
		if q.CompletedAt, err = parseNullTime(raw); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quest rows: %w", err)
	}
	return out, nil
}
