package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/byten0kami/Neon-sub001/internal/knowledge"
)

type FactRepo struct {
	db querier
}

func NewFactRepo(db *sql.DB) *FactRepo {
	return &FactRepo{db: db}
}

func (r *FactRepo) Insert(ctx context.Context, f knowledge.Fact) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO facts (id, category, content, ai_note, is_active)
		VALUES (?, ?, ?, ?, ?)
	`, f.ID, f.Category, f.Content, f.AINote, boolToInt(f.IsActive))
	if err != nil {
		return fmt.Errorf("fact insert: %w", err)
	}
	return nil
}

func (r *FactRepo) SetActive(ctx context.Context, id string, active bool) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE facts SET is_active = ? WHERE id = ?`, boolToInt(active), id); err != nil {
		return fmt.Errorf("fact set active: %w", err)
	}
	return nil
}

// ListAll returns facts in insertion order.
func (r *FactRepo) ListAll(ctx context.Context) ([]knowledge.Fact, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, category, content, ai_note, is_active
		FROM facts
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("fact list: %w", err)
	}
	defer rows.Close()

	var out []knowledge.Fact
	for rows.Next() {
		var (
			f      knowledge.Fact
			note   sql.NullString
			active int
		)
		if err := rows.Scan(&f.ID, &f.Category, &f.Content, &note, &active); err != nil {
			return nil, fmt.Errorf("fact scan: %w", err)
		}
		f.AINote = note.String
		f.IsActive = active != 0
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fact rows: %w", err)
	}
	return out, nil
}
