package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/byten0kami/Neon-sub001/internal/schedule"
)

// Setting keys.
const (
	KeyActiveTheme = "active_theme"
	KeyProfile     = "profile"
	KeyPreferences = "preferences"
)

type SettingsRepo struct {
	db querier
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get returns the stored value and whether the key exists.
func (r *SettingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("settings get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("settings set %s: %w", key, err)
	}
	return nil
}

// GetJSON decodes the value under key into v. It reports false when unset.
func (r *SettingsRepo) GetJSON(ctx context.Context, key string, v any) (bool, error) {
	raw, ok, err := r.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := schedule.Decode([]byte(raw), v); err != nil {
		return false, fmt.Errorf("settings %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores v using the schedule record encoding.
func (r *SettingsRepo) SetJSON(ctx context.Context, key string, v any) error {
	data, err := schedule.Encode(v)
	if err != nil {
		return fmt.Errorf("settings %s: %w", key, err)
	}
	return r.Set(ctx, key, string(data))
}
