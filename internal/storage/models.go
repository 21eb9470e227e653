package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Reward is a granted reward id.
type Reward struct {
	ID        string    `json:"id"`
	GrantedAt time.Time `json:"grantedAt"`
}

// QuestState is the persisted lifecycle position of one quest.
type QuestState struct {
	ID          string
	Phase       string
	Progress    float64
	CompletedAt *time.Time
}

// Times are stored as RFC 3339 text in UTC so they sort lexically.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t, nil
}

func formatNullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func parseNullTime(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	t, err := parseTime(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
