package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS rewards (
			id TEXT PRIMARY KEY,
			granted_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS quests (
			id TEXT PRIMARY KEY,
			phase TEXT NOT NULL DEFAULT 'dormant',
			progress REAL NOT NULL DEFAULT 0,
			completed_at TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			notes TEXT,
			location TEXT,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			priority TEXT NOT NULL DEFAULT 'medium',
			all_day INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS timers (
			id TEXT PRIMARY KEY,
			label TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			event_id TEXT NULL,
			FOREIGN KEY(event_id) REFERENCES events(id) ON DELETE SET NULL
		);`,
		`CREATE TABLE IF NOT EXISTS facts (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			category TEXT NOT NULL,
			content TEXT NOT NULL,
			ai_note TEXT,
			is_active INTEGER NOT NULL DEFAULT 1
		);`,
		// Running tallies (e.g. completed tasks) that quests look at.
		`CREATE TABLE IF NOT EXISTS counters (
			name TEXT PRIMARY KEY,
			value INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_start_time ON events(start_time);`,
		`CREATE INDEX IF NOT EXISTS idx_facts_category ON facts(category);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Columns added after the first release; ignore if they already exist.
	alterStmts := []string{
		`ALTER TABLE events ADD COLUMN location TEXT;`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	return nil
}
