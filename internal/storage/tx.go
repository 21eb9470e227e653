package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// querier is satisfied by both *sql.DB and *sql.Tx so repos can run
// inside or outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repos bundles every repository over one querier.
type Repos struct {
	Settings *SettingsRepo
	Rewards  *RewardRepo
	Quests   *QuestRepo
	Events   *EventRepo
	Timers   *TimerRepo
	Facts    *FactRepo
	Counters *CounterRepo
}

func newRepos(q querier) Repos {
	return Repos{
		Settings: &SettingsRepo{db: q},
		Rewards:  &RewardRepo{db: q},
		Quests:   &QuestRepo{db: q},
		Events:   &EventRepo{db: q},
		Timers:   &TimerRepo{db: q},
		Facts:    &FactRepo{db: q},
		Counters: &CounterRepo{db: q},
	}
}

// NewRepos returns repositories bound directly to db.
func NewRepos(db *sql.DB) Repos {
	return newRepos(db)
}

// WithTx runs fn with repositories bound to a single SQL transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func WithTx(ctx context.Context, db *sql.DB, fn func(r Repos) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(newRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}
