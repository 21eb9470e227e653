package engine

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/byten0kami/Neon-sub001/internal/storage"
	"github.com/byten0kami/Neon-sub001/internal/theme"
)

// Service is the application layer: it owns the store and plays the
// theme, reward, overlay and knowledge-base roles for the quest handlers.
type Service struct {
	db      *sql.DB
	repos   storage.Repos
	log     *zap.Logger
	overlay *Overlay

	now          func() time.Time
	loc          *time.Location
	defaultTheme theme.ID
}

type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the zone used for hour-of-day checks.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithDefaultTheme sets the theme used before the user picks one.
func WithDefaultTheme(id theme.ID) Option {
	return func(s *Service) {
		if id.IsValid() && !theme.RequiresUnlock(id) {
			s.defaultTheme = id
		}
	}
}

func NewService(db *sql.DB, log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		db:           db,
		repos:        storage.NewRepos(db),
		log:          log,
		now:          time.Now,
		loc:          time.Local,
		defaultTheme: theme.DefaultID,
	}
	s.overlay = newOverlay(log)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Repos() storage.Repos { return s.repos }

// Overlay is the session's overlay effect queue.
func (s *Service) Overlay() *Overlay { return s.overlay }

func (s *Service) Now() time.Time { return s.now() }

func (s *Service) withTx(ctx context.Context, fn func(r storage.Repos) error) error {
	return storage.WithTx(ctx, s.db, fn)
}
