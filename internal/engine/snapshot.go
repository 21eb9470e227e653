package engine

import (
	"context"
	"time"

	"github.com/byten0kami/Neon-sub001/internal/schedule"
	"github.com/byten0kami/Neon-sub001/internal/theme"
)

// Snapshot is everything the board renders in one read.
type Snapshot struct {
	Now            time.Time
	Profile        schedule.UserProfile
	HasProfile     bool
	Theme          theme.Descriptor
	Themes         []ThemeStatus
	Quests         []QuestView
	Upcoming       []schedule.ScheduledEvent
	Timers         []schedule.ActiveTimer
	CompletedTasks int
	Effects        []string
}

// BoardEvents caps the upcoming list on the board.
const BoardEvents = 8

// Snapshot reads the board state and drains pending overlay effects.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{Now: s.now()}
	var err error

	if snap.Profile, snap.HasProfile, err = s.Profile(ctx); err != nil {
		return nil, err
	}
	if snap.Theme, err = s.ActiveTheme(ctx); err != nil {
		return nil, err
	}
	if snap.Themes, err = s.ThemeStatuses(ctx); err != nil {
		return nil, err
	}
	if snap.Quests, err = s.Quests(ctx); err != nil {
		return nil, err
	}
	if snap.Upcoming, err = s.UpcomingEvents(ctx, BoardEvents); err != nil {
		return nil, err
	}
	if snap.Timers, err = s.Timers(ctx); err != nil {
		return nil, err
	}
	if snap.CompletedTasks, err = s.CompletedTasks(ctx); err != nil {
		return nil, err
	}
	snap.Effects = s.overlay.DrainEffects()
	return snap, nil
}

// CycleTheme switches to the next unlocked theme after the active one.
func (s *Service) CycleTheme(ctx context.Context) (theme.Descriptor, error) {
	statuses, err := s.ThemeStatuses(ctx)
	if err != nil {
		return theme.Descriptor{}, err
	}
	cur := 0
	for i, st := range statuses {
		if st.Active {
			cur = i
			break
		}
	}
	for step := 1; step <= len(statuses); step++ {
		st := statuses[(cur+step)%len(statuses)]
		if !st.Locked {
			return s.SetTheme(ctx, st.Theme.ID)
		}
	}
	return s.ActiveTheme(ctx)
}
