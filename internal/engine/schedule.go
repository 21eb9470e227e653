package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/byten0kami/Neon-sub001/internal/quest"
	"github.com/byten0kami/Neon-sub001/internal/schedule"
	"github.com/byten0kami/Neon-sub001/internal/storage"
	"github.com/byten0kami/Neon-sub001/internal/theme"
)

// Profile returns the stored profile, or false before one is saved.
func (s *Service) Profile(ctx context.Context) (schedule.UserProfile, bool, error) {
	var p schedule.UserProfile
	ok, err := s.repos.Settings.GetJSON(ctx, storage.KeyProfile, &p)
	if err != nil {
		return schedule.UserProfile{}, false, err
	}
	return p, ok, nil
}

// SaveProfile stores the profile and re-checks quests, since onboarding
// gates some of them.
func (s *Service) SaveProfile(ctx context.Context, p schedule.UserProfile) ([]string, error) {
	p.Handle = strings.TrimPrefix(strings.TrimSpace(p.Handle), "@")
	if p.Handle == "" {
		return nil, errors.New("handle is required")
	}
	if p.ID == "" {
		fresh := schedule.NewProfile(p.Handle, s.now())
		p.ID = fresh.ID
		p.CreatedAt = fresh.CreatedAt
	}

	var promoted []string
	err := s.questTx(ctx, func(d *txDeps, hs []*quest.Handler) error {
		if err := d.r.Settings.SetJSON(ctx, storage.KeyProfile, p); err != nil {
			return err
		}
		var err error
		promoted, err = s.refresh(ctx, d.r, hs)
		return err
	})
	return promoted, err
}

// Preferences returns stored preferences or the defaults.
func (s *Service) Preferences(ctx context.Context) (schedule.SchedulePreferences, error) {
	p := schedule.DefaultPreferences()
	if _, err := s.repos.Settings.GetJSON(ctx, storage.KeyPreferences, &p); err != nil {
		return schedule.SchedulePreferences{}, err
	}
	return p, nil
}

func (s *Service) SavePreferences(ctx context.Context, p schedule.SchedulePreferences) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.PreferredTheme.IsValid() {
		p.PreferredTheme = theme.DefaultID
	}
	return s.repos.Settings.SetJSON(ctx, storage.KeyPreferences, p)
}

// AddEventInput is what the user types to schedule something.
type AddEventInput struct {
	Title    string
	Notes    string
	Location string
	Start    time.Time
	End      time.Time
	Priority theme.Priority
	AllDay   bool
}

// AddEvent schedules an event, fires event_scheduled and re-checks quests.
func (s *Service) AddEvent(ctx context.Context, in AddEventInput) (schedule.ScheduledEvent, []string, error) {
	e, err := schedule.NewEvent(in.Title, in.Start, in.End, in.Priority)
	if err != nil {
		return schedule.ScheduledEvent{}, nil, err
	}
	e.Notes = strings.TrimSpace(in.Notes)
	e.Location = strings.TrimSpace(in.Location)
	e.IsAllDay = in.AllDay

	var promoted []string
	err = s.questTx(ctx, func(d *txDeps, hs []*quest.Handler) error {
		if err := d.r.Events.Insert(ctx, e); err != nil {
			return err
		}
		if _, err := s.fire(ctx, d.r, hs, quest.EventEventScheduled); err != nil {
			return err
		}
		var err error
		promoted, err = s.refresh(ctx, d.r, hs)
		return err
	})
	if err != nil {
		return schedule.ScheduledEvent{}, nil, err
	}
	s.log.Info("event scheduled", zap.String("id", e.ID), zap.String("title", e.Title))
	return e, promoted, nil
}

func (s *Service) Events(ctx context.Context) ([]schedule.ScheduledEvent, error) {
	return s.repos.Events.ListAll(ctx)
}

// UpcomingEvents returns up to n events that have not ended yet.
func (s *Service) UpcomingEvents(ctx context.Context, n int) ([]schedule.ScheduledEvent, error) {
	events, err := s.repos.Events.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.Upcoming(events, s.now(), n), nil
}

func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	ok, err := s.repos.Events.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unknown event: %s", id)
	}
	return nil
}

// StartTimer starts a countdown, optionally linked to a scheduled event.
func (s *Service) StartTimer(ctx context.Context, label string, d time.Duration, eventID string) (schedule.ActiveTimer, error) {
	t, err := schedule.NewTimer(label, s.now(), d)
	if err != nil {
		return schedule.ActiveTimer{}, err
	}
	if id := strings.TrimSpace(eventID); id != "" {
		t.EventID = &id
	}
	if err := s.repos.Timers.Insert(ctx, t); err != nil {
		return schedule.ActiveTimer{}, err
	}
	s.log.Info("timer started", zap.String("id", t.ID), zap.Duration("duration", d))
	return t, nil
}

func (s *Service) Timers(ctx context.Context) ([]schedule.ActiveTimer, error) {
	return s.repos.Timers.ListAll(ctx)
}

// FinishTimers removes every elapsed timer and fires timer_finished once
// per timer. It returns the timers it removed.
func (s *Service) FinishTimers(ctx context.Context) ([]schedule.ActiveTimer, error) {
	now := s.now()
	var finished []schedule.ActiveTimer
	err := s.questTx(ctx, func(d *txDeps, hs []*quest.Handler) error {
		timers, err := d.r.Timers.ListAll(ctx)
		if err != nil {
			return err
		}
		for _, t := range timers {
			if !t.Finished(now) {
				continue
			}
			if err := d.r.Timers.Delete(ctx, t.ID); err != nil {
				return err
			}
			if _, err := s.fire(ctx, d.r, hs, quest.EventTimerFinished); err != nil {
				return err
			}
			finished = append(finished, t)
		}
		return nil
	})
	return finished, err
}

// TaskResult reports what closing out a task did to the quests.
type TaskResult struct {
	CompletedTasks int
	Triggered      []string
	Available      []string
}

// CompleteTask counts a finished task. The event reaches quests that were
// already available first; quests the new count makes available wait for
// the next task.
func (s *Service) CompleteTask(ctx context.Context) (TaskResult, error) {
	var res TaskResult
	err := s.questTx(ctx, func(d *txDeps, hs []*quest.Handler) error {
		var err error
		if res.Triggered, err = s.fire(ctx, d.r, hs, quest.EventTaskCompleted); err != nil {
			return err
		}
		if res.CompletedTasks, err = d.r.Counters.Add(ctx, storage.CounterCompletedTasks, 1); err != nil {
			return err
		}
		res.Available, err = s.refresh(ctx, d.r, hs)
		return err
	})
	if err != nil {
		return TaskResult{}, err
	}
	s.log.Debug("task completed", zap.Int("total", res.CompletedTasks))
	return res, nil
}

func (s *Service) CompletedTasks(ctx context.Context) (int, error) {
	return s.repos.Counters.Get(ctx, storage.CounterCompletedTasks)
}
