package schedule

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/byten0kami/Neon-sub001/internal/theme"
)

// ScheduledEvent is one entry on the user's calendar.
type ScheduledEvent struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Notes     string         `json:"notes,omitempty"`
	Location  string         `json:"location,omitempty"`
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
	Priority  theme.Priority `json:"priority"`
	IsAllDay  bool           `json:"isAllDay"`
}

// NewEvent builds an event with a fresh id. The end must not precede the start.
func NewEvent(title string, start, end time.Time, p theme.Priority) (ScheduledEvent, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return ScheduledEvent{}, errors.New("title is required")
	}
	if end.Before(start) {
		return ScheduledEvent{}, errors.New("event ends before it starts")
	}
	return ScheduledEvent{
		ID:        uuid.NewString(),
		Title:     t,
		StartTime: start,
		EndTime:   end,
		Priority:  p,
	}, nil
}

func (e ScheduledEvent) Duration() time.Duration {
	d := e.EndTime.Sub(e.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

func (e ScheduledEvent) IsOngoing(now time.Time) bool {
	return !now.Before(e.StartTime) && now.Before(e.EndTime)
}

// TimeRangeLabel renders "15:04–16:30", or "all day".
func (e ScheduledEvent) TimeRangeLabel() string {
	if e.IsAllDay {
		return "all day"
	}
	return e.StartTime.Format("15:04") + "–" + e.EndTime.Format("15:04")
}

// Upcoming returns up to n events that have not ended, soonest first.
func Upcoming(events []ScheduledEvent, now time.Time, n int) []ScheduledEvent {
	var out []ScheduledEvent
	for _, e := range events {
		if e.EndTime.After(now) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// LatestEndHour is how late the latest event ends, in hours after local
// midnight of the day it started: an event from 21:00 to 01:00 scores 25.
// It returns -1 when nothing timed is scheduled.
func LatestEndHour(events []ScheduledEvent, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	latest := -1
	for _, e := range events {
		if e.IsAllDay {
			continue
		}
		if h := endHour(e, loc); h > latest {
			latest = h
		}
	}
	return latest
}

func endHour(e ScheduledEvent, loc *time.Location) int {
	start, end := e.StartTime.In(loc), e.EndTime.In(loc)
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	// Calendar days only, so DST shifts do not skew the count.
	days := int(time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC).Sub(time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)) / (24 * time.Hour))
	return days*24 + end.Hour()
}
