package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActiveTimer is a running countdown, optionally tied to an event.
type ActiveTimer struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	EventID   *string   `json:"eventId,omitempty"`
}

func NewTimer(label string, start time.Time, d time.Duration) (ActiveTimer, error) {
	l := strings.TrimSpace(label)
	if l == "" {
		return ActiveTimer{}, errors.New("label is required")
	}
	if d <= 0 {
		return ActiveTimer{}, errors.New("timer duration must be positive")
	}
	return ActiveTimer{
		ID:        uuid.NewString(),
		Label:     l,
		StartTime: start,
		EndTime:   start.Add(d),
	}, nil
}

// RemainingSeconds is the whole seconds left, clamped at zero.
func (t ActiveTimer) RemainingSeconds(now time.Time) int {
	left := t.EndTime.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(left / time.Second)
}

func (t ActiveTimer) Finished(now time.Time) bool {
	return !now.Before(t.EndTime)
}

// Progress is the elapsed fraction in [0,1].
func (t ActiveTimer) Progress(now time.Time) float64 {
	total := t.EndTime.Sub(t.StartTime)
	if total <= 0 {
		return 1
	}
	elapsed := now.Sub(t.StartTime)
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= total:
		return 1
	default:
		return float64(elapsed) / float64(total)
	}
}

// RemainingLabel renders the time left as "mm:ss" or "h:mm:ss".
func (t ActiveTimer) RemainingLabel(now time.Time) string {
	s := t.RemainingSeconds(now)
	h, m, sec := s/3600, (s%3600)/60, s%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}
