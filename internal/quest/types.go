package quest

import (
	"strings"
	"time"

	"github.com/byten0kami/Neon-sub001/internal/theme"
)

// Phase is the lifecycle position of a quest. Phases only move forward.
type Phase int

const (
	PhaseDormant Phase = iota
	PhaseAvailable
	PhaseTriggered
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseDormant:
		return "dormant"
	case PhaseAvailable:
		return "available"
	case PhaseTriggered:
		return "triggered"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ParsePhase reads a stored phase name. Unknown names map to dormant.
func ParsePhase(s string) Phase {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "available":
		return PhaseAvailable
	case "triggered":
		return PhaseTriggered
	case "completed":
		return PhaseCompleted
	default:
		return PhaseDormant
	}
}

// Event is something that happened in the app that quests may react to.
type Event string

const (
	EventTaskCompleted  Event = "task_completed"
	EventTimerFinished  Event = "timer_finished"
	EventEventScheduled Event = "event_scheduled"
	EventAppOpened      Event = "app_opened"
)

func ParseEvent(input string) (Event, bool) {
	s := strings.TrimSpace(strings.ToLower(input))
	s = strings.ReplaceAll(s, "-", "_")
	e := Event(s)
	switch e {
	case EventTaskCompleted, EventTimerFinished, EventEventScheduled, EventAppOpened:
		return e, true
	default:
		return "", false
	}
}

// Quest is the user-facing record of a quest.
type Quest struct {
	ID          string
	Title       string
	Description string
	ActiveFrom  *time.Time
	ActiveUntil *time.Time
	Completed   bool
	Progress    float64
	CompletedAt *time.Time
}

// ActiveAt reports whether t falls inside the quest's date window.
// A missing bound is open.
func (q Quest) ActiveAt(t time.Time) bool {
	if q.ActiveFrom != nil && t.Before(*q.ActiveFrom) {
		return false
	}
	if q.ActiveUntil != nil && t.After(*q.ActiveUntil) {
		return false
	}
	return true
}

// OverlayEffects shows a one-shot visual effect on top of the UI.
type OverlayEffects interface {
	ShowEffect(effect string)
}

// RewardGranter records that a reward was earned.
type RewardGranter interface {
	UnlockReward(id string)
}

// ThemeSetter switches the active theme.
type ThemeSetter interface {
	SetTheme(id theme.ID)
}

// Deps are the collaborators a handler calls into.
type Deps struct {
	Overlay OverlayEffects
	Rewards RewardGranter
	Themes  ThemeSetter
}

// Context carries what availability predicates look at.
type Context struct {
	Now            time.Time
	Onboarded      bool
	CompletedTasks int
	ScheduledCount int
	// LatestEndHour is how late the latest scheduled event ends, in hours
	// after midnight of its start day (past 23 when it crosses midnight),
	// or -1 when nothing is scheduled.
	LatestEndHour int
}

// Definition describes one quest and what happens when it plays out.
type Definition struct {
	Quest    Quest
	Effect   string
	RewardID string

	// Available decides whether a dormant quest may be promoted.
	Available func(Context) bool
	// OnComplete is the quest-specific side effect run once on completion.
	OnComplete func(Deps)
}
