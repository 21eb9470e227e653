package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/byten0kami/Neon-sub001/internal/theme"
)

// UserProfile identifies the person using the app.
type UserProfile struct {
	ID          string    `json:"id"`
	Handle      string    `json:"handle"`
	DisplayName string    `json:"displayName"`
	Pronouns    string    `json:"pronouns,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	Onboarded   bool      `json:"onboarded"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewProfile(handle string, now time.Time) UserProfile {
	return UserProfile{
		ID:        uuid.NewString(),
		Handle:    strings.TrimPrefix(strings.TrimSpace(handle), "@"),
		CreatedAt: now,
	}
}

// Label is the name to greet the user with.
func (p UserProfile) Label() string {
	if n := strings.TrimSpace(p.DisplayName); n != "" {
		return n
	}
	if p.Handle != "" {
		return "@" + p.Handle
	}
	return "runner"
}

// SchedulePreferences shape how the day is planned.
type SchedulePreferences struct {
	WorkdayStartHour    int      `json:"workdayStartHour"`
	WorkdayEndHour      int      `json:"workdayEndHour"`
	FocusMinutes        int      `json:"focusMinutes"`
	BreakMinutes        int      `json:"breakMinutes"`
	ReminderLeadMinutes int      `json:"reminderLeadMinutes"`
	Use24HourClock      bool     `json:"use24HourClock"`
	PreferredTheme      theme.ID `json:"preferredTheme"`
}

func DefaultPreferences() SchedulePreferences {
	return SchedulePreferences{
		WorkdayStartHour:    9,
		WorkdayEndHour:      18,
		FocusMinutes:        25,
		BreakMinutes:        5,
		ReminderLeadMinutes: 10,
		Use24HourClock:      true,
		PreferredTheme:      theme.DefaultID,
	}
}

func (p SchedulePreferences) Validate() error {
	if p.WorkdayStartHour < 0 || p.WorkdayStartHour > 23 {
		return fmt.Errorf("workday start hour %d out of range", p.WorkdayStartHour)
	}
	if p.WorkdayEndHour < 1 || p.WorkdayEndHour > 24 {
		return fmt.Errorf("workday end hour %d out of range", p.WorkdayEndHour)
	}
	if p.WorkdayEndHour <= p.WorkdayStartHour {
		return fmt.Errorf("workday ends (%d) before it starts (%d)", p.WorkdayEndHour, p.WorkdayStartHour)
	}
	if p.FocusMinutes <= 0 {
		return fmt.Errorf("focus block must be positive (got %d)", p.FocusMinutes)
	}
	if p.BreakMinutes < 0 || p.ReminderLeadMinutes < 0 {
		return fmt.Errorf("break and reminder minutes must not be negative")
	}
	return nil
}

// FocusDuration is the configured focus block length.
func (p SchedulePreferences) FocusDuration() time.Duration {
	return time.Duration(p.FocusMinutes) * time.Minute
}
