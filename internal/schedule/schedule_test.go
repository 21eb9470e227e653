package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/byten0kami/Neon-sub001/internal/theme"
)

var base = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func TestRemainingSecondsClampsAtZero(t *testing.T) {
	timer, err := NewTimer("focus", base, 25*time.Minute)
	if err != nil {
		t.Fatalf("NewTimer: %v", err)
	}
	cases := []struct {
		now  time.Time
		want int
	}{
		{base, 1500},
		{base.Add(10*time.Minute + 500*time.Millisecond), 899},
		{base.Add(25 * time.Minute), 0},
		{base.Add(3 * time.Hour), 0},
	}
	for _, tc := range cases {
		if got := timer.RemainingSeconds(tc.now); got != tc.want {
			t.Fatalf("RemainingSeconds(%s)=%d, want %d", tc.now, got, tc.want)
		}
	}
	if !timer.Finished(base.Add(25 * time.Minute)) {
		t.Fatalf("timer should be finished at its end time")
	}
}

func TestTimerProgressAndLabel(t *testing.T) {
	timer, _ := NewTimer("deep work", base, 2*time.Hour)
	if got := timer.Progress(base.Add(-time.Minute)); got != 0 {
		t.Fatalf("Progress before start=%v, want 0", got)
	}
	if got := timer.Progress(base.Add(time.Hour)); got != 0.5 {
		t.Fatalf("Progress halfway=%v, want 0.5", got)
	}
	if got := timer.Progress(base.Add(5 * time.Hour)); got != 1 {
		t.Fatalf("Progress after end=%v, want 1", got)
	}
	if got := timer.RemainingLabel(base.Add(30 * time.Second)); got != "1:59:30" {
		t.Fatalf("RemainingLabel=%q, want 1:59:30", got)
	}
	if got := timer.RemainingLabel(base.Add(119 * time.Minute)); got != "01:00" {
		t.Fatalf("RemainingLabel=%q, want 01:00", got)
	}
}

func TestNewTimerValidates(t *testing.T) {
	if _, err := NewTimer("  ", base, time.Minute); err == nil {
		t.Fatalf("expected error for empty label")
	}
	if _, err := NewTimer("x", base, 0); err == nil {
		t.Fatalf("expected error for zero duration")
	}
}

func TestNewEventValidates(t *testing.T) {
	if _, err := NewEvent("", base, base, theme.PriorityLow); err == nil {
		t.Fatalf("expected error for empty title")
	}
	if _, err := NewEvent("standup", base, base.Add(-time.Minute), theme.PriorityLow); err == nil {
		t.Fatalf("expected error for inverted range")
	}
	e, err := NewEvent(" standup ", base, base.Add(15*time.Minute), theme.PriorityHigh)
	if err != nil {
		t.Fatalf("NewEvent: %v", err)
	}
	if e.ID == "" || e.Title != "standup" {
		t.Fatalf("event=%+v", e)
	}
	if e.Duration() != 15*time.Minute {
		t.Fatalf("Duration()=%s", e.Duration())
	}
	if !e.IsOngoing(base) || e.IsOngoing(base.Add(15*time.Minute)) {
		t.Fatalf("IsOngoing bounds wrong")
	}
	if got := e.TimeRangeLabel(); got != "09:00–09:15" {
		t.Fatalf("TimeRangeLabel()=%q", got)
	}
}

func TestUpcomingAndLatestEndHour(t *testing.T) {
	past := ScheduledEvent{ID: "a", StartTime: base.Add(-3 * time.Hour), EndTime: base.Add(-2 * time.Hour)}
	late := ScheduledEvent{ID: "b", StartTime: base.Add(12 * time.Hour), EndTime: base.Add(14 * time.Hour)}
	soon := ScheduledEvent{ID: "c", StartTime: base.Add(time.Hour), EndTime: base.Add(2 * time.Hour)}
	allDay := ScheduledEvent{ID: "d", StartTime: base, EndTime: base.Add(15 * time.Hour), IsAllDay: true}

	got := Upcoming([]ScheduledEvent{past, late, soon}, base, 5)
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "b" {
		t.Fatalf("Upcoming=%v", got)
	}
	if got := Upcoming([]ScheduledEvent{late, soon}, base, 1); len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("Upcoming limit=%v", got)
	}

	if h := LatestEndHour([]ScheduledEvent{past, late, soon, allDay}, time.UTC); h != 23 {
		t.Fatalf("LatestEndHour=%d, want 23", h)
	}
	if h := LatestEndHour(nil, time.UTC); h != -1 {
		t.Fatalf("LatestEndHour(nil)=%d, want -1", h)
	}
}

func TestLatestEndHourCrossesMidnight(t *testing.T) {
	start := time.Date(2026, 10, 16, 21, 0, 0, 0, time.UTC)
	overnight := ScheduledEvent{ID: "n", StartTime: start, EndTime: start.Add(4 * time.Hour)}
	if h := LatestEndHour([]ScheduledEvent{overnight}, time.UTC); h != 25 {
		t.Fatalf("LatestEndHour(21:00-01:00)=%d, want 25", h)
	}

	// 23:00 UTC is 01:00 the next day in UTC+2.
	loc := time.FixedZone("UTC+2", 2*60*60)
	evening := ScheduledEvent{ID: "e", StartTime: start, EndTime: start.Add(2 * time.Hour)}
	if h := LatestEndHour([]ScheduledEvent{evening}, loc); h != 25 {
		t.Fatalf("LatestEndHour in UTC+2=%d, want 25", h)
	}
}

func TestPreferencesValidate(t *testing.T) {
	if err := DefaultPreferences().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	bad := DefaultPreferences()
	bad.WorkdayEndHour = 8
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error when workday ends before it starts")
	}
	bad = DefaultPreferences()
	bad.FocusMinutes = 0
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for zero focus minutes")
	}
}

func TestProfileLabel(t *testing.T) {
	p := NewProfile("@vex", base)
	if p.Handle != "vex" || p.ID == "" {
		t.Fatalf("profile=%+v", p)
	}
	if p.Label() != "@vex" {
		t.Fatalf("Label()=%q, want @vex", p.Label())
	}
	p.DisplayName = "Vex"
	if p.Label() != "Vex" {
		t.Fatalf("Label()=%q, want Vex", p.Label())
	}
}

func TestEncodeSortsKeysAndNormalizesDates(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	e := ScheduledEvent{
		ID:        "evt-1",
		Title:     "Ripperdoc",
		StartTime: time.Date(2026, 10, 16, 11, 0, 0, 0, loc),
		EndTime:   time.Date(2026, 10, 16, 12, 0, 0, 0, loc),
		Priority:  theme.PriorityCritical,
	}
	data, err := Encode(e)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `{"endTime":"2026-10-16T10:00:00Z","id":"evt-1","isAllDay":false,"priority":"critical","startTime":"2026-10-16T09:00:00Z","title":"Ripperdoc"}`
	if string(data) != want {
		t.Fatalf("Encode=\n%s\nwant\n%s", data, want)
	}

	var back ScheduledEvent
	if err := Decode(data, &back); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back.Priority != theme.PriorityCritical || !back.EndTime.Equal(e.EndTime) {
		t.Fatalf("decoded=%+v", back)
	}
}

func TestEncodeLeavesDateShapedTextAlone(t *testing.T) {
	title := "2026-01-01T10:00:00+05:00"
	e := ScheduledEvent{
		ID:        "evt-2",
		Title:     title,
		Notes:     "2026-01-01T10:00:00+05:00",
		StartTime: time.Date(2026, 1, 1, 9, 30, 0, 250_000_000, time.UTC),
		EndTime:   time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	data, err := Encode(e)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var back ScheduledEvent
	if err := Decode(data, &back); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back.Title != title || back.Notes != title {
		t.Fatalf("text rewritten: title=%q notes=%q", back.Title, back.Notes)
	}
	if !back.StartTime.Equal(e.StartTime) {
		t.Fatalf("StartTime=%v, want %v", back.StartTime, e.StartTime)
	}

	p := NewProfile("2026-01-01T10:00:00+05:00", base)
	data, err = Encode(p)
	if err != nil {
		t.Fatalf("Encode profile: %v", err)
	}
	var pb UserProfile
	if err := Decode(data, &pb); err != nil {
		t.Fatalf("Decode profile: %v", err)
	}
	if pb.Handle != p.Handle || !pb.CreatedAt.Equal(base) {
		t.Fatalf("profile=%+v", pb)
	}
}

func TestEncodeNestedAndLargeNumbers(t *testing.T) {
	v := map[string]any{
		"z":     1,
		"a":     []any{map[string]any{"y": 2, "b": 3}},
		"big":   int64(9007199254740993),
		"plain": "not a date",
	}
	data, err := Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `{"a":[{"b":3,"y":2}],"big":9007199254740993,"plain":"not a date","z":1}`
	if string(data) != want {
		t.Fatalf("Encode=%s, want %s", data, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	data, err := EncodeIndent(DefaultPreferences())
	if err != nil {
		t.Fatalf("EncodeIndent: %v", err)
	}
	s := string(data)
	if !strings.HasPrefix(s, "{\n  \"breakMinutes\": 5,") {
		t.Fatalf("EncodeIndent=%s", s)
	}
	if !strings.Contains(s, `"preferredTheme": "neon_grid"`) {
		t.Fatalf("EncodeIndent missing theme: %s", s)
	}
}

func TestDecodeError(t *testing.T) {
	var p UserProfile
	if err := Decode([]byte("{"), &p); err == nil {
		t.Fatalf("expected decode error")
	}
}
