package engine

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/byten0kami/Neon-sub001/internal/quest"
	"github.com/byten0kami/Neon-sub001/internal/schedule"
	"github.com/byten0kami/Neon-sub001/internal/storage"
	"github.com/byten0kami/Neon-sub001/internal/theme"
)

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }
func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestService(t *testing.T) (*Service, *testClock) {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	clock := &testClock{t: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	svc := NewService(db, zap.NewNop(), WithClock(clock.now), WithLocation(time.UTC))
	return svc, clock
}

func questPhase(t *testing.T, svc *Service, id string) quest.Phase {
	t.Helper()
	qs, err := svc.Quests(context.Background())
	if err != nil {
		t.Fatalf("Quests: %v", err)
	}
	for _, q := range qs {
		if q.ID == id {
			return q.Phase
		}
	}
	t.Fatalf("quest %s not listed", id)
	return quest.PhaseDormant
}

func onboard(t *testing.T, svc *Service) []string {
	t.Helper()
	promoted, err := svc.SaveProfile(context.Background(), schedule.UserProfile{Handle: "@case", Onboarded: true})
	if err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	return promoted
}

func TestDefaultThemeAndLockedSwitch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.ActiveTheme(ctx)
	if err != nil {
		t.Fatalf("ActiveTheme: %v", err)
	}
	if d.ID != theme.DefaultID {
		t.Fatalf("active=%s, want %s", d.ID, theme.DefaultID)
	}

	_, err = svc.SetTheme(ctx, theme.Netrunner)
	var locked LockedThemeError
	if !errors.As(err, &locked) {
		t.Fatalf("SetTheme(netrunner) err=%v, want LockedThemeError", err)
	}
	if locked.RewardID != theme.RewardFirstJackIn {
		t.Fatalf("reward=%s, want %s", locked.RewardID, theme.RewardFirstJackIn)
	}

	d, err = svc.SetTheme(ctx, theme.Synthwave)
	if err != nil || d.ID != theme.Synthwave {
		t.Fatalf("SetTheme(synthwave)=(%s, %v)", d.ID, err)
	}

	d, err = svc.SetTheme(ctx, theme.ID("vaporware"))
	if err != nil || d.ID != theme.DefaultID {
		t.Fatalf("SetTheme(unknown)=(%s, %v), want default", d.ID, err)
	}
}

func TestStoredLockedThemeFallsBack(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.Repos().Settings.Set(ctx, storage.KeyActiveTheme, string(theme.Glitch)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	d, err := svc.ActiveTheme(ctx)
	if err != nil {
		t.Fatalf("ActiveTheme: %v", err)
	}
	if d.ID != theme.DefaultID {
		t.Fatalf("active=%s, want fallback %s", d.ID, theme.DefaultID)
	}
}

func TestFirstJackInFlow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.CompleteTask(ctx)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if len(res.Triggered) != 0 {
		t.Fatalf("triggered=%v before onboarding", res.Triggered)
	}

	if got := onboard(t, svc); !reflect.DeepEqual(got, []string{quest.FirstJackIn}) {
		t.Fatalf("promoted=%v, want [%s]", got, quest.FirstJackIn)
	}

	res, err = svc.CompleteTask(ctx)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if !reflect.DeepEqual(res.Triggered, []string{quest.FirstJackIn}) {
		t.Fatalf("triggered=%v", res.Triggered)
	}
	if res.CompletedTasks != 2 {
		t.Fatalf("completed=%d, want 2", res.CompletedTasks)
	}
	if got := svc.Overlay().DrainEffects(); !reflect.DeepEqual(got, []string{quest.EffectGlitchBurst}) {
		t.Fatalf("effects=%v", got)
	}

	// A second task must not replay the effect.
	if _, err := svc.CompleteTask(ctx); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if got := svc.Overlay().DrainEffects(); len(got) != 0 {
		t.Fatalf("effects replayed: %v", got)
	}

	ok, err := svc.CompleteQuest(ctx, quest.FirstJackIn)
	if err != nil || !ok {
		t.Fatalf("CompleteQuest=(%v, %v)", ok, err)
	}
	if has, _ := svc.HasReward(ctx, theme.RewardFirstJackIn); !has {
		t.Fatalf("reward not granted")
	}
	d, err := svc.ActiveTheme(ctx)
	if err != nil || d.ID != theme.Netrunner {
		t.Fatalf("active=(%s, %v), want netrunner", d.ID, err)
	}
	if p := questPhase(t, svc, quest.FirstJackIn); p != quest.PhaseCompleted {
		t.Fatalf("phase=%s", p)
	}

	ok, err = svc.CompleteQuest(ctx, quest.FirstJackIn)
	if err != nil || ok {
		t.Fatalf("second CompleteQuest=(%v, %v), want (false, nil)", ok, err)
	}
	rewards, err := svc.Rewards(ctx)
	if err != nil || len(rewards) != 1 {
		t.Fatalf("rewards=%v err=%v", rewards, err)
	}
}

func TestCompleteQuestRequiresTrigger(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	onboard(t, svc)
	ok, err := svc.CompleteQuest(ctx, quest.FirstJackIn)
	if err != nil || ok {
		t.Fatalf("CompleteQuest(available)=(%v, %v), want (false, nil)", ok, err)
	}

	_, err = svc.CompleteQuest(ctx, "no_such_quest")
	var unknown UnknownQuestError
	if !errors.As(err, &unknown) {
		t.Fatalf("err=%v, want UnknownQuestError", err)
	}
}

func TestNightShiftFromLateEvent(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	start := clock.t.Add(9 * time.Hour) // 21:00
	_, promoted, err := svc.AddEvent(ctx, AddEventInput{
		Title:    "Late deploy",
		Start:    start,
		End:      start.Add(150 * time.Minute),
		Priority: theme.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if !reflect.DeepEqual(promoted, []string{quest.NightShift}) {
		t.Fatalf("promoted=%v", promoted)
	}

	res, err := svc.CompleteTask(ctx)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if !reflect.DeepEqual(res.Triggered, []string{quest.NightShift}) {
		t.Fatalf("triggered=%v", res.Triggered)
	}
	if ok, err := svc.CompleteQuest(ctx, quest.NightShift); err != nil || !ok {
		t.Fatalf("CompleteQuest=(%v, %v)", ok, err)
	}
	d, _ := svc.ActiveTheme(ctx)
	if d.ID != theme.ChromeNoir {
		t.Fatalf("active=%s, want chrome_noir", d.ID)
	}
}

func TestNightShiftFromOvernightEvent(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	start := clock.t.Add(9 * time.Hour) // 21:00
	_, promoted, err := svc.AddEvent(ctx, AddEventInput{
		Title: "Graveyard shift",
		Start: start,
		End:   start.Add(4 * time.Hour), // 01:00 next day
	})
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if !reflect.DeepEqual(promoted, []string{quest.NightShift}) {
		t.Fatalf("promoted=%v, want [%s]", promoted, quest.NightShift)
	}
}

func TestSystemGlitchNeedsTaskAfterThreshold(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var res TaskResult
	var err error
	for i := 0; i < quest.SystemGlitchTaskCount; i++ {
		if res, err = svc.CompleteTask(ctx); err != nil {
			t.Fatalf("CompleteTask #%d: %v", i+1, err)
		}
		if len(res.Triggered) != 0 {
			t.Fatalf("task #%d triggered %v", i+1, res.Triggered)
		}
	}
	if !reflect.DeepEqual(res.Available, []string{quest.SystemGlitch}) {
		t.Fatalf("available after threshold=%v", res.Available)
	}

	res, err = svc.CompleteTask(ctx)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if !reflect.DeepEqual(res.Triggered, []string{quest.SystemGlitch}) {
		t.Fatalf("triggered=%v", res.Triggered)
	}
	if got := svc.Overlay().DrainEffects(); !reflect.DeepEqual(got, []string{quest.EffectScanlineTear}) {
		t.Fatalf("effects=%v", got)
	}
}

func TestTimersFinish(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	if _, err := svc.StartTimer(ctx, "focus", 5*time.Minute, ""); err != nil {
		t.Fatalf("StartTimer: %v", err)
	}
	if _, err := svc.StartTimer(ctx, "long", time.Hour, ""); err != nil {
		t.Fatalf("StartTimer: %v", err)
	}

	clock.advance(6 * time.Minute)
	done, err := svc.FinishTimers(ctx)
	if err != nil {
		t.Fatalf("FinishTimers: %v", err)
	}
	if len(done) != 1 || done[0].Label != "focus" {
		t.Fatalf("finished=%v", done)
	}
	left, err := svc.Timers(ctx)
	if err != nil || len(left) != 1 || left[0].Label != "long" {
		t.Fatalf("timers=%v err=%v", left, err)
	}
}

func TestFactsAddAndDeactivate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	f, err := svc.AddFact(ctx, "Sleep", "Night owl, best focus after 20:00", "")
	if err != nil {
		t.Fatalf("AddFact: %v", err)
	}
	if f.Category != "sleep" || !f.IsActive {
		t.Fatalf("fact=%+v", f)
	}
	if _, err := svc.AddFact(ctx, "", "   ", ""); err == nil {
		t.Fatalf("expected error for empty content")
	}

	if err := svc.DeactivateFact(ctx, f.ID); err != nil {
		t.Fatalf("DeactivateFact: %v", err)
	}
	if err := svc.DeactivateFact(ctx, f.ID); err == nil {
		t.Fatalf("expected error deactivating twice")
	}
	active, err := svc.Facts(ctx, true)
	if err != nil || len(active) != 0 {
		t.Fatalf("active=%v err=%v", active, err)
	}
	all, _ := svc.Facts(ctx, false)
	if len(all) != 1 {
		t.Fatalf("all=%v", all)
	}
}

func TestGrantedRewardUnlocksTheme(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.UnlockReward(ctx, theme.RewardFirstJackIn); err != nil {
		t.Fatalf("UnlockReward: %v", err)
	}
	statuses, err := svc.ThemeStatuses(ctx)
	if err != nil {
		t.Fatalf("ThemeStatuses: %v", err)
	}
	for _, st := range statuses {
		switch st.Theme.ID {
		case theme.Netrunner:
			if st.Locked {
				t.Fatalf("netrunner still locked after %s", theme.RewardFirstJackIn)
			}
		case theme.Glitch:
			if !st.Locked || st.RewardID == "" {
				t.Fatalf("glitch status=%+v, want locked with reward", st)
			}
		}
	}
	d, err := svc.SetTheme(ctx, theme.Netrunner)
	if err != nil || d.ID != theme.Netrunner {
		t.Fatalf("SetTheme(netrunner)=(%s, %v)", d.ID, err)
	}
}

func TestFactChangesAreLogged(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewService(db, zap.New(core), WithLocation(time.UTC))

	f, err := svc.AddFact(ctx, "work", "Standup at 10:00", "")
	if err != nil {
		t.Fatalf("AddFact: %v", err)
	}
	if err := svc.DeactivateFact(ctx, f.ID); err != nil {
		t.Fatalf("DeactivateFact: %v", err)
	}

	changes := logs.FilterMessage("knowledge changed").All()
	if len(changes) != 2 {
		t.Fatalf("knowledge changed logged %d times, want 2", len(changes))
	}
	last := changes[1].ContextMap()
	if last["facts"] != int64(1) || last["active"] != int64(0) {
		t.Fatalf("last change fields=%v", last)
	}
}

func TestCycleThemeSkipsLocked(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.CycleTheme(ctx)
	if err != nil || d.ID != theme.Synthwave {
		t.Fatalf("cycle 1=(%s, %v)", d.ID, err)
	}
	d, err = svc.CycleTheme(ctx)
	if err != nil || d.ID != theme.NeonGrid {
		t.Fatalf("cycle 2=(%s, %v)", d.ID, err)
	}
}

func TestPreferencesDefaultAndValidate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.Preferences(ctx)
	if err != nil {
		t.Fatalf("Preferences: %v", err)
	}
	if !reflect.DeepEqual(p, schedule.DefaultPreferences()) {
		t.Fatalf("prefs=%+v", p)
	}
	p.WorkdayEndHour = 3
	if err := svc.SavePreferences(ctx, p); err == nil {
		t.Fatalf("expected validation error")
	}
	p = schedule.DefaultPreferences()
	p.FocusMinutes = 50
	if err := svc.SavePreferences(ctx, p); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}
	got, _ := svc.Preferences(ctx)
	if got.FocusMinutes != 50 {
		t.Fatalf("focus=%d", got.FocusMinutes)
	}
}
