package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/byten0kami/Neon-sub001/internal/knowledge"
	"github.com/byten0kami/Neon-sub001/internal/schedule"
	"github.com/byten0kami/Neon-sub001/internal/theme"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "test.db")
	db, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	r := NewSettingsRepo(db)

	if _, ok, err := r.Get(ctx, KeyActiveTheme); err != nil || ok {
		t.Fatalf("Get(unset)=(ok=%v, err=%v)", ok, err)
	}
	if err := r.Set(ctx, KeyActiveTheme, "synthwave"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := r.Set(ctx, KeyActiveTheme, "glitch"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, ok, err := r.Get(ctx, KeyActiveTheme)
	if err != nil || !ok || v != "glitch" {
		t.Fatalf("Get=(%q,%v,%v), want glitch", v, ok, err)
	}

	prefs := schedule.DefaultPreferences()
	prefs.FocusMinutes = 50
	if err := r.SetJSON(ctx, KeyPreferences, prefs); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	var got schedule.SchedulePreferences
	ok, err = r.GetJSON(ctx, KeyPreferences, &got)
	if err != nil || !ok {
		t.Fatalf("GetJSON=(%v,%v)", ok, err)
	}
	if got != prefs {
		t.Fatalf("prefs=%+v, want %+v", got, prefs)
	}
}

func TestRewardGrantIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	r := NewRewardRepo(db)
	at := time.Date(2026, 10, 16, 22, 0, 0, 0, time.UTC)

	added, err := r.Grant(ctx, theme.RewardNightShift, at)
	if err != nil || !added {
		t.Fatalf("first Grant=(%v,%v), want (true,nil)", added, err)
	}
	added, err = r.Grant(ctx, theme.RewardNightShift, at.Add(time.Hour))
	if err != nil || added {
		t.Fatalf("second Grant=(%v,%v), want (false,nil)", added, err)
	}

	has, err := r.Has(ctx, theme.RewardNightShift)
	if err != nil || !has {
		t.Fatalf("Has=(%v,%v)", has, err)
	}
	all, err := r.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 || !all[0].GrantedAt.Equal(at) {
		t.Fatalf("rewards=%+v", all)
	}
}

func TestQuestUpsert(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	r := NewQuestRepo(db)

	if q, err := r.Get(ctx, "night_shift"); err != nil || q != nil {
		t.Fatalf("Get(missing)=(%v,%v)", q, err)
	}
	if err := r.Upsert(ctx, QuestState{ID: "night_shift", Phase: "available"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	at := time.Date(2026, 10, 16, 23, 30, 0, 0, time.UTC)
	if err := r.Upsert(ctx, QuestState{ID: "night_shift", Phase: "completed", Progress: 1, CompletedAt: &at}); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}
	q, err := r.Get(ctx, "night_shift")
	if err != nil || q == nil {
		t.Fatalf("Get=(%v,%v)", q, err)
	}
	if q.Phase != "completed" || q.Progress != 1 || q.CompletedAt == nil || !q.CompletedAt.Equal(at) {
		t.Fatalf("quest=%+v", q)
	}
	all, err := r.ListAll(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("ListAll=(%v,%v)", all, err)
	}
}

func TestEventsAndTimers(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repos := NewRepos(db)
	start := time.Date(2026, 10, 16, 21, 0, 0, 0, time.UTC)

	late, _ := schedule.NewEvent("Heist prep", start, start.Add(2*time.Hour), theme.PriorityCritical)
	late.Location = "Afterlife"
	early, _ := schedule.NewEvent("Standup", start.Add(-12*time.Hour), start.Add(-11*time.Hour), theme.PriorityLow)
	for _, e := range []schedule.ScheduledEvent{late, early} {
		if err := repos.Events.Insert(ctx, e); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	events, err := repos.Events.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(events) != 2 || events[0].ID != early.ID || events[1].Location != "Afterlife" || events[1].Priority != theme.PriorityCritical {
		t.Fatalf("events=%+v", events)
	}

	timer, _ := schedule.NewTimer("prep", start, 30*time.Minute)
	timer.EventID = &late.ID
	if err := repos.Timers.Insert(ctx, timer); err != nil {
		t.Fatalf("timer Insert: %v", err)
	}
	timers, err := repos.Timers.ListAll(ctx)
	if err != nil || len(timers) != 1 {
		t.Fatalf("timers=(%v,%v)", timers, err)
	}
	if timers[0].EventID == nil || *timers[0].EventID != late.ID || !timers[0].EndTime.Equal(timer.EndTime) {
		t.Fatalf("timer=%+v", timers[0])
	}

	deleted, err := repos.Events.Delete(ctx, late.ID)
	if err != nil || !deleted {
		t.Fatalf("Delete=(%v,%v)", deleted, err)
	}
	timers, _ = repos.Timers.ListAll(ctx)
	if timers[0].EventID != nil {
		t.Fatalf("timer event link should be cleared, got %q", *timers[0].EventID)
	}
	if err := repos.Timers.Delete(ctx, timer.ID); err != nil {
		t.Fatalf("timer Delete: %v", err)
	}
}

func TestFactsKeepInsertionOrder(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	r := NewFactRepo(db)
	for _, f := range []knowledge.Fact{
		{ID: "z", Category: "work", Content: "later id, first in", IsActive: true},
		{ID: "a", Category: "health", Content: "second", AINote: "note", IsActive: true},
	} {
		if err := r.Insert(ctx, f); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if err := r.SetActive(ctx, "z", false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	facts, err := r.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(facts) != 2 || facts[0].ID != "z" || facts[0].IsActive || facts[1].AINote != "note" {
		t.Fatalf("facts=%+v", facts)
	}
}

func TestCounters(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	r := NewCounterRepo(db)
	if n, err := r.Get(ctx, CounterCompletedTasks); err != nil || n != 0 {
		t.Fatalf("Get(unset)=(%d,%v)", n, err)
	}
	for i := 1; i <= 3; i++ {
		n, err := r.Add(ctx, CounterCompletedTasks, 1)
		if err != nil || n != i {
			t.Fatalf("Add #%d=(%d,%v)", i, n, err)
		}
	}
}

func TestWithTxRollsBack(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := WithTx(ctx, db, func(r Repos) error {
		if _, err := r.Rewards.Grant(ctx, "quest.x", time.Now()); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTx err=%v, want boom", err)
	}
	if has, _ := NewRewardRepo(db).Has(ctx, "quest.x"); has {
		t.Fatalf("reward persisted despite rollback")
	}

	err = WithTx(ctx, db, func(r Repos) error {
		_, err := r.Rewards.Grant(ctx, "quest.x", time.Now())
		return err
	})
	if err != nil {
		t.Fatalf("WithTx commit: %v", err)
	}
	if has, _ := NewRewardRepo(db).Has(ctx, "quest.x"); !has {
		t.Fatalf("reward missing after commit")
	}
}

func TestResolveDBPath(t *testing.T) {
	if p, err := ResolveDBPath(" /tmp/x.db "); err != nil || p != "/tmp/x.db" {
		t.Fatalf("ResolveDBPath(override)=(%q,%v)", p, err)
	}
}
