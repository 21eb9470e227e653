package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/byten0kami/Neon-sub001/internal/quest"
	"github.com/byten0kami/Neon-sub001/internal/schedule"
	"github.com/byten0kami/Neon-sub001/internal/storage"
	"github.com/byten0kami/Neon-sub001/internal/theme"
)

// QuestView is a quest with its stored lifecycle position.
type QuestView struct {
	ID          string
	Title       string
	Description string
	Phase       quest.Phase
	Progress    float64
	CompletedAt *time.Time
	Effect      string
	RewardID    string
}

// txDeps plays the handler collaborators against one transaction. Overlay
// effects are held until the transaction commits; the first storage error
// is kept and fails the transaction.
type txDeps struct {
	ctx     context.Context
	s       *Service
	r       storage.Repos
	effects []string
	err     error
}

func (d *txDeps) ShowEffect(effect string) {
	d.effects = append(d.effects, effect)
}

func (d *txDeps) UnlockReward(id string) {
	if d.err != nil {
		return
	}
	_, d.err = d.s.unlockReward(d.ctx, d.r, id)
}

func (d *txDeps) SetTheme(id theme.ID) {
	if d.err != nil {
		return
	}
	_, d.err = d.s.setTheme(d.ctx, d.r, id)
}

func (d *txDeps) deps() quest.Deps {
	return quest.Deps{Overlay: d, Rewards: d, Themes: d}
}

// questTx runs fn inside a transaction with handlers resumed from storage.
// Effects reach the overlay only after a successful commit.
func (s *Service) questTx(ctx context.Context, fn func(d *txDeps, hs []*quest.Handler) error) error {
	var effects []string
	err := s.withTx(ctx, func(r storage.Repos) error {
		d := &txDeps{ctx: ctx, s: s, r: r}
		hs, err := s.loadHandlers(ctx, r, d.deps())
		if err != nil {
			return err
		}
		if err := fn(d, hs); err != nil {
			return err
		}
		if d.err != nil {
			return d.err
		}
		effects = d.effects
		return nil
	})
	if err != nil {
		return err
	}
	for _, e := range effects {
		s.overlay.ShowEffect(e)
	}
	return nil
}

func (s *Service) loadHandlers(ctx context.Context, r storage.Repos, deps quest.Deps) ([]*quest.Handler, error) {
	defs := quest.Catalog()
	out := make([]*quest.Handler, 0, len(defs))
	for _, def := range defs {
		row, err := r.Quests.Get(ctx, def.Quest.ID)
		if err != nil {
			return nil, err
		}
		phase := quest.PhaseDormant
		if row == nil {
			if err := r.Quests.Upsert(ctx, storage.QuestState{ID: def.Quest.ID, Phase: phase.String()}); err != nil {
				return nil, err
			}
		} else {
			phase = quest.ParsePhase(row.Phase)
		}
		out = append(out, quest.Resume(def, deps, phase, quest.WithClock(s.now)))
	}
	return out, nil
}

func phaseProgress(p quest.Phase) float64 {
	switch p {
	case quest.PhaseTriggered:
		return 0.5
	case quest.PhaseCompleted:
		return 1
	default:
		return 0
	}
}

func (s *Service) persist(ctx context.Context, r storage.Repos, h *quest.Handler) error {
	q := h.Quest()
	return r.Quests.Upsert(ctx, storage.QuestState{
		ID:          h.ID(),
		Phase:       h.Phase().String(),
		Progress:    phaseProgress(h.Phase()),
		CompletedAt: q.CompletedAt,
	})
}

func (s *Service) availabilityContext(ctx context.Context, r storage.Repos) (quest.Context, error) {
	c := quest.Context{Now: s.now()}

	var p schedule.UserProfile
	ok, err := r.Settings.GetJSON(ctx, storage.KeyProfile, &p)
	if err != nil {
		return c, err
	}
	c.Onboarded = ok && p.Onboarded

	if c.CompletedTasks, err = r.Counters.Get(ctx, storage.CounterCompletedTasks); err != nil {
		return c, err
	}

	events, err := r.Events.ListAll(ctx)
	if err != nil {
		return c, err
	}
	c.ScheduledCount = len(events)
	c.LatestEndHour = schedule.LatestEndHour(events, s.loc)
	return c, nil
}

// refresh promotes dormant quests whose conditions now hold and returns
// their ids.
func (s *Service) refresh(ctx context.Context, r storage.Repos, hs []*quest.Handler) ([]string, error) {
	c, err := s.availabilityContext(ctx, r)
	if err != nil {
		return nil, err
	}
	var promoted []string
	for _, h := range hs {
		if h.Phase() != quest.PhaseDormant || !h.CheckAvailability(c) {
			continue
		}
		h.Promote()
		if err := s.persist(ctx, r, h); err != nil {
			return nil, err
		}
		promoted = append(promoted, h.ID())
		s.log.Info("quest available", zap.String("quest", h.ID()))
	}
	return promoted, nil
}

// Refresh re-evaluates quest availability and returns newly available ids.
func (s *Service) Refresh(ctx context.Context) ([]string, error) {
	var promoted []string
	err := s.questTx(ctx, func(d *txDeps, hs []*quest.Handler) error {
		var err error
		promoted, err = s.refresh(ctx, d.r, hs)
		return err
	})
	return promoted, err
}

func (s *Service) fire(ctx context.Context, r storage.Repos, hs []*quest.Handler, ev quest.Event) ([]string, error) {
	var triggered []string
	for _, h := range hs {
		if !h.ShouldTrigger(ev) {
			continue
		}
		if err := s.persist(ctx, r, h); err != nil {
			return nil, err
		}
		triggered = append(triggered, h.ID())
		s.log.Info("quest triggered", zap.String("quest", h.ID()), zap.String("event", string(ev)))
	}
	return triggered, nil
}

// Fire delivers an app event to every quest and returns the ids it
// triggered.
func (s *Service) Fire(ctx context.Context, ev quest.Event) ([]string, error) {
	var triggered []string
	err := s.questTx(ctx, func(d *txDeps, hs []*quest.Handler) error {
		var err error
		triggered, err = s.fire(ctx, d.r, hs, ev)
		return err
	})
	return triggered, err
}

// CompleteQuest finishes a triggered quest, granting its reward and running
// its side effect. It returns false when the quest is not triggered.
func (s *Service) CompleteQuest(ctx context.Context, id string) (bool, error) {
	def, ok := quest.Lookup(id)
	if !ok {
		return false, UnknownQuestError{ID: id}
	}
	done := false
	err := s.questTx(ctx, func(d *txDeps, hs []*quest.Handler) error {
		for _, h := range hs {
			if h.ID() != def.Quest.ID {
				continue
			}
			if !h.Complete() {
				return nil
			}
			if d.err != nil {
				return d.err
			}
			done = true
			s.log.Info("quest completed", zap.String("quest", h.ID()), zap.String("reward", def.RewardID))
			return s.persist(ctx, d.r, h)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return done, nil
}

// Quests lists the catalog with stored state, in catalog order.
func (s *Service) Quests(ctx context.Context) ([]QuestView, error) {
	rows, err := s.repos.Quests.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]storage.QuestState, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}

	var out []QuestView
	for _, def := range quest.Catalog() {
		v := QuestView{
			ID:          def.Quest.ID,
			Title:       def.Quest.Title,
			Description: def.Quest.Description,
			Phase:       quest.PhaseDormant,
			Effect:      def.Effect,
			RewardID:    def.RewardID,
		}
		if row, ok := byID[def.Quest.ID]; ok {
			v.Phase = quest.ParsePhase(row.Phase)
			v.Progress = row.Progress
			v.CompletedAt = row.CompletedAt
		}
		out = append(out, v)
	}
	return out, nil
}
