package quest

import "time"

// Handler drives one quest through dormant → available → triggered → completed.
// Calls that do not fit the current phase do nothing and return false.
// A Handler is not safe for concurrent use; callers own it on one goroutine.
type Handler struct {
	def   Definition
	quest Quest
	deps  Deps
	phase Phase
	now   func() time.Time
}

type Option func(*Handler)

// WithClock replaces time.Now for completion timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// NewHandler starts a quest in the dormant phase.
func NewHandler(def Definition, deps Deps, opts ...Option) *Handler {
	return Resume(def, deps, PhaseDormant, opts...)
}

// Resume rebuilds a handler at a previously stored phase.
func Resume(def Definition, deps Deps, phase Phase, opts ...Option) *Handler {
	if phase < PhaseDormant || phase > PhaseCompleted {
		phase = PhaseDormant
	}
	h := &Handler{
		def:   def,
		quest: def.Quest,
		deps:  deps,
		phase: phase,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	if phase == PhaseCompleted {
		h.quest.Completed = true
		h.quest.Progress = 1
	}
	return h
}

func (h *Handler) ID() string   { return h.def.Quest.ID }
func (h *Handler) Phase() Phase { return h.phase }

// Quest returns a snapshot of the quest record.
func (h *Handler) Quest() Quest { return h.quest }

func (h *Handler) Definition() Definition { return h.def }

// CheckAvailability reports whether the quest could be promoted now.
// It never changes state.
func (h *Handler) CheckAvailability(c Context) bool {
	if !h.quest.ActiveAt(c.Now) {
		return false
	}
	if h.def.Available == nil {
		return true
	}
	return h.def.Available(c)
}

// Promote moves a dormant quest to available.
func (h *Handler) Promote() bool {
	if h.phase != PhaseDormant {
		return false
	}
	h.phase = PhaseAvailable
	return true
}

// ShouldTrigger fires the quest on a completed task while it is available.
// On success the overlay effect is shown once and true is returned.
func (h *Handler) ShouldTrigger(ev Event) bool {
	if h.phase != PhaseAvailable || ev != EventTaskCompleted {
		return false
	}
	h.phase = PhaseTriggered
	h.quest.Progress = 0.5
	if h.deps.Overlay != nil && h.def.Effect != "" {
		h.deps.Overlay.ShowEffect(h.def.Effect)
	}
	return true
}

// Complete finishes a triggered quest: it grants the reward and applies the
// quest's side effect, each exactly once.
func (h *Handler) Complete() bool {
	if h.phase != PhaseTriggered {
		return false
	}
	h.phase = PhaseCompleted

	at := h.now()
	h.quest.Completed = true
	h.quest.Progress = 1
	h.quest.CompletedAt = &at

	if h.deps.Rewards != nil && h.def.RewardID != "" {
		h.deps.Rewards.UnlockReward(h.def.RewardID)
	}
	if h.def.OnComplete != nil {
		h.def.OnComplete(h.deps)
	}
	return true
}
