package engine

import (
	"sync"

	"go.uber.org/zap"
)

// Overlay queues visual effects for whichever view is showing. Effects are
// shown once: DrainEffects hands them over and clears the queue. The board
// runs commands on their own goroutines, so the queue is locked.
type Overlay struct {
	log *zap.Logger

	mu      sync.Mutex
	pending []string
}

func newOverlay(log *zap.Logger) *Overlay {
	return &Overlay{log: log}
}

func (o *Overlay) ShowEffect(effect string) {
	o.mu.Lock()
	o.pending = append(o.pending, effect)
	o.mu.Unlock()
	o.log.Info("overlay effect", zap.String("effect", effect))
}

// DrainEffects returns pending effects in the order they were shown.
func (o *Overlay) DrainEffects() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := o.pending
	o.pending = nil
	return out
}
