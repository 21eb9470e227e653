package engine

import (
	"fmt"
	"sync"
	"testing"

	"go.uber.org/zap"
)

func TestOverlayConcurrentShowAndDrain(t *testing.T) {
	o := newOverlay(zap.NewNop())

	const writers, perWriter = 8, 50
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		drained []string
	)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			default:
			}
			got := o.DrainEffects()
			mu.Lock()
			drained = append(drained, got...)
			mu.Unlock()
		}
	}()

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				o.ShowEffect(fmt.Sprintf("fx-%d-%d", w, i))
			}
		}(w)
	}
	wg.Wait()
	close(done)

	mu.Lock()
	defer mu.Unlock()
	drained = append(drained, o.DrainEffects()...)

	if len(drained) != writers*perWriter {
		t.Fatalf("drained %d effects, want %d", len(drained), writers*perWriter)
	}
	seen := make(map[string]bool, len(drained))
	for _, e := range drained {
		if seen[e] {
			t.Fatalf("effect %s delivered twice", e)
		}
		seen[e] = true
	}
}
