package console

import (
	"sync"
	"time"

	"github.com/hakaku/arenaevents/contract"
)

// Timer runs scheduled callbacks on real goroutine timers. Scheduling
// an existing key replaces the previous schedule; callbacks fire on
// their own goroutine and must re-enter the engine via Dispatch.
type Timer struct {
	mu     sync.Mutex
	timers map[contract.TimerKey]*scheduled
}

type scheduled struct {
	stop chan struct{}
}

func NewTimer() *Timer {
	return &Timer{timers: make(map[contract.TimerKey]*scheduled)}
}

func (t *Timer) Schedule(key contract.TimerKey, initial, period time.Duration, fire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.timers[key]; ok {
		close(prev.stop)
	}
	s := &scheduled{stop: make(chan struct{})}
	t.timers[key] = s

	go func() {
		first := time.NewTimer(initial)
		defer first.Stop()
		select {
		case <-first.C:
			fire()
		case <-s.stop:
			return
		}
		if period <= 0 {
			return
		}
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fire()
			case <-s.stop:
				return
			}
		}
	}()
}

func (t *Timer) Cancel(key contract.TimerKey) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.timers[key]; ok {
		close(s.stop)
		delete(t.timers, key)
	}
}
