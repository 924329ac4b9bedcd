package services

import (
	"sync"
	"time"
)

// SessionTimer is the per-question countdown. Start arms a fresh
// countdown and invalidates any previously armed one, so a timer left
// over from an earlier question (or an earlier session) can never fire
// into the current question.
type SessionTimer struct {
	mu         sync.Mutex
	duration   time.Duration
	timer      *time.Timer
	generation int
}

func NewSessionTimer(duration time.Duration) *SessionTimer {
	return &SessionTimer{duration: duration}
}

// Start arms the countdown. expire runs in its own goroutine when the
// full duration elapses, unless Start or Stop was called again first.
func (t *SessionTimer) Start(expire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.generation++
	gen := t.generation
	if t.timer != nil {
		t.timer.Stop()
	}
	if t.duration <= 0 {
		return
	}
	t.timer = time.AfterFunc(t.duration, func() {
		t.mu.Lock()
		stale := gen != t.generation
		t.mu.Unlock()
		if stale {
			return
		}
		expire()
	})
}

// Stop disarms the countdown. A callback already scheduled but not yet
// run observes the generation bump and does nothing.
func (t *SessionTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.generation++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
