package guardrails

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Throttle rate-limits turns per session. Limiters are created lazily
// and swept when idle so the map does not grow with dead sessions.
type Throttle struct {
	perMinute int
	burst     int

	mu       sync.Mutex
	limiters map[string]*throttleEntry
}

type throttleEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewThrottle creates a throttle allowing perMinute turns with the
// given burst per session.
func NewThrottle(perMinute, burst int) *Throttle {
	if perMinute < 1 {
		perMinute = 1
	}
	if burst < 1 {
		burst = 1
	}
	return &Throttle{
		perMinute: perMinute,
		burst:     burst,
		limiters:  make(map[string]*throttleEntry),
	}
}

// Allow reports whether the session may run another turn now.
func (t *Throttle) Allow(sessionID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.limiters[sessionID]
	if !ok {
		entry = &throttleEntry{
			limiter: rate.NewLimiter(rate.Limit(float64(t.perMinute)/60.0), t.burst),
		}
		t.limiters[sessionID] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter.Allow()
}

// Sweep drops limiters idle longer than maxIdle. Returns the number
// removed.
func (t *Throttle) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	t.mu.Lock()
	defer t.mu.Unlock()
	removed := 0
	for sessionID, entry := range t.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(t.limiters, sessionID)
			removed++
		}
	}
	return removed
}
