package guardrails

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThrottle_BurstThenDeny(t *testing.T) {
	throttle := NewThrottle(6, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, throttle.Allow("sess-1"), "request %d within burst", i+1)
	}
	assert.False(t, throttle.Allow("sess-1"), "burst exhausted")
}

func TestThrottle_SessionsAreIndependent(t *testing.T) {
	throttle := NewThrottle(6, 1)

	assert.True(t, throttle.Allow("sess-1"))
	assert.False(t, throttle.Allow("sess-1"))
	assert.True(t, throttle.Allow("sess-2"))
}

func TestThrottle_Sweep(t *testing.T) {
	throttle := NewThrottle(6, 1)
	throttle.Allow("sess-1")
	throttle.Allow("sess-2")

	assert.Zero(t, throttle.Sweep(time.Minute), "fresh sessions stay")
	assert.Equal(t, 2, throttle.Sweep(-time.Second), "everything older than now is dropped")
	assert.Zero(t, throttle.Sweep(-time.Second))

	// A swept session starts over with a fresh burst.
	assert.True(t, throttle.Allow("sess-1"))
}

func TestThrottle_DefensiveDefaults(t *testing.T) {
	throttle := NewThrottle(0, 0)
	assert.True(t, throttle.Allow("sess-1"))
}
