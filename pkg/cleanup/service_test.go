package cleanup

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingSweeper struct {
	count int
	err   error
	calls int
}

func (s *countingSweeper) DeleteExpired(_ context.Context) (int, error) {
	s.calls++
	return s.count, s.err
}

type countingAgeSweeper struct {
	age   time.Duration
	calls int
}

func (s *countingAgeSweeper) DeleteOlderThan(_ context.Context, age time.Duration) (int, error) {
	s.calls++
	s.age = age
	return 3, nil
}

type countingIdleSweeper struct {
	idle  time.Duration
	calls int
}

func (s *countingIdleSweeper) Sweep(maxIdle time.Duration) int {
	s.calls++
	s.idle = maxIdle
	return 1
}

func TestRunCycleSweepsEverything(t *testing.T) {
	states := &countingSweeper{count: 5}
	locks := &countingSweeper{count: 2}
	invocations := &countingAgeSweeper{}
	throttle := &countingIdleSweeper{}

	svc := NewService(Config{
		InvocationRetention: 48 * time.Hour,
		ThrottleIdle:        30 * time.Minute,
	}, states, locks, invocations, throttle)
	svc.RunCycle(context.Background())

	assert.Equal(t, 1, states.calls)
	assert.Equal(t, 1, locks.calls)
	assert.Equal(t, 1, invocations.calls)
	assert.Equal(t, 48*time.Hour, invocations.age)
	assert.Equal(t, 1, throttle.calls)
	assert.Equal(t, 30*time.Minute, throttle.idle)
}

func TestRunCycleContinuesPastErrors(t *testing.T) {
	states := &countingSweeper{err: fmt.Errorf("connection refused")}
	locks := &countingSweeper{count: 1}

	svc := NewService(Config{}, states, locks, nil, nil)
	svc.RunCycle(context.Background())

	assert.Equal(t, 1, states.calls)
	assert.Equal(t, 1, locks.calls, "a failed sweep must not stop the cycle")
}

func TestNilDependenciesAreSkipped(t *testing.T) {
	svc := NewService(Config{}, nil, nil, nil, nil)
	assert.NotPanics(t, func() { svc.RunCycle(context.Background()) })
}

func TestDefaultsApplied(t *testing.T) {
	svc := NewService(Config{}, nil, nil, nil, nil)
	assert.Equal(t, 10*time.Minute, svc.cfg.Interval)
	assert.Equal(t, 7*24*time.Hour, svc.cfg.InvocationRetention)
	assert.Equal(t, time.Hour, svc.cfg.ThrottleIdle)
}

func TestStartStop(t *testing.T) {
	states := &countingSweeper{}
	svc := NewService(Config{Interval: 10 * time.Millisecond}, states, nil, nil, nil)

	svc.Start(context.Background())
	time.Sleep(35 * time.Millisecond)
	svc.Stop()

	assert.GreaterOrEqual(t, states.calls, 1)

	// Stop on a never-started service is a no-op.
	assert.NotPanics(t, func() { NewService(Config{}, nil, nil, nil, nil).Stop() })
}
