package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializer_SameSessionRunsSequentially(t *testing.T) {
	serializer := NewSerializer(64)

	const turns = 50
	var wg sync.WaitGroup
	counter := 0

	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			serializer.Do("conv_same", func() {
				// Unsynchronized increment; only serialization keeps it exact.
				counter++
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, turns, counter)
}

func TestSerializer_MinimumOneShard(t *testing.T) {
	serializer := NewSerializer(0)

	done := false
	serializer.Do("conv_x", func() { done = true })
	assert.True(t, done)
}
