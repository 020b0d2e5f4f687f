package session

import (
	"hash/fnv"
	"sync"
)

// Serializer serializes turns per session. Turns for the same session
// run strictly one at a time; turns for different sessions only contend
// when their IDs hash to the same shard.
type Serializer struct {
	shards []sync.Mutex
}

// NewSerializer creates a serializer with the given shard count.
func NewSerializer(shards int) *Serializer {
	if shards < 1 {
		shards = 1
	}
	return &Serializer{shards: make([]sync.Mutex, shards)}
}

func (s *Serializer) shard(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return &s.shards[h.Sum32()%uint32(len(s.shards))]
}

// Do runs fn while holding the session's shard lock.
func (s *Serializer) Do(sessionID string, fn func()) {
	mu := s.shard(sessionID)
	mu.Lock()
	defer mu.Unlock()
	fn()
}
