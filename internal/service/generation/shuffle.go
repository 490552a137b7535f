package generation

import (
	"math/rand"
	"sync"
	"time"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// lockedShuffler makes a rand.Rand safe for concurrent callers.
type lockedShuffler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandShuffler returns a concurrency-safe Fisher-Yates shuffler seeded
// with seed. Equal seeds produce equal permutations.
func NewRandShuffler(seed int64) Shuffler {
	return &lockedShuffler{rnd: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededShuffler returns a shuffler seeded from the wall clock.
func NewTimeSeededShuffler() Shuffler {
	return NewRandShuffler(time.Now().UnixNano())
}

func (s *lockedShuffler) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rnd.Shuffle(n, swap)
}
