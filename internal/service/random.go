package service

import (
	"math/rand/v2"
	"sync"
)

// RandomSource draws a uniform index in [0, n). n is always positive.
type RandomSource interface {
	Intn(n int) int
}

type globalRandom struct{}

func (globalRandom) Intn(n int) int { return rand.IntN(n) }

// NewRandomSource returns a RandomSource backed by the runtime-seeded
// global generator. It is safe for concurrent use.
func NewRandomSource() RandomSource {
	return globalRandom{}
}

// SeededRandom is a reproducible RandomSource, safe for concurrent use.
type SeededRandom struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRandom creates a SeededRandom from a fixed seed.
func NewSeededRandom(seed uint64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn implements RandomSource.
func (r *SeededRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}
