// Package rng holds the process-wide pseudo-random source used by randomized
// vector construction.
package rng

import (
	"math/rand"
	"sync"
	"time"
)

// RNG encapsulates a random number generator and its seed.
// It is safe for concurrent use.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// New creates a new RNG instance with the specified seed.
func New(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uniform returns a value drawn uniformly from [lower, higher).
func (r *RNG) Uniform(lower, higher float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lower + r.rand.Float64()*(higher-lower)
}

// FillUniform fills dst with values drawn uniformly from [lower, higher).
// Locks only once per call.
func (r *RNG) FillUniform(dst []float64, lower, higher float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := higher - lower
	for i := range dst {
		dst[i] = lower + r.rand.Float64()*span
	}
}

var shared = sync.OnceValue(func() *RNG {
	return New(time.Now().UnixNano())
})

// Default returns the shared generator, creating it on first use. Callers never
// choose its seed.
func Default() *RNG {
	return shared()
}
