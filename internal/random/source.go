// Package random provides the random source shared by the generator and the
// analyzer. Both components receive a Source instead of reaching for a global
// generator, so tests can substitute a seeded or scripted sequence while
// production uses a time-seeded one.
package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the single randomness contract used across the application.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntBetween returns a uniform integer in [lo, hi], both ends inclusive.
	IntBetween(lo, hi int) int
	// WeightedIndex picks an index with probability proportional to its weight.
	WeightedIndex(weights []float64) int
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a time-seeded Source safe for concurrent use.
func NewSource() Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Source with a fixed seed, for reproducible runs.
func NewSeeded(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *lockedSource) IntBetween(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *lockedSource) WeightedIndex(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	s.mu.Lock()
	r := s.rng.Float64() * total
	s.mu.Unlock()
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](s Source, items []T) T {
	return items[s.IntBetween(0, len(items)-1)]
}

// PickWeighted returns an element of items chosen by the matching weight.
func PickWeighted[T any](s Source, items []T, weights []float64) T {
	return items[s.WeightedIndex(weights)]
}

// Chance reports a success with probability p.
func Chance(s Source, p float64) bool {
	return s.Float64() < p
}
