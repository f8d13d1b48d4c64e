// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService is a wrapper over Go's standard random generator that lets the
// whole simulation run on a predictable (seeded) source.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a new service with the given seed.
// A seed of 0 falls back to the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// IntRange returns a random integer in [min, max].
func (s *PRNGService) IntRange(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}

// FloatRange returns a random float in [min, max).
func (s *PRNGService) FloatRange(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Chance draws a Bernoulli trial with probability 1/n. Over many ticks this
// gives an expected inter-arrival time of n ticks.
func (s *PRNGService) Chance(n int) bool {
	return s.rng.Intn(n) == 0
}
