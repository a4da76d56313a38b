package shuffle

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_shuffler.go github.com/randomnetcat/hitlerbot/internal/shuffle Shuffler

// Shuffler provides shuffling functionality for game randomness.
// The engine never touches a global RNG; every shuffle goes through
// an injected Shuffler so tests can script the outcome.
type Shuffler interface {
	// Shuffle pseudo-randomizes the order of n elements using the
	// provided swap function, matching the rand.Shuffle contract.
	Shuffle(n int, swap func(i, j int))
}

// Config for the shuffler
type Config struct {
	// Optional seed for testing
	Seed int64
}

// randShuffler implements Shuffler using a seeded rand source
type randShuffler struct {
	random *rand.Rand
}

// New creates a new shuffler
func New(cfg *Config) *randShuffler {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &randShuffler{
		random: random,
	}
}

// Shuffle randomizes the order of n elements via swap
func (s *randShuffler) Shuffle(n int, swap func(i, j int)) {
	s.random.Shuffle(n, swap)
}
