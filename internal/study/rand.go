package study

import "math/rand/v2"

// Rand is the randomness source behind queue shuffles, question-type
// rolls, and distractor picks. Tests inject a deterministic
// implementation to pin outcomes.
type Rand interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int

	// Shuffle pseudo-randomizes the order of n elements.
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns the default Rand backed by math/rand/v2.
func NewRand() Rand {
	return systemRand{}
}

type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.IntN(n) }

func (systemRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }
