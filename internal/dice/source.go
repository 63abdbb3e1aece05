// Package dice provides WFRP 4e percentile dice mechanics: skill tests
// with success levels and the injectable random source every stochastic
// part of the bot draws from.
package dice

import "math/rand"

// Source yields uniformly distributed die results. All stochastic code in
// the repository draws through a Source so tests can script exact rolls.
type Source interface {
	// Roll returns a uniform integer in [1, sides].
	Roll(sides int) int
}

type randSource struct {
	rng *rand.Rand
}

// NewSource creates a seeded pseudo-random Source. The same seed replays
// the same sequence of rolls.
func NewSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Roll(sides int) int {
	return s.rng.Intn(sides) + 1
}

// D100 rolls a percentile die.
func D100(src Source) int {
	return src.Roll(100)
}

// D10 rolls a ten-sided die.
func D10(src Source) int {
	return src.Roll(10)
}
