package service

import "math/rand/v2"

// DefaultNoiseSpread is the half-width of the uniform noise interval.
const DefaultNoiseSpread = 0.1

// NoiseSource produces the random perturbation added to the base score.
// Implementations must be safe for concurrent use.
type NoiseSource interface {
	Draw() float64
}

// UniformNoise draws uniformly from [-Spread, Spread] using the
// goroutine-safe global generator of math/rand/v2.
type UniformNoise struct {
	Spread float64
}

// NewUniformNoise creates a UniformNoise with the given half-width.
func NewUniformNoise(spread float64) UniformNoise {
	return UniformNoise{Spread: spread}
}

// Draw returns a fresh sample.
func (u UniformNoise) Draw() float64 {
	if u.Spread == 0 {
		return 0
	}
	return (rand.Float64()*2 - 1) * u.Spread
}

// FixedNoise always returns the same value.
type FixedNoise float64

// Draw returns the fixed value.
func (f FixedNoise) Draw() float64 {
	return float64(f)
}
