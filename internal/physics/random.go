package physics

import "math/rand"

// RandomFloat returns a uniform sample in [lo, hi).
func RandomFloat(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
