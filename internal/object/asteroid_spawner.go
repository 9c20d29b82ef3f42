package object

import (
	"math/rand"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/physics"
)

// Spawner releases asteroids at random intervals, up to a population cap.
// Level-ups tighten the interval; the tightening persists across reseeds.
type Spawner struct {
	rng      *rand.Rand
	cfg      config.SpawnConfig
	asteroid config.AsteroidConfig
	viewport Viewport

	timer    float64
	interval float64
	factor   float64 // Accumulated difficulty multiplier, 1 at level 1
}

// NewSpawner creates a spawner with a fresh random interval.
func NewSpawner(rng *rand.Rand, vp Viewport, spawn config.SpawnConfig, asteroid config.AsteroidConfig) *Spawner {
	s := &Spawner{
		rng:      rng,
		cfg:      spawn,
		asteroid: asteroid,
		viewport: vp,
	}
	s.Reset()
	return s
}

// Reset restores the level-1 cadence with a fresh interval.
func (s *Spawner) Reset() {
	s.timer = 0
	s.factor = 1
	s.reseed()
}

func (s *Spawner) reseed() {
	s.interval = max(physics.RandomFloat(s.rng, s.cfg.MinInterval, s.cfg.MaxInterval)*s.factor, s.cfg.Floor)
}

// Update advances the timer by dt. When the interval has elapsed and fewer
// than the maximum number of asteroids exist, it returns a new asteroid and
// starts a new interval. Otherwise it returns nil and keeps waiting.
func (s *Spawner) Update(dt float64, live int, mode ShapeMode) *Asteroid {
	s.timer += dt
	if s.timer < s.interval || live >= s.asteroid.Max {
		return nil
	}
	s.timer = 0
	s.reseed()
	return NewAsteroid(s.rng, s.viewport, mode.Pick(s.rng), s.asteroid)
}

// Tighten shortens the current and all future intervals.
func (s *Spawner) Tighten() {
	s.factor *= s.cfg.Tighten
	s.interval = max(s.interval*s.cfg.Tighten, s.cfg.Floor)
}

// Interval returns the current spawn interval in seconds.
func (s *Spawner) Interval() float64 {
	return s.interval
}

// Factor returns the accumulated tightening multiplier.
func (s *Spawner) Factor() float64 {
	return s.factor
}
