package object

import "math"

// FireControl converts a held fire button into a steady stream of shots
// at the weapon's fire rate, independent of frame rate.
type FireControl struct {
	timer float64
}

// Update advances the accumulator and returns how many shots to fire this frame.
//
//   - held and armed: accumulate dt and fire once per whole interval
//   - released: reset
//   - held but not armed (ship dead): keep the remainder below one interval
func (f *FireControl) Update(dt float64, held, armed bool, rate float64) int {
	if rate <= 0 {
		return 0
	}
	interval := 1 / rate

	switch {
	case held && armed:
		f.timer += dt
		shots := 0
		for f.timer >= interval {
			shots++
			f.timer -= interval
		}
		return shots
	case !held:
		f.timer = 0
	default:
		if f.timer > interval {
			f.timer = math.Mod(f.timer, interval)
		}
	}
	return 0
}

// Reset clears the accumulator.
func (f *FireControl) Reset() {
	f.timer = 0
}

// Pending returns the accumulated time toward the next shot.
func (f *FireControl) Pending() float64 {
	return f.timer
}

// Side-shot directions of a triple volley before normalization.
var (
	dirUp    = Vec2{X: 0, Y: -1}
	dirLeft  = Vec2{X: -0.5, Y: -1}
	dirRight = Vec2{X: 0.5, Y: -1}
)

// Volley creates the projectiles of one firing event from the ship's muzzle:
// one straight up, or three when triple shot is active.
func Volley(s *Ship, w WeaponType) []*Projectile {
	origin := s.Muzzle()
	speed := s.ProjectileSpeed(w)
	damage := s.Stats(w).Damage

	shoot := func(pos, dir Vec2) *Projectile {
		return NewProjectile(pos, dir.Normalize().Scale(speed), w, damage)
	}

	if !s.TripleShot {
		return []*Projectile{shoot(origin, dirUp)}
	}

	spread := s.TripleShotSpread
	return []*Projectile{
		shoot(origin, dirUp),
		shoot(Vec2{X: origin.X - spread, Y: origin.Y}, dirLeft),
		shoot(Vec2{X: origin.X + spread, Y: origin.Y}, dirRight),
	}
}
