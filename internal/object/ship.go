package object

import (
	"math"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/draw"
)

// Death blink: while dead the ship is hidden for the second half of each period.
const (
	blinkPeriod = 0.4
	blinkOn     = 0.2
)

// WeaponStats are the ship's firing parameters for one weapon.
type WeaponStats struct {
	FireRate float64 // Shots per second
	Spacing  float64 // Pixels between consecutive shots
	Damage   int
}

// Ship is the player-controlled ship. It moves on four independent axes
// and never leaves the game: when destroyed it drifts down until restart.
type Ship struct {
	Transform
	HP     int
	MaxHP  int // 0 means healing is uncapped
	Speed  float64
	Radius float64
	Alive  bool

	Weapons [2]WeaponStats // Indexed by WeaponType

	TripleShot         bool
	TripleShotTimer    float64
	TripleShotDuration float64
	TripleShotSpread   float64 // Horizontal offset of the side shots
}

// NewShip creates a ship at pos with full health.
func NewShip(pos Vec2, ship config.ShipConfig, weapons config.WeaponsConfig) *Ship {
	s := &Ship{
		HP:                 ship.HP,
		MaxHP:              ship.MaxHP,
		Speed:              ship.Speed,
		Radius:             ship.Radius,
		Alive:              true,
		TripleShotDuration: ship.TripleShotDuration,
		TripleShotSpread:   ship.TripleShotSpread,
	}
	s.Position = pos
	s.Weapons[WeaponLaser] = WeaponStats(weapons.Laser)
	s.Weapons[WeaponBullet] = WeaponStats(weapons.Bullet)
	return s
}

// Update moves the ship from held input and counts down triple shot.
// A dead ship ignores input and drifts down.
func (s *Ship) Update(ctx UpdateContext) bool {
	dt := ctx.DT()
	step := s.Speed * dt

	if !s.Alive {
		s.Position.Y += step
		return false
	}

	// Axes are independent; diagonals are faster on purpose.
	if ctx.Input.Up {
		s.Position.Y -= step
	}
	if ctx.Input.Down {
		s.Position.Y += step
	}
	if ctx.Input.Left {
		s.Position.X -= step
	}
	if ctx.Input.Right {
		s.Position.X += step
	}

	if s.TripleShot {
		s.TripleShotTimer -= dt
		if s.TripleShotTimer <= 0 {
			s.TripleShot = false
			s.TripleShotTimer = 0
		}
	}
	return false
}

// TakeDamage is the only way HP changes. Negative damage heals.
// A dead ship is unaffected; reaching zero kills the ship.
func (s *Ship) TakeDamage(dmg int) {
	if !s.Alive {
		return
	}
	s.HP -= dmg
	if s.MaxHP > 0 && s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
	if s.HP <= 0 {
		s.HP = 0
		s.Alive = false
	}
}

// EnableTripleShot arms triple shot, restarting its countdown.
func (s *Ship) EnableTripleShot() {
	s.TripleShot = true
	s.TripleShotTimer = s.TripleShotDuration
}

// Stats returns the firing parameters for w.
func (s *Ship) Stats(w WeaponType) WeaponStats {
	return s.Weapons[w]
}

// FireRate returns shots per second for w.
func (s *Ship) FireRate(w WeaponType) float64 {
	return s.Weapons[w].FireRate
}

// Spacing returns the distance between consecutive shots of w.
func (s *Ship) Spacing(w WeaponType) float64 {
	return s.Weapons[w].Spacing
}

// ProjectileSpeed keeps consecutive shots Spacing pixels apart.
func (s *Ship) ProjectileSpeed(w WeaponType) float64 {
	return s.Spacing(w) * s.FireRate(w)
}

// Muzzle is where projectiles are spawned: the ship's nose.
func (s *Ship) Muzzle() Vec2 {
	return Vec2{X: s.Position.X, Y: s.Position.Y - s.Radius}
}

// Visible reports whether the ship is drawn at time t (seconds).
func (s *Ship) Visible(t float64) bool {
	return s.Alive || math.Mod(t, blinkPeriod) <= blinkOn
}

// Draw renders the ship sprite, blinking while dead.
func (s *Ship) Draw(ctx DrawContext) {
	if !s.Visible(ctx.Time) {
		return
	}
	ctx.Renderer.DrawSprite(draw.SpriteShip, toPoint(s.Position), s.Radius, draw.ColorWhite)
}
