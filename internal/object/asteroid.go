package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/physics"
)

// Size is the size class of an asteroid. Splitting halves it.
type Size int

const (
	SizeSmall  Size = 1
	SizeMedium Size = 2
	SizeLarge  Size = 4
)

// RadiusPerSize is the collision radius of a size-1 asteroid.
const RadiusPerSize = 16.0

// RandomSize picks one of the three size classes uniformly.
func RandomSize(rng *rand.Rand) Size {
	return Size(1 << rng.Intn(3))
}

// Asteroid is a rotating polygon drifting across the screen.
// Radius and damage are derived from Size and Shape.
type Asteroid struct {
	Transform
	Physics
	Size      Size
	Shape     Shape
	destroyed bool
}

// NewAsteroid creates an asteroid just outside a random screen edge, aimed
// at a point jittered around the screen center.
func NewAsteroid(rng *rand.Rand, vp Viewport, shape Shape, cfg config.AsteroidConfig) *Asteroid {
	a := &Asteroid{
		Size:  RandomSize(rng),
		Shape: shape,
	}
	r := a.Radius()

	// Start fully off-screen on the chosen edge
	var pos Vec2
	switch rng.Intn(4) {
	case 0: // Top
		pos = Vec2{X: physics.RandomFloat(rng, 0, vp.Width), Y: -r}
	case 1: // Right
		pos = Vec2{X: vp.Width + r, Y: physics.RandomFloat(rng, 0, vp.Height)}
	case 2: // Bottom
		pos = Vec2{X: physics.RandomFloat(rng, 0, vp.Width), Y: vp.Height + r}
	default: // Left
		pos = Vec2{X: -r, Y: physics.RandomFloat(rng, 0, vp.Height)}
	}

	maxOff := min(vp.Width, vp.Height) * cfg.CenterJitter
	ang := physics.RandomFloat(rng, 0, 2*math.Pi)
	rad := physics.RandomFloat(rng, 0, maxOff)
	target := vp.Center().Add(physics.FromAngle(ang, rad))

	dir := target.Sub(pos).Normalize()
	a.Position = pos
	a.Velocity = dir.Scale(physics.RandomFloat(rng, cfg.MinSpeed, cfg.MaxSpeed))
	a.randomizeSpin(rng, cfg)
	return a
}

// NewFragment creates one split child of parent: half its size, at its
// position, moving at its speed along its direction rotated by angle radians.
func NewFragment(rng *rand.Rand, parent *Asteroid, shape Shape, angle float64, cfg config.AsteroidConfig) *Asteroid {
	a := &Asteroid{
		Size:  parent.Size / 2,
		Shape: shape,
	}
	a.Position = parent.Position
	speed := parent.Velocity.Length()
	a.Velocity = parent.Velocity.Normalize().Rotate(angle).Scale(speed)
	a.randomizeSpin(rng, cfg)
	return a
}

func (a *Asteroid) randomizeSpin(rng *rand.Rand, cfg config.AsteroidConfig) {
	a.RotationSpeed = physics.RandomFloat(rng, cfg.MinRotationSpeed, cfg.MaxRotationSpeed)
	a.Rotation = physics.RandomFloat(rng, 0, 360)
}

// Split returns the two children created when this asteroid is destroyed,
// or nil for the smallest size. Child shapes come from mode.
func (a *Asteroid) Split(rng *rand.Rand, mode ShapeMode, cfg config.AsteroidConfig) []*Asteroid {
	if a.Size <= SizeSmall {
		return nil
	}
	return []*Asteroid{
		NewFragment(rng, a, mode.Pick(rng), cfg.SplitAngle, cfg),
		NewFragment(rng, a, mode.Pick(rng), -cfg.SplitAngle, cfg),
	}
}

// Radius returns the collision radius.
func (a *Asteroid) Radius() float64 {
	return RadiusPerSize * float64(a.Size)
}

// Damage is dealt to the ship on contact and awarded as score when shot.
func (a *Asteroid) Damage() int {
	return a.Shape.BaseDamage() * int(a.Size)
}

// IncreaseSpeed scales the velocity by 1 + percent/100.
func (a *Asteroid) IncreaseSpeed(percent float64) {
	a.Velocity = a.Velocity.Scale(1 + percent/100)
}

// Update moves and rotates the asteroid. It is removed once it is fully
// outside the screen.
func (a *Asteroid) Update(ctx UpdateContext) bool {
	a.Integrate(&a.Transform, ctx.DT())
	return ctx.Viewport.Outside(a.Position, a.Radius())
}

// Draw renders the asteroid as a regular polygon outline.
func (a *Asteroid) Draw(ctx DrawContext) {
	ctx.Renderer.DrawPolygon(toPoint(a.Position), a.Shape.Sides(), a.Radius(), a.Rotation, draw.ColorWhite)
}

// MarkDestroyed marks the asteroid for removal (implements Destructible).
func (a *Asteroid) MarkDestroyed() {
	a.destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for destruction (implements Destructible).
func (a *Asteroid) IsDestroyed() bool {
	return a.destroyed
}
