// Package object defines the game entities and their per-frame behavior.
package object

import (
	"time"

	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/physics"
)

// Vec2 is an alias for the physics package's vector type.
type Vec2 = physics.Vec2

// Viewport is the logical world size in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// Center returns the middle of the viewport.
func (v Viewport) Center() Vec2 {
	return Vec2{X: v.Width / 2, Y: v.Height / 2}
}

// Outside reports whether p lies beyond the viewport grown by pad on every side.
// Points exactly on the padded edge are inside.
func (v Viewport) Outside(p Vec2, pad float64) bool {
	return p.X < -pad || p.X > v.Width+pad || p.Y < -pad || p.Y > v.Height+pad
}

// Transform is a position plus a rotation in degrees.
type Transform struct {
	Position Vec2
	Rotation float64
}

// Physics is a linear velocity plus a rotation speed in degrees per second.
type Physics struct {
	Velocity      Vec2
	RotationSpeed float64
}

// Integrate advances t by dt seconds.
func (p Physics) Integrate(t *Transform, dt float64) {
	t.Position = t.Position.Add(p.Velocity.Scale(dt))
	t.Rotation += p.RotationSpeed * dt
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta    time.Duration
	Input    input.Input
	Viewport Viewport
}

// DT returns the frame delta in seconds.
func (c UpdateContext) DT() float64 {
	return c.Delta.Seconds()
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Renderer draw.Renderer
	Time     float64 // Seconds since the game started
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Draw draws the object.
	Draw(ctx DrawContext)
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on the next compaction.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Compact removes destroyed objects in place, preserving order.
// The freed tail is cleared so dropped objects can be collected.
func Compact[T Destructible](objs []T) []T {
	kept := objs[:0]
	for _, o := range objs {
		if !o.IsDestroyed() {
			kept = append(kept, o)
		}
	}
	clear(objs[len(kept):])
	return kept
}

func toPoint(v Vec2) draw.Point {
	return draw.Point{X: v.X, Y: v.Y}
}
