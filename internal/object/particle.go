package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/polyroids/internal/draw"
)

// particleSize is the side of the square a particle is drawn as.
const particleSize = 3.0

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived piece of debris. It never collides.
type Particle struct {
	Position    Vec2
	Velocity    Vec2
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay per 1/60 s (1.0 = no drag)
	Color       draw.Color
}

// NewParticle creates a single particle from the pool.
func NewParticle(pos, vel Vec2, lifetime float64, c draw.Color) *Particle {
	p := particlePool.Get().(*Particle)
	p.Position = pos
	p.Velocity = vel
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	p.Color = c
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Explosion describes a radial burst of particles.
type Explosion struct {
	Count    int
	Speed    float64 // Mean particle speed in pixels per second
	Lifetime float64 // Longest particle lifetime in seconds
	Color    draw.Color
}

// Spawn appends the burst's particles at pos to dst.
func (e Explosion) Spawn(rng *rand.Rand, pos Vec2, dst []*Particle) []*Particle {
	for range e.Count {
		angle := rng.Float64() * 2 * math.Pi
		// Speed varies 50% to 150%, lifetime 50% to 100%
		spd := e.Speed * (0.5 + rng.Float64())
		life := e.Lifetime * (0.5 + rng.Float64()*0.5)

		dst = append(dst, NewParticle(pos, Vec2{X: math.Cos(angle) * spd, Y: math.Sin(angle) * spd}, life, e.Color))
	}
	return dst
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(ctx UpdateContext) bool {
	dt := ctx.DT()

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true
	}

	dragFactor := math.Pow(p.Drag, dt*60) // Normalize drag to ~60fps
	p.Velocity = p.Velocity.Scale(dragFactor)
	p.Position = p.Position.Add(p.Velocity.Scale(dt))

	return ctx.Viewport.Outside(p.Position, 0)
}

// Draw renders the particle as a small square. It dims in the second half
// of its life and disappears in the last quarter.
func (p *Particle) Draw(ctx DrawContext) {
	frac := p.Lifetime / p.MaxLifetime
	if frac < 0.25 {
		return
	}
	c := p.Color
	if frac < 0.5 {
		c = draw.ColorGray
	}
	ctx.Renderer.DrawRectangle(draw.Rect{
		X:      p.Position.X - particleSize/2,
		Y:      p.Position.Y - particleSize/2,
		Width:  particleSize,
		Height: particleSize,
	}, c)
}
