package object

import (
	"math/rand"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/draw"
)

// PowerUpType is the effect applied on pickup.
type PowerUpType uint8

const (
	PowerUpHealth PowerUpType = iota
	PowerUpTripleShot
)

func (t PowerUpType) String() string {
	switch t {
	case PowerUpHealth:
		return "HEALTH"
	case PowerUpTripleShot:
		return "TRIPLE_SHOT"
	default:
		return "UNKNOWN"
	}
}

// RandomPowerUpType picks a type uniformly.
func RandomPowerUpType(rng *rand.Rand) PowerUpType {
	return PowerUpType(rng.Intn(2))
}

// PowerUp is a stationary pickup that expires after Lifetime seconds.
type PowerUp struct {
	Position  Vec2
	Radius    float64
	Type      PowerUpType
	Timer     float64
	Lifetime  float64
	destroyed bool
}

// NewPowerUp creates a power-up at pos.
func NewPowerUp(pos Vec2, t PowerUpType, cfg config.PowerUpConfig) *PowerUp {
	return &PowerUp{
		Position: pos,
		Radius:   cfg.Radius,
		Type:     t,
		Lifetime: cfg.Lifetime,
	}
}

// Update ages the power-up. It expires once Timer reaches Lifetime.
func (p *PowerUp) Update(ctx UpdateContext) bool {
	p.Timer += ctx.DT()
	return p.Expired()
}

// Expired reports whether the power-up has run out.
func (p *PowerUp) Expired() bool {
	return p.Timer >= p.Lifetime
}

// Draw renders health as a green circle and triple shot as a pink one.
func (p *PowerUp) Draw(ctx DrawContext) {
	c := draw.ColorPink
	if p.Type == PowerUpHealth {
		c = draw.ColorGreen
	}
	ctx.Renderer.DrawCircle(toPoint(p.Position), p.Radius, c)
}

// MarkDestroyed marks the power-up as collected.
func (p *PowerUp) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the power-up was collected.
func (p *PowerUp) IsDestroyed() bool {
	return p.destroyed
}
