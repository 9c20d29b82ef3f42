package object

import (
	"github.com/tomz197/polyroids/internal/draw"
)

// WeaponType selects the projectile the ship fires.
type WeaponType uint8

const (
	WeaponLaser WeaponType = iota
	WeaponBullet
)

var weaponTable = [...]struct {
	name   string
	radius float64
}{
	WeaponLaser:  {"LASER", 2},
	WeaponBullet: {"BULLET", 5},
}

// Laser beams are drawn as a thin bar trailing the projectile position.
const (
	laserWidth  = 4.0
	laserLength = 30.0
)

// Next cycles to the other weapon.
func (w WeaponType) Next() WeaponType {
	return (w + 1) % WeaponType(len(weaponTable))
}

// Radius returns the collision radius of this weapon's projectiles.
func (w WeaponType) Radius() float64 { return weaponTable[w].radius }

func (w WeaponType) String() string { return weaponTable[w].name }

// Projectile is a shot fired by the ship. It flies in a straight line.
type Projectile struct {
	Transform
	Physics
	Damage    int
	Weapon    WeaponType
	destroyed bool
}

// NewProjectile creates a projectile at pos moving with velocity vel.
func NewProjectile(pos, vel Vec2, weapon WeaponType, damage int) *Projectile {
	p := &Projectile{
		Damage: damage,
		Weapon: weapon,
	}
	p.Position = pos
	p.Velocity = vel
	return p
}

// Radius returns the collision radius.
func (p *Projectile) Radius() float64 {
	return p.Weapon.Radius()
}

// Update moves the projectile. It is removed once its center leaves the screen.
func (p *Projectile) Update(ctx UpdateContext) bool {
	p.Integrate(&p.Transform, ctx.DT())
	return ctx.Viewport.Outside(p.Position, 0)
}

// Draw renders bullets as white circles and lasers as pink bars.
func (p *Projectile) Draw(ctx DrawContext) {
	switch p.Weapon {
	case WeaponBullet:
		ctx.Renderer.DrawCircle(toPoint(p.Position), p.Radius(), draw.ColorWhite)
	default:
		ctx.Renderer.DrawRectangle(draw.Rect{
			X:      p.Position.X - laserWidth/2,
			Y:      p.Position.Y - laserLength,
			Width:  laserWidth,
			Height: laserLength,
		}, draw.ColorPink)
	}
}

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the projectile is marked for destruction.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}
