package game

import (
	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/physics"
)

// Explosion effects.
var shipBurst = object.Explosion{Count: 40, Speed: 160, Lifetime: 1.2, Color: draw.ColorOrange}

func asteroidBurst(size object.Size) object.Explosion {
	return object.Explosion{Count: 6 * int(size), Speed: 120, Lifetime: 0.6, Color: draw.ColorWhite}
}

// noHit is returned by the hit finders when no asteroid overlaps.
const noHit = -1

// resolveProjectileHits destroys every projectile that touches an asteroid,
// together with the first asteroid it touches. Fragments are appended at once
// and can be hit by later projectiles in the same pass. Removal is deferred
// to the compaction at the end.
func (g *Game) resolveProjectileHits() {
	g.buildGrid()

	for _, p := range g.Projectiles {
		i := g.firstHit(p)
		if i == noHit {
			continue
		}
		a := g.Asteroids[i]
		p.MarkDestroyed()
		a.MarkDestroyed()

		for _, child := range a.Split(g.rng, g.ShapeMode, g.cfg.Asteroids) {
			if g.grid != nil {
				g.grid.Insert(child.Position, len(g.Asteroids))
			}
			g.Asteroids = append(g.Asteroids, child)
		}

		g.addScore(a.Damage())
		g.maybeDropPowerUp(a.Position)
		g.Particles = asteroidBurst(a.Size).Spawn(g.fx, a.Position, g.Particles)
	}

	g.Projectiles = object.Compact(g.Projectiles)
	g.Asteroids = object.Compact(g.Asteroids)
}

func (g *Game) buildGrid() {
	if g.grid == nil {
		return
	}
	g.grid.Clear()
	for i, a := range g.Asteroids {
		g.grid.Insert(a.Position, i)
	}
}

// firstHit returns the index of the first live asteroid p overlaps.
func (g *Game) firstHit(p *object.Projectile) int {
	if g.grid != nil {
		return g.firstHitGrid(p)
	}
	for i, a := range g.Asteroids {
		if !a.IsDestroyed() && overlaps(p, a) {
			return i
		}
	}
	return noHit
}

// firstHitGrid visits only nearby asteroids and keeps the lowest index, which
// is the asteroid the linear scan would have found.
func (g *Game) firstHitGrid(p *object.Projectile) int {
	best := noHit
	g.grid.QueryAround(p.Position, func(i int) bool {
		if best != noHit && i > best {
			return false
		}
		a := g.Asteroids[i]
		if !a.IsDestroyed() && overlaps(p, a) {
			best = i
		}
		return false
	})
	return best
}

func overlaps(p *object.Projectile, a *object.Asteroid) bool {
	return physics.CirclesOverlap(p.Position, p.Radius(), a.Position, a.Radius())
}

// resolveShipHits runs the ship contact check and the asteroid update in a
// single filter pass. An asteroid that hits the live ship deals its damage
// and is removed without moving; the rest move and leave when off-screen.
func (g *Game) resolveShipHits(ctx object.UpdateContext) {
	ship := g.Ship
	kept := g.Asteroids[:0]
	for _, a := range g.Asteroids {
		if ship.Alive && physics.CirclesOverlap(ship.Position, ship.Radius, a.Position, a.Radius()) {
			ship.TakeDamage(a.Damage())
			continue
		}
		if a.Update(ctx) {
			continue
		}
		kept = append(kept, a)
	}
	clear(g.Asteroids[len(kept):])
	g.Asteroids = kept
}
