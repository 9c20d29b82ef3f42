package game

import (
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/physics"
)

// addScore awards points and applies every level threshold crossed.
// Each level-up speeds up the asteroids alive at that moment and tightens
// the spawn cadence.
func (g *Game) addScore(points int) {
	g.Score += points
	prog := g.cfg.Progression

	for g.Score >= g.NextLevelAt {
		g.Level++
		g.NextLevelAt += prog.LevelStep
		for _, a := range g.Asteroids {
			if !a.IsDestroyed() {
				a.IncreaseSpeed(prog.SpeedBoost)
			}
		}
		g.spawner.Tighten()
		g.logger.Debug("level up", "level", g.Level, "score", g.Score, "spawn_interval", g.spawner.Interval())
	}
}

// maybeDropPowerUp leaves a random power-up at pos with the configured chance.
func (g *Game) maybeDropPowerUp(pos physics.Vec2) {
	if g.rng.Float64() >= g.cfg.PowerUps.DropChance {
		return
	}
	t := object.RandomPowerUpType(g.rng)
	g.PowerUps = append(g.PowerUps, object.NewPowerUp(pos, t, g.cfg.PowerUps))
}

// updatePowerUps ages power-ups and applies the ones the live ship touches.
// An expired power-up is removed before it can be collected.
func (g *Game) updatePowerUps(ctx object.UpdateContext) {
	ship := g.Ship
	for _, p := range g.PowerUps {
		if p.Update(ctx) {
			p.MarkDestroyed()
			continue
		}
		if ship.Alive && physics.CirclesOverlap(ship.Position, ship.Radius, p.Position, p.Radius) {
			g.applyPowerUp(p.Type)
			p.MarkDestroyed()
		}
	}
	g.PowerUps = object.Compact(g.PowerUps)
}

func (g *Game) applyPowerUp(t object.PowerUpType) {
	switch t {
	case object.PowerUpHealth:
		g.Ship.TakeDamage(-g.cfg.PowerUps.Heal)
	case object.PowerUpTripleShot:
		g.Ship.EnableTripleShot()
	}
	g.logger.Debug("power-up collected", "type", t, "hp", g.Ship.HP)
}
