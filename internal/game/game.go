// Package game owns the world state and advances it one frame at a time.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/physics"
)

// State is the game phase, derived from whether the ship is alive.
type State int

const (
	StatePlaying    State = iota // Ship alive
	StatePlayerDead              // Ship destroyed, waiting for restart
)

func (s State) String() string {
	if s == StatePlayerDead {
		return "PLAYER_DEAD"
	}
	return "PLAYING"
}

// Game is a single-player world: one ship, the three entity collections
// and decorative particles.
// It is not safe for concurrent use.
type Game struct {
	Ship        *object.Ship
	Asteroids   []*object.Asteroid
	Projectiles []*object.Projectile
	PowerUps    []*object.PowerUp
	Particles   []*object.Particle // Debris only, never collides

	Score       int
	Level       int
	NextLevelAt int

	Weapon    object.WeaponType
	ShapeMode object.ShapeMode

	cfg      config.Config
	rng      *rand.Rand
	fx       *rand.Rand // Separate stream so effects never change the simulation
	logger   *log.Logger
	viewport object.Viewport
	spawner  *object.Spawner
	fire     object.FireControl
	grid     *physics.SpatialGrid // nil unless the grid broad phase is configured
	time     float64              // Seconds of simulated time
}

// New creates a game in the playing state. All randomness is drawn from rng,
// so equal seeds and inputs give equal games. A nil logger discards output.
func New(cfg config.Config, rng *rand.Rand, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	vp := object.Viewport{Width: cfg.Screen.Width, Height: cfg.Screen.Height}

	g := &Game{
		Weapon:    object.WeaponLaser,
		ShapeMode: object.ShapeModeTriangle,
		cfg:       cfg,
		rng:       rng,
		fx:        rand.New(rand.NewSource(rng.Int63())),
		logger:    logger,
		viewport:  vp,
		spawner:   object.NewSpawner(rng, vp, cfg.Spawn, cfg.Asteroids),
	}
	if cfg.Collision.BroadPhase == config.BroadPhaseGrid {
		g.grid = physics.NewSpatialGrid(vp.Width, vp.Height, gridCellSize())
	}
	g.reset()
	return g
}

// gridCellSize is the largest possible asteroid-projectile contact distance.
func gridCellSize() float64 {
	return object.RadiusPerSize*float64(object.SizeLarge) + object.WeaponBullet.Radius()
}

// reset puts the world into its initial state. Weapon and shape mode are kept.
func (g *Game) reset() {
	g.Ship = object.NewShip(g.viewport.Center(), g.cfg.Ship, g.cfg.Weapons)
	clear(g.Asteroids)
	g.Asteroids = g.Asteroids[:0]
	clear(g.Projectiles)
	g.Projectiles = g.Projectiles[:0]
	clear(g.PowerUps)
	g.PowerUps = g.PowerUps[:0]
	g.releaseParticles()
	g.Score = 0
	g.Level = 1
	g.NextLevelAt = g.cfg.Progression.FirstLevelAt
	g.spawner.Reset()
	g.fire.Reset()
}

// Restart recreates the ship and clears the world.
func (g *Game) Restart() {
	g.reset()
	g.logger.Debug("game restarted", "weapon", g.Weapon, "shape", g.ShapeMode)
}

// State returns the current phase.
func (g *Game) State() State {
	if g.Ship.Alive {
		return StatePlaying
	}
	return StatePlayerDead
}

// Viewport returns the logical world size.
func (g *Game) Viewport() object.Viewport {
	return g.viewport
}

// Time returns the simulated time in seconds.
func (g *Game) Time() float64 {
	return g.time
}

// Step advances the world by delta using the frame's input.
// The phase order is fixed: collisions see positions already advanced this
// frame, and level-up boosts apply before the next spawn check.
func (g *Game) Step(delta time.Duration, in input.Input) {
	ctx := object.UpdateContext{
		Delta:    delta,
		Input:    in,
		Viewport: g.viewport,
	}
	dt := ctx.DT()
	g.time += dt

	wasAlive := g.Ship.Alive
	g.Ship.Update(ctx)

	if !g.Ship.Alive && in.Restart {
		g.Restart()
	}

	g.switchModes(in)
	g.fireWeapon(dt, in.Fire)

	if a := g.spawner.Update(dt, len(g.Asteroids), g.ShapeMode); a != nil {
		g.Asteroids = append(g.Asteroids, a)
	}

	g.updateProjectiles(ctx)
	g.resolveProjectileHits()
	g.updatePowerUps(ctx)
	g.resolveShipHits(ctx)

	if wasAlive && !g.Ship.Alive {
		g.Particles = shipBurst.Spawn(g.fx, g.Ship.Position, g.Particles)
		g.logger.Debug("ship destroyed", "score", g.Score, "level", g.Level)
	}
	g.updateParticles(ctx)
}

func (g *Game) switchModes(in input.Input) {
	if mode, ok := object.ShapeModeFromKey(in.Number); ok && mode != g.ShapeMode {
		g.ShapeMode = mode
		g.logger.Debug("shape mode changed", "shape", mode)
	}
	if in.NextWeapon {
		g.Weapon = g.Weapon.Next()
		g.logger.Debug("weapon changed", "weapon", g.Weapon)
	}
}

func (g *Game) fireWeapon(dt float64, held bool) {
	shots := g.fire.Update(dt, held, g.Ship.Alive, g.Ship.FireRate(g.Weapon))
	for range shots {
		g.Projectiles = append(g.Projectiles, object.Volley(g.Ship, g.Weapon)...)
	}
}

func (g *Game) updateProjectiles(ctx object.UpdateContext) {
	kept := g.Projectiles[:0]
	for _, p := range g.Projectiles {
		if !p.Update(ctx) {
			kept = append(kept, p)
		}
	}
	clear(g.Projectiles[len(kept):])
	g.Projectiles = kept
}

func (g *Game) updateParticles(ctx object.UpdateContext) {
	kept := g.Particles[:0]
	for _, p := range g.Particles {
		if p.Update(ctx) {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(g.Particles[len(kept):])
	g.Particles = kept
}

func (g *Game) releaseParticles() {
	for _, p := range g.Particles {
		p.Release()
	}
	clear(g.Particles)
	g.Particles = g.Particles[:0]
}
