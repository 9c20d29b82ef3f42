package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/physics"
	"pgregory.net/rapid"
)

var broadPhases = []string{config.BroadPhaseAllPairs, config.BroadPhaseGrid}

func TestProjectileHitScoresDamage(t *testing.T) {
	for _, bp := range broadPhases {
		t.Run(bp, func(t *testing.T) {
			cfg := testConfig()
			cfg.Collision.BroadPhase = bp
			g := newTestGame(cfg)
			placeAsteroid(g, physics.Vec2{X: 500, Y: 200}, object.SizeSmall, object.ShapeSquare)
			placeProjectile(g, physics.Vec2{X: 505, Y: 205})

			g.Step(frame, input.Empty())

			if g.Score != 10 {
				t.Errorf("Score = %d, expected 10", g.Score)
			}
			if len(g.Asteroids) != 0 || len(g.Projectiles) != 0 {
				t.Errorf("asteroids/projectiles = %d/%d, expected both removed", len(g.Asteroids), len(g.Projectiles))
			}
		})
	}
}

func TestProjectileMissKeepsScore(t *testing.T) {
	g := newTestGame(testConfig())
	placeAsteroid(g, physics.Vec2{X: 500, Y: 200}, object.SizeSmall, object.ShapeSquare)
	// Distance equals the sum of the radii: touching is not a hit.
	placeProjectile(g, physics.Vec2{X: 500 + object.RadiusPerSize + object.WeaponLaser.Radius(), Y: 200})

	g.Step(frame, input.Empty())

	if g.Score != 0 || len(g.Asteroids) != 1 || len(g.Projectiles) != 1 {
		t.Errorf("touching circles counted as a hit")
	}
}

func TestShipContactDoesNotScore(t *testing.T) {
	g := newTestGame(testConfig())
	placeAsteroid(g, g.Ship.Position, object.SizeSmall, object.ShapePentagon)

	g.Step(frame, input.Empty())

	if g.Score != 0 {
		t.Errorf("Score = %d after ship contact, expected 0", g.Score)
	}
}

func TestFirstHitWins(t *testing.T) {
	for _, bp := range broadPhases {
		t.Run(bp, func(t *testing.T) {
			cfg := testConfig()
			cfg.Collision.BroadPhase = bp
			g := newTestGame(cfg)
			first := placeAsteroid(g, physics.Vec2{X: 490, Y: 200}, object.SizeSmall, object.ShapeTriangle)
			second := placeAsteroid(g, physics.Vec2{X: 510, Y: 200}, object.SizeSmall, object.ShapePentagon)
			placeProjectile(g, physics.Vec2{X: 500, Y: 200})

			g.Step(frame, input.Empty())

			if !first.IsDestroyed() || second.IsDestroyed() {
				t.Errorf("expected only the first asteroid destroyed")
			}
			if len(g.Asteroids) != 1 || g.Asteroids[0] != second {
				t.Errorf("expected the second asteroid to survive")
			}
			if g.Score != first.Damage() {
				t.Errorf("Score = %d, expected %d", g.Score, first.Damage())
			}
		})
	}
}

func TestFragmentsCanBeHitInSamePass(t *testing.T) {
	for _, bp := range broadPhases {
		t.Run(bp, func(t *testing.T) {
			cfg := testConfig()
			cfg.Collision.BroadPhase = bp
			g := newTestGame(cfg)
			pos := physics.Vec2{X: 500, Y: 200}
			placeAsteroid(g, pos, object.SizeLarge, object.ShapeTriangle)
			placeProjectile(g, pos)
			placeProjectile(g, pos)

			g.Step(frame, input.Empty())

			// Large triangle (20) then one medium fragment (10).
			if g.Score != 30 {
				t.Errorf("Score = %d, expected 30", g.Score)
			}
			wantSizes := []object.Size{object.SizeMedium, object.SizeSmall, object.SizeSmall}
			if len(g.Asteroids) != len(wantSizes) {
				t.Fatalf("%d asteroids, expected %d", len(g.Asteroids), len(wantSizes))
			}
			for i, a := range g.Asteroids {
				if a.Size != wantSizes[i] {
					t.Errorf("asteroid %d size = %d, expected %d", i, a.Size, wantSizes[i])
				}
				if a.Position != pos {
					t.Errorf("asteroid %d at %v, expected %v", i, a.Position, pos)
				}
			}
			if len(g.Projectiles) != 0 {
				t.Errorf("%d projectiles left, expected 0", len(g.Projectiles))
			}
		})
	}
}

func TestFragmentsUseCurrentShapeMode(t *testing.T) {
	g := newTestGame(testConfig())
	g.ShapeMode = object.ShapeModePentagon
	placeAsteroid(g, physics.Vec2{X: 500, Y: 200}, object.SizeMedium, object.ShapeTriangle)
	placeProjectile(g, physics.Vec2{X: 500, Y: 200})

	g.Step(frame, input.Empty())

	if len(g.Asteroids) != 2 {
		t.Fatalf("%d asteroids, expected 2 fragments", len(g.Asteroids))
	}
	for _, a := range g.Asteroids {
		if a.Shape != object.ShapePentagon {
			t.Errorf("fragment shape = %v, expected PENTAGON", a.Shape)
		}
	}
}

func TestLevelUp(t *testing.T) {
	g := newTestGame(testConfig())
	g.Score = 90
	placeAsteroid(g, physics.Vec2{X: 500, Y: 200}, object.SizeMedium, object.ShapeSquare)
	placeProjectile(g, physics.Vec2{X: 500, Y: 200})

	g.Step(frame, input.Empty())

	if g.Score != 110 || g.Level != 2 || g.NextLevelAt != 200 {
		t.Errorf("score/level/next = %d/%d/%d, expected 110/2/200", g.Score, g.Level, g.NextLevelAt)
	}
}

func TestLevelUpCrossesEveryThreshold(t *testing.T) {
	cfg := testConfig()
	cfg.Progression.LevelStep = 20
	g := newTestGame(cfg)
	g.Score = 95
	bystander := placeAsteroid(g, physics.Vec2{X: 100, Y: 100}, object.SizeSmall, object.ShapeTriangle)
	bystander.Velocity = physics.Vec2{X: 100}
	placeAsteroid(g, physics.Vec2{X: 500, Y: 200}, object.SizeLarge, object.ShapePentagon)
	placeProjectile(g, physics.Vec2{X: 500, Y: 200})

	g.Step(frame, input.Empty())

	// 95 + 60 = 155 crosses 100, 120 and 140.
	if g.Score != 155 || g.Level != 4 || g.NextLevelAt != 160 {
		t.Errorf("score/level/next = %d/%d/%d, expected 155/4/160", g.Score, g.Level, g.NextLevelAt)
	}
	if want := 100 * math.Pow(1.3, 3); math.Abs(bystander.Velocity.X-want) > 1e-9 {
		t.Errorf("bystander speed = %v, expected %v", bystander.Velocity.X, want)
	}
	if want := math.Pow(0.8, 3); math.Abs(g.spawner.Factor()-want) > 1e-9 {
		t.Errorf("spawner factor = %v, expected %v", g.spawner.Factor(), want)
	}
}

func TestPowerUpDrop(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUps.DropChance = 1
	g := newTestGame(cfg)
	pos := physics.Vec2{X: 300, Y: 200}
	placeAsteroid(g, pos, object.SizeSmall, object.ShapeTriangle)
	placeProjectile(g, pos)

	g.Step(frame, input.Empty())

	if len(g.PowerUps) != 1 {
		t.Fatalf("%d power-ups, expected 1", len(g.PowerUps))
	}
	if g.PowerUps[0].Position != pos {
		t.Errorf("power-up at %v, expected %v", g.PowerUps[0].Position, pos)
	}
}

func TestNoDropWithZeroChance(t *testing.T) {
	g := newTestGame(testConfig())
	for i := range 20 {
		pos := physics.Vec2{X: float64(50 + i*40), Y: 200}
		placeAsteroid(g, pos, object.SizeSmall, object.ShapeTriangle)
		placeProjectile(g, pos)
	}

	g.Step(frame, input.Empty())

	if len(g.PowerUps) != 0 {
		t.Errorf("%d power-ups dropped with zero chance", len(g.PowerUps))
	}
}

func TestGridFirstHitMatchesLinearScan(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := testConfig()
		cfg.Collision.BroadPhase = config.BroadPhaseGrid
		g := newTestGame(cfg)

		n := rapid.IntRange(0, 60).Draw(t, "asteroids")
		for range n {
			size := object.Size(1 << rapid.IntRange(0, 2).Draw(t, "size"))
			pos := physics.Vec2{
				X: rapid.Float64Range(-100, 1100).Draw(t, "x"),
				Y: rapid.Float64Range(-100, 1100).Draw(t, "y"),
			}
			a := placeAsteroid(g, pos, size, object.ShapeSquare)
			if rapid.Bool().Draw(t, "destroyed") {
				a.MarkDestroyed()
			}
		}
		g.buildGrid()

		weapon := rapid.SampledFrom([]object.WeaponType{object.WeaponLaser, object.WeaponBullet}).Draw(t, "weapon")
		p := object.NewProjectile(physics.Vec2{
			X: rapid.Float64Range(0, 1000).Draw(t, "px"),
			Y: rapid.Float64Range(0, 1000).Draw(t, "py"),
		}, physics.Vec2{}, weapon, 10)

		want := noHit
		for i, a := range g.Asteroids {
			if !a.IsDestroyed() && overlaps(p, a) {
				want = i
				break
			}
		}
		if got := g.firstHitGrid(p); got != want {
			t.Fatalf("grid hit %d, linear scan hit %d", got, want)
		}
	})
}

func TestGridGameMatchesAllPairsGame(t *testing.T) {
	allPairs := config.Default()
	grid := config.Default()
	grid.Collision.BroadPhase = config.BroadPhaseGrid

	a := New(allPairs, rand.New(rand.NewSource(7)), nil)
	b := New(grid, rand.New(rand.NewSource(7)), nil)

	for i := range 1200 {
		in := scriptedInput(i)
		a.Step(frame, in)
		b.Step(frame, in)
		if a.Score != b.Score {
			t.Fatalf("frame %d: score %d vs %d", i, a.Score, b.Score)
		}
	}
	assertSameWorld(t, a, b)
}
