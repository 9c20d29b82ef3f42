// Package config provides YAML-based game configuration loading
// and shared environment helpers.
package config

import (
	"errors"
	"fmt"
)

// Broad-phase strategies for projectile/asteroid collision.
const (
	BroadPhaseAllPairs = "all_pairs"
	BroadPhaseGrid     = "grid"
)

// Config contains all tunable parameters of the simulation.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Runtime     RuntimeConfig     `yaml:"runtime"`
	Asteroids   AsteroidConfig    `yaml:"asteroids"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Weapons     WeaponsConfig     `yaml:"weapons"`
	Ship        ShipConfig        `yaml:"ship"`
	PowerUps    PowerUpConfig     `yaml:"powerups"`
	Progression ProgressionConfig `yaml:"progression"`
	Collision   CollisionConfig   `yaml:"collision"`
}

// ScreenConfig is the logical world size in pixels.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RuntimeConfig controls the frame loop.
type RuntimeConfig struct {
	FPS         int `yaml:"fps"`
	InputHoldMS int `yaml:"input_hold_ms"` // how long a key counts as held after its last byte
}

// AsteroidConfig defines asteroid motion and splitting.
type AsteroidConfig struct {
	Max              int     `yaml:"max"`
	MinSpeed         float64 `yaml:"min_speed"`
	MaxSpeed         float64 `yaml:"max_speed"`
	MinRotationSpeed float64 `yaml:"min_rotation_speed"` // degrees per second
	MaxRotationSpeed float64 `yaml:"max_rotation_speed"`
	CenterJitter     float64 `yaml:"center_jitter"` // fraction of min(width, height)
	SplitAngle       float64 `yaml:"split_angle"`   // radians
}

// SpawnConfig defines the asteroid spawn cadence.
type SpawnConfig struct {
	MinInterval float64 `yaml:"min_interval"`
	MaxInterval float64 `yaml:"max_interval"`
	Floor       float64 `yaml:"floor"`
	Tighten     float64 `yaml:"tighten"` // interval multiplier applied on level-up
}

// WeaponsConfig holds per-weapon parameters.
type WeaponsConfig struct {
	Laser  WeaponConfig `yaml:"laser"`
	Bullet WeaponConfig `yaml:"bullet"`
}

// WeaponConfig defines fire rate, spacing between consecutive shots and damage.
type WeaponConfig struct {
	FireRate float64 `yaml:"fire_rate"` // shots per second
	Spacing  float64 `yaml:"spacing"`   // pixels between consecutive shots
	Damage   int     `yaml:"damage"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	HP                 int     `yaml:"hp"`
	MaxHP              int     `yaml:"max_hp"` // 0 disables the cap
	Speed              float64 `yaml:"speed"`
	Radius             float64 `yaml:"radius"`
	TripleShotDuration float64 `yaml:"triple_shot_duration"`
	TripleShotSpread   float64 `yaml:"triple_shot_spread"`
}

// PowerUpConfig defines dropped power-ups.
type PowerUpConfig struct {
	DropChance float64 `yaml:"drop_chance"`
	Lifetime   float64 `yaml:"lifetime"`
	Radius     float64 `yaml:"radius"`
	Heal       int     `yaml:"heal"`
}

// ProgressionConfig defines score thresholds and per-level speed boost.
type ProgressionConfig struct {
	FirstLevelAt int     `yaml:"first_level_at"`
	LevelStep    int     `yaml:"level_step"`
	SpeedBoost   float64 `yaml:"speed_boost"` // percent
}

// CollisionConfig selects the broad phase.
type CollisionConfig struct {
	BroadPhase string `yaml:"broad_phase"`
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen: size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height)
	check(c.Runtime.FPS > 0, "runtime.fps must be positive, got %d", c.Runtime.FPS)
	check(c.Runtime.InputHoldMS >= 0, "runtime.input_hold_ms must not be negative")

	check(c.Asteroids.Max > 0, "asteroids.max must be positive, got %d", c.Asteroids.Max)
	check(c.Asteroids.MinSpeed > 0 && c.Asteroids.MinSpeed <= c.Asteroids.MaxSpeed,
		"asteroids: speed range [%v, %v] is invalid", c.Asteroids.MinSpeed, c.Asteroids.MaxSpeed)
	check(c.Asteroids.MinRotationSpeed <= c.Asteroids.MaxRotationSpeed,
		"asteroids: rotation range [%v, %v] is invalid", c.Asteroids.MinRotationSpeed, c.Asteroids.MaxRotationSpeed)
	check(c.Asteroids.CenterJitter >= 0 && c.Asteroids.CenterJitter <= 0.5, "asteroids.center_jitter must be in [0, 0.5]")

	check(c.Spawn.Floor > 0, "spawn.floor must be positive")
	check(c.Spawn.MinInterval > 0 && c.Spawn.MinInterval <= c.Spawn.MaxInterval,
		"spawn: interval range [%v, %v] is invalid", c.Spawn.MinInterval, c.Spawn.MaxInterval)
	check(c.Spawn.Tighten > 0 && c.Spawn.Tighten <= 1, "spawn.tighten must be in (0, 1]")

	for name, w := range map[string]WeaponConfig{"laser": c.Weapons.Laser, "bullet": c.Weapons.Bullet} {
		check(w.FireRate > 0, "weapons.%s.fire_rate must be positive", name)
		check(w.Spacing > 0, "weapons.%s.spacing must be positive", name)
		check(w.Damage > 0, "weapons.%s.damage must be positive", name)
	}

	check(c.Ship.HP > 0, "ship.hp must be positive")
	check(c.Ship.MaxHP == 0 || c.Ship.MaxHP >= c.Ship.HP, "ship.max_hp must be 0 or at least ship.hp")
	check(c.Ship.Speed > 0, "ship.speed must be positive")
	check(c.Ship.Radius > 0, "ship.radius must be positive")
	check(c.Ship.TripleShotDuration > 0, "ship.triple_shot_duration must be positive")

	check(c.PowerUps.DropChance >= 0 && c.PowerUps.DropChance <= 1, "powerups.drop_chance must be in [0, 1]")
	check(c.PowerUps.Lifetime > 0, "powerups.lifetime must be positive")
	check(c.PowerUps.Radius > 0, "powerups.radius must be positive")

	check(c.Progression.FirstLevelAt > 0, "progression.first_level_at must be positive")
	check(c.Progression.LevelStep > 0, "progression.level_step must be positive")

	check(c.Collision.BroadPhase == BroadPhaseAllPairs || c.Collision.BroadPhase == BroadPhaseGrid,
		"collision.broad_phase must be %q or %q, got %q", BroadPhaseAllPairs, BroadPhaseGrid, c.Collision.BroadPhase)

	return errors.Join(errs...)
}
