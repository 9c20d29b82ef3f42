package config

import (
	_ "embed"
)

//go:embed defaults/polyroids.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors defaults/polyroids.yaml.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  1000,
			Height: 1000,
		},
		Runtime: RuntimeConfig{
			FPS:         60,
			InputHoldMS: 120,
		},
		Asteroids: AsteroidConfig{
			Max:              150,
			MinSpeed:         125,
			MaxSpeed:         250,
			MinRotationSpeed: 50,
			MaxRotationSpeed: 240,
			CenterJitter:     0.1,
			SplitAngle:       0.5,
		},
		Spawn: SpawnConfig{
			MinInterval: 0.5,
			MaxInterval: 3.0,
			Floor:       0.05,
			Tighten:     0.8,
		},
		Weapons: WeaponsConfig{
			Laser:  WeaponConfig{FireRate: 18, Spacing: 40, Damage: 20},
			Bullet: WeaponConfig{FireRate: 22, Spacing: 20, Damage: 10},
		},
		Ship: ShipConfig{
			HP:                 100,
			MaxHP:              100,
			Speed:              250,
			Radius:             20,
			TripleShotDuration: 5,
			TripleShotSpread:   10,
		},
		PowerUps: PowerUpConfig{
			DropChance: 0.05,
			Lifetime:   5,
			Radius:     20,
			Heal:       20,
		},
		Progression: ProgressionConfig{
			FirstLevelAt: 100,
			LevelStep:    100,
			SpeedBoost:   30,
		},
		Collision: CollisionConfig{
			BroadPhase: BroadPhaseAllPairs,
		},
	}
}
