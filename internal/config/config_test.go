package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Parse(defaultYAML) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, expected nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Screen.Width = 0 }, "screen"},
		{"zero fps", func(c *Config) { c.Runtime.FPS = 0 }, "runtime.fps"},
		{"inverted speed range", func(c *Config) { c.Asteroids.MinSpeed = 300 }, "speed range"},
		{"zero spawn floor", func(c *Config) { c.Spawn.Floor = 0 }, "spawn.floor"},
		{"tighten above one", func(c *Config) { c.Spawn.Tighten = 1.5 }, "spawn.tighten"},
		{"laser fire rate", func(c *Config) { c.Weapons.Laser.FireRate = 0 }, "weapons.laser.fire_rate"},
		{"bullet damage", func(c *Config) { c.Weapons.Bullet.Damage = -1 }, "weapons.bullet.damage"},
		{"max hp below hp", func(c *Config) { c.Ship.MaxHP = 50 }, "ship.max_hp"},
		{"drop chance", func(c *Config) { c.PowerUps.DropChance = 2 }, "powerups.drop_chance"},
		{"level step", func(c *Config) { c.Progression.LevelStep = 0 }, "progression.level_step"},
		{"broad phase", func(c *Config) { c.Collision.BroadPhase = "quadtree" }, "collision.broad_phase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() = nil, expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, expected it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateUncappedHP(t *testing.T) {
	cfg := Default()
	cfg.Ship.MaxHP = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with max_hp 0 = %v, expected nil", err)
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Runtime.FPS = 0
	cfg.Ship.Speed = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected error")
	}
	for _, want := range []string{"runtime.fps", "ship.speed"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, missing %q", err, want)
		}
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "ship:\n  hp: 50\ncollision:\n  broad_phase: grid\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Ship.HP != 50 {
		t.Errorf("Ship.HP = %d, expected 50", cfg.Ship.HP)
	}
	if cfg.Collision.BroadPhase != BroadPhaseGrid {
		t.Errorf("BroadPhase = %q, expected %q", cfg.Collision.BroadPhase, BroadPhaseGrid)
	}
	if cfg.Ship.Speed != Default().Ship.Speed {
		t.Errorf("Ship.Speed = %v, expected default %v", cfg.Ship.Speed, Default().Ship.Speed)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) = nil error, expected failure")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ship: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load(malformed) = nil error, expected failure")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("runtime:\n  fps: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("Load(invalid) error = %v, expected invalid config", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() without files = %+v, expected defaults", cfg)
	}

	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, LocalPath), []byte("ship:\n  hp: 70\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Ship.HP != 70 {
		t.Errorf("local config Ship.HP = %d, expected 70", cfg.Ship.HP)
	}

	if err := os.MkdirAll(filepath.Join(home, ".polyroids"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".polyroids", "config.yaml"), []byte("ship:\n  hp: 60\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Ship.HP != 60 {
		t.Errorf("user config Ship.HP = %d, expected 60 (user config wins over local)", cfg.Ship.HP)
	}
}

func TestLoadReportsBrokenSearchFile(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, LocalPath), []byte("ship: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), LocalPath) {
		t.Errorf("Load() with broken local config error = %v, expected it to name %s", err, LocalPath)
	}

	user := filepath.Join(home, ".polyroids", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(user), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(user, []byte("ship:\n  hp: [oops]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), user) {
		t.Errorf("Load() with broken user config error = %v, expected it to name %s", err, user)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "broad_phase: all_pairs") {
		t.Errorf("Marshal() output missing broad_phase:\n%s", data)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("POLYROIDS_TEST_STR", "value")
	t.Setenv("POLYROIDS_TEST_DUR", "45s")
	t.Setenv("POLYROIDS_TEST_BAD_DUR", "soon")
	t.Setenv("POLYROIDS_TEST_INT", "7")

	if got := GetEnv("POLYROIDS_TEST_STR", "x"); got != "value" {
		t.Errorf("GetEnv() = %q, expected %q", got, "value")
	}
	if got := GetEnv("POLYROIDS_TEST_UNSET", "x"); got != "x" {
		t.Errorf("GetEnv(unset) = %q, expected fallback", got)
	}
	if got := GetEnvDuration("POLYROIDS_TEST_DUR", time.Second); got != 45*time.Second {
		t.Errorf("GetEnvDuration() = %v, expected 45s", got)
	}
	if got := GetEnvDuration("POLYROIDS_TEST_BAD_DUR", time.Second); got != time.Second {
		t.Errorf("GetEnvDuration(malformed) = %v, expected fallback", got)
	}
	if got := GetEnvInt("POLYROIDS_TEST_INT", 1); got != 7 {
		t.Errorf("GetEnvInt() = %d, expected 7", got)
	}
}
