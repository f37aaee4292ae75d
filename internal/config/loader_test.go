package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedMatchesBuiltin(t *testing.T) {
	cfg, err := ParseInvaders(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultInvadersConfig()) {
		t.Errorf("embedded YAML differs from DefaultInvadersConfig():\n%+v\n%+v", cfg, DefaultInvadersConfig())
	}
}

func TestRockXPositions(t *testing.T) {
	xs := DefaultInvadersConfig().Rocks.RockXPositions()
	if len(xs) != 27 {
		t.Fatalf("expected 27 rock columns, got %d", len(xs))
	}
	if xs[0] != 50 || xs[8] != 170 || xs[9] != 235 || xs[26] != 540 {
		t.Errorf("unexpected band boundaries: %v", xs)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, source, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg.Scene.Width != 600 {
		t.Errorf("default width = %v, expected 600", cfg.Scene.Width)
	}

	// Local ./configs wins over embedded
	writeFile(t, filepath.Join(work, "configs", ConfigFileName), "fire:\n  interval: 2.5\n")
	cfg, source, err = LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if source != SourceLocal || cfg.Fire.Interval != 2.5 {
		t.Errorf("expected local config with interval 2.5, got %q %v", source, cfg.Fire.Interval)
	}
	// Unset keys keep defaults
	if cfg.Fire.VolleySize != 2 {
		t.Errorf("volley size should keep default 2, got %d", cfg.Fire.VolleySize)
	}

	// User config wins over local
	writeFile(t, filepath.Join(home, ".arcade", "configs", ConfigFileName), "formation:\n  step: 4\n")
	cfg, source, err = LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if source != SourceUser || cfg.Formation.Step != 4 {
		t.Errorf("expected user config with step 4, got %q %v", source, cfg.Formation.Step)
	}

	// Custom path wins over everything
	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "scene:\n  width: 800\n")
	cfg, source, err = LoadInvaders(custom)
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if source != SourceCustom || cfg.Scene.Width != 800 {
		t.Errorf("expected custom config with width 800, got %q %v", source, cfg.Scene.Width)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadInvaders(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "scene: [not, a, map")
	if _, _, err := LoadInvaders(broken); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "scene:\n  width: -1\nfire:\n  interval: 0\n")
	_, _, err := LoadInvaders(invalid)
	if err == nil {
		t.Fatal("invalid values should fail validation")
	}
	for _, want := range []string{"scene.width", "fire.interval"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestInvalidLocalFallsThrough(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	t.Chdir(work)

	writeFile(t, filepath.Join(work, "configs", ConfigFileName), "rocks:\n  bands: []\n")
	_, source, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("invalid local config should be skipped, got source %q", source)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
		field  string
	}{
		{"zero tick rate", func(c *InvadersConfig) { c.Scene.TickRate = 0 }, "scene.tick_rate"},
		{"negative dt", func(c *InvadersConfig) { c.Scene.Dt = -0.01 }, "scene.dt"},
		{"margin too wide", func(c *InvadersConfig) { c.Ship.Margin = 400 }, "ship.margin"},
		{"negative alien trim", func(c *InvadersConfig) { c.Aliens.Trim = -1 }, "aliens.trim"},
		{"zero band step", func(c *InvadersConfig) { c.Rocks.Bands[0].Step = 0 }, "rocks.bands[0].step"},
		{"reversed band", func(c *InvadersConfig) { c.Rocks.Bands[1].To = 0 }, "rocks.bands[1]"},
		{"zero formation step", func(c *InvadersConfig) { c.Formation.Step = 0 }, "formation.step"},
		{"zero enemy speed", func(c *InvadersConfig) { c.Bullets.Enemy.Speed = 0 }, "bullets.enemy.speed"},
		{"negative volley", func(c *InvadersConfig) { c.Fire.VolleySize = -2 }, "fire.volley_size"},
	}

	if err := DefaultInvadersConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %s", err, tc.field)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := MarshalInvaders(DefaultInvadersConfig())
	if err != nil {
		t.Fatalf("MarshalInvaders() failed: %v", err)
	}
	if !strings.Contains(string(data), "offset_max: 100") {
		t.Errorf("marshaled YAML should use yaml tags, got:\n%s", data)
	}
	cfg, err := ParseInvaders(data)
	if err != nil {
		t.Fatalf("marshaled YAML should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultInvadersConfig()) {
		t.Error("marshal/parse should preserve the config")
	}
}

func TestTickDelta(t *testing.T) {
	tests := []struct {
		name  string
		scene SceneConfig
		want  float64
	}{
		{"defaults", DefaultInvadersConfig().Scene, 1.0 / 60.0},
		{"unset", SceneConfig{}, 1.0 / 60.0},
		{"slow host keeps step", SceneConfig{TickRate: 10, Dt: DefaultTickDelta}, 1.0 / 60.0},
		{"fast host keeps step", SceneConfig{TickRate: 144}, 1.0 / 60.0},
		{"explicit step", SceneConfig{TickRate: 60, Dt: 0.01}, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scene.TickDelta(); got != tt.want {
				t.Errorf("TickDelta() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestParseDtIndependentOfTickRate(t *testing.T) {
	cfg, err := ParseInvaders([]byte("scene:\n  tick_rate: 10\n"))
	if err != nil {
		t.Fatalf("ParseInvaders: %v", err)
	}
	if cfg.Scene.TickRate != 10 {
		t.Errorf("TickRate = %d, expected 10", cfg.Scene.TickRate)
	}
	if got := cfg.Scene.TickDelta(); got != 1.0/60.0 {
		t.Errorf("TickDelta() = %v, expected 1/60", got)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}
