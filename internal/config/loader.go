package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the config directories.
const ConfigFileName = "invaders.yaml"

// Source names where a loaded configuration came from.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadInvaders loads the invaders configuration and reports its source.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default.
// Files only need to set the keys they override; everything else keeps
// the default value.
func LoadInvaders(customPath string) (InvadersConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return InvadersConfig{}, SourceCustom, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseInvaders(data)
		if err != nil {
			return InvadersConfig{}, SourceCustom, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseInvaders(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFileName)); err == nil {
		if cfg, err := ParseInvaders(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseInvaders(defaultInvadersYAML)
	if err != nil {
		return DefaultInvadersConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// ParseInvaders decodes a YAML document on top of the defaults and validates it.
func ParseInvaders(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvadersConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return InvadersConfig{}, err
	}
	return cfg, nil
}

// MarshalInvaders renders a configuration as YAML.
func MarshalInvaders(cfg InvadersConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

// Validate reports every value the simulation cannot run with.
func (c InvadersConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("scene.width", c.Scene.Width)
	positive("scene.height", c.Scene.Height)
	if c.Scene.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("scene.tick_rate must be positive, got %d", c.Scene.TickRate))
	}
	positive("scene.dt", c.Scene.Dt)

	positive("ship.size", c.Ship.Size)
	positive("ship.step", c.Ship.Step)
	if c.Ship.Margin < 0 || 2*c.Ship.Margin > c.Scene.Width {
		errs = append(errs, fmt.Errorf("ship.margin %v does not fit scene width %v", c.Ship.Margin, c.Scene.Width))
	}

	positive("aliens.size", c.Aliens.Size)
	if c.Aliens.Trim < 0 {
		errs = append(errs, fmt.Errorf("aliens.trim must not be negative, got %d", c.Aliens.Trim))
	}

	positive("rocks.size", c.Rocks.Size)
	if len(c.Rocks.Bands) == 0 {
		errs = append(errs, errors.New("rocks.bands must not be empty"))
	}
	for i, b := range c.Rocks.Bands {
		if b.Step <= 0 {
			errs = append(errs, fmt.Errorf("rocks.bands[%d].step must be positive, got %v", i, b.Step))
		}
		if b.To < b.From {
			errs = append(errs, fmt.Errorf("rocks.bands[%d] is empty: from %v > to %v", i, b.From, b.To))
		}
	}
	if c.Rocks.Trim < 0 || c.Rocks.TrimMin < 0 {
		errs = append(errs, errors.New("rocks.trim and rocks.trim_min must not be negative"))
	}

	positive("formation.step", c.Formation.Step)
	positive("formation.offset_max", c.Formation.OffsetMax)

	positive("bullets.player.speed", c.Bullets.Player.Speed)
	positive("bullets.enemy.speed", c.Bullets.Enemy.Speed)
	positive("bullets.player.width", c.Bullets.Player.Width)
	positive("bullets.player.height", c.Bullets.Player.Height)
	positive("bullets.enemy.width", c.Bullets.Enemy.Width)
	positive("bullets.enemy.height", c.Bullets.Enemy.Height)

	positive("fire.interval", c.Fire.Interval)
	if c.Fire.VolleySize < 0 {
		errs = append(errs, fmt.Errorf("fire.volley_size must not be negative, got %d", c.Fire.VolleySize))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
