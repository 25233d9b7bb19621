package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// PowerUpKinds are the names accepted in powerups.kinds.
var PowerUpKinds = []string{"speed-boost", "gravity"}

// LoadPong loads the game configuration.
// Search order: customPath -> ~/.pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Files are decoded over DefaultPongConfig, so a file only needs the keys it changes.
func LoadPong(customPath string) (PongConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return PongConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("pong.yaml"), filepath.Join("configs", "pong.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultPongYAML)
	if err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PongConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PongConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run.
func (c PongConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", ErrInvalid, c.Playfield.Width, c.Playfield.Height)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalid)
	case c.Ball.LaunchVX == 0:
		return fmt.Errorf("%w: ball launch_vx must be non-zero", ErrInvalid)
	case c.Ball.MaxSpeedBonus < 0:
		return fmt.Errorf("%w: max_speed_bonus must not be negative", ErrInvalid)
	case c.Paddles.Width <= 0 || c.Paddles.Height <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalid)
	case 2*c.Paddles.Width+5 > c.Playfield.Height-c.Paddles.Height/2:
		return fmt.Errorf("%w: paddles do not fit in the playfield", ErrInvalid)
	case c.Rebound.MaxAngle <= 0 || c.Rebound.MaxAngle >= 90:
		return fmt.Errorf("%w: max_angle must be in (0, 90), got %v", ErrInvalid, c.Rebound.MaxAngle)
	case c.Rules.EndScore <= 0:
		return fmt.Errorf("%w: end_score must be positive", ErrInvalid)
	case c.Rules.BreakTicks < 1:
		return fmt.Errorf("%w: break_ticks must be at least 1", ErrInvalid)
	case c.Rules.TickMillis <= 0:
		return fmt.Errorf("%w: tick_millis must be positive", ErrInvalid)
	case c.PowerUps.Chance < 0 || c.PowerUps.Chance > 1:
		return fmt.Errorf("%w: powerups chance must be in [0, 1]", ErrInvalid)
	}
	for _, k := range c.PowerUps.Kinds {
		if !slices.Contains(PowerUpKinds, k) {
			return fmt.Errorf("%w: unknown power-up kind %q", ErrInvalid, k)
		}
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "configs", filename)
}
