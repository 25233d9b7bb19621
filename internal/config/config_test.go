package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPongConfig()) {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultPongConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
rules:
  end_score: 3
powerups:
  enabled: false
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Rules.EndScore != 3 {
		t.Errorf("EndScore = %d, expected 3", cfg.Rules.EndScore)
	}
	if cfg.PowerUps.Enabled {
		t.Error("PowerUps.Enabled should be false")
	}
	// Untouched keys keep their defaults
	if cfg.Rules.BreakTicks != 100 || cfg.Ball.Radius != 10 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PongConfig)
	}{
		{"zero width", func(c *PongConfig) { c.Playfield.Width = 0 }},
		{"zero radius", func(c *PongConfig) { c.Ball.Radius = 0 }},
		{"no launch speed", func(c *PongConfig) { c.Ball.LaunchVX = 0 }},
		{"vertical max angle", func(c *PongConfig) { c.Rebound.MaxAngle = 90 }},
		{"no end score", func(c *PongConfig) { c.Rules.EndScore = 0 }},
		{"no break", func(c *PongConfig) { c.Rules.BreakTicks = 0 }},
		{"chance above one", func(c *PongConfig) { c.PowerUps.Chance = 1.5 }},
		{"paddle taller than field", func(c *PongConfig) { c.Paddles.Height = 2000 }},
		{"unknown power-up", func(c *PongConfig) { c.PowerUps.Kinds = []string{"gravity", "multiball"} }},
	}

	if err := DefaultPongConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadPongCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  end_score: 11\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if cfg.Rules.EndScore != 11 {
		t.Errorf("EndScore = %d, expected 11", cfg.Rules.EndScore)
	}
}

func TestLoadPongErrors(t *testing.T) {
	if _, err := LoadPong(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadPong() with a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rebound:\n  max_angle: 120\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadPong(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadPong() = %v, expected ErrInvalid", err)
	}
}

func TestParsePowerUpKinds(t *testing.T) {
	cfg, err := Parse([]byte("powerups:\n  kinds: [gravity]\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.PowerUps.Kinds, []string{"gravity"}) {
		t.Errorf("Kinds = %v, expected [gravity]", cfg.PowerUps.Kinds)
	}

	cfg, err = Parse([]byte("powerups:\n  kinds: []\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(cfg.PowerUps.Kinds) != 0 {
		t.Errorf("Kinds = %v, expected none", cfg.PowerUps.Kinds)
	}
}
