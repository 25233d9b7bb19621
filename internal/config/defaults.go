package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the built-in configuration. It matches the
// embedded defaults/pong.yaml.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Playfield: PongPlayfield{
			Width:  600,
			Height: 600,
		},
		Ball: PongBall{
			Radius:        10,
			StartX:        100,
			StartY:        300,
			LaunchVX:      2,
			LaunchVY:      0,
			MaxSpeedBonus: 4,
		},
		Paddles: PongPaddles{
			Width:       10,
			Height:      50,
			EdgeOffset:  50,
			Step:        10,
			FollowSpeed: 2.5,
		},
		Rebound: PongRebound{
			MaxRotation: 30,
			MaxAngle:    60,
		},
		Rules: PongRules{
			EndScore:   7,
			BreakTicks: 100,
			TickMillis: 10,
		},
		PowerUps: PongPowerUps{
			Enabled:    true,
			Chance:     0.002,
			Radius:     30,
			GravityAcc: 0.03,
			Kinds:      []string{"speed-boost", "gravity"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
