// Package config provides YAML-based configuration loading for the game.
package config

// PongConfig contains every tunable constant of the game engine.
type PongConfig struct {
	Playfield PongPlayfield `yaml:"playfield"`
	Ball      PongBall      `yaml:"ball"`
	Paddles   PongPaddles   `yaml:"paddles"`
	Rebound   PongRebound   `yaml:"rebound"`
	Rules     PongRules     `yaml:"rules"`
	PowerUps  PongPowerUps  `yaml:"powerups"`
}

// PongPlayfield is the size of the simulated canvas in pixels.
type PongPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongBall defines the ball's size, spawn point and launch velocity.
type PongBall struct {
	Radius        float64 `yaml:"radius"`
	StartX        float64 `yaml:"start_x"`
	StartY        float64 `yaml:"start_y"` // 0 means the vertical centre
	LaunchVX      float64 `yaml:"launch_vx"`
	LaunchVY      float64 `yaml:"launch_vy"`
	MaxSpeedBonus float64 `yaml:"max_speed_bonus"` // Added to launch speed on a perfect hit
}

// PongPaddles defines paddle geometry and movement speeds.
type PongPaddles struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	EdgeOffset  float64 `yaml:"edge_offset"`  // Distance of paddle centre from the side wall
	Step        float64 `yaml:"step"`         // Pixels per player key press
	FollowSpeed float64 `yaml:"follow_speed"` // Pixels per tick for the built-in opponent
}

// PongRebound limits the angles a paddle hit can produce, in degrees.
type PongRebound struct {
	MaxRotation float64 `yaml:"max_rotation"` // Rotation at the paddle edge
	MaxAngle    float64 `yaml:"max_angle"`    // Steepest angle from horizontal
}

// PongRules defines scoring and timing.
type PongRules struct {
	EndScore   int `yaml:"end_score"`
	BreakTicks int `yaml:"break_ticks"` // Pause after a point
	TickMillis int `yaml:"tick_millis"`
}

// PongPowerUps defines spawn chance and effect strength of power-ups.
type PongPowerUps struct {
	Enabled    bool    `yaml:"enabled"`
	Chance     float64 `yaml:"chance"` // Per-tick spawn probability
	Radius     float64 `yaml:"radius"`
	GravityAcc float64 `yaml:"gravity_acc"`
	// Kinds lists the power-ups that may spawn. An empty list spawns none.
	Kinds []string `yaml:"kinds"`
}
