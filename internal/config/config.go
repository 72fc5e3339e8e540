// Package config provides YAML-based tuning for the dino runner,
// including the two shipped hardware variants and the file search
// order the firmware used.
package config

import (
	"fmt"
	"time"
)

// Config is the full tuning for one build of the game. All gameplay
// values are integers in pixels or milliseconds.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen" json:"screen"`
	Tick      TickConfig      `yaml:"tick" json:"tick"`
	Dino      DinoConfig      `yaml:"dino" json:"dino"`
	Physics   PhysicsConfig   `yaml:"physics" json:"physics"`
	Obstacles ObstaclesConfig `yaml:"obstacles" json:"obstacles"`
	Score     ScoreConfig     `yaml:"score" json:"score"`
	Clouds    CloudsConfig    `yaml:"clouds" json:"clouds"`
	Render    RenderConfig    `yaml:"render" json:"render"`
	Sound     SoundConfig     `yaml:"sound" json:"sound"`
}

// ScreenConfig defines the panel geometry.
type ScreenConfig struct {
	Width        int `yaml:"width" json:"width"`
	Height       int `yaml:"height" json:"height"`
	GroundHeight int `yaml:"ground_height" json:"ground_height"`
}

// TickConfig defines the simulation cadence and input debounce.
type TickConfig struct {
	Rate       int `yaml:"rate" json:"rate"`
	DebounceMs int `yaml:"debounce_ms" json:"debounce_ms"`
}

// DinoConfig defines the player hitbox. X is fixed, the world scrolls.
type DinoConfig struct {
	X      int `yaml:"x" json:"x"`
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// PhysicsConfig defines the integer jump arc.
type PhysicsConfig struct {
	JumpStrength int `yaml:"jump_strength" json:"jump_strength"`
	Gravity      int `yaml:"gravity" json:"gravity"`
}

// ObstaclesConfig defines cactus geometry and the random spawn window.
// PlantDepth is how far a cactus sits into the ground band.
type ObstaclesConfig struct {
	PoolSize   int `yaml:"pool_size" json:"pool_size"`
	Width      int `yaml:"width" json:"width"`
	Height     int `yaml:"height" json:"height"`
	PlantDepth int `yaml:"plant_depth" json:"plant_depth"`
	SpawnMinMs int `yaml:"spawn_min_ms" json:"spawn_min_ms"`
	SpawnMaxMs int `yaml:"spawn_max_ms" json:"spawn_max_ms"`
}

// ScoreConfig defines scoring cadence and the speed ramp tied to it.
type ScoreConfig struct {
	IntervalMs   int `yaml:"interval_ms" json:"interval_ms"`
	SpeedUpEvery int `yaml:"speed_up_every" json:"speed_up_every"`
	BaseSpeed    int `yaml:"base_speed" json:"base_speed"`
	MaxSpeed     int `yaml:"max_speed" json:"max_speed"`
}

// CloudsConfig defines the decorative cloud layer.
type CloudsConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
	Slots   int  `yaml:"slots" json:"slots"`
	Width   int  `yaml:"width" json:"width"`
	Height  int  `yaml:"height" json:"height"`
	BaseY   int  `yaml:"base_y" json:"base_y"`
	StepY   int  `yaml:"step_y" json:"step_y"`
}

// RenderConfig selects the frame drawing strategy.
type RenderConfig struct {
	Mode string `yaml:"mode" json:"mode"`
}

// SoundConfig toggles the buzzer.
type SoundConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// Render modes accepted in RenderConfig.Mode.
const (
	RenderModeDirty = "dirty"
	RenderModeFull  = "full"
)

// GroundY returns the y coordinate of the top of the ground band.
func (c Config) GroundY() int {
	return c.Screen.Height - c.Screen.GroundHeight
}

// TickInterval returns the wall-clock duration of one simulation tick.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Tick.Rate)
}

// Debounce returns how long button input stays ignored after a screen
// transition.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.Tick.DebounceMs) * time.Millisecond
}

// ScoreInterval returns the wall-clock duration of one score point.
func (c Config) ScoreInterval() time.Duration {
	return time.Duration(c.Score.IntervalMs) * time.Millisecond
}

// SpawnWindow returns the random delay range between obstacle spawns.
func (c Config) SpawnWindow() (min, max time.Duration) {
	return time.Duration(c.Obstacles.SpawnMinMs) * time.Millisecond,
		time.Duration(c.Obstacles.SpawnMaxMs) * time.Millisecond
}

// Validate checks the config for values the game cannot run with.
func (c Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen: dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.GroundHeight <= 0 || c.Screen.GroundHeight >= c.Screen.Height {
		return fmt.Errorf("screen: ground_height %d must be between 1 and %d", c.Screen.GroundHeight, c.Screen.Height-1)
	}
	if c.Tick.Rate <= 0 {
		return fmt.Errorf("tick: rate must be positive, got %d", c.Tick.Rate)
	}
	if c.Tick.DebounceMs < 0 {
		return fmt.Errorf("tick: debounce_ms must not be negative, got %d", c.Tick.DebounceMs)
	}
	if c.Dino.Width <= 0 || c.Dino.Height <= 0 {
		return fmt.Errorf("dino: hitbox must be positive, got %dx%d", c.Dino.Width, c.Dino.Height)
	}
	if c.Dino.X < 0 || c.Dino.X+c.Dino.Width > c.Screen.Width {
		return fmt.Errorf("dino: x %d puts the hitbox off screen", c.Dino.X)
	}
	if c.Physics.JumpStrength <= 0 {
		return fmt.Errorf("physics: jump_strength must be positive, got %d", c.Physics.JumpStrength)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("physics: gravity must be positive, got %d", c.Physics.Gravity)
	}
	if c.Obstacles.PoolSize <= 0 {
		return fmt.Errorf("obstacles: pool_size must be positive, got %d", c.Obstacles.PoolSize)
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		return fmt.Errorf("obstacles: size must be positive, got %dx%d", c.Obstacles.Width, c.Obstacles.Height)
	}
	if c.Obstacles.PlantDepth < 0 || c.Obstacles.PlantDepth >= c.Obstacles.Height {
		return fmt.Errorf("obstacles: plant_depth %d must be between 0 and %d", c.Obstacles.PlantDepth, c.Obstacles.Height-1)
	}
	if c.Obstacles.PlantDepth > c.Screen.GroundHeight {
		return fmt.Errorf("obstacles: plant_depth %d exceeds ground_height %d", c.Obstacles.PlantDepth, c.Screen.GroundHeight)
	}
	if c.Obstacles.SpawnMinMs <= 0 || c.Obstacles.SpawnMaxMs < c.Obstacles.SpawnMinMs {
		return fmt.Errorf("obstacles: spawn window %d..%d ms is invalid", c.Obstacles.SpawnMinMs, c.Obstacles.SpawnMaxMs)
	}
	if c.Score.IntervalMs <= 0 {
		return fmt.Errorf("score: interval_ms must be positive, got %d", c.Score.IntervalMs)
	}
	if c.Score.SpeedUpEvery <= 0 {
		return fmt.Errorf("score: speed_up_every must be positive, got %d", c.Score.SpeedUpEvery)
	}
	if c.Score.BaseSpeed <= 0 || c.Score.MaxSpeed < c.Score.BaseSpeed {
		return fmt.Errorf("score: speed range %d..%d is invalid", c.Score.BaseSpeed, c.Score.MaxSpeed)
	}
	if c.Clouds.Enabled && c.Clouds.Slots <= 0 {
		return fmt.Errorf("clouds: slots must be positive when enabled, got %d", c.Clouds.Slots)
	}
	if c.Render.Mode != RenderModeDirty && c.Render.Mode != RenderModeFull {
		return fmt.Errorf("render: mode must be %q or %q, got %q", RenderModeDirty, RenderModeFull, c.Render.Mode)
	}
	return nil
}
