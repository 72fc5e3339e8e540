package config

import (
	_ "embed"
)

//go:embed defaults/picodino.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default config file. The config
// init command writes it out verbatim.
func DefaultYAML() []byte { return defaultYAML }

// Default returns the canonical configuration. It mirrors the embedded
// YAML and exists as a fallback in case the embed cannot be parsed.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:        240,
			Height:       280,
			GroundHeight: 40,
		},
		Tick: TickConfig{
			Rate:       20,
			DebounceMs: 250,
		},
		Dino: DinoConfig{
			X:      30,
			Width:  20,
			Height: 30,
		},
		Physics: PhysicsConfig{
			JumpStrength: 18,
			Gravity:      2,
		},
		Obstacles: ObstaclesConfig{
			PoolSize:   3,
			Width:      15,
			Height:     25,
			PlantDepth: 4,
			SpawnMinMs: 2000,
			SpawnMaxMs: 4000,
		},
		Score: ScoreConfig{
			IntervalMs:   100,
			SpeedUpEvery: 100,
			BaseSpeed:    4,
			MaxSpeed:     8,
		},
		Clouds: CloudsConfig{
			Enabled: true,
			Slots:   3,
			Width:   30,
			Height:  12,
			BaseY:   36,
			StepY:   22,
		},
		Render: RenderConfig{
			Mode: RenderModeDirty,
		},
		Sound: SoundConfig{
			Enabled: false,
		},
	}
}
