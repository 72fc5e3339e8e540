package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default diverged from hardcoded default:\nembedded:  %+v\nhardcoded: %+v", cfg, Default())
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := Default()
	if got := cfg.GroundY(); got != 240 {
		t.Errorf("GroundY = %d, want 240", got)
	}
	if got := cfg.TickInterval(); got != 50*time.Millisecond {
		t.Errorf("TickInterval = %v, want 50ms", got)
	}
	if got := cfg.Debounce(); got != 250*time.Millisecond {
		t.Errorf("Debounce = %v, want 250ms", got)
	}
	if got := cfg.ScoreInterval(); got != 100*time.Millisecond {
		t.Errorf("ScoreInterval = %v, want 100ms", got)
	}
	lo, hi := cfg.SpawnWindow()
	if lo != 2*time.Second || hi != 4*time.Second {
		t.Errorf("SpawnWindow = %v..%v, want 2s..4s", lo, hi)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero screen width", func(c *Config) { c.Screen.Width = 0 }},
		{"ground taller than screen", func(c *Config) { c.Screen.GroundHeight = c.Screen.Height }},
		{"zero tick rate", func(c *Config) { c.Tick.Rate = 0 }},
		{"negative debounce", func(c *Config) { c.Tick.DebounceMs = -1 }},
		{"dino off screen", func(c *Config) { c.Dino.X = c.Screen.Width }},
		{"zero jump strength", func(c *Config) { c.Physics.JumpStrength = 0 }},
		{"zero gravity", func(c *Config) { c.Physics.Gravity = 0 }},
		{"zero pool", func(c *Config) { c.Obstacles.PoolSize = 0 }},
		{"plant depth swallows cactus", func(c *Config) { c.Obstacles.PlantDepth = c.Obstacles.Height }},
		{"inverted spawn window", func(c *Config) { c.Obstacles.SpawnMinMs = 5000 }},
		{"zero score interval", func(c *Config) { c.Score.IntervalMs = 0 }},
		{"max speed below base", func(c *Config) { c.Score.MaxSpeed = c.Score.BaseSpeed - 1 }},
		{"clouds enabled without slots", func(c *Config) { c.Clouds.Slots = 0 }},
		{"unknown render mode", func(c *Config) { c.Render.Mode = "fancy" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestApplyVariant(t *testing.T) {
	deluxe := Default()
	ApplyVariant(&deluxe, VariantDeluxe)
	if deluxe.Render.Mode != RenderModeDirty || !deluxe.Sound.Enabled {
		t.Errorf("deluxe variant: render=%q sound=%v", deluxe.Render.Mode, deluxe.Sound.Enabled)
	}
	if deluxe.Obstacles.PoolSize != 2 || deluxe.Physics.JumpStrength != 15 {
		t.Errorf("deluxe tuning not applied: %+v", deluxe.Obstacles)
	}
	if err := deluxe.Validate(); err != nil {
		t.Errorf("deluxe variant invalid: %v", err)
	}

	minimal := Default()
	ApplyVariant(&minimal, VariantMinimal)
	if minimal.Render.Mode != RenderModeFull || minimal.Clouds.Enabled || minimal.Sound.Enabled {
		t.Errorf("minimal variant: render=%q clouds=%v sound=%v", minimal.Render.Mode, minimal.Clouds.Enabled, minimal.Sound.Enabled)
	}
	if err := minimal.Validate(); err != nil {
		t.Errorf("minimal variant invalid: %v", err)
	}

	plain := Default()
	ApplyVariant(&plain, VariantDefault)
	if plain != Default() {
		t.Error("default variant should not modify the config")
	}
}

func TestParseVariant(t *testing.T) {
	for _, name := range []string{"default", "deluxe", "minimal", ""} {
		if _, err := ParseVariant(name); err != nil {
			t.Errorf("ParseVariant(%q) = %v", name, err)
		}
	}
	if _, err := ParseVariant("turbo"); err == nil {
		t.Error("ParseVariant should reject unknown names")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) = %v", path, err)
	}
	if cfg != Default() {
		t.Error("loaded config differs from default")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load should fail for a missing explicit path")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("screen: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("Load should report a parse failure, got %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	data := strings.Replace(string(DefaultYAML()), "rate: 20", "rate: 0", 1)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("Load should reject invalid values, got %v", err)
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("fallback config invalid: %v", err)
	}
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	if err != nil {
		t.Fatalf("Schema() = %v", err)
	}
	for _, key := range []string{"\"screen\"", "\"ground_height\"", "\"spawn_min_ms\"", "picodino configuration"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("schema missing %s", key)
		}
	}
}
