package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.picodino/config.yaml -> ./picodino.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try working directory
	if data, err := os.ReadFile("picodino.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".picodino", filename)
}

// Variant names one of the shipped hardware builds. The deluxe unit
// had the louder buzzer and the snappier tuning, the minimal unit ran
// the full redraw path on a slower panel.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantDeluxe  Variant = "deluxe"
	VariantMinimal Variant = "minimal"
)

// ParseVariant validates a variant name from the command line.
func ParseVariant(name string) (Variant, error) {
	switch Variant(name) {
	case VariantDefault, VariantDeluxe, VariantMinimal:
		return Variant(name), nil
	case "":
		return VariantDefault, nil
	default:
		return "", fmt.Errorf("unknown variant %q (want default, deluxe or minimal)", name)
	}
}

// ApplyVariant overlays variant-specific tuning on the config.
func ApplyVariant(cfg *Config, variant Variant) {
	switch variant {
	case VariantDeluxe:
		cfg.Render.Mode = RenderModeDirty
		cfg.Obstacles.PoolSize = 2
		cfg.Obstacles.SpawnMinMs = 1500
		cfg.Obstacles.SpawnMaxMs = 3500
		cfg.Physics.JumpStrength = 15
		cfg.Clouds.Enabled = true
		cfg.Sound.Enabled = true
	case VariantMinimal:
		cfg.Render.Mode = RenderModeFull
		cfg.Obstacles.PoolSize = 3
		cfg.Obstacles.SpawnMinMs = 2000
		cfg.Obstacles.SpawnMaxMs = 4000
		cfg.Physics.JumpStrength = 18
		cfg.Clouds.Enabled = false
		cfg.Sound.Enabled = false
	}
}
