// picodino is a terminal rendition of a one-button pocket LCD dino
// runner: jump the cacti, rack up the score, nothing survives a power
// cycle.
//
// Usage:
//
//	picodino play             - Play in the terminal
//	picodino sim              - Run a headless simulation
//	picodino config show      - Print the effective configuration
//	picodino config init      - Write a starter config file
//	picodino config schema    - Print the configuration JSON schema
//
// Global flags:
//
//	--config <path>   - Custom config YAML
//	--variant <name>  - Build variant preset: default, deluxe, minimal
//	--seed <value>    - RNG seed for reproducible runs
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"picodino/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagVariant string
	flagSeed    int64
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "picodino"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "picodino",
	Short: "One-button dino runner for a 240x280 pocket LCD, playable in your terminal",
	Long: `picodino simulates a tiny handheld dino runner: a 240x280 RGB565
panel, one button, a piezo buzzer and a fixed-rate game loop. The panel
is drawn in your terminal with half-block pixels.

Available commands:
  play     - Play in the terminal
  sim      - Run the game headless and report draw statistics
  config   - Show, write or describe the configuration

Examples:
  picodino play
  picodino play --variant deluxe
  picodino play --renderer full --scale 2
  picodino sim --ticks 5000 --compare
  picodino config show`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", "", "Build variant preset: default, deluxe, minimal")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the effective config: file search order first,
// then the variant preset on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	variant, err := config.ParseVariant(flagVariant)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyVariant(&cfg, variant)

	return cfg, nil
}
