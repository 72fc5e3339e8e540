package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"picodino/internal/audio"
	"picodino/internal/platform/tui"
)

var (
	flagRenderer string
	flagScale    int
	flagFPS      int
	flagMute     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W/Enter - The button: start, jump, restart
  M                - Mute the buzzer
  S                - Toggle draw statistics
  Q/Ctrl+C         - Quit

The panel is downscaled to fit the terminal; use --scale to pin a
fixed factor instead.

Examples:
  picodino play
  picodino play --variant deluxe
  picodino play --renderer full --scale 2
  picodino play --config ./my-dino.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRenderer, "renderer", "", "Renderer override: dirty or full")
	playCmd.Flags().IntVar(&flagScale, "scale", 0, "Downscale factor (0 = fit terminal)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = config value)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Run without sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("play needs an interactive terminal; use 'picodino sim' for headless runs")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagRenderer != "" {
		cfg.Render.Mode = flagRenderer
	}
	if flagFPS > 0 {
		cfg.Tick.Rate = flagFPS
	}
	if flagMute {
		cfg.Sound.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && (w < 40 || h < 12) {
		logger.Warn("terminal is very small, the panel will be heavily downscaled",
			"cols", w, "rows", h)
	}

	var buzzer *audio.Buzzer
	if cfg.Sound.Enabled {
		buzzer = audio.NewBuzzer()
		if initErr := buzzer.Init(); initErr != nil {
			logger.Warn("audio unavailable, running silent", "error", initErr)
			buzzer = nil
		}
	}

	runErr := tui.Run(cfg, flagSeed, flagScale, buzzer)

	if buzzer != nil {
		buzzer.Close()
	}
	return runErr
}
