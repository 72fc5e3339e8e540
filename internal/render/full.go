package render

import (
	"picodino/internal/config"
	"picodino/internal/display"
	"picodino/internal/game"
)

// Full repaints the whole panel every tick. It is the baseline the
// dirty renderer is measured against and the mode the slower shipped
// unit ran in.
type Full struct {
	dev display.Device
	cfg config.Config

	// high score as last handed over by the controller, needed because
	// Playfield draws the HUD before any state is available
	lastHigh int
}

// NewFull creates a full redraw renderer for the device.
func NewFull(dev display.Device, cfg config.Config) *Full {
	return &Full{dev: dev, cfg: cfg}
}

func (r *Full) StartScreen(highScore int) {
	r.lastHigh = highScore
	drawStartScreen(r.dev, r.cfg, highScore)
}

func (r *Full) Playfield() {
	drawPlayfield(r.dev, r.cfg, r.lastHigh)
}

func (r *Full) Frame(st *game.State) {
	d := r.dev
	d.FillScreen(colorBG)
	drawGround(d, r.cfg)
	drawDino(d, st.Dino.X, st.Dino.Y, r.cfg.Dino.Width, r.cfg.Dino.Height)
	for i := range st.Obstacles {
		o := &st.Obstacles[i]
		if o.Active {
			drawCactus(d, o.X, o.Y, r.cfg.Obstacles.Width, r.cfg.Obstacles.Height)
		}
	}
	if r.cfg.Clouds.Enabled {
		for i := 0; i < r.cfg.Clouds.Slots; i++ {
			x, y := game.CloudPos(r.cfg, i, st.Score)
			drawCloud(d, x, y, r.cfg.Clouds.Width, r.cfg.Clouds.Height)
		}
	}
	drawScore(d, r.cfg, st.Score)
	drawHighScore(d, r.cfg, st.HighScore)
	r.lastHigh = st.HighScore
}

func (r *Full) GameOver(st *game.State) {
	drawGameOverOverlay(r.dev, r.cfg, st)
}
