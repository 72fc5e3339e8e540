// Package render draws the dino runner scene. Two strategies share
// one set of sprite routines: a full renderer that repaints the whole
// panel every tick, and a dirty renderer that erases and redraws only
// what moved. Both produce identical pixels for identical state.
package render

import (
	"fmt"

	"picodino/internal/config"
	"picodino/internal/core"
	"picodino/internal/display"
	"picodino/internal/game"
)

// Scene palette.
const (
	colorBG     = display.ColorBlack
	colorGround = display.ColorSand
	colorDino   = display.ColorWhite
	colorCactus = display.ColorGreen
	colorCloud  = display.ColorGray
	colorScore  = display.ColorWhite
	colorHigh   = display.ColorGray
	colorTitle  = display.ColorYellow
	colorOver   = display.ColorRed
	colorSun    = display.ColorYellow
	colorHill   = display.ColorDarkGray
)

// HUD text size and the fixed regions the dirty renderer erases.
const hudSize = 2

func scoreRegion(cfg config.Config) core.Rect {
	w := 5 * 6 * hudSize
	return core.NewRect(cfg.Screen.Width-8-w, 8, w, 7*hudSize)
}

func highScoreRegion(cfg config.Config) core.Rect {
	w := 8 * 6 * hudSize
	return core.NewRect(8, 8, w, 7*hudSize)
}

func formatScore(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 99999 {
		n = 99999
	}
	return fmt.Sprintf("%05d", n)
}

// drawGround paints the flat band at the bottom of the screen.
func drawGround(d display.Device, cfg config.Config) {
	d.FillRect(0, cfg.GroundY(), cfg.Screen.Width, cfg.Screen.GroundHeight, colorGround)
}

// drawDino paints the runner inside its w by h hitbox at x,y. The
// pose is fixed, so a stationary dino never needs repainting.
func drawDino(d display.Device, x, y, w, h int) {
	headH := h / 4
	legH := h / 4
	d.FillRect(x+2*w/5, y, w-2*w/5, headH, colorDino)  // head
	d.FillRect(x, y+headH/2, w/3, headH, colorDino)    // tail
	d.FillRect(x, y+headH, 4*w/5, h-headH-legH, colorDino)
	d.FillRect(x+w/10, y+h-legH, w/4, legH, colorDino) // back leg
	d.FillRect(x+w/2, y+h-legH, w/4, legH, colorDino)  // front leg
	d.DrawPixel(x+3*w/4, y+headH/4, colorBG)           // eye
}

// drawCactus paints a cactus inside its w by h hitbox at x,y.
func drawCactus(d display.Device, x, y, w, h int) {
	trunkW := w / 3
	trunkX := x + (w-trunkW)/2
	armW := (w - trunkW) / 2
	d.FillRect(trunkX, y, trunkW, h, colorCactus)            // trunk
	d.FillRect(x, y+h/3, armW, 3, colorCactus)               // left arm
	d.FillRect(x, y+h/8, 3, h/4, colorCactus)                // left arm tip
	d.FillRect(trunkX+trunkW, y+2*h/5, armW, 3, colorCactus) // right arm
	d.FillRect(x+w-3, y+h/5, 3, h/3, colorCactus)            // right arm tip
}

// drawCloud paints a cloud inside its w by h box at x,y.
func drawCloud(d display.Device, x, y, w, h int) {
	d.FillRect(x+w/8, y+h/2, w-w/4, h-h/2, colorCloud)
	d.FillRect(x+w/4, y, w/4, h/2+1, colorCloud)
	d.FillRect(x+w/2+2, y+h/6, w/4, h/2, colorCloud)
}

// drawScore prints the current score in its fixed HUD region.
func drawScore(d display.Device, cfg config.Config, score int) {
	r := scoreRegion(cfg)
	d.SetTextSize(hudSize)
	d.SetTextColor(colorScore)
	d.SetCursor(r.X, r.Y)
	d.Print(formatScore(score))
}

// drawHighScore prints the high score in its fixed HUD region.
func drawHighScore(d display.Device, cfg config.Config, high int) {
	r := highScoreRegion(cfg)
	d.SetTextSize(hudSize)
	d.SetTextColor(colorHigh)
	d.SetCursor(r.X, r.Y)
	d.Print("HI " + formatScore(high))
}

// centerText prints s horizontally centered at the given y.
func centerText(d display.Device, cfg config.Config, y, size int, c display.Color, s string) {
	d.SetTextSize(size)
	d.SetTextColor(c)
	d.SetCursor((cfg.Screen.Width-d.TextWidth(s))/2, y)
	d.Print(s)
}

// drawStartArt paints the title screen decorations: sun, hills and
// the resting dino.
func drawStartArt(d display.Device, cfg config.Config) {
	gy := cfg.GroundY()
	d.DrawCircle(cfg.Screen.Width-44, 44, 18, colorSun)
	d.DrawTriangle(16, gy, 72, gy-66, 128, gy, colorHill)
	d.DrawTriangle(96, gy, 156, gy-84, 216, gy, colorHill)
	drawDino(d, cfg.Dino.X, gy-cfg.Dino.Height, cfg.Dino.Width, cfg.Dino.Height)
}

// drawStartScreen paints the whole title screen.
func drawStartScreen(d display.Device, cfg config.Config, highScore int) {
	d.FillScreen(colorBG)
	drawGround(d, cfg)
	if cfg.Clouds.Enabled {
		for i := 0; i < cfg.Clouds.Slots; i++ {
			x, y := game.CloudPos(cfg, i, 0)
			drawCloud(d, x, y, cfg.Clouds.Width, cfg.Clouds.Height)
		}
	}
	drawStartArt(d, cfg)
	drawHighScore(d, cfg, highScore)
	centerText(d, cfg, 100, 3, colorTitle, "PICODINO")
	centerText(d, cfg, 140, 1, colorScore, "PRESS TO START")
}

// drawPlayfield paints the static scene a new game starts on: sky,
// ground, clouds at their score-zero drift, the resting dino and a
// zeroed HUD.
func drawPlayfield(d display.Device, cfg config.Config, highScore int) {
	d.FillScreen(colorBG)
	drawGround(d, cfg)
	if cfg.Clouds.Enabled {
		for i := 0; i < cfg.Clouds.Slots; i++ {
			x, y := game.CloudPos(cfg, i, 0)
			drawCloud(d, x, y, cfg.Clouds.Width, cfg.Clouds.Height)
		}
	}
	drawDino(d, cfg.Dino.X, cfg.GroundY()-cfg.Dino.Height, cfg.Dino.Width, cfg.Dino.Height)
	drawScore(d, cfg, 0)
	drawHighScore(d, cfg, highScore)
}

// drawGameOverOverlay paints the end panel on top of the final frame.
func drawGameOverOverlay(d display.Device, cfg config.Config, st *game.State) {
	d.FillRect(30, 70, 180, 100, colorBG)
	d.DrawRect(30, 70, 180, 100, colorScore)
	centerText(d, cfg, 80, 3, colorOver, "GAME OVER")
	centerText(d, cfg, 112, hudSize, colorScore, "SCORE "+formatScore(st.Score))
	centerText(d, cfg, 134, hudSize, colorHigh, "HI "+formatScore(st.HighScore))
	centerText(d, cfg, 155, 1, colorScore, "PRESS TO RESTART")
}
