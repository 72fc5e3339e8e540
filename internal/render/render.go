package render

import (
	"picodino/internal/config"
	"picodino/internal/display"
	"picodino/internal/game"
)

var (
	_ game.Renderer = (*Full)(nil)
	_ game.Renderer = (*Dirty)(nil)
)

// New returns the renderer for the configured mode. Unknown modes get
// the dirty renderer; the config validator rejects them upstream.
func New(dev display.Device, cfg config.Config) game.Renderer {
	if cfg.Render.Mode == config.RenderModeFull {
		return NewFull(dev, cfg)
	}
	return NewDirty(dev, cfg)
}
