package render

import (
	"picodino/internal/config"
	"picodino/internal/core"
	"picodino/internal/display"
	"picodino/internal/game"
)

// Dirty redraws only what moved since the last frame. It keeps its
// own last-drawn snapshots and never mutates gameplay state: after
// the simulation steps, each entity whose position or visibility
// differs from its snapshot gets its previous box erased and its
// current shape redrawn.
//
// Erasing splits at the ground boundary: the part of the box above
// the ground band is refilled with the background color, the part
// inside it with the ground color. Erasing runs for every dirty
// entity before any drawing, so a moving cactus cannot leave a hole
// in a stationary dino.
type Dirty struct {
	dev display.Device
	cfg config.Config

	dino     core.Rect
	obs      []obsShadow
	obsDirty []bool
	clouds   []core.Rect
	score    int
	lastHigh int
}

// obsShadow is the last-drawn record for one pool slot.
type obsShadow struct {
	rect   core.Rect
	active bool
}

// NewDirty creates a dirty rectangle renderer for the device.
func NewDirty(dev display.Device, cfg config.Config) *Dirty {
	slots := 0
	if cfg.Clouds.Enabled {
		slots = cfg.Clouds.Slots
	}
	return &Dirty{
		dev:      dev,
		cfg:      cfg,
		obs:      make([]obsShadow, cfg.Obstacles.PoolSize),
		obsDirty: make([]bool, cfg.Obstacles.PoolSize),
		clouds:   make([]core.Rect, slots),
	}
}

func (r *Dirty) StartScreen(highScore int) {
	r.lastHigh = highScore
	drawStartScreen(r.dev, r.cfg, highScore)
}

// Playfield draws the initial scene and resets every snapshot to what
// is now on the panel.
func (r *Dirty) Playfield() {
	drawPlayfield(r.dev, r.cfg, r.lastHigh)

	r.dino = core.NewRect(r.cfg.Dino.X, r.cfg.GroundY()-r.cfg.Dino.Height,
		r.cfg.Dino.Width, r.cfg.Dino.Height)
	for i := range r.obs {
		r.obs[i] = obsShadow{}
		r.obsDirty[i] = false
	}
	for i := range r.clouds {
		x, y := game.CloudPos(r.cfg, i, 0)
		r.clouds[i] = core.NewRect(x, y, r.cfg.Clouds.Width, r.cfg.Clouds.Height)
	}
	r.score = 0
}

func (r *Dirty) Frame(st *game.State) {
	curDino := st.Dino.Rect(r.cfg)
	dinoDirty := curDino != r.dino

	// Erase phase: clear the previous box of everything that moved or
	// vanished. An obstacle erase that clips the stationary dino
	// marks it dirty so the draw phase repaints it.
	if dinoDirty {
		r.eraseRect(r.dino)
	}
	for i := range st.Obstacles {
		o := &st.Obstacles[i]
		cur := obsShadow{rect: o.Rect(r.cfg), active: o.Active}
		if cur == r.obs[i] {
			continue
		}
		r.obsDirty[i] = true
		if r.obs[i].active {
			r.eraseRect(r.obs[i].rect)
			if !dinoDirty && r.obs[i].rect.Intersects(curDino) {
				dinoDirty = true
			}
		}
	}

	// Draw phase, in the fixed scene order: dino, obstacles, clouds,
	// HUD.
	if dinoDirty {
		drawDino(r.dev, curDino.X, curDino.Y, curDino.W, curDino.H)
		r.dino = curDino
	}
	for i := range st.Obstacles {
		if !r.obsDirty[i] {
			continue
		}
		o := &st.Obstacles[i]
		if o.Active {
			rc := o.Rect(r.cfg)
			drawCactus(r.dev, rc.X, rc.Y, rc.W, rc.H)
		}
		r.obs[i] = obsShadow{rect: o.Rect(r.cfg), active: o.Active}
		r.obsDirty[i] = false
	}

	for i := range r.clouds {
		x, y := game.CloudPos(r.cfg, i, st.Score)
		cur := core.NewRect(x, y, r.cfg.Clouds.Width, r.cfg.Clouds.Height)
		if cur == r.clouds[i] {
			continue
		}
		r.eraseRect(r.clouds[i])
		drawCloud(r.dev, x, y, cur.W, cur.H)
		r.clouds[i] = cur
	}

	if st.Score != r.score {
		rg := scoreRegion(r.cfg)
		r.dev.FillRect(rg.X, rg.Y, rg.W, rg.H, colorBG)
		drawScore(r.dev, r.cfg, st.Score)
		r.score = st.Score
	}
	if st.HighScore != r.lastHigh {
		rg := highScoreRegion(r.cfg)
		r.dev.FillRect(rg.X, rg.Y, rg.W, rg.H, colorBG)
		drawHighScore(r.dev, r.cfg, st.HighScore)
		r.lastHigh = st.HighScore
	}
}

func (r *Dirty) GameOver(st *game.State) {
	drawGameOverOverlay(r.dev, r.cfg, st)
}

// eraseRect restores the background under a previously drawn box,
// splitting it at the ground boundary so the ground band keeps its
// own color.
func (r *Dirty) eraseRect(rc core.Rect) {
	if rc.Empty() {
		return
	}
	gy := r.cfg.GroundY()
	if rc.Y < gy {
		r.dev.FillRect(rc.X, rc.Y, rc.W, core.Min(rc.H, gy-rc.Y), colorBG)
	}
	if rc.Bottom() > gy {
		top := core.Max(rc.Y, gy)
		r.dev.FillRect(rc.X, top, rc.W, rc.Bottom()-top, colorGround)
	}
}
