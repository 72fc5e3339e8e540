package game

import (
	"time"

	"picodino/internal/config"
	"picodino/internal/core"
)

// Renderer draws game screens. The controller calls StartScreen and
// Playfield once per transition and Frame every playing tick, so
// implementations may keep last-drawn bookkeeping between Frame calls
// and reset it in the transition methods.
type Renderer interface {
	// StartScreen draws the title screen with the current high score.
	StartScreen(highScore int)
	// Playfield draws the static scene a new game starts on.
	Playfield()
	// Frame draws one playing tick.
	Frame(st *State)
	// GameOver draws the end-of-game overlay on top of the last frame.
	GameOver(st *State)
}

// Controller owns the screen state machine: start screen, playing,
// game over. It polls the button, runs the simulation while playing
// and drives the renderer and buzzer. One Tick is one loop iteration
// on the firmware and one timer tick on the terminal front end.
type Controller struct {
	cfg      config.Config
	sim      *Simulation
	st       *State
	renderer Renderer
	sound    SoundPlayer
	button   core.Button
	clock    core.Clock

	// Input is ignored until this instant after a screen transition,
	// the polled equivalent of the firmware's fixed post-press delay.
	debounceUntil time.Time
	prevPressed   bool
}

// NewController wires a controller from its collaborators. A nil
// sound player falls back to the silent one.
func NewController(cfg config.Config, seed int64, r Renderer, sp SoundPlayer, btn core.Button, clock core.Clock) *Controller {
	if sp == nil {
		sp = NopSound{}
	}
	return &Controller{
		cfg:      cfg,
		sim:      NewSimulation(cfg, clock, seed),
		st:       NewState(cfg),
		renderer: r,
		sound:    sp,
		button:   btn,
		clock:    clock,
	}
}

// State exposes the game state for front ends and tests. Callers must
// treat it as read-only.
func (c *Controller) State() *State { return c.st }

// Init draws the boot screen. Call once before the first Tick.
func (c *Controller) Init() {
	c.renderer.StartScreen(c.st.HighScore)
}

// Tick runs one loop iteration: poll input, advance the state machine
// and draw.
func (c *Controller) Tick() {
	pressed := c.button.Pressed()
	edge := pressed && !c.prevPressed
	c.prevPressed = pressed
	now := c.clock.Now()

	switch c.st.Mode() {
	case ModeStart:
		if edge && !now.Before(c.debounceUntil) {
			c.sim.Reset(c.st)
			c.renderer.Playfield()
			c.sound.Play(SoundStart)
			c.debounceUntil = now.Add(c.cfg.Debounce())
		}

	case ModePlaying:
		res := c.sim.Step(c.st, pressed)
		if res.Jumped {
			c.sound.Play(SoundJump)
		}
		if res.Milestone {
			c.sound.Play(SoundMilestone)
		}
		if res.Collided {
			c.renderer.Frame(c.st)
			c.renderer.GameOver(c.st)
			c.sound.Play(SoundGameOver)
			c.debounceUntil = now.Add(c.cfg.Debounce())
		} else {
			c.renderer.Frame(c.st)
		}

	case ModeGameOver:
		if edge && !now.Before(c.debounceUntil) {
			c.st.Started = false
			c.st.Over = false
			c.renderer.StartScreen(c.st.HighScore)
			c.debounceUntil = now.Add(c.cfg.Debounce())
		}
	}
}
