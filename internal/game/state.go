// Package game implements the dino runner simulation: a fixed-tick
// step over plain entity state, and the screen state machine that
// drives renderer, buzzer and button around it.
package game

import (
	"time"

	"picodino/internal/config"
	"picodino/internal/core"
)

// Mode identifies which screen the game is on.
type Mode int

const (
	ModeStart Mode = iota
	ModePlaying
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Dino is the player. X never changes, the world scrolls past it.
// Y is the top of the hitbox, Vel is vertical velocity with positive
// pointing down.
type Dino struct {
	X       int
	Y       int
	Vel     int
	Jumping bool
	Ducking bool // reserved, physics ignores it
}

// Rect returns the dino's collision rectangle.
func (d Dino) Rect(cfg config.Config) core.Rect {
	return core.NewRect(d.X, d.Y, cfg.Dino.Width, cfg.Dino.Height)
}

// Obstacle is one cactus pool slot. Slots are reused: Active=false
// means free for respawn and invisible to collision and drawing.
type Obstacle struct {
	X      int
	Y      int
	Active bool
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect(cfg config.Config) core.Rect {
	return core.NewRect(o.X, o.Y, cfg.Obstacles.Width, cfg.Obstacles.Height)
}

// State is the whole game in one record. Nothing else holds gameplay
// state; the renderers keep only their own last-drawn bookkeeping.
type State struct {
	Dino      Dino
	Obstacles []Obstacle

	Score     int
	HighScore int
	Speed     int

	Started bool
	Over    bool

	// Timer fields, advanced only at the point of triggering.
	LastSpawnAt time.Time
	ScoreTickAt time.Time
}

// NewState allocates a state record with the obstacle pool sized from
// the config. The pool never grows afterwards.
func NewState(cfg config.Config) *State {
	return &State{
		Dino: Dino{
			X: cfg.Dino.X,
			Y: cfg.GroundY() - cfg.Dino.Height,
		},
		Obstacles: make([]Obstacle, cfg.Obstacles.PoolSize),
	}
}

// Mode derives the current screen from the state booleans.
func (s *State) Mode() Mode {
	switch {
	case s.Over:
		return ModeGameOver
	case s.Started:
		return ModePlaying
	default:
		return ModeStart
	}
}

// ActiveObstacles counts occupied pool slots.
func (s *State) ActiveObstacles() int {
	n := 0
	for i := range s.Obstacles {
		if s.Obstacles[i].Active {
			n++
		}
	}
	return n
}

// CloudPos returns the position of decorative cloud slot i at a given
// score. Clouds are not simulated; their drift derives from the score,
// so they need no state of their own.
func CloudPos(cfg config.Config, i, score int) (x, y int) {
	span := cfg.Screen.Width + 40
	x = (i*80+score/2)%span - 20
	y = cfg.Clouds.BaseY + i*cfg.Clouds.StepY
	return x, y
}
