package game

import (
	"math/rand"
	"time"

	"picodino/internal/config"
	"picodino/internal/core"
)

// Simulation advances the game state by one fixed tick at a time. All
// timing is measured against the injected clock and all randomness
// comes from the seeded generator, so a run is reproducible from
// (config, seed, clock samples).
type Simulation struct {
	cfg   config.Config
	clock core.Clock
	rng   *rand.Rand

	// Delay until the next spawn, drawn once per spawned obstacle so
	// the random sequence does not depend on pool pressure.
	nextSpawnIn time.Duration
}

// StepResult reports what one tick did beyond mutating the state.
type StepResult struct {
	Jumped    bool // the dino left the ground this tick
	Milestone bool // score crossed a speed-up boundary
	Collided  bool // game over triggered this tick
}

// NewSimulation creates a simulation with the given clock and seed.
func NewSimulation(cfg config.Config, clock core.Clock, seed int64) *Simulation {
	return &Simulation{
		cfg:   cfg,
		clock: clock,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Reset initializes the state for a new game. The high score carries
// over; everything else starts fresh from the current clock reading.
func (s *Simulation) Reset(st *State) {
	now := s.clock.Now()

	st.Dino = Dino{
		X: s.cfg.Dino.X,
		Y: s.groundLevel(),
	}
	for i := range st.Obstacles {
		st.Obstacles[i] = Obstacle{}
	}
	st.Score = 0
	st.Speed = s.cfg.Score.BaseSpeed
	st.Started = true
	st.Over = false
	st.LastSpawnAt = now
	st.ScoreTickAt = now
	s.nextSpawnIn = s.spawnDelay()
}

// Step advances the game by one tick. jump is the raw button level;
// holding it re-jumps on landing, which is how the original cabinet
// played. Outside the playing mode Step does nothing.
func (s *Simulation) Step(st *State, jump bool) StepResult {
	var res StepResult
	if !st.Started || st.Over {
		return res
	}
	now := s.clock.Now()

	// Input: no mid-air double jump, the Jumping flag is the guard.
	if jump && !st.Dino.Jumping {
		st.Dino.Jumping = true
		st.Dino.Vel = -s.cfg.Physics.JumpStrength
		res.Jumped = true
	}

	// Physics: integer Euler arc, position before velocity. Landing
	// clamps to ground level and zeroes the velocity in the same tick.
	if st.Dino.Jumping {
		st.Dino.Y += st.Dino.Vel
		st.Dino.Vel += s.cfg.Physics.Gravity
		if st.Dino.Y >= s.groundLevel() {
			st.Dino.Y = s.groundLevel()
			st.Dino.Vel = 0
			st.Dino.Jumping = false
		}
	}

	// Obstacle advance. A slot frees once the cactus is fully past
	// the left edge.
	for i := range st.Obstacles {
		o := &st.Obstacles[i]
		if !o.Active {
			continue
		}
		o.X -= st.Speed
		if o.X < -s.cfg.Obstacles.Width {
			o.Active = false
		}
	}

	// Obstacle spawn. When the pool is exhausted the spawn is skipped
	// and retried next tick; the timer only advances on success.
	if now.Sub(st.LastSpawnAt) >= s.nextSpawnIn {
		if i := firstFreeSlot(st.Obstacles); i >= 0 {
			st.Obstacles[i] = Obstacle{
				X:      s.cfg.Screen.Width,
				Y:      s.cfg.GroundY() - s.cfg.Obstacles.Height + s.cfg.Obstacles.PlantDepth,
				Active: true,
			}
			st.LastSpawnAt = now
			s.nextSpawnIn = s.spawnDelay()
		}
	}

	// Collision: first overlapping slot wins and ends the tick.
	dinoRect := st.Dino.Rect(s.cfg)
	for i := range st.Obstacles {
		o := &st.Obstacles[i]
		if o.Active && dinoRect.Intersects(o.Rect(s.cfg)) {
			st.Over = true
			if st.Score > st.HighScore {
				st.HighScore = st.Score
			}
			res.Collided = true
			return res
		}
	}

	// Score: one point per interval of elapsed time, catching up if
	// the clock jumped past several intervals between calls.
	for now.Sub(st.ScoreTickAt) >= s.cfg.ScoreInterval() {
		st.ScoreTickAt = st.ScoreTickAt.Add(s.cfg.ScoreInterval())
		st.Score++
		if st.Score%s.cfg.Score.SpeedUpEvery == 0 {
			res.Milestone = true
			if st.Speed < s.cfg.Score.MaxSpeed {
				st.Speed++
			}
		}
	}
	return res
}

// groundLevel is the dino's resting y, the top of the hitbox when
// standing on the ground band.
func (s *Simulation) groundLevel() int {
	return s.cfg.GroundY() - s.cfg.Dino.Height
}

func (s *Simulation) spawnDelay() time.Duration {
	min, max := s.cfg.SpawnWindow()
	if max <= min {
		return min
	}
	return min + time.Duration(s.rng.Int63n(int64(max-min)+1))
}

func firstFreeSlot(obstacles []Obstacle) int {
	for i := range obstacles {
		if !obstacles[i].Active {
			return i
		}
	}
	return -1
}
