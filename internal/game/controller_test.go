package game

import (
	"testing"
	"time"

	"picodino/internal/config"
	"picodino/internal/core"
)

// recordingRenderer notes which screens were drawn, in order.
type recordingRenderer struct {
	calls []string
}

func (r *recordingRenderer) StartScreen(highScore int) { r.calls = append(r.calls, "start") }
func (r *recordingRenderer) Playfield()                { r.calls = append(r.calls, "playfield") }
func (r *recordingRenderer) Frame(st *State)           { r.calls = append(r.calls, "frame") }
func (r *recordingRenderer) GameOver(st *State)        { r.calls = append(r.calls, "gameover") }

func (r *recordingRenderer) last() string {
	if len(r.calls) == 0 {
		return ""
	}
	return r.calls[len(r.calls)-1]
}

// recordingSound notes cue requests.
type recordingSound struct {
	played []Sound
}

func (s *recordingSound) Play(snd Sound) { s.played = append(s.played, snd) }

func newTestController(t *testing.T) (*Controller, *recordingRenderer, *recordingSound, *core.LatchButton, *core.ManualClock) {
	t.Helper()
	cfg := config.Default()
	r := &recordingRenderer{}
	snd := &recordingSound{}
	btn := &core.LatchButton{}
	clock := core.NewManualClock(time.Unix(2000, 0))
	c := NewController(cfg, 5, r, snd, btn, clock)
	return c, r, snd, btn, clock
}

func TestInitDrawsStartScreen(t *testing.T) {
	c, r, _, _, _ := newTestController(t)
	c.Init()
	if r.last() != "start" {
		t.Errorf("Init drew %q, want start screen", r.last())
	}
	if c.State().Mode() != ModeStart {
		t.Errorf("boot mode = %v, want start", c.State().Mode())
	}
}

func TestPressStartsGame(t *testing.T) {
	c, r, snd, btn, _ := newTestController(t)
	c.Init()

	btn.Press()
	c.Tick()

	if c.State().Mode() != ModePlaying {
		t.Fatalf("mode after press = %v, want playing", c.State().Mode())
	}
	if r.last() != "playfield" {
		t.Errorf("transition drew %q, want playfield", r.last())
	}
	if len(snd.played) != 1 || snd.played[0] != SoundStart {
		t.Errorf("sounds on start = %v, want [start]", snd.played)
	}
}

func TestIdleStartScreenDrawsNothing(t *testing.T) {
	c, r, _, _, clock := newTestController(t)
	c.Init()
	drawn := len(r.calls)

	for i := 0; i < 10; i++ {
		clock.Advance(50 * time.Millisecond)
		c.Tick()
	}
	if len(r.calls) != drawn {
		t.Errorf("idle start screen drew %d extra screens", len(r.calls)-drawn)
	}
}

func TestPlayingTicksDrawFrames(t *testing.T) {
	c, r, _, btn, clock := newTestController(t)
	c.Init()
	btn.Press()
	c.Tick()
	btn.Release()

	for i := 0; i < 5; i++ {
		clock.Advance(50 * time.Millisecond)
		c.Tick()
	}
	frames := 0
	for _, call := range r.calls {
		if call == "frame" {
			frames++
		}
	}
	if frames != 5 {
		t.Errorf("drew %d frames over 5 ticks, want 5", frames)
	}
}

func TestHeldButtonJumpsAfterStart(t *testing.T) {
	c, _, snd, btn, clock := newTestController(t)
	c.Init()
	btn.Press()
	c.Tick() // transition tick, no simulation step

	clock.Advance(50 * time.Millisecond)
	c.Tick() // first playing tick, button still held

	if !c.State().Dino.Jumping {
		t.Error("held button did not jump on the first playing tick")
	}
	found := false
	for _, s := range snd.played {
		if s == SoundJump {
			found = true
		}
	}
	if !found {
		t.Errorf("no jump cue in %v", snd.played)
	}
}

func TestCollisionShowsGameOver(t *testing.T) {
	c, r, snd, btn, clock := newTestController(t)
	c.Init()
	btn.Press()
	c.Tick()
	btn.Release()

	// drop a cactus onto the dino so the next tick collides
	st := c.State()
	st.Obstacles[0] = Obstacle{X: st.Dino.X + 4, Y: 219, Active: true}

	clock.Advance(50 * time.Millisecond)
	c.Tick()

	if st.Mode() != ModeGameOver {
		t.Fatalf("mode = %v, want game over", st.Mode())
	}
	n := len(r.calls)
	if n < 2 || r.calls[n-2] != "frame" || r.calls[n-1] != "gameover" {
		t.Errorf("collision tick drew %v, want final frame then overlay", r.calls)
	}
	if snd.played[len(snd.played)-1] != SoundGameOver {
		t.Errorf("sounds = %v, want game over cue last", snd.played)
	}
}

func TestGameOverDebounceThenRestart(t *testing.T) {
	c, r, _, btn, clock := newTestController(t)
	c.Init()
	btn.Press()
	c.Tick()
	btn.Release()

	st := c.State()
	st.Obstacles[0] = Obstacle{X: st.Dino.X + 4, Y: 219, Active: true}
	clock.Advance(50 * time.Millisecond)
	c.Tick()
	if st.Mode() != ModeGameOver {
		t.Fatal("setup did not reach game over")
	}

	// a press inside the debounce window is ignored
	clock.Advance(100 * time.Millisecond)
	btn.Press()
	c.Tick()
	if st.Mode() != ModeGameOver {
		t.Error("debounced press left the game over screen")
	}
	btn.Release()

	// after the window a fresh press returns to the start screen
	clock.Advance(200 * time.Millisecond)
	c.Tick()
	btn.Press()
	c.Tick()
	if st.Mode() != ModeStart {
		t.Fatalf("mode = %v, want start", st.Mode())
	}
	if r.last() != "start" {
		t.Errorf("restart drew %q, want start screen", r.last())
	}
}

func TestHeldButtonDoesNotSkipStartScreen(t *testing.T) {
	c, _, _, btn, clock := newTestController(t)
	c.Init()
	btn.Press()
	c.Tick()
	btn.Release()

	st := c.State()
	st.Obstacles[0] = Obstacle{X: st.Dino.X + 4, Y: 219, Active: true}
	clock.Advance(50 * time.Millisecond)
	c.Tick()

	// hold the button through the debounce window and beyond: the
	// level-held signal is not an edge, so nothing may fire
	btn.Press()
	for i := 0; i < 20; i++ {
		clock.Advance(50 * time.Millisecond)
		c.Tick()
	}
	if st.Mode() != ModeGameOver {
		t.Fatalf("held button advanced the state machine to %v", st.Mode())
	}

	// release and press again: now it is an edge
	btn.Release()
	clock.Advance(50 * time.Millisecond)
	c.Tick()
	btn.Press()
	clock.Advance(50 * time.Millisecond)
	c.Tick()
	if st.Mode() != ModeStart {
		t.Errorf("fresh edge did not restart, mode = %v", st.Mode())
	}
}

func TestHighScoreSurvivesFullCycle(t *testing.T) {
	c, _, _, btn, clock := newTestController(t)
	c.Init()

	// game one: start, accrue some score, die
	btn.Press()
	c.Tick()
	btn.Release()
	st := c.State()
	for i := 0; i < 40; i++ {
		clock.Advance(50 * time.Millisecond)
		c.Tick()
	}
	scoreBeforeDeath := st.Score
	if scoreBeforeDeath == 0 {
		t.Fatal("no score accrued in two seconds")
	}
	st.Obstacles[0] = Obstacle{X: st.Dino.X + 4, Y: 219, Active: true}
	clock.Advance(50 * time.Millisecond)
	c.Tick()
	if st.Mode() != ModeGameOver {
		t.Fatal("game one did not end")
	}
	high := st.HighScore
	if high < scoreBeforeDeath {
		t.Fatalf("high score %d below score %d", high, scoreBeforeDeath)
	}

	// back to start, then game two
	clock.Advance(time.Second)
	btn.Press()
	c.Tick()
	btn.Release()
	clock.Advance(time.Second)
	c.Tick()
	btn.Press()
	c.Tick()

	if st.Mode() != ModePlaying {
		t.Fatalf("game two did not start, mode = %v", st.Mode())
	}
	if st.Score != 0 {
		t.Errorf("game two started with score %d", st.Score)
	}
	if st.HighScore != high {
		t.Errorf("high score changed across restart: %d -> %d", high, st.HighScore)
	}
}

func TestNilSoundPlayerFallsBack(t *testing.T) {
	cfg := config.Default()
	btn := &core.LatchButton{}
	c := NewController(cfg, 1, &recordingRenderer{}, nil, btn, core.NewManualClock(time.Unix(0, 0)))
	c.Init()

	// must not panic when cues fire with no player configured
	btn.Press()
	c.Tick()
	if c.State().Mode() != ModePlaying {
		t.Error("controller with nil sound did not start")
	}
}
