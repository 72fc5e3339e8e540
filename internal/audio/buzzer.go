// Package audio synthesizes the buzzer chirps the game plays for
// jumps, score milestones, run starts and collisions. Tones are square
// waves shaped by a short envelope, mixed into a single speaker stream
// so rapid cues never cut each other off.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"picodino/internal/game"
)

const (
	sampleRate = beep.SampleRate(48000)
	bufferLen  = 50 * time.Millisecond
)

var _ game.SoundPlayer = (*Buzzer)(nil)

// Buzzer plays game cues through the host sound card. The zero value
// is silent; call Init once to open the speaker. If Init fails the
// buzzer stays silent and every Play is a no-op, so the game runs fine
// on machines without audio.
type Buzzer struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
	muted bool
}

// NewBuzzer creates a silent buzzer. Call Init before playing.
func NewBuzzer() *Buzzer {
	return &Buzzer{mixer: &beep.Mixer{}}
}

// Init opens the audio device and starts streaming the mixer. Calling
// it again after success is a no-op.
func (b *Buzzer) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferLen)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.ready = true
	return nil
}

// Play queues the chirp for the given cue and returns immediately.
func (b *Buzzer) Play(s game.Sound) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ready || b.muted {
		return
	}
	c := chirpFor(s)
	if c == nil {
		return
	}
	speaker.Lock()
	b.mixer.Add(c)
	speaker.Unlock()
}

// SetMuted silences or restores playback. Chirps already mixed keep
// playing; mute only drops new cues.
func (b *Buzzer) SetMuted(m bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = m
}

// Muted reports whether new cues are being dropped.
func (b *Buzzer) Muted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.muted
}

// Close cuts off any playing chirps. The speaker itself stays open;
// beep does not expose a way to close it.
func (b *Buzzer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ready {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.ready = false
}
