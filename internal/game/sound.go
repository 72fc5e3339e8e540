package game

// Sound names one of the buzzer cues.
type Sound int

const (
	SoundStart Sound = iota
	SoundJump
	SoundMilestone
	SoundGameOver
)

// SoundPlayer receives fire-and-forget cue requests. Implementations
// must return immediately; the tick loop never waits on audio.
type SoundPlayer interface {
	Play(s Sound)
}

// NopSound discards every cue. Used when sound is disabled and in
// tests.
type NopSound struct{}

func (NopSound) Play(Sound) {}
