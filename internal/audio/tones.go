package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"picodino/internal/game"
)

const (
	chirpAmplitude = 0.3
	chirpAttack    = 2 * time.Millisecond
	chirpRelease   = 8 * time.Millisecond
)

// chirp is a fixed-length square tone with a linear attack and release
// ramp. Square is the closest shape to a piezo buzzer, and the ramps
// keep the speaker from clicking at tone edges.
type chirp struct {
	freq    float64
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

func newChirp(freq float64, d time.Duration) *chirp {
	return &chirp{
		freq:    freq,
		total:   sampleRate.N(d),
		attack:  sampleRate.N(chirpAttack),
		release: sampleRate.N(chirpRelease),
	}
}

func (c *chirp) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= c.total {
		return 0, false
	}
	n := len(samples)
	if left := c.total - c.pos; n > left {
		n = left
	}
	for i := 0; i < n; i++ {
		v := chirpAmplitude
		if c.phase >= 0.5 {
			v = -chirpAmplitude
		}

		vol := 1.0
		if c.attack > 0 && c.pos < c.attack {
			vol = float64(c.pos) / float64(c.attack)
		}
		if left := c.total - c.pos; c.release > 0 && left <= c.release {
			if rv := float64(left) / float64(c.release); rv < vol {
				vol = rv
			}
		}
		v *= vol

		samples[i][0] = v
		samples[i][1] = v

		c.phase += c.freq / float64(sampleRate)
		c.phase -= math.Floor(c.phase)
		c.pos++
	}
	return n, true
}

func (c *chirp) Err() error { return nil }

func gap(d time.Duration) beep.Streamer {
	return beep.Silence(sampleRate.N(d))
}

// chirpFor builds the tone sequence for a cue. Frequencies sit on the
// A/E ladder so consecutive cues sound related rather than random.
func chirpFor(s game.Sound) beep.Streamer {
	switch s {
	case game.SoundStart:
		// Rising octave, A4 to A5.
		return beep.Seq(
			newChirp(440, 60*time.Millisecond),
			newChirp(880, 90*time.Millisecond),
		)
	case game.SoundJump:
		// Single A5 blip.
		return newChirp(880, 40*time.Millisecond)
	case game.SoundMilestone:
		// Double E6 ping.
		return beep.Seq(
			newChirp(1320, 60*time.Millisecond),
			gap(30*time.Millisecond),
			newChirp(1320, 60*time.Millisecond),
		)
	case game.SoundGameOver:
		// Falling E5, A4, A3.
		return beep.Seq(
			newChirp(660, 120*time.Millisecond),
			newChirp(440, 120*time.Millisecond),
			newChirp(220, 120*time.Millisecond),
		)
	}
	return nil
}
