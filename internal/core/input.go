package core

// Button is the single digital input the game owns. The wiring is
// active-low (a pull-up holds the line high, pressing grounds it);
// implementations hide that inversion and report the logical state.
// The loop polls it, it never delivers events.
type Button interface {
	// Pressed reports whether the button reads as held down right now.
	Pressed() bool
}

// ButtonFunc adapts a plain function to the Button interface.
type ButtonFunc func() bool

// Pressed reports the wrapped function's value.
func (f ButtonFunc) Pressed() bool { return f() }

// LatchButton bridges an event-driven input source (terminal key
// messages) to the polled Button model: a key event latches the line
// low, and the loop releases it after the tick has sampled it. Both
// sides run on the same goroutine, so no locking is needed.
type LatchButton struct {
	held bool
}

// Press latches the button down until the next Release.
func (b *LatchButton) Press() { b.held = true }

// Release clears the latch, typically after each simulation tick.
func (b *LatchButton) Release() { b.held = false }

// Pressed reports the latched state.
func (b *LatchButton) Pressed() bool { return b.held }
