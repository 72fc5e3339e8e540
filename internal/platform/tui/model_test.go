package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"picodino/internal/audio"
	"picodino/internal/config"
	"picodino/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newTestModel(t *testing.T, scale int) (Model, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(time.Unix(3000, 0))
	m := NewModel(config.Default(), 7, scale, nil, clock)
	m.controller.Init()
	return m, clock
}

func tick(t *testing.T, m Model, clock *core.ManualClock) Model {
	t.Helper()
	clock.Advance(m.cfg.TickInterval())
	next, cmd := m.Update(TickMsg(clock.Now()))
	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
	return next.(Model)
}

func TestButtonKeyStartsRun(t *testing.T) {
	m, clock := newTestModel(t, 1)

	next, _ := m.Update(keyMsg(" "))
	m = next.(Model)
	if !m.button.Pressed() {
		t.Fatal("button key did not latch the line")
	}

	m = tick(t, m, clock)
	if !m.controller.State().Started {
		t.Fatal("tick with latched button did not start the run")
	}
	if m.button.Pressed() {
		t.Fatal("latch was not released after the tick")
	}
}

func TestAllButtonAliasesLatch(t *testing.T) {
	for _, k := range []string{" ", "up", "w", "enter"} {
		m, _ := newTestModel(t, 1)
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
		if !m.button.Pressed() {
			t.Errorf("key %q did not latch the button", k)
		}
	}
}

func TestQuitKeyStopsProgram(t *testing.T) {
	m, _ := newTestModel(t, 1)

	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)
	if !m.quitting {
		t.Fatal("quit key did not mark the model as quitting")
	}
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit key did not return tea.Quit")
	}
	if m.View() != "" {
		t.Error("quitting view is not empty")
	}
}

func TestMuteKeyTogglesBuzzer(t *testing.T) {
	clock := core.NewManualClock(time.Unix(3000, 0))
	bz := audio.NewBuzzer()
	m := NewModel(config.Default(), 7, 1, bz, clock)

	next, _ := m.Update(keyMsg("m"))
	m = next.(Model)
	if !bz.Muted() {
		t.Fatal("mute key did not mute the buzzer")
	}

	next, _ = m.Update(keyMsg("m"))
	if _, ok := next.(Model); !ok {
		t.Fatal("update returned a foreign model")
	}
	if bz.Muted() {
		t.Fatal("second press did not unmute the buzzer")
	}
}

func TestWindowSizeFitsScale(t *testing.T) {
	m, _ := newTestModel(t, 0)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	if m.drawScale() != 6 {
		t.Errorf("drawScale = %d after 80x24 resize, want 6", m.drawScale())
	}
}

func TestFixedScaleIgnoresResize(t *testing.T) {
	m, _ := newTestModel(t, 3)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	if m.drawScale() != 3 {
		t.Errorf("drawScale = %d with fixed scale, want 3", m.drawScale())
	}
}

func TestStatsKeySwapsStatusLine(t *testing.T) {
	m, clock := newTestModel(t, 4)

	if v := m.View(); !strings.Contains(v, "quit") {
		t.Error("help line missing from default view")
	}

	next, _ := m.Update(keyMsg("s"))
	m = next.(Model)
	m = tick(t, m, clock)

	if v := m.View(); !strings.Contains(v, "ops") {
		t.Error("stats line missing after toggle")
	}
}

func TestTickRecordsDrawCost(t *testing.T) {
	m, clock := newTestModel(t, 4)

	// Start the run so the playfield gets drawn.
	next, _ := m.Update(keyMsg(" "))
	m = next.(Model)
	m = tick(t, m, clock)

	if m.lastDraw.Ops == 0 {
		t.Error("start tick recorded zero draw ops")
	}
}
