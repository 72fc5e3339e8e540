package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"picodino/internal/audio"
	"picodino/internal/config"
	"picodino/internal/core"
	"picodino/internal/display"
	"picodino/internal/game"
	"picodino/internal/render"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for the game screen.
type Model struct {
	cfg        config.Config
	controller *game.Controller
	fb         *display.Framebuffer
	button     *core.LatchButton
	buzzer     *audio.Buzzer
	keys       KeyMap
	help       help.Model
	scale      int // fixed downscale, 0 fits the terminal
	fitted     int
	width      int
	height     int
	showStats  bool
	lastDraw   display.Stats
	quitting   bool
}

// NewModel builds the model around a fresh controller. Seed 0 picks a
// time-based seed; a nil buzzer runs the game silent.
func NewModel(cfg config.Config, seed int64, scale int, buzzer *audio.Buzzer, clock core.Clock) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fb := display.NewFramebuffer(cfg.Screen.Width, cfg.Screen.Height)
	btn := &core.LatchButton{}

	// A nil *Buzzer must stay a nil interface so the controller falls
	// back to its no-op player.
	var sp game.SoundPlayer
	if buzzer != nil {
		sp = buzzer
	}

	return Model{
		cfg:        cfg,
		controller: game.NewController(cfg, seed, render.New(fb, cfg), sp, btn, clock),
		fb:         fb,
		button:     btn,
		buzzer:     buzzer,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		scale:      scale,
		fitted:     1,
	}
}

// Init draws the boot screen and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.controller.Init()
	return tickCmd(m.cfg.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.fitted = FitScale(m.cfg.Screen.Width, m.cfg.Screen.Height, msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Mute):
		if m.buzzer != nil {
			m.buzzer.SetMuted(!m.buzzer.Muted())
		}

	case key.Matches(msg, m.keys.Stats):
		m.showStats = !m.showStats

	case key.Matches(msg, m.keys.Button):
		m.button.Press()
	}

	return m, nil
}

// handleTick runs one simulation tick. The latch is released after the
// controller has sampled it, so a key press is visible for exactly one
// tick unless terminal auto-repeat keeps re-latching it.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.fb.ResetStats()
	m.controller.Tick()
	m.lastDraw = m.fb.Stats()
	m.button.Release()

	return m, tickCmd(m.cfg.TickInterval())
}

// View renders the framebuffer plus a one-line status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderFrame(m.fb, m.drawScale()))
	sb.WriteRune('\n')
	sb.WriteString(m.statusLine())
	return sb.String()
}

func (m Model) drawScale() int {
	if m.scale > 0 {
		return m.scale
	}
	return m.fitted
}

func (m Model) statusLine() string {
	if m.showStats {
		st := m.controller.State()
		return statusStyle.Render(fmt.Sprintf(
			"%s renderer | draw %d ops %d px | score %d hi %d",
			m.cfg.Render.Mode, m.lastDraw.Ops, m.lastDraw.Pixels, st.Score, st.HighScore))
	}
	return statusStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.Config, seed int64, scale int, buzzer *audio.Buzzer) error {
	p := tea.NewProgram(
		NewModel(cfg, seed, scale, buzzer, core.SystemClock{}),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
