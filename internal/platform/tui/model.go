package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
)

// Options tune the frame driver.
type Options struct {
	ReleaseAfter time.Duration // Key-up synthesis timeout, DefaultReleaseAfter if zero
	FixedSeed    bool          // Reuse the configured seed on restart instead of drawing a new one
	Logger       *log.Logger   // Session log, discarded if nil
}

// stateHasher is implemented by games that can hash their session state.
type stateHasher interface {
	StateHash() uint64
}

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     Options
	keys     GameKeyMap
	help     help.Model
	releases *ReleaseTracker
	clock    *frameClock
	now      func() time.Time
	logger   *log.Logger

	pending   core.InputFrame
	gameState core.GameState
	sessionID string
	frames    int
	paused    bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:   cfg,
		opts:     opts,
		keys:     DefaultGameKeyMap(),
		help:     help.New(),
		releases: NewReleaseTracker(opts.ReleaseAfter),
		now:      time.Now,
		pending:  core.NewInputFrame(),
	}
	m.startSession(logger)
	return m
}

// playfieldHeight leaves the bottom row for the help line.
func playfieldHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// startSession resets the game and opens a new session log scope.
func (m *Model) startSession(base *log.Logger) {
	m.sessionID = uuid.NewString()
	m.logger = base.With("session", m.sessionID)
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	if m.clock == nil {
		m.clock = newFrameClock(m.now())
	} else {
		m.clock.Restart(m.now())
	}
	m.frames = 0
	m.paused = false
	m.pending.Clear()
	m.releases.ReleaseAll()

	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("session quit", "score", m.gameState.Score, "frames", m.frames)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart) && m.gameState.GameOver:
		m.restart()
		return m, nil

	case key.Matches(msg, m.keys.Pause) && !m.gameState.GameOver:
		m.togglePause()
		return m, nil
	}

	if m.paused || m.gameState.GameOver {
		return m, nil
	}
	if k := m.keys.GameKey(msg); k != core.KeyNone {
		m.pending.Push(m.releases.Press(k, m.now()))
	}
	return m, nil
}

// togglePause stops or resumes the simulation. Held keys are released on
// pause so nothing keeps acting on resume.
func (m *Model) togglePause() {
	now := m.now()
	if m.paused {
		m.clock.Resume(now)
		m.paused = false
		m.logger.Debug("resumed")
		return
	}
	m.clock.Pause(now)
	m.paused = true
	for _, ev := range m.releases.ReleaseAll() {
		m.pending.Push(ev)
	}
	m.logger.Debug("paused")
}

// restart discards the finished game and starts a fresh instance.
func (m *Model) restart() {
	game, err := registry.Create(m.game.ID())
	if err != nil {
		m.logger.Error("restart failed", "game", m.game.ID(), "error", err)
		return
	}
	if !m.opts.FixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.logger.Info("restarting", "previous_score", m.gameState.Score)
	m.game = game
	m.startSession(m.baseLogger())
}

// baseLogger returns the configured logger without the session scope.
func (m *Model) baseLogger() *log.Logger {
	if m.opts.Logger != nil {
		return m.opts.Logger
	}
	return log.New(io.Discard)
}

// handleResize processes window resize events.
// Games simulate in world units, so a resize only changes the projection.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame. The tick is always re-armed, but a
// paused or finished session does not step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused || m.gameState.GameOver {
		return m, tickCmd(m.config.TickRate)
	}

	for _, ev := range m.releases.Expire(now) {
		m.pending.Push(ev)
	}

	ts, delta := m.clock.Next(now)
	frame := core.Frame{Time: ts, Delta: delta, Input: m.pending.Clone()}
	m.pending.Clear()

	result := m.game.Step(frame)
	m.frames++
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug("event", "type", ev.Type, "x", ev.X, "y", ev.Y, "t", ts)
	}

	if m.gameState.GameOver {
		fields := []any{"score", m.gameState.Score, "frames", m.frames}
		if h, ok := m.game.(stateHasher); ok {
			fields = append(fields, "hash", fmt.Sprintf("%016x", h.StateHash()))
		}
		m.logger.Info("game over", fields...)
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	switch {
	case m.gameState.GameOver:
		view = renderOverlay(m.screen.Width(), m.screen.Height(),
			"GAME OVER",
			fmt.Sprintf("Score: %d", m.gameState.Score),
			dimStyle.Render("r: restart  q: quit"))
	case m.paused:
		view = renderOverlay(m.screen.Width(), m.screen.Height(),
			"PAUSED",
			dimStyle.Render("p: resume  q: quit"))
	}

	return view + "\n" + m.help.View(m.keys)
}

// SessionID returns the id of the running session.
func (m Model) SessionID() string {
	return m.sessionID
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
