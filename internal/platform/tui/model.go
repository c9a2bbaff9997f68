package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is what the shell drives. Step advances one tick, Render draws into
// the screen buffer.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

const (
	// footerLines is the number of rows kept for the help line.
	footerLines = 1

	// DefaultEndHold is how long the final frame stays up after game over.
	DefaultEndHold = 2 * time.Second
)

// endMsg ends the program once the final frame has been shown.
type endMsg struct{}

// Model is the Bubble Tea model running a single game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	hold       *HoldTracker
	inputFrame core.InputFrame
	logger     *log.Logger
	now        func() time.Time

	screenshotDir string
	endHold       time.Duration

	lastTick  time.Time
	gameState core.GameState
	ended     bool // Game over, final frame on screen
	quitting  bool
}

// NewModel creates a model for game. A nil logger discards everything.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.HoldWindow <= 0 {
		cfg.HoldWindow = core.DefaultConfig().HoldWindow
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerLines, 0)),
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          h,
		hold:          NewHoldTracker(cfg.HoldWindow),
		inputFrame:    core.NewInputFrame(),
		logger:        logger,
		now:           time.Now,
		screenshotDir: defaultScreenshotDir(),
		endHold:       DefaultEndHold,
		gameState:     game.State(),
	}
}

// defaultScreenshotDir returns ~/.arcade/screenshots, or the working
// directory when home is unknown.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "id", m.game.ID(), "title", m.game.Title(), "fps", m.config.TickRate)
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

	case endMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey records presses; the next tick picks them up.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.logger.Info("quit requested", "score", m.gameState.Score)
		m.hold.Release()
		m.quitting = true
		return m, tea.Quit
	}
	if !m.ended {
		m.hold.Press(action, m.now())
	}
	return m, nil
}

// handleResize resizes the screen buffer. The field is in world units, so
// the game itself is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerLines, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick builds the input frame for this tick and steps the game.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.ended {
		return m, nil
	}

	m.inputFrame.Clear()
	m.hold.Fill(&m.inputFrame, at)
	if !m.lastTick.IsZero() && at.After(m.lastTick) {
		m.inputFrame.Elapsed = at.Sub(m.lastTick)
	}
	m.lastTick = at

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		if ev.Name == "block destroyed" {
			m.logger.Debug(ev.Name, ev.Attrs...)
		} else {
			m.logger.Info(ev.Name, ev.Attrs...)
		}
	}

	if m.gameState.GameOver {
		m.logger.Info("game over", "score", m.gameState.Score, "won", m.gameState.Won)
		m.hold.Release()
		m.ended = true
		return m, tea.Tick(m.endHold, func(time.Time) tea.Msg { return endMsg{} })
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text. Failures are
// logged and otherwise ignored.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the last game state seen by the shell.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display. After game over
// the final frame, with its end message, stays up until the program exits.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the game ends or the
// player quits. It returns the final game state.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return game.State(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
