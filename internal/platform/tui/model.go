package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for playing a game.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	store         *storage.Store
	logger        *log.Logger
	config        core.RuntimeConfig
	keys          GameKeyMap
	help          help.Model
	status        core.Status
	screenshotDir string
	quitting      bool
	matchSaved    bool // Whether the current finished game has been stored
}

// NewModel creates a new Bubble Tea model for the given game. store and
// logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	game.Reset(cfg)

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		store:         store,
		logger:        logger,
		config:        cfg,
		keys:          DefaultGameKeyMap(),
		help:          help.New(),
		status:        game.Status(),
		screenshotDir: defaultScreenshotDir(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick", m.game.TickInterval())
	return tickCmd(m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey applies the key's action right away; it takes effect before
// the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.status = m.game.Apply(action)
		m.afterUpdate()
	}
	return m, nil
}

// handleResize rescales the board. The game itself does not depend on the
// terminal size, so play continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.status = m.game.Tick()
	m.afterUpdate()
	return m, tickCmd(m.game.TickInterval())
}

// afterUpdate stores a finished match once and re-arms when a new game starts.
func (m *Model) afterUpdate() {
	if !m.status.GameOver {
		m.matchSaved = false
		return
	}
	if m.matchSaved {
		return
	}
	m.matchSaved = true
	m.logger.Info("match finished",
		"winner", m.status.Winner(),
		"player_won", m.status.PlayerWon(),
		"left", m.status.LeftScore,
		"right", m.status.RightScore,
		"ticks", m.status.Ticks,
	)
	if m.store == nil {
		return
	}
	id, err := m.store.SaveMatch(storage.MatchResult{
		GameID:     m.game.ID(),
		Player:     m.config.Player,
		Seed:       m.config.Seed,
		LeftScore:  m.status.LeftScore,
		RightScore: m.status.RightScore,
		Winner:     m.status.Winner(),
		Ticks:      m.status.Ticks,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save match", "error", err)
		return
	}
	m.logger.Debug("match saved", "id", id)
}

// Status returns the status after the last update.
func (m Model) Status() core.Status {
	return m.status
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".pong", "screenshots")
	}
	return filepath.Join(home, ".pong", "screenshots")
}

// saveScreenshot writes the current screen as plain text and returns the path.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the board with a help line underneath.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
