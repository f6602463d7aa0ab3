package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trash-toss/internal/core"
	"github.com/vovakirdan/trash-toss/internal/registry"
	"github.com/vovakirdan/trash-toss/internal/storage"
)

// ScoreSaver records finished runs. *storage.Store implements it.
type ScoreSaver interface {
	SaveScore(gameID string, score, binned int) (int64, error)
}

var _ ScoreSaver = (*storage.Store)(nil)

// viewportSizer is implemented by games that map pointer cells to their
// own world and must follow terminal resizes without restarting.
type viewportSizer interface {
	SetViewport(cols, rows int)
}

// binnedCounter is implemented by games that report binned items per run.
type binnedCounter interface {
	Binned() int
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      ScoreSaver
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame *core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game. A nil store
// disables score history; a nil logger discards log output.
func NewModel(game registry.Game, store ScoreSaver, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	frame := core.NewInputFrame()
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: &frame,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, m.inputFrame) {
		m.saveRun("quit")
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionRestart) {
		m.saveRun("reset")
	}

	return m, nil
}

// handleResize follows the terminal size. The simulation keeps running;
// only the cell mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if vs, ok := m.game.(viewportSizer); ok {
		vs.SetViewport(msg.Width, msg.Height)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(*m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run in the score history. Best effort: the
// game continues regardless.
func (m Model) saveRun(reason string) {
	state := m.game.State()
	if m.store == nil || state.Score <= 0 {
		return
	}

	binned := 0
	if bc, ok := m.game.(binnedCounter); ok {
		binned = bc.Binned()
	}

	if _, err := m.store.SaveScore(m.game.ID(), state.Score, binned); err != nil {
		m.logger.Warn("could not save score", "err", err)
		return
	}
	m.logger.Info("run saved", "reason", reason, "score", state.Score, "binned", binned)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".trashtoss", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store ScoreSaver, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // drag events while a button is held
	)

	_, err := p.Run()
	return err
}
