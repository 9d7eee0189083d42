package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/logging"
)

// Phase is the session state.
type Phase int

const (
	PhasePlaying       Phase = iota // waiting for a move
	PhaseSpawning                   // move applied, new tile pending
	PhaseQuitPrompt                 // "QUIT? (y/n)" shown
	PhaseRestartPrompt              // "RESTART? (y/n)" shown
	PhaseGameOver                   // no move left; only restart or quit
)

// prompt reports whether a yes/no question is on screen.
func (p Phase) prompt() bool {
	return p == PhaseQuitPrompt || p == PhaseRestartPrompt
}

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseSpawning:
		return "spawning"
	case PhaseQuitPrompt:
		return "quit_prompt"
	case PhaseRestartPrompt:
		return "restart_prompt"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options configures a game session.
type Options struct {
	Scheme     config.Scheme
	SpawnDelay time.Duration
	ScreenW    int
	ScreenH    int
	Logger     *log.Logger
}

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	game   *engine.Game
	screen *core.Screen
	scheme config.Scheme
	keys   KeyMap
	help   help.Model
	logger *log.Logger
	delay  time.Duration

	phase  Phase
	resume Phase // phase to return to when a prompt is dismissed
	seq    int   // bumped on every move and restart; stale SpawnMsgs are dropped
	moves  int

	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model around an initialized game.
func NewModel(game *engine.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	width, height := opts.ScreenW, opts.ScreenH
	if width <= 0 || height <= 0 {
		def := core.DefaultConfig()
		width, height = def.ScreenW, def.ScreenH
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(width, height-1),
		scheme: opts.Scheme,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		delay:  opts.SpawnDelay,
		width:  width,
		height: height,
	}
	if game.IsOver() {
		m.phase = PhaseGameOver
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case SpawnMsg:
		return m.handleSpawn(msg)
	}

	return m, nil
}

// handleKey processes keyboard input according to the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.phase.prompt() {
		return m.handlePromptKey(msg)
	}

	action, force := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit && (force || m.phase == PhaseGameOver):
		return m.quit()

	case action == core.ActionQuit:
		return m.ask(PhaseQuitPrompt), nil

	case action == core.ActionRestart && m.phase == PhaseGameOver:
		return m.restart()

	case action == core.ActionRestart:
		return m.ask(PhaseRestartPrompt), nil

	case action == core.ActionRedraw:
		return m, tea.ClearScreen

	case action.IsMove() && m.phase == PhasePlaying:
		return m.move(directionFor(action))
	}

	return m, nil
}

// handlePromptKey answers the open prompt. ctrl+c always quits; any key
// other than y dismisses the prompt.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapPromptKey(msg) {
	case core.ActionQuit:
		return m.quit()
	case core.ActionConfirm:
		if m.phase == PhaseRestartPrompt {
			return m.restart()
		}
		return m.quit()
	}
	m.phase = m.resume
	return m, nil
}

// ask opens a prompt over the current phase.
func (m Model) ask(p Phase) Model {
	m.resume = m.phase
	m.phase = p
	return m
}

// move applies a move and schedules the spawn when the grid changed.
func (m Model) move(dir engine.Direction) (tea.Model, tea.Cmd) {
	before := m.game.Score()
	changed, err := m.game.Move(dir)
	if err != nil {
		m.logger.Error("move rejected", "dir", dir, "error", err)
		return m, nil
	}
	if !changed {
		m.logger.Debug("move", "dir", dir, "changed", false)
		return m, nil
	}

	m.moves++
	m.seq++
	m.phase = PhaseSpawning
	m.logger.Info("move", "dir", dir, "gained", m.game.Score()-before, "score", m.game.Score())

	return m, spawnCmd(m.seq, m.delay)
}

// handleSpawn places the pending tile and checks for the end of the game.
func (m Model) handleSpawn(msg SpawnMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.seq {
		return m, nil
	}
	waiting := m.phase == PhaseSpawning || (m.phase.prompt() && m.resume == PhaseSpawning)
	if !waiting {
		return m, nil
	}

	if spawn, ok := m.game.AddRandom(); ok {
		m.logger.Debug("spawn", "x", spawn.X, "y", spawn.Y, "value", engine.TileValue(spawn.Exponent))
	}

	next := PhasePlaying
	if m.game.IsOver() {
		next = PhaseGameOver
		snap := m.game.Snapshot()
		m.logger.Info("game over", "score", snap.Score, "max_tile", snap.MaxTile, "moves", m.moves)
	}

	if m.phase.prompt() {
		m.resume = next
	} else {
		m.phase = next
	}
	return m, nil
}

// restart reinitializes the board and score.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.logger.Info("restart", "score", m.game.Score(), "moves", m.moves)
	m.game.Init()
	m.seq++
	m.moves = 0
	m.phase = PhasePlaying
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.logger.Info("quit", "score", m.game.Score(), "moves", m.moves)
	m.quitting = true
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := boardView{
		snap:   m.game.Snapshot(),
		scheme: m.scheme,
	}
	switch m.phase {
	case PhaseGameOver:
		v.status, v.alert = "GAME OVER", true
	case PhaseQuitPrompt:
		v.status = "QUIT? (y/n)"
	case PhaseRestartPrompt:
		v.status = "RESTART? (y/n)"
	}

	drawFrame(m.screen, v)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Phase returns the current session phase.
func (m Model) Phase() Phase {
	return m.phase
}

// Result summarizes the session when the program exits.
func (m Model) Result() Result {
	snap := m.game.Snapshot()
	return Result{
		Score:    snap.Score,
		MaxTile:  snap.MaxTile,
		Moves:    m.moves,
		GameOver: m.phase == PhaseGameOver || (m.phase.prompt() && m.resume == PhaseGameOver),
	}
}

// directionFor maps a move action to an engine direction.
func directionFor(a core.Action) engine.Direction {
	switch a {
	case core.ActionDown:
		return engine.DirDown
	case core.ActionLeft:
		return engine.DirLeft
	case core.ActionRight:
		return engine.DirRight
	default:
		return engine.DirUp
	}
}
