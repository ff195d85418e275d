package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termtris/internal/audio"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/storage"
)

// Options configures a game session.
type Options struct {
	Runtime core.RuntimeConfig
	Player  string             // name stored with saved scores
	Store   storage.ScoreStore // nil disables persistence
	Sound   audio.Player       // nil means silent
	Logger  *log.Logger        // nil discards logs
}

// saveErrorReporter is implemented by games that can show a persistence
// failure in their game-over view.
type saveErrorReporter interface {
	SetSaveError(msg string)
}

// seedReporter is implemented by games that reseed themselves on restart.
type seedReporter interface {
	Seed() int64
}

// Outcome is the final state of a finished session.
type Outcome struct {
	Score   int
	Lines   int
	Level   int
	Quit    bool
	Saved   bool
	SaveErr error
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	game   core.Game
	screen *core.Screen
	keys   *KeyMapper
	store  storage.ScoreStore
	sound  audio.Player
	log    *log.Logger
	config core.RuntimeConfig
	player string

	gen      int // bumped on restart so stale ticks are dropped
	state    core.GameState
	saved    bool
	saveErr  error
	quitting bool
}

// NewModel creates a model and starts a fresh session of game.
func NewModel(game core.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.Nop{}
	}

	game.Reset(cfg)
	logger.Info("session started", "game", game.ID(), "seed", cfg.Seed,
		"width", cfg.ScreenW, "height", cfg.ScreenH)
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   NewKeyMapper(),
		store:  opts.Store,
		sound:  sound,
		log:    logger,
		config: cfg,
		player: opts.Player,
		state:  game.State(),
	}
}

// Init names the terminal window and starts the gravity timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.gen, m.game.Interval()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey maps a key to one action and applies it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg, m.state.GameOver)
	m.log.Debug("key", "key", msg.String(), "action", action)

	if m.state.GameOver {
		if action == core.ActionRestart {
			res := m.game.Apply(core.ActionRestart)
			m.state = res.State
			m.gen++
			m.saved = false
			m.saveErr = nil
			if r, ok := m.game.(seedReporter); ok {
				m.log.Info("restart", "game", m.game.ID(), "seed", r.Seed())
			} else {
				m.log.Info("restart", "game", m.game.ID())
			}
			return m, tickCmd(m.gen, m.game.Interval())
		}
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionQuit {
		res := m.game.Apply(core.ActionQuit)
		m.state = res.State
		if m.state.Score > 0 {
			m.save()
		}
		m.quitting = true
		return m, tea.Quit
	}

	if action.IsGameplay() {
		m.after(m.game.Apply(action))
	}
	return m, nil
}

// handleResize relays the new size to the game without restarting it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick applies one gravity step and schedules the next.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.state.GameOver {
		return m, nil
	}

	m.after(m.game.Step())
	if m.state.GameOver {
		return m, nil
	}
	return m, tickCmd(m.gen, m.game.Interval())
}

// after records the step outcome, plays its sound and saves the score once
// when the session ends.
func (m *Model) after(res core.StepResult) {
	m.state = res.State
	if effect, ok := audio.ForStep(res); ok {
		m.sound.Play(effect)
	}
	if res.Cleared > 0 {
		m.log.Debug("rows cleared", "rows", res.Cleared, "score", res.State.Score)
	}
	if m.state.GameOver && !m.state.Quit {
		m.log.Info("game over", "score", m.state.Score, "lines", m.state.Lines, "level", m.state.Level)
		m.save()
	}
}

// save writes the current result to the store at most once per session.
func (m *Model) save() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	entry := storage.NewEntry(m.state.Score, m.state.Lines, m.state.Level, m.player)
	if err := m.store.Save(entry); err != nil {
		m.saveErr = err
		m.log.Error("could not save score", "error", err)
		if r, ok := m.game.(saveErrorReporter); ok {
			r.SetSaveError("score not saved")
		}
		return
	}
	m.log.Info("score saved", "id", entry.ID, "score", entry.Score, "player", m.player)
}

// View renders the game.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Outcome reports the session result.
func (m Model) Outcome() Outcome {
	return Outcome{
		Score:   m.state.Score,
		Lines:   m.state.Lines,
		Level:   m.state.Level,
		Quit:    m.state.Quit || m.quitting,
		Saved:   m.saved && m.saveErr == nil,
		SaveErr: m.saveErr,
	}
}

// Run starts the Bubble Tea program with the given game and blocks until
// the player quits.
func Run(game core.Game, opts Options) (Outcome, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Outcome{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Outcome{}, nil
	}
	return m.Outcome(), nil
}
