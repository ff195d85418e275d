package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
)

// RulesFromConfig converts the YAML config into engine rules.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	points := make([]int, len(cfg.Rules.LineClearPoints))
	copy(points, cfg.Rules.LineClearPoints)
	return Rules{
		Width:           cfg.Board.Width,
		Height:          cfg.Board.Height,
		StartLevel:      cfg.Rules.StartLevel,
		LinesPerLevel:   cfg.Rules.LinesPerLevel,
		LineClearPoints: points,
		DropBonus:       cfg.Rules.DropBonus,
		MinGravity:      time.Duration(cfg.Gravity.MinIntervalMs) * time.Millisecond,
	}
}

// Game adapts the Engine to the core.Game interface the shell drives.
type Game struct {
	cfg    config.TetrisConfig
	rules  Rules
	engine *Engine
	seed   int64

	// Screen dimensions
	screenW int
	screenH int
	scale   int

	tooSmall bool
	saveErr  string // shown in the game-over overlay
}

// New creates a Tetris game from a validated config.
// Reset must be called before the first Apply or Step.
func New(cfg config.TetrisConfig) (*Game, error) {
	rules := RulesFromConfig(cfg)
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if _, err := NewRandomizer(cfg.Pieces.Randomizer, 0); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg, rules: rules, scale: 1}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new session on an empty board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	rng, err := NewRandomizer(g.cfg.Pieces.Randomizer, cfg.Seed)
	if err != nil {
		// New already rejected unknown names.
		panic(fmt.Sprintf("tetris: %v", err))
	}
	g.engine = NewEngine(g.rules, rng)
	g.saveErr = ""
	g.scale = core.Max(cfg.Scale, 1)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Apply maps a platform action to an engine command.
func (g *Game) Apply(a core.Action) core.StepResult {
	var cmd Command
	switch a {
	case core.ActionLeft:
		cmd = CommandLeft
	case core.ActionRight:
		cmd = CommandRight
	case core.ActionRotate:
		cmd = CommandRotate
	case core.ActionDrop:
		cmd = CommandDrop
	case core.ActionQuit:
		cmd = CommandQuit
	case core.ActionRestart:
		if !g.engine.GameOver() {
			return core.StepResult{State: g.State()}
		}
		g.Reset(core.RuntimeConfig{
			ScreenW: g.screenW,
			ScreenH: g.screenH,
			Scale:   g.scale,
			Seed:    g.seed + 1,
		})
		return core.StepResult{State: g.State(), Accepted: true}
	default:
		return core.StepResult{State: g.State()}
	}

	// The board is hidden while the window is too small; only quitting works.
	if g.tooSmall && cmd != CommandQuit {
		return core.StepResult{State: g.State()}
	}
	return g.result(g.engine.Apply(cmd))
}

// Step advances gravity by one row. Gravity is paused while the window is
// too small to show the board.
func (g *Game) Step() core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	return g.result(g.engine.Tick())
}

func (g *Game) result(r Result) core.StepResult {
	return core.StepResult{
		State:    g.State(),
		Accepted: r.Accepted,
		Locked:   r.Locked,
		Cleared:  len(r.Cleared),
		Dropped:  r.Dropped,
	}
}

// Interval returns the gravity delay for the current level.
func (g *Game) Interval() time.Duration {
	return g.rules.GravityInterval(g.engine.Level())
}

// Resize recomputes the layout without touching the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	w, h := g.layoutSize()
	g.tooSmall = width < w || height < h
}

// State returns the session counters for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Lines:    g.engine.Lines(),
		Level:    g.engine.Level(),
		GameOver: g.engine.GameOver(),
		Quit:     g.engine.Quit(),
	}
}

// Seed returns the seed of the current session. A restart uses the
// previous seed plus one.
func (g *Game) Seed() int64 {
	return g.seed
}

// Snapshot returns the engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// SetSaveError records a persistence failure to show in the game-over overlay.
// An empty message clears it.
func (g *Game) SetSaveError(msg string) {
	g.saveErr = msg
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→: Move | ↑: Rotate | ↓: Drop | any other key: Quit"
}
