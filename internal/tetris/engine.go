package tetris

// Phase is the engine's position in the piece life cycle.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseRowClearing
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseRowClearing:
		return "row_clearing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Command is a player request. These five are the whole input surface.
type Command int

const (
	CommandLeft Command = iota
	CommandRight
	CommandRotate
	CommandDrop
	CommandQuit
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandRotate:
		return "rotate"
	case CommandDrop:
		return "drop"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Result describes what one command or gravity tick did.
// A rejected move is Result{} with Accepted false: it is not an error.
type Result struct {
	Accepted bool
	Locked   bool  // the active piece was written into the board
	Cleared  []int // rows removed by that lock, bottom first
	Points   int   // score awarded by this step
	Dropped  int   // rows descended by a quick-drop
	GameOver bool  // the session ended during this step
}

// Engine owns the board and the active piece and runs the piece life cycle:
// Spawning -> Falling -> Locking -> RowClearing -> Spawning, ending in
// GameOver when a new piece cannot be placed. It is not safe for concurrent
// use; the shell mutates it from a single loop.
type Engine struct {
	rules  Rules
	rng    Randomizer
	board  *Board
	active Piece
	next   Kind
	phase  Phase

	score int
	lines int
	level int
	quit  bool
}

// NewEngine starts a session: the board is empty and the first piece is
// spawned. Rules are assumed valid (see Rules.Validate).
func NewEngine(rules Rules, rng Randomizer) *Engine {
	return newEngine(rules, rng, NewBoard(rules.Width, rules.Height))
}

// newEngine starts a session on an existing board.
func newEngine(rules Rules, rng Randomizer, board *Board) *Engine {
	e := &Engine{
		rules: rules,
		rng:   rng,
		board: board,
		level: rules.StartLevel,
	}
	e.next = rng.Next()
	e.spawn()
	return e
}

// Apply processes one player command. Illegal moves leave the piece
// untouched and return a Result with Accepted false.
func (e *Engine) Apply(cmd Command) Result {
	if e.phase == PhaseGameOver {
		return Result{}
	}

	switch cmd {
	case CommandLeft:
		return Result{Accepted: e.try(e.active.Moved(-1, 0))}
	case CommandRight:
		return Result{Accepted: e.try(e.active.Moved(1, 0))}
	case CommandRotate:
		return Result{Accepted: e.try(e.active.Rotated(Clockwise))}
	case CommandDrop:
		return e.quickDrop()
	case CommandQuit:
		e.quit = true
		e.phase = PhaseGameOver
		return Result{Accepted: true, GameOver: true}
	default:
		return Result{}
	}
}

// Tick applies one gravity step: the piece moves down a row, or locks if it
// cannot. Does nothing once the session is over.
func (e *Engine) Tick() Result {
	if e.phase == PhaseGameOver {
		return Result{}
	}
	if e.try(e.active.Moved(0, -1)) {
		return Result{Accepted: true}
	}
	res := e.lock()
	res.Accepted = true
	return res
}

// quickDrop steps the piece down until it is blocked, then locks it.
func (e *Engine) quickDrop() Result {
	rows := 0
	for e.try(e.active.Moved(0, -1)) {
		rows++
	}
	bonus := rows * e.rules.DropBonus
	e.score += bonus

	res := e.lock()
	res.Accepted = true
	res.Dropped = rows
	res.Points += bonus
	return res
}

// try commits the candidate if the board accepts its cells.
func (e *Engine) try(candidate Piece) bool {
	cells := candidate.Cells()
	if !e.board.CanPlace(cells[:]) {
		return false
	}
	e.active = candidate
	return true
}

// lock writes the active piece into the board, clears rows, scores them
// and spawns the next piece.
func (e *Engine) lock() Result {
	e.phase = PhaseLocking
	cells := e.active.Cells()
	e.board.Lock(cells[:], e.active.Kind)

	e.phase = PhaseRowClearing
	cleared := e.board.ClearFullRows()
	points := e.rules.Points(len(cleared), e.level)
	e.score += points
	e.lines += len(cleared)
	e.level = e.rules.LevelFor(e.lines)

	ok := e.spawn()
	return Result{
		Locked:   true,
		Cleared:  cleared,
		Points:   points,
		GameOver: !ok,
	}
}

// spawn places the queued kind at the start position. A collision ends the
// session and leaves no active piece.
func (e *Engine) spawn() bool {
	e.phase = PhaseSpawning
	p := Piece{Kind: e.next, Anchor: e.spawnAnchor()}
	e.next = e.rng.Next()

	cells := p.Cells()
	if !e.board.CanPlace(cells[:]) {
		e.active = Piece{}
		e.phase = PhaseGameOver
		return false
	}
	e.active = p
	e.phase = PhaseFalling
	return true
}

func (e *Engine) spawnAnchor() Point {
	return Point{Col: (e.rules.Width - 4) / 2, Row: e.rules.Height - 1}
}

// Phase returns the current phase. Between calls it is Falling or GameOver.
func (e *Engine) Phase() Phase {
	return e.phase
}

// GameOver reports whether the session has ended.
func (e *Engine) GameOver() bool {
	return e.phase == PhaseGameOver
}

// Quit reports whether the session ended by player request.
func (e *Engine) Quit() bool {
	return e.quit
}

// Active returns the falling piece. ok is false once the session is over.
func (e *Engine) Active() (p Piece, ok bool) {
	if e.phase == PhaseGameOver {
		return Piece{}, false
	}
	return e.active, true
}

// Next returns the kind that will spawn after the active piece locks.
func (e *Engine) Next() Kind {
	return e.next
}

// Score returns the current score; after game over it is the final score.
func (e *Engine) Score() int {
	return e.score
}

// Lines returns the number of rows cleared this session.
func (e *Engine) Lines() int {
	return e.lines
}

// Level returns the current level.
func (e *Engine) Level() int {
	return e.level
}

// Rules returns the rules this session runs under.
func (e *Engine) Rules() Rules {
	return e.rules
}
