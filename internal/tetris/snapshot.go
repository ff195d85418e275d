package tetris

// Snapshot is a read-only copy of the session used by renderers and tests.
// Cells is indexed [row][col] with row 0 at the bottom.
type Snapshot struct {
	Width      int
	Height     int
	Cells      [][]Kind
	Active     []Point // empty once the game is over
	ActiveKind Kind
	Next       Kind
	Score      int
	Lines      int
	Level      int
	Phase      Phase
	GameOver   bool
	Quit       bool
}

// Snapshot returns a copy of the current state. Mutating it does not
// affect the engine.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Width:    e.board.Width(),
		Height:   e.board.Height(),
		Cells:    e.board.Rows(),
		Next:     e.next,
		Score:    e.score,
		Lines:    e.lines,
		Level:    e.level,
		Phase:    e.phase,
		GameOver: e.GameOver(),
		Quit:     e.quit,
	}
	if p, ok := e.Active(); ok {
		cells := p.Cells()
		s.Active = cells[:]
		s.ActiveKind = p.Kind
	}
	return s
}

// KindAt returns what a renderer should draw at (col, row): the active
// piece wins over the locked grid.
func (s Snapshot) KindAt(col, row int) Kind {
	for _, c := range s.Active {
		if c.Col == col && c.Row == row {
			return s.ActiveKind
		}
	}
	return s.Cells[row][col]
}
