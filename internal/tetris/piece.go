package tetris

// Point is a board coordinate. Row 0 is the bottom row; rows grow upward.
type Point struct {
	Col, Row int
}

// Direction selects a rotation sense.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Piece is the falling tetromino. It is a value type: moves produce a new
// Piece, and the engine commits one only after the board accepts it.
type Piece struct {
	Kind     Kind
	Rotation int   // 0..3
	Anchor   Point // top-left corner of the 4x4 bounding box
}

// CellsAt returns the absolute cells this piece's kind would occupy at the
// given rotation and anchor. The shape depends only on kind and rotation.
func (p Piece) CellsAt(rotation int, anchor Point) [4]Point {
	var cells [4]Point
	for i, o := range shapes[p.Kind][normalizeRotation(rotation)] {
		cells[i] = Point{Col: anchor.Col + o.dx, Row: anchor.Row - o.dy}
	}
	return cells
}

// Cells returns the cells at the piece's current rotation and anchor.
func (p Piece) Cells() [4]Point {
	return p.CellsAt(p.Rotation, p.Anchor)
}

// Rotate returns the rotation index one turn in the given direction.
// It does not consult the board.
func (p Piece) Rotate(dir Direction) int {
	return normalizeRotation(p.Rotation + int(dir))
}

// Rotated returns a copy turned once in the given direction.
func (p Piece) Rotated(dir Direction) Piece {
	p.Rotation = p.Rotate(dir)
	return p
}

// Moved returns a copy shifted by (dc, dr).
func (p Piece) Moved(dc, dr int) Piece {
	p.Anchor.Col += dc
	p.Anchor.Row += dr
	return p
}

func normalizeRotation(r int) int {
	return ((r % Rotations) + Rotations) % Rotations
}
