package tetris

import "fmt"

// Default playfield dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Board is the grid of locked cells. Row 0 is the bottom row.
// Each cell holds the Kind that was locked there, or KindNone.
type Board struct {
	width  int
	height int
	cells  []Kind // row-major, index = row*width + col
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Kind, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether (col, row) lies inside the board.
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}

// IsOccupied reports whether a locked cell exists at (col, row).
// Callers must bounds-check first; an out-of-range query panics.
func (b *Board) IsOccupied(col, row int) bool {
	return b.At(col, row) != KindNone
}

// At returns the tag at (col, row). Panics when out of range.
func (b *Board) At(col, row int) Kind {
	if !b.InBounds(col, row) {
		panic(fmt.Sprintf("tetris: cell (%d, %d) outside %dx%d board", col, row, b.width, b.height))
	}
	return b.cells[row*b.width+col]
}

// Set writes a tag directly. Used to seed boards; gameplay goes through Lock.
func (b *Board) Set(col, row int, k Kind) {
	if !b.InBounds(col, row) {
		panic(fmt.Sprintf("tetris: cell (%d, %d) outside %dx%d board", col, row, b.width, b.height))
	}
	b.cells[row*b.width+col] = k
}

// CanPlace reports whether every cell is in bounds and unoccupied.
func (b *Board) CanPlace(cells []Point) bool {
	for _, c := range cells {
		if !b.InBounds(c.Col, c.Row) || b.IsOccupied(c.Col, c.Row) {
			return false
		}
	}
	return true
}

// Lock writes the cells with the given tag.
// The caller must have checked CanPlace for the same cells.
func (b *Board) Lock(cells []Point, k Kind) {
	for _, c := range cells {
		b.Set(c.Col, c.Row, k)
	}
}

// rowFull reports whether every cell of the row is occupied.
func (b *Board) rowFull(row int) bool {
	for _, k := range b.cells[row*b.width : (row+1)*b.width] {
		if k == KindNone {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row and compacts the rows above them
// downward, filling the top with empty rows. Full rows are collected before
// anything moves, so adjacent and non-contiguous clears are handled in one
// pass. Returns the cleared row indices in ascending order (bottom first).
func (b *Board) ClearFullRows() []int {
	var cleared []int
	for row := 0; row < b.height; row++ {
		if b.rowFull(row) {
			cleared = append(cleared, row)
		}
	}
	if len(cleared) == 0 {
		return nil
	}

	// Compact: walk upward, copying each surviving row to the next free slot.
	write := 0
	next := 0 // index into cleared
	for read := 0; read < b.height; read++ {
		if next < len(cleared) && cleared[next] == read {
			next++
			continue
		}
		if write != read {
			copy(b.rowSlice(write), b.rowSlice(read))
		}
		write++
	}
	for ; write < b.height; write++ {
		clear(b.rowSlice(write))
	}

	return cleared
}

func (b *Board) rowSlice(row int) []Kind {
	return b.cells[row*b.width : (row+1)*b.width]
}

// Rows returns a copy of the grid indexed [row][col], row 0 at the bottom.
func (b *Board) Rows() [][]Kind {
	rows := make([][]Kind, b.height)
	for r := range rows {
		rows[r] = make([]Kind, b.width)
		copy(rows[r], b.rowSlice(r))
	}
	return rows
}

