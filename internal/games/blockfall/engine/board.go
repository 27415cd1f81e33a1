package engine

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Cell is an absolute board coordinate. Row 0 is the top of the board.
type Cell struct {
	Col, Row int
}

// Add returns the cell translated by an offset.
func (c Cell) Add(o Offset) Cell {
	return Cell{Col: c.Col + o.DX, Row: c.Row + o.DY}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Board holds the settled cells of a game.
// Cells are keyed by row*width+col, so a coordinate can appear only once.
type Board struct {
	width   int
	height  int
	settled *intmap.Map[int, Cell]
}

// NewBoard creates an empty board.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: board size %dx%d must be positive", ErrInvalidConfig, width, height)
	}
	return &Board{
		width:   width,
		height:  height,
		settled: intmap.New[int, Cell](width * height),
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Len returns the number of settled cells.
func (b *Board) Len() int {
	return b.settled.Len()
}

// InBounds reports whether a cell lies inside the grid.
func (b *Board) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < b.width && c.Row >= 0 && c.Row < b.height
}

// Settled reports whether a cell holds a settled block.
func (b *Board) Settled(c Cell) bool {
	if !b.InBounds(c) {
		return false
	}
	_, ok := b.settled.Get(b.key(c))
	return ok
}

// IsOccupied reports whether a piece cell may not move into c.
// Walls and the floor count as occupied; the space above row 0 never does.
func (b *Board) IsOccupied(c Cell) bool {
	if c.Col < 0 || c.Col >= b.width || c.Row >= b.height {
		return true
	}
	if c.Row < 0 {
		return false
	}
	return b.Settled(c)
}

// Fits reports whether none of the cells is occupied.
func (b *Board) Fits(cells []Cell) bool {
	for _, c := range cells {
		if b.IsOccupied(c) {
			return false
		}
	}
	return true
}

// Settle adds cells to the board. All cells are checked first; on error
// the board is left unchanged.
func (b *Board) Settle(cells []Cell) error {
	for i, c := range cells {
		if !b.InBounds(c) {
			return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, c, b.width, b.height)
		}
		if b.Settled(c) {
			return fmt.Errorf("%w: %v", ErrCellOccupied, c)
		}
		for _, prev := range cells[:i] {
			if prev == c {
				return fmt.Errorf("%w: %v given twice", ErrCellOccupied, c)
			}
		}
	}

	for _, c := range cells {
		b.settled.Put(b.key(c), c)
	}
	return nil
}

// Cells returns the settled cells in row-major order.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, b.settled.Len())
	for key := range b.width * b.height {
		if c, ok := b.settled.Get(key); ok {
			cells = append(cells, c)
		}
	}
	return cells
}

// Reset removes every settled cell.
func (b *Board) Reset() {
	b.settled.Clear()
}

func (b *Board) key(c Cell) int {
	return c.Row*b.width + c.Col
}
