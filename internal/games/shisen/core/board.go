package core

import (
	"fmt"
	"math"
)

// Board is the playing field: a rectangular grid of cells stored in
// row-major order. The outer one-square ring is always empty; the
// connection search relies on it to route paths around the interior.
type Board struct {
	cols  int // total columns, interior + 2
	rows  int // total rows, interior + 2
	cells []Cell
}

// NewEmpty creates an all-empty board with the given interior size.
// The full grid is (innerCols+2) x (innerRows+2).
//
// At least one interior dimension must be even so tiles can be paired
// up without remainder; violating this, passing a negative dimension,
// or overflowing the grid size panics. A zero-area interior is allowed
// and yields an immediately cleared board.
func NewEmpty(innerCols, innerRows int) *Board {
	if innerCols < 0 || innerRows < 0 {
		panic(fmt.Sprintf("shisen: negative board size %dx%d", innerCols, innerRows))
	}
	if innerCols%2 != 0 && innerRows%2 != 0 {
		panic(fmt.Sprintf("shisen: board %dx%d needs an even dimension", innerCols, innerRows))
	}
	if innerCols > math.MaxInt-2 || innerRows > math.MaxInt-2 {
		panic("shisen: board size overflow")
	}

	cols := innerCols + 2
	rows := innerRows + 2
	if cols > math.MaxInt/rows {
		panic("shisen: board size overflow")
	}

	return &Board{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
}

// Cols returns the total column count, including the border.
func (b *Board) Cols() int {
	return b.cols
}

// Rows returns the total row count, including the border.
func (b *Board) Rows() int {
	return b.rows
}

// InnerCols returns the interior column count.
func (b *Board) InnerCols() int {
	return b.cols - 2
}

// InnerRows returns the interior row count.
func (b *Board) InnerRows() int {
	return b.rows - 2
}

// index converts a square to a flat cell index.
// Addressing a square outside the grid is a caller bug and panics.
func (b *Board) index(sq Square) int {
	if sq.C < 0 || sq.C >= b.cols || sq.R < 0 || sq.R >= b.rows {
		panic(fmt.Sprintf("shisen: square %v outside %dx%d board", sq, b.cols, b.rows))
	}
	return b.cols*sq.R + sq.C
}

// At returns the cell at the given square.
func (b *Board) At(sq Square) Cell {
	return b.cells[b.index(sq)]
}

// Set places a cell at the given square.
func (b *Board) Set(sq Square, c Cell) {
	b.cells[b.index(sq)] = c
}

// Squares returns every square of the full grid, border included,
// in row-major order.
func (b *Board) Squares() []Square {
	sqs := make([]Square, 0, b.cols*b.rows)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			sqs = append(sqs, S(c, r))
		}
	}
	return sqs
}

// SquaresInner returns every interior square (border excluded) in
// row-major order. Algorithms that depend on enumeration order use
// this order throughout, so results are reproducible.
func (b *Board) SquaresInner() []Square {
	sqs := make([]Square, 0, b.InnerCols()*b.InnerRows())
	for r := 1; r < b.rows-1; r++ {
		for c := 1; c < b.cols-1; c++ {
			sqs = append(sqs, S(c, r))
		}
	}
	return sqs
}

// TileSquares returns the squares of all tiles on the board.
func (b *Board) TileSquares() []Square {
	var sqs []Square
	for _, sq := range b.SquaresInner() {
		if b.At(sq).Tile {
			sqs = append(sqs, sq)
		}
	}
	return sqs
}

// TileCells returns the cells of all tiles on the board, in the same
// order as TileSquares.
func (b *Board) TileCells() []Cell {
	var cells []Cell
	for _, sq := range b.SquaresInner() {
		if cell := b.At(sq); cell.Tile {
			cells = append(cells, cell)
		}
	}
	return cells
}

// TileCount returns the number of tiles left on the board.
func (b *Board) TileCount() int {
	n := 0
	for _, cell := range b.cells {
		if cell.Tile {
			n++
		}
	}
	return n
}

// IsEmpty returns true if no tiles remain.
func (b *Board) IsEmpty() bool {
	return b.TileCount() == 0
}

// IsStuck returns true if the board is non-empty and no legal move
// exists. A freshly generated board is never stuck.
func (b *Board) IsStuck() bool {
	if b.IsEmpty() {
		return false
	}
	_, ok := b.FindMove()
	return !ok
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		cols:  b.cols,
		rows:  b.rows,
		cells: cells,
	}
}

// DoMove removes the matched pair connected by mv.
//
// mv must have been computed against the board's current state; no
// re-validation is performed.
func (b *Board) DoMove(mv Move) {
	b.Set(mv.Src(), Empty())
	b.Set(mv.Dst(), Empty())
}
