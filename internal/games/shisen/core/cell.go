// Package core implements the Shisen-Sho rule engine: the board, the
// two-bend connection search and the solvable-board generator.
// It contains no platform dependencies (especially no Bubble Tea) so the
// rules stay pure and testable.
package core

// Kind identifies one of the tile kinds (the 34 mahjong tiles:
// three suits of nine plus four winds and three dragons).
type Kind int

// KindCount is the number of distinct tile kinds.
const KindCount = 34

// Cell is the content of one board square: either empty or a tile of
// some kind.
type Cell struct {
	Tile bool
	Kind Kind
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// TileCell returns a cell holding a tile of the given kind.
func TileCell(k Kind) Cell {
	return Cell{Tile: true, Kind: k}
}

// IsEmpty returns true if the cell holds no tile.
func (c Cell) IsEmpty() bool {
	return !c.Tile
}

// SameTile returns true if both cells hold tiles of the same kind.
// Two empty cells never match.
func (c Cell) SameTile(other Cell) bool {
	return c.Tile && other.Tile && c.Kind == other.Kind
}
