package core

import "math/rand"

// NewRandom creates a board with a random tile layout that is
// guaranteed to be clearable by some sequence of legal moves.
//
// Every kind appears as often as any other, up to a remainder that is
// spread across randomly chosen kinds; all counts are even so every
// tile has a partner. Size preconditions are those of NewEmpty.
func NewRandom(innerCols, innerRows int, rng *rand.Rand) *Board {
	b := NewEmpty(innerCols, innerRows)

	n := innerCols * innerRows
	q := n / (2 * KindCount)
	r := n % (2 * KindCount)

	// 2q full sets of every kind, then r/2 random kinds twice each.
	// r is even: n is even because one dimension is.
	tiles := make([]Kind, 0, n)
	for i := 0; i < 2*q; i++ {
		for k := Kind(0); k < KindCount; k++ {
			tiles = append(tiles, k)
		}
	}
	kinds := rng.Perm(KindCount)
	for i := 0; i < 2; i++ {
		for _, k := range kinds[:r/2] {
			tiles = append(tiles, Kind(k))
		}
	}

	for i, sq := range b.SquaresInner() {
		b.Set(sq, TileCell(tiles[i]))
	}

	b.ShuffleSolvable(rng)

	return b
}

// ShuffleSolvable shuffles the tiles on the board without moving which
// squares are occupied, such that the result is clearable to empty.
//
// It works by reverse play on a scratch copy: shuffle the remaining
// tiles, commit that arrangement to the real board, then reduce the
// copy with uniformly random legal moves until none remain and repeat.
// Each committed layer was fully reducible when it was the whole
// remaining board, so replaying forward from the assembled result
// always reaches emptiness. The per-layer reduction must run to
// exhaustion; stopping early breaks the guarantee.
func (b *Board) ShuffleSolvable(rng *rand.Rand) {
	work := b.Clone()

	for !work.IsEmpty() {
		work.shuffleTiles(rng)

		for _, sq := range work.TileSquares() {
			b.Set(sq, work.At(sq))
		}

		for {
			mv, ok := work.RandomMove(rng)
			if !ok {
				break
			}
			work.DoMove(mv)
		}
	}
}

// shuffleTiles permutes the tiles over the occupied squares. The result
// is not necessarily solvable.
func (b *Board) shuffleTiles(rng *rand.Rand) {
	cells := b.TileCells()
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	for i, sq := range b.TileSquares() {
		b.Set(sq, cells[i])
	}
}
