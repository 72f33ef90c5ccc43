package core

import "math/rand"

// FindMoveBetween returns a legal move connecting src and dst, if one
// exists. Among multiple candidates the first in enumeration order
// (VHV rows ascending, then HVH columns ascending) is returned.
func (b *Board) FindMoveBetween(src, dst Square) (Move, bool) {
	moves := b.movesBetween(src, dst)
	if len(moves) == 0 {
		return Move{}, false
	}
	return moves[0], true
}

// ShortestMoveBetween returns the legal move connecting src and dst
// with the smallest path distance, if any move exists. Ties go to the
// earlier candidate in enumeration order.
func (b *Board) ShortestMoveBetween(src, dst Square) (Move, bool) {
	moves := b.movesBetween(src, dst)
	if len(moves) == 0 {
		return Move{}, false
	}

	best := moves[0]
	for _, mv := range moves[1:] {
		if mv.distance() < best.distance() {
			best = mv
		}
	}
	return best, true
}

// FindMove scans all pairs of interior squares and returns the first
// legal move found. The scan order is deterministic, so the same board
// always yields the same move.
func (b *Board) FindMove() (Move, bool) {
	sqs := b.SquaresInner()
	for i := 0; i < len(sqs); i++ {
		for j := i + 1; j < len(sqs); j++ {
			if mv, ok := b.FindMoveBetween(sqs[i], sqs[j]); ok {
				return mv, true
			}
		}
	}
	return Move{}, false
}

// RandomMove returns a legal move chosen by scanning all pairs of
// interior squares in a uniformly shuffled order. Used by the board
// generator so the reduction path is not biased toward one corner.
func (b *Board) RandomMove(rng *rand.Rand) (Move, bool) {
	sqs := b.SquaresInner()

	pairs := make([][2]Square, 0, len(sqs)*(len(sqs)-1)/2)
	for i := 0; i < len(sqs); i++ {
		for j := i + 1; j < len(sqs); j++ {
			pairs = append(pairs, [2]Square{sqs[i], sqs[j]})
		}
	}
	rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	for _, p := range pairs {
		if mv, ok := b.FindMoveBetween(p[0], p[1]); ok {
			return mv, true
		}
	}
	return Move{}, false
}

// movesBetween enumerates every legal move connecting src and dst.
func (b *Board) movesBetween(src, dst Square) []Move {
	// A move needs two distinct tiles of the same kind.
	if src == dst || !b.At(src).SameTile(b.At(dst)) {
		return nil
	}

	// A two-bend path is either vertical-horizontal-vertical or
	// horizontal-vertical-horizontal; straight lines are the
	// degenerate case of both.
	moves := b.movesBetweenVHV(src, dst)
	return append(moves, b.movesBetweenHVH(src, dst)...)
}

// movesBetweenVHV enumerates the vertical-horizontal-vertical paths:
// down/up from src to some row r, across to dst's column, then to dst.
func (b *Board) movesBetweenVHV(src, dst Square) []Move {
	if src.C == dst.C {
		return nil
	}

	// Rows reachable from both endpoints along their own columns
	// without crossing a tile. The empty border never blocks, so the
	// range can extend outside the interior.
	srcLo, srcHi := b.rowReach(src)
	dstLo, dstHi := b.rowReach(dst)
	lo := max(srcLo, dstLo)
	hi := min(srcHi, dstHi)

	cLo := min(src.C, dst.C) + 1
	cHi := max(src.C, dst.C) - 1

	var moves []Move
	for r := lo; r <= hi; r++ {
		if b.rowClear(r, cLo, cHi) {
			moves = append(moves, newVHV(src, dst, r))
		}
	}
	return moves
}

// movesBetweenHVH enumerates the horizontal-vertical-horizontal paths,
// the mirror image of movesBetweenVHV.
func (b *Board) movesBetweenHVH(src, dst Square) []Move {
	if src.R == dst.R {
		return nil
	}

	srcLo, srcHi := b.colReach(src)
	dstLo, dstHi := b.colReach(dst)
	lo := max(srcLo, dstLo)
	hi := min(srcHi, dstHi)

	rLo := min(src.R, dst.R) + 1
	rHi := max(src.R, dst.R) - 1

	var moves []Move
	for c := lo; c <= hi; c++ {
		if b.colClear(c, rLo, rHi) {
			moves = append(moves, newHVH(src, dst, c))
		}
	}
	return moves
}

// rowReach returns the inclusive range of rows reachable from sq along
// its own column: the run of empty squares above and below it, bounded
// by the nearest tile in each direction or the grid edge.
func (b *Board) rowReach(sq Square) (lo, hi int) {
	lo = 0
	for r := sq.R - 1; r >= 0; r-- {
		if b.At(S(sq.C, r)).Tile {
			lo = r + 1
			break
		}
	}

	hi = b.rows - 1
	for r := sq.R + 1; r < b.rows; r++ {
		if b.At(S(sq.C, r)).Tile {
			hi = r - 1
			break
		}
	}
	return lo, hi
}

// colReach returns the inclusive range of columns reachable from sq
// along its own row.
func (b *Board) colReach(sq Square) (lo, hi int) {
	lo = 0
	for c := sq.C - 1; c >= 0; c-- {
		if b.At(S(c, sq.R)).Tile {
			lo = c + 1
			break
		}
	}

	hi = b.cols - 1
	for c := sq.C + 1; c < b.cols; c++ {
		if b.At(S(c, sq.R)).Tile {
			hi = c - 1
			break
		}
	}
	return lo, hi
}

// rowClear reports whether columns cLo..cHi of row r are all empty.
// An empty range (cLo > cHi, adjacent endpoints) is trivially clear.
func (b *Board) rowClear(r, cLo, cHi int) bool {
	for c := cLo; c <= cHi; c++ {
		if b.At(S(c, r)).Tile {
			return false
		}
	}
	return true
}

// colClear reports whether rows rLo..rHi of column c are all empty.
func (b *Board) colClear(c, rLo, rHi int) bool {
	for r := rLo; r <= rHi; r++ {
		if b.At(S(c, r)).Tile {
			return false
		}
	}
	return true
}
