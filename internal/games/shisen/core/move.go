package core

import "fmt"

// Move is a legal removal of a matched pair: the ordered path of 2 to 4
// squares connecting the two tiles. Consecutive points differ in exactly
// one axis and the path bends at most twice.
//
// A Move is a value computed from a board snapshot; once the board
// mutates it must be recomputed. Callers only read it, typically to draw
// the connecting line.
type Move struct {
	path []Square
}

// newVHV builds a vertical-horizontal-vertical move through row r.
// src and dst must be in different columns.
func newVHV(src, dst Square, r int) Move {
	if src.C == dst.C {
		panic(fmt.Sprintf("shisen: VHV move with equal columns %v %v", src, dst))
	}

	path := make([]Square, 0, 4)
	path = append(path, src)
	if src.R != r {
		path = append(path, S(src.C, r))
	}
	if dst.R != r {
		path = append(path, S(dst.C, r))
	}
	path = append(path, dst)

	return Move{path: path}
}

// newHVH builds a horizontal-vertical-horizontal move through column c.
// src and dst must be in different rows.
func newHVH(src, dst Square, c int) Move {
	if src.R == dst.R {
		panic(fmt.Sprintf("shisen: HVH move with equal rows %v %v", src, dst))
	}

	path := make([]Square, 0, 4)
	path = append(path, src)
	if src.C != c {
		path = append(path, S(c, src.R))
	}
	if dst.C != c {
		path = append(path, S(c, dst.R))
	}
	path = append(path, dst)

	return Move{path: path}
}

// Src returns the first square of the path.
func (m Move) Src() Square {
	return m.path[0]
}

// Dst returns the last square of the path.
func (m Move) Dst() Square {
	return m.path[len(m.path)-1]
}

// Path returns the full connecting path, source and destination
// included. The slice must not be modified.
func (m Move) Path() []Square {
	return m.path
}

// distance is the path length: the Chebyshev distance of each segment,
// summed. Each segment is axis-aligned so this is just its span.
func (m Move) distance() int {
	total := 0
	for i := 1; i < len(m.path); i++ {
		dc := abs(m.path[i].C - m.path[i-1].C)
		dr := abs(m.path[i].R - m.path[i-1].R)
		total += max(dc, dr)
	}
	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
