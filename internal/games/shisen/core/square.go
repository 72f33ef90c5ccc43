package core

import "fmt"

// Square is a board coordinate. C is the column (increases rightward),
// R is the row (increases downward). Both include the one-square empty
// border, so the playable interior starts at (1, 1).
type Square struct {
	C int
	R int
}

// S is a convenience constructor for Square.
func S(c, r int) Square {
	return Square{C: c, R: r}
}

// String returns a string representation of the square.
func (sq Square) String() string {
	return fmt.Sprintf("(%d,%d)", sq.C, sq.R)
}
