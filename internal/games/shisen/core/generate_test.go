package core

import (
	"math/rand"
	"testing"
)

// drainGreedy plays the first legal move until none remain and reports
// whether the board emptied.
func drainGreedy(b *Board) bool {
	for {
		mv, ok := b.FindMove()
		if !ok {
			return b.IsEmpty()
		}
		b.DoMove(mv)
	}
}

// drainRandom plays random legal moves until none remain.
func drainRandom(b *Board, rng *rand.Rand) bool {
	for {
		mv, ok := b.RandomMove(rng)
		if !ok {
			return b.IsEmpty()
		}
		b.DoMove(mv)
	}
}

// assertClearable checks that some clearing sequence exists. The
// generator guarantees existence, not that every play order works:
// greedy play can strand mismatched leftovers on big boards. So a
// failed greedy drain falls back to randomized drains before the board
// counts as unclearable.
func assertClearable(t *testing.T, b *Board, seed int64) {
	t.Helper()
	if drainGreedy(b.Clone()) {
		return
	}
	rng := rand.New(rand.NewSource(seed))
	for try := 0; try < 50; try++ {
		if drainRandom(b.Clone(), rng) {
			return
		}
	}
	t.Errorf("seed %d: no clearing sequence found", seed)
}

func TestNewRandomIsClearable(t *testing.T) {
	tests := []struct {
		name string
		cols int
		rows int
	}{
		{"mini", 4, 4},
		{"odd rows", 3, 4},
		{"classic", 8, 7},
		{"large", 18, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(0); seed < 5; seed++ {
				rng := rand.New(rand.NewSource(seed))
				b := NewRandom(tt.cols, tt.rows, rng)

				if got := b.TileCount(); got != tt.cols*tt.rows {
					t.Fatalf("seed %d: TileCount() = %d, want %d", seed, got, tt.cols*tt.rows)
				}
				if b.IsStuck() {
					t.Fatalf("seed %d: fresh board is stuck", seed)
				}
				assertClearable(t, b, seed)
			}
		})
	}
}

func TestNewRandomKindCountsAreEven(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewRandom(8, 7, rng)

	counts := make(map[Kind]int)
	for _, cell := range b.TileCells() {
		counts[cell.Kind]++
	}
	for k, n := range counts {
		if n%2 != 0 {
			t.Errorf("kind %d appears %d times, want even", k, n)
		}
		if k < 0 || k >= KindCount {
			t.Errorf("kind %d outside valid range", k)
		}
	}
}

func TestNewRandomKindSpread(t *testing.T) {
	// 18x8 = 144 tiles = 2 full pair sets of 34 kinds plus 8 extra
	// tiles, so every kind appears four times and four kinds six.
	rng := rand.New(rand.NewSource(2))
	b := NewRandom(18, 8, rng)

	counts := make(map[Kind]int)
	for _, cell := range b.TileCells() {
		counts[cell.Kind]++
	}
	if len(counts) != int(KindCount) {
		t.Errorf("board uses %d kinds, want all %d", len(counts), KindCount)
	}
	for k, n := range counts {
		if n < 4 || n > 6 {
			t.Errorf("kind %d appears %d times, want 4 or 6", k, n)
		}
	}
}

func TestNewRandomDeterministicBySeed(t *testing.T) {
	b1 := NewRandom(8, 7, rand.New(rand.NewSource(42)))
	b2 := NewRandom(8, 7, rand.New(rand.NewSource(42)))
	b3 := NewRandom(8, 7, rand.New(rand.NewSource(43)))

	same := true
	differs := false
	for _, sq := range b1.Squares() {
		if b1.At(sq) != b2.At(sq) {
			same = false
		}
		if b1.At(sq) != b3.At(sq) {
			differs = true
		}
	}
	if !same {
		t.Error("same seed should produce the same board")
	}
	if !differs {
		t.Error("different seeds should produce different boards")
	}
}

func TestShuffleSolvablePreservesOccupancyAndTiles(t *testing.T) {
	// A half-played position: some squares empty, uneven shape.
	rng := rand.New(rand.NewSource(5))
	b := NewRandom(6, 4, rng)
	for i := 0; i < 4; i++ {
		mv, ok := b.FindMove()
		if !ok {
			t.Fatal("fresh board ran out of moves too early")
		}
		b.DoMove(mv)
	}
	before := b.Clone()

	b.ShuffleSolvable(rng)

	for _, sq := range b.Squares() {
		if b.At(sq).Tile != before.At(sq).Tile {
			t.Errorf("occupancy changed at %v", sq)
		}
	}

	wantCounts := make(map[Kind]int)
	for _, cell := range before.TileCells() {
		wantCounts[cell.Kind]++
	}
	gotCounts := make(map[Kind]int)
	for _, cell := range b.TileCells() {
		gotCounts[cell.Kind]++
	}
	for k, n := range wantCounts {
		if gotCounts[k] != n {
			t.Errorf("kind %d count = %d, want %d", k, gotCounts[k], n)
		}
	}

	assertClearable(t, b, 5)
}

func TestShuffleSolvableOnEmptyBoard(t *testing.T) {
	b := NewEmpty(4, 4)
	b.ShuffleSolvable(rand.New(rand.NewSource(0)))

	if !b.IsEmpty() {
		t.Error("shuffling an empty board should leave it empty")
	}
}

func TestNewRandomZeroArea(t *testing.T) {
	b := NewRandom(0, 0, rand.New(rand.NewSource(0)))

	if !b.IsEmpty() {
		t.Error("zero-area board should be empty")
	}
}
