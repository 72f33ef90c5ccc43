package shisen

import (
	"testing"

	platformcore "github.com/taotao54321/shisen-tui/internal/core"
	"github.com/taotao54321/shisen-tui/internal/games/shisen/core"
)

func testConfig(seed int64) platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     seed,
	}
}

// frame builds an input frame with the given actions set.
func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// setBoard swaps in a hand-built board, interior rows described as in
// the engine tests: '.' empty, letters tile kinds.
func setBoard(t *testing.T, g *Game, rows []string) {
	t.Helper()

	b := core.NewEmpty(len(rows[0]), len(rows))
	for r, row := range rows {
		for c, ch := range row {
			if ch != '.' {
				b.Set(core.S(c+1, r+1), core.TileCell(core.Kind(ch-'A')))
			}
		}
	}
	g.board = b
	g.innerCols = b.InnerCols()
	g.innerRows = b.InnerRows()
	g.cursor = core.S(1, 1)
	g.hasSelected = false
	g.calculateLayout()
}

func TestResetDeterministicBySeed(t *testing.T) {
	g1 := New("shisen", "Shisen-Sho", 8, 7)
	g2 := New("shisen", "Shisen-Sho", 8, 7)
	g1.Reset(testConfig(42))
	g2.Reset(testConfig(42))

	s1 := platformcore.NewScreen(80, 24)
	s2 := platformcore.NewScreen(80, 24)
	g1.Render(s1)
	g2.Render(s2)

	if s1.String() != s2.String() {
		t.Error("same seed should produce the same board")
	}
}

func TestBoardSizeOverride(t *testing.T) {
	t.Cleanup(func() { SetBoardSize(0, 0) })

	// Without an override every variant keeps its own size.
	SetBoardSize(0, 0)
	g := New("shisen_mini", "Shisen-Sho Mini", 6, 4)
	if g.innerCols != 6 || g.innerRows != 4 {
		t.Errorf("shisen_mini deals a %dx%d board, want 6x4", g.innerCols, g.innerRows)
	}

	// An explicit override beats the variant's size.
	SetBoardSize(10, 6)
	g = New("shisen_mini", "Shisen-Sho Mini", 6, 4)
	if g.innerCols != 10 || g.innerRows != 6 {
		t.Errorf("override deals a %dx%d board, want 10x6", g.innerCols, g.innerRows)
	}
}

func TestCursorMovementAndClamping(t *testing.T) {
	g := New("shisen_mini", "Shisen-Sho Mini", 6, 4)
	g.Reset(testConfig(1))

	if g.cursor != (core.S(1, 1)) {
		t.Fatalf("cursor starts at %v, want (1,1)", g.cursor)
	}

	g.Step(frame(platformcore.ActionRight))
	g.Step(frame(platformcore.ActionDown))
	if g.cursor != (core.S(2, 2)) {
		t.Errorf("cursor = %v, want (2,2)", g.cursor)
	}

	// Clamped at the interior edges, never onto the border.
	for i := 0; i < 10; i++ {
		g.Step(frame(platformcore.ActionLeft, platformcore.ActionUp))
	}
	if g.cursor != (core.S(1, 1)) {
		t.Errorf("cursor = %v, want clamped to (1,1)", g.cursor)
	}
	for i := 0; i < 30; i++ {
		g.Step(frame(platformcore.ActionRight, platformcore.ActionDown))
	}
	if g.cursor != (core.S(6, 4)) {
		t.Errorf("cursor = %v, want clamped to (6,4)", g.cursor)
	}
}

func TestMatchingPairClearsBoard(t *testing.T) {
	g := New("shisen", "Shisen-Sho", 8, 7)
	g.Reset(testConfig(1))
	setBoard(t, g, []string{"AA"})

	g.Step(frame(platformcore.ActionConfirm))
	if !g.hasSelected || g.selected != (core.S(1, 1)) {
		t.Fatal("first confirm should select the tile under the cursor")
	}

	g.Step(frame(platformcore.ActionRight))
	g.Step(frame(platformcore.ActionConfirm))

	state := g.State()
	if state.Score != 1 {
		t.Errorf("Score = %d, want 1", state.Score)
	}
	if !state.GameOver || !state.Cleared {
		t.Errorf("state = %+v, want game over and cleared", state)
	}
	if g.pathTicks == 0 {
		t.Error("removal should start the path flash")
	}
	if g.hasSelected {
		t.Error("selection should be dropped after the match")
	}
}

func TestMismatchDropsSelection(t *testing.T) {
	g := New("shisen", "Shisen-Sho", 8, 7)
	g.Reset(testConfig(1))
	setBoard(t, g, []string{"AB"})

	g.Step(frame(platformcore.ActionConfirm))
	g.Step(frame(platformcore.ActionRight))
	g.Step(frame(platformcore.ActionConfirm))

	if g.State().Score != 0 {
		t.Error("mismatched pair should not be removed")
	}
	if g.hasSelected {
		t.Error("failed match should drop the selection")
	}
	if g.board.TileCount() != 2 {
		t.Error("tiles should still be on the board")
	}
}

func TestConfirmOnEmptyAndReselect(t *testing.T) {
	g := New("shisen", "Shisen-Sho", 8, 7)
	g.Reset(testConfig(1))
	setBoard(t, g, []string{"A.A."})

	// Confirm on an empty square selects nothing.
	g.Step(frame(platformcore.ActionRight))
	g.Step(frame(platformcore.ActionConfirm))
	if g.hasSelected {
		t.Error("confirming an empty square should not select")
	}

	// Confirming the selected tile again deselects it.
	g.Step(frame(platformcore.ActionLeft))
	g.Step(frame(platformcore.ActionConfirm))
	g.Step(frame(platformcore.ActionConfirm))
	if g.hasSelected {
		t.Error("confirming the selection again should deselect")
	}

	// Explicit cancel does the same.
	g.Step(frame(platformcore.ActionConfirm))
	g.Step(frame(platformcore.ActionCancel))
	if g.hasSelected {
		t.Error("cancel should drop the selection")
	}
}

func TestStuckAfterBadTrade(t *testing.T) {
	g := New("shisen", "Shisen-Sho", 8, 7)
	g.Reset(testConfig(1))
	setBoard(t, g, []string{"AABC"})

	g.Step(frame(platformcore.ActionConfirm))
	g.Step(frame(platformcore.ActionRight))
	g.Step(frame(platformcore.ActionConfirm))

	state := g.State()
	if !state.GameOver {
		t.Error("mismatched leftovers should end the game")
	}
	if state.Cleared {
		t.Error("a stuck board is not cleared")
	}
	if state.Score != 1 {
		t.Errorf("Score = %d, want 1", state.Score)
	}
}

func TestHintHighlightsRemovablePair(t *testing.T) {
	g := New("shisen", "Shisen-Sho", 8, 7)
	g.Reset(testConfig(1))
	setBoard(t, g, []string{"ABBA"})

	g.Step(frame(platformcore.ActionHint))
	if g.hintTicks == 0 {
		t.Fatal("hint should start the hint flash")
	}
	src, dst := g.hint.Src(), g.hint.Dst()
	if !g.board.At(src).SameTile(g.board.At(dst)) {
		t.Error("hint endpoints should be a matching pair")
	}
}

func TestPauseFreezesPlay(t *testing.T) {
	g := New("shisen", "Shisen-Sho", 8, 7)
	g.Reset(testConfig(1))
	setBoard(t, g, []string{"AA"})

	g.Step(frame(platformcore.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause should pause the game")
	}

	before := g.elapsedTicks
	g.Step(frame(platformcore.ActionConfirm))
	g.Step(frame(platformcore.ActionRight))
	if g.hasSelected || g.cursor != (core.S(1, 1)) {
		t.Error("input should be ignored while paused")
	}
	if g.elapsedTicks != before {
		t.Error("clock should not run while paused")
	}

	g.Step(frame(platformcore.ActionPause))
	if g.State().Paused {
		t.Error("pause again should resume")
	}
}

func TestRestartDealsFreshBoard(t *testing.T) {
	g := New("shisen", "Shisen-Sho", 8, 7)
	g.Reset(testConfig(1))

	for i := 0; i < 10; i++ {
		g.Step(frame(platformcore.ActionRight))
	}
	g.Step(frame(platformcore.ActionRestart))

	if g.cursor != (core.S(1, 1)) {
		t.Error("restart should reset the cursor")
	}
	if g.State().Score != 0 || g.State().GameOver {
		t.Error("restart should reset the game state")
	}
	if got := g.board.TileCount(); got != 8*7 {
		t.Errorf("restart board has %d tiles, want %d", got, 8*7)
	}
}

func TestElapsedClock(t *testing.T) {
	g := New("shisen", "Shisen-Sho", 8, 7)
	g.Reset(testConfig(1))

	for i := 0; i < 90; i++ {
		g.Step(frame())
	}
	if got := g.ElapsedSeconds(); got != 3 {
		t.Errorf("ElapsedSeconds() = %d, want 3 after 90 ticks at 30/s", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{9, "00:09"},
		{61, "01:01"},
		{600, "10:00"},
		{3599, "59:59"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.secs); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestRenderShowsTilesAndCursor(t *testing.T) {
	g := New("shisen", "Shisen-Sho", 8, 7)
	g.Reset(testConfig(1))
	setBoard(t, g, []string{"AB"})

	s := platformcore.NewScreen(80, 24)
	g.Render(s)

	x, y := g.tileOrigin(core.S(1, 1))
	if s.Get(x, y) != '<' || s.Get(x+3, y) != '>' {
		t.Error("cursor brackets should mark the cursor cell")
	}
	if s.Get(x+1, y) != '1' || s.Get(x+2, y) != 'm' {
		t.Errorf("kind 0 should render as 1m, got %q%q", s.Get(x+1, y), s.Get(x+2, y))
	}
}
