// Package shisen provides the Shisen-Sho tile matching game.
//
// The player removes pairs of identical mahjong tiles that can be
// connected by a path of at most three straight segments running over
// empty cells. The board is generated so that at least one full
// clearing sequence exists, though careless play can still get stuck.
package shisen

import (
	"math/rand"

	platformcore "github.com/taotao54321/shisen-tui/internal/core"
	"github.com/taotao54321/shisen-tui/internal/games/shisen/core"
	"github.com/taotao54321/shisen-tui/internal/registry"
)

// Game implements the Shisen-Sho game on top of the board engine.
type Game struct {
	id    string
	title string

	rng   *rand.Rand
	board *core.Board

	// Board size (interior cells)
	innerCols int
	innerRows int

	// Screen dimensions
	screenW int
	screenH int

	// Status
	tick         uint64
	elapsedTicks uint64
	tickRate     int
	pairsRemoved int
	gameOver     bool
	won          bool
	paused       bool
	tooSmall     bool

	// Selection state
	cursor      core.Square
	selected    core.Square
	hasSelected bool

	// Flash state: the last removed pair's path and the current hint
	// stay highlighted for a few ticks.
	lastMove  core.Move
	pathTicks int
	hint      core.Move
	hintTicks int

	// Rendering config
	cellW     int // Width of each board cell in terminal chars
	cellH     int // Height of each board cell in terminal lines
	hudHeight int

	// Calculated offsets
	gridOffsetX int
	gridOffsetY int
}

// Package-level variables for configuration
var (
	overrideCols   int
	overrideRows   int
	pathFlashTicks = 15
	hintFlashTicks = 45
)

// SetBoardSize overrides the interior board size for the next created
// game. Zero values keep the variant's own size.
func SetBoardSize(cols, rows int) {
	overrideCols = cols
	overrideRows = rows
}

// SetFlashTicks sets how long, in ticks, the removal path and the hint
// highlight stay on screen. Non-positive values keep the defaults.
func SetFlashTicks(path, hint int) {
	if path > 0 {
		pathFlashTicks = path
	}
	if hint > 0 {
		hintFlashTicks = hint
	}
}

func init() {
	registry.Register("shisen", func() registry.Game {
		return New("shisen", "Shisen-Sho", 8, 7)
	})
	registry.Register("shisen_mini", func() registry.Game {
		return New("shisen_mini", "Shisen-Sho Mini", 6, 4)
	})
	registry.Register("shisen_large", func() registry.Game {
		return New("shisen_large", "Shisen-Sho Large", 18, 8)
	})
}

// New creates a Shisen-Sho game with the given interior board size.
func New(id, title string, cols, rows int) *Game {
	if overrideCols > 0 && overrideRows > 0 {
		cols, rows = overrideCols, overrideRows
	}
	return &Game{
		id:        id,
		title:     title,
		innerCols: cols,
		innerRows: rows,
		cellW:     4,
		cellH:     2,
		hudHeight: 4,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the game with a fresh solvable board.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}

	g.tick = 0
	g.elapsedTicks = 0
	g.pairsRemoved = 0
	g.gameOver = false
	g.won = false
	g.paused = false

	g.cursor = core.S(1, 1)
	g.hasSelected = false
	g.pathTicks = 0
	g.hintTicks = 0

	g.board = core.NewRandom(g.innerCols, g.innerRows, g.rng)
	if g.board.IsEmpty() {
		// Degenerate zero-area board counts as cleared immediately.
		g.won = true
		g.gameOver = true
	}

	g.calculateLayout()
}

// calculateLayout centers the board display and checks it fits.
// The display covers the full grid including the empty border ring, so
// connection paths running outside the tiles have room to draw.
func (g *Game) calculateLayout() {
	displayW := g.board.Cols() * g.cellW
	displayH := g.board.Rows() * g.cellH

	if g.screenW < displayW || g.screenH < displayH+g.hudHeight {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.gridOffsetX = (g.screenW - displayW) / 2
	g.gridOffsetY = g.hudHeight + (g.screenH-g.hudHeight-displayH)/2
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	// Restart works at any time, not only after game over.
	if input.Has(platformcore.ActionRestart) {
		g.Reset(platformcore.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	g.elapsedTicks++
	if g.pathTicks > 0 {
		g.pathTicks--
	}
	if g.hintTicks > 0 {
		g.hintTicks--
	}

	g.moveCursor(input)

	if input.Has(platformcore.ActionCancel) {
		g.hasSelected = false
	}

	if input.Has(platformcore.ActionHint) {
		if mv, ok := g.board.FindMove(); ok {
			g.hint = mv
			g.hintTicks = hintFlashTicks
		}
	}

	if input.Has(platformcore.ActionConfirm) {
		g.confirmAt(g.cursor)
	}

	return platformcore.StepResult{State: g.State()}
}

// moveCursor applies directional input, clamped to the interior.
func (g *Game) moveCursor(input platformcore.InputFrame) {
	c, r := g.cursor.C, g.cursor.R
	if input.Has(platformcore.ActionUp) {
		r--
	}
	if input.Has(platformcore.ActionDown) {
		r++
	}
	if input.Has(platformcore.ActionLeft) {
		c--
	}
	if input.Has(platformcore.ActionRight) {
		c++
	}
	c = platformcore.Clamp(c, 1, g.board.InnerCols())
	r = platformcore.Clamp(r, 1, g.board.InnerRows())
	g.cursor = core.S(c, r)
}

// confirmAt handles a selection at the given square: first press picks
// a tile, second press on a matching connectable tile removes the pair.
// A failed match drops the selection either way.
func (g *Game) confirmAt(sq core.Square) {
	if !g.hasSelected {
		if g.board.At(sq).Tile {
			g.selected = sq
			g.hasSelected = true
		}
		return
	}

	if g.selected == sq {
		g.hasSelected = false
		return
	}

	if mv, ok := g.board.ShortestMoveBetween(g.selected, sq); ok {
		g.board.DoMove(mv)
		g.pairsRemoved++
		g.lastMove = mv
		g.pathTicks = pathFlashTicks
		g.hintTicks = 0

		switch {
		case g.board.IsEmpty():
			g.won = true
			g.gameOver = true
		case g.board.IsStuck():
			g.gameOver = true
		}
	}
	g.hasSelected = false
}

// PairsLeft returns how many pairs remain on the board.
func (g *Game) PairsLeft() int {
	return g.board.TileCount() / 2
}

// ElapsedSeconds returns the unpaused play time in whole seconds.
func (g *Game) ElapsedSeconds() int {
	return int(g.elapsedTicks) / g.tickRate
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.pairsRemoved,
		GameOver: g.gameOver,
		Cleared:  g.won,
		Paused:   g.paused,
	}
}
