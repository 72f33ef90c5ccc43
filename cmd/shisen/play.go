package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/taotao54321/shisen-tui/internal/config"
	"github.com/taotao54321/shisen-tui/internal/core"
	"github.com/taotao54321/shisen-tui/internal/games/shisen"
	"github.com/taotao54321/shisen-tui/internal/platform/tui"
	"github.com/taotao54321/shisen-tui/internal/registry"
	"github.com/taotao54321/shisen-tui/internal/storage"
)

var (
	flagConfig string
	flagCols   int
	flagRows   int
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a board variant",
	Long: `Start playing the specified board variant.

Controls:
  Arrows/WASD/HJKL - Move cursor
  Enter/Space      - Select tile / remove matched pair
  X/Backspace      - Drop selection
  T/?              - Hint
  P                - Pause
  R                - Restart with a fresh deal
  Q/Ctrl+C         - Quit

Board size:
  --cols and --rows override the variant's interior board size.
  The cell count (cols * rows) must be even so every tile can pair up.

Examples:
  shisen play shisen
  shisen play shisen_mini
  shisen play shisen --cols 10 --rows 6
  shisen play shisen --seed 42
  shisen play shisen --config ./my-shisen.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Interior board columns (0 = variant default)")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Interior board rows (0 = variant default)")
}

// applyShisenConfig loads the YAML config and command line overrides and
// pushes them into the game package before a variant is created.
func applyShisenConfig() error {
	cfg, err := config.LoadShisen(flagConfig)
	if err != nil {
		return err
	}

	// A zero size keeps each variant's own dimensions.
	cols, rows := cfg.Board.Cols, cfg.Board.Rows
	if flagCols > 0 && flagRows > 0 {
		cols, rows = flagCols, flagRows
	}
	if cols > 0 && rows > 0 {
		if cols*rows%2 != 0 {
			return fmt.Errorf("board size %dx%d has an odd cell count", cols, rows)
		}
		shisen.SetBoardSize(cols, rows)
	}

	shisen.SetFlashTicks(cfg.UI.PathFlashTicks, cfg.UI.HintFlashTicks)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'shisen list' to see available variants.")
		os.Exit(1)
	}

	// Apply config before the variant is created
	if err := applyShisenConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
