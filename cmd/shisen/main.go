// shisen is a terminal Shisen-Sho puzzle game.
//
// Usage:
//
//	shisen list              - List available board variants
//	shisen play <variant>    - Play a board variant
//	shisen menu              - Start menu to pick variants interactively
//	shisen serve             - Start SSH server for remote play
//	shisen scores <variant>  - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible deals
//	--db <path>     - Set database path (default: ~/.shisen/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its board variants
	_ "github.com/taotao54321/shisen-tui/internal/games/shisen"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shisen",
	Short: "Shisen-Sho - Match mahjong tiles in your terminal",
	Long: `Shisen-Sho is a terminal tile matching puzzle. Remove pairs of
identical tiles connected by a path of at most three straight segments.

Available commands:
  list     - Show all available board variants
  play     - Play a specific board variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  shisen list
  shisen play shisen
  shisen menu
  shisen serve --ssh :2222
  shisen scores shisen_mini`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shisen/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
