package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taotao54321/shisen-tui/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available board variants",
	Long:  `Shows a list of all registered Shisen-Sho board variants.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No board variants available.")
		return
	}

	fmt.Println("Available board variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print variants
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'shisen play <id>' to play a variant.")
}
