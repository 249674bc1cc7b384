package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minigolf/internal/registry"
	"github.com/vovakirdan/tui-minigolf/internal/storage"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List game modes and how often each was played",
	Long: `Shows every registered game mode with the number of rounds and the
best score recorded for it.`,
	Run: runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No game modes available.")
		return
	}

	// Stats are optional; a missing database just shows dashes.
	var store *storage.Store
	if s, err := storage.Open(flagDBPath); err == nil {
		store = s
		defer store.Close()
	}

	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Println("Game modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %-18s  %-6s  %-5s  %s\n", maxIDLen, "ID", "Title", "Rounds", "Best", "Card")
	fmt.Printf("  %-*s  %-18s  %-6s  %-5s  %s\n", maxIDLen, "--", "-----", "------", "----", "----")

	for _, m := range modes {
		rounds, best := "-", "-"
		if store != nil {
			if stats, err := store.GetGameStats(m.ID); err == nil && stats.GamesCount > 0 {
				rounds = fmt.Sprint(stats.GamesCount)
				best = fmt.Sprint(stats.HighScore)
			}
		}
		card := "no"
		if m.Carded {
			card = "yes"
		}
		fmt.Printf("  %-*s  %-18s  %-6s  %-5s  %s\n", maxIDLen, m.ID, m.Title, rounds, best, card)
		if m.Summary != "" {
			fmt.Printf("  %-*s  %s\n", maxIDLen, "", m.Summary)
		}
	}

	fmt.Println()
	fmt.Println("Run 'minigolf scores --mode <id>' for the top rounds of a mode.")
}
