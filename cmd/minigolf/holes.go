package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minigolf/internal/course"
	"github.com/vovakirdan/tui-minigolf/internal/storage"
)

var holesCmd = &cobra.Command{
	Use:   "holes",
	Short: "List the holes of the course",
	Long: `Shows every hole of the course with its par and your best score.
Hole files that fail to load are reported and skipped.`,
	Run: runHoles,
}

func runHoles(_ *cobra.Command, _ []string) {
	holes, skipped, err := course.Load(flagCourse)
	for _, e := range skipped {
		log.Warn("skipped hole file", "error", e)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading course: %v\n", err)
		os.Exit(1)
	}

	var store *storage.Store
	if s, err := storage.Open(flagDBPath); err == nil {
		store = s
		defer store.Close()
	}

	maxIDLen := 2 // "ID" header
	for _, h := range holes {
		if len(h.ID) > maxIDLen {
			maxIDLen = len(h.ID)
		}
	}

	fmt.Println("Holes:")
	fmt.Println()
	fmt.Printf("  %-*s  %-20s  %-3s  %s\n", maxIDLen, "ID", "Name", "Par", "Best")
	fmt.Printf("  %-*s  %-20s  %-3s  %s\n", maxIDLen, "--", "----", "---", "----")

	for _, h := range holes {
		best := "-"
		if store != nil {
			if b, ok, err := store.BestStrokes(h.ID); err == nil && ok {
				best = fmt.Sprint(b)
			}
		}
		fmt.Printf("  %-*s  %-20s  %-3d  %s\n", maxIDLen, h.ID, h.Name, h.Par, best)
	}

	fmt.Println()
	fmt.Printf("Total par: %d\n", course.TotalPar(holes))
	fmt.Println("Run 'minigolf play <id>' to practice a hole.")
}
