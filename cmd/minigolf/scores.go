package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minigolf/internal/course"
	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf"
	"github.com/vovakirdan/tui-minigolf/internal/registry"
	"github.com/vovakirdan/tui-minigolf/internal/storage"
)

var flagMode string

var scoresCmd = &cobra.Command{
	Use:   "scores [hole]",
	Short: "Show course scores or the history of a hole",
	Long: `Without arguments, display the top 10 course rounds and the best
score on every hole. With a hole ID, display the last plays of that hole.

Examples:
  minigolf scores
  minigolf scores --mode minigolf_practice
  minigolf scores 02-the-bridge`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagMode, "mode", minigolf.CourseID, "Game mode whose rounds are listed")
}

func runScores(_ *cobra.Command, args []string) {
	if !registry.Exists(flagMode) {
		fmt.Fprintf(os.Stderr, "Error: unknown game mode %q\n", flagMode)
		fmt.Fprintln(os.Stderr, "Run 'minigolf modes' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		err = printHoleHistory(store, args[0])
	} else {
		err = printRounds(store, flagMode)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printRounds(store *storage.Store, mode string) error {
	scores, err := store.TopScores(mode, 10)
	if err != nil {
		return err
	}

	title := "Course rounds"
	if mode != minigolf.CourseID {
		title = "Rounds - " + mode
	}
	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'minigolf play' to set the first score!")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		stats, err := store.GetGameStats(mode)
		if err == nil {
			fmt.Println()
			fmt.Printf("Best: %d  Rounds: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
		}
	}

	bests, err := store.HoleBests()
	if err != nil {
		return err
	}
	if len(bests) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Hole records")
	fmt.Println()
	fmt.Printf("  %-20s  %-3s  %-4s  %s\n", "Hole", "Par", "Best", "Plays")
	fmt.Printf("  %-20s  %-3s  %-4s  %s\n", "----", "---", "----", "-----")
	for _, b := range bests {
		fmt.Printf("  %-20s  %-3d  %-4d  %d\n", b.HoleID, b.Par, b.Best, b.Plays)
	}
	return nil
}

func printHoleHistory(store *storage.Store, holeID string) error {
	title := holeID
	if holes, err := minigolf.LoadCourse(); err == nil {
		if h, _, err := course.Find(holes, holeID); err == nil {
			title = fmt.Sprintf("%s (par %d)", h.Name, h.Par)
		}
	}

	records, err := store.HoleHistory(holeID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("History - %s\n", title)
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No plays recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'minigolf play %s' to set the first record!\n", holeID)
		return nil
	}

	fmt.Printf("  %-7s  %-14s  %s\n", "Strokes", "Result", "Date")
	fmt.Printf("  %-7s  %-14s  %s\n", "-------", "------", "----")
	for _, r := range records {
		fmt.Printf("  %-7d  %-14s  %s\n", r.Strokes, minigolf.ResultName(r.Result()), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, ok, err := store.BestStrokes(holeID); err == nil && ok {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}
