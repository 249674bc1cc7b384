package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minigolf/internal/course"
	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf"
	"github.com/vovakirdan/tui-minigolf/internal/platform/tui"
	"github.com/vovakirdan/tui-minigolf/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [hole]",
	Short: "Play the course, or practice a single hole",
	Long: `Play every hole of the course in order. With a hole ID, practice
just that hole; practice rounds keep hole records but no course score.

Controls:
  Left/Right   - Aim
  Space        - Start charging, press again to putt
  Enter        - Putt
  P/Esc        - Pause
  R            - Restart (after the round)
  Ctrl+S       - Save a text screenshot to ~/.minigolf/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Wide funnel around the cup, 12 strokes per hole
  normal - 10 strokes per hole
  hard   - Narrow funnel, 8 strokes per hole

Examples:
  minigolf play
  minigolf play 03-the-bottleneck
  minigolf play --difficulty hard
  minigolf play --course ./my-holes`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := minigolf.CourseID
	holeID := ""
	if len(args) == 1 {
		holeID = args[0]
		holes, err := minigolf.LoadCourse()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading course: %v\n", err)
			os.Exit(1)
		}
		if _, _, err := course.Find(holes, holeID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'minigolf holes' to see available holes.")
			os.Exit(1)
		}
		gameID = minigolf.PracticeID
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if g, ok := game.(*minigolf.Game); ok && holeID != "" {
		g.PlayHole(holeID)
	}

	store := openStore()
	result, runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if result.SaveErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: round not saved: %v\n", result.SaveErr)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
