package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minigolf/internal/core"
	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf"
	"github.com/vovakirdan/tui-minigolf/internal/platform/tui"
	"github.com/vovakirdan/tui-minigolf/internal/registry"
	"github.com/vovakirdan/tui-minigolf/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start minigolf with an interactive menu",
	Long: `Start minigolf in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Leave a paused or finished round with Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scores
  Q            - Quit

Examples:
  minigolf menu
  minigolf menu --fps 30
  minigolf menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		var back bool
		switch menuResult.Choice {
		case tui.ChoiceCourse:
			back = playRound(minigolf.CourseID, "", store, cfg)

		case tui.ChoicePractice:
			holes, err := minigolf.LoadCourse()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading course: %v\n", err)
				break
			}
			holeID, err := tui.RunHolePicker(holes, store, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				break
			}
			if holeID == "" {
				continue // Back to menu
			}
			back = playRound(minigolf.PracticeID, holeID, store, cfg)

		case tui.ChoiceScores:
			holes, err := minigolf.LoadCourse()
			if err != nil {
				holes = nil
			}
			back, err = tui.RunScoreboard(store, holes, "", cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}

		if !back {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}

// playRound runs one game and reports whether the player went back to the menu.
func playRound(gameID, holeID string, store *storage.Store, cfg core.RuntimeConfig) bool {
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return false
	}
	if g, ok := game.(*minigolf.Game); ok && holeID != "" {
		g.PlayHole(holeID)
	}

	result, err := tui.Run(game, store, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return false
	}
	if result.SaveErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: round not saved: %v\n", result.SaveErr)
	}
	return result.BackToMenu
}
