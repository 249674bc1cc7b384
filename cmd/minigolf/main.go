// minigolf is a terminal minigolf game.
//
// Usage:
//
//	minigolf play [hole]      - Play the course, or practice one hole
//	minigolf menu             - Start the menu to pick a round interactively
//	minigolf holes            - List the holes of the course
//	minigolf scores [hole]    - Show course scores or the history of a hole
//	minigolf serve            - Start SSH server for remote play
//	minigolf shot <hole>      - Simulate one shot without a screen
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed
//	--db <path>          - Set database path (default: ~/.minigolf/scores.db)
//	--config <path>      - Golf config YAML
//	--course <dir>       - Directory of hole files (default: built-in course)
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//
// MINIGOLF_DB, MINIGOLF_COURSE and MINIGOLF_SSH_ADDR provide defaults for
// --db, --course and serve --ssh. They may also be set in a .env file.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minigolf/internal/config"
	"github.com/vovakirdan/tui-minigolf/internal/core"
	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf"
	"github.com/vovakirdan/tui-minigolf/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagCourse     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minigolf",
	Short: "Minigolf - putt your way around a course in the terminal",
	Long: `Minigolf is a terminal minigolf game: aim, charge and putt a ball
around a course of obstacles, ramps and sand.

Available commands:
  play     - Play the course or practice a hole
  menu     - Interactive menu
  holes    - List the holes of the course
  scores   - View course scores and hole records
  serve    - Start SSH server for remote play
  shot     - Simulate one shot and log the outcome

Examples:
  minigolf play
  minigolf play 04-precision
  minigolf menu --difficulty easy
  minigolf serve --ssh :2222
  minigolf shot 01-first-tee --power 60`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom golf config YAML")
	rootCmd.PersistentFlags().StringVar(&flagCourse, "course", "", "Directory of hole files (default: built-in course)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(holesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shotCmd)
}

// setup applies the environment and hands the global flags to the game.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reading .env: %w", err)
	}

	flags := cmd.Flags()
	if v := os.Getenv("MINIGOLF_DB"); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv("MINIGOLF_COURSE"); v != "" && !flags.Changed("course") {
		flagCourse = v
	}

	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}

	minigolf.SetConfigPath(flagConfig)
	minigolf.SetDifficultyPreset(flagDifficulty)
	minigolf.SetCourseDir(flagCourse)
	return nil
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Play goes on without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
