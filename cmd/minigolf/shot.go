package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minigolf/internal/course"
	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf"
)

var (
	flagPower    float64
	flagAim      float64
	flagMaxTicks int
)

var shotCmd = &cobra.Command{
	Use:   "shot <hole>",
	Short: "Simulate one shot and log where the ball ends up",
	Long: `Plays a single shot on a hole without a screen and logs the outcome.
Useful for checking that a hole can be played after editing it.

The aim is a heading in degrees: 0 putts straight towards -Z,
positive values turn left, negative values turn right.

Examples:
  minigolf shot 01-first-tee --power 60
  minigolf shot 05-the-slingshot --power 85 --aim -30
  minigolf shot 04-precision --power 40 --max-ticks 600`,
	Args: cobra.ExactArgs(1),
	Run:  runShot,
}

func init() {
	shotCmd.Flags().Float64Var(&flagPower, "power", 50, "Shot power in percent")
	shotCmd.Flags().Float64Var(&flagAim, "aim", 0, "Aim heading in degrees")
	shotCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 3000, "Stop simulating after this many ticks")
}

func runShot(_ *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "shot",
	})

	holes, skipped, err := course.Load(flagCourse)
	for _, e := range skipped {
		logger.Warn("skipped hole file", "error", e)
	}
	if err != nil {
		logger.Fatal("cannot load course", "error", err)
	}
	h, _, err := course.Find(holes, args[0])
	if err != nil {
		logger.Fatal("unknown hole", "hole", args[0], "error", err)
	}

	tuning := minigolf.TuningFromConfig(minigolf.LoadConfig())
	report, err := minigolf.SimulateShot(h, tuning, flagPower, flagAim, flagMaxTicks)
	if err != nil {
		logger.Fatal("cannot simulate", "hole", h.ID, "error", err)
	}

	fields := []any{
		"hole", report.HoleID,
		"power", report.Power,
		"ticks", report.Ticks,
		"strokes", report.Strokes,
		"to_cup", report.ToCup,
	}
	switch {
	case report.Sunk:
		logger.Info("holed", fields...)
	case report.OutOfBounds:
		logger.Warn("out of bounds, ball back on the tee", fields...)
	case report.Strokes == 0:
		logger.Warn("charge below minimum power, no stroke", fields...)
	case report.Ticks >= flagMaxTicks:
		logger.Warn("still rolling at the tick limit", append(fields, "position", report.Position)...)
	default:
		logger.Info("ball at rest", append(fields, "position", report.Position)...)
	}
}
