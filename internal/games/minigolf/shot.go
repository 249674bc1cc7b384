package minigolf

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-minigolf/internal/course"
	"github.com/vovakirdan/tui-minigolf/internal/golf"
)

// ShotReport describes how a headless shot ended.
type ShotReport struct {
	HoleID      string
	Power       float64 // power actually charged
	Ticks       int
	Strokes     int
	Sunk        bool
	OutOfBounds bool
	Position    mgl64.Vec3
	ToCup       float64 // horizontal distance left to the cup
}

// SimulateShot plays one shot on h without a screen. aimDeg is the heading
// in degrees (0 is straight down -Z, positive turns left). The run stops
// when the ball drops, comes to rest or maxTicks steps have passed.
func SimulateShot(h course.Hole, tuning golf.Tuning, power, aimDeg float64, maxTicks int) (ShotReport, error) {
	geom, err := h.Geometry()
	if err != nil {
		return ShotReport{}, err
	}
	tracker := &holeTracker{}
	sim, err := golf.NewSimulation(*geom, tuning, tracker, nil)
	if err != nil {
		return ShotReport{}, err
	}

	power = mgl64.Clamp(power, 0, tuning.MaxPower)
	sim.AimAt(mgl64.DegToRad(aimDeg))
	sim.BeginCharge()

	ticks := 0
	for sim.Aim().Power < power && ticks < maxTicks {
		sim.Step()
		ticks++
	}
	report := ShotReport{HoleID: h.ID, Power: sim.Aim().Power}
	sim.Release()

	for ticks < maxTicks {
		res := sim.Step()
		ticks++
		if res.OutOfBounds {
			report.OutOfBounds = true
		}
		if tracker.holed || sim.Ball().Phase == golf.Stationary {
			break
		}
	}

	ball := sim.Ball()
	report.Ticks = ticks
	report.Strokes = tracker.strokes
	report.Sunk = tracker.holed
	report.Position = ball.Position
	report.ToCup = mgl64.Vec2{ball.Position.X() - h.Cup.X(), ball.Position.Z() - h.Cup.Z()}.Len()
	return report, nil
}
