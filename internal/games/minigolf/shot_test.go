package minigolf

import (
	"testing"

	"github.com/vovakirdan/tui-minigolf/internal/course"
	"github.com/vovakirdan/tui-minigolf/internal/golf"
)

func firstTee(t *testing.T) course.Hole {
	t.Helper()
	holes, err := course.Default()
	if err != nil {
		t.Fatalf("default course: %v", err)
	}
	return holes[0]
}

func TestSimulateShotSinks(t *testing.T) {
	r, err := SimulateShot(firstTee(t), golf.DefaultTuning(), 60, 0, 3000)
	if err != nil {
		t.Fatalf("SimulateShot: %v", err)
	}
	if !r.Sunk || r.Strokes != 1 {
		t.Errorf("report = %+v, expected a hole in one", r)
	}
	if r.Power != 60 {
		t.Errorf("charged %.2f, expected 60", r.Power)
	}
	if r.ToCup > 0.01 {
		t.Errorf("sunk ball is %.3f from the cup", r.ToCup)
	}
}

func TestSimulateShotTooSoft(t *testing.T) {
	h := firstTee(t)
	r, err := SimulateShot(h, golf.DefaultTuning(), 3, 0, 3000)
	if err != nil {
		t.Fatalf("SimulateShot: %v", err)
	}
	if r.Strokes != 0 || r.Sunk {
		t.Errorf("a cancelled charge is no stroke: %+v", r)
	}
	if !r.Position.ApproxEqual(h.Start) {
		t.Errorf("ball moved to %v", r.Position)
	}
}

func TestSimulateShotTickLimit(t *testing.T) {
	r, err := SimulateShot(firstTee(t), golf.DefaultTuning(), 100, 0, 90)
	if err != nil {
		t.Fatalf("SimulateShot: %v", err)
	}
	if r.Ticks != 90 {
		t.Errorf("ran %d ticks, expected the limit of 90", r.Ticks)
	}
	if r.Sunk {
		t.Error("ball cannot reach the cup in 90 ticks")
	}
}
