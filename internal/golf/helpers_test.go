package golf

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// recorder collects events and supplies the pause flag.
type recorder struct {
	strokes int
	holes   int
	powers  []float64
	paused  bool
}

func (r *recorder) OnStroke()                { r.strokes++ }
func (r *recorder) OnHoleComplete()          { r.holes++ }
func (r *recorder) OnPowerChanged(p float64) { r.powers = append(r.powers, p) }
func (r *recorder) Paused() bool             { return r.paused }

// straightPutt is an open green with the hole 16 units in front of the tee.
func straightPutt() Geometry {
	return Geometry{
		Start:      mgl64.Vec3{0, 0.2, 8},
		Hole:       mgl64.Vec3{0, 0.01, -8},
		HoleRadius: 0.25,
		ArenaHalfX: 25,
		ArenaHalfZ: 25,
	}
}

func newTestSim(t *testing.T, g Geometry) (*Simulation, *recorder) {
	t.Helper()
	rec := &recorder{}
	sim, err := NewSimulation(g, DefaultTuning(), rec, rec)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return sim, rec
}

// chargeTo charges for the given number of steps and releases.
func chargeTo(t *testing.T, sim *Simulation, steps int) {
	t.Helper()
	if !sim.BeginCharge() {
		t.Fatal("BeginCharge refused")
	}
	for i := 0; i < steps; i++ {
		sim.Step()
	}
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func approxVec(a, b mgl64.Vec3, tol float64) bool {
	return approx(a[0], b[0], tol) && approx(a[1], b[1], tol) && approx(a[2], b[2], tol)
}
