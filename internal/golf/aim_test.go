package golf

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestChargeIsMonotonicAndClamped(t *testing.T) {
	sim, rec := newTestSim(t, straightPutt())
	chargeTo(t, sim, 200)

	if got := sim.Aim().Power; got != 100 {
		t.Fatalf("power after 200 steps = %v, expected 100", got)
	}
	// 0.75 per step reaches the cap on step 134; later steps change nothing
	if len(rec.powers) != 134 {
		t.Errorf("power events = %d, expected 134", len(rec.powers))
	}
	for i := 1; i < len(rec.powers); i++ {
		if rec.powers[i] < rec.powers[i-1] {
			t.Fatalf("power decreased at event %d: %v -> %v", i, rec.powers[i-1], rec.powers[i])
		}
	}
}

func TestReleaseBelowThresholdCancels(t *testing.T) {
	sim, rec := newTestSim(t, straightPutt())
	chargeTo(t, sim, 6) // 4.5

	if sim.Release() {
		t.Fatal("release under the minimum power should not launch")
	}
	if rec.strokes != 0 {
		t.Errorf("strokes = %d, expected 0", rec.strokes)
	}
	b := sim.Ball()
	if b.Phase != Stationary || b.Velocity != (mgl64.Vec3{}) {
		t.Errorf("ball should stay at rest, got %v %v", b.Phase, b.Velocity)
	}
	a := sim.Aim()
	if a.Charging || a.Power != 0 {
		t.Errorf("aim should be reset, got charging=%v power=%v", a.Charging, a.Power)
	}
	if last := rec.powers[len(rec.powers)-1]; last != 0 {
		t.Errorf("last power readout = %v, expected 0", last)
	}
}

func TestReleaseAtThresholdLaunches(t *testing.T) {
	sim, rec := newTestSim(t, straightPutt())
	chargeTo(t, sim, 7) // 5.25

	if !sim.Release() {
		t.Fatal("release at 5.25 should launch")
	}
	if rec.strokes != 1 {
		t.Errorf("strokes = %d, expected 1", rec.strokes)
	}
	if got := sim.Ball().Velocity; !approxVec(got, mgl64.Vec3{0, 0, -5.25 * 0.007}, 1e-12) {
		t.Errorf("velocity = %v", got)
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	sim, rec := newTestSim(t, straightPutt())
	chargeTo(t, sim, 40)

	if !sim.Release() {
		t.Fatal("first release should launch")
	}
	v := sim.Ball().Velocity
	if sim.Release() {
		t.Error("second release should be a no-op")
	}
	if rec.strokes != 1 {
		t.Errorf("strokes = %d, expected 1", rec.strokes)
	}
	if sim.Ball().Velocity != v {
		t.Error("second release changed the velocity")
	}
}

func TestFullPowerLaunchVelocity(t *testing.T) {
	sim, _ := newTestSim(t, straightPutt())
	chargeTo(t, sim, 150)
	sim.Release()

	b := sim.Ball()
	if b.Phase != Moving {
		t.Fatalf("phase = %v, expected moving", b.Phase)
	}
	if !approxVec(b.Velocity, mgl64.Vec3{0, 0, -0.7}, 1e-12) {
		t.Errorf("velocity = %v, expected (0, 0, -0.7)", b.Velocity)
	}
}

func TestAimStaysHorizontalUnit(t *testing.T) {
	sim, _ := newTestSim(t, straightPutt())

	for i := 0; i < 1000; i++ {
		sim.AimLeft()
	}
	for i := 0; i < 37; i++ {
		sim.AimRight()
	}

	d := sim.Aim().Direction
	if d.Y() != 0 {
		t.Errorf("direction y = %v, expected 0", d.Y())
	}
	if !approx(d.Len(), 1, 1e-9) {
		t.Errorf("direction length = %v, expected 1", d.Len())
	}
}

func TestAimFullTurn(t *testing.T) {
	sim, _ := newTestSim(t, straightPutt())

	sim.AimLeft()
	d := sim.Aim().Direction
	step := math.Pi / 45
	if !approxVec(d, mgl64.Vec3{-math.Sin(step), 0, -math.Cos(step)}, 1e-12) {
		t.Errorf("one left turn = %v", d)
	}
	if !approx(sim.Aim().Angle(), step, 1e-12) {
		t.Errorf("Angle() = %v, expected %v", sim.Aim().Angle(), step)
	}

	for i := 1; i < 90; i++ {
		sim.AimLeft()
	}
	if !approxVec(sim.Aim().Direction, mgl64.Vec3{0, 0, -1}, 1e-9) {
		t.Errorf("90 turns should come back to -Z, got %v", sim.Aim().Direction)
	}
}

func TestAimIgnoredWhileMovingOrPaused(t *testing.T) {
	sim, rec := newTestSim(t, straightPutt())

	rec.paused = true
	if sim.AimLeft() || sim.BeginCharge() {
		t.Error("input should be ignored while paused")
	}
	rec.paused = false

	chargeTo(t, sim, 40)
	sim.Release()
	before := sim.Aim().Direction
	if sim.AimLeft() {
		t.Error("rotate should be ignored while the ball moves")
	}
	if sim.BeginCharge() {
		t.Error("charge should be ignored while the ball moves")
	}
	if sim.Aim().Direction != before {
		t.Error("direction changed while moving")
	}
}

func TestAimAt(t *testing.T) {
	sim, _ := newTestSim(t, straightPutt())

	if !sim.AimAt(math.Pi / 2) {
		t.Fatal("AimAt refused at rest")
	}
	if !approxVec(sim.Aim().Direction, mgl64.Vec3{-1, 0, 0}, 1e-12) {
		t.Errorf("direction = %v, expected -X", sim.Aim().Direction)
	}
}
