package golf

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func holeAt(t *testing.T) *HoleController {
	t.Helper()
	g, err := NewGeometry(straightPutt())
	if err != nil {
		t.Fatal(err)
	}
	return NewHoleController(g, DefaultTuning())
}

func TestHoleSinksSlowBall(t *testing.T) {
	h := holeAt(t)
	b := Ball{Position: mgl64.Vec3{0, 0.15, -7.9}, Velocity: mgl64.Vec3{0, 0, -0.05}, Radius: 0.15, Phase: Moving, VisualScale: 1}

	if got := h.Update(&b); got != HoleSunk {
		t.Fatalf("outcome = %v, expected sunk", got)
	}
	if b.Phase != Sinking {
		t.Errorf("phase = %v, expected sinking", b.Phase)
	}
	if b.Velocity != (mgl64.Vec3{}) {
		t.Errorf("velocity = %v, expected zero", b.Velocity)
	}
	if !approxVec(b.Position, mgl64.Vec3{0, 0.16, -8}, 1e-12) {
		t.Errorf("position = %v, expected snapped to the cup", b.Position)
	}
}

func TestHoleFunnelPullsFastBall(t *testing.T) {
	h := holeAt(t)
	b := Ball{Position: mgl64.Vec3{0, 0.15, -7.9}, Velocity: mgl64.Vec3{0, 0, -0.5}, Radius: 0.15, Phase: Moving}

	if got := h.Update(&b); got != HoleFunnel {
		t.Fatalf("outcome = %v, expected funnel", got)
	}
	if !approx(b.Velocity.Z(), -0.5035*0.975, 1e-12) {
		t.Errorf("vz = %v, expected %v", b.Velocity.Z(), -0.5035*0.975)
	}
	if b.Phase != Moving {
		t.Errorf("phase = %v, expected moving", b.Phase)
	}
}

func TestHoleFunnelIsHorizontal(t *testing.T) {
	h := holeAt(t)
	b := Ball{Position: mgl64.Vec3{0.4, 0.15, -8}, Velocity: mgl64.Vec3{0, 0, 0.1}, Radius: 0.15, Phase: Moving}

	h.Update(&b)
	if b.Velocity.Y() != 0 {
		t.Errorf("funnel added vertical speed %v", b.Velocity.Y())
	}
	if !approx(b.Velocity.X(), -0.0035*0.975, 1e-12) {
		t.Errorf("vx = %v, expected pull towards the hole", b.Velocity.X())
	}
}

func TestHoleIgnoresBallsAwayOrAbove(t *testing.T) {
	h := holeAt(t)
	tests := []struct {
		name string
		pos  mgl64.Vec3
		vel  mgl64.Vec3
	}{
		{"outside funnel", mgl64.Vec3{0, 0.15, -5}, mgl64.Vec3{0, 0, -0.1}},
		{"above the cup", mgl64.Vec3{0, 0.5, -8}, mgl64.Vec3{0, 0, -0.01}},
		{"too fast for funnel", mgl64.Vec3{0, 0.15, -7.5}, mgl64.Vec3{0, 0, -0.8}},
		{"resting", mgl64.Vec3{0, 0.15, -7.5}, mgl64.Vec3{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Position: tc.pos, Velocity: tc.vel, Radius: 0.15, Phase: Moving}
			if got := h.Update(&b); got != HoleNone {
				t.Errorf("outcome = %v, expected none", got)
			}
			if b.Velocity != tc.vel {
				t.Errorf("velocity changed to %v", b.Velocity)
			}
		})
	}
}

func TestSinkAnimationHidesBall(t *testing.T) {
	h := holeAt(t)
	rim := mgl64.Vec3{0, 0.16, -8}
	b := Ball{Position: rim, Radius: 0.15, Phase: Sinking, VisualScale: 1}

	for i := 0; i < 44; i++ {
		h.Animate(&b)
	}
	if b.Hidden {
		t.Fatalf("ball hidden too early at scale %v", b.VisualScale)
	}
	if !approx(b.Position.Y(), 0.16-44*0.05, 1e-9) {
		t.Errorf("y = %v, expected the ball to drop 0.05 per step", b.Position.Y())
	}
	if b.Position.X() != rim.X() || b.Position.Z() != rim.Z() {
		t.Errorf("sinking ball drifted to %v", b.Position)
	}

	h.Animate(&b)
	if !b.Hidden {
		t.Errorf("ball should be hidden at scale %v", b.VisualScale)
	}
	if b.VisualScale <= 0 {
		t.Errorf("scale must stay positive, got %v", b.VisualScale)
	}

	hidden := b
	h.Animate(&b)
	if b != hidden {
		t.Error("a hidden ball must not change")
	}
}
