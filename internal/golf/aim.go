package golf

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Turn selects the rotation sense of an aim command, seen from above.
type Turn int

const (
	TurnLeft Turn = iota
	TurnRight
)

// Aim is the shot direction and power-charge state.
// Direction is a unit vector in the horizontal plane; Power is zero whenever
// Charging is false.
type Aim struct {
	Direction mgl64.Vec3
	Charging  bool
	Power     float64
}

func newAim() Aim {
	return Aim{Direction: mgl64.Vec3{0, 0, -1}}
}

// Angle returns the heading of Direction in radians, measured from -Z
// towards -X (counter-clockwise seen from above).
func (a Aim) Angle() float64 {
	return math.Atan2(-a.Direction.X(), -a.Direction.Z())
}

func (a *Aim) rotate(angle float64) {
	d := mgl64.Rotate3DY(angle).Mul3x1(a.Direction)
	d[1] = 0
	n := d.Len()
	if n == 0 {
		return
	}
	a.Direction = d.Mul(1 / n)
}

func (a *Aim) beginCharge() bool {
	if a.Charging {
		return false
	}
	a.Charging = true
	a.Power = 0
	return true
}

// tickCharge grows the power and reports whether it changed.
func (a *Aim) tickCharge(dt, rate, max float64) bool {
	if !a.Charging {
		return false
	}
	next := math.Min(a.Power+rate*dt, max)
	if next == a.Power {
		return false
	}
	a.Power = next
	return true
}

// release ends a charge. It returns the launch velocity and whether the shot
// was taken; charges weaker than minPower are dropped.
func (a *Aim) release(minPower, scale float64) (mgl64.Vec3, bool) {
	if !a.Charging {
		return mgl64.Vec3{}, false
	}
	power := a.Power
	a.cancel()
	if power < minPower {
		return mgl64.Vec3{}, false
	}
	return a.Direction.Mul(power * scale), true
}

func (a *Aim) cancel() {
	a.Charging = false
	a.Power = 0
}
