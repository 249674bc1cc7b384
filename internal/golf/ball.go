package golf

import "github.com/go-gl/mathgl/mgl64"

// Phase is the motion phase of the ball.
type Phase int

const (
	Stationary Phase = iota
	Moving
	Sinking
)

func (p Phase) String() string {
	switch p {
	case Stationary:
		return "stationary"
	case Moving:
		return "moving"
	case Sinking:
		return "sinking"
	default:
		return "unknown"
	}
}

// Ball is the mutable state of the golf ball.
// Velocity is zero whenever the phase is Stationary or Sinking.
type Ball struct {
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	Radius      float64
	Phase       Phase
	VisualScale float64 // 1 until the ball starts sinking
	Hidden      bool    // set once the sink animation has finished
}

func newBall(start mgl64.Vec3, radius float64) Ball {
	return Ball{
		Position:    start,
		Radius:      radius,
		Phase:       Stationary,
		VisualScale: 1,
	}
}

// Speed returns the magnitude of the velocity.
func (b Ball) Speed() float64 {
	return b.Velocity.Len()
}

// speedSq avoids the square root used by Len for threshold checks.
func (b Ball) speedSq() float64 {
	return b.Velocity.Dot(b.Velocity)
}

func (b *Ball) stop() {
	b.Velocity = mgl64.Vec3{}
	b.Phase = Stationary
}
