package golf

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// HoleOutcome is what the hole did to the ball during a step.
type HoleOutcome int

const (
	HoleNone HoleOutcome = iota
	HoleFunnel
	HoleSunk
)

func (o HoleOutcome) String() string {
	switch o {
	case HoleFunnel:
		return "funnel"
	case HoleSunk:
		return "sunk"
	default:
		return "none"
	}
}

// HoleController detects a holed ball and steers slow balls near the cup.
type HoleController struct {
	geom   *Geometry
	tuning Tuning
}

// NewHoleController creates a controller for a validated geometry.
func NewHoleController(g *Geometry, t Tuning) *HoleController {
	return &HoleController{geom: g, tuning: t}
}

// Update runs once per moving step, after collision resolution.
func (h *HoleController) Update(b *Ball) HoleOutcome {
	hole := h.geom.Hole
	dx := hole.X() - b.Position.X()
	dz := hole.Z() - b.Position.Z()
	distSq := dx*dx + dz*dz

	if math.Abs(b.Position.Y()-hole.Y()) >= b.Radius {
		return HoleNone
	}

	speedSq := b.speedSq()
	r := h.geom.HoleRadius
	if distSq < r*r && speedSq < h.tuning.SinkSpeedSq {
		b.Velocity = mgl64.Vec3{}
		b.Position = mgl64.Vec3{hole.X(), hole.Y() + b.Radius, hole.Z()}
		b.Phase = Sinking
		return HoleSunk
	}

	funnel := r * h.tuning.FunnelRadiusFactor
	if distSq >= funnel*funnel || speedSq >= h.tuning.FunnelSpeedSq || speedSq == 0 {
		return HoleNone
	}

	if dist := math.Sqrt(distSq); dist > 0 {
		pull := mgl64.Vec3{dx, 0, dz}.Mul(h.tuning.FunnelPull / dist)
		b.Velocity = b.Velocity.Add(pull)
	}
	b.Velocity = b.Velocity.Mul(h.tuning.FunnelDamping)
	return HoleFunnel
}

// Animate lowers and shrinks a sinking ball until it is hidden.
func (h *HoleController) Animate(b *Ball) {
	if b.Hidden {
		return
	}
	b.Position[1] -= h.tuning.SinkDrop
	b.VisualScale *= h.tuning.SinkShrink
	if b.VisualScale < h.tuning.MinVisualScale {
		b.Hidden = true
	}
}
