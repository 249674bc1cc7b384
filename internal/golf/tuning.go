package golf

import (
	"fmt"
	"math"
)

// Tuning holds the physics and input constants of the simulation.
// One simulation step is one fixed tick: velocities are world units per step
// and every rate below is applied once per step.
type Tuning struct {
	BallRadius float64

	// Integration and contact response.
	Gravity             float64 // downward acceleration per step
	GroundRestitution   float64 // vertical bounce factor on the ground plane
	WallDampening       float64 // speed kept after an obstacle reflection
	WalkableNormalY     float64 // contact normals steeper than this are walls
	FlatNormalY         float64 // surface normals flatter than this add no slope force
	GrassFriction       float64
	SandFriction        float64
	SandHeightTolerance float64
	VerticalSnap        float64 // |vy| below this is zeroed on a surface
	ContactEpsilon      float64 // separation kept after a contact
	MaxCollisionPasses  int

	// Aim and charge.
	AimStep    float64 // radians per rotate command
	ChargeRate float64 // power per step while charging
	MaxPower   float64
	MinPower   float64 // releases below this are cancelled
	PowerScale float64 // launch speed per unit of power

	// Hole proximity.
	SinkSpeedSq        float64
	FunnelRadiusFactor float64 // funnel radius as a multiple of the hole radius
	FunnelSpeedSq      float64
	FunnelPull         float64
	FunnelDamping      float64
	SinkShrink         float64 // visual scale factor per sinking step
	SinkDrop           float64 // height lost per sinking step
	MinVisualScale     float64

	// Bounds and rest.
	FloorY      float64
	StopSpeedSq float64
}

// DefaultTuning returns the stock constants of the game.
func DefaultTuning() Tuning {
	return Tuning{
		BallRadius: 0.15,

		Gravity:             0.01,
		GroundRestitution:   0.3,
		WallDampening:       0.7,
		WalkableNormalY:     0.7,
		FlatNormalY:         0.99,
		GrassFriction:       0.98,
		SandFriction:        0.8,
		SandHeightTolerance: 0.2,
		VerticalSnap:        0.01,
		ContactEpsilon:      0.0015,
		MaxCollisionPasses:  4,

		AimStep:    math.Pi / 45,
		ChargeRate: 0.75,
		MaxPower:   100,
		MinPower:   5,
		PowerScale: 0.007,

		SinkSpeedSq:        0.05,
		FunnelRadiusFactor: 2.5,
		FunnelSpeedSq:      0.5,
		FunnelPull:         0.0035,
		FunnelDamping:      0.975,
		SinkShrink:         0.95,
		SinkDrop:           0.05,
		MinVisualScale:     0.1,

		FloorY:      -2,
		StopSpeedSq: 0.0001,
	}
}

// Validate checks that the constants keep the simulation stable.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"ball_radius", t.BallRadius},
		{"gravity", t.Gravity},
		{"charge_rate", t.ChargeRate},
		{"max_power", t.MaxPower},
		{"power_scale", t.PowerScale},
		{"aim_step", t.AimStep},
	}
	if t.SinkDrop < 0 {
		return ValidationError{Code: "INVALID_TUNING", Message: fmt.Sprintf("sink_drop must not be negative, got %v", t.SinkDrop)}
	}
	for _, p := range positive {
		if p.v <= 0 {
			return ValidationError{Code: "INVALID_TUNING", Message: fmt.Sprintf("%s must be positive, got %v", p.name, p.v)}
		}
	}

	factors := []struct {
		name string
		v    float64
	}{
		{"ground_restitution", t.GroundRestitution},
		{"wall_dampening", t.WallDampening},
		{"grass_friction", t.GrassFriction},
		{"sand_friction", t.SandFriction},
		{"funnel_damping", t.FunnelDamping},
		{"sink_shrink", t.SinkShrink},
	}
	for _, f := range factors {
		if f.v < 0 || f.v > 1 {
			return ValidationError{Code: "INVALID_TUNING", Message: fmt.Sprintf("%s must be within [0,1], got %v", f.name, f.v)}
		}
	}

	if t.MinPower < 0 || t.MinPower > t.MaxPower {
		return ValidationError{Code: "INVALID_TUNING", Message: fmt.Sprintf("min_power %v outside [0,%v]", t.MinPower, t.MaxPower)}
	}
	if t.MaxCollisionPasses < 1 {
		return ValidationError{Code: "INVALID_TUNING", Message: "max_collision_passes must be at least 1"}
	}
	return nil
}
