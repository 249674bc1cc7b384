// Package golf is the ball physics core of the game: aiming and charging a
// shot, integrating the ball, resolving contacts against the ground, oriented
// box obstacles and sandpits, pulling the ball into the hole and recovering
// from out-of-bounds shots. It has no knowledge of rendering or storage and is
// fully deterministic.
package golf

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sentinel errors for incomplete level descriptions.
var (
	ErrMissingStart = errors.New("golf: level has no start position")
	ErrMissingHole  = errors.New("golf: level has no hole position")
)

// ValidationError contains details about an invalid level or tuning.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ObstacleKind distinguishes flat-topped boxes from tilted ramps.
// Both collide identically; the kind only matters to renderers.
type ObstacleKind int

const (
	KindBox ObstacleKind = iota
	KindRamp
	KindWall
	KindTree
)

func (k ObstacleKind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindRamp:
		return "ramp"
	case KindWall:
		return "wall"
	case KindTree:
		return "tree"
	default:
		return "unknown"
	}
}

// Obstacle is an oriented box.
type Obstacle struct {
	Kind        ObstacleKind
	Position    mgl64.Vec3 // center
	HalfExtents mgl64.Vec3
	Rotation    mgl64.Vec3 // Euler angles in radians, applied X then Y then Z

	orient mgl64.Mat3 // local to world
}

// orientation builds the rotation matrix for the obstacle's Euler angles.
func orientation(euler mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Rotate3DX(euler.X()).
		Mul3(mgl64.Rotate3DY(euler.Y())).
		Mul3(mgl64.Rotate3DZ(euler.Z()))
}

// ToLocal transforms a world point into the obstacle's frame.
func (o Obstacle) ToLocal(p mgl64.Vec3) mgl64.Vec3 {
	return o.orient.Transpose().Mul3x1(p.Sub(o.Position))
}

// ToLocalDir transforms a world direction into the obstacle's frame.
func (o Obstacle) ToLocalDir(d mgl64.Vec3) mgl64.Vec3 {
	return o.orient.Transpose().Mul3x1(d)
}

// ToWorld transforms a local point back into world space.
func (o Obstacle) ToWorld(p mgl64.Vec3) mgl64.Vec3 {
	return o.orient.Mul3x1(p).Add(o.Position)
}

// ToWorldDir transforms a local direction back into world space.
func (o Obstacle) ToWorldDir(d mgl64.Vec3) mgl64.Vec3 {
	return o.orient.Mul3x1(d)
}

// CoversXZ reports whether the obstacle's footprint contains the horizontal
// point (x, z), sampled at the obstacle's own center height.
func (o Obstacle) CoversXZ(x, z float64) bool {
	l := o.ToLocal(mgl64.Vec3{x, o.Position.Y(), z})
	return math.Abs(l.X()) <= o.HalfExtents.X() &&
		math.Abs(l.Y()) <= o.HalfExtents.Y() &&
		math.Abs(l.Z()) <= o.HalfExtents.Z()
}

// Top returns the world height of the highest point of the obstacle.
func (o Obstacle) Top() float64 {
	top := math.Inf(-1)
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				c := mgl64.Vec3{sx * o.HalfExtents.X(), sy * o.HalfExtents.Y(), sz * o.HalfExtents.Z()}
				top = math.Max(top, o.ToWorld(c).Y())
			}
		}
	}
	return top
}

// Sandpit is a circular patch of sand lying on the ground.
type Sandpit struct {
	Position mgl64.Vec3
	Radius   float64
}

// Geometry is the immutable description of one level.
type Geometry struct {
	Start      mgl64.Vec3
	Hole       mgl64.Vec3
	HoleRadius float64
	Obstacles  []Obstacle
	Sandpits   []Sandpit
	ArenaHalfX float64
	ArenaHalfZ float64
}

// NewGeometry validates a level description and returns a private copy with
// obstacle orientations precomputed.
func NewGeometry(def Geometry) (*Geometry, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	g := def
	g.Obstacles = make([]Obstacle, len(def.Obstacles))
	for i, o := range def.Obstacles {
		o.orient = orientation(o.Rotation)
		g.Obstacles[i] = o
	}
	g.Sandpits = append([]Sandpit(nil), def.Sandpits...)
	return &g, nil
}

// Validate checks the description for values the simulation cannot run with.
func (g Geometry) Validate() error {
	if !finite(g.Start) {
		return ValidationError{Code: "INVALID_START", Message: fmt.Sprintf("start %v is not finite", g.Start)}
	}
	if !finite(g.Hole) {
		return ValidationError{Code: "INVALID_HOLE", Message: fmt.Sprintf("hole %v is not finite", g.Hole)}
	}
	if !(g.HoleRadius > 0) {
		return ValidationError{Code: "INVALID_HOLE_RADIUS", Message: fmt.Sprintf("hole radius must be positive, got %v", g.HoleRadius)}
	}
	if !(g.ArenaHalfX > 0) || !(g.ArenaHalfZ > 0) {
		return ValidationError{Code: "INVALID_ARENA", Message: fmt.Sprintf("arena half extents must be positive, got %v x %v", g.ArenaHalfX, g.ArenaHalfZ)}
	}

	for i, o := range g.Obstacles {
		if !(o.HalfExtents.X() > 0 && o.HalfExtents.Y() > 0 && o.HalfExtents.Z() > 0) {
			return ValidationError{Code: "INVALID_OBSTACLE", Message: fmt.Sprintf("obstacle %d has non-positive half extents %v", i, o.HalfExtents)}
		}
		if !finite(o.Position) || !finite(o.Rotation) {
			return ValidationError{Code: "INVALID_OBSTACLE", Message: fmt.Sprintf("obstacle %d has a non-finite transform", i)}
		}
	}

	for i, s := range g.Sandpits {
		if !(s.Radius > 0) {
			return ValidationError{Code: "INVALID_SANDPIT", Message: fmt.Sprintf("sandpit %d radius must be positive, got %v", i, s.Radius)}
		}
	}
	return nil
}

// InArena reports whether a point lies within the arena's horizontal extents.
func (g *Geometry) InArena(p mgl64.Vec3) bool {
	return math.Abs(p.X()) <= g.ArenaHalfX && math.Abs(p.Z()) <= g.ArenaHalfZ
}

func finite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
