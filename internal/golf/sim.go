package golf

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// StepResult describes what happened during one simulation step.
type StepResult struct {
	Tick        uint64
	Paused      bool
	Contact     Contact
	Hole        HoleOutcome
	OutOfBounds bool
	Stopped     bool
}

// Snapshot is a comparable copy of the mutable simulation state.
type Snapshot struct {
	Tick uint64
	Ball Ball
	Aim  Aim
	Sunk bool
}

// Simulation runs one ball on one level.
type Simulation struct {
	geom   *Geometry
	tuning Tuning
	events EventPort
	pause  PauseSource

	resolver *CollisionResolver
	hole     *HoleController
	bounds   *BoundsMonitor

	ball Ball
	aim  Aim
	sunk bool
	tick uint64
}

// NewSimulation validates the level and tuning and places the ball on the tee.
// A nil events or pause falls back to a no-op port and a never-paused source.
func NewSimulation(def Geometry, tuning Tuning, events EventPort, pause PauseSource) (*Simulation, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	geom, err := NewGeometry(def)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = NopEvents{}
	}
	if pause == nil {
		pause = neverPaused{}
	}

	s := &Simulation{
		geom:     geom,
		tuning:   tuning,
		events:   events,
		pause:    pause,
		resolver: NewCollisionResolver(geom, tuning),
		hole:     NewHoleController(geom, tuning),
		bounds:   NewBoundsMonitor(geom, tuning),
	}
	s.Reset()
	return s, nil
}

// Reset puts a fresh ball on the tee and clears the aim.
func (s *Simulation) Reset() {
	s.ball = newBall(s.geom.Start, s.tuning.BallRadius)
	s.aim = newAim()
	s.sunk = false
	s.tick = 0
}

// Geometry returns the validated level.
func (s *Simulation) Geometry() *Geometry { return s.geom }

// Tuning returns the constants the simulation runs with.
func (s *Simulation) Tuning() Tuning { return s.tuning }

// Ball returns a copy of the ball state.
func (s *Simulation) Ball() Ball { return s.ball }

// Aim returns a copy of the aim state.
func (s *Simulation) Aim() Aim { return s.aim }

// Sunk reports whether the ball has dropped into the hole.
func (s *Simulation) Sunk() bool { return s.sunk }

// Snapshot captures the mutable state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{Tick: s.tick, Ball: s.ball, Aim: s.aim, Sunk: s.sunk}
}

// Step advances the simulation by one fixed tick.
func (s *Simulation) Step() StepResult {
	// 1. Pause suspends everything
	if s.pause.Paused() {
		return StepResult{Tick: s.tick, Paused: true}
	}
	s.tick++
	res := StepResult{Tick: s.tick}

	// 2. A holed ball only animates
	if s.ball.Phase == Sinking {
		s.hole.Animate(&s.ball)
		return res
	}

	// 3. Charge
	if s.aim.tickCharge(1, s.tuning.ChargeRate, s.tuning.MaxPower) {
		s.events.OnPowerChanged(s.aim.Power)
	}

	// 4. Nothing to integrate at rest
	if s.ball.Phase != Moving {
		return res
	}

	// 5-6. Gravity, then semi-implicit Euler
	s.ball.Velocity[1] -= s.tuning.Gravity
	start := s.ball.Position
	s.ball.Position = start.Add(s.ball.Velocity)

	// 7. Collision
	res.Contact = s.resolver.Resolve(&s.ball, start)

	// 8. Hole
	res.Hole = s.hole.Update(&s.ball)
	if res.Hole == HoleSunk {
		s.sunk = true
		s.events.OnHoleComplete()
		return res
	}

	// 9. Bounds
	if s.bounds.Check(&s.ball) {
		res.OutOfBounds = true
		s.events.OnStroke()
		return res
	}

	// 10. Come to rest
	if res.Contact.OnSurface && s.ball.speedSq() < s.tuning.StopSpeedSq {
		s.ball.stop()
		res.Stopped = true
	}
	return res
}

func (s *Simulation) canAim() bool {
	return !s.pause.Paused() && !s.sunk && s.ball.Phase == Stationary
}

// Rotate turns the aim by one aim step. It is ignored unless the ball is at rest.
func (s *Simulation) Rotate(t Turn) bool {
	if !s.canAim() {
		return false
	}
	angle := s.tuning.AimStep
	if t == TurnRight {
		angle = -angle
	}
	s.aim.rotate(angle)
	return true
}

// AimLeft rotates the aim counter-clockwise seen from above.
func (s *Simulation) AimLeft() bool { return s.Rotate(TurnLeft) }

// AimRight rotates the aim clockwise seen from above.
func (s *Simulation) AimRight() bool { return s.Rotate(TurnRight) }

// AimAt points the aim at a heading in radians (see Aim.Angle).
func (s *Simulation) AimAt(angle float64) bool {
	if !s.canAim() {
		return false
	}
	s.aim.Direction = mgl64.Vec3{-math.Sin(angle), 0, -math.Cos(angle)}
	return true
}

// BeginCharge starts charging a shot.
func (s *Simulation) BeginCharge() bool {
	if !s.canAim() {
		return false
	}
	return s.aim.beginCharge()
}

// Release fires the charged shot. Charges under the minimum power are
// dropped without a stroke. Calling it while not charging does nothing.
func (s *Simulation) Release() bool {
	if s.pause.Paused() || s.sunk || !s.aim.Charging {
		return false
	}

	hadPower := s.aim.Power != 0
	v, ok := s.aim.release(s.tuning.MinPower, s.tuning.PowerScale)
	if hadPower {
		s.events.OnPowerChanged(0)
	}
	if !ok {
		return false
	}

	s.ball.Velocity = v
	s.ball.Phase = Moving
	s.events.OnStroke()
	return true
}
