package minigolf

import (
	"math"

	"github.com/vovakirdan/tui-minigolf/internal/config"
	"github.com/vovakirdan/tui-minigolf/internal/golf"
)

// TuningFromConfig builds simulation constants from the loaded config.
// Funnel assistance comes from the difficulty level.
func TuningFromConfig(cfg config.GolfConfig) golf.Tuning {
	diff := config.NewDifficultyManager(cfg.Difficulty)

	t := golf.DefaultTuning()
	t.BallRadius = cfg.Ball.Radius

	p := cfg.Physics
	t.Gravity = p.Gravity
	t.GroundRestitution = p.GroundRestitution
	t.WallDampening = p.WallDampening
	t.WalkableNormalY = p.WalkableNormalY
	t.FlatNormalY = p.FlatNormalY
	t.GrassFriction = p.GrassFriction
	t.SandFriction = p.SandFriction
	t.SandHeightTolerance = p.SandHeightTolerance
	t.VerticalSnap = p.VerticalSnap
	t.ContactEpsilon = p.ContactEpsilon
	t.MaxCollisionPasses = p.MaxCollisionPasses
	t.FloorY = p.FloorY
	t.StopSpeedSq = p.StopSpeedSq

	a := cfg.Aim
	t.AimStep = a.StepDegrees * math.Pi / 180
	t.ChargeRate = a.ChargeRate
	t.MaxPower = a.MaxPower
	t.MinPower = a.MinPower
	t.PowerScale = a.PowerScale

	h := cfg.Hole
	t.SinkSpeedSq = h.SinkSpeedSq
	t.FunnelSpeedSq = h.FunnelSpeedSq
	t.FunnelDamping = h.FunnelDamping
	t.SinkShrink = h.SinkShrink
	t.SinkDrop = h.SinkDrop
	t.MinVisualScale = h.MinVisualScale
	t.FunnelRadiusFactor = diff.FunnelRadiusFactor()
	t.FunnelPull = diff.FunnelPull()

	return t
}
