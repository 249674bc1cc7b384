package config

import (
	_ "embed"
)

//go:embed defaults/golf.yaml
var defaultGolfYAML []byte

// DefaultGolfConfig returns the default minigolf configuration.
func DefaultGolfConfig() GolfConfig {
	return GolfConfig{
		Ball: GolfBall{
			Radius: 0.15,
		},
		Physics: GolfPhysics{
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
			FloorY:              -2,
			StopSpeedSq:         0.0001,
		},
		Aim: GolfAim{
			StepDegrees: 4,
			ChargeRate:  0.75,
			MaxPower:    100,
			MinPower:    5,
			PowerScale:  0.007,
		},
		Hole: GolfHole{
			SinkSpeedSq:    0.05,
			FunnelSpeedSq:  0.5,
			FunnelDamping:  0.975,
			SinkShrink:     0.95,
			SinkDrop:       0.05,
			MinVisualScale: 0.1,
		},
		Gameplay: GolfGameplay{
			NextHoleDelay: 45,
			PointsPerShot: 100,
			ParAllowance:  3,
		},
		Difficulty: DifficultyConfig{
			Level: 0.5,
			Scaling: ScalingConfig{
				FunnelRadiusEasy: 3.0,
				FunnelRadiusHard: 2.0,
				FunnelPullEasy:   0.005,
				FunnelPullHard:   0.002,
				MaxStrokesEasy:   12,
				MaxStrokesHard:   8,
			},
		},
	}
}
