// Package config provides YAML-based configuration loading for the minigolf
// game: physics and aim tuning, hole assistance and round rules.
package config

// GolfConfig contains all configuration for the minigolf game.
type GolfConfig struct {
	Ball       GolfBall         `yaml:"ball"`
	Physics    GolfPhysics      `yaml:"physics"`
	Aim        GolfAim          `yaml:"aim"`
	Hole       GolfHole         `yaml:"hole"`
	Gameplay   GolfGameplay     `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GolfBall defines the ball.
type GolfBall struct {
	Radius float64 `yaml:"radius"`
}

// GolfPhysics defines integration and contact parameters.
// Velocities are world units per tick.
type GolfPhysics struct {
	Gravity             float64 `yaml:"gravity"`
	GroundRestitution   float64 `yaml:"ground_restitution"`
	WallDampening       float64 `yaml:"wall_dampening"`
	WalkableNormalY     float64 `yaml:"walkable_normal_y"`
	FlatNormalY         float64 `yaml:"flat_normal_y"`
	GrassFriction       float64 `yaml:"grass_friction"`
	SandFriction        float64 `yaml:"sand_friction"`
	SandHeightTolerance float64 `yaml:"sand_height_tolerance"`
	VerticalSnap        float64 `yaml:"vertical_snap"`
	ContactEpsilon      float64 `yaml:"contact_epsilon"`
	MaxCollisionPasses  int     `yaml:"max_collision_passes"`
	FloorY              float64 `yaml:"floor_y"`
	StopSpeedSq         float64 `yaml:"stop_speed_sq"`
}

// GolfAim defines aiming and shot charging.
type GolfAim struct {
	StepDegrees float64 `yaml:"step_degrees"`
	ChargeRate  float64 `yaml:"charge_rate"` // power per tick
	MaxPower    float64 `yaml:"max_power"`
	MinPower    float64 `yaml:"min_power"`
	PowerScale  float64 `yaml:"power_scale"`
}

// GolfHole defines sinking and the sink animation.
// Funnel radius and pull come from the difficulty scaling.
type GolfHole struct {
	SinkSpeedSq    float64 `yaml:"sink_speed_sq"`
	FunnelSpeedSq  float64 `yaml:"funnel_speed_sq"`
	FunnelDamping  float64 `yaml:"funnel_damping"`
	SinkShrink     float64 `yaml:"sink_shrink"`
	SinkDrop       float64 `yaml:"sink_drop"`
	MinVisualScale float64 `yaml:"min_visual_scale"`
}

// GolfGameplay defines round rules and scoring.
type GolfGameplay struct {
	NextHoleDelay int `yaml:"next_hole_delay"` // ticks between the ball vanishing and the next hole
	PointsPerShot int `yaml:"points_per_shot"` // points for each stroke saved against the allowance
	ParAllowance  int `yaml:"par_allowance"`   // strokes over par that still score
}
