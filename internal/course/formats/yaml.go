// Package formats provides hole file format parsers.
package formats

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-minigolf/internal/golf"
)

// DefaultHoleRadius is used when a file does not set hole_radius.
const DefaultHoleRadius = 0.25

// YAMLHole represents the YAML structure for a hole file.
type YAMLHole struct {
	ID         string            `yaml:"id"`
	Name       string            `yaml:"name"`
	Par        int               `yaml:"par"`
	Start      []float64         `yaml:"start"`
	Hole       []float64         `yaml:"hole"`
	HoleRadius *float64          `yaml:"hole_radius,omitempty"`
	Obstacles  []YAMLObstacle    `yaml:"obstacles,omitempty"`
	Sandpits   []YAMLSandpit     `yaml:"sandpits,omitempty"`
	Trees      []YAMLTree        `yaml:"trees,omitempty"`
	Arena      *YAMLArena        `yaml:"arena,omitempty"`
	Metadata   map[string]string `yaml:"metadata,omitempty"`
}

// YAMLObstacle is a box or ramp. Size holds full extents.
type YAMLObstacle struct {
	Type     string    `yaml:"type"`
	Position []float64 `yaml:"position"`
	Size     []float64 `yaml:"size"`
	Rotation []float64 `yaml:"rotation,omitempty"`
}

// YAMLSandpit is a circular sand patch.
type YAMLSandpit struct {
	Position []float64 `yaml:"position"`
	Radius   float64   `yaml:"radius"`
}

// YAMLTree is a tree standing on the ground.
type YAMLTree struct {
	Position []float64 `yaml:"position"`
}

// YAMLArena overrides the playing area and its boundary walls.
type YAMLArena struct {
	HalfX         float64 `yaml:"half_x"`
	HalfZ         float64 `yaml:"half_z"`
	WallHeight    float64 `yaml:"wall_height"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// Obstacle is a parsed obstacle with full extents.
type Obstacle struct {
	Kind     golf.ObstacleKind
	Position mgl64.Vec3
	Size     mgl64.Vec3
	Rotation mgl64.Vec3
}

// Arena is the parsed playing area. Zero values mean defaults.
type Arena struct {
	HalfX         float64
	HalfZ         float64
	WallHeight    float64
	WallThickness float64
}

// Hole represents a parsed hole ready for use.
type Hole struct {
	ID        string
	Name      string
	Par       int
	Start     mgl64.Vec3
	Cup       mgl64.Vec3
	CupRadius float64
	Obstacles []Obstacle
	Sandpits  []golf.Sandpit
	Trees     []mgl64.Vec3
	Arena     Arena
	Metadata  map[string]string
}

// ParseYAML parses a YAML hole file.
func ParseYAML(data []byte) (Hole, error) {
	var yh YAMLHole
	if err := yaml.Unmarshal(data, &yh); err != nil {
		return Hole{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yh.ID == "" {
		return Hole{}, fmt.Errorf("hole has no id")
	}
	if yh.Par < 1 {
		return Hole{}, fmt.Errorf("hole %s: par must be at least 1, got %d", yh.ID, yh.Par)
	}
	if len(yh.Start) == 0 {
		return Hole{}, fmt.Errorf("hole %s: %w", yh.ID, golf.ErrMissingStart)
	}
	if len(yh.Hole) == 0 {
		return Hole{}, fmt.Errorf("hole %s: %w", yh.ID, golf.ErrMissingHole)
	}

	h := Hole{
		ID:        yh.ID,
		Name:      yh.Name,
		Par:       yh.Par,
		CupRadius: DefaultHoleRadius,
		Metadata:  yh.Metadata,
	}
	if h.Name == "" {
		h.Name = yh.ID
	}
	if yh.HoleRadius != nil {
		h.CupRadius = *yh.HoleRadius
	}

	var err error
	if h.Start, err = vec3(yh.Start, "start"); err != nil {
		return Hole{}, fmt.Errorf("hole %s: %w", yh.ID, err)
	}
	if h.Cup, err = vec3(yh.Hole, "hole"); err != nil {
		return Hole{}, fmt.Errorf("hole %s: %w", yh.ID, err)
	}

	for i, o := range yh.Obstacles {
		ob, err := parseObstacle(o)
		if err != nil {
			return Hole{}, fmt.Errorf("hole %s: obstacle %d: %w", yh.ID, i, err)
		}
		h.Obstacles = append(h.Obstacles, ob)
	}

	for i, s := range yh.Sandpits {
		pos, err := vec3(s.Position, "position")
		if err != nil {
			return Hole{}, fmt.Errorf("hole %s: sandpit %d: %w", yh.ID, i, err)
		}
		h.Sandpits = append(h.Sandpits, golf.Sandpit{Position: pos, Radius: s.Radius})
	}

	for i, t := range yh.Trees {
		pos, err := vec3(t.Position, "position")
		if err != nil {
			return Hole{}, fmt.Errorf("hole %s: tree %d: %w", yh.ID, i, err)
		}
		h.Trees = append(h.Trees, pos)
	}

	if yh.Arena != nil {
		h.Arena = Arena(*yh.Arena)
	}

	return h, nil
}

func parseObstacle(o YAMLObstacle) (Obstacle, error) {
	var ob Obstacle
	switch o.Type {
	case "", "box":
		ob.Kind = golf.KindBox
	case "ramp":
		ob.Kind = golf.KindRamp
	default:
		return ob, fmt.Errorf("unknown obstacle type %q", o.Type)
	}

	var err error
	if ob.Position, err = vec3(o.Position, "position"); err != nil {
		return ob, err
	}
	if ob.Size, err = vec3(o.Size, "size"); err != nil {
		return ob, err
	}
	if len(o.Rotation) > 0 {
		if ob.Rotation, err = vec3(o.Rotation, "rotation"); err != nil {
			return ob, err
		}
	}
	return ob, nil
}

func vec3(v []float64, field string) (mgl64.Vec3, error) {
	if len(v) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("%s needs 3 components, got %d", field, len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
