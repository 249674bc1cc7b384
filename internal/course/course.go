// Package course loads minigolf holes from YAML files and turns them into
// validated level geometry. This package depends on golf but golf does not
// depend on course.
package course

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-minigolf/internal/course/formats"
	"github.com/vovakirdan/tui-minigolf/internal/golf"
)

// Arena defaults: a 50x50 green fenced by low walls.
const (
	DefaultArenaHalf     = 25.0
	DefaultWallHeight    = 0.5
	DefaultWallThickness = 0.5
)

// Tree trunks collide as boxes of this full size.
var trunkSize = mgl64.Vec3{0.6, 1.5, 0.6}

// Hole represents a complete hole definition.
type Hole struct {
	ID        string
	Name      string
	Par       int
	Start     mgl64.Vec3
	Cup       mgl64.Vec3
	CupRadius float64
	Obstacles []formats.Obstacle
	Sandpits  []golf.Sandpit
	Trees     []mgl64.Vec3
	Arena     formats.Arena
	Metadata  map[string]string
	FilePath  string
}

func fromParsed(p formats.Hole, path string) Hole {
	return Hole{
		ID:        p.ID,
		Name:      p.Name,
		Par:       p.Par,
		Start:     p.Start,
		Cup:       p.Cup,
		CupRadius: p.CupRadius,
		Obstacles: p.Obstacles,
		Sandpits:  p.Sandpits,
		Trees:     p.Trees,
		Arena:     p.Arena,
		Metadata:  p.Metadata,
		FilePath:  path,
	}
}

func (h Hole) arena() formats.Arena {
	a := h.Arena
	if a.HalfX == 0 {
		a.HalfX = DefaultArenaHalf
	}
	if a.HalfZ == 0 {
		a.HalfZ = DefaultArenaHalf
	}
	if a.WallHeight == 0 {
		a.WallHeight = DefaultWallHeight
	}
	if a.WallThickness == 0 {
		a.WallThickness = DefaultWallThickness
	}
	return a
}

// Geometry converts the hole into validated simulation geometry.
// Authored obstacles come first, then tree trunks, then the four boundary walls.
func (h Hole) Geometry() (*golf.Geometry, error) {
	a := h.arena()

	def := golf.Geometry{
		Start:      h.Start,
		Hole:       h.Cup,
		HoleRadius: h.CupRadius,
		Sandpits:   h.Sandpits,
		ArenaHalfX: a.HalfX,
		ArenaHalfZ: a.HalfZ,
	}

	for _, o := range h.Obstacles {
		def.Obstacles = append(def.Obstacles, golf.Obstacle{
			Kind:        o.Kind,
			Position:    o.Position,
			HalfExtents: o.Size.Mul(0.5),
			Rotation:    o.Rotation,
		})
	}

	for _, t := range h.Trees {
		def.Obstacles = append(def.Obstacles, golf.Obstacle{
			Kind:        golf.KindTree,
			Position:    mgl64.Vec3{t.X(), trunkSize.Y() / 2, t.Z()},
			HalfExtents: trunkSize.Mul(0.5),
		})
	}

	def.Obstacles = append(def.Obstacles, boundaryWalls(a)...)

	g, err := golf.NewGeometry(def)
	if err != nil {
		return nil, fmt.Errorf("hole %s: %w", h.ID, err)
	}
	return g, nil
}

func boundaryWalls(a formats.Arena) []golf.Obstacle {
	y := a.WallHeight / 2
	long := func(half float64) float64 { return (2*half + a.WallThickness) / 2 }
	thin := a.WallThickness / 2

	return []golf.Obstacle{
		{Kind: golf.KindWall, Position: mgl64.Vec3{0, y, a.HalfZ}, HalfExtents: mgl64.Vec3{long(a.HalfX), y, thin}},
		{Kind: golf.KindWall, Position: mgl64.Vec3{0, y, -a.HalfZ}, HalfExtents: mgl64.Vec3{long(a.HalfX), y, thin}},
		{Kind: golf.KindWall, Position: mgl64.Vec3{a.HalfX, y, 0}, HalfExtents: mgl64.Vec3{thin, y, long(a.HalfZ)}},
		{Kind: golf.KindWall, Position: mgl64.Vec3{-a.HalfX, y, 0}, HalfExtents: mgl64.Vec3{thin, y, long(a.HalfZ)}},
	}
}

// Find returns the hole with the given ID.
func Find(holes []Hole, id string) (Hole, int, error) {
	for i, h := range holes {
		if h.ID == id {
			return h, i, nil
		}
	}
	return Hole{}, -1, fmt.Errorf("hole not found: %s", id)
}

// TotalPar returns the sum of par over the holes.
func TotalPar(holes []Hole) int {
	total := 0
	for _, h := range holes {
		total += h.Par
	}
	return total
}
