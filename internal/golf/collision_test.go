package golf

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// rollingSim places a moving ball on the ground at pos with velocity v.
func rollingSim(t *testing.T, g Geometry, pos, v mgl64.Vec3) (*Simulation, *recorder) {
	t.Helper()
	sim, rec := newTestSim(t, g)
	sim.ball.Position = pos
	sim.ball.Velocity = v
	sim.ball.Phase = Moving
	return sim, rec
}

func wallAcrossZ(rotY float64) Obstacle {
	return Obstacle{
		Kind:        KindWall,
		Position:    mgl64.Vec3{0, 0.5, 0},
		HalfExtents: mgl64.Vec3{2, 0.5, 0.25},
		Rotation:    mgl64.Vec3{0, rotY, 0},
	}
}

func TestGroundBounceDampsVerticalSpeed(t *testing.T) {
	sim, _ := rollingSim(t, straightPutt(), mgl64.Vec3{0, 0.2, 0}, mgl64.Vec3{0, -0.2, 0})
	res := sim.Step()

	b := sim.Ball()
	if !res.Contact.OnSurface {
		t.Fatal("expected ground contact")
	}
	if b.Position.Y() != b.Radius {
		t.Errorf("y = %v, expected clamp to radius", b.Position.Y())
	}
	// -0.21 reflected with restitution 0.3
	if !approx(b.Velocity.Y(), 0.063, 1e-12) {
		t.Errorf("vy = %v, expected 0.063", b.Velocity.Y())
	}
}

func TestWallBounceReflectsAndLosesEnergy(t *testing.T) {
	g := straightPutt()
	g.Obstacles = []Obstacle{wallAcrossZ(0)}
	sim, _ := rollingSim(t, g, mgl64.Vec3{0, 0.15, 0.6}, mgl64.Vec3{0, 0, -0.5})

	res := sim.Step()
	b := sim.Ball()

	if !res.Contact.WallHit {
		t.Fatal("expected a wall hit")
	}
	if b.Velocity.Z() <= 0 {
		t.Errorf("vz = %v, expected the ball to bounce back", b.Velocity.Z())
	}
	// reflection keeps 0.7, grass friction keeps 0.98
	if !approx(b.Velocity.Z(), 0.5*0.7*0.98, 1e-9) {
		t.Errorf("vz = %v, expected %v", b.Velocity.Z(), 0.5*0.7*0.98)
	}
	if b.Speed() > 0.5 {
		t.Errorf("speed grew from 0.5 to %v", b.Speed())
	}
	if b.Position.Z() < 0.25+b.Radius {
		t.Errorf("ball ended inside the wall at z=%v", b.Position.Z())
	}
}

func TestRotatedWallDeflects(t *testing.T) {
	g := straightPutt()
	g.Obstacles = []Obstacle{wallAcrossZ(math.Pi / 4)}
	sim, _ := rollingSim(t, g, mgl64.Vec3{0, 0.15, 1.0}, mgl64.Vec3{0, 0, -0.5})

	res := sim.Step()
	b := sim.Ball()

	if !res.Contact.WallHit {
		t.Fatal("expected a wall hit")
	}
	if b.Velocity.X() <= 0 {
		t.Errorf("vx = %v, expected deflection towards +X", b.Velocity.X())
	}
	if !approx(b.Velocity.Z(), 0, 1e-9) {
		t.Errorf("vz = %v, expected 0 after a 45 degree bounce", b.Velocity.Z())
	}
	if b.Speed() >= 0.5 {
		t.Errorf("speed %v should drop below the incoming 0.5", b.Speed())
	}
}

func TestBounceNeverAddsEnergy(t *testing.T) {
	angles := []float64{0, 0.3, math.Pi / 4, 1.2, math.Pi / 2, 2.5}
	for _, rot := range angles {
		g := straightPutt()
		g.Obstacles = []Obstacle{wallAcrossZ(rot)}
		for _, vz := range []float64{-0.1, -0.4, -0.7} {
			sim, _ := rollingSim(t, g, mgl64.Vec3{0.3, 0.15, 1.2}, mgl64.Vec3{0.05, 0, vz})
			before := math.Hypot(0.05, vz)
			for i := 0; i < 10; i++ {
				res := sim.Step()
				if res.Contact.WallHit && sim.Ball().Speed() > before+1e-12 {
					t.Errorf("rot=%v vz=%v: speed %v after bounce exceeds %v", rot, vz, sim.Ball().Speed(), before)
				}
				before = math.Max(sim.Ball().Speed(), 0)
			}
		}
	}
}

func TestLandingOnBoxTopIsWalkable(t *testing.T) {
	g := straightPutt()
	g.Obstacles = []Obstacle{{
		Position:    mgl64.Vec3{0, 0.5, 0},
		HalfExtents: mgl64.Vec3{1, 0.5, 1},
	}}
	sim, _ := rollingSim(t, g, mgl64.Vec3{0, 1.2, 0}, mgl64.Vec3{0.1, -0.3, 0})

	res := sim.Step()
	b := sim.Ball()

	if !res.Contact.OnSurface || res.Contact.WallHit {
		t.Fatalf("contact = %+v, expected walkable surface", res.Contact)
	}
	if !approxVec(res.Contact.Normal, mgl64.Vec3{0, 1, 0}, 1e-12) {
		t.Errorf("normal = %v, expected +Y", res.Contact.Normal)
	}
	// Reflected and dampened like any obstacle hit, then grass friction.
	if !approx(b.Velocity.Y(), 0.31*0.7, 1e-9) {
		t.Errorf("vy = %v, expected %v", b.Velocity.Y(), 0.31*0.7)
	}
	if !approx(b.Velocity.X(), 0.1*0.7*0.98, 1e-12) {
		t.Errorf("vx = %v, expected %v", b.Velocity.X(), 0.1*0.7*0.98)
	}
	if b.Position.Y() < 1+b.Radius {
		t.Errorf("ball sank into the box top: y=%v", b.Position.Y())
	}
}

func TestRampContactDampensLikeWall(t *testing.T) {
	tuning := DefaultTuning()
	g, err := NewGeometry(straightPutt())
	if err != nil {
		t.Fatal(err)
	}
	r := NewCollisionResolver(g, tuning)

	ramp := mgl64.Vec3{0, math.Cos(0.25), math.Sin(0.25)}
	wall := mgl64.Vec3{0, 0, 1}
	cases := []struct {
		name     string
		normal   mgl64.Vec3
		onGround bool
		wallHit  bool
	}{
		{"ramp face", ramp, true, false},
		{"wall face", wall, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := mgl64.Vec3{0.05, -0.1, -0.3}
			b := Ball{Radius: 0.15, Velocity: v, Phase: Moving}
			c := Contact{Normal: up}

			if !r.respond(&b, tc.normal, &c) {
				t.Fatal("approaching contact should change the velocity")
			}
			want := v.Sub(tc.normal.Mul(2 * v.Dot(tc.normal))).Mul(tuning.WallDampening)
			if !approxVec(b.Velocity, want, 1e-12) {
				t.Errorf("velocity = %v, want %v", b.Velocity, want)
			}
			if c.OnSurface != tc.onGround || c.WallHit != tc.wallHit {
				t.Errorf("contact = %+v", c)
			}
			if tc.onGround && c.Normal != tc.normal {
				t.Errorf("normal = %v, want %v", c.Normal, tc.normal)
			}
		})
	}
}

func TestSandSlowsTheBall(t *testing.T) {
	g := straightPutt()
	g.Sandpits = []Sandpit{{Position: mgl64.Vec3{0, 0.02, 0}, Radius: 1.5}}
	sim, _ := rollingSim(t, g, mgl64.Vec3{0, 0.15, 0.5}, mgl64.Vec3{0, 0, -0.2})

	res := sim.Step()
	if !res.Contact.InSand {
		t.Fatal("expected sand contact")
	}
	if !approx(sim.Ball().Velocity.Z(), -0.16, 1e-12) {
		t.Errorf("vz = %v, expected -0.16", sim.Ball().Velocity.Z())
	}

	grass, _ := rollingSim(t, straightPutt(), mgl64.Vec3{0, 0.15, 0.5}, mgl64.Vec3{0, 0, -0.2})
	grass.Step()
	if !approx(grass.Ball().Velocity.Z(), -0.196, 1e-12) {
		t.Errorf("grass vz = %v, expected -0.196", grass.Ball().Velocity.Z())
	}
}

func TestSandIgnoredOnWallBounce(t *testing.T) {
	g := straightPutt()
	g.Obstacles = []Obstacle{wallAcrossZ(0)}
	g.Sandpits = []Sandpit{{Position: mgl64.Vec3{0, 0.02, 0.6}, Radius: 1}}
	sim, _ := rollingSim(t, g, mgl64.Vec3{0, 0.15, 0.6}, mgl64.Vec3{0, 0, -0.5})

	res := sim.Step()
	if !res.Contact.WallHit {
		t.Fatal("expected a wall hit")
	}
	if res.Contact.InSand {
		t.Error("sand must not apply in a step with a wall bounce")
	}
}

func TestSlopeAddsTangentialGravity(t *testing.T) {
	g, err := NewGeometry(straightPutt())
	if err != nil {
		t.Fatal(err)
	}
	r := NewCollisionResolver(g, DefaultTuning())

	n := mgl64.Vec3{0, math.Cos(0.3), math.Sin(0.3)}
	b := Ball{Radius: 0.15, Phase: Moving}
	c := Contact{OnSurface: true, Normal: n}
	r.applySurfaceForces(&b, &c)

	if b.Velocity.Z() <= 0 {
		t.Errorf("vz = %v, expected the ball to roll down the slope", b.Velocity.Z())
	}
	if !approx(b.Velocity.Dot(n), 0, 1e-12) {
		t.Errorf("slope force has a normal component: %v", b.Velocity.Dot(n))
	}

	flat := Ball{Radius: 0.15, Phase: Moving}
	r.applySurfaceForces(&flat, &Contact{OnSurface: true, Normal: up})
	if flat.Velocity != (mgl64.Vec3{}) {
		t.Errorf("flat ground added velocity %v", flat.Velocity)
	}
}

func TestStaticOverlapPushOut(t *testing.T) {
	g := straightPutt()
	g.Obstacles = []Obstacle{{Position: mgl64.Vec3{}, HalfExtents: mgl64.Vec3{1, 1, 1}}}
	geom, err := NewGeometry(g)
	if err != nil {
		t.Fatal(err)
	}
	o := &geom.Obstacles[0]

	tests := []struct {
		name   string
		center mgl64.Vec3
		normal mgl64.Vec3
		pushed mgl64.Vec3
	}{
		{"touching face", mgl64.Vec3{1.1, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1.15, 0, 0}},
		{"center inside", mgl64.Vec3{0, 0, -0.9}, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 0, -1.15}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, p, ok := staticOverlap(o, tc.center, 0.15)
			if !ok {
				t.Fatal("expected an overlap")
			}
			if !approxVec(n, tc.normal, 1e-12) {
				t.Errorf("normal = %v, expected %v", n, tc.normal)
			}
			if !approxVec(p, tc.pushed, 1e-12) {
				t.Errorf("pushed = %v, expected %v", p, tc.pushed)
			}
		})
	}

	if _, _, ok := staticOverlap(o, mgl64.Vec3{1.2, 0, 0}, 0.15); ok {
		t.Error("a ball 0.2 away should not overlap")
	}
}

func TestEarliestHitPrefersFirstObstacleOnTie(t *testing.T) {
	g := straightPutt()
	g.Obstacles = []Obstacle{wallAcrossZ(0), wallAcrossZ(0)}
	geom, err := NewGeometry(g)
	if err != nil {
		t.Fatal(err)
	}

	hit, ok := earliestHit(geom.Obstacles, mgl64.Vec3{0, 0.15, 1}, mgl64.Vec3{0, 0, -1}, 0.15)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.index != 0 {
		t.Errorf("index = %d, expected 0", hit.index)
	}
	if !approx(hit.t, 0.6, 1e-12) {
		t.Errorf("t = %v, expected 0.6", hit.t)
	}
}

func TestNoTunnelingAtFullSpeed(t *testing.T) {
	g := straightPutt()
	g.Obstacles = []Obstacle{{
		Kind:        KindWall,
		Position:    mgl64.Vec3{0, 0.5, 0},
		HalfExtents: mgl64.Vec3{3, 0.5, 0.05},
	}}
	sim, _ := rollingSim(t, g, mgl64.Vec3{0, 0.15, 0.5}, mgl64.Vec3{0, 0, -0.7})

	for i := 0; i < 5; i++ {
		sim.Step()
		if z := sim.Ball().Position.Z(); z < 0 {
			t.Fatalf("ball passed through a thin wall: z=%v at step %d", z, i)
		}
	}
}
