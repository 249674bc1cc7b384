package golf

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var up = mgl64.Vec3{0, 1, 0}

// Contact summarizes what the ball touched during one step.
type Contact struct {
	OnSurface bool
	InSand    bool
	WallHit   bool
	Normal    mgl64.Vec3 // supporting surface normal, +Y unless on a ramp
}

// CollisionResolver settles the ball against the ground, the obstacles and
// the sandpits of a level, then applies friction and slope forces.
type CollisionResolver struct {
	geom   *Geometry
	tuning Tuning
}

// NewCollisionResolver creates a resolver for a validated geometry.
func NewCollisionResolver(g *Geometry, t Tuning) *CollisionResolver {
	return &CollisionResolver{geom: g, tuning: t}
}

// Resolve runs after the ball has been integrated from start to its current
// position. It corrects position and velocity and reports the contact.
func (r *CollisionResolver) Resolve(b *Ball, start mgl64.Vec3) Contact {
	c := Contact{Normal: up}

	// 1. Ground plane
	r.resolveGround(b, &c)

	// 2. Obstacles
	r.resolveObstacles(b, start, &c)

	// 3. Sand, unless a wall bounce happened this step
	if !c.WallHit {
		r.resolveSand(b, &c)
	}

	// 4. Friction and slope
	r.applySurfaceForces(b, &c)

	return c
}

func (r *CollisionResolver) resolveGround(b *Ball, c *Contact) {
	if !r.geom.InArena(b.Position) {
		return
	}
	if b.Position.Y()-b.Radius < 0 && b.Velocity.Y() < 0 {
		b.Position[1] = b.Radius
		b.Velocity[1] *= -r.tuning.GroundRestitution
		c.OnSurface = true
		c.Normal = up
	}
}

func (r *CollisionResolver) resolveObstacles(b *Ball, start mgl64.Vec3, c *Contact) {
	obstacles := r.geom.Obstacles
	if len(obstacles) == 0 {
		return
	}

	eps := r.tuning.ContactEpsilon
	cur := start
	remaining := b.Position.Sub(start)
	frac := 1.0

	// Leave any box the segment starts inside of.
	for i := range obstacles {
		n, pushed, ok := staticOverlap(&obstacles[i], cur, b.Radius)
		if !ok {
			continue
		}
		cur = pushed.Add(n.Mul(eps))
		if r.respond(b, n, c) {
			remaining = b.Velocity.Mul(frac)
		}
	}

	for pass := 0; pass < r.tuning.MaxCollisionPasses; pass++ {
		if remaining == (mgl64.Vec3{}) {
			break
		}
		hit, ok := earliestHit(obstacles, cur, remaining, b.Radius)
		if !ok {
			cur = cur.Add(remaining)
			remaining = mgl64.Vec3{}
			break
		}
		cur = cur.Add(remaining.Mul(hit.t)).Add(hit.normal.Mul(eps))
		r.respond(b, hit.normal, c)
		frac *= 1 - hit.t
		remaining = b.Velocity.Mul(frac)
	}
	// Out of passes: the ball stays at its last contact point.

	b.Position = cur
}

// respond reflects the velocity about a world normal and dampens it, then
// classifies the contact: faces pointing mostly up support the ball, the
// rest are walls. It reports whether the velocity changed.
func (r *CollisionResolver) respond(b *Ball, n mgl64.Vec3, c *Contact) bool {
	walkable := n.Y() > r.tuning.WalkableNormalY
	if walkable {
		c.OnSurface = true
		c.Normal = n
	}

	vn := b.Velocity.Dot(n)
	if vn >= 0 {
		return false
	}
	b.Velocity = b.Velocity.Sub(n.Mul(2 * vn)).Mul(r.tuning.WallDampening)
	if !walkable {
		c.WallHit = true
	}
	return true
}

func (r *CollisionResolver) resolveSand(b *Ball, c *Contact) {
	for _, s := range r.geom.Sandpits {
		dx := b.Position.X() - s.Position.X()
		dz := b.Position.Z() - s.Position.Z()
		if dx*dx+dz*dz >= s.Radius*s.Radius {
			continue
		}
		if math.Abs(b.Position.Y()-(s.Position.Y()+b.Radius)) < r.tuning.SandHeightTolerance {
			c.InSand = true
			c.OnSurface = true
			return
		}
	}
}

func (r *CollisionResolver) applySurfaceForces(b *Ball, c *Contact) {
	if !c.OnSurface {
		return
	}

	friction := r.tuning.GrassFriction
	if c.InSand {
		friction = r.tuning.SandFriction
	}
	b.Velocity[0] *= friction
	b.Velocity[2] *= friction

	if math.Abs(b.Velocity.Y()) < r.tuning.VerticalSnap {
		b.Velocity[1] = 0
	}

	if c.Normal.Y() <= r.tuning.FlatNormalY {
		g := mgl64.Vec3{0, -r.tuning.Gravity, 0}
		b.Velocity = b.Velocity.Add(g.Sub(c.Normal.Mul(g.Dot(c.Normal))))
	}
}

type sweepHit struct {
	t      float64
	normal mgl64.Vec3
	index  int
}

// earliestHit returns the first obstacle the moving ball meets along d.
// Equal times keep the lower obstacle index.
func earliestHit(obstacles []Obstacle, p, d mgl64.Vec3, radius float64) (sweepHit, bool) {
	best := sweepHit{t: math.Inf(1), index: -1}
	for i := range obstacles {
		t, n, ok := sweep(&obstacles[i], p, d, radius)
		if !ok || math.IsNaN(t) {
			continue
		}
		if t < best.t {
			best = sweepHit{t: t, normal: n, index: i}
		}
	}
	return best, best.index >= 0
}

// sweep intersects the segment p→p+d with the box grown by radius, using a
// slab test in the obstacle's frame. It returns the entry time in [0,1] and
// the world normal of the entered face.
func sweep(o *Obstacle, p, d mgl64.Vec3, radius float64) (float64, mgl64.Vec3, bool) {
	lp := o.ToLocal(p)
	ld := o.ToLocalDir(d)
	h := o.HalfExtents.Add(mgl64.Vec3{radius, radius, radius})

	tEnter, tExit := math.Inf(-1), math.Inf(1)
	axis, sign := -1, 0.0

	for i := 0; i < 3; i++ {
		if math.Abs(ld[i]) < 1e-12 {
			if lp[i] < -h[i] || lp[i] > h[i] {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		inv := 1 / ld[i]
		t1 := (-h[i] - lp[i]) * inv
		t2 := (h[i] - lp[i]) * inv
		s := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			s = 1
		}
		if t1 > tEnter {
			tEnter, axis, sign = t1, i, s
		}
		if t2 < tExit {
			tExit = t2
		}
		if tEnter > tExit {
			return 0, mgl64.Vec3{}, false
		}
	}

	// Starting inside the grown box is left to the overlap push-out.
	if axis < 0 || tEnter < 0 || tEnter > 1 {
		return 0, mgl64.Vec3{}, false
	}

	var nl mgl64.Vec3
	nl[axis] = sign
	return tEnter, o.ToWorldDir(nl), true
}

// staticOverlap reports whether a ball at p penetrates the box and, if so,
// the push-out normal and the corrected center, both in world space.
func staticOverlap(o *Obstacle, p mgl64.Vec3, radius float64) (mgl64.Vec3, mgl64.Vec3, bool) {
	lp := o.ToLocal(p)
	h := o.HalfExtents

	var closest mgl64.Vec3
	for i := 0; i < 3; i++ {
		closest[i] = math.Max(-h[i], math.Min(h[i], lp[i]))
	}
	diff := lp.Sub(closest)
	distSq := diff.Dot(diff)
	if distSq >= radius*radius {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}

	var nl, pushed mgl64.Vec3
	if distSq > 1e-18 {
		dist := math.Sqrt(distSq)
		nl = diff.Mul(1 / dist)
		pushed = closest.Add(nl.Mul(radius))
	} else {
		// Center inside the box: exit through the nearest face.
		axis, least := 0, math.Inf(1)
		for i := 0; i < 3; i++ {
			if pen := h[i] - math.Abs(lp[i]); pen < least {
				axis, least = i, pen
			}
		}
		s := 1.0
		if lp[axis] < 0 {
			s = -1
		}
		nl[axis] = s
		pushed = lp
		pushed[axis] = s * (h[axis] + radius)
	}
	return o.ToWorldDir(nl), o.ToWorld(pushed), true
}
