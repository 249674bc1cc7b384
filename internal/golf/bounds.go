package golf

import "math"

// BoundsMonitor puts the ball back on the tee when it falls off or leaves the arena.
type BoundsMonitor struct {
	geom   *Geometry
	tuning Tuning
}

// NewBoundsMonitor creates a monitor for a validated geometry.
func NewBoundsMonitor(g *Geometry, t Tuning) *BoundsMonitor {
	return &BoundsMonitor{geom: g, tuning: t}
}

// OutOfBounds reports whether any bounds condition holds for the ball.
func (m *BoundsMonitor) OutOfBounds(b Ball) bool {
	p := b.Position
	return p.Y() < m.tuning.FloorY ||
		math.Abs(p.X()) > m.geom.ArenaHalfX ||
		math.Abs(p.Z()) > m.geom.ArenaHalfZ
}

// Check resets an out-of-bounds ball to the start. It returns true at most
// once per call however many conditions hold.
func (m *BoundsMonitor) Check(b *Ball) bool {
	if !m.OutOfBounds(*b) {
		return false
	}
	b.Position = m.geom.Start
	b.VisualScale = 1
	b.Hidden = false
	b.stop()
	return true
}
