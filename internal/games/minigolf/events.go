package minigolf

// holeTracker receives the simulation events for the hole in play.
type holeTracker struct {
	strokes int
	power   float64
	holed   bool
}

func (t *holeTracker) OnStroke()                      { t.strokes++ }
func (t *holeTracker) OnHoleComplete()                { t.holed = true }
func (t *holeTracker) OnPowerChanged(percent float64) { t.power = percent }
