package minigolf

import (
	"strconv"

	"github.com/vovakirdan/tui-minigolf/internal/core"
)

// ResultName names a hole score the way golfers do.
func ResultName(r core.HoleResult) string {
	if r.PickedUp {
		return "Picked up"
	}
	if r.Strokes == 1 {
		return "Hole in one!"
	}
	switch d := r.ToPar(); {
	case d <= -3:
		return "Albatross"
	case d == -2:
		return "Eagle"
	case d == -1:
		return "Birdie"
	case d == 0:
		return "Par"
	case d == 1:
		return "Bogey"
	case d == 2:
		return "Double Bogey"
	default:
		return "+" + strconv.Itoa(d)
	}
}

// HolePoints returns the points a hole is worth: every stroke saved against
// par plus the allowance earns pointsPerShot.
func HolePoints(r core.HoleResult, allowance, pointsPerShot int) int {
	saved := r.Par + allowance - r.Strokes
	if saved < 0 || r.PickedUp {
		return 0
	}
	return saved * pointsPerShot
}

// FormatToPar renders a relative score as "E", "+2" or "-1".
func FormatToPar(d int) string {
	switch {
	case d == 0:
		return "E"
	case d > 0:
		return "+" + strconv.Itoa(d)
	default:
		return strconv.Itoa(d)
	}
}
