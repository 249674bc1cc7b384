package minigolf

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-minigolf/internal/core"
	"github.com/vovakirdan/tui-minigolf/internal/golf"
)

// Layout
const (
	hudHeight    = 2
	footerHeight = 2
	minScreenW   = 40
	minScreenH   = 12
	viewPadding  = 2.0 // world units around the interesting part of a hole
	powerBarW    = 20
)

// Visual characters for rendering
const (
	GroundChar = '·'
	TuftChar   = ','
	SandChar   = '░'
	BoxChar    = '▓'
	RampChar   = '▒'
	WallChar   = '█'
	TreeChar   = '♣'
	CupChar    = 'O'
	FlagChar   = '▶'
	AimChar    = '+'
	BallChar   = '●'
)

// view maps world x/z onto screen cells. Terminal cells are about twice as
// tall as they are wide, so x gets twice the cells per unit of z.
type view struct {
	minX, minZ     float64
	scaleX, scaleZ float64 // cells per world unit
	left, top      int
}

func (v view) toScreen(x, z float64) (int, int) {
	col := v.left + int(math.Floor((x-v.minX)*v.scaleX))
	row := v.top + int(math.Floor((z-v.minZ)*v.scaleZ))
	return col, row
}

// toWorld returns the world point under the center of a cell.
func (v view) toWorld(col, row int) (float64, float64) {
	x := v.minX + (float64(col-v.left)+0.5)/v.scaleX
	z := v.minZ + (float64(row-v.top)+0.5)/v.scaleZ
	return x, z
}

// fitView frames the tee, the cup and every feature of the hole except the
// boundary walls inside a w x h area whose first row is top.
func fitView(g *golf.Geometry, w, h, top int) view {
	minX, maxX := math.Min(g.Start.X(), g.Hole.X()), math.Max(g.Start.X(), g.Hole.X())
	minZ, maxZ := math.Min(g.Start.Z(), g.Hole.Z()), math.Max(g.Start.Z(), g.Hole.Z())
	grow := func(x, z float64) {
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minZ, maxZ = math.Min(minZ, z), math.Max(maxZ, z)
	}

	for _, o := range g.Obstacles {
		if o.Kind == golf.KindWall {
			continue
		}
		for _, sx := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				c := o.ToWorld(mgl64.Vec3{sx * o.HalfExtents.X(), 0, sz * o.HalfExtents.Z()})
				grow(c.X(), c.Z())
			}
		}
	}
	for _, s := range g.Sandpits {
		grow(s.Position.X()-s.Radius, s.Position.Z()-s.Radius)
		grow(s.Position.X()+s.Radius, s.Position.Z()+s.Radius)
	}

	minX = math.Max(minX-viewPadding, -g.ArenaHalfX-1)
	maxX = math.Min(maxX+viewPadding, g.ArenaHalfX+1)
	minZ = math.Max(minZ-viewPadding, -g.ArenaHalfZ-1)
	maxZ = math.Min(maxZ+viewPadding, g.ArenaHalfZ+1)

	spanX, spanZ := maxX-minX, maxZ-minZ
	scaleZ := math.Min(float64(h)/spanZ, float64(w)/(2*spanX))
	scaleX := 2 * scaleZ

	drawnW := int(spanX * scaleX)
	drawnH := int(spanZ * scaleZ)
	return view{
		minX:   minX,
		minZ:   minZ,
		scaleX: scaleX,
		scaleZ: scaleZ,
		left:   (w - drawnW) / 2,
		top:    top + (h-drawnH)/2,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Window too small")
		return
	}

	if g.sim == nil {
		g.renderHUD(dst)
		if g.loadErr != nil {
			g.renderOverlay(dst, "No course to play", trimTo(g.loadErr.Error(), w-8))
			return
		}
		g.renderRoundOver(dst)
		return
	}

	areaH := h - hudHeight - footerHeight
	v := fitView(g.sim.Geometry(), w, areaH, hudHeight)

	g.renderGreen(dst, v, hudHeight, hudHeight+areaH)
	g.renderCup(dst, v)
	g.renderAim(dst, v)
	g.renderBall(dst, v)
	g.renderHUD(dst)
	g.renderFooter(dst)

	switch {
	case g.gameOver:
		g.renderRoundOver(dst)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.lastResult != nil:
		g.renderOverlay(dst, ResultName(*g.lastResult), g.resultDetail(*g.lastResult))
	}
}

// renderGreen paints ground, sand and obstacles row by row.
func (g *Game) renderGreen(dst *core.Screen, v view, fromRow, toRow int) {
	geom := g.sim.Geometry()
	for row := fromRow; row < toRow; row++ {
		for col := 0; col < dst.Width(); col++ {
			x, z := v.toWorld(col, row)
			r, c, ok := surfaceAt(geom, x, z)
			if !ok {
				continue
			}
			if r == GroundChar && tuft(g.runtime.Seed, col, row) {
				r = TuftChar
			}
			dst.SetWithColor(col, row, r, c)
		}
	}

	// Trunks can be thinner than a cell; always mark their centers.
	for _, o := range geom.Obstacles {
		if o.Kind != golf.KindTree {
			continue
		}
		col, row := v.toScreen(o.Position.X(), o.Position.Z())
		if row >= fromRow && row < toRow {
			dst.SetWithColor(col, row, TreeChar, core.ColorBrightGreen)
		}
	}
}

// tuft scatters grass tufts over the ground. The pattern depends only on the
// seed and the cell, so a given seed always draws the same green.
func tuft(seed int64, col, row int) bool {
	h := uint64(seed) ^ uint64(col)*0x9E3779B97F4A7C15 ^ uint64(row)*0xC2B2AE3D27D4EB4F
	h ^= h >> 29
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 32
	return h%9 == 0
}

// surfaceAt picks what a top-down camera sees at (x, z).
func surfaceAt(geom *golf.Geometry, x, z float64) (rune, core.Color, bool) {
	for _, o := range geom.Obstacles {
		if !o.CoversXZ(x, z) {
			continue
		}
		switch o.Kind {
		case golf.KindWall:
			return WallChar, core.ColorWhite, true
		case golf.KindTree:
			return TreeChar, core.ColorBrightGreen, true
		case golf.KindRamp:
			return RampChar, core.ColorBrown, true
		default:
			return BoxChar, core.ColorGray, true
		}
	}

	if !geom.InArena(mgl64.Vec3{x, 0, z}) {
		return 0, core.ColorDefault, false
	}

	for _, s := range geom.Sandpits {
		if math.Hypot(x-s.Position.X(), z-s.Position.Z()) < s.Radius {
			return SandChar, core.ColorYellow, true
		}
	}
	return GroundChar, core.ColorGreen, true
}

func (g *Game) renderCup(dst *core.Screen, v view) {
	hole := g.sim.Geometry().Hole
	col, row := v.toScreen(hole.X(), hole.Z())
	dst.SetWithColor(col, row, CupChar, core.ColorBrightWhite)
	dst.SetWithColor(col+1, row-1, FlagChar, core.ColorRed)
}

// renderAim draws the aim line from the ball. It grows with the charge.
func (g *Game) renderAim(dst *core.Screen, v view) {
	ball, aim := g.sim.Ball(), g.sim.Aim()
	if ball.Phase != golf.Stationary || g.sim.Sunk() || g.lastResult != nil {
		return
	}

	color := core.ColorCyan
	if aim.Charging {
		color = core.ColorBrightYellow
	}

	length := 1.5 + aim.Power/100*6
	step := 1 / v.scaleX
	bc, br := v.toScreen(ball.Position.X(), ball.Position.Z())
	for d := step; d <= length; d += step {
		p := ball.Position.Add(aim.Direction.Mul(d))
		col, row := v.toScreen(p.X(), p.Z())
		if col == bc && row == br {
			continue
		}
		dst.SetWithColor(col, row, AimChar, color)
	}
}

func (g *Game) renderBall(dst *core.Screen, v view) {
	ball := g.sim.Ball()
	if ball.Hidden {
		return
	}

	r := BallChar
	switch {
	case ball.VisualScale < 0.3:
		r = '·'
	case ball.VisualScale < 0.6:
		r = '•'
	}
	col, row := v.toScreen(ball.Position.X(), ball.Position.Z())
	dst.SetWithColor(col, row, r, core.ColorBrightWhite)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hole, n := g.Hole()

	parts := []string{" " + g.Title()}
	if hole.ID != "" {
		parts = append(parts,
			"Hole "+strconv.Itoa(n)+"/"+strconv.Itoa(len(g.holes))+": "+hole.Name,
			"Par "+strconv.Itoa(hole.Par),
			"Strokes "+strconv.Itoa(g.Strokes())+"/"+strconv.Itoa(g.maxStrokes),
		)
	}
	parts = append(parts, "Total "+FormatToPar(g.ToPar()))
	if g.mode == ModeCourse {
		parts = append(parts, "Score "+strconv.Itoa(g.score))
	}

	dst.DrawTextColor(0, 0, strings.Join(parts, " | "), core.ColorCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderFooter draws the power bar and the controls hint.
func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - footerHeight
	dst.DrawHLine(0, y, dst.Width(), '─', core.ColorGray)

	power := 0.0
	if g.tracker != nil {
		power = g.tracker.power
	}
	filled := int(math.Round(power / 100 * powerBarW))
	bar := " Power [" + strings.Repeat("█", filled) + strings.Repeat("░", powerBarW-filled) + "] " +
		strconv.Itoa(int(math.Round(power))) + "%"

	color := core.ColorGreen
	switch {
	case power >= 80:
		color = core.ColorRed
	case power >= 50:
		color = core.ColorYellow
	}
	dst.DrawTextColor(0, y+1, bar, color)

	hint := "←/→ Aim  Space Charge/Shoot  P Pause "
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(hint), y+1, hint, core.ColorGray)
}

func (g *Game) resultDetail(r core.HoleResult) string {
	text := strconv.Itoa(r.Strokes) + " strokes, par " + strconv.Itoa(r.Par)
	if g.mode == ModeCourse {
		text += " (+" + strconv.Itoa(HolePoints(r, g.cfg.Gameplay.ParAllowance, g.cfg.Gameplay.PointsPerShot)) + ")"
	}
	return text
}

func (g *Game) renderRoundOver(dst *core.Screen) {
	detail := "Total " + FormatToPar(g.ToPar())
	if g.mode == ModeCourse {
		detail += " | Score " + strconv.Itoa(g.score)
	}
	g.renderOverlay(dst, "Round complete", detail, "Press R to restart")
}

// renderOverlay draws a boxed message in the middle of the screen.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}

	boxW := maxLen + 6
	boxH := len(lines)*2 + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorBrightWhite)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCenteredColor(box.Y+1+i*2, l, color)
	}
}

func trimTo(s string, n int) string {
	if n < 4 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}
