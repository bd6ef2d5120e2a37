package scene

import (
	"math"

	"github.com/jmigpin/histogfx/util/drawutil"
	"github.com/jmigpin/histogfx/util/mathutil"
)

// Graphic defined by a geometric outline. The outline is kept relative to its own bounding box top-left at (0,0), and a placement point positions it in world space.
type Shape struct {
	GraphicBase
	outline   mathutil.Path
	outlineB  mathutil.Rect // bounds of the outline, Min at the origin
	placement mathutil.Point
	filled    bool
	stroke    drawutil.Stroke

	// scale factors of the last paint, used for screen unit strokes outside a layer
	ambientX, ambientY float64
}

// The path is given in world coordinates.
func NewShape(p mathutil.Path) *Shape {
	sh := &Shape{
		stroke:   drawutil.DefaultStroke(),
		ambientX: 1,
		ambientY: 1,
	}
	sh.wrapper = sh
	sh.style = drawutil.PaintColor(defaultColor)
	sh.setOutline(p, mathutil.Point{})
	return sh
}

//----------

// Outline relative to the placement.
func (sh *Shape) Outline() mathutil.Path {
	return sh.outline.Clone()
}

// The path is relative to the current placement. The placement is adjusted so that the outline bounds start at the origin, keeping the world position of the path.
func (sh *Shape) SetOutline(p mathutil.Path) {
	sh.setOutline(p, sh.placement)
	sh.changed()
}

func (sh *Shape) setOutline(p mathutil.Path, origin mathutil.Point) {
	b := p.Bounds()
	sh.outline = p.Translate(-b.Min.X, -b.Min.Y)
	sh.outlineB = b.Sub(b.Min)
	sh.placement = origin.Add(b.Min)
}

// Outline in world coordinates.
func (sh *Shape) WorldOutline() mathutil.Path {
	return sh.outline.Translate(sh.placement.X, sh.placement.Y)
}

func (sh *Shape) Placement() mathutil.Point {
	return sh.placement
}

//----------

func (sh *Shape) Filled() bool {
	return sh.filled
}

// A filled shape fills its interior, otherwise the outline is stroked.
func (sh *Shape) SetFilled(v bool) {
	if sh.filled == v {
		return
	}
	sh.filled = v
	sh.changed()
}

func (sh *Shape) Stroke() drawutil.Stroke {
	return sh.stroke
}

func (sh *Shape) SetStroke(s drawutil.Stroke) {
	sh.stroke = s
	sh.changed()
}

func (sh *Shape) SetStrokeWidth(w float64) {
	s := sh.stroke
	s.Width = w
	sh.SetStroke(s)
}

// Stroke width in screen pixels, independent of the layer scale.
func (sh *Shape) SetStrokeScreenUnits(v bool) {
	s := sh.stroke
	s.ScreenUnits = v
	sh.SetStroke(s)
}

//----------

// Half of the stroke width in world units, extended for square caps.
func (sh *Shape) strokePad() float64 {
	if sh.filled {
		return 0
	}
	w := sh.stroke.UserWidth(sh.ambientScale(sh.ambientX, sh.ambientY)) / 2
	if sh.stroke.Cap == drawutil.CapSquare {
		w *= math.Sqrt2
	}
	return w
}

func (sh *Shape) Bounds() mathutil.Rect {
	return sh.cachedBounds(func() mathutil.Rect {
		b := sh.outlineB.Add(sh.placement)
		if pad := sh.strokePad(); pad > 0 {
			b = b.Inset(-pad)
		}
		return b
	})
}

func (sh *Shape) Contains(p mathutil.Point) bool {
	if !sh.Bounds().ContainsClosed(p) {
		return false
	}
	q := p.Sub(sh.placement)
	if sh.filled {
		return sh.outline.Contains(q)
	}
	return sh.outline.Distance(q, false) <= sh.strokePad()
}

func (sh *Shape) Intersects(r mathutil.Rect) bool {
	if !sh.Bounds().Overlaps(r) {
		return false
	}
	q := r.Sub(sh.placement)
	if sh.filled {
		return sh.outline.IntersectsRect(q, true)
	}
	return sh.outline.IntersectsRect(q.Inset(-sh.strokePad()), false)
}

//----------

func (sh *Shape) Move(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	sh.placement = sh.placement.Add(mathutil.Pt(dx, dy))
	sh.changed()
}

func (sh *Shape) SetPosition(x, y float64, a Anchor) {
	setPosition(sh, x, y, a)
}

//----------

func (sh *Shape) Paint(s drawutil.Surface, clip mathutil.Rect) {
	if sh.hidden || sh.outline.Empty() {
		return
	}
	sx, sy := s.Transform().ScaleFactors()
	if sh.stroke.ScreenUnits && (sx != sh.ambientX || sy != sh.ambientY) {
		sh.ambientX, sh.ambientY = sx, sy
		if sh.Layer() == nil {
			sh.invalidate()
		}
	}

	s.Save()
	defer s.Restore()
	s.SetTransform(s.Transform().Mul(mathutil.Translate(sh.placement.X, sh.placement.Y)))
	s.SetPaint(sh.style)
	if sh.filled {
		s.FillPath(&sh.outline)
		return
	}
	s.SetStroke(sh.stroke)
	s.StrokePath(&sh.outline)
}
