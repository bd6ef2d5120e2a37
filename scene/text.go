package scene

import (
	"github.com/jmigpin/histogfx/util/drawutil"
	"github.com/jmigpin/histogfx/util/fontutil"
	"github.com/jmigpin/histogfx/util/mathutil"
)

// Single line of text. The position is the top-left of the text box.
type Text struct {
	GraphicBase
	str       string
	face      *fontutil.FontFace
	placement mathutil.Point

	// font size in screen pixels regardless of the layer scale
	fixedSize          bool
	ambientX, ambientY float64
}

func NewText(str string, x, y float64) *Text {
	t := &Text{
		str:       str,
		face:      fontutil.DefaultFontFace(),
		placement: mathutil.Pt(x, y),
		ambientX:  1,
		ambientY:  1,
	}
	t.wrapper = t
	t.style = drawutil.PaintColor(defaultColor)
	return t
}

func (t *Text) String() string {
	return t.str
}

func (t *Text) SetString(s string) {
	if s == t.str {
		return
	}
	t.str = s
	t.changed()
}

func (t *Text) FontFace() *fontutil.FontFace {
	return t.face
}

func (t *Text) SetFontFace(ff *fontutil.FontFace) {
	t.face = ff
	t.changed()
}

func (t *Text) FixedSize() bool {
	return t.fixedSize
}

func (t *Text) SetFixedSize(v bool) {
	if t.fixedSize == v {
		return
	}
	t.fixedSize = v
	t.changed()
}

//----------

// World units per font unit on each axis.
func (t *Text) unitScale() (float64, float64) {
	if !t.fixedSize {
		return 1, 1
	}
	sx, sy := t.ambientScale(t.ambientX, t.ambientY)
	if sx == 0 || sy == 0 {
		return 1, 1
	}
	return 1 / sx, 1 / sy
}

func (t *Text) Bounds() mathutil.Rect {
	return t.cachedBounds(func() mathutil.Rect {
		if t.face == nil || t.str == "" {
			return mathutil.Rect{Min: t.placement, Max: t.placement}
		}
		kx, ky := t.unitScale()
		w := t.face.MeasureString(t.str) * kx
		h := t.face.LineHeightFloat() * ky
		return mathutil.RectXYWH(t.placement.X, t.placement.Y, w, h)
	})
}

func (t *Text) Contains(p mathutil.Point) bool {
	return boundsContains(t, p)
}

func (t *Text) Intersects(r mathutil.Rect) bool {
	return boundsIntersects(t, r)
}

func (t *Text) Move(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	t.placement = t.placement.Add(mathutil.Pt(dx, dy))
	t.changed()
}

func (t *Text) SetPosition(x, y float64, a Anchor) {
	setPosition(t, x, y, a)
}

//----------

func (t *Text) Paint(s drawutil.Surface, clip mathutil.Rect) {
	if t.hidden || t.face == nil || t.str == "" {
		return
	}
	sx, sy := s.Transform().ScaleFactors()
	if t.fixedSize && (sx != t.ambientX || sy != t.ambientY) {
		t.ambientX, t.ambientY = sx, sy
		if t.Layer() == nil {
			t.invalidate()
		}
	}

	s.Save()
	defer s.Restore()
	tf := mathutil.Identity()
	kx, ky := t.unitScale()
	if t.fixedSize {
		tf = mathutil.Scale(kx, ky)
	}
	s.SetFont(t.face, tf)
	s.SetPaint(t.style)
	s.DrawString(t.str, t.placement.X, t.placement.Y+t.face.BaseLineFloat()*ky)
}
