package scene

import (
	"github.com/jmigpin/histogfx/util/drawutil"
	"github.com/jmigpin/histogfx/util/mathutil"
)

// Drawable scene element. Implemented by *Shape, *Text and *Group.
type Graphic interface {
	Embed() *GraphicBase

	// Paints into the surface (user space = world space). The clip is in world coordinates and can be used to cull. Must leave the surface state unchanged.
	Paint(s drawutil.Surface, clip mathutil.Rect)

	Bounds() mathutil.Rect
	Intersects(r mathutil.Rect) bool
	Contains(p mathutil.Point) bool

	Move(dx, dy float64)
	SetPosition(x, y float64, a Anchor)
}

//----------

// State shared by all graphics. Embedded by the concrete types.
type GraphicBase struct {
	wrapper Graphic
	parent  *Group
	hidden  bool
	style   drawutil.Paint
	bounds  *mathutil.Rect // cache, nil if invalid
}

func (gb *GraphicBase) Embed() *GraphicBase {
	return gb
}

func (gb *GraphicBase) Parent() *Group {
	return gb.parent
}

// Layer of the top level group owning this graphic, or nil.
func (gb *GraphicBase) Layer() *Layer {
	var top *GraphicBase
	for u := gb; u != nil; {
		top = u
		if u.parent == nil {
			break
		}
		u = &u.parent.GraphicBase
	}
	if g, ok := top.wrapper.(*Group); ok {
		return g.layer
	}
	return nil
}

//----------

func (gb *GraphicBase) Visible() bool {
	return !gb.hidden
}

func (gb *GraphicBase) SetVisible(v bool) {
	if gb.hidden == !v {
		return
	}
	gb.hidden = !v
	// parents bounds only consider visible childs
	gb.changed()
}

func (gb *GraphicBase) Style() drawutil.Paint {
	return gb.style
}

func (gb *GraphicBase) SetStyle(p drawutil.Paint) {
	gb.style = p
	gb.markNeedsPaint()
}

//----------

// Returns the cached bounds, computing them if needed.
func (gb *GraphicBase) cachedBounds(compute func() mathutil.Rect) mathutil.Rect {
	if gb.bounds == nil {
		r := compute()
		gb.bounds = &r
	}
	return *gb.bounds
}

// Invalidates the bounds cache of this graphic and all its ancestors.
func (gb *GraphicBase) invalidate() {
	for u := gb; u != nil; {
		u.bounds = nil
		if u.parent == nil {
			break
		}
		u = &u.parent.GraphicBase
	}
}

// Drops the bounds cache of the graphic and all its descendants.
func invalidateTree(g Graphic) {
	g.Embed().bounds = nil
	if gr, ok := g.(*Group); ok {
		for _, c := range gr.children {
			invalidateTree(c)
		}
	}
}

// Scale of the owning layer. Graphics outside a layer (or in a layer without a usable scale) use the scale seen at their last paint.
func (gb *GraphicBase) ambientScale(paintX, paintY float64) (float64, float64) {
	if l := gb.Layer(); l != nil && l.scaleX > 0 && l.scaleY > 0 {
		return l.scaleX, l.scaleY
	}
	return paintX, paintY
}

// Geometry change: invalidates bounds and schedules a paint.
func (gb *GraphicBase) changed() {
	gb.invalidate()
	gb.markNeedsPaint()
}

func (gb *GraphicBase) markNeedsPaint() {
	if l := gb.Layer(); l != nil {
		l.MarkNeedsPaint()
	}
}

//----------

// Positions the graphic so that the anchor point of its bounds lands at (x,y).
func setPosition(g Graphic, x, y float64, a Anchor) {
	b := g.Bounds()
	ref := a.Point(b)
	dx, dy := x-ref.X, y-ref.Y
	if dx != 0 || dy != 0 {
		g.Move(dx, dy)
	}
}

// Bounds based hit tests, used by graphics without a precise outline.
func boundsIntersects(g Graphic, r mathutil.Rect) bool {
	return g.Bounds().Overlaps(r)
}
func boundsContains(g Graphic, p mathutil.Point) bool {
	return g.Bounds().ContainsClosed(p) && !g.Bounds().Empty()
}
