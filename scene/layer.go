package scene

import (
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/jmigpin/histogfx/util/drawutil"
	"github.com/jmigpin/histogfx/util/mathutil"
	"github.com/jmigpin/histogfx/util/uiutil/event"
)

const DefaultHitSize = 3

// Top level groups viewed through a world to screen transform.
type Layer struct {
	groups []*Group

	worldBounds    mathutil.Rect
	worldViewSize  mathutil.Size
	screenViewSize image.Point

	transform      mathutil.Affine
	scaleX, scaleY float64
	pixelSize      image.Point

	position image.Point     // preferred position when not attached
	bounds   image.Rectangle // in canvas coordinates

	// side of the square used for hit tests, in pixels
	HitSize int

	mouseGrab    *Group
	keyboardGrab *Group
	current      *Group
	focus        *Group

	canvas      *Canvas
	dispatching int
	needsPaint  bool
}

func NewLayer() *Layer {
	return &Layer{
		transform: mathutil.Identity(),
		scaleX:    1,
		scaleY:    1,
		HitSize:   DefaultHitSize,
	}
}

//----------

func (l *Layer) Groups() []*Group {
	return slices.Clone(l.groups)
}

func (l *Layer) Len() int {
	return len(l.groups)
}

func (l *Layer) IndexOf(g *Group) int {
	return slices.Index(l.groups, g)
}

func (l *Layer) Add(g *Group) {
	l.Insert(len(l.groups), g)
}

// Returns false if the index is out of range. Panics if the group already has an owner.
func (l *Layer) Insert(i int, g *Group) bool {
	if i < 0 || i > len(l.groups) {
		return false
	}
	if g.parent != nil || g.layer != nil {
		panic("group already owned")
	}
	l.groups = slices.Insert(l.groups, i, g)
	g.layer = l
	invalidateTree(g)
	l.MarkNeedsPaint()
	return true
}

func (l *Layer) Remove(g *Group) bool {
	i := l.IndexOf(g)
	if i < 0 {
		return false
	}
	l.RemoveAt(i)
	return true
}

func (l *Layer) RemoveAt(i int) *Group {
	if i < 0 || i >= len(l.groups) {
		return nil
	}
	g := l.groups[i]
	l.groups = slices.Delete(l.groups, i, i+1)
	g.layer = nil
	invalidateTree(g)
	l.MarkNeedsPaint()
	l.groupRemoved(g)
	return g
}

// Moves the group to the front. Roles (grabs, current, focus) are kept.
func (l *Layer) BringToFront(g *Group) bool {
	i := l.IndexOf(g)
	if i < 0 {
		return false
	}
	l.groups = slices.Delete(l.groups, i, i+1)
	l.groups = append(l.groups, g)
	l.MarkNeedsPaint()
	return true
}

//----------

func (l *Layer) WorldBounds() mathutil.Rect { return l.worldBounds }
func (l *Layer) WorldViewSize() mathutil.Size { return l.worldViewSize }
func (l *Layer) ScreenViewSize() image.Point { return l.screenViewSize }
func (l *Layer) Transform() mathutil.Affine { return l.transform }
func (l *Layer) PixelSize() image.Point { return l.pixelSize }
func (l *Layer) Bounds() image.Rectangle { return l.bounds }
func (l *Layer) Scale() (float64, float64) { return l.scaleX, l.scaleY }

func (l *Layer) SetWorldBounds(r mathutil.Rect, update bool) {
	l.worldBounds = r
	if update {
		l.UpdateTransform()
	}
}

func (l *Layer) SetWorldViewSize(s mathutil.Size, update bool) {
	l.worldViewSize = s
	if update {
		l.UpdateTransform()
	}
}

func (l *Layer) SetScreenViewSize(p image.Point, update bool) {
	l.screenViewSize = p
	if update {
		l.UpdateTransform()
	}
}

// Preferred position inside the canvas, used on axes without attachments.
func (l *Layer) SetPosition(p image.Point) {
	l.position = p
	l.resized()
}

// Recomputes the scale, the transform and the pixel size. Offsets of an axis are subtracted from the screen view size only if both edges of that axis are attached.
func (l *Layer) UpdateTransform() {
	att := l.Attachment()
	sw := float64(l.screenViewSize.X)
	if att.Left && att.Right {
		sw -= float64(att.LeftOffset + att.RightOffset)
	}
	sh := float64(l.screenViewSize.Y)
	if att.Top && att.Bottom {
		sh -= float64(att.TopOffset + att.BottomOffset)
	}

	sx, sy := 0.0, 0.0
	if l.worldViewSize.W > 0 {
		sx = sw / l.worldViewSize.W
	}
	if l.worldViewSize.H > 0 {
		sy = sh / l.worldViewSize.H
	}
	if sx != l.scaleX || sy != l.scaleY {
		l.scaleX, l.scaleY = sx, sy
		// screen unit strokes and fixed size text depend on the scale
		for _, g := range l.groups {
			invalidateTree(g)
		}
	}

	wb := l.worldBounds
	l.transform = mathutil.Scale(sx, sy).Mul(mathutil.Translate(-wb.Min.X, -wb.Min.Y))
	l.pixelSize = image.Point{
		ceilSize(sx * wb.Dx()),
		ceilSize(sy * wb.Dy()),
	}
	l.resized()
}

func ceilSize(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Ceil(v - 1e-9))
}

func (l *Layer) resized() {
	if l.canvas != nil {
		l.canvas.relayout()
	} else {
		l.bounds = image.Rectangle{l.position, l.position.Add(l.pixelSize)}
	}
	l.MarkNeedsPaint()
}

// Attachment in the owning canvas. Zero if not in a canvas.
func (l *Layer) Attachment() Attachment {
	if l.canvas == nil {
		return Attachment{}
	}
	return l.canvas.Attachment(l)
}

func (l *Layer) Canvas() *Canvas {
	return l.canvas
}

//----------

func (l *Layer) ScreenToWorld(p image.Point) (mathutil.Point, bool) {
	inv, ok := l.transform.Inverse()
	if !ok {
		return mathutil.Point{}, false
	}
	return inv.Apply(mathutil.PtImage(p)), true
}

func (l *Layer) WorldToScreen(p mathutil.Point) mathutil.Point {
	return l.transform.Apply(p)
}

// World rectangle of the hit square centered on the pixel p.
func (l *Layer) hitRect(p image.Point) (mathutil.Rect, bool) {
	inv, ok := l.transform.Inverse()
	if !ok {
		return mathutil.Rect{}, false
	}
	n := float64(max(l.HitSize, 1))
	c := mathutil.PtImage(p).Add(mathutil.Pt(0.5, 0.5))
	r := mathutil.RectAround(c, mathutil.Sz(n, n))
	return inv.ApplyRect(r), true
}

// Front most group handling events at the layer pixel point, or nil.
func (l *Layer) FindGroup(p image.Point) *Group {
	hit, ok := l.hitRect(p)
	if !ok {
		return nil
	}
	for i := len(l.groups) - 1; i >= 0; i-- {
		g := l.groups[i]
		if !g.Visible() {
			continue
		}
		if h := g.EventHandler(hit); h != nil {
			return h
		}
	}
	return nil
}

// The mouse grab, if any, otherwise the group at p.
func (l *Layer) FindMouseGroup(p image.Point) *Group {
	if l.mouseGrab != nil {
		return l.mouseGrab
	}
	return l.FindGroup(p)
}

//----------

func (l *Layer) MouseGrab() *Group { return l.mouseGrab }
func (l *Layer) KeyboardGrab() *Group { return l.keyboardGrab }
func (l *Layer) CurrentGroup() *Group { return l.current }
func (l *Layer) FocusGroup() *Group { return l.focus }

// Nil releases the grab. Returns false if the group is not in this layer.
func (l *Layer) SetMouseGrab(g *Group) bool {
	if g != nil && g.Layer() != l {
		return false
	}
	l.mouseGrab = g
	return true
}

// Nil releases the grab. Returns false if the group is not in this layer.
func (l *Layer) SetKeyboardGrab(g *Group) bool {
	if g != nil && g.Layer() != l {
		return false
	}
	l.keyboardGrab = g
	l.updateFocus()
	return true
}

func (l *Layer) keyboardTarget() *Group {
	if l.keyboardGrab != nil {
		return l.keyboardGrab
	}
	return l.current
}

//----------

// Dispatches a host event. The point is in layer pixel coordinates.
func (l *Layer) HandleInput(ev any, p image.Point) {
	l.dispatching++
	defer func() { l.dispatching-- }()

	switch ev.(type) {
	case *event.MouseLeave:
		if l.mouseGrab == nil {
			l.setCurrent(nil, ev, p)
		}
		return
	case *event.MouseEnter:
		return
	}

	id, ok := eventIdOf(ev)
	if !ok {
		return
	}
	if event.IsPointerEvent(ev) {
		target := l.FindMouseGroup(p)
		l.setCurrent(target, ev, p)
		if target != nil && target.Layer() == l {
			l.dispatch(target, id, ev, p)
		}
		return
	}
	if event.IsKeyEvent(ev) {
		if target := l.keyboardTarget(); target != nil {
			l.dispatch(target, id, ev, p)
		}
	}
}

func (l *Layer) setCurrent(target *Group, ev any, p image.Point) {
	if target == l.current {
		return
	}
	old := l.current
	l.current = nil
	if old != nil {
		l.dispatch(old, EvMouseExit, ev, p)
	}
	// a listener could have removed the target
	if target != nil && target.Layer() == l {
		l.current = target
		l.dispatch(target, EvMouseEnter, ev, p)
	}
	l.updateFocus()
}

func (l *Layer) updateFocus() {
	target := l.keyboardTarget()
	if target == l.focus {
		return
	}
	old := l.focus
	l.focus = nil
	if old != nil {
		old.hasFocus = false
		l.dispatch(old, EvFocusLost, nil, image.Point{})
	}
	if target != nil && target.Layer() == l && target == l.keyboardTarget() {
		l.focus = target
		target.hasFocus = true
		l.dispatch(target, EvFocusGained, nil, image.Point{})
	}
}

func (l *Layer) dispatch(g *Group, id EventId, raw any, p image.Point) {
	ev := &GroupEvent{Id: id, Raw: raw, ScreenPoint: p}
	if wp, ok := l.ScreenToWorld(p); ok {
		ev.Point = wp
	}
	l.dispatching++
	defer func() { l.dispatching-- }()
	g.Dispatch(ev)
}

// Clears every role held by the group or its descendants. The current group gets exactly one exit event.
func (l *Layer) groupRemoved(g *Group) {
	in := func(u *Group) bool {
		return u != nil && (u == g || g.IsAncestorOf(u))
	}
	if in(l.mouseGrab) {
		l.mouseGrab = nil
	}
	if in(l.keyboardGrab) {
		l.keyboardGrab = nil
	}
	if in(l.current) {
		old := l.current
		l.current = nil
		l.dispatch(old, EvMouseExit, nil, image.Point{})
	}
	if in(l.focus) {
		old := l.focus
		l.focus = nil
		old.hasFocus = false
		l.dispatch(old, EvFocusLost, nil, image.Point{})
	}
}

//----------

// Paints the groups intersecting the clip (layer pixel coordinates). The surface transform must map layer pixels to device pixels.
func (l *Layer) Paint(s drawutil.Surface, clip image.Rectangle) error {
	if l.dispatching > 0 {
		return ErrPaintDuringDispatch
	}
	inv, ok := l.transform.Inverse()
	if !ok {
		return fmt.Errorf("layer paint: %w", ErrNotInvertible)
	}
	l.needsPaint = false
	if clip.Empty() {
		return nil
	}
	worldClip := inv.ApplyRect(mathutil.RectImage(clip))

	s.Save()
	defer s.Restore()
	dclip := s.Transform().ApplyRect(mathutil.RectImage(clip)).ToRectFloorCeil()
	s.IntersectClip(dclip)
	s.SetTransform(s.Transform().Mul(l.transform))
	for _, g := range l.groups {
		if !g.Visible() || !g.Bounds().Overlaps(worldClip) {
			continue
		}
		g.Paint(s, worldClip)
	}
	return nil
}

func (l *Layer) NeedsPaint() bool {
	return l.needsPaint
}

func (l *Layer) MarkNeedsPaint() {
	l.needsPaint = true
	if l.canvas != nil {
		l.canvas.layerNeedsPaint(l)
	}
}
