package scene

import (
	"image"
	"log"
	"slices"
	"unicode"

	"github.com/jmigpin/histogfx/util/drawutil"
	"github.com/jmigpin/histogfx/util/mathutil"
	"github.com/jmigpin/histogfx/util/uiutil/event"
	"github.com/jmigpin/histogfx/util/uiutil/mousefilter"
)

// Placement of a layer inside the canvas. Offsets are in pixels from the attached edge. Layers with higher z-index are painted on top and hit first.
type Attachment struct {
	Top, Bottom, Left, Right                         bool
	TopOffset, BottomOffset, LeftOffset, RightOffset int
	ZIndex                                           int
}

// Attached to all edges with zero offsets.
func AttachAll() Attachment {
	return Attachment{Top: true, Bottom: true, Left: true, Right: true}
}

//----------

// Stacks layers and lays them out with attachments. The canvas size is the host view size, grown to fit the layers.
type Canvas struct {
	entries []*canvasEntry // insertion order
	ordered []*canvasEntry // back to front
	seq     int

	viewSize image.Point
	size     image.Point

	pointerLayer *Layer // layer that got the last pointer event
	pressLayer   *Layer // layer owning the pressed buttons
	keyLayer     *Layer
	pressed      event.MouseButtons

	clickf *mousefilter.ClickFilter
	dragf  *mousefilter.DragFilter

	dispatching int

	// Called when a region (canvas coordinates) needs to be painted.
	OnNeedsPaint func(r image.Rectangle)
	// Called when the canvas size changes.
	OnResize func(size image.Point)
}

type canvasEntry struct {
	layer *Layer
	att   Attachment
	seq   int
}

func NewCanvas() *Canvas {
	c := &Canvas{}
	c.clickf = mousefilter.NewClickFilter(c.route)
	c.dragf = mousefilter.NewDragFilter(c.route)
	return c
}

//----------

func (c *Canvas) Add(l *Layer, att Attachment) {
	if l.canvas != nil {
		panic("layer already in a canvas")
	}
	c.seq++
	c.entries = append(c.entries, &canvasEntry{layer: l, att: att, seq: c.seq})
	l.canvas = c
	c.sortEntries()
	l.UpdateTransform()
}

func (c *Canvas) Remove(l *Layer) bool {
	i := slices.IndexFunc(c.entries, func(e *canvasEntry) bool { return e.layer == l })
	if i < 0 {
		return false
	}
	c.entries = slices.Delete(c.entries, i, i+1)
	l.canvas = nil
	if c.pointerLayer == l {
		c.pointerLayer = nil
	}
	if c.pressLayer == l {
		c.pressLayer = nil
	}
	if c.keyLayer == l {
		c.keyLayer = nil
	}
	c.sortEntries()
	c.relayout()
	c.needsPaint(l.bounds)
	l.UpdateTransform()
	return true
}

// Back to front.
func (c *Canvas) Layers() []*Layer {
	u := make([]*Layer, 0, len(c.ordered))
	for _, e := range c.ordered {
		u = append(u, e.layer)
	}
	return u
}

func (c *Canvas) entry(l *Layer) *canvasEntry {
	for _, e := range c.entries {
		if e.layer == l {
			return e
		}
	}
	return nil
}

func (c *Canvas) Attachment(l *Layer) Attachment {
	if e := c.entry(l); e != nil {
		return e.att
	}
	return Attachment{}
}

func (c *Canvas) SetAttachment(l *Layer, att Attachment) bool {
	e := c.entry(l)
	if e == nil {
		return false
	}
	e.att = att
	c.sortEntries()
	l.UpdateTransform()
	return true
}

// Stable: equal z-index keeps insertion order.
func (c *Canvas) sortEntries() {
	c.ordered = slices.Clone(c.entries)
	slices.SortStableFunc(c.ordered, func(a, b *canvasEntry) int {
		if a.att.ZIndex != b.att.ZIndex {
			return a.att.ZIndex - b.att.ZIndex
		}
		return a.seq - b.seq
	})
}

//----------

// Host view size. Layers attached to both edges of an axis take the view size of that axis as their screen view size.
func (c *Canvas) SetSize(p image.Point) {
	c.viewSize = p
	for _, e := range c.entries {
		l, a := e.layer, e.att
		svs := l.screenViewSize
		if a.Left && a.Right {
			svs.X = p.X
		}
		if a.Top && a.Bottom {
			svs.Y = p.Y
		}
		if svs != l.screenViewSize {
			l.SetScreenViewSize(svs, true)
		}
	}
	c.relayout()
}

func (c *Canvas) Size() image.Point {
	return c.size
}

func (c *Canvas) relayout() {
	size := c.viewSize
	for _, e := range c.entries {
		ext := e.extent()
		size.X = max(size.X, ext.X)
		size.Y = max(size.Y, ext.Y)
	}
	resized := size != c.size
	c.size = size
	for _, e := range c.entries {
		b := e.layout(size)
		if b != e.layer.bounds {
			c.needsPaint(e.layer.bounds)
			e.layer.bounds = b
			c.needsPaint(b)
		}
	}
	if resized && c.OnResize != nil {
		c.OnResize(size)
	}
}

// Space needed by the layer, from the canvas origin.
func (e *canvasEntry) extent() image.Point {
	l, a := e.layer, e.att
	axis := func(lo, hi bool, loOff, hiOff, pos, w int) int {
		switch {
		case lo && hi:
			return loOff + w + hiOff
		case lo:
			return loOff + w
		case hi:
			return w + hiOff
		}
		return pos + w
	}
	return image.Point{
		axis(a.Left, a.Right, a.LeftOffset, a.RightOffset, l.position.X, l.pixelSize.X),
		axis(a.Top, a.Bottom, a.TopOffset, a.BottomOffset, l.position.Y, l.pixelSize.Y),
	}
}

func (e *canvasEntry) layout(size image.Point) image.Rectangle {
	l, a := e.layer, e.att
	axis := func(lo, hi bool, loOff, hiOff, pos, w, total int) (int, int) {
		switch {
		case lo && hi:
			x0, x1 := loOff, total-hiOff
			if x1 < x0 {
				x1 = x0
			}
			return x0, x1
		case lo:
			return loOff, loOff + w
		case hi:
			return total - hiOff - w, total - hiOff
		}
		return pos, pos + w
	}
	x0, x1 := axis(a.Left, a.Right, a.LeftOffset, a.RightOffset, l.position.X, l.pixelSize.X, size.X)
	y0, y1 := axis(a.Top, a.Bottom, a.TopOffset, a.BottomOffset, l.position.Y, l.pixelSize.Y, size.Y)
	return image.Rect(x0, y0, x1, y1)
}

//----------

// Layer at the canvas point, front most first.
func (c *Canvas) LayerAt(p image.Point) *Layer {
	for i := len(c.ordered) - 1; i >= 0; i-- {
		l := c.ordered[i].layer
		if p.In(l.bounds) {
			return l
		}
	}
	return nil
}

// Front most layer holding a mouse grab.
func (c *Canvas) grabLayer() *Layer {
	for i := len(c.ordered) - 1; i >= 0; i-- {
		l := c.ordered[i].layer
		if l.mouseGrab != nil {
			return l
		}
	}
	return nil
}

// Dispatches a host event at the canvas point. Clicks, drags and typed keys are synthesized.
func (c *Canvas) HandleInput(ev any, p image.Point) {
	c.dispatching++
	defer func() { c.dispatching-- }()

	switch t := ev.(type) {
	case *event.MouseLeave:
		if c.pointerLayer != nil && c.pressLayer == nil {
			c.pointerLayer.HandleInput(ev, p.Sub(c.pointerLayer.bounds.Min))
			c.pointerLayer = nil
		}
		return
	case *event.MouseDown:
		if !t.Button.IsWheel() {
			c.pressed |= event.MouseButtons(t.Button)
		}
	case *event.MouseUp:
		if !t.Button.IsWheel() {
			c.pressed &^= event.MouseButtons(t.Button)
		}
	}

	c.route(ev, p)
	c.clickf.Filter(ev)
	c.dragf.Filter(ev)

	if kd, ok := ev.(*event.KeyDown); ok && typedRune(kd) {
		c.route(&event.KeyTyped{Point: kd.Point, Mods: kd.Mods, Rune: kd.Rune}, p)
	}

	if c.pressed == 0 {
		c.pressLayer = nil
	}
}

func typedRune(kd *event.KeyDown) bool {
	if kd.Mods.ClearLocks().HasAny(event.ModCtrl | event.ModAlt) {
		return false
	}
	return kd.Rune != 0 && unicode.IsPrint(kd.Rune)
}

func (c *Canvas) route(ev any, p image.Point) {
	if event.IsKeyEvent(ev) {
		l := c.keyLayer
		if l == nil {
			l = c.pointerLayer
		}
		if l != nil {
			l.HandleInput(ev, p.Sub(l.bounds.Min))
		}
		return
	}
	if !event.IsPointerEvent(ev) {
		return
	}

	l := c.pressLayer
	if l == nil {
		l = c.grabLayer()
	}
	if l == nil {
		l = c.LayerAt(p)
	}
	if l != c.pointerLayer {
		if old := c.pointerLayer; old != nil {
			old.HandleInput(&event.MouseLeave{}, p.Sub(old.bounds.Min))
		}
		c.pointerLayer = l
	}
	if l == nil {
		return
	}
	if d, ok := ev.(*event.MouseDown); ok && !d.Button.IsWheel() {
		c.pressLayer = l
		c.keyLayer = l
	}
	l.HandleInput(ev, p.Sub(l.bounds.Min))
}

//----------

// Paints the layers back to front. The clip is in canvas coordinates. Layers that can't be painted are skipped. Nothing is painted while an event is being dispatched to any layer.
func (c *Canvas) Paint(s drawutil.Surface, clip image.Rectangle) error {
	if c.isDispatching() {
		return ErrPaintDuringDispatch
	}
	for _, e := range c.ordered {
		l := e.layer
		r := l.bounds.Intersect(clip)
		if r.Empty() {
			continue
		}
		s.Save()
		o := mathutil.PtImage(l.bounds.Min)
		s.SetTransform(s.Transform().Mul(mathutil.Translate(o.X, o.Y)))
		err := l.Paint(s, r.Sub(l.bounds.Min))
		s.Restore()
		if err != nil {
			log.Printf("canvas: layer paint skipped: %v", err)
		}
	}
	return nil
}

func (c *Canvas) isDispatching() bool {
	if c.dispatching > 0 {
		return true
	}
	for _, e := range c.entries {
		if e.layer.dispatching > 0 {
			return true
		}
	}
	return false
}

func (c *Canvas) layerNeedsPaint(l *Layer) {
	c.needsPaint(l.bounds)
}

func (c *Canvas) needsPaint(r image.Rectangle) {
	if r.Empty() || c.OnNeedsPaint == nil {
		return
	}
	c.OnNeedsPaint(r)
}
