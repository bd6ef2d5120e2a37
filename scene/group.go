package scene

import (
	"fmt"
	"slices"

	"github.com/jmigpin/histogfx/util/drawutil"
	"github.com/jmigpin/histogfx/util/evreg"
	"github.com/jmigpin/histogfx/util/mathutil"
)

// Ordered container of graphics (back to front). Groups are the unit of event handling.
type Group struct {
	GraphicBase
	children []Graphic
	layer    *Layer // set on top level groups

	opaque       bool // fill the bounds with the style paint before the childs
	handleEvents bool
	passThrough  bool // let child groups handle events
	hasFocus     bool

	reg evreg.Register
}

func NewGroup() *Group {
	g := &Group{handleEvents: true}
	g.wrapper = g
	return g
}

//----------

func (g *Group) Len() int {
	return len(g.children)
}

func (g *Group) At(i int) Graphic {
	if i < 0 || i >= len(g.children) {
		return nil
	}
	return g.children[i]
}

// Copy of the childs, back to front.
func (g *Group) Children() []Graphic {
	return slices.Clone(g.children)
}

func (g *Group) IndexOf(c Graphic) int {
	for i, u := range g.children {
		if u == c {
			return i
		}
	}
	return -1
}

//----------

func (g *Group) Add(c Graphic) {
	g.Insert(len(g.children), c)
}

// Returns false if the index is out of range. Panics if the graphic already has a parent, or if the insertion would create a cycle.
func (g *Group) Insert(i int, c Graphic) bool {
	if i < 0 || i > len(g.children) {
		return false
	}
	cb := c.Embed()
	if cb.parent != nil {
		panic(fmt.Sprintf("graphic already in a group: %T", c))
	}
	if cg, ok := c.(*Group); ok {
		if cg.layer != nil {
			panic("group already in a layer")
		}
		if cg == g || cg.IsAncestorOf(g) {
			panic("group cycle")
		}
	}
	g.children = slices.Insert(g.children, i, c)
	cb.parent = g
	invalidateTree(c)
	g.changed()
	return true
}

func (g *Group) Remove(c Graphic) bool {
	i := g.IndexOf(c)
	if i < 0 {
		return false
	}
	g.RemoveAt(i)
	return true
}

// Returns nil if the index is out of range. Removed groups lose any grab, current or focus role they held in the layer.
func (g *Group) RemoveAt(i int) Graphic {
	if i < 0 || i >= len(g.children) {
		return nil
	}
	c := g.children[i]
	l := g.Layer()

	g.children = slices.Delete(g.children, i, i+1)
	c.Embed().parent = nil
	invalidateTree(c)
	g.changed()

	if cg, ok := c.(*Group); ok && l != nil {
		l.groupRemoved(cg)
	}
	return c
}

func (g *Group) RemoveAll() {
	for len(g.children) > 0 {
		g.RemoveAt(len(g.children) - 1)
	}
}

// Moves the child to the front (last position). Roles in the layer are kept.
func (g *Group) BringToFront(c Graphic) bool {
	i := g.IndexOf(c)
	if i < 0 {
		return false
	}
	g.children = slices.Delete(g.children, i, i+1)
	g.children = append(g.children, c)
	g.markNeedsPaint()
	return true
}

// Reports whether u is a descendant of g.
func (g *Group) IsAncestorOf(u Graphic) bool {
	for p := u.Embed().parent; p != nil; p = p.parent {
		if p == g {
			return true
		}
	}
	return false
}

//----------

func (g *Group) Opaque() bool { return g.opaque }
func (g *Group) SetOpaque(v bool) {
	g.opaque = v
	g.markNeedsPaint()
}

func (g *Group) HandleEvents() bool { return g.handleEvents }
func (g *Group) SetHandleEvents(v bool) { g.handleEvents = v }
func (g *Group) PassThrough() bool { return g.passThrough }
func (g *Group) SetPassThrough(v bool) { g.passThrough = v }
func (g *Group) HasFocus() bool { return g.hasFocus }

//----------

// Union of the visible childs bounds.
func (g *Group) Bounds() mathutil.Rect {
	return g.cachedBounds(func() mathutil.Rect {
		r := mathutil.Rect{}
		for _, c := range g.children {
			if c.Embed().Visible() {
				r = r.Union(c.Bounds())
			}
		}
		return r
	})
}

func (g *Group) Contains(p mathutil.Point) bool {
	for _, c := range g.children {
		if c.Embed().Visible() && c.Contains(p) {
			return true
		}
	}
	return false
}

func (g *Group) Intersects(r mathutil.Rect) bool {
	for _, c := range g.children {
		if c.Embed().Visible() && c.Intersects(r) {
			return true
		}
	}
	return false
}

// Translates all childs in place.
func (g *Group) Move(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	for _, c := range g.children {
		c.Move(dx, dy)
	}
	g.changed()
}

func (g *Group) SetPosition(x, y float64, a Anchor) {
	setPosition(g, x, y, a)
}

//----------

func (g *Group) Paint(s drawutil.Surface, clip mathutil.Rect) {
	if g.hidden {
		return
	}
	s.Save()
	defer s.Restore()
	if g.opaque && !g.style.IsZero() {
		s.SetPaint(g.style)
		s.FillRect(g.Bounds())
	}
	for _, c := range g.children {
		if !c.Embed().Visible() {
			continue
		}
		if !c.Bounds().Overlaps(clip) {
			continue
		}
		c.Paint(s, clip)
	}
}

//----------

// Group that handles events at the hit rectangle (world coordinates), or nil. With passThrough, the front most child group that yields a handler overrides this group.
func (g *Group) EventHandler(hit mathutil.Rect) *Group {
	if g.hidden {
		return nil
	}
	var res *Group
	if g.handleEvents && g.Bounds().Overlaps(hit) {
		res = g
	}
	if g.passThrough {
		for i := len(g.children) - 1; i >= 0; i-- {
			cg, ok := g.children[i].(*Group)
			if !ok || !cg.Visible() || !cg.Bounds().Overlaps(hit) {
				continue
			}
			// only the front most intersecting child is tried
			if h := cg.EventHandler(hit); h != nil {
				return h
			}
			break
		}
	}
	return res
}

//----------

// Registers a listener. Remove with the returned regist Unregister().
func (g *Group) On(id EventId, fn func(*GroupEvent)) *evreg.Regist {
	return g.reg.Add(int(id), func(ev any) {
		fn(ev.(*GroupEvent))
	})
}

// Runs the listeners of the event id. Returns the number of listeners.
func (g *Group) Dispatch(ev *GroupEvent) int {
	ev.Group = g
	return g.reg.RunCallbacks(int(ev.Id), ev)
}

func (g *Group) NListeners(id EventId) int {
	return g.reg.NCallbacks(int(id))
}

func (g *Group) String() string {
	return fmt.Sprintf("group(%d childs, bounds=%v)", len(g.children), g.Bounds())
}
