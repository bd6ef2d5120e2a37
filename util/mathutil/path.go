package mathutil

import (
	"math"
)

type PathOp uint8

const (
	PathMoveTo PathOp = iota // 1 point
	PathLineTo               // 1 point
	PathQuadTo               // 2 points: control, end
	PathCubeTo               // 3 points: control1, control2, end
	PathClose                // 0 points
)

func (op PathOp) npoints() int {
	switch op {
	case PathMoveTo, PathLineTo:
		return 1
	case PathQuadTo:
		return 2
	case PathCubeTo:
		return 3
	}
	return 0
}

//----------

// Outline made of subpaths. The zero path is empty and ready for use.
type Path struct {
	ops []PathOp
	pts []Point
}

func (p *Path) MoveTo(x, y float64) {
	p.add(PathMoveTo, Point{x, y})
}
func (p *Path) LineTo(x, y float64) {
	p.ensureStarted()
	p.add(PathLineTo, Point{x, y})
}
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.ensureStarted()
	p.add(PathQuadTo, Point{cx, cy}, Point{x, y})
}
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.ensureStarted()
	p.add(PathCubeTo, Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y})
}
func (p *Path) Close() {
	if len(p.ops) == 0 || p.ops[len(p.ops)-1] == PathClose {
		return
	}
	p.ops = append(p.ops, PathClose)
}

func (p *Path) add(op PathOp, pts ...Point) {
	p.ops = append(p.ops, op)
	p.pts = append(p.pts, pts...)
}

// Drawing without a moveto starts at the last point (or origin).
func (p *Path) ensureStarted() {
	if len(p.ops) == 0 {
		p.add(PathMoveTo, Point{})
		return
	}
	if p.ops[len(p.ops)-1] == PathClose {
		p.add(PathMoveTo, p.subpathStart())
	}
}

func (p *Path) subpathStart() Point {
	k := len(p.pts)
	for i := len(p.ops) - 1; i >= 0; i-- {
		k -= p.ops[i].npoints()
		if p.ops[i] == PathMoveTo {
			return p.pts[k]
		}
	}
	return Point{}
}

//----------

func (p *Path) Empty() bool {
	return len(p.ops) == 0
}

func (p *Path) Clone() Path {
	u := Path{}
	u.ops = append(u.ops, p.ops...)
	u.pts = append(u.pts, p.pts...)
	return u
}

// Calls fn for every op with the op points (the slice is only valid during the call).
func (p *Path) Iterate(fn func(op PathOp, pts []Point)) {
	k := 0
	for _, op := range p.ops {
		n := op.npoints()
		fn(op, p.pts[k:k+n])
		k += n
	}
}

func (p *Path) Transform(m Affine) Path {
	u := p.Clone()
	for i := range u.pts {
		u.pts[i] = m.Apply(u.pts[i])
	}
	return u
}

func (p *Path) Translate(dx, dy float64) Path {
	return p.Transform(Translate(dx, dy))
}

// Tight bounds of the outline (curves are flattened).
func (p *Path) Bounds() Rect {
	var all []Point
	for _, pl := range p.Flatten() {
		all = append(all, pl.Pts...)
	}
	return BoundsOfPoints(all...)
}

//----------

type Polyline struct {
	Pts    []Point
	Closed bool
}

const (
	quadSegments  = 16
	cubicSegments = 24
)

// Converts curves into line segments, one polyline per subpath.
func (p *Path) Flatten() []Polyline {
	var res []Polyline
	var cur *Polyline
	var last Point
	flush := func() {
		if cur != nil && len(cur.Pts) > 0 {
			res = append(res, *cur)
		}
		cur = nil
	}
	p.Iterate(func(op PathOp, pts []Point) {
		switch op {
		case PathMoveTo:
			flush()
			cur = &Polyline{Pts: []Point{pts[0]}}
			last = pts[0]
		case PathLineTo:
			cur.Pts = append(cur.Pts, pts[0])
			last = pts[0]
		case PathQuadTo:
			for i := 1; i <= quadSegments; i++ {
				t := float64(i) / quadSegments
				cur.Pts = append(cur.Pts, quadAt(last, pts[0], pts[1], t))
			}
			last = pts[1]
		case PathCubeTo:
			for i := 1; i <= cubicSegments; i++ {
				t := float64(i) / cubicSegments
				cur.Pts = append(cur.Pts, cubicAt(last, pts[0], pts[1], pts[2], t))
			}
			last = pts[2]
		case PathClose:
			cur.Closed = true
			last = cur.Pts[0]
			flush()
		}
	})
	flush()
	return res
}

func quadAt(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	return Point{
		u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return Point{
		a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

//----------

// Interior test using the non-zero winding rule. Every subpath is implicitly closed.
func (p *Path) Contains(q Point) bool {
	winding := 0
	for _, pl := range p.Flatten() {
		n := len(pl.Pts)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			a := pl.Pts[i]
			b := pl.Pts[(i+1)%n]
			if a.Y <= q.Y {
				if b.Y > q.Y && cross(a, b, q) > 0 {
					winding++
				}
			} else {
				if b.Y <= q.Y && cross(a, b, q) < 0 {
					winding--
				}
			}
		}
	}
	return winding != 0
}

func cross(a, b, q Point) float64 {
	return (b.X-a.X)*(q.Y-a.Y) - (q.X-a.X)*(b.Y-a.Y)
}

// Reports whether the interior (if fill) or the outline touches r.
func (p *Path) IntersectsRect(r Rect, fill bool) bool {
	if r.Empty() {
		return false
	}
	b := p.Bounds()
	if !(b.Min.X <= r.Max.X && r.Min.X <= b.Max.X &&
		b.Min.Y <= r.Max.Y && r.Min.Y <= b.Max.Y) {
		return false
	}
	if fill {
		for _, c := range r.Corners() {
			if p.Contains(c) {
				return true
			}
		}
	}
	found := false
	p.iterateSegments(fill, func(a, b Point) bool {
		found = SegmentIntersectsRect(a, b, r)
		return !found
	})
	return found
}

// Smallest distance from q to the outline. Returns +Inf for an empty path.
func (p *Path) Distance(q Point, closeSubpaths bool) float64 {
	d := math.Inf(1)
	p.iterateSegments(closeSubpaths, func(a, b Point) bool {
		d = math.Min(d, SegmentDistance(q, a, b))
		return true
	})
	return d
}

// If closeAll, open subpaths get an implicit closing segment.
func (p *Path) iterateSegments(closeAll bool, fn func(a, b Point) bool) {
	for _, pl := range p.Flatten() {
		n := len(pl.Pts)
		if n == 1 {
			if !fn(pl.Pts[0], pl.Pts[0]) {
				return
			}
			continue
		}
		for i := 0; i+1 < n; i++ {
			if !fn(pl.Pts[i], pl.Pts[i+1]) {
				return
			}
		}
		if (pl.Closed || closeAll) && n > 2 {
			if !fn(pl.Pts[n-1], pl.Pts[0]) {
				return
			}
		}
	}
}

//----------

func SegmentDistance(q, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return math.Hypot(q.X-a.X, q.Y-a.Y)
	}
	t := ((q.X-a.X)*ab.X + (q.Y-a.Y)*ab.Y) / l2
	t = LimitFloat64(t, 0, 1)
	c := a.Add(ab.Mul(t))
	return math.Hypot(q.X-c.X, q.Y-c.Y)
}

// Edges of r are included.
func SegmentIntersectsRect(a, b Point, r Rect) bool {
	if r.ContainsClosed(a) || r.ContainsClosed(b) {
		return true
	}
	c := r.Corners()
	for i := 0; i < 4; i++ {
		if segmentsIntersect(a, b, c[i], c[(i+1)%4]) {
			return true
		}
	}
	return false
}

func segmentsIntersect(p1, p2, p3, p4 Point) bool {
	d1 := cross(p3, p4, p1)
	d2 := cross(p3, p4, p2)
	d3 := cross(p1, p2, p3)
	d4 := cross(p1, p2, p4)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	on := func(a, b, q Point) bool {
		return math.Min(a.X, b.X) <= q.X && q.X <= math.Max(a.X, b.X) &&
			math.Min(a.Y, b.Y) <= q.Y && q.Y <= math.Max(a.Y, b.Y)
	}
	switch {
	case d1 == 0 && on(p3, p4, p1):
		return true
	case d2 == 0 && on(p3, p4, p2):
		return true
	case d3 == 0 && on(p1, p2, p3):
		return true
	case d4 == 0 && on(p1, p2, p4):
		return true
	}
	return false
}

//----------

// Appends an elliptical arc centered at c. Angles in radians, y axis pointing down (positive sweep is clockwise on screen). Starts a new subpath if moveTo, otherwise draws a line to the arc start.
func (p *Path) Arc(c Point, rx, ry, start, sweep float64, moveTo bool) {
	at := func(a float64) Point {
		return Point{c.X + rx*math.Cos(a), c.Y + ry*math.Sin(a)}
	}
	s := at(start)
	if moveTo || p.Empty() {
		p.MoveTo(s.X, s.Y)
	} else {
		p.LineTo(s.X, s.Y)
	}
	if sweep == 0 {
		return
	}
	// split in pieces of at most 90 degrees
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	a0 := start
	for i := 0; i < n; i++ {
		a1 := a0 + step
		p0, p3 := at(a0), at(a1)
		c1 := Point{p0.X - k*rx*math.Sin(a0), p0.Y + k*ry*math.Cos(a0)}
		c2 := Point{p3.X + k*rx*math.Sin(a1), p3.Y - k*ry*math.Cos(a1)}
		p.CubeTo(c1.X, c1.Y, c2.X, c2.Y, p3.X, p3.Y)
		a0 = a1
	}
}
