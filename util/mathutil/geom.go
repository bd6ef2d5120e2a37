package mathutil

import (
	"fmt"
	"image"
	"math"
)

// Float based point. Same semantics as image.Point.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{x, y} }

func PtImage(p image.Point) Point {
	return Point{float64(p.X), float64(p.Y)}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}
func (p Point) Mul(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// Half open, like image.Point.In.
func (p Point) In(r Rect) bool {
	return r.Min.X <= p.X && p.X < r.Max.X && r.Min.Y <= p.Y && p.Y < r.Max.Y
}

func (p Point) Eq(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

func (p Point) ToPointFloor() image.Point {
	return image.Point{int(math.Floor(p.X)), int(math.Floor(p.Y))}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

//----------

type Size struct {
	W, H float64
}

func Sz(w, h float64) Size { return Size{w, h} }

func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.W, s.H)
}

//----------

// Float based rectangle. Same semantics as image.Rectangle: contains points with Min.X <= X < Max.X, Min.Y <= Y < Max.Y. A rectangle with Dx or Dy <= 0 is empty.
type Rect struct {
	Min, Max Point
}

func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Point{x, y}, Point{x + w, y + h}}
}

func RectImage(r image.Rectangle) Rect {
	return Rect{PtImage(r.Min), PtImage(r.Max)}
}

// Square of side "size" centered at p.
func RectAround(p Point, size Size) Rect {
	h := Point{size.W / 2, size.H / 2}
	return Rect{p.Sub(h), p.Add(h)}
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Size() Size { return Size{r.Dx(), r.Dy()} }

func (r Rect) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

func (r Rect) Add(p Point) Rect {
	return Rect{r.Min.Add(p), r.Max.Add(p)}
}
func (r Rect) Sub(p Point) Rect {
	return Rect{r.Min.Sub(p), r.Max.Sub(p)}
}

// Negative values grow the rectangle.
func (r Rect) Inset(n float64) Rect {
	r.Min.X += n
	r.Min.Y += n
	r.Max.X -= n
	r.Max.Y -= n
	return r
}

func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

func (r Rect) Eq(s Rect, eps float64) bool {
	return (r.Empty() && s.Empty()) ||
		(r.Min.Eq(s.Min, eps) && r.Max.Eq(s.Max, eps))
}

func (r Rect) Intersect(s Rect) Rect {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	if r.Empty() {
		return Rect{}
	}
	return r
}

// Empty rectangles are ignored.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	if r.Min.X > s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y > s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X < s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y < s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Reports whether r and s have a non-empty intersection.
func (r Rect) Overlaps(s Rect) bool {
	return !r.Empty() && !s.Empty() &&
		r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

// Reports whether every point in r is in s.
func (r Rect) In(s Rect) bool {
	if r.Empty() {
		return true
	}
	return s.Min.X <= r.Min.X && r.Max.X <= s.Max.X &&
		s.Min.Y <= r.Min.Y && r.Max.Y <= s.Max.Y
}

// Closed containment test (edges included), used for geometry queries where zero-width shapes matter.
func (r Rect) ContainsClosed(p Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X && r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.Min,
		{r.Max.X, r.Min.Y},
		r.Max,
		{r.Min.X, r.Max.Y},
	}
}

func (r Rect) ToRectFloorCeil() image.Rectangle {
	min := image.Point{int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y))}
	max := image.Point{int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y))}
	return image.Rectangle{min, max}
}

func (r Rect) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}

//----------

// Bounding rectangle of the points. Zero rectangle if no points.
func BoundsOfPoints(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{pts[0], pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}
