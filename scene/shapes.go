package scene

import (
	"image/color"
	"math"

	"github.com/jmigpin/histogfx/util/mathutil"
)

var defaultColor color.Color = color.Black

func NewLine(x1, y1, x2, y2 float64) *Shape {
	p := mathutil.Path{}
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return NewShape(p)
}

func NewRectangle(x, y, w, h float64) *Shape {
	p := mathutil.Path{}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return NewShape(p)
}

// Ellipse inscribed in the rectangle.
func NewEllipse(x, y, w, h float64) *Shape {
	p := mathutil.Path{}
	c := mathutil.Pt(x+w/2, y+h/2)
	p.Arc(c, w/2, h/2, 0, 2*math.Pi, true)
	p.Close()
	return NewShape(p)
}

func NewPolygon(pts ...mathutil.Point) *Shape {
	p := polyPath(pts)
	p.Close()
	return NewShape(p)
}

func NewPolyline(pts ...mathutil.Point) *Shape {
	return NewShape(polyPath(pts))
}

func polyPath(pts []mathutil.Point) mathutil.Path {
	p := mathutil.Path{}
	for i, q := range pts {
		if i == 0 {
			p.MoveTo(q.X, q.Y)
		} else {
			p.LineTo(q.X, q.Y)
		}
	}
	return p
}

//----------

type ArcClosure int

const (
	ArcOpen  ArcClosure = iota
	ArcChord            // straight line between the arc ends
	ArcPie              // lines to the ellipse center
)

// Arc of the ellipse inscribed in the rectangle. Angles are in degrees, counter-clockwise as seen on screen, 0 pointing right.
func NewArc(x, y, w, h, start, extent float64, closure ArcClosure) *Shape {
	p := mathutil.Path{}
	c := mathutil.Pt(x+w/2, y+h/2)
	rad := func(deg float64) float64 { return -deg * math.Pi / 180 }
	if closure == ArcPie {
		p.MoveTo(c.X, c.Y)
		p.Arc(c, w/2, h/2, rad(start), rad(extent), false)
	} else {
		p.Arc(c, w/2, h/2, rad(start), rad(extent), true)
	}
	if closure != ArcOpen {
		p.Close()
	}
	return NewShape(p)
}

// Star polygon centered at (cx,cy) with the first point facing up.
func NewStar(cx, cy, outer, inner float64, points int) *Shape {
	if points < 2 {
		points = 2
	}
	n := points * 2
	pts := make([]mathutil.Point, 0, n)
	for i := 0; i < n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/float64(points)
		pts = append(pts, mathutil.Pt(cx+r*math.Cos(a), cy+r*math.Sin(a)))
	}
	return NewPolygon(pts...)
}
