package mathutil

import (
	"fmt"
	"math"
)

// 2x3 affine matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

func Identity() Affine {
	return Affine{A: 1, E: 1}
}

func Translate(x, y float64) Affine {
	return Affine{A: 1, C: x, E: 1, F: y}
}

func Scale(sx, sy float64) Affine {
	return Affine{A: sx, E: sy}
}

// Returns m*n: n is applied first, then m.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

func (m Affine) Apply(p Point) Point {
	return Point{
		m.A*p.X + m.B*p.Y + m.C,
		m.D*p.X + m.E*p.Y + m.F,
	}
}

// Applies without the translation part.
func (m Affine) ApplyVector(p Point) Point {
	return Point{m.A*p.X + m.B*p.Y, m.D*p.X + m.E*p.Y}
}

// Bounding rectangle of the transformed corners.
func (m Affine) ApplyRect(r Rect) Rect {
	c := r.Corners()
	for i := range c {
		c[i] = m.Apply(c[i])
	}
	return BoundsOfPoints(c[:]...)
}

func (m Affine) Det() float64 {
	return m.A*m.E - m.B*m.D
}

func (m Affine) Invertible() bool {
	d := m.Det()
	return d != 0 && !math.IsNaN(d) && !math.IsInf(d, 0)
}

func (m Affine) Inverse() (Affine, bool) {
	if !m.Invertible() {
		return Affine{}, false
	}
	d := m.Det()
	inv := Affine{
		A: m.E / d,
		B: -m.B / d,
		D: -m.D / d,
		E: m.A / d,
	}
	inv.C = -(inv.A*m.C + inv.B*m.F)
	inv.F = -(inv.D*m.C + inv.E*m.F)
	return inv, true
}

// Length of the transformed unit vectors.
func (m Affine) ScaleFactors() (sx, sy float64) {
	sx = math.Hypot(m.A, m.D)
	sy = math.Hypot(m.B, m.E)
	return sx, sy
}

func (m Affine) Translation() Point {
	return Point{m.C, m.F}
}

func (m Affine) IsIdentity() bool {
	return m == Identity()
}

func (m Affine) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]", m.A, m.B, m.C, m.D, m.E, m.F)
}
