package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAffineInverseRoundTrip(t *testing.T) {
	ms := []Affine{
		Identity(),
		Translate(-10, 25),
		Scale(2, 0.5),
		Scale(3, 7).Mul(Translate(-100, -40)),
		{A: 1, B: 0.3, C: 4, D: -0.2, E: 2, F: -9},
	}
	pts := []Point{{0, 0}, {1, 1}, {-37.5, 12.25}, {1e4, -3e3}}
	for _, m := range ms {
		inv, ok := m.Inverse()
		if !assert.True(t, ok, "%v", m) {
			continue
		}
		for _, p := range pts {
			q := inv.Apply(m.Apply(p))
			assert.InDelta(t, p.X, q.X, 1e-9)
			assert.InDelta(t, p.Y, q.Y, 1e-9)
		}
	}
}

func TestAffineNotInvertible(t *testing.T) {
	for _, m := range []Affine{
		Scale(0, 1),
		Scale(1, 0),
		Scale(math.Inf(1), 1),
		{A: 1, B: 2, D: 2, E: 4},
	} {
		_, ok := m.Inverse()
		assert.False(t, ok, "%v", m)
	}
}

func TestAffineMulOrder(t *testing.T) {
	// translate first, then scale
	m := Scale(2, 3).Mul(Translate(-10, -20))
	p := m.Apply(Pt(15, 30))
	assert.InDelta(t, 10.0, p.X, 1e-12)
	assert.InDelta(t, 30.0, p.Y, 1e-12)

	sx, sy := m.ScaleFactors()
	assert.Equal(t, 2.0, sx)
	assert.Equal(t, 3.0, sy)
}

func TestAffineApplyRect(t *testing.T) {
	m := Scale(2, -1)
	r := m.ApplyRect(RectXYWH(1, 1, 3, 2))
	assert.True(t, r.Eq(Rect{Pt(2, -3), Pt(8, -1)}, 1e-12), "%v", r)
}
