package fontutil

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Rounds to the nearest 1/64.
func Float64ToFixed266(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
func Fixed266ToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func Float64ToPoint266(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: Float64ToFixed266(x), Y: Float64ToFixed266(y)}
}
