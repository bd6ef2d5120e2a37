package scene

import (
	"fmt"

	"github.com/jmigpin/histogfx/util/mathutil"
)

// Reference point of a bounding box.
type Anchor int

const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
	MiddleLeft
	Center
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
)

func (a Anchor) Point(r mathutil.Rect) mathutil.Point {
	x := [3]float64{r.Min.X, (r.Min.X + r.Max.X) / 2, r.Max.X}
	y := [3]float64{r.Min.Y, (r.Min.Y + r.Max.Y) / 2, r.Max.Y}
	i := int(a)
	if i < 0 || i > int(BottomRight) {
		i = int(TopLeft)
	}
	return mathutil.Point{X: x[i%3], Y: y[i/3]}
}

func (a Anchor) String() string {
	switch a {
	case TopLeft:
		return "topleft"
	case TopCenter:
		return "topcenter"
	case TopRight:
		return "topright"
	case MiddleLeft:
		return "middleleft"
	case Center:
		return "center"
	case MiddleRight:
		return "middleright"
	case BottomLeft:
		return "bottomleft"
	case BottomCenter:
		return "bottomcenter"
	case BottomRight:
		return "bottomright"
	}
	return fmt.Sprintf("anchor(%d)", int(a))
}
