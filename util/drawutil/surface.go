package drawutil

import (
	"image"
	"image/color"

	"github.com/jmigpin/histogfx/util/fontutil"
	"github.com/jmigpin/histogfx/util/mathutil"
)

// Drawing target with a saved/restored state stack. User space coordinates are mapped to device pixels by the current transform.
type Surface interface {
	// Pushes a copy of the current state (transform, clip, paint, stroke, font).
	Save()
	// Pops the state saved by the matching Save. No-op if nothing is saved.
	Restore()

	Transform() mathutil.Affine
	SetTransform(mathutil.Affine)

	// Device space clip.
	Clip() image.Rectangle
	// Intersects the current clip with r (device space).
	IntersectClip(r image.Rectangle)

	SetPaint(Paint)
	SetStroke(Stroke)
	// Face size is in user units; the font transform is applied before the surface transform.
	SetFont(ff *fontutil.FontFace, fontTransform mathutil.Affine)

	FillPath(p *mathutil.Path)
	StrokePath(p *mathutil.Path)
	FillRect(r mathutil.Rect)
	// (x,y) is the baseline origin in user space.
	DrawString(s string, x, y float64)
}

//----------

type Paint struct {
	Color   color.Color
	Pattern image.Image // if set, tiled in device space instead of the color
}

func PaintColor(c color.Color) Paint {
	return Paint{Color: c}
}

func (p Paint) IsZero() bool {
	return p.Color == nil && p.Pattern == nil
}

//----------

type Stroke struct {
	Width       float64
	Cap         Cap
	Join        Join
	ScreenUnits bool // width in device pixels, not scaled by the transform
}

func DefaultStroke() Stroke {
	return Stroke{Width: 1, Cap: CapButt, Join: JoinBevel}
}

// Width in user units given the transform scale factors.
func (s Stroke) UserWidth(sx, sy float64) float64 {
	if !s.ScreenUnits {
		return s.Width
	}
	k := (sx + sy) / 2
	if k == 0 {
		return s.Width
	}
	return s.Width / k
}

// Width in device pixels given the transform scale factors.
func (s Stroke) DeviceWidth(sx, sy float64) float64 {
	if s.ScreenUnits {
		return s.Width
	}
	return s.Width * (sx + sy) / 2
}

type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

type Join int

const (
	JoinBevel Join = iota
	JoinRound
)
