package drawutil

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype/raster"
	"github.com/jmigpin/histogfx/util/fontutil"
	"github.com/jmigpin/histogfx/util/imageutil"
	"github.com/jmigpin/histogfx/util/mathutil"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Surface drawing into a draw.Image. Paths are rasterized with anti-aliasing (freetype raster), text with x/image/font.
type ImageSurface struct {
	img   draw.Image
	st    surfaceState
	stack []surfaceState

	rast *raster.Rasterizer
	mask *image.Alpha
}

type surfaceState struct {
	transform mathutil.Affine
	clip      image.Rectangle
	paint     Paint
	stroke    Stroke
	font      *fontutil.FontFace
	fontTf    mathutil.Affine
}

func NewImageSurface(img draw.Image) *ImageSurface {
	s := &ImageSurface{img: img}
	s.st = surfaceState{
		transform: mathutil.Identity(),
		clip:      img.Bounds(),
		paint:     PaintColor(color.Black),
		stroke:    DefaultStroke(),
		fontTf:    mathutil.Identity(),
	}
	return s
}

func (s *ImageSurface) Image() draw.Image {
	return s.img
}

//----------

func (s *ImageSurface) Save() {
	s.stack = append(s.stack, s.st)
}

func (s *ImageSurface) Restore() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	s.st = s.stack[n-1]
	s.stack = s.stack[:n-1]
}

// Number of saved states (used to check balanced save/restore).
func (s *ImageSurface) Depth() int {
	return len(s.stack)
}

//----------

func (s *ImageSurface) Transform() mathutil.Affine     { return s.st.transform }
func (s *ImageSurface) SetTransform(m mathutil.Affine) { s.st.transform = m }

func (s *ImageSurface) Clip() image.Rectangle { return s.st.clip }
func (s *ImageSurface) IntersectClip(r image.Rectangle) {
	s.st.clip = s.st.clip.Intersect(r)
}

func (s *ImageSurface) SetPaint(p Paint)   { s.st.paint = p }
func (s *ImageSurface) SetStroke(k Stroke) { s.st.stroke = k }

func (s *ImageSurface) SetFont(ff *fontutil.FontFace, tf mathutil.Affine) {
	s.st.font = ff
	s.st.fontTf = tf
}

//----------

func (s *ImageSurface) FillRect(r mathutil.Rect) {
	p := mathutil.Path{}
	c := r.Corners()
	p.MoveTo(c[0].X, c[0].Y)
	for _, q := range c[1:] {
		p.LineTo(q.X, q.Y)
	}
	p.Close()
	s.FillPath(&p)
}

func (s *ImageSurface) FillPath(p *mathutil.Path) {
	clip := s.st.clip
	if clip.Empty() || p.Empty() {
		return
	}
	rast := s.rasterizer(clip)
	rast.AddPath(s.rasterPath(p, clip.Min, false))
	s.paintRasterizer(rast, clip)
}

func (s *ImageSurface) StrokePath(p *mathutil.Path) {
	clip := s.st.clip
	if clip.Empty() || p.Empty() {
		return
	}
	sx, sy := s.st.transform.ScaleFactors()
	w := s.st.stroke.DeviceWidth(sx, sy)
	if w <= 0 {
		return
	}
	rast := s.rasterizer(clip)
	rp := s.rasterPath(p, clip.Min, true)
	raster.Stroke(rast, rp, fontutil.Float64ToFixed266(w), capper(s.st.stroke.Cap), joiner(s.st.stroke.Join))
	s.paintRasterizer(rast, clip)
}

func (s *ImageSurface) rasterizer(clip image.Rectangle) *raster.Rasterizer {
	w, h := clip.Dx(), clip.Dy()
	if s.rast == nil {
		s.rast = raster.NewRasterizer(w, h)
	} else {
		s.rast.SetBounds(w, h)
	}
	s.rast.UseNonZeroWinding = true
	s.rast.Clear()
	return s.rast
}

func (s *ImageSurface) paintRasterizer(rast *raster.Rasterizer, clip image.Rectangle) {
	mr := image.Rect(0, 0, clip.Dx(), clip.Dy())
	if s.mask == nil || !s.mask.Rect.Eq(mr) {
		s.mask = image.NewAlpha(mr)
	} else {
		clear(s.mask.Pix)
	}
	rast.Rasterize(raster.NewAlphaOverPainter(s.mask))

	src, srcp := s.paintSource(clip)
	if src == nil {
		return
	}
	imageutil.DrawMask(s.img, clip, src, srcp, s.mask, image.Point{}, draw.Over)
}

// Path in device space relative to origin. Closed subpaths get an explicit closing segment when stroking.
func (s *ImageSurface) rasterPath(p *mathutil.Path, origin image.Point, stroking bool) raster.Path {
	m := mathutil.Translate(-float64(origin.X), -float64(origin.Y)).Mul(s.st.transform)
	fx := func(q mathutil.Point) fixed.Point26_6 {
		u := m.Apply(q)
		return fontutil.Float64ToPoint266(u.X, u.Y)
	}
	var rp raster.Path
	var start mathutil.Point
	p.Iterate(func(op mathutil.PathOp, pts []mathutil.Point) {
		switch op {
		case mathutil.PathMoveTo:
			start = pts[0]
			rp.Start(fx(pts[0]))
		case mathutil.PathLineTo:
			rp.Add1(fx(pts[0]))
		case mathutil.PathQuadTo:
			rp.Add2(fx(pts[0]), fx(pts[1]))
		case mathutil.PathCubeTo:
			rp.Add3(fx(pts[0]), fx(pts[1]), fx(pts[2]))
		case mathutil.PathClose:
			if stroking {
				rp.Add1(fx(start))
			}
		}
	})
	return rp
}

func (s *ImageSurface) paintSource(clip image.Rectangle) (image.Image, image.Point) {
	p := s.st.paint
	if p.Pattern != nil {
		return &imageutil.Tiled{Tile: p.Pattern}, clip.Min
	}
	if p.Color == nil {
		return nil, image.Point{}
	}
	return image.NewUniform(p.Color), image.Point{}
}

//----------

func (s *ImageSurface) DrawString(str string, x, y float64) {
	clip := s.st.clip
	if clip.Empty() || s.st.font == nil || str == "" {
		return
	}
	face := s.DeviceFontFace()
	if face == nil {
		return
	}
	src, _ := s.paintSource(clip)
	if src == nil {
		return
	}
	o := s.st.transform.Apply(mathutil.Pt(x, y))
	d := &font.Drawer{
		Dst:  clipImage(s.img, clip),
		Src:  src,
		Face: face.Face,
		Dot:  fontutil.Float64ToPoint266(o.X, o.Y),
	}
	d.DrawString(str)
}

// Font face sized in device pixels for the current transform and font transform.
func (s *ImageSurface) DeviceFontFace() *fontutil.FontFace {
	if s.st.font == nil {
		return nil
	}
	_, sy := s.st.transform.Mul(s.st.fontTf).ScaleFactors()
	size := s.st.font.Size * sy
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil
	}
	return s.st.font.WithSize(size)
}

//----------

func capper(c Cap) raster.Capper {
	switch c {
	case CapRound:
		return raster.RoundCapper
	case CapSquare:
		return raster.SquareCapper
	}
	return raster.ButtCapper
}

func joiner(j Join) raster.Joiner {
	if j == JoinRound {
		return raster.RoundJoiner
	}
	return raster.BevelJoiner
}

//----------

func clipImage(img draw.Image, r image.Rectangle) draw.Image {
	switch t := img.(type) {
	case *imageutil.BGRA:
		return t.SubImage(r)
	case *image.RGBA:
		return t.SubImage(r).(*image.RGBA)
	}
	return &clippedImage{img, r.Intersect(img.Bounds())}
}

type clippedImage struct {
	draw.Image
	r image.Rectangle
}

func (ci *clippedImage) Bounds() image.Rectangle { return ci.r }
func (ci *clippedImage) Set(x, y int, c color.Color) {
	if (image.Point{x, y}).In(ci.r) {
		ci.Image.Set(x, y, c)
	}
}
