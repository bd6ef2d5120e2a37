package drawutil

import (
	"image"
	"image/color"
	"testing"

	"github.com/jmigpin/histogfx/util/fontutil"
	"github.com/jmigpin/histogfx/util/imageutil"
	"github.com/jmigpin/histogfx/util/mathutil"
	"golang.org/x/image/colornames"
)

func newTestSurface(w, h int) (*ImageSurface, *image.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	imageutil.FillRectangle(img, img.Bounds(), color.White)
	return NewImageSurface(img), img
}

func isColor(img image.Image, x, y int, c color.Color) bool {
	return imageutil.RgbaColor(img.At(x, y)) == imageutil.RgbaColor(c)
}

func TestFillRectTransformed(t *testing.T) {
	s, img := newTestSurface(100, 100)
	s.SetTransform(mathutil.Scale(2, 2).Mul(mathutil.Translate(-10, -10)))
	s.SetPaint(PaintColor(colornames.Red))
	s.FillRect(mathutil.RectXYWH(10, 10, 10, 5)) // device (0,0)-(20,10)

	if !isColor(img, 5, 5, colornames.Red) {
		t.Fatal(img.At(5, 5))
	}
	if !isColor(img, 25, 5, color.White) {
		t.Fatal(img.At(25, 5))
	}
	if !isColor(img, 5, 15, color.White) {
		t.Fatal(img.At(5, 15))
	}
}

func TestClip(t *testing.T) {
	s, img := newTestSurface(50, 50)
	s.IntersectClip(image.Rect(0, 0, 10, 10))
	s.SetPaint(PaintColor(colornames.Blue))
	s.FillRect(mathutil.RectXYWH(0, 0, 50, 50))
	if !isColor(img, 5, 5, colornames.Blue) {
		t.Fatal()
	}
	if !isColor(img, 20, 20, color.White) {
		t.Fatal()
	}
}

func TestSaveRestore(t *testing.T) {
	s, _ := newTestSurface(10, 10)
	s.Save()
	s.SetTransform(mathutil.Scale(3, 3))
	s.IntersectClip(image.Rect(0, 0, 1, 1))
	s.SetStroke(Stroke{Width: 5})
	s.Restore()
	if !s.Transform().IsIdentity() {
		t.Fatal(s.Transform())
	}
	if s.Clip() != image.Rect(0, 0, 10, 10) {
		t.Fatal(s.Clip())
	}
	if s.Depth() != 0 {
		t.Fatal()
	}
	s.Restore() // unbalanced restore is a no-op
}

func TestStrokeWorldVsScreenUnits(t *testing.T) {
	line := mathutil.Path{}
	line.MoveTo(0, 10)
	line.LineTo(20, 10)

	// world units: width 2 scaled by 4 -> 8px, covers y in [36,44]
	s, img := newTestSurface(100, 100)
	s.SetTransform(mathutil.Scale(4, 4))
	s.SetPaint(PaintColor(color.Black))
	s.SetStroke(Stroke{Width: 2})
	s.StrokePath(&line)
	if !isColor(img, 40, 37, color.Black) {
		t.Fatal(img.At(40, 37))
	}

	// screen units: 2px, covers y in [39,41]
	s2, img2 := newTestSurface(100, 100)
	s2.SetTransform(mathutil.Scale(4, 4))
	s2.SetPaint(PaintColor(color.Black))
	s2.SetStroke(Stroke{Width: 2, ScreenUnits: true})
	s2.StrokePath(&line)
	if !isColor(img2, 40, 37, color.White) {
		t.Fatal(img2.At(40, 37))
	}
	if !isColor(img2, 40, 40, color.Black) {
		t.Fatal(img2.At(40, 40))
	}
}

func TestDeviceFontFace(t *testing.T) {
	s, img := newTestSurface(200, 100)
	ff := fontutil.DefaultFont().FontFace(10)
	s.SetTransform(mathutil.Scale(2, 2))
	s.SetFont(ff, mathutil.Identity())
	if u := s.DeviceFontFace(); u.Size != 20 {
		t.Fatal(u.Size)
	}
	// fixed size: font transform cancels the ambient scale
	s.SetFont(ff, mathutil.Scale(0.5, 0.5))
	if u := s.DeviceFontFace(); u.Size != 10 {
		t.Fatal(u.Size)
	}

	s.SetPaint(PaintColor(color.Black))
	s.DrawString("WWW", 5, 30)
	dark := false
	for x := 10; x < 60 && !dark; x++ {
		for y := 50; y < 60; y++ {
			if !isColor(img, x, y, color.White) {
				dark = true
				break
			}
		}
	}
	if !dark {
		t.Fatal("no text drawn")
	}
}

func TestPatternPaint(t *testing.T) {
	tile := image.NewRGBA(image.Rect(0, 0, 2, 1))
	tile.Set(0, 0, colornames.Red)
	tile.Set(1, 0, colornames.Lime)
	s, img := newTestSurface(10, 10)
	s.SetPaint(Paint{Pattern: tile})
	s.FillRect(mathutil.RectXYWH(0, 0, 10, 10))
	if !isColor(img, 4, 3, colornames.Red) || !isColor(img, 5, 3, colornames.Lime) {
		t.Fatal(img.At(4, 3), img.At(5, 3))
	}
}
