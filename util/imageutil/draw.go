package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

func DrawMask(
	dst draw.Image,
	r image.Rectangle,
	src image.Image, srcp image.Point,
	mask image.Image, maskp image.Point,
	op draw.Op,
) {
	// improve performance for bgra
	if bgra, ok := dst.(*BGRA); ok {
		dst = &bgra.RGBA
		src = bgraSource(src)
	}
	draw.DrawMask(dst, r, src, srcp, mask, maskp, op)
}

// Sources drawn into a bgra image (by the rgba fast path) need the red/blue channels swapped.
func bgraSource(src image.Image) image.Image {
	switch t := src.(type) {
	case *image.Uniform:
		return image.NewUniform(BgraColor(t.C))
	case *BGRA:
		return &t.RGBA
	}
	return &bgraView{src}
}

type bgraView struct {
	image.Image
}

func (v *bgraView) ColorModel() color.Model { return color.RGBAModel }
func (v *bgraView) At(x, y int) color.Color {
	return BgraColor(v.Image.At(x, y))
}

//----------

func DrawUniformMask(
	dst draw.Image,
	r image.Rectangle,
	c color.Color,
	mask image.Image, maskp image.Point,
	op draw.Op,
) {
	if c == nil {
		return
	}
	src := image.NewUniform(c)
	DrawMask(dst, r, src, image.Point{}, mask, maskp, op)
}

func DrawUniform(dst draw.Image, r image.Rectangle, c color.Color, op draw.Op) {
	DrawUniformMask(dst, r, c, nil, image.Point{}, op)
}

func FillRectangle(img draw.Image, r image.Rectangle, c color.Color) {
	DrawUniform(img, r, c, draw.Src)
}

//----------

// Source image that repeats the tile in both directions.
type Tiled struct {
	Tile image.Image
}

func (t *Tiled) ColorModel() color.Model { return t.Tile.ColorModel() }
func (t *Tiled) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}
func (t *Tiled) At(x, y int) color.Color {
	b := t.Tile.Bounds()
	if b.Empty() {
		return color.Transparent
	}
	x = b.Min.X + mod(x-b.Min.X, b.Dx())
	y = b.Min.Y + mod(y-b.Min.Y, b.Dy())
	return t.Tile.At(x, y)
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
