package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// Pixels stored blue, green, red, alpha: the byte order of a 32 bit depth X server image. The memory layout is the one of image.RGBA, so draws can take the RGBA fast paths with swapped sources (see DrawMask).
type BGRA struct {
	image.RGBA
}

var _ draw.Image = (*BGRA)(nil)

func NewBGRA(r image.Rectangle) *BGRA {
	return &BGRA{*image.NewRGBA(r)}
}

func (img *BGRA) ColorModel() color.Model { return color.RGBAModel }

func (img *BGRA) At(x, y int) color.Color {
	return img.RGBAAt(x, y)
}
func (img *BGRA) RGBAAt(x, y int) color.RGBA {
	return swapRB(img.RGBA.RGBAAt(x, y))
}

func (img *BGRA) Set(x, y int, c color.Color) {
	img.SetRGBA(x, y, RgbaColor(c))
}
func (img *BGRA) SetRGBA(x, y int, c color.RGBA) {
	img.RGBA.SetRGBA(x, y, swapRB(c))
}

func (img *BGRA) SubImage(r image.Rectangle) draw.Image {
	u := img.RGBA.SubImage(r).(*image.RGBA)
	return &BGRA{*u}
}

// Raw bytes of row y in [x0,x1), ready to be sent to the server.
func (img *BGRA) RowPix(y, x0, x1 int) []uint8 {
	i := img.PixOffset(x0, y)
	return img.Pix[i : i+(x1-x0)*4]
}

//----------

func BgraColor(c color.Color) color.RGBA {
	return swapRB(RgbaColor(c))
}

func swapRB(c color.RGBA) color.RGBA {
	c.R, c.B = c.B, c.R
	return c
}
