package imageutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

func RgbaColor(c color.Color) color.RGBA {
	if u, ok := c.(color.RGBA); ok {
		return u
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func RgbaFromInt(u int) color.RGBA {
	v := u & 0xffffff
	r := uint8((v << 0) >> 16)
	g := uint8((v << 8) >> 16)
	b := uint8((v << 16) >> 16)
	return color.RGBA{r, g, b, 255}
}

// Accepts "#rrggbb", "#rrggbbaa" and "rrggbb".
func ParseHexColor(s string) (color.RGBA, error) {
	u := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(u) != 6 && len(u) != 8 {
		return color.RGBA{}, fmt.Errorf("bad hex color: %q", s)
	}
	v, err := strconv.ParseUint(u, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color: %q: %w", s, err)
	}
	if len(u) == 6 {
		return RgbaFromInt(int(v)), nil
	}
	c := RgbaFromInt(int(v >> 8))
	c.A = uint8(v)
	return c, nil
}

func SprintRgb(c color.Color) string {
	rgba := RgbaColor(c)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

//----------

// Turn color lighter by v percent (0.0, 1.0).
func Tint(c color.Color, v float64) color.Color {
	return tint(RgbaColor(c), v)
}

// Turn color darker by v percent (0.0, 1.0).
func Shade(c color.Color, v float64) color.Color {
	return shade(RgbaColor(c), v)
}

func TintOrShade(c color.Color, v float64) color.Color {
	c2 := RgbaColor(c)
	if isLighter(c2) {
		return shade(c2, v)
	}
	return tint(c2, v)
}

func isLighter(c color.RGBA) bool {
	u := int(c.R) + int(c.G) + int(c.B)
	return u > 256*3/2
}
func tint(c color.RGBA, v float64) color.Color {
	if v < 0 || v > 1 {
		panic("!")
	}
	c.R += uint8(v * float64((255 - c.R)))
	c.G += uint8(v * float64((255 - c.G)))
	c.B += uint8(v * float64((255 - c.B)))
	return c
}
func shade(c color.RGBA, v float64) color.Color {
	if v < 0 || v > 1 {
		panic("!")
	}
	v = 1.0 - v
	c.R = uint8(v * float64(c.R))
	c.G = uint8(v * float64(c.G))
	c.B = uint8(v * float64(c.B))
	return c
}
