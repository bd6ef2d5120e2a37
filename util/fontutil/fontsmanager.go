package fontutil

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func DefaultFont() *Font {
	f, err := FontsMan.Font(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
}

func DefaultFontFace() *FontFace {
	return DefaultFont().FontFace(DefaultSize)
}

const DefaultSize = 12 // points, dpi=72 (1pt ~ 1px)

//----------

// Not safe for concurrent use: intended to be used from the UI goroutine.
var FontsMan = NewFontsManager()

//----------

type FontsManager struct {
	fontsCache map[string]*Font
}

func NewFontsManager() *FontsManager {
	fm := &FontsManager{}
	fm.ClearFontsCache()
	return fm
}

func (fm *FontsManager) ClearFontsCache() {
	fm.fontsCache = map[string]*Font{}
}

func (fm *FontsManager) Font(ttf []byte) (*Font, error) {
	f, ok := fm.fontsCache[string(ttf)]
	if ok {
		return f, nil
	}
	f, err := NewFont(ttf)
	if err != nil {
		return nil, err
	}
	fm.fontsCache[string(ttf)] = f
	return f, nil
}

//----------

type Font struct {
	Font       *sfnt.Font
	facesCache map[float64]*FontFace
}

func NewFont(ttf []byte) (*Font, error) {
	font, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	f := &Font{Font: font}
	f.ClearFacesCache()
	return f, nil
}

func (f *Font) ClearFacesCache() {
	f.facesCache = map[float64]*FontFace{}
}

// Size in points at 72 dpi. Sizes are rounded to 1/64 to keep the cache small.
func (f *Font) FontFace(size float64) *FontFace {
	size = math.Round(size*64) / 64
	if size <= 0 {
		size = 1.0 / 64
	}
	ff, ok := f.facesCache[size]
	if ok {
		return ff
	}
	ff = NewFontFace(f, size)
	f.facesCache[size] = ff
	return ff
}

//----------

type FontFace struct {
	Font    *Font
	Face    font.Face
	Size    float64 // in points, readonly
	Metrics font.Metrics

	lineHeight fixed.Int26_6
	baselineY  fixed.Int26_6
}

func NewFontFace(f *Font, size float64) *FontFace {
	opt := opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone}
	face, err := opentype.NewFace(f.Font, &opt)
	if err != nil { // currently, no error is being returned
		panic(err)
	}

	ff := &FontFace{Font: f, Face: face, Size: size}
	ff.Metrics = face.Metrics()
	ff.lineHeight = max(
		ff.Metrics.Ascent+ff.Metrics.Descent,
		ff.Metrics.Height)
	ff.baselineY = min(
		ff.Metrics.Ascent,
		ff.lineHeight-ff.Metrics.Descent)
	return ff
}

// Same font, another size.
func (ff *FontFace) WithSize(size float64) *FontFace {
	return ff.Font.FontFace(size)
}

func (ff *FontFace) LineHeight() fixed.Int26_6 {
	return ff.lineHeight
}
func (ff *FontFace) LineHeightFloat() float64 {
	return Fixed266ToFloat64(ff.LineHeight())
}

func (ff *FontFace) BaseLine() fixed.Point26_6 {
	return fixed.Point26_6{X: 0, Y: ff.baselineY}
}
func (ff *FontFace) BaseLineFloat() float64 {
	return Fixed266ToFloat64(ff.baselineY)
}

// Advance width of the string in pixels.
func (ff *FontFace) MeasureString(s string) float64 {
	return Fixed266ToFloat64(font.MeasureString(ff.Face, s))
}
