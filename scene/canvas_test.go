package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"testing"

	"github.com/jmigpin/histogfx/util/drawutil"
	"github.com/jmigpin/histogfx/util/mathutil"
	"github.com/jmigpin/histogfx/util/testutil"
	"github.com/jmigpin/histogfx/util/uiutil/event"
)

func TestCanvasLayout(t *testing.T) {
	ar, err := testutil.ReadArchive("testdata/layout.txt")
	if err != nil {
		t.Fatal(err)
	}
	ar.RunPairs(t, func(t2 *testing.T, in, out []byte) error {
		res, err := runLayoutScript(string(in))
		if err != nil {
			return err
		}
		return testutil.CompareLines(res, string(out))
	})
}

func runLayoutScript(src string) (string, error) {
	c := NewCanvas()
	layers := map[string]*Layer{}
	names := map[*Layer]string{}
	buf := &bytes.Buffer{}

	ints := func(args []string) ([]int, error) {
		u := []int{}
		for _, a := range args {
			v, err := strconv.Atoi(a)
			if err != nil {
				return nil, err
			}
			u = append(u, v)
		}
		return u, nil
	}
	layer := func(name string) (*Layer, error) {
		l, ok := layers[name]
		if !ok {
			return nil, fmt.Errorf("unknown layer: %v", name)
		}
		return l, nil
	}

	for i, line := range strings.Split(src, "\n") {
		f := strings.Fields(line)
		if len(f) == 0 {
			continue
		}
		err := func() error {
			switch f[0] {
			case "view":
				v, err := ints(f[1:])
				if err != nil || len(v) != 2 {
					return fmt.Errorf("bad view: %v", err)
				}
				c.SetSize(image.Pt(v[0], v[1]))
			case "layer":
				if len(f) != 8 {
					return fmt.Errorf("bad layer")
				}
				v, err := ints(f[3:])
				if err != nil {
					return err
				}
				edges := f[2]
				att := Attachment{
					Top:    strings.Contains(edges, "t"),
					Bottom: strings.Contains(edges, "b"),
					Left:   strings.Contains(edges, "l"),
					Right:  strings.Contains(edges, "r"),

					TopOffset:    v[0],
					BottomOffset: v[1],
					LeftOffset:   v[2],
					RightOffset:  v[3],
					ZIndex:       v[4],
				}
				l := NewLayer()
				layers[f[1]] = l
				names[l] = f[1]
				c.Add(l, att)
			case "pixels", "pos":
				l, err := layer(f[1])
				if err != nil {
					return err
				}
				v, err := ints(f[2:])
				if err != nil || len(v) != 2 {
					return fmt.Errorf("bad %v: %v", f[0], err)
				}
				if f[0] == "pos" {
					l.SetPosition(image.Pt(v[0], v[1]))
				} else {
					l.pixelSize = image.Pt(v[0], v[1])
					c.relayout()
				}
			case "print":
				fmt.Fprintf(buf, "canvas %d %d\n", c.Size().X, c.Size().Y)
				for _, l := range c.Layers() {
					b := l.Bounds()
					fmt.Fprintf(buf, "%s %d %d %d %d\n", names[l], b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
				}
			default:
				return fmt.Errorf("unknown command: %v", f[0])
			}
			return nil
		}()
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return buf.String(), nil
}

//----------

func TestCanvasResizeFullyAttached(t *testing.T) {
	c := NewCanvas()
	l := newTestLayer(50, 50)
	c.Add(l, AttachAll())
	resized := []image.Point{}
	c.OnResize = func(size image.Point) { resized = append(resized, size) }

	c.SetSize(image.Pt(400, 300))
	if l.Bounds() != image.Rect(0, 0, 400, 300) {
		t.Fatal(l.Bounds())
	}
	c.SetSize(image.Pt(800, 300))
	if l.Bounds() != image.Rect(0, 0, 800, 300) {
		t.Fatal(l.Bounds())
	}
	if len(resized) != 2 || resized[1] != image.Pt(800, 300) {
		t.Fatal(resized)
	}
	// the transform follows the view size
	if sx, sy := l.Scale(); sx != 16 || sy != 6 {
		t.Fatal(sx, sy)
	}
	if l.PixelSize() != image.Pt(800, 300) {
		t.Fatal(l.PixelSize())
	}
}

func TestCanvasResizeSingleAxis(t *testing.T) {
	c := NewCanvas()
	l := newTestLayer(50, 50)
	c.Add(l, Attachment{Left: true, Right: true, Top: true})
	c.SetSize(image.Pt(200, 100))
	if l.ScreenViewSize() != image.Pt(200, 50) {
		t.Fatal(l.ScreenViewSize())
	}
	if sx, sy := l.Scale(); sx != 4 || sy != 1 {
		t.Fatal(sx, sy)
	}
	if l.Bounds() != image.Rect(0, 0, 200, 50) {
		t.Fatal(l.Bounds())
	}
}

func TestCanvasScreenViewOffsets(t *testing.T) {
	c := NewCanvas()
	l := NewLayer()
	att := Attachment{Left: true, Right: true, Top: true, LeftOffset: 10, RightOffset: 30, TopOffset: 10}
	c.Add(l, att)
	l.SetWorldBounds(mathutil.RectXYWH(0, 0, 100, 100), false)
	l.SetWorldViewSize(mathutil.Sz(100, 100), false)
	l.SetScreenViewSize(image.Pt(240, 200), true)

	// horizontal offsets are subtracted, vertical aren't (single edge)
	sx, sy := l.Scale()
	if sx != 2 || sy != 2 {
		t.Fatal(sx, sy)
	}
}

func TestCanvasLayerAt(t *testing.T) {
	c := NewCanvas()
	a := newTestLayer(100, 100)
	b := newTestLayer(50, 50)
	c.Add(a, Attachment{ZIndex: 1})
	c.Add(b, Attachment{})
	c.SetSize(image.Pt(200, 200))

	if c.LayerAt(image.Pt(10, 10)) != a {
		t.Fatal("expecting a (higher z-index)")
	}
	if c.LayerAt(image.Pt(150, 150)) != nil {
		t.Fatal("expecting nil")
	}
	c.SetAttachment(b, Attachment{ZIndex: 2})
	if c.LayerAt(image.Pt(10, 10)) != b {
		t.Fatal("expecting b")
	}
	if !c.Remove(b) || c.LayerAt(image.Pt(10, 10)) != a {
		t.Fatal("expecting a")
	}
}

//----------

type canvasFixture struct {
	c      *Canvas
	ga, gb *Group
	rec    *evRecorder
}

// Layer a fills the canvas, layer b is a 100x100 square on top at the origin.
func newCanvasFixture() *canvasFixture {
	f := &canvasFixture{c: NewCanvas(), rec: &evRecorder{}}
	a := newTestLayer(400, 300)
	b := newTestLayer(100, 100)
	f.c.Add(a, AttachAll())
	f.c.Add(b, Attachment{Left: true, Top: true, ZIndex: 1})
	f.c.SetSize(image.Pt(400, 300))

	f.ga = newRectGroup(0, 0, 400, 300)
	f.gb = newRectGroup(0, 0, 100, 100)
	a.Add(f.ga)
	b.Add(f.gb)
	ids := []EventId{}
	for id := EvMousePress; id <= EvKeyTyped; id++ {
		ids = append(ids, id)
	}
	f.rec.listen("a", f.ga, ids...)
	f.rec.listen("b", f.gb, ids...)
	return f
}

func TestCanvasRouting(t *testing.T) {
	f := newCanvasFixture()
	c := f.c

	c.HandleInput(move(image.Pt(50, 50)), image.Pt(50, 50))
	c.HandleInput(move(image.Pt(200, 200)), image.Pt(200, 200))
	f.rec.check(t,
		"b:mouseenter", "b:mousemove",
		"b:mouseexit", "a:mouseenter", "a:mousemove")

	// press on a, drag over b: a keeps receiving
	c.HandleInput(&event.MouseDown{Point: image.Pt(200, 200), Button: event.ButtonLeft}, image.Pt(200, 200))
	c.HandleInput(&event.MouseMove{Point: image.Pt(50, 50), Buttons: event.MouseButtons(event.ButtonLeft)}, image.Pt(50, 50))
	c.HandleInput(&event.MouseUp{Point: image.Pt(50, 50), Button: event.ButtonLeft}, image.Pt(50, 50))
	f.rec.check(t,
		"a:mousepress", "a:mousemove", "a:mousedragstart",
		"a:mouserelease", "a:mousedragend")

	// keys go to the layer that got the press
	c.HandleInput(&event.KeyDown{KeySym: event.KeySym('x'), Rune: 'x'}, image.Pt(50, 50))
	f.rec.check(t, "a:keydown", "a:keytyped")

	// released: b is under the pointer again
	c.HandleInput(move(image.Pt(51, 50)), image.Pt(51, 50))
	f.rec.check(t, "a:mouseexit", "b:mouseenter", "b:mousemove")
}

func TestCanvasClick(t *testing.T) {
	f := newCanvasFixture()
	c := f.c
	p := image.Pt(200, 200)
	c.HandleInput(&event.MouseDown{Point: p, Button: event.ButtonLeft}, p)
	c.HandleInput(&event.MouseUp{Point: p, Button: event.ButtonLeft}, p)
	f.rec.check(t, "a:mouseenter", "a:mousepress", "a:mouserelease", "a:mouseclick")

	// ctrl doesn't produce typed keys
	kd := &event.KeyDown{KeySym: event.KeySym('c'), Rune: 'c', Mods: event.ModCtrl}
	c.HandleInput(kd, p)
	f.rec.check(t, "a:keydown")
}

func TestCanvasMouseLeave(t *testing.T) {
	f := newCanvasFixture()
	c := f.c
	c.HandleInput(move(image.Pt(50, 50)), image.Pt(50, 50))
	c.HandleInput(&event.MouseLeave{}, image.Pt(-1, -1))
	f.rec.check(t, "b:mouseenter", "b:mousemove", "b:mouseexit")
}

func TestCanvasPaint(t *testing.T) {
	c := NewCanvas()
	l := NewLayer()
	c.Add(l, Attachment{Left: true, Top: true, LeftOffset: 10, TopOffset: 10})
	l.SetWorldBounds(mathutil.RectXYWH(0, 0, 100, 50), false)
	l.SetWorldViewSize(mathutil.Sz(100, 50), false)
	l.SetScreenViewSize(image.Pt(200, 100), true)
	c.SetSize(image.Pt(300, 200))
	if l.Bounds() != image.Rect(10, 10, 210, 110) {
		t.Fatal(l.Bounds())
	}

	painted := []image.Rectangle{}
	c.OnNeedsPaint = func(r image.Rectangle) { painted = append(painted, r) }

	g := NewGroup()
	red := color.RGBA{255, 0, 0, 255}
	sh := filledRect(0, 0, 50, 50)
	sh.SetStyle(drawutil.PaintColor(red))
	g.Add(sh)
	l.Add(g)
	if len(painted) == 0 || painted[len(painted)-1] != l.Bounds() {
		t.Fatal(painted)
	}

	img := image.NewRGBA(image.Rect(0, 0, 300, 200))
	s := drawutil.NewImageSurface(img)
	if err := c.Paint(s, img.Bounds()); err != nil {
		t.Fatal(err)
	}
	if s.Depth() != 0 {
		t.Fatal("unbalanced save/restore")
	}
	for _, u := range []struct {
		p image.Point
		c color.RGBA
	}{
		{image.Pt(20, 20), red},
		{image.Pt(109, 109), red},
		{image.Pt(111, 50), color.RGBA{}},
		{image.Pt(5, 5), color.RGBA{}},
	} {
		if c := img.RGBAAt(u.p.X, u.p.Y); c != u.c {
			t.Fatalf("%v: %v", u.p, c)
		}
	}
}

func TestCanvasPaintSkipsNonInvertible(t *testing.T) {
	c := NewCanvas()
	bad := NewLayer() // zero world view size
	c.Add(bad, AttachAll())
	good := newTestLayer(10, 10)
	c.Add(good, Attachment{ZIndex: 1})
	c.SetSize(image.Pt(20, 20))

	g := NewGroup()
	g.Add(filledRect(0, 0, 10, 10))
	good.Add(g)

	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	if err := c.Paint(drawutil.NewImageSurface(img), img.Bounds()); err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(5, 5); c != (color.RGBA{0, 0, 0, 255}) {
		t.Fatal(c)
	}
}

func TestCanvasPaintDuringDispatch(t *testing.T) {
	f := newCanvasFixture()
	c := f.c
	sh := filledRect(0, 0, 400, 300)
	f.ga.Add(sh)

	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	var err error
	f.gb.On(EvMousePress, func(*GroupEvent) {
		err = c.Paint(drawutil.NewImageSurface(img), img.Bounds())
	})
	p := image.Pt(50, 50)
	c.HandleInput(&event.MouseDown{Point: p, Button: event.ButtonLeft}, p)
	if !errors.Is(err, ErrPaintDuringDispatch) {
		t.Fatal(err)
	}
	// no layer was painted, including the one not dispatching
	if c := img.RGBAAt(200, 200); c != (color.RGBA{}) {
		t.Fatal(c)
	}

	if err := c.Paint(drawutil.NewImageSurface(img), img.Bounds()); err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(200, 200); c != (color.RGBA{0, 0, 0, 255}) {
		t.Fatal(c)
	}
}
