package scene

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/jmigpin/histogfx/util/drawutil"
	"github.com/jmigpin/histogfx/util/mathutil"
)

func filledRect(x, y, w, h float64) *Shape {
	sh := NewRectangle(x, y, w, h)
	sh.SetFilled(true)
	return sh
}

func eqRect(t *testing.T, r, want mathutil.Rect) {
	t.Helper()
	if !r.Eq(want, 1e-9) {
		t.Fatalf("got %v, want %v", r, want)
	}
}

//----------

func TestShapeOutlineNormalized(t *testing.T) {
	sh := filledRect(5, 7, 10, 4)
	if p := sh.Placement(); p != mathutil.Pt(5, 7) {
		t.Fatal(p)
	}
	o := sh.Outline()
	eqRect(t, o.Bounds(), mathutil.RectXYWH(0, 0, 10, 4))
	eqRect(t, sh.Bounds(), mathutil.RectXYWH(5, 7, 10, 4))
}

func TestShapeSetPositionAnchor(t *testing.T) {
	sh := filledRect(0, 0, 10, 4)
	sh.SetPosition(50, 50, BottomRight)
	if p := sh.Bounds().Min; p != mathutil.Pt(40, 46) {
		t.Fatal(p)
	}
	sh.SetPosition(0, 0, Center)
	if p := sh.Bounds().Min; p != mathutil.Pt(-5, -2) {
		t.Fatal(p)
	}
}

func TestShapeStrokeBounds(t *testing.T) {
	sh := NewRectangle(0, 0, 10, 10)
	sh.SetStrokeWidth(2)
	eqRect(t, sh.Bounds(), mathutil.Rect{Min: mathutil.Pt(-1, -1), Max: mathutil.Pt(11, 11)})
	sh.SetFilled(true)
	eqRect(t, sh.Bounds(), mathutil.RectXYWH(0, 0, 10, 10))
}

func TestShapeScreenUnitStroke(t *testing.T) {
	sh := NewLine(0, 0, 100, 0)
	sh.SetStroke(drawutil.Stroke{Width: 4, ScreenUnits: true})
	if y := sh.Bounds().Min.Y; y != -2 {
		t.Fatal(y)
	}

	img := image.NewRGBA(image.Rect(0, 0, 300, 50))
	s := drawutil.NewImageSurface(img)
	s.SetTransform(mathutil.Scale(2, 2))
	sh.Paint(s, sh.Bounds())

	// 4 pixels at scale 2 is 2 world units
	if y := sh.Bounds().Min.Y; y != -1 {
		t.Fatal(y)
	}
	if s.Depth() != 0 {
		t.Fatal("unbalanced save/restore")
	}
}

func TestShapeContains(t *testing.T) {
	sh := NewRectangle(0, 0, 10, 10)
	sh.SetStrokeWidth(2)
	if sh.Contains(mathutil.Pt(5, 5)) {
		t.Fatal("stroked shape interior")
	}
	if !sh.Contains(mathutil.Pt(0.5, 5)) {
		t.Fatal("expecting stroke hit")
	}
	sh.SetFilled(true)
	if !sh.Contains(mathutil.Pt(5, 5)) {
		t.Fatal("filled shape interior")
	}
	if sh.Contains(mathutil.Pt(11, 5)) {
		t.Fatal("outside")
	}
}

func TestShapeIntersects(t *testing.T) {
	sh := NewEllipse(0, 0, 20, 20)
	sh.SetFilled(true)
	if !sh.Intersects(mathutil.RectXYWH(8, 8, 4, 4)) {
		t.Fatal("center")
	}
	// bounding box corner, outside the circle
	if sh.Intersects(mathutil.RectXYWH(0, 0, 1, 1)) {
		t.Fatal("corner")
	}
}

func TestArcPieAndStar(t *testing.T) {
	pie := NewArc(0, 0, 20, 20, 0, 90, ArcPie)
	pie.SetFilled(true)
	// 0..90 degrees counter-clockwise on screen is the top right quadrant
	eqRect(t, pie.Bounds(), mathutil.Rect{Min: mathutil.Pt(10, 0), Max: mathutil.Pt(20, 10)})
	if !pie.Contains(mathutil.Pt(13, 7)) {
		t.Fatal("pie interior")
	}

	star := NewStar(0, 0, 10, 4, 5)
	star.SetFilled(true)
	if b := star.Bounds(); b.Min.Y != -10 {
		t.Fatal(b)
	}
	if !star.Contains(mathutil.Pt(0, 0)) {
		t.Fatal("star center")
	}
}

//----------

func TestGroupBoundsCache(t *testing.T) {
	g := NewGroup()
	a := filledRect(0, 0, 10, 10)
	b := filledRect(20, 0, 10, 10)
	g.Add(a)
	g.Add(b)
	eqRect(t, g.Bounds(), mathutil.RectXYWH(0, 0, 30, 10))

	b.Move(0, 10)
	eqRect(t, g.Bounds(), mathutil.RectXYWH(0, 0, 30, 20))

	b.SetVisible(false)
	eqRect(t, g.Bounds(), mathutil.RectXYWH(0, 0, 10, 10))

	g.Remove(a)
	if !g.Bounds().Empty() {
		t.Fatal(g.Bounds())
	}
}

func TestNestedGroupBoundsCache(t *testing.T) {
	top := NewGroup()
	mid := NewGroup()
	sh := filledRect(0, 0, 10, 10)
	mid.Add(sh)
	top.Add(mid)
	_ = top.Bounds()

	sh.Move(5, 5)
	eqRect(t, top.Bounds(), mathutil.RectXYWH(5, 5, 10, 10))

	top.Move(1, 1)
	eqRect(t, sh.Bounds(), mathutil.RectXYWH(6, 6, 10, 10))
	eqRect(t, top.Bounds(), mathutil.RectXYWH(6, 6, 10, 10))
}

func TestGroupInsertRemove(t *testing.T) {
	g := NewGroup()
	a := filledRect(0, 0, 1, 1)
	if g.Insert(1, a) {
		t.Fatal("expecting invalid index")
	}
	if !g.Insert(0, a) {
		t.Fatal("insert")
	}
	if a.Parent() != g {
		t.Fatal("parent")
	}
	if g.RemoveAt(3) != nil {
		t.Fatal("expecting nil")
	}
	if g.Remove(filledRect(0, 0, 1, 1)) {
		t.Fatal("not a child")
	}
	if g.RemoveAt(0) != a || a.Parent() != nil {
		t.Fatal("remove")
	}
}

func TestGroupInsertParented(t *testing.T) {
	g1, g2 := NewGroup(), NewGroup()
	a := filledRect(0, 0, 1, 1)
	g1.Add(a)
	defer func() {
		if recover() == nil {
			t.Fatal("expecting panic")
		}
	}()
	g2.Add(a)
}

func TestGroupCycle(t *testing.T) {
	g1, g2 := NewGroup(), NewGroup()
	g1.Add(g2)
	defer func() {
		if recover() == nil {
			t.Fatal("expecting panic")
		}
	}()
	g2.Add(g1)
}

func TestGroupBringToFront(t *testing.T) {
	g := NewGroup()
	a, b := filledRect(0, 0, 1, 1), filledRect(0, 0, 1, 1)
	g.Add(a)
	g.Add(b)
	g.BringToFront(a)
	if g.IndexOf(a) != 1 || g.IndexOf(b) != 0 {
		t.Fatal("order")
	}
}

func TestGroupOpaquePaint(t *testing.T) {
	g := NewGroup()
	g.Add(filledRect(0, 0, 4, 4))
	g.Add(filledRect(6, 0, 4, 4))
	g.SetStyle(drawutil.PaintColor(color.RGBA{255, 0, 0, 255}))
	g.SetOpaque(true)

	img := image.NewRGBA(image.Rect(0, 0, 10, 4))
	s := drawutil.NewImageSurface(img)
	g.Paint(s, g.Bounds())

	// gap between the childs is filled with the background
	if c := img.RGBAAt(5, 2); c != (color.RGBA{255, 0, 0, 255}) {
		t.Fatal(c)
	}
	if c := img.RGBAAt(1, 1); c != (color.RGBA{0, 0, 0, 255}) {
		t.Fatal(c)
	}
}

func TestTextFixedSize(t *testing.T) {
	txt := NewText("abc", 10, 10)
	b1 := txt.Bounds()
	if b1.Empty() {
		t.Fatal("empty text bounds")
	}
	txt.SetFixedSize(true)

	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	s := drawutil.NewImageSurface(img)
	s.SetTransform(mathutil.Scale(2, 2))
	txt.Paint(s, txt.Bounds())

	b2 := txt.Bounds()
	if d := b2.Dx() - b1.Dx()/2; d > 1e-9 || d < -1e-9 {
		t.Fatalf("%v %v", b1, b2)
	}
	if b2.Min != b1.Min {
		t.Fatal(b2)
	}
}

func TestScreenUnitsFollowLayerScale(t *testing.T) {
	l := newTestLayer(200, 200)
	tg := NewGroup()
	txt := NewText("abc", 10, 10)
	txt.SetFixedSize(true)
	tg.Add(txt)
	l.Add(tg)
	lg := NewGroup()
	line := NewLine(0, 100, 100, 100)
	line.SetStroke(drawutil.Stroke{Width: 4, ScreenUnits: true})
	lg.Add(line)
	l.Add(lg)

	b1 := txt.Bounds()
	if y := line.Bounds().Min.Y; y != 98 {
		t.Fatal(y)
	}

	// half the scale, no paint in between
	l.SetWorldViewSize(mathutil.Sz(400, 400), true)
	b2 := txt.Bounds()
	if d := b2.Dx() - 2*b1.Dx(); d > 1e-9 || d < -1e-9 {
		t.Fatalf("%v %v", b1, b2)
	}
	if d := tg.Bounds().Dy() - 2*b1.Dy(); d > 1e-9 || d < -1e-9 {
		t.Fatal(tg.Bounds())
	}
	if y := line.Bounds().Min.Y; y != 96 {
		t.Fatal(y)
	}

	// screen point inside the new text extent only
	wx := 10 + 1.5*b1.Dx()
	wy := 10 + b1.Dy()
	p := l.WorldToScreen(mathutil.Pt(wx, wy)).ToPointFloor()
	if g := l.FindGroup(p); g != tg {
		t.Fatalf("%v: expecting text group", p)
	}
}

func TestDump(t *testing.T) {
	g := NewGroup()
	g.Add(filledRect(0, 0, 10, 10))
	sub := NewGroup()
	sub.Add(NewLine(0, 0, 5, 0))
	sub.SetVisible(false)
	g.Add(sub)

	buf := &bytes.Buffer{}
	Dump(buf, g)
	s := buf.String()
	t.Log(s)
	if strings.Count(s, "\n") != 4 {
		t.Fatal(s)
	}
	if !strings.Contains(s, "\tgroup hidden") || !strings.Contains(s, "shape fill") {
		t.Fatal(s)
	}
}
