package main

import (
	"image"
	"math"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/histogfx/util/uiutil/event"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(DefaultConfig(), 4)
	if err != nil {
		t.Fatal(err)
	}
	app.SetValues([]float64{0, 0, 1, 2, 3, 3, 3}) // counts: 2,1,1,3
	app.SetSize(image.Pt(420, 320))               // plot: 400x300 at (10,10)
	return app
}

// Canvas point over the middle of the bar.
func barPoint(app *App, i int) image.Point {
	r := app.bars[i].g.Bounds()
	p := app.plot.WorldToScreen(r.Center()).ToPointFloor()
	return p.Add(app.plot.Bounds().Min)
}

func TestAppLayout(t *testing.T) {
	app := newTestApp(t)
	if b := app.plot.Bounds(); b != image.Rect(10, 10, 410, 310) {
		t.Fatal(b)
	}
	if sx, _ := app.plot.Scale(); sx != 100 {
		t.Fatal(sx)
	}
	if len(app.bars) != 4 {
		t.Fatal(spew.Sdump(app.buckets))
	}
	lb := app.labels.Bounds()
	if lb.Max.X != 420-plotMargin-4 || lb.Min.Y != plotMargin+4 || lb.Empty() {
		t.Fatal(lb)
	}
}

func TestAppHoverAndSelect(t *testing.T) {
	app := newTestApp(t)
	c := app.Canvas
	cursors := []event.Cursor{}
	app.SetCursor = func(u event.Cursor) { cursors = append(cursors, u) }

	p := barPoint(app, 3)
	c.HandleInput(&event.MouseMove{Point: p}, p)
	if app.hover != 3 {
		t.Fatal(app.hover)
	}
	if len(cursors) != 1 || cursors[0] != event.PointerCursor {
		t.Fatal(cursors)
	}

	c.HandleInput(&event.MouseDown{Point: p, Button: event.ButtonLeft}, p)
	c.HandleInput(&event.MouseUp{Point: p, Button: event.ButtonLeft}, p)
	if app.selected != 3 {
		t.Fatal(app.selected)
	}
	if s := app.label.String(); !strings.HasPrefix(s, "#3 ") {
		t.Fatal(s)
	}
	if !app.marker.Visible() || app.markerText.String() != "3" {
		t.Fatal("marker")
	}
	if app.bars[3].sh.Style().Color != app.colors.selected {
		t.Fatal("selected color")
	}

	// keyboard grab on the background
	c.HandleInput(&event.KeyDown{KeySym: event.KSymLeft}, p)
	if app.selected != 2 {
		t.Fatal(app.selected)
	}
	c.HandleInput(&event.KeyDown{KeySym: event.KSymEscape}, p)
	if app.selected != -1 || app.marker.Visible() {
		t.Fatal(app.selected)
	}

	// hovered bar goes back to the bar color on exit
	q := barPoint(app, 0)
	c.HandleInput(&event.MouseMove{Point: q}, q)
	if app.hover != 0 || app.bars[3].sh.Style().Color != app.colors.bar {
		t.Fatal(app.hover)
	}
}

func TestAppZoomAndPan(t *testing.T) {
	app := newTestApp(t)
	c := app.Canvas
	p := barPoint(app, 2)
	c.HandleInput(&event.MouseMove{Point: p}, p)

	c.HandleInput(&event.KeyDown{KeySym: event.KeySym('+'), Rune: '+'}, p)
	if w := app.view.Dx(); math.Abs(w-3.2) > 1e-9 {
		t.Fatal(w)
	}
	if x := app.view.Min.X; math.Abs(x-0.4) > 1e-9 {
		t.Fatal(x)
	}

	// drag right by 150px at 125px per bucket
	p2 := p.Add(image.Pt(50, 0))
	p3 := p.Add(image.Pt(150, 0))
	btn := event.MouseButtons(event.ButtonLeft)
	c.HandleInput(&event.MouseDown{Point: p, Button: event.ButtonLeft}, p)
	c.HandleInput(&event.MouseMove{Point: p2, Buttons: btn}, p2)
	if app.plot.MouseGrab() == nil {
		t.Fatal("expecting mouse grab")
	}
	c.HandleInput(&event.MouseMove{Point: p3, Buttons: btn}, p3)
	c.HandleInput(&event.MouseUp{Point: p3, Button: event.ButtonLeft}, p3)
	if x := app.view.Min.X; math.Abs(x-(-0.8)) > 1e-6 {
		t.Fatal(x)
	}
	if app.plot.MouseGrab() != nil {
		t.Fatal("grab not released")
	}
	if app.selected != -1 {
		t.Fatal("drag is not a click")
	}

	c.HandleInput(&event.KeyDown{KeySym: event.KeySym('0'), Rune: '0'}, p3)
	if app.view.Min.X != 0 || app.view.Max.X != 4 {
		t.Fatal(app.view)
	}
}

func TestAppShrink(t *testing.T) {
	app := newTestApp(t)
	app.SetSize(image.Pt(220, 120))
	if b := app.plot.Bounds(); b != image.Rect(10, 10, 210, 110) {
		t.Fatal(b)
	}
	if s := app.Canvas.Size(); s != image.Pt(220, 120) {
		t.Fatal(s)
	}
}

func TestAppWheelZoom(t *testing.T) {
	app := newTestApp(t)
	p := barPoint(app, 1)
	app.Canvas.HandleInput(&event.MouseDown{Point: p, Button: event.ButtonWheelUp}, p)
	app.Canvas.HandleInput(&event.MouseUp{Point: p, Button: event.ButtonWheelUp}, p)
	if w := app.view.Dx(); math.Abs(w-3.2) > 1e-9 {
		t.Fatal(w)
	}
	if app.selected != -1 {
		t.Fatal("wheel is not a click")
	}
}

func TestAppZoomLimits(t *testing.T) {
	app := newTestApp(t)
	for i := 0; i < 20; i++ {
		app.zoom(zoomFactor)
	}
	if w := app.view.Dx(); math.Abs(w-1) > 1e-9 {
		t.Fatal(w)
	}
	for i := 0; i < 40; i++ {
		app.zoom(1 / zoomFactor)
	}
	if w := app.view.Dx(); math.Abs(w-16) > 1e-9 {
		t.Fatal(w)
	}
	// centered on the buckets
	if x := app.view.Min.X; math.Abs(x-(-6)) > 1e-9 {
		t.Fatal(x)
	}
}

func TestAppReloadClearsHover(t *testing.T) {
	app := newTestApp(t)
	c := app.Canvas
	p := barPoint(app, 1)
	c.HandleInput(&event.MouseMove{Point: p}, p)
	c.HandleInput(&event.MouseDown{Point: p, Button: event.ButtonLeft}, p)
	c.HandleInput(&event.MouseUp{Point: p, Button: event.ButtonLeft}, p)
	if app.hover != 1 || app.selected != 1 {
		t.Fatal(app.hover, app.selected)
	}

	app.SetValues([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	if app.hover != -1 || app.plot.CurrentGroup() != nil {
		t.Fatal("hover kept after reload")
	}
	if app.selected != 1 || app.markerText.String() != "2" {
		t.Fatal(app.selected, app.markerText.String())
	}
	if app.plot.Len() != 4+2 {
		t.Fatal(app.plot.Len())
	}
}
