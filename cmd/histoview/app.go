package main

import (
	"fmt"
	"image"
	"math"

	"github.com/jmigpin/histogfx/scene"
	"github.com/jmigpin/histogfx/util/drawutil"
	"github.com/jmigpin/histogfx/util/fontutil"
	"github.com/jmigpin/histogfx/util/mathutil"
	"github.com/jmigpin/histogfx/util/uiutil/event"
)

const (
	plotMargin = 10
	zoomFactor = 1.25
)

// Histogram scene: a plot layer with one group per bucket, and a label layer pinned to the top-right corner.
type App struct {
	Canvas    *scene.Canvas
	SetCursor func(event.Cursor)

	cfg      *Config
	colors   *colors
	nBuckets int

	plot       *scene.Layer
	bg         *scene.Group
	bgShape    *scene.Shape
	bars       []*bar
	marker     *scene.Group
	markerText *scene.Text

	labels *scene.Layer
	label  *scene.Text

	nValues  int
	buckets  []Bucket
	view     mathutil.Rect
	hover    int // -1: none
	selected int // -1: none
	dragLast image.Point
}

type bar struct {
	g  *scene.Group
	sh *scene.Shape
}

func NewApp(cfg *Config, nBuckets int) (*App, error) {
	if nBuckets <= 0 {
		return nil, fmt.Errorf("bad number of buckets: %v", nBuckets)
	}
	cols, err := cfg.Palette.colors()
	if err != nil {
		return nil, err
	}
	app := &App{
		Canvas:   scene.NewCanvas(),
		cfg:      cfg,
		colors:   cols,
		nBuckets: nBuckets,
		hover:    -1,
		selected: -1,
	}
	face := fontutil.DefaultFont().FontFace(cfg.FontSize)

	// plot
	app.plot = scene.NewLayer()
	app.plot.HitSize = cfg.HitSize
	att := scene.AttachAll()
	att.TopOffset, att.BottomOffset = plotMargin, plotMargin
	att.LeftOffset, att.RightOffset = plotMargin, plotMargin
	app.Canvas.Add(app.plot, att)

	app.bg = scene.NewGroup()
	app.bgShape = scene.NewRectangle(0, 0, 1, 1)
	app.bgShape.SetFilled(true)
	app.bgShape.SetStyle(drawutil.PaintColor(cols.bg))
	app.bg.Add(app.bgShape)
	app.plot.Add(app.bg)
	app.listenView(app.bg)
	app.listenKeys(app.bg)
	app.plot.SetKeyboardGrab(app.bg)

	app.marker = scene.NewGroup()
	app.marker.SetHandleEvents(false)
	app.markerText = scene.NewText("", 0, 0)
	app.markerText.SetFontFace(face)
	app.markerText.SetFixedSize(true)
	app.markerText.SetStyle(drawutil.PaintColor(cols.text))
	app.marker.Add(app.markerText)
	app.marker.SetVisible(false)
	app.plot.Add(app.marker)

	// label
	app.labels = scene.NewLayer()
	app.Canvas.Add(app.labels, scene.Attachment{
		Top: true, Right: true,
		TopOffset: plotMargin + 4, RightOffset: plotMargin + 4,
		ZIndex: 1,
	})
	lg := scene.NewGroup()
	lg.SetHandleEvents(false)
	app.label = scene.NewText("", 0, 0)
	app.label.SetFontFace(face)
	app.label.SetStyle(drawutil.PaintColor(cols.text))
	lg.Add(app.label)
	app.labels.Add(lg)

	app.SetValues(nil)
	return app, nil
}

// Host view size. The plot is attached to all edges and fills the view.
func (app *App) SetSize(size image.Point) {
	app.Canvas.SetSize(size)
}

//----------

// Rebuilds the bars. The selection is kept if the bucket still exists.
func (app *App) SetValues(values []float64) {
	for _, b := range app.bars {
		app.plot.Remove(b.g)
	}
	app.bars = nil
	app.hover = -1
	app.nValues = len(values)
	app.buckets = Bucketize(values, app.nBuckets)
	if app.selected >= len(app.buckets) {
		app.selected = -1
	}

	n := float64(max(len(app.buckets), 1))
	mc := float64(max(maxCount(app.buckets), 1))
	gap := app.cfg.BarGap
	for i, b := range app.buckets {
		h := float64(b.Count)
		sh := scene.NewRectangle(float64(i)+gap/2, mc-h, 1-gap, h)
		sh.SetFilled(true)
		g := scene.NewGroup()
		g.Add(sh)
		app.plot.Add(g)
		app.bars = append(app.bars, &bar{g: g, sh: sh})
		app.listenBar(g, i)
		app.listenView(g)
	}
	app.plot.BringToFront(app.marker)

	// background covers the reachable views
	app.bgShape.SetOutline(rectPath(3*n, 3*mc))
	app.bgShape.SetPosition(-n, -mc, scene.TopLeft)

	app.setView(mathutil.Rect{Min: mathutil.Pt(0, -0.05*mc), Max: mathutil.Pt(n, mc)})
	app.updateStyles()
}

func rectPath(w, h float64) mathutil.Path {
	p := mathutil.Path{}
	p.MoveTo(0, 0)
	p.LineTo(w, 0)
	p.LineTo(w, h)
	p.LineTo(0, h)
	p.Close()
	return p
}

//----------

func (app *App) listenBar(g *scene.Group, i int) {
	g.On(scene.EvMouseEnter, func(*scene.GroupEvent) {
		app.setHover(i)
		app.setCursor(event.PointerCursor)
	})
	g.On(scene.EvMouseExit, func(*scene.GroupEvent) {
		if app.hover == i {
			app.setHover(-1)
		}
		app.setCursor(event.DefaultCursor)
	})
	g.On(scene.EvMouseClick, func(*scene.GroupEvent) {
		app.setSelected(i)
	})
}

// Dragging pans the view horizontally, the wheel zooms.
func (app *App) listenView(g *scene.Group) {
	g.On(scene.EvMouseWheel, func(ev *scene.GroupEvent) {
		md, ok := ev.Raw.(*event.MouseDown)
		if !ok {
			return
		}
		switch md.Button {
		case event.ButtonWheelUp:
			app.zoom(zoomFactor)
		case event.ButtonWheelDown:
			app.zoom(1 / zoomFactor)
		}
	})
	g.On(scene.EvMousePress, func(ev *scene.GroupEvent) {
		app.dragLast = ev.ScreenPoint
	})
	g.On(scene.EvMouseDragStart, func(ev *scene.GroupEvent) {
		app.plot.SetMouseGrab(g)
		app.setCursor(event.MoveCursor)
	})
	g.On(scene.EvMouseDrag, func(ev *scene.GroupEvent) {
		d := ev.ScreenPoint.Sub(app.dragLast)
		app.dragLast = ev.ScreenPoint
		app.pan(d.X)
	})
	g.On(scene.EvMouseDragEnd, func(ev *scene.GroupEvent) {
		app.plot.SetMouseGrab(nil)
		app.setCursor(event.DefaultCursor)
	})
}

func (app *App) listenKeys(g *scene.Group) {
	g.On(scene.EvKeyTyped, func(ev *scene.GroupEvent) {
		kt, ok := ev.Raw.(*event.KeyTyped)
		if !ok {
			return
		}
		switch kt.Rune {
		case '+', '=':
			app.zoom(zoomFactor)
		case '-':
			app.zoom(1 / zoomFactor)
		case '0':
			app.ResetView()
		}
	})
	g.On(scene.EvKeyDown, func(ev *scene.GroupEvent) {
		kd, ok := ev.Raw.(*event.KeyDown)
		if !ok {
			return
		}
		switch kd.KeySym {
		case event.KSymLeft:
			if app.selected > 0 {
				app.setSelected(app.selected - 1)
			}
		case event.KSymRight:
			if app.selected < len(app.bars)-1 {
				app.setSelected(app.selected + 1)
			}
		case event.KSymEscape:
			app.setSelected(-1)
		}
	})
}

func (app *App) setCursor(c event.Cursor) {
	if app.SetCursor != nil {
		app.SetCursor(c)
	}
}

//----------

func (app *App) setHover(i int) {
	app.hover = i
	app.updateStyles()
}

func (app *App) setSelected(i int) {
	if i < 0 || i >= len(app.bars) {
		i = -1
	}
	app.selected = i
	if i >= 0 {
		// keep the selection in view
		v := app.view
		x := float64(i) + 0.5
		if x < v.Min.X || x > v.Max.X {
			w := v.Dx()
			v.Min.X = x - w/2
			v.Max.X = v.Min.X + w
			app.setView(v)
		}
	}
	app.updateStyles()
}

func (app *App) updateStyles() {
	for i, b := range app.bars {
		c := app.colors.bar
		switch i {
		case app.selected:
			c = app.colors.selected
		case app.hover:
			c = app.colors.hover
		}
		if b.sh.Style().Color != c {
			b.sh.SetStyle(drawutil.PaintColor(c))
		}
	}
	app.updateMarker()
	app.updateLabel()
}

// Count of the selected bucket, above its bar.
func (app *App) updateMarker() {
	if app.selected < 0 {
		app.marker.SetVisible(false)
		return
	}
	b := app.buckets[app.selected]
	app.markerText.SetString(fmt.Sprint(b.Count))
	_, sy := app.plot.Scale()
	h := 0.0
	if sy > 0 {
		h = app.markerText.FontFace().LineHeightFloat() / sy
	}
	top := app.bars[app.selected].sh.Bounds().Min.Y
	app.markerText.SetPosition(float64(app.selected)+app.cfg.BarGap/2, top-h, scene.TopLeft)
	app.marker.SetVisible(true)
}

func (app *App) labelString() string {
	i := app.selected
	if i < 0 {
		i = app.hover
	}
	if i >= 0 {
		return fmt.Sprintf("#%d %v", i, app.buckets[i])
	}
	return fmt.Sprintf("%d values, %d buckets", app.nValues, len(app.buckets))
}

func (app *App) updateLabel() {
	app.label.SetString(app.labelString())

	// one world unit per pixel
	b := app.label.Bounds()
	size := image.Pt(int(math.Ceil(b.Dx())), int(math.Ceil(b.Dy())))
	wsize := mathutil.Sz(float64(size.X), float64(size.Y))
	app.labels.SetWorldBounds(mathutil.RectAround(b.Center(), wsize), false)
	app.labels.SetWorldViewSize(wsize, false)
	app.labels.SetScreenViewSize(size, true)
}

//----------

func (app *App) setView(r mathutil.Rect) {
	app.view = r
	app.plot.SetWorldBounds(r, false)
	app.plot.SetWorldViewSize(r.Size(), true)
	app.updateMarker()
}

// Resets the view to show all the buckets.
func (app *App) ResetView() {
	n := float64(max(len(app.buckets), 1))
	v := app.view
	v.Min.X, v.Max.X = 0, n
	app.setView(v)
}

func (app *App) pan(dx int) {
	sx, _ := app.plot.Scale()
	if sx == 0 || dx == 0 {
		return
	}
	v := app.view.Sub(mathutil.Pt(float64(dx)/sx, 0))
	app.setView(app.clampView(v))
}

func (app *App) zoom(f float64) {
	n := float64(max(len(app.buckets), 1))
	v := app.view
	c := v.Center().X
	w := mathutil.LimitFloat64(v.Dx()/f, 1, 4*n)
	v.Min.X = c - w/2
	v.Max.X = c + w/2
	app.setView(app.clampView(v))
}

// Keeps at least half of the view over the buckets.
func (app *App) clampView(v mathutil.Rect) mathutil.Rect {
	n := float64(max(len(app.buckets), 1))
	w := v.Dx()
	x := mathutil.LimitFloat64(v.Min.X, -w/2, n-w/2)
	v.Min.X, v.Max.X = x, x+w
	return v
}
