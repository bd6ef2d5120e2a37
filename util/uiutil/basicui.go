package uiutil

import (
	"image"
	"image/color"
	"log"
	"time"

	"github.com/jmigpin/histogfx/driver"
	"github.com/jmigpin/histogfx/scene"
	"github.com/jmigpin/histogfx/util/drawutil"
	"github.com/jmigpin/histogfx/util/imageutil"
	"github.com/jmigpin/histogfx/util/uiutil/event"
	"github.com/jmigpin/histogfx/util/uiutil/mousefilter"
)

// Connects a canvas to a driver window: window events are routed to the canvas, and the regions the canvas reports are painted into the window image.
type BasicUI struct {
	DrawFrameRate int // frame per second
	Background    color.Color
	Canvas        *scene.Canvas
	Win           driver.Window

	// Called with the new window size. Defaults to setting the canvas size.
	OnResize func(image.Point)

	events    chan any
	lastPaint time.Time
	dirty     image.Rectangle
	curCursor event.Cursor
}

func NewBasicUI(winName string, c *scene.Canvas) (*BasicUI, error) {
	win, err := driver.NewWindow()
	if err != nil {
		return nil, err
	}
	win.SetWindowName(winName)

	ui := &BasicUI{
		DrawFrameRate: 37,
		Background:    color.White,
		Canvas:        c,
		Win:           win,
		events:        make(chan any, 256),
	}
	c.OnNeedsPaint = ui.needsPaint

	// window events go through the mousemove filter
	raw := make(chan any, cap(ui.events))
	go func() {
		defer close(raw)
		for {
			ev := win.NextEvent()
			raw <- ev
			if _, ok := ev.(*event.WindowClose); ok {
				return
			}
		}
	}()
	movef := mousefilter.NewMoveFilter(ui.events, ui.DrawFrameRate)
	go movef.Loop(raw)

	return ui, nil
}

func (ui *BasicUI) Close() {
	if err := ui.Win.Close(); err != nil {
		log.Println(err)
	}
}

//----------

func (ui *BasicUI) NextEvent() any {
	return <-ui.events
}

func (ui *BasicUI) HandleEvent(ev any) bool {
	switch t := ev.(type) {
	case *event.WindowResize:
		ui.resize(t.Rect)
	case *event.WindowExpose:
		r := t.Rect
		if r.Empty() {
			r = ui.Win.Image().Bounds()
		}
		ui.needsPaint(r)
	case *event.WindowInput:
		ui.Canvas.HandleInput(t.Event, t.Point)
	case *RunFuncEvent:
		t.Func()
	case struct{}:
		// no op
	default:
		return false
	}
	return true
}

func (ui *BasicUI) resize(r image.Rectangle) {
	if err := ui.Win.ResizeImage(r); err != nil {
		log.Println(err)
		return
	}
	if ui.OnResize != nil {
		ui.OnResize(r.Size())
	} else {
		ui.Canvas.SetSize(r.Size())
	}
	ui.needsPaint(r)
}

//----------

func (ui *BasicUI) needsPaint(r image.Rectangle) {
	ui.dirty = ui.dirty.Union(r)
}

// This function should be called in the event loop after every event.
func (ui *BasicUI) PaintIfTime() {
	now := time.Now()
	d := now.Sub(ui.lastPaint)
	canPaint := d > (time.Second / time.Duration(ui.DrawFrameRate))
	if canPaint {
		if ui.paintIfNeeded() {
			ui.lastPaint = now
		}
	} else if !ui.dirty.Empty() && len(ui.events) == 0 {
		// Didn't paint to avoid high fps. Ensure the loop iterates again later.
		time.AfterFunc(time.Second/time.Duration(ui.DrawFrameRate)-d, ui.EnqueueNoOpEvent)
	}
}

func (ui *BasicUI) paintIfNeeded() bool {
	img := ui.Win.Image()
	r := ui.dirty.Intersect(img.Bounds())
	ui.dirty = image.Rectangle{}
	if r.Empty() {
		return false
	}
	imageutil.FillRectangle(img, r, ui.Background)
	if err := ui.Canvas.Paint(drawutil.NewImageSurface(img), r); err != nil {
		log.Println(err)
		ui.dirty = r
		return false
	}
	if err := ui.Win.PutImage(r); err != nil {
		log.Println(err)
	}
	return true
}

//----------

func (ui *BasicUI) EnqueueNoOpEvent() {
	ui.events <- struct{}{}
}

func (ui *BasicUI) SetCursor(c event.Cursor) {
	if ui.curCursor == c {
		return
	}
	ui.curCursor = c
	ui.Win.SetCursor(c)
}

// Safe to call from any goroutine.
func (ui *BasicUI) RunOnUIGoRoutine(f func()) {
	ui.events <- &RunFuncEvent{f}
}

type RunFuncEvent struct {
	Func func()
}
