package mousefilter

import (
	"image"
	"time"

	"github.com/jmigpin/histogfx/util/uiutil/event"
)

const DoubleClickTime = 400 * time.Millisecond

// Produce click/doubleclick events.
type ClickFilter struct {
	m        map[event.MouseButton]*multipleClick
	emitEvFn func(any, image.Point)
	now      func() time.Time
}

func NewClickFilter(emitEvFn func(any, image.Point)) *ClickFilter {
	return &ClickFilter{
		m:        map[event.MouseButton]*multipleClick{},
		emitEvFn: emitEvFn,
		now:      time.Now,
	}
}

func (clickf *ClickFilter) Filter(ev any) {
	switch t := ev.(type) {
	case *event.MouseDown:
		clickf.down(t)
	case *event.MouseUp:
		clickf.up(t)
	case *event.MouseMove:
		clickf.move(t)
	}
}

func (clickf *ClickFilter) down(ev *event.MouseDown) {
	if ev.Button.IsWheel() {
		return
	}
	// initialize on demand
	mc, ok := clickf.m[ev.Button]
	if !ok {
		mc = &multipleClick{}
		clickf.m[ev.Button] = mc
	}
	mc.prevDownPoint = mc.downPoint
	mc.downPoint = ev.Point
	mc.down = true
}

func (clickf *ClickFilter) up(ev *event.MouseUp) {
	mc, ok := clickf.m[ev.Button]
	if !ok || !mc.down {
		return
	}
	mc.down = false

	upTime0 := mc.upTime
	mc.upTime = clickf.now()

	// must be clicked within a margin
	if DetectMove(mc.downPoint, ev.Point) {
		mc.double = false
		return
	}

	isDouble := !mc.double &&
		!upTime0.IsZero() &&
		mc.upTime.Sub(upTime0) <= DoubleClickTime &&
		!DetectMove(mc.prevDownPoint, ev.Point)
	mc.double = isDouble

	// always run a click
	ev2 := &event.MouseClick{Point: ev.Point, Button: ev.Button, Buttons: ev.Buttons, Mods: ev.Mods}
	clickf.emitEvFn(ev2, ev.Point)

	if isDouble {
		ev3 := &event.MouseDoubleClick{Point: ev.Point, Button: ev.Button, Buttons: ev.Buttons, Mods: ev.Mods}
		clickf.emitEvFn(ev3, ev.Point)
	}
}

func (clickf *ClickFilter) move(ev *event.MouseMove) {
	for b, mc := range clickf.m {
		// clear if moved outside move detection margins
		if mc.down && DetectMove(mc.downPoint, ev.Point) {
			delete(clickf.m, b)
		}
	}
}

//----------

type multipleClick struct {
	down          bool
	double        bool
	upTime        time.Time
	downPoint     image.Point
	prevDownPoint image.Point
}
