package mousefilter

import (
	"image"

	"github.com/jmigpin/histogfx/util/uiutil/event"
)

// Synthesizes drag events. A drag starts when the pointer moves away from the press point while the pressed button is down, and ends when that button is released.
type DragFilter struct {
	emit     func(any, image.Point)
	press    *event.MouseDown // nil if no button is down
	dragging bool
}

func NewDragFilter(emit func(any, image.Point)) *DragFilter {
	return &DragFilter{emit: emit}
}

func (dragf *DragFilter) Dragging() bool {
	return dragf.dragging
}

func (dragf *DragFilter) Filter(ev any) {
	switch t := ev.(type) {
	case *event.MouseDown:
		if dragf.press == nil && !t.Button.IsWheel() {
			dragf.press = t
		}
	case *event.MouseMove:
		dragf.move(t)
	case *event.MouseUp:
		dragf.release(t)
	}
}

func (dragf *DragFilter) move(ev *event.MouseMove) {
	switch {
	case dragf.press == nil:
	case dragf.dragging:
		ev2 := &event.MouseDragMove{Point: ev.Point, Buttons: ev.Buttons, Mods: ev.Mods}
		dragf.emit(ev2, ev.Point)
	case DetectMove(dragf.press.Point, ev.Point):
		dragf.dragging = true
		p := dragf.press.Point
		ev2 := &event.MouseDragStart{
			Point:   p,
			Point2:  ev.Point,
			Button:  dragf.press.Button,
			Buttons: ev.Buttons,
			Mods:    ev.Mods,
		}
		dragf.emit(ev2, p)
	}
}

func (dragf *DragFilter) release(ev *event.MouseUp) {
	if dragf.press == nil || ev.Button != dragf.press.Button {
		return
	}
	if dragf.dragging {
		ev2 := &event.MouseDragEnd{Point: ev.Point, Button: ev.Button, Buttons: ev.Buttons, Mods: ev.Mods}
		dragf.emit(ev2, ev.Point)
	}
	dragf.press = nil
	dragf.dragging = false
}
