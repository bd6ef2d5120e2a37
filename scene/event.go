package scene

import (
	"fmt"
	"image"

	"github.com/jmigpin/histogfx/util/mathutil"
	"github.com/jmigpin/histogfx/util/uiutil/event"
)

type EventId int

const (
	EvMousePress EventId = iota
	EvMouseRelease
	EvMouseClick
	EvMouseDoubleClick
	EvMouseMove
	EvMouseDragStart
	EvMouseDrag
	EvMouseDragEnd
	EvMouseWheel
	EvMouseEnter
	EvMouseExit
	EvKeyDown
	EvKeyUp
	EvKeyTyped
	EvFocusGained
	EvFocusLost
)

func (id EventId) String() string {
	switch id {
	case EvMousePress:
		return "mousepress"
	case EvMouseRelease:
		return "mouserelease"
	case EvMouseClick:
		return "mouseclick"
	case EvMouseDoubleClick:
		return "mousedoubleclick"
	case EvMouseMove:
		return "mousemove"
	case EvMouseDragStart:
		return "mousedragstart"
	case EvMouseDrag:
		return "mousedrag"
	case EvMouseDragEnd:
		return "mousedragend"
	case EvMouseWheel:
		return "mousewheel"
	case EvMouseEnter:
		return "mouseenter"
	case EvMouseExit:
		return "mouseexit"
	case EvKeyDown:
		return "keydown"
	case EvKeyUp:
		return "keyup"
	case EvKeyTyped:
		return "keytyped"
	case EvFocusGained:
		return "focusgained"
	case EvFocusLost:
		return "focuslost"
	}
	return fmt.Sprintf("eventid(%d)", int(id))
}

// Event delivered to group listeners.
type GroupEvent struct {
	Id    EventId
	Group *Group
	Raw   any // host event, nil if synthesized

	Point       mathutil.Point // world coordinates
	ScreenPoint image.Point    // layer pixel coordinates
}

// Maps a host event to the group event id. Mouse up of wheel buttons is dropped.
func eventIdOf(ev any) (EventId, bool) {
	switch t := ev.(type) {
	case *event.MouseDown:
		if t.Button.IsWheel() {
			return EvMouseWheel, true
		}
		return EvMousePress, true
	case *event.MouseUp:
		if t.Button.IsWheel() {
			return 0, false
		}
		return EvMouseRelease, true
	case *event.MouseMove:
		return EvMouseMove, true
	case *event.MouseClick:
		return EvMouseClick, true
	case *event.MouseDoubleClick:
		return EvMouseDoubleClick, true
	case *event.MouseDragStart:
		return EvMouseDragStart, true
	case *event.MouseDragMove:
		return EvMouseDrag, true
	case *event.MouseDragEnd:
		return EvMouseDragEnd, true
	case *event.KeyDown:
		return EvKeyDown, true
	case *event.KeyUp:
		return EvKeyUp, true
	case *event.KeyTyped:
		return EvKeyTyped, true
	}
	return 0, false
}
