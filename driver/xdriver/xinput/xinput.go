package xinput

import (
	"image"
	"unicode"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/jmigpin/histogfx/util/uiutil/event"
)

// Translates x input events. Keyboard mapping lookups are done with xgbutil/keybind.
type XInput struct {
	xu *xgbutil.XUtil
}

func NewXInput(xu *xgbutil.XUtil) (*XInput, error) {
	keybind.Initialize(xu)
	return &XInput{xu: xu}, nil
}

// Reloads the keyboard mapping (on MappingNotify).
func (xi *XInput) ReadMapTable() {
	keybind.KeyMapSet(xi.xu, keybind.KeyMapGet(xi.xu).GetKeyboardMappingReply)
	keybind.ModMapSet(xi.xu, keybind.ModMapGet(xi.xu).GetModifierMappingReply)
}

//----------

func (xi *XInput) lookup(keycode xproto.Keycode, state uint16) (event.KeySym, rune) {
	shift := state&xproto.KeyButMaskShift > 0
	lock := state&xproto.KeyButMaskLock > 0

	xk := keybind.KeysymGet(xi.xu, keycode, 0)
	if shift {
		if xk2 := keybind.KeysymGet(xi.xu, keycode, 1); xk2 != 0 {
			xk = xk2
		}
	}
	eks := translateXKeysymToEventKeySym(xk)
	ru := keysymRune(xk, eks)
	if isLetterKeysym(xk) && (shift != lock) {
		ru = unicode.ToUpper(ru)
	} else if isLetterKeysym(xk) {
		ru = unicode.ToLower(ru)
	}
	return eks, ru
}

//----------

func (xi *XInput) KeyPress(ev *xproto.KeyPressEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	ks, ru := xi.lookup(ev.Detail, ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	bs := translateModifiersToEventMouseButtons(ev.State)
	ev2 := &event.KeyDown{Point: p, KeySym: ks, Mods: m, Buttons: bs, Rune: ru}
	return &event.WindowInput{Point: p, Event: ev2}
}
func (xi *XInput) KeyRelease(ev *xproto.KeyReleaseEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	ks, ru := xi.lookup(ev.Detail, ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	bs := translateModifiersToEventMouseButtons(ev.State)
	ev2 := &event.KeyUp{Point: p, KeySym: ks, Mods: m, Buttons: bs, Rune: ru}
	return &event.WindowInput{Point: p, Event: ev2}
}

func (xi *XInput) ButtonPress(ev *xproto.ButtonPressEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButtonToEventButton(ev.Detail)
	bs := translateModifiersToEventMouseButtons(ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	ev2 := &event.MouseDown{Point: p, Button: b, Buttons: bs, Mods: m}
	return &event.WindowInput{Point: p, Event: ev2}
}
func (xi *XInput) ButtonRelease(ev *xproto.ButtonReleaseEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButtonToEventButton(ev.Detail)
	bs := translateModifiersToEventMouseButtons(ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	ev2 := &event.MouseUp{Point: p, Button: b, Buttons: bs, Mods: m}
	return &event.WindowInput{Point: p, Event: ev2}
}

func (xi *XInput) MotionNotify(ev *xproto.MotionNotifyEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	bs := translateModifiersToEventMouseButtons(ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	ev2 := &event.MouseMove{Point: p, Buttons: bs, Mods: m}
	return &event.WindowInput{Point: p, Event: ev2}
}

func (xi *XInput) EnterNotify(ev *xproto.EnterNotifyEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	return &event.WindowInput{Point: p, Event: &event.MouseEnter{}}
}
func (xi *XInput) LeaveNotify(ev *xproto.LeaveNotifyEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	return &event.WindowInput{Point: p, Event: &event.MouseLeave{}}
}
