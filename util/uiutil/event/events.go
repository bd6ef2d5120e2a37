package event

import (
	"image"
	"unicode"
)

// Events emitted by the window driver.

type WindowClose struct{}
type WindowResize struct{ Rect image.Rectangle }
type WindowExpose struct{ Rect image.Rectangle } // empty rect: full window
type WindowInput struct {
	Point image.Point
	Event any
}

//----------

type MouseEnter struct{}
type MouseLeave struct{}

type MouseDown struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseUp struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseMove struct {
	Point   image.Point
	Buttons MouseButtons
	Mods    KeyModifiers
}

type MouseDragStart struct {
	Point   image.Point // starting point (where the button was pressed)
	Point2  image.Point // current point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseDragMove struct {
	Point   image.Point
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseDragEnd struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
}

type MouseClick struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseDoubleClick struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
}

//----------

type KeyDown struct {
	Point   image.Point
	KeySym  KeySym
	Mods    KeyModifiers
	Buttons MouseButtons
	Rune    rune
}

func (kd *KeyDown) LowerRune() rune {
	return unicode.ToLower(kd.Rune)
}

type KeyUp struct {
	Point   image.Point
	KeySym  KeySym
	Mods    KeyModifiers
	Buttons MouseButtons
	Rune    rune
}

// Synthesized after a keydown that produces a printable rune.
type KeyTyped struct {
	Point image.Point
	Mods  KeyModifiers
	Rune  rune
}

//----------

type KeyModifiers uint16

func (km KeyModifiers) HasAny(m KeyModifiers) bool {
	return km&m > 0
}
func (km KeyModifiers) Is(m KeyModifiers) bool {
	return km == m
}
func (km KeyModifiers) ClearLocks() KeyModifiers {
	return km &^ (ModLock | ModNum)
}

const (
	ModNone  KeyModifiers = 0
	ModShift KeyModifiers = 1 << (iota - 1)
	ModLock               // caps
	ModCtrl
	Mod1 // ~ alt
	Mod2 // ~ num lock
	Mod3
	Mod4 // ~ windows key
	Mod5 // ~ alt gr
)

const (
	ModAlt   = Mod1
	ModNum   = Mod2
	ModAltGr = Mod5
)

//----------

type Cursor int

const (
	NoneCursor Cursor = iota
	DefaultCursor
	MoveCursor
	PointerCursor
	CrosshairCursor
	WaitCursor
)

//----------

// Reports whether the event carries a pointer position.
func IsPointerEvent(ev any) bool {
	switch ev.(type) {
	case *MouseDown, *MouseUp, *MouseMove,
		*MouseDragStart, *MouseDragMove, *MouseDragEnd,
		*MouseClick, *MouseDoubleClick:
		return true
	}
	return false
}

func IsKeyEvent(ev any) bool {
	switch ev.(type) {
	case *KeyDown, *KeyUp, *KeyTyped:
		return true
	}
	return false
}
