package xinput

import (
	"unicode"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/histogfx/util/uiutil/event"
)

// Constants from /usr/include/X11/keysymdef.h
func translateXKeysymToEventKeySym(xk xproto.Keysym) event.KeySym {
	switch {
	case xk >= 0x20 && xk <= 0x7e:
		// ascii keeps its value, letters in lower case
		return event.KeySym(unicode.ToLower(rune(xk)))
	case xk >= 0xffbe && xk <= 0xffc9:
		return event.KSymF1 + event.KeySym(xk-0xffbe)
	}
	switch xk {
	case 0xff08:
		return event.KSymBackspace
	case 0xff09, 0xfe20: // tab, isolefttab
		return event.KSymTab
	case 0xff0d:
		return event.KSymReturn
	case 0xff1b:
		return event.KSymEscape
	case 0xffff:
		return event.KSymDelete
	case 0xff63:
		return event.KSymInsert

	case 0xff50:
		return event.KSymHome
	case 0xff51:
		return event.KSymLeft
	case 0xff52:
		return event.KSymUp
	case 0xff53:
		return event.KSymRight
	case 0xff54:
		return event.KSymDown
	case 0xff55:
		return event.KSymPageUp
	case 0xff56:
		return event.KSymPageDown
	case 0xff57:
		return event.KSymEnd

	case 0xffe1:
		return event.KSymShiftL
	case 0xffe2:
		return event.KSymShiftR
	case 0xffe3:
		return event.KSymControlL
	case 0xffe4:
		return event.KSymControlR
	case 0xffe9:
		return event.KSymAltL
	case 0xffea:
		return event.KSymAltR
	case 0xffeb:
		return event.KSymSuperL // windows key
	case 0xffec:
		return event.KSymSuperR
	case 0xffe5:
		return event.KSymCapsLock
	case 0xff7f:
		return event.KSymNumLock

	case 0xffab:
		return event.KSymKeypadAdd
	case 0xffad:
		return event.KSymKeypadSubtract
	case 0xffaa:
		return event.KSymKeypadMultiply
	case 0xffaf:
		return event.KSymKeypadDivide
	case 0xff8d:
		return event.KSymKeypadEnter
	}
	return event.KSymNone
}

// Rune typed by the keysym, zero if none.
func keysymRune(xk xproto.Keysym, eks event.KeySym) rune {
	switch {
	case xk >= 0x20 && xk <= 0x7e, xk >= 0xa0 && xk <= 0xff: // latin1
		return rune(xk)
	case xk >= 0x01000100 && xk <= 0x0110ffff: // unicode keysyms
		return rune(xk - 0x01000000)
	}
	return event.KeypadRune(eks)
}

func isLetterKeysym(xk xproto.Keysym) bool {
	return xk <= 0xff && unicode.IsLetter(rune(xk))
}

//----------

func translateModifiersToEventKeyModifiers(v uint16) event.KeyModifiers {
	type pair struct {
		a uint16
		b event.KeyModifiers
	}
	pairs := []pair{
		{xproto.KeyButMaskShift, event.ModShift},
		{xproto.KeyButMaskControl, event.ModCtrl},
		{xproto.KeyButMaskLock, event.ModLock},
		{xproto.KeyButMaskMod1, event.Mod1},
		{xproto.KeyButMaskMod2, event.Mod2},
		{xproto.KeyButMaskMod3, event.Mod3},
		{xproto.KeyButMaskMod4, event.Mod4},
		{xproto.KeyButMaskMod5, event.Mod5},
	}
	var w event.KeyModifiers
	for _, p := range pairs {
		if v&p.a > 0 {
			w |= p.b
		}
	}
	return w
}

func translateModifiersToEventMouseButtons(v uint16) event.MouseButtons {
	type pair struct {
		a uint16
		b event.MouseButton
	}
	pairs := []pair{
		{xproto.KeyButMaskButton1, event.ButtonLeft},
		{xproto.KeyButMaskButton2, event.ButtonMiddle},
		{xproto.KeyButMaskButton3, event.ButtonRight},
		{xproto.KeyButMaskButton4, event.ButtonWheelUp},
		{xproto.KeyButMaskButton5, event.ButtonWheelDown},
	}
	var w event.MouseButtons
	for _, p := range pairs {
		if v&p.a > 0 {
			w |= event.MouseButtons(p.b)
		}
	}
	return w
}

func translateButtonToEventButton(xb xproto.Button) event.MouseButton {
	switch xb {
	case 1:
		return event.ButtonLeft
	case 2:
		return event.ButtonMiddle
	case 3:
		return event.ButtonRight
	case 4:
		return event.ButtonWheelUp
	case 5:
		return event.ButtonWheelDown
	case 6:
		return event.ButtonWheelLeft
	case 7:
		return event.ButtonWheelRight
	case 8:
		return event.ButtonBackward
	case 9:
		return event.ButtonForward
	}
	return event.ButtonNone
}
