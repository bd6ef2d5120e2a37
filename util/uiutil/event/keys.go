package event

type KeySym int

const (
	KSymNone KeySym = iota

	// let ascii codes keep their values (adding 256 ensures gap)
	KSym_dummy_ KeySym = 256 + iota

	KSymEscape
	KSymReturn
	KSymTab
	KSymBackspace
	KSymDelete
	KSymInsert

	KSymLeft
	KSymRight
	KSymUp
	KSymDown
	KSymHome
	KSymEnd
	KSymPageUp
	KSymPageDown

	KSymShiftL
	KSymShiftR
	KSymControlL
	KSymControlR
	KSymAltL
	KSymAltR
	KSymSuperL
	KSymSuperR
	KSymCapsLock
	KSymNumLock

	KSymF1
	KSymF2
	KSymF3
	KSymF4
	KSymF5
	KSymF6
	KSymF7
	KSymF8
	KSymF9
	KSymF10
	KSymF11
	KSymF12

	KSymKeypadAdd
	KSymKeypadSubtract
	KSymKeypadMultiply
	KSymKeypadDivide
	KSymKeypadEnter
)

// Rune produced by keypad keysyms, zero otherwise.
func KeypadRune(ks KeySym) rune {
	switch ks {
	case KSymKeypadAdd:
		return '+'
	case KSymKeypadSubtract:
		return '-'
	case KSymKeypadMultiply:
		return '*'
	case KSymKeypadDivide:
		return '/'
	}
	return 0
}

func (ks KeySym) IsModifier() bool {
	return ks >= KSymShiftL && ks <= KSymNumLock
}
