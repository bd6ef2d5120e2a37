package mousefilter

import "image"

// Padding to detect the intention to move/drag.
const MovePad = 3

func DetectMove(press, p image.Point) bool {
	r := image.Rectangle{press, press}
	r = r.Inset(-MovePad) // negative inset (outset)
	return !p.In(r)
}
