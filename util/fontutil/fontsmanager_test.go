package fontutil

import "testing"

func TestFontFaceCache(t *testing.T) {
	f := DefaultFont()
	ff1 := f.FontFace(20)
	ff2 := f.FontFace(20.001) // rounds to the same 1/64 step
	if ff1 != ff2 {
		t.Fatal("expecting cached face")
	}
	if ff1.WithSize(10) == ff1 {
		t.Fatal()
	}
}

func TestMeasureScalesWithSize(t *testing.T) {
	f := DefaultFont()
	w1 := f.FontFace(10).MeasureString("histogram")
	w2 := f.FontFace(20).MeasureString("histogram")
	if w1 <= 0 || w2 < w1*1.8 || w2 > w1*2.2 {
		t.Fatal(w1, w2)
	}
	if f.FontFace(10).LineHeightFloat() <= 0 {
		t.Fatal()
	}
}
