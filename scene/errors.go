package scene

import "errors"

var (
	// Transform can't be inverted (zero scale on some axis). Painting and hit tests are skipped.
	ErrNotInvertible = errors.New("transform not invertible")

	ErrPaintDuringDispatch = errors.New("paint requested during event dispatch")
)
