package driver

import (
	"image"
	"image/draw"

	"github.com/jmigpin/histogfx/driver/xdriver"
	"github.com/jmigpin/histogfx/util/uiutil/event"
)

type Window interface {
	// Blocks until the next event (from uiutil/event, or an error). Returns *event.WindowClose when the connection is closed.
	NextEvent() any

	Close() error
	SetWindowName(string)

	Image() draw.Image
	PutImage(image.Rectangle) error
	ResizeImage(image.Rectangle) error

	SetCursor(event.Cursor)
}

func NewWindow() (Window, error) {
	return xdriver.NewWindow()
}
