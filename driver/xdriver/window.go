package xdriver

import (
	"image"
	"image/draw"
	"log"
	"os"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/jmigpin/histogfx/driver/xdriver/wimage"
	"github.com/jmigpin/histogfx/driver/xdriver/wmprotocols"
	"github.com/jmigpin/histogfx/driver/xdriver/xinput"
	"github.com/jmigpin/histogfx/driver/xdriver/xutil"
	"github.com/jmigpin/histogfx/util/uiutil/event"
	"github.com/pkg/errors"
)

type Window struct {
	Conn   *xgb.Conn
	XU     *xgbutil.XUtil
	Window xproto.Window
	Screen *xproto.ScreenInfo
	GCtx   xproto.Gcontext

	XInput *xinput.XInput
	Wmp    *wmprotocols.WMP
	WImg   wimage.WImage

	cursors   map[event.Cursor]xproto.Cursor
	closeOnce sync.Once
	events    chan any
}

func NewWindow() (*Window, error) {
	conn, err := xgb.NewConnDisplay(os.Getenv("DISPLAY"))
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}
	win := &Window{
		Conn:    conn,
		cursors: map[event.Cursor]xproto.Cursor{},
		events:  make(chan any, 8),
	}
	if err := win.initialize(); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "win init")
	}
	go win.eventLoop()
	return win, nil
}

func (win *Window) initialize() error {
	xu, err := xgbutil.NewConnXgb(win.Conn)
	if err != nil {
		return errors.Wrap(err, "xgbutil")
	}
	win.XU = xu

	si := xproto.Setup(win.Conn)
	win.Screen = si.DefaultScreen(win.Conn)

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	var evMask uint32 = 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskExposure |
		xproto.EventMaskPointerMotion |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskKeyPress |
		xproto.EventMaskKeyRelease |
		xproto.EventMaskEnterWindow |
		xproto.EventMaskLeaveWindow |
		0
	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwBackPixel | xproto.CwEventMask)
	values := []uint32{win.Screen.WhitePixel, evMask}

	err = xproto.CreateWindowChecked(
		win.Conn,
		win.Screen.RootDepth,
		win.Window,
		win.Screen.Root,
		0, 0, 640, 480,
		0, // border width
		xproto.WindowClassInputOutput,
		win.Screen.RootVisual,
		mask, values).Check()
	if err != nil {
		return errors.Wrap(err, "create window")
	}

	if err := xutil.LoadAtoms(win.Conn, &atoms, false); err != nil {
		return err
	}

	gCtx, err := xproto.NewGcontextId(win.Conn)
	if err != nil {
		return err
	}
	win.GCtx = gCtx
	err = xproto.CreateGCChecked(win.Conn, win.GCtx, xproto.Drawable(win.Window), 0, nil).Check()
	if err != nil {
		return errors.Wrap(err, "create gc")
	}

	xi, err := xinput.NewXInput(xu)
	if err != nil {
		return err
	}
	win.XInput = xi

	opt := &wimage.Options{Conn: win.Conn, Window: win.Window, ScreenInfo: win.Screen, GCtx: win.GCtx}
	img, err := wimage.NewWImage(opt)
	if err != nil {
		return err
	}
	win.WImg = img

	wmp, err := wmprotocols.NewWMP(win.Conn, win.Window)
	if err != nil {
		return err
	}
	win.Wmp = wmp

	return xproto.MapWindowChecked(win.Conn, win.Window).Check()
}

func (win *Window) Close() error {
	win.closeOnce.Do(func() {
		if err := win.WImg.Close(); err != nil {
			log.Print(err)
		}
		win.Conn.Close()
	})
	return nil
}

//----------

func (win *Window) NextEvent() any {
	ev, ok := <-win.events
	if !ok {
		return &event.WindowClose{}
	}
	return ev
}

func (win *Window) eventLoop() {
	defer close(win.events)
	for {
		if !win.handleEvent() {
			return
		}
	}
}

func (win *Window) handleEvent() bool {
	ev, xerr := win.Conn.WaitForEvent()
	if ev == nil && xerr == nil {
		win.events <- &event.WindowClose{}
		return false
	}
	if xerr != nil {
		win.events <- error(xerr)
		return true
	}
	switch t := ev.(type) {
	case xproto.ConfigureNotifyEvent: // window structure (position,size,...)
		r := image.Rect(0, 0, int(t.Width), int(t.Height))
		win.events <- &event.WindowResize{Rect: r}
	case xproto.ExposeEvent: // region needs paint
		if t.Count == 0 {
			win.events <- &event.WindowExpose{}
		}
	case xproto.MapNotifyEvent, xproto.ReparentNotifyEvent:

	case xproto.MappingNotifyEvent: // keyboard mapping
		win.XInput.ReadMapTable()

	case xproto.KeyPressEvent:
		win.events <- win.XInput.KeyPress(&t)
	case xproto.KeyReleaseEvent:
		win.events <- win.XInput.KeyRelease(&t)
	case xproto.ButtonPressEvent:
		win.events <- win.XInput.ButtonPress(&t)
	case xproto.ButtonReleaseEvent:
		win.events <- win.XInput.ButtonRelease(&t)
	case xproto.MotionNotifyEvent:
		win.events <- win.XInput.MotionNotify(&t)
	case xproto.EnterNotifyEvent:
		win.events <- win.XInput.EnterNotify(&t)
	case xproto.LeaveNotifyEvent:
		win.events <- win.XInput.LeaveNotify(&t)

	case xproto.ClientMessageEvent:
		if win.Wmp.IsDeleteWindow(&t) {
			win.events <- &event.WindowClose{}
			return true
		}
		name, _ := xutil.AtomName(win.Conn, t.Type)
		log.Printf("xdriver: unhandled client message: %v", name)

	default:
		log.Printf("xdriver: unhandled event: %#v", ev)
	}
	return true
}

//----------

func (win *Window) SetWindowName(str string) {
	b := []byte(str)
	_ = xproto.ChangeProperty(
		win.Conn,
		xproto.PropModeReplace,
		win.Window,       // requestor window
		atoms.NetWMName,  // property
		atoms.Utf8String, // target
		8,                // format
		uint32(len(b)),
		b)
}

func (win *Window) Image() draw.Image {
	return win.WImg.Image()
}
func (win *Window) PutImage(r image.Rectangle) error {
	return win.WImg.PutImage(r)
}
func (win *Window) ResizeImage(r image.Rectangle) error {
	if r.Eq(win.Image().Bounds()) {
		return nil
	}
	return win.WImg.Resize(r)
}

//----------

// https://github.com/BurntSushi/xgbutil/blob/master/xcursor/cursordef.go
func (win *Window) SetCursor(c event.Cursor) {
	var id uint16
	switch c {
	case event.NoneCursor, event.DefaultCursor:
		win.setCursor(0)
		return
	case event.MoveCursor:
		id = xcursor.Fleur
	case event.PointerCursor:
		id = xcursor.Hand2
	case event.CrosshairCursor:
		id = xcursor.Crosshair
	case event.WaitCursor:
		id = xcursor.Watch
	default:
		return
	}
	xc, ok := win.cursors[c]
	if !ok {
		u, err := xcursor.CreateCursor(win.XU, id)
		if err != nil {
			log.Print(errors.Wrap(err, "create cursor"))
			return
		}
		xc = u
		win.cursors[c] = xc
	}
	win.setCursor(xc)
}

func (win *Window) setCursor(c xproto.Cursor) {
	mask := uint32(xproto.CwCursor)
	values := []uint32{uint32(c)}
	_ = xproto.ChangeWindowAttributes(win.Conn, win.Window, mask, values)
}

//----------

var atoms struct {
	NetWMName  xproto.Atom `loadAtoms:"_NET_WM_NAME"`
	Utf8String xproto.Atom `loadAtoms:"UTF8_STRING"`
}
