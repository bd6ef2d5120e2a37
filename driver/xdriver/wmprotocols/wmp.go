package wmprotocols

import (
	"encoding/binary"
	"os"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/histogfx/driver/xdriver/xutil"
	"github.com/pkg/errors"
)

// Window manager protocols: delete window requests.
// https://tronche.com/gui/x/icccm/sec-4.html#s-4.2.8.1
type WMP struct {
	conn *xgb.Conn
	win  xproto.Window
}

func NewWMP(conn *xgb.Conn, win xproto.Window) (*WMP, error) {
	if err := xutil.LoadAtoms(conn, &atoms, false); err != nil {
		return nil, errors.Wrap(err, "wmp atoms")
	}
	wmp := &WMP{conn: conn, win: win}
	if err := wmp.setProtocols(); err != nil {
		return nil, errors.Wrap(err, "wmp protocols")
	}
	if err := wmp.setPid(); err != nil {
		return nil, errors.Wrap(err, "wmp pid")
	}
	return wmp, nil
}

func (wmp *WMP) setProtocols() error {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, uint32(atoms.WMDeleteWindow))
	return wmp.changeProperty32(atoms.WMProtocols, xproto.AtomAtom, data)
}

func (wmp *WMP) setPid() error {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, uint32(os.Getpid()))
	return wmp.changeProperty32(atoms.NetWMPid, xproto.AtomCardinal, data)
}

func (wmp *WMP) changeProperty32(prop, typ xproto.Atom, data []byte) error {
	return xproto.ChangePropertyChecked(
		wmp.conn,
		xproto.PropModeReplace,
		wmp.win,
		prop,
		typ,
		32, // format
		uint32(len(data))/4,
		data).Check()
}

// Reports whether the client message is a delete window request from the window manager.
func (wmp *WMP) IsDeleteWindow(ev *xproto.ClientMessageEvent) bool {
	if ev.Type != atoms.WMProtocols || ev.Format != 32 {
		return false
	}
	return xproto.Atom(ev.Data.Data32[0]) == atoms.WMDeleteWindow
}

var atoms struct {
	WMProtocols    xproto.Atom `loadAtoms:"WM_PROTOCOLS"`
	WMDeleteWindow xproto.Atom `loadAtoms:"WM_DELETE_WINDOW"`
	NetWMPid       xproto.Atom `loadAtoms:"_NET_WM_PID"`
}
