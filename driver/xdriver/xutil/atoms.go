package xutil

import (
	"reflect"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

// Interns the atoms named by the fields of the struct pointed to by st. Field names can be overridden with a `loadAtoms:"name"` tag. If onlyIfExists, atoms unknown to the server are set to zero.
func LoadAtoms(conn *xgb.Conn, st any, onlyIfExists bool) error {
	val := reflect.Indirect(reflect.ValueOf(st))
	typ := val.Type()

	// send all requests before reading the replies
	cookies := make([]xproto.InternAtomCookie, typ.NumField())
	for i := range cookies {
		sf := typ.Field(i)
		name := sf.Name
		if tag := sf.Tag.Get("loadAtoms"); tag != "" {
			name = tag
		}
		cookies[i] = xproto.InternAtom(conn, onlyIfExists, uint16(len(name)), name)
	}
	for i, c := range cookies {
		reply, err := c.Reply()
		if err != nil {
			return errors.Wrapf(err, "atom %v", typ.Field(i).Name)
		}
		val.Field(i).Set(reflect.ValueOf(reply.Atom))
	}
	return nil
}

func AtomName(conn *xgb.Conn, atom xproto.Atom) (string, error) {
	r, err := xproto.GetAtomName(conn, atom).Reply()
	if err != nil {
		return "", err
	}
	return r.Name, nil
}
