package evreg

import (
	"container/list"
	"fmt"
	"log"
	"runtime/debug"
)

// The zero register is empty and ready for use.
type Register struct {
	m map[int]*list.List

	// Called when a callback panics. Defaults to logging the panic. The remaining callbacks still run.
	OnPanic func(evId int, v any, stack []byte)
}

//----------

// Remove is done via *Regist.Unregister().
func (reg *Register) Add(evId int, fn func(any)) *Regist {
	return reg.AddCallback(evId, &Callback{fn})
}

func (reg *Register) AddCallback(evId int, cb *Callback) *Regist {
	if reg.m == nil {
		reg.m = map[int]*list.List{}
	}
	l, ok := reg.m[evId]
	if !ok {
		l = list.New()
		reg.m[evId] = l
	}
	l.PushBack(cb)
	return &Regist{reg, evId, cb}
}

func (reg *Register) RemoveCallback(evId int, cb *Callback) {
	if reg.m == nil {
		return
	}
	l, ok := reg.m[evId]
	if !ok {
		return
	}
	// iterate to remove since the callback doesn't keep the element (allows the same callback at different evIds)
	for e := l.Front(); e != nil; {
		next := e.Next()
		if e.Value.(*Callback) == cb {
			l.Remove(e)
		}
		e = next
	}
	if l.Len() == 0 {
		delete(reg.m, evId)
	}
}

//----------

// Returns number of callbacks done. A panicking callback is reported and counted, and the loop continues.
func (reg *Register) RunCallbacks(evId int, ev any) int {
	if reg.m == nil {
		return 0
	}
	l, ok := reg.m[evId]
	if !ok {
		return 0
	}
	// copy: callbacks are allowed to unregister themselves
	cbs := make([]*Callback, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		cbs = append(cbs, e.Value.(*Callback))
	}
	for _, cb := range cbs {
		reg.runCallback(evId, cb, ev)
	}
	return len(cbs)
}

func (reg *Register) runCallback(evId int, cb *Callback, ev any) {
	defer func() {
		if v := recover(); v != nil {
			stack := debug.Stack()
			if reg.OnPanic != nil {
				reg.OnPanic(evId, v, stack)
				return
			}
			log.Print(PanicString(evId, v))
		}
	}()
	cb.F(ev)
}

// Number of registered callbacks for an event id.
func (reg *Register) NCallbacks(evId int) int {
	if reg.m == nil {
		return 0
	}
	l, ok := reg.m[evId]
	if !ok {
		return 0
	}
	return l.Len()
}

func PanicString(evId int, v any) string {
	return fmt.Sprintf("evreg: callback panic (evId=%d): %v", evId, v)
}

//----------

type Callback struct {
	F func(ev any)
}

//----------

type Regist struct {
	evReg *Register
	id    int
	cb    *Callback
}

func (reg *Regist) Unregister() {
	reg.evReg.RemoveCallback(reg.id, reg.cb)
}

//----------

// Utility to unregister big number of regists.
type Unregister struct {
	v []*Regist
}

func (unr *Unregister) Add(u ...*Regist) {
	unr.v = append(unr.v, u...)
}
func (unr *Unregister) UnregisterAll() {
	for _, e := range unr.v {
		e.Unregister()
	}
	unr.v = []*Regist{}
}
