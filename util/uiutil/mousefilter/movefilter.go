package mousefilter

import (
	"sync"
	"time"

	"github.com/jmigpin/histogfx/util/uiutil/event"
)

// Coalesces pointer motion: at most one move event per frame is forwarded, the latest one. Other events are forwarded immediately, after any pending move.
type MoveFilter struct {
	out chan<- any
	fps int

	mu      sync.Mutex
	timer   *time.Timer
	sent    time.Time
	pending any
}

func NewMoveFilter(out chan<- any, fps int) *MoveFilter {
	if fps <= 0 {
		fps = 60
	}
	return &MoveFilter{out: out, fps: fps}
}

// Reads events until the input channel is closed.
func (movef *MoveFilter) Loop(in <-chan any) {
	for ev := range in {
		movef.Filter(ev)
	}
	movef.flush()
}

func (movef *MoveFilter) Filter(ev any) {
	if IsMoveEvent(ev) {
		movef.keep(ev)
		return
	}
	movef.flush()
	movef.out <- ev
}

func (movef *MoveFilter) keep(ev any) {
	frameDur := time.Second / time.Duration(movef.fps)

	movef.mu.Lock()
	defer movef.mu.Unlock()

	if movef.timer != nil {
		// a send is already scheduled: just replace the event
		movef.pending = ev
		return
	}
	now := time.Now()
	if d := now.Sub(movef.sent); d >= frameDur {
		movef.sent = now
		movef.out <- ev
		return
	}
	movef.pending = ev
	movef.timer = time.AfterFunc(frameDur-now.Sub(movef.sent), movef.flush)
}

func (movef *MoveFilter) flush() {
	movef.mu.Lock()
	defer movef.mu.Unlock()
	if movef.pending != nil {
		movef.sent = time.Now()
		movef.out <- movef.pending
		movef.pending = nil
	}
	if movef.timer != nil {
		movef.timer.Stop()
		movef.timer = nil
	}
}

func IsMoveEvent(ev any) bool {
	if wi, ok := ev.(*event.WindowInput); ok {
		ev = wi.Event
	}
	_, ok := ev.(*event.MouseMove)
	return ok
}
