package display

import (
	"time"

	"github.com/diamondburned/gotk4/pkg/core/glib"

	"github.com/jmylchreest/glassyclock/internal/clock"
)

// mainLoopScheduler runs clock callbacks as glib timeout sources on the
// default main context.
type mainLoopScheduler struct{}

// sourceTimer tracks one timeout source. remove detaches the source from
// the main loop; it must not be called for a source that is dispatching.
type sourceTimer struct {
	remove  func()
	firing  bool
	stopped bool
}

// Stop removes the source. A timer stopped from inside its own callback
// is removed by returning false from that callback instead.
func (t *sourceTimer) Stop() {
	if t.stopped {
		return
	}
	t.stopped = true
	if !t.firing && t.remove != nil {
		t.remove()
	}
}

// fire runs f as the source callback and reports whether the source
// should stay installed.
func (t *sourceTimer) fire(f func(), repeat bool) bool {
	if !repeat {
		t.stopped = true
	}
	t.firing = true
	f()
	t.firing = false
	return repeat && !t.stopped
}

func (mainLoopScheduler) AfterFunc(d time.Duration, f func()) clock.Timer {
	return addTimeout(d, f, false)
}

func (mainLoopScheduler) Every(d time.Duration, f func()) clock.Timer {
	return addTimeout(d, f, true)
}

func addTimeout(d time.Duration, f func(), repeat bool) *sourceTimer {
	t := &sourceTimer{}
	handle := glib.TimeoutAdd(millis(d), func() bool {
		return t.fire(f, repeat)
	})
	t.remove = func() {
		glib.SourceRemove(handle)
	}
	return t
}

func millis(d time.Duration) uint {
	if d < 0 {
		return 0
	}
	return uint(d.Milliseconds())
}
