package clock

import (
	"log/slog"
	"time"
)

// TickInterval is the steady redraw cadence.
const TickInterval = time.Second

// Updater requests a redraw once per wall-clock second.
//
// The first tick is aligned to the next second boundary. Every tick checks
// how far it landed from the boundary; when it is out of phase (see
// NeedsResync) the steady cadence is dropped, a redraw is issued right
// away, and a one-shot realigns the cadence to the following boundary.
//
// All methods must be called from the scheduler's event loop.
type Updater struct {
	clock  Clock
	sched  Scheduler
	redraw func()
	logger *slog.Logger

	ticker  Timer // steady cadence
	pending Timer // one-shot alignment
	next    time.Time
	running bool
}

// NewUpdater creates an updater that calls redraw on every tick.
func NewUpdater(c Clock, sched Scheduler, redraw func(), logger *slog.Logger) *Updater {
	if c == nil {
		c = RealClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Updater{
		clock:  c,
		sched:  sched,
		redraw: redraw,
		logger: logger,
	}
}

// Start schedules the first tick at the next second boundary.
func (u *Updater) Start() {
	if u.running {
		return
	}
	u.running = true

	now := u.clock.Now()
	delay := DelayToNextSecond(MillisWithinSecond(now))
	u.next = now.Add(delay)
	u.pending = u.sched.AfterFunc(delay, func() {
		u.pending = nil
		u.startCadence()
	})

	u.logger.Debug("clock updater started", "first_tick_in", delay)
}

// Stop cancels every scheduled callback. It is safe to call more than once.
func (u *Updater) Stop() {
	u.stopTimers()
	if u.running {
		u.logger.Debug("clock updater stopped")
	}
	u.running = false
}

// Resync drops the current cadence, redraws immediately and realigns to
// the next second boundary. Used after the system resumes from sleep.
func (u *Updater) Resync() {
	if !u.running {
		return
	}
	u.stopTimers()
	u.redraw()
	u.realign(u.clock.Now())
}

// Running reports whether the updater has been started and not stopped.
func (u *Updater) Running() bool {
	return u.running
}

// NextTick returns the time the next redraw is expected.
func (u *Updater) NextTick() time.Time {
	return u.next
}

func (u *Updater) tick() {
	now := u.clock.Now()
	ms := MillisWithinSecond(now)

	if !NeedsResync(ms) {
		u.next = now.Add(TickInterval)
		u.redraw()
		return
	}

	u.logger.Debug("clock tick out of phase, realigning", "offset_ms", ms)
	if u.ticker != nil {
		u.ticker.Stop()
		u.ticker = nil
	}
	u.redraw()
	u.realign(now)
}

// realign schedules a one-shot at the next boundary after now, which
// redraws and restarts the steady cadence.
func (u *Updater) realign(now time.Time) {
	delay := DelayToNextSecond(MillisWithinSecond(now))
	u.next = now.Add(delay)
	u.pending = u.sched.AfterFunc(delay, func() {
		u.pending = nil
		u.redraw()
		u.startCadence()
	})
}

func (u *Updater) startCadence() {
	u.ticker = u.sched.Every(TickInterval, u.tick)
	u.next = u.clock.Now().Add(TickInterval)
}

func (u *Updater) stopTimers() {
	if u.ticker != nil {
		u.ticker.Stop()
		u.ticker = nil
	}
	if u.pending != nil {
		u.pending.Stop()
		u.pending = nil
	}
}
