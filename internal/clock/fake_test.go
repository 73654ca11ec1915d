package clock

import "time"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeTimer struct {
	due     time.Time
	every   time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() { t.stopped = true }

// fakeScheduler fires timers against a fakeClock when advanced.
type fakeScheduler struct {
	clock  *fakeClock
	timers []*fakeTimer
}

func newFakeScheduler(start time.Time) *fakeScheduler {
	return &fakeScheduler{clock: &fakeClock{now: start}}
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{due: s.clock.now.Add(d), f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) Every(d time.Duration, f func()) Timer {
	t := &fakeTimer{due: s.clock.now.Add(d), every: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) active() []*fakeTimer {
	var out []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}

func (s *fakeScheduler) oneShots() []*fakeTimer {
	var out []*fakeTimer
	for _, t := range s.active() {
		if t.every == 0 {
			out = append(out, t)
		}
	}
	return out
}

func (s *fakeScheduler) repeating() []*fakeTimer {
	var out []*fakeTimer
	for _, t := range s.active() {
		if t.every > 0 {
			out = append(out, t)
		}
	}
	return out
}

// Advance moves the clock forward by d, firing due timers in order.
// A timer that is already overdue fires at the current time, which
// models a late scheduler.
func (s *fakeScheduler) Advance(d time.Duration) {
	end := s.clock.now.Add(d)
	for {
		var next *fakeTimer
		for _, t := range s.active() {
			if t.due.After(end) {
				continue
			}
			if next == nil || t.due.Before(next.due) {
				next = t
			}
		}
		if next == nil {
			break
		}
		if next.due.After(s.clock.now) {
			s.clock.now = next.due
		}
		if next.every > 0 {
			next.due = next.due.Add(next.every)
		} else {
			next.stopped = true
		}
		next.f()
	}
	s.clock.now = end
}

// Jump moves the clock without firing timers.
func (s *fakeScheduler) Jump(d time.Duration) {
	s.clock.now = s.clock.now.Add(d)
}
