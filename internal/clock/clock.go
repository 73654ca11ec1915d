package clock

import "time"

// Clock abstracts the wall clock for deterministic tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time { return time.Now() }

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	Stop()
}

// Scheduler dispatches callbacks on the caller's event loop.
type Scheduler interface {
	// AfterFunc calls f once after d.
	AfterFunc(d time.Duration, f func()) Timer
	// Every calls f every d until the returned Timer is stopped.
	Every(d time.Duration, f func()) Timer
}

// MillisWithinSecond returns the millisecond offset of t within its second.
func MillisWithinSecond(t time.Time) int {
	return t.Nanosecond() / int(time.Millisecond)
}

// DelayToNextSecond returns the time left until the next whole second
// given a millisecond offset within the current one.
func DelayToNextSecond(ms int) time.Duration {
	return time.Duration(1000-ms) * time.Millisecond
}

// Drift thresholds in milliseconds. A tick landing in (DriftLow, DriftHigh]
// is considered out of phase with the second boundary.
const (
	DriftLow  = 250
	DriftHigh = 750
)

// NeedsResync reports whether a tick at ms has drifted off the boundary.
func NeedsResync(ms int) bool {
	return ms > DriftLow && ms <= DriftHigh
}
