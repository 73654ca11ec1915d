package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestTimer() (*sourceTimer, *int) {
	removed := 0
	return &sourceTimer{remove: func() { removed++ }}, &removed
}

func TestSourceTimer_RepeatingKeepsRunning(t *testing.T) {
	timer, removed := newTestTimer()
	calls := 0

	for i := 0; i < 3; i++ {
		assert.True(t, timer.fire(func() { calls++ }, true))
	}
	assert.Equal(t, 3, calls)
	assert.Equal(t, 0, *removed)
}

func TestSourceTimer_StopInsideRepeatingCallback(t *testing.T) {
	timer, removed := newTestTimer()

	keep := timer.fire(func() { timer.Stop() }, true)

	assert.False(t, keep, "callback must return false to drop the source")
	assert.Equal(t, 0, *removed, "a dispatching source must not be removed")
	assert.False(t, timer.firing)

	timer.Stop()
	assert.Equal(t, 0, *removed)
}

func TestSourceTimer_StopOutsideCallback(t *testing.T) {
	timer, removed := newTestTimer()

	timer.Stop()
	timer.Stop()
	assert.Equal(t, 1, *removed)
}

func TestSourceTimer_OneShot(t *testing.T) {
	timer, removed := newTestTimer()
	calls := 0

	assert.False(t, timer.fire(func() { calls++ }, false))
	assert.Equal(t, 1, calls)

	// the source is already gone once a one-shot has fired
	timer.Stop()
	assert.Equal(t, 0, *removed)
}

func TestSourceTimer_OneShotRearmsFromCallback(t *testing.T) {
	first, firstRemoved := newTestTimer()
	second, secondRemoved := newTestTimer()

	// the updater stops the old one-shot and the cadence from inside a tick
	first.fire(func() {
		first.Stop()
		second.Stop()
	}, false)

	assert.Equal(t, 0, *firstRemoved)
	assert.Equal(t, 1, *secondRemoved)
}
