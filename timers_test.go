package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestIntervalTimer(t *testing.T) {
	timer := newIntervalTimer(100*time.Millisecond, epoch)

	assert.False(t, timer.Due(epoch))
	assert.False(t, timer.Due(epoch.Add(99*time.Millisecond)))
	assert.True(t, timer.Due(epoch.Add(100*time.Millisecond)))
	assert.False(t, timer.Due(epoch.Add(150*time.Millisecond)))

	// A late poll fires once and reschedules from the poll time.
	assert.True(t, timer.Due(epoch.Add(time.Second)))
	assert.False(t, timer.Due(epoch.Add(time.Second+99*time.Millisecond)))
	assert.True(t, timer.Due(epoch.Add(time.Second+100*time.Millisecond)))
}

func TestCursorHider(t *testing.T) {
	c := newCursorHider(2 * time.Second)

	assert.False(t, c.Due(epoch.Add(time.Hour)), "not armed before the first motion")

	assert.False(t, c.Moved(epoch))
	assert.False(t, c.Due(epoch.Add(1999*time.Millisecond)))
	assert.True(t, c.Due(epoch.Add(2*time.Second)))
	assert.True(t, c.Hidden())
	assert.False(t, c.Due(epoch.Add(3*time.Second)), "hides only once")

	assert.True(t, c.Moved(epoch.Add(4*time.Second)), "motion shows the hidden cursor")
	assert.False(t, c.Hidden())
}

func TestCursorHiderDebounce(t *testing.T) {
	c := newCursorHider(2 * time.Second)

	c.Moved(epoch)
	c.Moved(epoch.Add(1500 * time.Millisecond))
	assert.False(t, c.Due(epoch.Add(2*time.Second)), "later motion restarts the countdown")
	assert.True(t, c.Due(epoch.Add(3500*time.Millisecond)))
}
