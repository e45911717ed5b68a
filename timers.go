package main

import "time"

// intervalTimer fires at most once per interval when polled from the game
// loop, then reschedules itself relative to the poll time.
type intervalTimer struct {
	interval time.Duration
	next     time.Time
}

func newIntervalTimer(interval time.Duration, now time.Time) *intervalTimer {
	return &intervalTimer{interval: interval, next: now.Add(interval)}
}

// Due reports whether the timer fired at now.
func (t *intervalTimer) Due(now time.Time) bool {
	if now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.interval)
	return true
}

// cursorHider debounces pointer motion: the cursor is hidden once it has
// been still for delay.
type cursorHider struct {
	delay    time.Duration
	deadline time.Time
	armed    bool
	hidden   bool
}

func newCursorHider(delay time.Duration) *cursorHider {
	return &cursorHider{delay: delay}
}

// Moved restarts the countdown and reports whether the cursor must be
// shown again.
func (c *cursorHider) Moved(now time.Time) bool {
	wasHidden := c.hidden
	c.hidden = false
	c.armed = true
	c.deadline = now.Add(c.delay)
	return wasHidden
}

// Due reports whether the cursor must be hidden at now.
func (c *cursorHider) Due(now time.Time) bool {
	if !c.armed || now.Before(c.deadline) {
		return false
	}
	c.armed = false
	if c.hidden {
		return false
	}
	c.hidden = true
	return true
}

func (c *cursorHider) Hidden() bool {
	return c.hidden
}
