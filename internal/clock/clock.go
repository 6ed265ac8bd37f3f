// Package clock keeps the playback time in step with the audio device.
package clock

import (
	"sync"
	"time"
)

// Source reports the current playback position.
type Source interface {
	Time() time.Duration
}

// SyncClock reads its time from a Source while playing and holds a pinned
// value while paused. It never advances on its own.
type SyncClock struct {
	mu     sync.Mutex
	source Source
	paused bool
	pinned time.Duration
	floor  time.Duration
	length time.Duration
}

// New returns a paused clock at 0.
func New(source Source) *SyncClock {
	return &SyncClock{source: source, paused: true}
}

func (c *SyncClock) clamp(t time.Duration) time.Duration {
	if t < 0 {
		return 0
	}
	if c.length > 0 && t > c.length {
		return c.length
	}
	return t
}

// SetTime moves the clock and resets the monotonic floor, so it may go
// backwards.
func (c *SyncClock) SetTime(t time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t = c.clamp(t)
	c.pinned = t
	c.floor = t
}

func (c *SyncClock) Time() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return c.clamp(c.pinned)
	}
	t := c.source.Time()
	if t < c.floor {
		t = c.floor
	}
	c.floor = t
	return c.clamp(t)
}

// SetPaused pins the clock to now when pausing, and restarts the floor
// from now when resuming.
func (c *SyncClock) SetPaused(paused bool, now time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now = c.clamp(now)
	if paused {
		c.pinned = now
	} else {
		c.floor = now
	}
	c.paused = paused
}

func (c *SyncClock) TogglePaused(now time.Duration) {
	c.SetPaused(!c.IsPaused(), now)
}

func (c *SyncClock) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

func (c *SyncClock) SetLength(l time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if l < 0 {
		l = 0
	}
	c.length = l
}

func (c *SyncClock) Length() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.length
}
