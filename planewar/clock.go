package planewar

import (
	"time"
)

const fpsSamples = 10

// FrameClock paces the loop and measures the time between frames.
type FrameClock struct {
	now   func() time.Time
	sleep func(time.Duration)

	last    time.Time
	samples [fpsSamples]float64
	next    int
	filled  int
}

func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now, sleep: time.Sleep}
}

// Tick waits so that frames don't come faster than maxRate per second
// (0 means no limit) and returns the seconds since the previous Tick.
func (c *FrameClock) Tick(maxRate int) float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	if maxRate > 0 {
		frame := time.Second / time.Duration(maxRate)
		if wait := frame - now.Sub(c.last); wait > 0 {
			c.sleep(wait)
			now = c.now()
		}
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now

	c.samples[c.next] = dt
	c.next = (c.next + 1) % fpsSamples
	if c.filled < fpsSamples {
		c.filled++
	}
	return dt
}

// FPS averages the last few frame times.
func (c *FrameClock) FPS() float64 {
	total := 0.0
	for i := 0; i < c.filled; i++ {
		total += c.samples[i]
	}
	if total <= 0 {
		return 0
	}
	return float64(c.filled) / total
}

// clampDelta bounds dt to [0, maxFrameDelta].
func clampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}
