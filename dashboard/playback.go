package dashboard

import "time"

// Playback speed limits in data seconds per wall second. The floor is
// real time; the ceiling replays a week per second.
const (
	minPlaybackSpeed = 1.0
	maxPlaybackSpeed = 604800.0
)

// Clock maps wall time onto the tracked data's time range. Speed is in
// data seconds per wall second, so 3600 replays an hour of pings every
// second.
type Clock struct {
	start, end time.Time
	now        time.Time
	speed      float64
	loop       bool
}

// NewClock creates a clock resting at the start of the range.
func NewClock(start, end time.Time, speed float64, loop bool) *Clock {
	c := &Clock{start: start, end: end, now: start, loop: loop}
	c.SetSpeed(speed)
	return c
}

// Advance moves the clock by a wall-time delta in seconds. Past the end
// it either wraps to the start or parks there, depending on loop.
func (c *Clock) Advance(wallDt float64) {
	if wallDt <= 0 || !c.end.After(c.start) {
		return
	}
	c.now = c.now.Add(time.Duration(wallDt * c.speed * float64(time.Second)))
	if c.now.After(c.end) {
		if c.loop {
			span := c.end.Sub(c.start)
			c.now = c.start.Add(c.now.Sub(c.start) % span)
		} else {
			c.now = c.end
		}
	}
}

// Now returns the current data time.
func (c *Clock) Now() time.Time {
	return c.now
}

// Range returns the playable time range.
func (c *Clock) Range() (start, end time.Time) {
	return c.start, c.end
}

// Seek jumps to t, clamped into the playable range.
func (c *Clock) Seek(t time.Time) {
	if t.Before(c.start) {
		t = c.start
	}
	if t.After(c.end) {
		t = c.end
	}
	c.now = t
}

// Fraction returns the position in the range as 0..1.
func (c *Clock) Fraction() float64 {
	span := c.end.Sub(c.start)
	if span <= 0 {
		return 0
	}
	return float64(c.now.Sub(c.start)) / float64(span)
}

// SeekFraction jumps to a 0..1 position in the range.
func (c *Clock) SeekFraction(f float64) {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	span := c.end.Sub(c.start)
	c.now = c.start.Add(time.Duration(f * float64(span)))
}

// Speed returns the playback speed in data seconds per wall second.
func (c *Clock) Speed() float64 {
	return c.speed
}

// SetSpeed sets the playback speed, clamped to the supported range.
// Non-positive values reset to one hour per second.
func (c *Clock) SetSpeed(speed float64) {
	if speed <= 0 {
		speed = 3600
	}
	if speed < minPlaybackSpeed {
		speed = minPlaybackSpeed
	}
	if speed > maxPlaybackSpeed {
		speed = maxPlaybackSpeed
	}
	c.speed = speed
}
