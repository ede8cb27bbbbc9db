package engine

import (
	"time"

	"github.com/lixenwraith/turtle-dive/parameter"
	"github.com/lixenwraith/turtle-dive/vmath"
)

// Clock derives the clamped per-tick delta from successive frame timestamps
// The first sample has no predecessor and yields zero
type Clock struct {
	provider TimeProvider
	last     time.Time
	hasLast  bool // false until the first sample
}

// NewClock creates a clock with no previous sample
func NewClock(provider TimeProvider) *Clock {
	return &Clock{provider: provider}
}

// Tick samples the provider and returns the delta in seconds
func (c *Clock) Tick() float64 {
	return c.Delta(c.provider.Now())
}

// Delta returns seconds since the previous sample, clamped to [0, MaxDeltaTime]
func (c *Clock) Delta(now time.Time) float64 {
	if !c.hasLast {
		c.last = now
		c.hasLast = true
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampDelta(dt)
}

// Reset forgets the previous sample so the next delta is zero
func (c *Clock) Reset() {
	c.hasLast = false
	c.last = time.Time{}
}

// ClampDelta bounds a raw delta; negative and NaN become zero
func ClampDelta(dt float64) float64 {
	return vmath.Clamp(dt, 0, parameter.MaxDeltaTime)
}
