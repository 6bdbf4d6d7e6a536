package scheduler

import "time"

// Clock provides the current time to the scheduler.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns a clock reading the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// SteppedClock is a deterministic clock that advances by a fixed duration
// every time it is read.
type SteppedClock struct {
	now  time.Time
	step time.Duration
}

// NewSteppedClock returns a clock that advances by step on every read.
func NewSteppedClock(step time.Duration) *SteppedClock {
	return &SteppedClock{
		now:  time.Unix(0, 0),
		step: step,
	}
}

// NewStepsPerFrameClock returns a stepped clock that reaches a frame
// boundary every stepsPerFrame reads.
func NewStepsPerFrameClock(stepsPerFrame int) *SteppedClock {
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}
	n := time.Duration(stepsPerFrame)
	return NewSteppedClock((FrameDuration + n - 1) / n)
}

// Now advances the clock and returns the new time.
func (c *SteppedClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}
