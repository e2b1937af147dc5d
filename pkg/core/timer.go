package core

import "time"

// FixedStep advances a simulation at a steady generations-per-second rate
// independent of how often the caller polls it, so a display loop can run
// faster than the recording rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a controller targeting the given rate. The
// accumulator starts full so the first poll steps immediately.
func NewFixedStep(perSecond int) *FixedStep {
	if perSecond <= 0 {
		perSecond = 1
	}
	step := time.Second / time.Duration(perSecond)
	return &FixedStep{step: step, accumulator: step}
}

// ShouldStep reports whether one generation's worth of time has elapsed
// since the last step.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
