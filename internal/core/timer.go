package core

import "time"

// FixedStep gates simulation updates to a steady interval independent of
// the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return NewFixedInterval(time.Second / time.Duration(tps))
}

// NewFixedInterval constructs a FixedStep that fires once per interval. The
// first call to ShouldStep fires immediately.
func NewFixedInterval(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the tick interval. Non-positive values fall back to
// one sixtieth of a second.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second / 60
	}
	f.step = interval
}

// Interval returns the current tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset clears accumulated time so the next ShouldStep fires immediately.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	return f.Advance(now.Sub(f.last), now)
}

// Advance adds delta to the accumulator and reports whether a tick is due.
// At most one tick is reported per call so a stalled frame does not replay a
// burst of moves.
func (f *FixedStep) Advance(delta time.Duration, now time.Time) bool {
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator >= f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}
