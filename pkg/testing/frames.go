package testing

import (
	"errors"
	"time"
)

// FrameDuration is the clock advance per pumped frame.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned by PumpAndSettle when work is still pending
// after the timeout.
var ErrSettleTimeout = errors.New("pump and settle timed out")

// Ticking is the frame callback surface of the code under test.
type Ticking interface {
	Tick()
	NeedsTick() bool
}

// Scheduler is implemented by targets that arm delayed work, such as the
// tools area debounce timers.
type Scheduler interface {
	NextDeadline() (time.Duration, bool)
}

// FrameDriver advances a FakeClock and ticks a target once per frame.
type FrameDriver struct {
	clock  *FakeClock
	target Ticking
	frames int
}

// NewFrameDriver returns a driver for target using clock.
func NewFrameDriver(clock *FakeClock, target Ticking) *FrameDriver {
	return &FrameDriver{clock: clock, target: target}
}

// Pump runs one frame without advancing the clock.
func (d *FrameDriver) Pump() {
	d.target.Tick()
	d.frames++
}

// PumpFor advances the clock in FrameDuration steps for total, ticking after
// each step. A remainder shorter than a frame is advanced as a final step.
func (d *FrameDriver) PumpFor(total time.Duration) {
	for total > 0 {
		step := min(FrameDuration, total)
		d.clock.Advance(step)
		d.Pump()
		total -= step
	}
}

// PumpToDeadline advances the clock to the target's next deadline and runs
// one frame, so the delayed work fires exactly on time. It reports false,
// without pumping, when the target schedules nothing.
func (d *FrameDriver) PumpToDeadline() bool {
	s, ok := d.target.(Scheduler)
	if !ok {
		return false
	}
	wait, ok := s.NextDeadline()
	if !ok {
		return false
	}
	d.clock.Advance(wait)
	d.Pump()
	return true
}

// PumpAndSettle runs frames until the target reports no pending work or the
// timeout is reached.
func (d *FrameDriver) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		d.Pump()
		if !d.target.NeedsTick() {
			return nil
		}
		d.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// Frames returns the number of frames pumped so far.
func (d *FrameDriver) Frames() int {
	return d.frames
}

// Clock returns the driver's clock.
func (d *FrameDriver) Clock() *FakeClock {
	return d.clock
}
