package animation

import "time"

// Timer is a single-shot callback scheduled on a TickerSet. It fires on the
// first Step at or after its delay has elapsed.
type Timer struct {
	ticker *Ticker
	delay  time.Duration
	fn     func()
	fired  bool
}

// AfterFunc arms a Timer that calls fn once delay has elapsed.
func (s *TickerSet) AfterFunc(delay time.Duration, fn func()) *Timer {
	t := &Timer{delay: delay, fn: fn}
	t.ticker = s.CreateTicker(t.tick)
	t.ticker.Start()
	return t
}

func (t *Timer) tick(elapsed time.Duration) {
	if elapsed < t.delay {
		return
	}
	t.ticker.Stop()
	t.fired = true
	if t.fn != nil {
		t.fn()
	}
}

// Stop cancels the timer. It returns false if the timer already fired or
// was stopped.
func (t *Timer) Stop() bool {
	if t == nil || !t.ticker.IsActive() {
		return false
	}
	t.ticker.Stop()
	return true
}

// Pending reports whether the timer is armed and has not fired yet.
func (t *Timer) Pending() bool {
	return t != nil && t.ticker.IsActive()
}

// Fired reports whether the callback has run.
func (t *Timer) Fired() bool {
	return t != nil && t.fired
}

// Remaining returns the time left before the timer fires. It reports false
// when the timer is not armed.
func (t *Timer) Remaining() (time.Duration, bool) {
	if !t.Pending() {
		return 0, false
	}
	return max(t.delay-t.ticker.Elapsed(), 0), true
}
