// Package animation provides the frame-stepped timing primitives behind the
// tools area: tickers, one-shot timers, a reversible animation controller and
// tweens that map its progress onto colors.
//
// # Core Components
//
//   - [TickerSet]: owns every active [Ticker] of one host event loop. The host
//     calls [TickerSet.Step] once per frame; nothing here spawns goroutines.
//
//   - [Timer]: a one-shot callback built on a ticker, used for debouncing.
//
//   - [AnimationController]: drives a value between LowerBound and UpperBound.
//     Reversing direction mid-flight continues from the current value.
//
//   - [Tween]: interpolates colors or floats from the controller's value.
//
// # Basic Usage
//
//	tickers := animation.NewTickerSet(nil)
//	c := animation.NewAnimationController(250*time.Millisecond, tickers)
//	bg := animation.TweenColor(inactiveBg, activeBg)
//	c.AddListener(func() { repaint(bg.Transform(c)) })
//	c.Forward()
//
//	// once per frame, on the UI thread
//	tickers.Step()
package animation

import "time"

// Ticker calls a callback on each step while active.
//
// Ticker is the low-level timing primitive used by [AnimationController] and
// [Timer]. The callback receives the elapsed time since Start was called.
type Ticker struct {
	set      *TickerSet
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.set.Now()
	t.set.active[t] = struct{}{}
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	delete(t.set.active, t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.set.Now().Sub(t.start)
}

// TickerProvider creates tickers.
type TickerProvider interface {
	CreateTicker(callback func(time.Duration)) *Ticker
}

// TickerSet tracks the active tickers of a single event loop.
//
// A TickerSet is not safe for concurrent use; it is owned by the thread that
// runs the host UI loop.
type TickerSet struct {
	clock  Clock
	active map[*Ticker]struct{}
}

// NewTickerSet returns an empty set reading time from c, or from the
// package clock when c is nil.
func NewTickerSet(c Clock) *TickerSet {
	return &TickerSet{
		clock:  c,
		active: make(map[*Ticker]struct{}),
	}
}

// Now returns the current time as seen by this set.
func (s *TickerSet) Now() time.Time {
	if s.clock != nil {
		return s.clock.Now()
	}
	return Now()
}

// CreateTicker implements TickerProvider.
func (s *TickerSet) CreateTicker(callback func(time.Duration)) *Ticker {
	return &Ticker{set: s, callback: callback}
}

// Step advances all active tickers. Call it once per frame.
func (s *TickerSet) Step() {
	if len(s.active) == 0 {
		return
	}
	// Callbacks may start or stop tickers.
	tickers := make([]*Ticker, 0, len(s.active))
	for ticker := range s.active {
		tickers = append(tickers, ticker)
	}

	now := s.Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActive reports whether any ticker in the set is running.
func (s *TickerSet) HasActive() bool {
	return len(s.active) > 0
}

// Len returns the number of active tickers.
func (s *TickerSet) Len() int {
	return len(s.active)
}
