package animation

import (
	"fmt"
	"math"
	"time"
)

// AnimationStatus represents the current state of an animation.
//
// The status follows this state machine:
//
//	                Forward()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │         Reverse()            │
//	    └──────────────────────────────┘
//
// While animating, status is AnimationForward or AnimationReverse.
// When stopped, status is AnimationDismissed (at the lower bound) or
// AnimationCompleted (at the upper bound).
type AnimationStatus int

const (
	// AnimationDismissed means the animation is stopped at the lower bound.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the animation is playing toward the upper bound.
	AnimationForward
	// AnimationReverse means the animation is playing toward the lower bound.
	AnimationReverse
	// AnimationCompleted means the animation is stopped at the upper bound.
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController drives a Value between LowerBound and UpperBound.
//
// A full sweep from one bound to the other takes Duration. A partial sweep
// takes a proportional share of Duration, so calling Reverse while a Forward
// run is in flight retraces the same path from the current value and never
// jumps. The Curve function shapes each run.
//
// Always call Dispose when done to stop the ticker and drop listeners.
type AnimationController struct {
	// Value is the current animation value.
	Value float64

	// Duration is the time of a full sweep between the bounds.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	// LowerBound is the minimum value (default 0.0).
	LowerBound float64

	// UpperBound is the maximum value (default 1.0).
	UpperBound float64

	provider        TickerProvider
	status          AnimationStatus
	ticker          *Ticker
	target          float64
	startValue      float64
	span            time.Duration
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewAnimationController creates a controller with the given full-sweep
// duration whose tickers come from provider.
func NewAnimationController(duration time.Duration, provider TickerProvider) *AnimationController {
	return &AnimationController{
		Value:           0,
		Duration:        duration,
		LowerBound:      0,
		UpperBound:      1,
		Curve:           LinearCurve,
		provider:        provider,
		status:          AnimationDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Forward animates from the current value to the upper bound.
func (c *AnimationController) Forward() {
	c.animateTo(c.UpperBound, AnimationForward)
}

// Reverse animates from the current value to the lower bound.
func (c *AnimationController) Reverse() {
	c.animateTo(c.LowerBound, AnimationReverse)
}

// AnimateTo animates to a specific target value.
func (c *AnimationController) AnimateTo(target float64) {
	if target > c.Value {
		c.animateTo(target, AnimationForward)
	} else {
		c.animateTo(target, AnimationReverse)
	}
}

func (c *AnimationController) animateTo(target float64, direction AnimationStatus) {
	c.Stop()

	c.target = target
	c.startValue = c.Value
	c.span = c.spanTo(target)

	if c.span <= 0 || c.provider == nil {
		c.Value = target
		c.notifyListeners()
		c.settle()
		return
	}

	c.setStatus(direction)
	c.ticker = c.provider.CreateTicker(c.tick)
	c.ticker.Start()
}

// spanTo returns the share of Duration needed to move from Value to target.
func (c *AnimationController) spanTo(target float64) time.Duration {
	if c.Duration <= 0 {
		return 0
	}
	rangeSize := c.UpperBound - c.LowerBound
	if rangeSize <= 0 {
		return 0
	}
	fraction := math.Abs(target-c.Value) / rangeSize
	return time.Duration(float64(c.Duration) * math.Min(fraction, 1))
}

func (c *AnimationController) tick(elapsed time.Duration) {
	progress := float64(elapsed) / float64(c.span)
	if progress >= 1.0 {
		progress = 1.0
	}

	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if progress >= 1.0 {
		c.Value = c.target
		c.stop()
	}
}

func (c *AnimationController) stop() {
	c.Stop()
	c.settle()
}

// settle updates the status from the resting value.
func (c *AnimationController) settle() {
	if c.Value <= c.LowerBound {
		c.setStatus(AnimationDismissed)
	} else if c.Value >= c.UpperBound {
		c.setStatus(AnimationCompleted)
	}
}

// SetValue stops any running animation and jumps to v.
func (c *AnimationController) SetValue(v float64) {
	c.Stop()
	c.Value = math.Max(c.LowerBound, math.Min(c.UpperBound, v))
	c.settle()
	c.notifyListeners()
}

// Reset immediately sets the value to the lower bound.
func (c *AnimationController) Reset() {
	c.SetValue(c.LowerBound)
}

// Stop stops the animation at the current value.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil && c.ticker.IsActive()
}

// IsCompleted returns true if the animation finished at the upper bound.
func (c *AnimationController) IsCompleted() bool {
	return c.status == AnimationCompleted
}

// IsDismissed returns true if the animation is at the lower bound.
func (c *AnimationController) IsDismissed() bool {
	return c.status == AnimationDismissed
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose cleans up resources used by the controller.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
