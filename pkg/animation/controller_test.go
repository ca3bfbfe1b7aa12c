package animation

import (
	"math"
	"testing"
	"time"

	drifttest "github.com/go-drift/toolsarea/pkg/testing"
)

func newTestController(d time.Duration) (*AnimationController, *TickerSet, *drifttest.FakeClock) {
	clk := drifttest.NewFakeClock()
	tickers := NewTickerSet(clk)
	return NewAnimationController(d, tickers), tickers, clk
}

func TestController_ForwardCompletes(t *testing.T) {
	c, tickers, clk := newTestController(200 * time.Millisecond)

	var statuses []AnimationStatus
	c.AddStatusListener(func(s AnimationStatus) { statuses = append(statuses, s) })

	c.Forward()
	if !c.IsAnimating() {
		t.Fatal("expected controller to be animating")
	}
	clk.Advance(100 * time.Millisecond)
	tickers.Step()
	if math.Abs(c.Value-0.5) > 1e-9 {
		t.Errorf("Value = %v, want 0.5", c.Value)
	}
	clk.Advance(150 * time.Millisecond)
	tickers.Step()
	if c.Value != 1 {
		t.Errorf("Value = %v, want 1", c.Value)
	}
	if !c.IsCompleted() || c.IsAnimating() {
		t.Errorf("status = %v, animating = %v", c.Status(), c.IsAnimating())
	}
	if tickers.HasActive() {
		t.Error("expected ticker to be released")
	}
	want := []AnimationStatus{AnimationForward, AnimationCompleted}
	if len(statuses) != len(want) || statuses[0] != want[0] || statuses[1] != want[1] {
		t.Errorf("statuses = %v, want %v", statuses, want)
	}
}

func TestController_ReverseIsContinuous(t *testing.T) {
	c, tickers, clk := newTestController(100 * time.Millisecond)

	c.Forward()
	clk.Advance(30 * time.Millisecond)
	tickers.Step()
	before := c.Value

	c.Reverse()
	if c.Value != before {
		t.Fatalf("reversal jumped from %v to %v", before, c.Value)
	}
	clk.Advance(time.Millisecond)
	tickers.Step()
	if math.Abs(c.Value-before) > 0.02 {
		t.Errorf("value moved %v in 1ms, expected a small step", math.Abs(c.Value-before))
	}

	// 30ms forward + 30ms back returns to the lower bound.
	clk.Advance(29 * time.Millisecond)
	tickers.Step()
	if c.Value != 0 || !c.IsDismissed() {
		t.Errorf("Value = %v, status = %v; want dismissed at 0", c.Value, c.Status())
	}
}

func TestController_ZeroDurationSnaps(t *testing.T) {
	c, tickers, _ := newTestController(0)
	notified := 0
	c.AddListener(func() { notified++ })

	c.Forward()
	if c.Value != 1 || !c.IsCompleted() {
		t.Errorf("Value = %v, status = %v", c.Value, c.Status())
	}
	if tickers.HasActive() {
		t.Error("zero duration should not start a ticker")
	}
	if notified != 1 {
		t.Errorf("listeners notified %d times, want 1", notified)
	}
}

func TestController_SetValue(t *testing.T) {
	c, tickers, _ := newTestController(time.Second)
	c.Forward()
	c.SetValue(2)
	if c.Value != 1 || !c.IsCompleted() || tickers.HasActive() {
		t.Errorf("Value = %v, status = %v, active = %v", c.Value, c.Status(), tickers.HasActive())
	}
	c.Reset()
	if c.Value != 0 || !c.IsDismissed() {
		t.Errorf("after Reset Value = %v, status = %v", c.Value, c.Status())
	}
}

func TestController_DisposeStopsTicker(t *testing.T) {
	c, tickers, _ := newTestController(time.Second)
	c.Forward()
	c.Dispose()
	if tickers.HasActive() {
		t.Error("Dispose should stop the ticker")
	}
}

func TestTimer_FiresOnce(t *testing.T) {
	clk := drifttest.NewFakeClock()
	tickers := NewTickerSet(clk)
	calls := 0
	timer := tickers.AfterFunc(30*time.Millisecond, func() { calls++ })

	tickers.Step()
	if calls != 0 || !timer.Pending() {
		t.Fatalf("timer fired early: calls = %d", calls)
	}
	clk.Advance(30 * time.Millisecond)
	tickers.Step()
	tickers.Step()
	if calls != 1 || !timer.Fired() || timer.Pending() {
		t.Errorf("calls = %d, fired = %v, pending = %v", calls, timer.Fired(), timer.Pending())
	}
	if timer.Stop() {
		t.Error("Stop on fired timer should return false")
	}
}

func TestTimer_Stop(t *testing.T) {
	clk := drifttest.NewFakeClock()
	tickers := NewTickerSet(clk)
	calls := 0
	timer := tickers.AfterFunc(10*time.Millisecond, func() { calls++ })
	if !timer.Stop() {
		t.Fatal("Stop on pending timer should return true")
	}
	clk.Advance(time.Second)
	tickers.Step()
	if calls != 0 {
		t.Errorf("stopped timer fired %d times", calls)
	}
}

func TestTimer_Remaining(t *testing.T) {
	clk := drifttest.NewFakeClock()
	tickers := NewTickerSet(clk)
	timer := tickers.AfterFunc(20*time.Millisecond, func() {})

	clk.Advance(12 * time.Millisecond)
	if got, ok := timer.Remaining(); !ok || got != 8*time.Millisecond {
		t.Errorf("Remaining() = %v, %v; want 8ms, true", got, ok)
	}
	clk.Advance(8 * time.Millisecond)
	tickers.Step()
	if _, ok := timer.Remaining(); ok {
		t.Error("fired timer should report no deadline")
	}
	var unset *Timer
	if _, ok := unset.Remaining(); ok {
		t.Error("nil timer should report no deadline")
	}
}

func TestCurveByName(t *testing.T) {
	for _, name := range []string{"", "linear", "ease", "Ease-In", "ease-out", "ease-in-out"} {
		if _, ok := CurveByName(name); !ok {
			t.Errorf("CurveByName(%q) not found", name)
		}
	}
	if _, ok := CurveByName("bounce"); ok {
		t.Error("unexpected curve for bounce")
	}
}
