// Package testing provides deterministic time for tools area tests.
//
// # Quick Start
//
// Drive a manager with a fake clock and pump frames:
//
//	clk := drifttest.NewFakeClock()
//	m := toolsarea.New(tree, toolsarea.Options{Clock: clk})
//	frames := drifttest.NewFrameDriver(clk, m)
//
//	tree.SetGeometry(bar, geometry.RectFromLTWH(0, 0, 300, 24))
//	frames.PumpFor(50 * time.Millisecond)
//
//	if err := frames.PumpAndSettle(time.Second); err != nil {
//	    t.Fatal(err)
//	}
//
// Each frame advances the clock by [FrameDuration] and calls Tick once, the
// way a host's frame callback would.
package testing
