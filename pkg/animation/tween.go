package animation

import "github.com/go-drift/toolsarea/pkg/graphics"

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the 0-1 range of an [AnimationController] to any value type.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp interpolates between Begin and End for progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value using the controller's current value.
func (tw *Tween[T]) Transform(controller *AnimationController) T {
	return tw.Evaluate(controller.Value)
}

func lerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor linearly interpolates each ARGB channel of two colors.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	ar, ag, ab, aa := a.Components()
	br, bg, bb, ba := b.Components()
	return graphics.RGBA8(
		lerpByte(ar, br, t),
		lerpByte(ag, bg, t),
		lerpByte(ab, bb, t),
		lerpByte(aa, ba, t),
	)
}

func lerpByte(a, b uint8, t float64) uint8 {
	v := lerpFloat(float64(a), float64(b), t)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// TweenColor creates a tween for Color values with per-channel linear
// interpolation.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{
		Begin: begin,
		End:   end,
		Lerp:  LerpColor,
	}
}
