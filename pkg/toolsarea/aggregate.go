package toolsarea

import "github.com/go-drift/toolsarea/pkg/geometry"

// Area is the computed tools area of one window.
type Area struct {
	// Rect spans the full window width. Its height is zero exactly when
	// HasContents is false.
	Rect        geometry.Rect
	HasContents bool
	// Margin is the top content margin the window should reserve: zero when
	// the area has contents, the hairline width otherwise.
	Margin float64
}

// Aggregate unions the valid member rectangles and stretches the result
// across the window. window is the window's own frame in its coordinates.
func Aggregate(window geometry.Rect, members []geometry.Rect, hairline float64) Area {
	var union geometry.Rect
	for _, r := range members {
		if !r.IsValid() {
			continue
		}
		union = union.Union(r)
	}

	if union.IsEmpty() {
		return Area{
			Rect: geometry.Rect{
				Left:   window.Left,
				Top:    window.Top,
				Right:  window.Left + window.Width(),
				Bottom: window.Top,
			},
			Margin: hairline,
		}
	}

	union.Left = window.Left
	union.Right = window.Left + window.Width()
	return Area{Rect: union, HasContents: true}
}
