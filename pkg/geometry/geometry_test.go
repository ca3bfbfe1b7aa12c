package geometry

import (
	"math"
	"testing"
)

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"disjoint", RectFromLTWH(0, 0, 10, 10), RectFromLTWH(20, 20, 5, 5), Rect{0, 0, 25, 25}},
		{"stacked", RectFromLTWH(0, 0, 300, 20), RectFromLTWH(0, 20, 120, 24), Rect{0, 0, 300, 44}},
		{"empty left", Rect{}, RectFromLTWH(5, 5, 10, 10), RectFromLTWH(5, 5, 10, 10)},
		{"empty right", RectFromLTWH(5, 5, 10, 10), Rect{}, RectFromLTWH(5, 5, 10, 10)},
		{"both empty", Rect{}, Rect{}, Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); !got.Equal(tt.want) {
				t.Errorf("Union() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectIsValid(t *testing.T) {
	tests := []struct {
		rect Rect
		want bool
	}{
		{RectFromLTWH(0, 0, 1, 1), true},
		{RectFromLTWH(0, 0, 0, 10), false},
		{RectFromLTWH(0, 0, 10, -1), false},
		{Rect{Left: math.NaN(), Right: 10, Bottom: 10}, false},
		{Rect{Right: math.Inf(1), Bottom: 10}, false},
	}
	for _, tt := range tests {
		if got := tt.rect.IsValid(); got != tt.want {
			t.Errorf("%+v.IsValid() = %v, want %v", tt.rect, got, tt.want)
		}
	}
}

func TestRectString(t *testing.T) {
	if got := (Rect{0, 0, 300, 44}).String(); got != "(0,0,300,44)" {
		t.Errorf("String() = %q", got)
	}
	if got := (Rect{0.5, 1, 2.25, 3}).String(); got != "(0.5,1,2.25,3)" {
		t.Errorf("String() = %q", got)
	}
}
