package toolsarea

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/toolsarea/pkg/geometry"
)

func TestAggregate(t *testing.T) {
	window := geometry.RectFromLTWH(0, 0, 300, 200)
	tests := []struct {
		name     string
		members  []geometry.Rect
		want     geometry.Rect
		contents bool
		margin   float64
	}{
		{
			name:     "command bar only",
			members:  []geometry.Rect{geometry.RectFromLTWH(0, 0, 300, 20)},
			want:     geometry.Rect{Left: 0, Top: 0, Right: 300, Bottom: 20},
			contents: true,
		},
		{
			name: "command bar and toolbar",
			members: []geometry.Rect{
				geometry.RectFromLTWH(0, 0, 300, 20),
				geometry.RectFromLTWH(0, 20, 120, 24),
			},
			want:     geometry.Rect{Left: 0, Top: 0, Right: 300, Bottom: 44},
			contents: true,
		},
		{
			name:     "narrow member spans window",
			members:  []geometry.Rect{geometry.RectFromLTWH(40, 0, 60, 30)},
			want:     geometry.Rect{Left: 0, Top: 0, Right: 300, Bottom: 30},
			contents: true,
		},
		{
			name: "degenerate members ignored",
			members: []geometry.Rect{
				geometry.RectFromLTWH(0, 0, 0, 20),
				{Left: 0, Top: 0, Right: math.NaN(), Bottom: 10},
				geometry.RectFromLTWH(0, 0, 300, 24),
			},
			want:     geometry.Rect{Left: 0, Top: 0, Right: 300, Bottom: 24},
			contents: true,
		},
		{
			name:   "no members",
			want:   geometry.Rect{Left: 0, Top: 0, Right: 300, Bottom: 0},
			margin: 1,
		},
		{
			name:    "only degenerate members",
			members: []geometry.Rect{geometry.RectFromLTWH(10, 10, 0, 0)},
			want:    geometry.Rect{Left: 0, Top: 0, Right: 300, Bottom: 0},
			margin:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(window, tt.members, 1)
			assert.True(t, got.Rect.Equal(tt.want), "rect = %v, want %v", got.Rect, tt.want)
			assert.Equal(t, tt.contents, got.HasContents)
			assert.Equal(t, tt.margin, got.Margin)
			assert.InDelta(t, window.Width(), got.Rect.Width(), 1e-9)
		})
	}
}

func TestAggregateOffsetWindow(t *testing.T) {
	window := geometry.RectFromLTWH(10, 5, 200, 100)
	got := Aggregate(window, []geometry.Rect{geometry.RectFromLTWH(50, 5, 20, 20)}, 1)
	assert.Equal(t, geometry.Rect{Left: 10, Top: 5, Right: 210, Bottom: 25}, got.Rect)
}
