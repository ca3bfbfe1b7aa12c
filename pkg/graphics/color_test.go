package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", ColorRed},
		{"#0f0", ColorGreen},
		{"#0000ff80", RGBA8(0, 0, 0xFF, 0x80)},
		{"white", ColorWhite},
		{"  Black ", ColorBlack},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#12", "notacolor", "#ff0000zz"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestScaleAlpha(t *testing.T) {
	c := ColorWhite.ScaleAlpha(0.5)
	assert.InDelta(t, 0.5, c.Alpha(), 0.01)
	assert.Equal(t, uint32(0x00FFFFFF), uint32(c)&0x00FFFFFF)
	assert.Equal(t, ColorWhite, ColorWhite.ScaleAlpha(2))
}

func TestBlendLabEndpoints(t *testing.T) {
	assert.Equal(t, ColorBlack, BlendLab(ColorBlack, ColorWhite, 0))
	assert.Equal(t, ColorWhite, BlendLab(ColorBlack, ColorWhite, 1))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff000080", ColorRed.WithAlpha8(0x80).Hex())
}
