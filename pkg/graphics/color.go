package graphics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Components returns the red, green, blue and alpha bytes.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// ScaleAlpha multiplies the current alpha by factor (clamped to 0-1).
func (c Color) ScaleAlpha(factor float64) Color {
	return c.WithAlpha(c.Alpha() * clamp01(factor))
}

// Hex formats the color as #RRGGBBAA.
func (c Color) Hex() string {
	r, g, b, a := c.Components()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or an SVG color name
// such as "steelblue".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}
	if !strings.HasPrefix(s, "#") {
		named, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return 0, fmt.Errorf("unknown color name %q", s)
		}
		return RGBA8(named.R, named.G, named.B, named.A), nil
	}

	alpha := uint8(0xFF)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	parsed, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := parsed.RGB255()
	return RGBA8(r, g, b, alpha), nil
}

// BlendLab interpolates between two colors in CIE L*a*b* space. Alpha is
// interpolated linearly.
func BlendLab(a, b Color, t float64) Color {
	t = clamp01(t)
	ca := toColorful(a)
	cb := toColorful(b)
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	alpha := a.Alpha() + (b.Alpha()-a.Alpha())*t
	return RGBA(r, g, bl, alpha)
}

func toColorful(c Color) colorful.Color {
	r, g, b, _ := c.RGBAF()
	return colorful.Color{R: r, G: g, B: b}
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
