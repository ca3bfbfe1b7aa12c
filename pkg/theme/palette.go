// Package theme supplies the colors the tools area animates between.
package theme

import "github.com/go-drift/toolsarea/pkg/graphics"

//go:generate mockgen -destination=thememock/provider.go -package=thememock github.com/go-drift/toolsarea/pkg/theme Provider

// Brightness indicates whether a palette is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ColorPair is the foreground/background of the tools area in one window
// state.
type ColorPair struct {
	Foreground graphics.Color
	Background graphics.Color
}

// Palette holds the tools area (header) colors.
type Palette struct {
	Brightness Brightness

	// Active is used while the window is focused.
	Active ColorPair
	// Inactive is used while another window is focused.
	Inactive ColorPair
	// Separator is the color of the hairline drawn under the area.
	Separator graphics.Color

	// AlwaysActive is set on display environments that report every
	// window as active. Chrome is expected to look perpetually active there.
	AlwaysActive bool
}

// Pair returns the endpoint colors for a window state.
func (p Palette) Pair(active bool) ColorPair {
	if active {
		return p.Active
	}
	return p.Inactive
}

// Provider exposes the current palette.
type Provider interface {
	Palette() Palette
}

// StaticProvider always returns the same palette.
type StaticProvider struct {
	P Palette
}

// Palette implements Provider.
func (s StaticProvider) Palette() Palette {
	return s.P
}

// DefaultLightPalette returns the light header colors.
func DefaultLightPalette() Palette {
	return Palette{
		Brightness: BrightnessLight,
		Active: ColorPair{
			Foreground: graphics.RGB(0x23, 0x26, 0x29),
			Background: graphics.RGB(0xDE, 0xE0, 0xE2),
		},
		Inactive: ColorPair{
			Foreground: graphics.RGB(0x70, 0x7D, 0x8A),
			Background: graphics.RGB(0xEF, 0xF0, 0xF1),
		},
		Separator: graphics.RGBA(0x23, 0x26, 0x29, 0.2),
	}
}

// DefaultDarkPalette returns the dark header colors.
func DefaultDarkPalette() Palette {
	return Palette{
		Brightness: BrightnessDark,
		Active: ColorPair{
			Foreground: graphics.RGB(0xFC, 0xFC, 0xFC),
			Background: graphics.RGB(0x2E, 0x34, 0x3A),
		},
		Inactive: ColorPair{
			Foreground: graphics.RGB(0xA1, 0xA9, 0xB1),
			Background: graphics.RGB(0x31, 0x36, 0x3B),
		},
		Separator: graphics.RGBA(0xFC, 0xFC, 0xFC, 0.2),
	}
}
