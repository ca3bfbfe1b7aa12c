package theme

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/toolsarea/pkg/config"
	"github.com/go-drift/toolsarea/pkg/graphics"
)

// schemeFile is the YAML color scheme format:
//
//	version: v1
//	brightness: dark
//	always_active: false
//	active:
//	  foreground: "#fcfcfc"
//	  background: "#2e343a"
//	inactive:
//	  foreground: "#a1a9b1"
//	  background: "#31363b"
//	separator: "#fcfcfc33"
//
// Missing colors fall back to the default palette of the chosen brightness.
type schemeFile struct {
	Version      string     `yaml:"version,omitempty"`
	Brightness   string     `yaml:"brightness,omitempty"`
	AlwaysActive bool       `yaml:"always_active,omitempty"`
	Active       schemePair `yaml:"active"`
	Inactive     schemePair `yaml:"inactive"`
	Separator    string     `yaml:"separator,omitempty"`
}

type schemePair struct {
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// ParseScheme decodes a YAML color scheme.
func ParseScheme(data []byte) (Palette, error) {
	var f schemeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Palette{}, fmt.Errorf("failed to parse color scheme: %w", err)
	}
	if err := config.ValidateVersion(f.Version); err != nil {
		return Palette{}, err
	}

	var p Palette
	switch strings.ToLower(strings.TrimSpace(f.Brightness)) {
	case "", "light":
		p = DefaultLightPalette()
	case "dark":
		p = DefaultDarkPalette()
	default:
		return Palette{}, fmt.Errorf("brightness must be light or dark (got %q)", f.Brightness)
	}
	p.AlwaysActive = f.AlwaysActive

	fields := []struct {
		name  string
		value string
		dst   *graphics.Color
	}{
		{"active.foreground", f.Active.Foreground, &p.Active.Foreground},
		{"active.background", f.Active.Background, &p.Active.Background},
		{"inactive.foreground", f.Inactive.Foreground, &p.Inactive.Foreground},
		{"inactive.background", f.Inactive.Background, &p.Inactive.Background},
		{"separator", f.Separator, &p.Separator},
	}
	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			continue
		}
		c, err := graphics.ParseColor(field.value)
		if err != nil {
			return Palette{}, fmt.Errorf("%s: %w", field.name, err)
		}
		*field.dst = c
	}
	return p, nil
}

// LoadScheme reads and parses a color scheme file.
func LoadScheme(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to read color scheme: %w", err)
	}
	return ParseScheme(data)
}
