// Package config loads the tools area tuning file.
//
// The file is optional. Every field has a default, so an absent file and an
// empty file resolve to the same [Resolved] value:
//
//	version: v1.0.0
//	animation:
//	  enabled: true
//	  duration: 150ms
//	  curve: ease-in-out
//	  blend: rgb
//	debounce: 20ms
//	hairline: 1
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/toolsarea/pkg/animation"
)

// Defaults used when the file leaves a field unset.
const (
	DefaultAnimationDuration = 150 * time.Millisecond
	DefaultDebounceDelay     = 20 * time.Millisecond
	DefaultHairline          = 1.0
	SchemaMajor              = "v1"
)

// Config mirrors the YAML file.
type Config struct {
	Version   string          `yaml:"version,omitempty"`
	Animation AnimationConfig `yaml:"animation"`
	Debounce  string          `yaml:"debounce,omitempty"`
	Hairline  *float64        `yaml:"hairline,omitempty"`
}

// AnimationConfig contains animation settings.
type AnimationConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	Duration string `yaml:"duration,omitempty"`
	Curve    string `yaml:"curve,omitempty"`
	Blend    string `yaml:"blend,omitempty"`
}

// Blend selects the color space used for animated colors.
type Blend string

const (
	BlendRGB Blend = "rgb"
	BlendLab Blend = "lab"
)

// Resolved contains validated configuration values.
type Resolved struct {
	AnimationsEnabled bool
	AnimationDuration time.Duration
	Curve             string
	Blend             Blend
	DebounceDelay     time.Duration
	Hairline          float64
}

// Default returns the configuration used when no file is present.
func Default() Resolved {
	return Resolved{
		AnimationsEnabled: true,
		AnimationDuration: DefaultAnimationDuration,
		Curve:             "linear",
		Blend:             BlendRGB,
		DebounceDelay:     DefaultDebounceDelay,
		Hairline:          DefaultHairline,
	}
}

// EffectiveDuration returns zero when animations are disabled, which makes
// every animation snap.
func (r Resolved) EffectiveDuration() time.Duration {
	if !r.AnimationsEnabled {
		return 0
	}
	return r.AnimationDuration
}

// Parse decodes YAML configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// LoadOptional reads the config file at path if present.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Load reads (if present) and resolves the config file at path.
func Load(path string) (Resolved, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return Resolved{}, err
	}
	return cfg.Resolve()
}

// Resolve validates the file contents and fills defaults.
func (c *Config) Resolve() (Resolved, error) {
	r := Default()
	if c == nil {
		return r, nil
	}

	if err := ValidateVersion(c.Version); err != nil {
		return Resolved{}, err
	}

	if c.Animation.Enabled != nil {
		r.AnimationsEnabled = *c.Animation.Enabled
	}
	if d, ok, err := parseDuration("animation.duration", c.Animation.Duration); err != nil {
		return Resolved{}, err
	} else if ok {
		r.AnimationDuration = d
	}
	if name := strings.TrimSpace(c.Animation.Curve); name != "" {
		if _, ok := animation.CurveByName(name); !ok {
			return Resolved{}, fmt.Errorf("animation.curve: unknown curve %q", name)
		}
		r.Curve = strings.ToLower(name)
	}
	switch Blend(strings.ToLower(strings.TrimSpace(c.Animation.Blend))) {
	case "":
	case BlendRGB:
		r.Blend = BlendRGB
	case BlendLab:
		r.Blend = BlendLab
	default:
		return Resolved{}, fmt.Errorf("animation.blend: must be %q or %q (got %q)", BlendRGB, BlendLab, c.Animation.Blend)
	}

	if d, ok, err := parseDuration("debounce", c.Debounce); err != nil {
		return Resolved{}, err
	} else if ok {
		r.DebounceDelay = d
	}

	if c.Hairline != nil {
		if *c.Hairline < 0 {
			return Resolved{}, fmt.Errorf("hairline cannot be negative (got %v)", *c.Hairline)
		}
		r.Hairline = *c.Hairline
	}
	return r, nil
}

// ValidateVersion accepts an empty version or any semantic version within
// the supported major.
func ValidateVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a valid semantic version", v)
	}
	if major := semver.Major(v); major != SchemaMajor {
		return fmt.Errorf("version %s is not supported (want %s.x)", v, SchemaMajor)
	}
	return nil
}

func parseDuration(field, value string) (time.Duration, bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", field, err)
	}
	if d < 0 {
		return 0, false, fmt.Errorf("%s cannot be negative (got %s)", field, value)
	}
	return d, true, nil
}
