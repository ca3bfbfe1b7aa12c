package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "toolsarea.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolsarea.yaml")
	data := []byte(`version: v1.2.0
animation:
  enabled: false
  duration: 300ms
  curve: Ease-Out
  blend: lab
debounce: 5ms
hairline: 0
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.False(t, got.AnimationsEnabled)
	assert.Equal(t, 300*time.Millisecond, got.AnimationDuration)
	assert.Equal(t, time.Duration(0), got.EffectiveDuration())
	assert.Equal(t, "ease-out", got.Curve)
	assert.Equal(t, BlendLab, got.Blend)
	assert.Equal(t, 5*time.Millisecond, got.DebounceDelay)
	assert.Equal(t, 0.0, got.Hairline)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad version", "version: banana"},
		{"wrong major", "version: v2.0.0"},
		{"bad duration", "animation:\n  duration: soon"},
		{"negative debounce", "debounce: -1s"},
		{"unknown curve", "animation:\n  curve: bounce"},
		{"unknown blend", "animation:\n  blend: hsv"},
		{"negative hairline", "hairline: -2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			_, err = cfg.Resolve()
			assert.Error(t, err)
		})
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("animation: [unclosed"))
	assert.Error(t, err)
}

func TestValidateVersion(t *testing.T) {
	assert.NoError(t, ValidateVersion(""))
	assert.NoError(t, ValidateVersion("1.0.0"))
	assert.NoError(t, ValidateVersion("v1"))
	assert.Error(t, ValidateVersion("v0.9.0"))
}
