package scenario

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/toolsarea/pkg/config"
	"github.com/go-drift/toolsarea/pkg/theme"
)

func TestRunFocusScenario(t *testing.T) {
	s, err := Load("testdata/focus.yaml")
	require.NoError(t, err)

	var out bytes.Buffer
	cfg := config.Default()
	res, err := Run(s, Options{Config: &cfg, Out: &out})
	require.NoError(t, err)
	assert.True(t, res.OK(), "failures: %v", res.Failures)
	assert.Equal(t, len(s.Steps), res.Steps)
	assert.NotZero(t, res.Updates)
	assert.Equal(t, uint64(1), res.Stats.DebouncedPasses)

	want := "main: rect=(0,0,300,52) contents=true margin=0 members=[menubar tools] phase=idle-active fg=" +
		theme.DefaultLightPalette().Active.Foreground.Hex()
	assert.True(t, strings.HasPrefix(out.String(), want), "got %q", out.String())
}

func TestRunReportsFailedExpectations(t *testing.T) {
	s, err := Parse([]byte(`
windows:
  - name: main
    rect: [0, 0, 300, 200]
nodes:
  - name: bar
    parent: main
    register: commandbar
    rect: [0, 0, 300, 20]
steps:
  - expect: {window: main, rect: [0, 0, 300, 99], contents: false}
`))
	require.NoError(t, err)

	res, err := Run(s, Options{})
	require.NoError(t, err)
	assert.False(t, res.OK())
	require.Len(t, res.Failures, 2)
	assert.Contains(t, res.Failures[0], "rect = (0,0,300,20)")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"no windows", `nodes: []`, "no windows"},
		{"bad version", "version: v2\nwindows: [{name: w, rect: [0,0,1,1]}]", "not supported"},
		{"bad rect", `windows: [{name: w, rect: [0, 0]}]`, "rect must be"},
		{"duplicate", `windows: [{name: w, rect: [0,0,1,1]}, {name: w, rect: [0,0,1,1]}]`, "duplicate"},
		{"unknown parent", "windows: [{name: w, rect: [0,0,1,1]}]\nnodes: [{name: n, parent: x}]", "parent"},
		{"unknown kind", "windows: [{name: w, rect: [0,0,1,1]}]\nnodes: [{name: n, parent: w, register: menu}]", "unknown element kind"},
		{"unknown action", "windows: [{name: w, rect: [0,0,1,1]}]\nsteps: [{do: fly}]", "unknown action"},
		{"ambiguous step", "windows: [{name: w, rect: [0,0,1,1]}]\nsteps: [{do: show, advance: 1s}]", "exactly one"},
		{"bad yaml", "windows: [", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRunStepErrors(t *testing.T) {
	s, err := Parse([]byte(`
windows: [{name: w, rect: [0, 0, 100, 100]}]
steps:
  - do: floating
    node: missing
    value: true
`))
	require.NoError(t, err)
	_, err = Run(s, Options{})
	assert.ErrorContains(t, err, `step 1: unknown node "missing"`)
}
