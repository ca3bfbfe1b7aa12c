package toolsarea

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/toolsarea/pkg/errors"
	"github.com/go-drift/toolsarea/pkg/geometry"
	drifttest "github.com/go-drift/toolsarea/pkg/testing"
)

func singleBarTree() mapTree {
	tree := baseTree()
	tree[winID] = Node{ID: winID, Container: ContainerWindow, Visible: true, Active: true, Enabled: true,
		Geometry: geometry.RectFromLTWH(0, 0, 300, 200)}
	return tree.add(Node{ID: elemID, Parent: winID, Visible: true, Geometry: geometry.RectFromLTWH(0, 0, 300, 20)})
}

func TestWindowReleasedWhenLastElementVanishes(t *testing.T) {
	tests := []struct {
		name  string
		event Event
	}{
		{"structural pass", Event{Type: EventElementAdded, Node: winID}},
		{"debounced pass", Event{Type: EventWindowResized, Node: winID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := singleBarTree()
			clk := drifttest.NewFakeClock()
			m := New(tree, Options{Clock: clk, Registerer: prometheus.NewRegistry()})
			defer m.Close()
			frames := drifttest.NewFrameDriver(clk, m)
			require.True(t, m.RegisterElement(elemID, KindCommandBar, winID))

			// The host drops the node without a destruction callback.
			delete(tree, elemID)
			m.Dispatch(tt.event)
			frames.PumpToDeadline()

			assert.Empty(t, m.Windows())
			assert.Zero(t, m.Stats().Windows)
			assert.Zero(t, m.Stats().Elements)
			assert.Equal(t, 0.0, testutil.ToFloat64(m.metrics.windows))
			assert.False(t, m.IsInToolsArea(elemID))
			assert.Equal(t, m.cfg.Hairline, m.Margin(winID))
		})
	}
}

func TestDebouncedPanicNamesWindow(t *testing.T) {
	tree := singleBarTree()
	clk := drifttest.NewFakeClock()
	m := New(tree, Options{Clock: clk})
	defer m.Close()
	frames := drifttest.NewFrameDriver(clk, m)
	require.True(t, m.RegisterElement(elemID, KindCommandBar, winID))

	h := &captureHandler{}
	defer errors.SetHandler(errors.SetHandler(h))
	m.OnAreaUpdated(func(NodeID) { panic("listener failed") })

	m.Dispatch(Event{Type: EventElementMoved, Node: elemID})
	require.True(t, frames.PumpToDeadline())

	require.Len(t, h.panics, 1)
	assert.Equal(t, "toolsarea.debounce", h.panics[0].Op)
	assert.Equal(t, uint64(winID), h.panics[0].Window)
	assert.False(t, m.NeedsTick())
	assert.Equal(t, 0, m.passDepth)
}
