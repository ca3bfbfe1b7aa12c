package toolsarea

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/toolsarea/pkg/geometry"
	drifttest "github.com/go-drift/toolsarea/pkg/testing"
)

func TestMetricsTrackPassesAndWindows(t *testing.T) {
	tree := baseTree()
	tree[winID] = Node{ID: winID, Container: ContainerWindow, Visible: true, Active: true, Enabled: true,
		Geometry: geometry.RectFromLTWH(0, 0, 300, 200)}
	tree.add(Node{ID: elemID, Parent: winID, Visible: true, Geometry: geometry.RectFromLTWH(0, 0, 300, 20)})

	clk := drifttest.NewFakeClock()
	m := New(tree, Options{Clock: clk, Registerer: prometheus.NewRegistry()})
	defer m.Close()

	require.True(t, m.RegisterElement(elemID, KindCommandBar, winID))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.metrics.windows))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.metrics.recomputes.WithLabelValues(triggerStructural)))

	for range 3 {
		m.Dispatch(Event{Type: EventElementMoved, Node: elemID})
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(m.metrics.absorbed))

	m.Dispatch(Event{Type: EventWindowActiveChanged, Node: winID, Active: false})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.metrics.transitions))

	m.UnregisterElement(elemID)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.metrics.windows))
}

func TestMetricsSharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := newMetrics(reg)
	b := newMetrics(reg)

	a.absorbed.Inc()
	b.absorbed.Inc()
	assert.Equal(t, 2.0, testutil.ToFloat64(a.absorbed))
	assert.Equal(t, 2.0, testutil.ToFloat64(b.absorbed))
	// The vector has no children yet, so three series are exposed.
	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMetricsWithoutRegistry(t *testing.T) {
	m := newMetrics(nil)
	m.windows.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.windows))
}

func TestStalePurgeDuringPass(t *testing.T) {
	tree := baseTree()
	tree[winID] = Node{ID: winID, Container: ContainerWindow, Visible: true, Active: true, Enabled: true,
		Geometry: geometry.RectFromLTWH(0, 0, 300, 200)}
	tree.add(Node{ID: elemID, Parent: winID, Visible: true, Geometry: geometry.RectFromLTWH(0, 0, 300, 20)})
	tree.add(Node{ID: panelID, Parent: winID, Visible: true, Geometry: geometry.RectFromLTWH(0, 20, 300, 20),
		Dock: DockTop})

	m := New(tree, Options{Clock: drifttest.NewFakeClock()})
	defer m.Close()
	require.True(t, m.RegisterElement(elemID, KindCommandBar, winID))
	require.True(t, m.RegisterElement(panelID, KindToolbar, winID))

	// The listener destroys an element while the pass is still notifying.
	fired := false
	m.OnAreaUpdated(func(NodeID) {
		if fired {
			return
		}
		fired = true
		delete(tree, panelID)
		m.Dispatch(Event{Type: EventElementDestroyed, Node: panelID})
	})
	m.Dispatch(Event{Type: EventElementHidden, Node: elemID})

	assert.False(t, m.IsInToolsArea(panelID))
	assert.Equal(t, 1, m.Stats().Elements)
	assert.True(t, m.HasContents(winID))
}
