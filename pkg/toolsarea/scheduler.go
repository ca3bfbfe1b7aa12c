package toolsarea

import (
	"log/slog"
	"slices"

	"github.com/go-drift/toolsarea/pkg/errors"
	"github.com/go-drift/toolsarea/pkg/geometry"
)

// Invalidation classifies a change reported for a window.
type Invalidation int

const (
	// InvalidateStructural covers membership-affecting changes. The window
	// is recomputed before the call returns.
	InvalidateStructural Invalidation = iota
	// InvalidateGeometry covers moves and resizes. Bursts are coalesced
	// into one pass after the debounce delay.
	InvalidateGeometry
)

func (i Invalidation) String() string {
	if i == InvalidateGeometry {
		return "geometry"
	}
	return "structural"
}

// invalidate schedules a pass for window.
func (m *Manager) invalidate(window NodeID, kind Invalidation) {
	w := m.reg.windows[window]
	if w == nil {
		return
	}
	if kind == InvalidateStructural {
		m.cancelPending(w)
		m.recompute(window, triggerStructural)
		return
	}
	if w.timer.Pending() {
		m.stats.Absorbed++
		m.metrics.absorbed.Inc()
		return
	}
	w.timer = m.tickers.AfterFunc(m.cfg.DebounceDelay, func() {
		m.runSafely("toolsarea.debounce", window, func() {
			m.recompute(window, triggerDebounced)
		})
	})
}

// cancelPending stops w's debounce timer if it is armed.
func (m *Manager) cancelPending(w *windowRecord) {
	w.timer.Stop()
	w.timer = nil
}

// recompute re-evaluates every element of window, re-aggregates its area
// and notifies listeners. Elements that now belong to another window move
// there and that window is recomputed afterwards.
func (m *Manager) recompute(window NodeID, trigger string) {
	m.purge()
	w := m.reg.windows[window]
	if w == nil {
		return
	}
	w.timer = nil
	m.passDepth++
	defer func() { m.passDepth-- }()

	frame, ok := m.tree.Node(window)
	if !ok {
		m.destroyWindow(window)
		return
	}
	w.noSeparator = frame.NoSeparator

	var moved []NodeID
	var rects []geometry.Rect
	for h := range w.elements {
		rec := m.reg.get(h)
		if rec == nil || rec.destroyed {
			continue
		}
		node, ok := m.tree.Node(rec.id)
		if !ok {
			// Gone without a destruction report. Treat it as destroyed.
			m.reg.markDestroyed(rec.id)
			continue
		}
		if top, ok := TopLevelOf(m.tree, rec.id); ok && top.ID != window {
			target := m.ensureWindow(top.ID)
			m.reg.attach(h, target)
			target.teardown = false
			if !slices.Contains(moved, top.ID) {
				moved = append(moved, top.ID)
			}
			continue
		}

		res := MembershipOf(m.tree, rec.id, rec.kind, rec.graceShow)
		rec.graceShow = false
		rec.geometry = node.Geometry
		rec.visible = node.Visible
		rec.member = res.Member
		rec.reason = res.Reason
		if res.Member {
			w.members[h] = struct{}{}
			rects = append(rects, node.Geometry)
		} else {
			delete(w.members, h)
		}
	}
	// Drop records found missing above.
	m.reg.purgeDestroyed()
	if len(w.elements) == 0 {
		w.teardown = true
	}

	prev := w.area
	w.area = Aggregate(frame.Geometry, rects, m.hairline(w))
	w.passes++
	m.stats.Passes++
	if trigger == triggerDebounced {
		m.stats.DebouncedPasses++
	}
	m.metrics.recomputes.WithLabelValues(trigger).Inc()
	if prev != w.area {
		m.logger.Debug("tools area updated",
			slog.Uint64("window", uint64(window)),
			slog.String("trigger", trigger),
			slog.Int("members", len(w.members)),
			slog.String("rect", w.area.Rect.String()),
		)
	}

	m.emit(window)

	if w.teardown && len(w.elements) == 0 {
		m.destroyWindow(window)
	}
	for _, id := range moved {
		m.invalidate(id, InvalidateStructural)
	}
}

// runSafely runs fn, reporting a panic instead of unwinding into the host.
// window tags the report; NoNode when the work is not window scoped.
func (m *Manager) runSafely(op string, window NodeID, fn func()) {
	defer errors.RecoverWindow(op, uint64(window))
	fn()
}
