package toolsarea

import (
	"log/slog"

	"github.com/go-drift/toolsarea/pkg/errors"
)

// EventType identifies a host notification.
type EventType int

const (
	EventElementAdded EventType = iota
	EventElementRemoved
	EventElementShown
	EventElementHidden
	EventElementMoved
	EventElementResized
	EventOrientationChanged
	EventFloatingChanged
	EventDockChanged
	EventTopLevelChanged
	EventElementDestroyed
	EventWindowActiveChanged
	EventWindowEnabledChanged
	EventWindowResized
	EventWindowDestroyed
)

var eventNames = [...]string{
	EventElementAdded:         "element-added",
	EventElementRemoved:       "element-removed",
	EventElementShown:         "element-shown",
	EventElementHidden:        "element-hidden",
	EventElementMoved:         "element-moved",
	EventElementResized:       "element-resized",
	EventOrientationChanged:   "orientation-changed",
	EventFloatingChanged:      "floating-changed",
	EventDockChanged:          "dock-changed",
	EventTopLevelChanged:      "top-level-changed",
	EventElementDestroyed:     "element-destroyed",
	EventWindowActiveChanged:  "window-active-changed",
	EventWindowEnabledChanged: "window-enabled-changed",
	EventWindowResized:        "window-resized",
	EventWindowDestroyed:      "window-destroyed",
}

func (t EventType) String() string {
	if int(t) >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// ParseEventType returns the EventType named s.
func ParseEventType(s string) (EventType, bool) {
	for i, name := range eventNames {
		if name == s {
			return EventType(i), true
		}
	}
	return 0, false
}

// Event is a change notification from the host. Node is the element or
// container the event concerns. Active and Enabled carry the new window
// state for the window events.
type Event struct {
	Type    EventType
	Node    NodeID
	Active  bool
	Enabled bool
}

// Dispatch routes a host event. Events for nodes the manager does not track
// and does not find under a tracked window are ignored.
func (m *Manager) Dispatch(ev Event) {
	defer errors.Recover("toolsarea.Dispatch")
	if m.closed {
		return
	}
	m.dispatch(ev)
}

func (m *Manager) dispatch(ev Event) {
	switch ev.Type {
	case EventElementDestroyed:
		m.elementDestroyed(ev.Node)
		return
	case EventWindowDestroyed:
		m.purge()
		m.destroyWindow(ev.Node)
		// A destroyed window may also have been registered as an element.
		m.elementDestroyed(ev.Node)
		return
	}

	m.purge()
	switch ev.Type {
	case EventElementShown:
		if _, rec := m.reg.lookup(ev.Node); rec != nil {
			rec.graceShow = true
		}
		m.invalidateFor(ev.Node, InvalidateStructural)

	case EventElementAdded, EventElementRemoved, EventElementHidden,
		EventOrientationChanged, EventFloatingChanged, EventDockChanged:
		m.invalidateFor(ev.Node, InvalidateStructural)

	case EventElementMoved, EventElementResized:
		m.invalidateFor(ev.Node, InvalidateGeometry)

	case EventTopLevelChanged:
		m.topLevelChanged(ev.Node)

	case EventWindowActiveChanged:
		m.setWindowActive(ev.Node, ev.Active)

	case EventWindowEnabledChanged:
		if w := m.reg.windows[ev.Node]; w != nil && w.enabled != ev.Enabled {
			w.enabled = ev.Enabled
			m.emit(ev.Node)
		}

	case EventWindowResized:
		if m.reg.windows[ev.Node] != nil {
			m.invalidate(ev.Node, InvalidateGeometry)
		}

	default:
		m.logger.Warn("unhandled host event", slog.String("type", ev.Type.String()))
	}
}

// elementDestroyed clears the liveness flag of a registered element. The
// record is freed by the next purge; during a pass that is deferred so the
// pass never sees a freed record.
func (m *Manager) elementDestroyed(id NodeID) {
	if _, ok := m.reg.markDestroyed(id); !ok {
		return
	}
	if m.passDepth == 0 {
		m.purge()
	}
}

// topLevelChanged handles a reparent. A registered element is recomputed in
// its old window, which moves it. A reparented container may carry
// registered descendants from any window, so every window is refreshed.
func (m *Manager) topLevelChanged(id NodeID) {
	if _, rec := m.reg.lookup(id); rec != nil {
		old := rec.window
		m.invalidate(old, InvalidateStructural)
		if top, ok := TopLevelOf(m.tree, id); ok && top.ID != old {
			m.invalidate(top.ID, InvalidateStructural)
		}
		return
	}
	for _, win := range m.Windows() {
		m.invalidate(win, InvalidateStructural)
	}
}

func (m *Manager) setWindowActive(id NodeID, active bool) {
	w := m.reg.windows[id]
	if w == nil {
		return
	}
	w.active = active
	if w.anim.setActive(active, m.theme.Palette()) {
		m.stats.Transitions++
		m.metrics.transitions.Inc()
	}
	m.emit(id)
}

// invalidateFor invalidates the window that owns id: its registered window,
// id itself when it is a tracked window, or its current top-level.
func (m *Manager) invalidateFor(id NodeID, kind Invalidation) {
	if win, ok := m.windowOf(id); ok {
		m.invalidate(win, kind)
	}
}

func (m *Manager) windowOf(id NodeID) (NodeID, bool) {
	if _, rec := m.reg.lookup(id); rec != nil {
		return rec.window, true
	}
	if m.reg.windows[id] != nil {
		return id, true
	}
	if top, ok := TopLevelOf(m.tree, id); ok && m.reg.windows[top.ID] != nil {
		return top.ID, true
	}
	return NoNode, false
}
