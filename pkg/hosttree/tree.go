// Package hosttree is an in-memory widget hierarchy implementing
// [toolsarea.Tree]. Mutations emit the host events a real toolkit would
// deliver, so it serves as the host for tests, scenario replays and
// embedding examples.
package hosttree

import (
	"fmt"
	"slices"

	"github.com/go-drift/toolsarea/pkg/geometry"
	"github.com/go-drift/toolsarea/pkg/toolsarea"
)

// Tree is a mutable node hierarchy. It is not safe for concurrent use.
type Tree struct {
	nodes    map[toolsarea.NodeID]*toolsarea.Node
	children map[toolsarea.NodeID][]toolsarea.NodeID
	next     toolsarea.NodeID
	sink     func(toolsarea.Event)

	// windows lists top-level nodes in creation order for focus cycling.
	windows []toolsarea.NodeID
	focused toolsarea.NodeID
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{
		nodes:    make(map[toolsarea.NodeID]*toolsarea.Node),
		children: make(map[toolsarea.NodeID][]toolsarea.NodeID),
	}
}

// SetSink sets the receiver of change events, typically Manager.Dispatch.
func (t *Tree) SetSink(fn func(toolsarea.Event)) {
	t.sink = fn
}

func (t *Tree) emit(typ toolsarea.EventType, id toolsarea.NodeID) {
	if t.sink == nil {
		return
	}
	ev := toolsarea.Event{Type: typ, Node: id}
	if n := t.nodes[id]; n != nil {
		ev.Active = n.Active
		ev.Enabled = n.Enabled
	}
	t.sink(ev)
}

// Node implements toolsarea.Tree.
func (t *Tree) Node(id toolsarea.NodeID) (toolsarea.Node, bool) {
	n := t.nodes[id]
	if n == nil {
		return toolsarea.Node{}, false
	}
	return *n, true
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Children returns the direct children of id in insertion order.
func (t *Tree) Children(id toolsarea.NodeID) []toolsarea.NodeID {
	return slices.Clone(t.children[id])
}

// AddWindow creates an active, enabled, visible top-level window.
func (t *Tree) AddWindow(frame geometry.Rect) toolsarea.NodeID {
	return t.insert(toolsarea.Node{
		Container: toolsarea.ContainerWindow,
		Geometry:  frame,
		Visible:   true,
		Active:    true,
		Enabled:   true,
	})
}

// AddDialog creates a modal dialog owned by parent.
func (t *Tree) AddDialog(parent toolsarea.NodeID, frame geometry.Rect) toolsarea.NodeID {
	id := t.insert(toolsarea.Node{
		Parent:    parent,
		Container: toolsarea.ContainerDialog,
		Geometry:  frame,
		Visible:   true,
		Active:    true,
		Enabled:   true,
	})
	t.emit(toolsarea.EventElementAdded, id)
	return id
}

// Add inserts n under parent and returns its new identity. n.ID and
// n.Parent are overwritten.
func (t *Tree) Add(parent toolsarea.NodeID, n toolsarea.Node) (toolsarea.NodeID, error) {
	if parent != toolsarea.NoNode && t.nodes[parent] == nil {
		return toolsarea.NoNode, fmt.Errorf("hosttree: unknown parent %d", parent)
	}
	n.Parent = parent
	id := t.insert(n)
	t.emit(toolsarea.EventElementAdded, id)
	return id, nil
}

// AddToolbar is shorthand for a visible, horizontal, top-docked toolbar node.
func (t *Tree) AddToolbar(parent toolsarea.NodeID, r geometry.Rect) (toolsarea.NodeID, error) {
	return t.Add(parent, toolsarea.Node{
		Geometry:    r,
		Visible:     true,
		Orientation: toolsarea.Horizontal,
		Dock:        toolsarea.DockTop,
	})
}

func (t *Tree) insert(n toolsarea.Node) toolsarea.NodeID {
	t.next++
	n.ID = t.next
	t.nodes[n.ID] = &n
	if n.Parent != toolsarea.NoNode {
		t.children[n.Parent] = append(t.children[n.Parent], n.ID)
	}
	if n.Container.IsTopLevel() {
		t.windows = append(t.windows, n.ID)
	}
	return n.ID
}

func (t *Tree) node(id toolsarea.NodeID) (*toolsarea.Node, error) {
	n := t.nodes[id]
	if n == nil {
		return nil, fmt.Errorf("hosttree: unknown node %d", id)
	}
	return n, nil
}

// SetGeometry moves or resizes id. Windows report a resize; other nodes
// report a move and a resize as their origin and size change.
func (t *Tree) SetGeometry(id toolsarea.NodeID, r geometry.Rect) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}
	old := n.Geometry
	n.Geometry = r
	if n.Container.IsTopLevel() {
		if !old.Equal(r) {
			t.emit(toolsarea.EventWindowResized, id)
		}
		return nil
	}
	if old.TopLeft() != r.TopLeft() {
		t.emit(toolsarea.EventElementMoved, id)
	}
	if old.Size() != r.Size() {
		t.emit(toolsarea.EventElementResized, id)
	}
	return nil
}

// SetVisible shows or hides id.
func (t *Tree) SetVisible(id toolsarea.NodeID, visible bool) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}
	if n.Visible == visible {
		return nil
	}
	n.Visible = visible
	if visible {
		t.emit(toolsarea.EventElementShown, id)
	} else {
		t.emit(toolsarea.EventElementHidden, id)
	}
	return nil
}

// SetOrientation changes a toolbar's orientation.
func (t *Tree) SetOrientation(id toolsarea.NodeID, o toolsarea.Orientation) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}
	if n.Orientation != o {
		n.Orientation = o
		t.emit(toolsarea.EventOrientationChanged, id)
	}
	return nil
}

// SetFloating detaches or re-docks id.
func (t *Tree) SetFloating(id toolsarea.NodeID, floating bool) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}
	if n.Floating != floating {
		n.Floating = floating
		t.emit(toolsarea.EventFloatingChanged, id)
	}
	return nil
}

// SetDock moves id to another dock edge.
func (t *Tree) SetDock(id toolsarea.NodeID, edge toolsarea.DockEdge) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}
	if n.Dock != edge {
		n.Dock = edge
		t.emit(toolsarea.EventDockChanged, id)
	}
	return nil
}

// SetActive changes a window's active state.
func (t *Tree) SetActive(id toolsarea.NodeID, active bool) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}
	if n.Active != active {
		n.Active = active
		t.emit(toolsarea.EventWindowActiveChanged, id)
	}
	return nil
}

// SetEnabled enables or disables a window.
func (t *Tree) SetEnabled(id toolsarea.NodeID, enabled bool) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}
	if n.Enabled != enabled {
		n.Enabled = enabled
		t.emit(toolsarea.EventWindowEnabledChanged, id)
	}
	return nil
}

// SetNoSeparator sets a window's no-separator flag. It is read on the next
// pass; no event is emitted.
func (t *Tree) SetNoSeparator(id toolsarea.NodeID, v bool) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}
	n.NoSeparator = v
	return nil
}

// TopLevel returns the top-level ancestor of id.
func (t *Tree) TopLevel(id toolsarea.NodeID) toolsarea.NodeID {
	top, ok := toolsarea.TopLevelOf(t, id)
	if !ok {
		return toolsarea.NoNode
	}
	return top.ID
}

// Reparent moves id under parent. A change of top-level ancestor is reported
// as such; otherwise the node is reported as added to its new parent.
func (t *Tree) Reparent(id, parent toolsarea.NodeID) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}
	if _, err := t.node(parent); err != nil {
		return err
	}
	for cur := parent; cur != toolsarea.NoNode; cur = t.nodes[cur].Parent {
		if cur == id {
			return fmt.Errorf("hosttree: reparenting %d under %d creates a cycle", id, parent)
		}
	}
	oldTop := t.TopLevel(id)
	t.detach(id)
	n.Parent = parent
	t.children[parent] = append(t.children[parent], id)
	if t.TopLevel(id) != oldTop {
		t.emit(toolsarea.EventTopLevelChanged, id)
	} else {
		t.emit(toolsarea.EventElementAdded, id)
	}
	return nil
}

func (t *Tree) detach(id toolsarea.NodeID) {
	n := t.nodes[id]
	if n == nil || n.Parent == toolsarea.NoNode {
		return
	}
	siblings := t.children[n.Parent]
	if i := slices.Index(siblings, id); i >= 0 {
		t.children[n.Parent] = slices.Delete(siblings, i, i+1)
	}
}

// Remove destroys id and its subtree, deepest nodes first. Each destroyed
// node is reported after it is gone from the tree.
func (t *Tree) Remove(id toolsarea.NodeID) error {
	if _, err := t.node(id); err != nil {
		return err
	}
	t.detach(id)
	t.destroy(id)
	return nil
}

func (t *Tree) destroy(id toolsarea.NodeID) {
	for _, c := range t.children[id] {
		t.destroy(c)
	}
	delete(t.children, id)
	n := t.nodes[id]
	delete(t.nodes, id)
	if n.Container.IsTopLevel() {
		if i := slices.Index(t.windows, id); i >= 0 {
			t.windows = slices.Delete(t.windows, i, i+1)
		}
		if t.focused == id {
			t.focused = toolsarea.NoNode
		}
		t.emit(toolsarea.EventWindowDestroyed, id)
		return
	}
	t.emit(toolsarea.EventElementDestroyed, id)
}
