package hosttree

import (
	"fmt"

	"github.com/go-drift/toolsarea/pkg/toolsarea"
)

// Focus makes id the only active top-level window, the way a window manager
// moves activation. Windows losing activation are reported first.
func (t *Tree) Focus(id toolsarea.NodeID) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}
	if !n.Container.IsTopLevel() {
		return fmt.Errorf("hosttree: node %d is not a top-level window", id)
	}
	if !t.canFocus(n) {
		return fmt.Errorf("hosttree: window %d cannot take focus", id)
	}
	for _, w := range t.windows {
		if w != id {
			if err := t.SetActive(w, false); err != nil {
				return err
			}
		}
	}
	t.focused = id
	return t.SetActive(id, true)
}

// ClearFocus deactivates every window, as when the application loses focus.
func (t *Tree) ClearFocus() {
	for _, w := range t.windows {
		_ = t.SetActive(w, false)
	}
	t.focused = toolsarea.NoNode
}

// Focused returns the window last given focus, or NoNode.
func (t *Tree) Focused() toolsarea.NodeID {
	return t.focused
}

// MoveFocus moves focus by delta positions through the top-level windows in
// creation order, skipping windows that cannot take focus. It reports
// whether focus moved.
func (t *Tree) MoveFocus(delta int) bool {
	count := len(t.windows)
	if count == 0 {
		return false
	}
	current := -1
	for i, w := range t.windows {
		if w == t.focused {
			current = i
			break
		}
	}
	for step := 1; step <= count; step++ {
		candidate := t.windows[wrapIndex(current+delta*step, count)]
		if candidate == t.focused {
			continue
		}
		if t.canFocus(t.nodes[candidate]) {
			return t.Focus(candidate) == nil
		}
	}
	return false
}

func (t *Tree) canFocus(n *toolsarea.Node) bool {
	return n != nil && n.Enabled && n.Visible
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
