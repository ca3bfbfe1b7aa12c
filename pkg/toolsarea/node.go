package toolsarea

import (
	"fmt"

	"github.com/go-drift/toolsarea/pkg/errors"
	"github.com/go-drift/toolsarea/pkg/geometry"
)

// NodeID is the host's identity for an element or window. Zero means none.
type NodeID uint64

// NoNode is the zero NodeID.
const NoNode NodeID = 0

// ElementKind classifies a registered element. It is assigned at
// registration and refreshed only by re-registration.
type ElementKind int

const (
	KindGeneric ElementKind = iota
	KindCommandBar
	KindToolbar
	KindDockedPanel
)

func (k ElementKind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindCommandBar:
		return "commandbar"
	case KindToolbar:
		return "toolbar"
	case KindDockedPanel:
		return "dockedpanel"
	default:
		return fmt.Sprintf("ElementKind(%d)", int(k))
	}
}

// ParseElementKind is the inverse of ElementKind.String.
func ParseElementKind(s string) (ElementKind, error) {
	for k := KindGeneric; k <= KindDockedPanel; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return KindGeneric, fmt.Errorf("unknown element kind %q", s)
}

// ContainerKind describes the role a node plays for its descendants.
type ContainerKind int

const (
	// ContainerPlain is an ordinary node.
	ContainerPlain ContainerKind = iota
	// ContainerWindow is a top-level window that owns a tools area.
	ContainerWindow
	// ContainerDialog is a modal top-level dialog. It never owns a tools area.
	ContainerDialog
	// ContainerMDIArea hosts sub-windows; nothing inside it is chrome of the
	// outer window.
	ContainerMDIArea
	// ContainerPanel is an auxiliary panel container (dock widget). Its
	// descendants count only while it is docked to the top edge.
	ContainerPanel
)

// IsTopLevel reports whether the container ends an ancestor walk.
func (c ContainerKind) IsTopLevel() bool {
	return c == ContainerWindow || c == ContainerDialog
}

// Orientation of a toolbar.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// DockEdge is the window edge an element or panel is docked to.
type DockEdge int

const (
	DockNone DockEdge = iota
	DockTop
	DockBottom
	DockLeft
	DockRight
)

func (d DockEdge) String() string {
	switch d {
	case DockTop:
		return "top"
	case DockBottom:
		return "bottom"
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	default:
		return "none"
	}
}

// Node is the host's answer about one node of its tree at the time of the
// call. It is a value; the manager never keeps it past a pass.
type Node struct {
	ID        NodeID
	Parent    NodeID
	Container ContainerKind

	// Geometry is in the coordinates of the owning top-level window. For a
	// top-level window it is the window's own frame, normally with a zero
	// origin.
	Geometry geometry.Rect
	Visible  bool

	Orientation Orientation
	Floating    bool
	Dock        DockEdge

	// Window state, meaningful for top-level nodes only.
	Active      bool
	Enabled     bool
	NoSeparator bool
}

// Tree is the host's view of its widget hierarchy. Node returns false once a
// node has been destroyed.
type Tree interface {
	Node(id NodeID) (Node, bool)
}

// maxAncestorDepth bounds ancestor walks so a malformed host tree with a
// parent cycle cannot hang the UI thread.
const maxAncestorDepth = 512

// TopLevelOf walks outward from id and returns the nearest top-level
// ancestor (or id itself when it is top-level). A chain deeper than
// maxAncestorDepth is reported as a host error.
func TopLevelOf(tree Tree, id NodeID) (Node, bool) {
	start := id
	for depth := 0; id != NoNode; depth++ {
		if depth == maxAncestorDepth {
			errors.Report(&errors.ToolsAreaError{
				Op:   "toolsarea.TopLevelOf",
				Kind: errors.KindHost,
				Err:  fmt.Errorf("ancestors of node %d exceed %d levels", start, maxAncestorDepth),
			})
			break
		}
		n, ok := tree.Node(id)
		if !ok {
			return Node{}, false
		}
		if n.Container.IsTopLevel() {
			return n, true
		}
		id = n.Parent
	}
	return Node{}, false
}
