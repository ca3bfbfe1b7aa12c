package toolsarea

// Reason explains a membership decision.
type Reason int

const (
	ReasonMember Reason = iota
	ReasonUnknownNode
	ReasonHidden
	ReasonInsideMDI
	ReasonInsideLoosePanel
	ReasonModalDialog
	ReasonNoTopLevel
	ReasonNotDirectChild
	ReasonVertical
	ReasonFloating
	ReasonNotDockedTop
	ReasonGenericKind
)

var reasonNames = [...]string{
	ReasonMember:           "member",
	ReasonUnknownNode:      "unknown node",
	ReasonHidden:           "hidden",
	ReasonInsideMDI:        "inside MDI area",
	ReasonInsideLoosePanel: "inside floating or non-top panel",
	ReasonModalDialog:      "owned by modal dialog",
	ReasonNoTopLevel:       "no top-level window",
	ReasonNotDirectChild:   "command bar not owned by window",
	ReasonVertical:         "vertical toolbar",
	ReasonFloating:         "floating",
	ReasonNotDockedTop:     "not docked top",
	ReasonGenericKind:      "not a chrome kind",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Membership is the result of evaluating one element.
type Membership struct {
	Member bool
	Reason Reason
	// Window is the top-level that owns the element, or NoNode if the walk
	// did not reach one. It is set even when the element is excluded.
	Window NodeID
}

func excluded(r Reason, window NodeID) Membership {
	return Membership{Reason: r, Window: window}
}

// MembershipOf decides whether the element id of the given kind currently
// belongs to its window's tools area. grace treats a hidden element as
// visible, covering the moment between a show request and the host
// reporting it visible.
//
// The result depends on ancestor state that changes without the element
// changing, so callers must not cache it across passes.
func MembershipOf(tree Tree, id NodeID, kind ElementKind, grace bool) Membership {
	self, ok := tree.Node(id)
	if !ok {
		return excluded(ReasonUnknownNode, NoNode)
	}

	// Walk outward. Exclusions short-circuit regardless of what lies above.
	var top Node
	found := false
	if self.Container == ContainerMDIArea {
		return excluded(ReasonInsideMDI, NoNode)
	}
	for depth, cur := 0, self.Parent; cur != NoNode && depth < maxAncestorDepth; depth++ {
		anc, ok := tree.Node(cur)
		if !ok {
			return excluded(ReasonUnknownNode, NoNode)
		}
		switch anc.Container {
		case ContainerMDIArea:
			return excluded(ReasonInsideMDI, NoNode)
		case ContainerPanel:
			if anc.Floating || anc.Dock != DockTop {
				return excluded(ReasonInsideLoosePanel, NoNode)
			}
		case ContainerWindow, ContainerDialog:
			top, found = anc, true
		}
		if found {
			break
		}
		cur = anc.Parent
	}
	if !found {
		return excluded(ReasonNoTopLevel, NoNode)
	}
	if top.Container == ContainerDialog {
		return excluded(ReasonModalDialog, top.ID)
	}

	if !self.Visible && !grace {
		return excluded(ReasonHidden, top.ID)
	}

	switch kind {
	case KindCommandBar:
		if self.Parent != top.ID {
			return excluded(ReasonNotDirectChild, top.ID)
		}
	case KindToolbar:
		if self.Orientation != Horizontal {
			return excluded(ReasonVertical, top.ID)
		}
		if self.Floating {
			return excluded(ReasonFloating, top.ID)
		}
		if self.Dock != DockTop {
			return excluded(ReasonNotDockedTop, top.ID)
		}
	case KindDockedPanel:
		if self.Floating {
			return excluded(ReasonFloating, top.ID)
		}
		if self.Dock != DockTop {
			return excluded(ReasonNotDockedTop, top.ID)
		}
	default:
		return excluded(ReasonGenericKind, top.ID)
	}
	return Membership{Member: true, Reason: ReasonMember, Window: top.ID}
}
