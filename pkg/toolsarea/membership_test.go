package toolsarea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/toolsarea/pkg/errors"
)

// mapTree is a fixed hierarchy for evaluator tests.
type mapTree map[NodeID]Node

func (m mapTree) Node(id NodeID) (Node, bool) {
	n, ok := m[id]
	return n, ok
}

func (m mapTree) add(n Node) mapTree {
	m[n.ID] = n
	return m
}

const (
	winID NodeID = iota + 1
	dialogID
	mdiID
	panelID
	elemID
)

func baseTree() mapTree {
	return mapTree{
		winID: {ID: winID, Container: ContainerWindow, Visible: true, Active: true, Enabled: true},
	}
}

func TestMembershipOf(t *testing.T) {
	toolbar := Node{ID: elemID, Parent: winID, Visible: true, Orientation: Horizontal, Dock: DockTop}

	tests := []struct {
		name   string
		tree   mapTree
		kind   ElementKind
		grace  bool
		member bool
		reason Reason
	}{
		{
			name:   "command bar owned by window",
			tree:   baseTree().add(Node{ID: elemID, Parent: winID, Visible: true}),
			kind:   KindCommandBar,
			member: true,
			reason: ReasonMember,
		},
		{
			name: "command bar nested in a container",
			tree: baseTree().
				add(Node{ID: panelID, Parent: winID, Container: ContainerPlain, Visible: true}).
				add(Node{ID: elemID, Parent: panelID, Visible: true}),
			kind:   KindCommandBar,
			reason: ReasonNotDirectChild,
		},
		{
			name:   "horizontal top-docked toolbar",
			tree:   baseTree().add(toolbar),
			kind:   KindToolbar,
			member: true,
			reason: ReasonMember,
		},
		{
			name: "vertical toolbar",
			tree: baseTree().add(func() Node {
				n := toolbar
				n.Orientation = Vertical
				return n
			}()),
			kind:   KindToolbar,
			reason: ReasonVertical,
		},
		{
			name: "floating toolbar",
			tree: baseTree().add(func() Node {
				n := toolbar
				n.Floating = true
				return n
			}()),
			kind:   KindToolbar,
			reason: ReasonFloating,
		},
		{
			name: "toolbar docked left",
			tree: baseTree().add(func() Node {
				n := toolbar
				n.Dock = DockLeft
				return n
			}()),
			kind:   KindToolbar,
			reason: ReasonNotDockedTop,
		},
		{
			name: "hidden toolbar",
			tree: baseTree().add(func() Node {
				n := toolbar
				n.Visible = false
				return n
			}()),
			kind:   KindToolbar,
			reason: ReasonHidden,
		},
		{
			name: "hidden toolbar during show grace",
			tree: baseTree().add(func() Node {
				n := toolbar
				n.Visible = false
				return n
			}()),
			kind:   KindToolbar,
			grace:  true,
			member: true,
			reason: ReasonMember,
		},
		{
			name: "toolbar inside modal dialog",
			tree: baseTree().
				add(Node{ID: dialogID, Parent: winID, Container: ContainerDialog, Visible: true}).
				add(func() Node {
					n := toolbar
					n.Parent = dialogID
					return n
				}()),
			kind:   KindToolbar,
			reason: ReasonModalDialog,
		},
		{
			name: "toolbar inside MDI area",
			tree: baseTree().
				add(Node{ID: mdiID, Parent: winID, Container: ContainerMDIArea, Visible: true}).
				add(func() Node {
					n := toolbar
					n.Parent = mdiID
					return n
				}()),
			kind:   KindToolbar,
			reason: ReasonInsideMDI,
		},
		{
			name: "MDI area itself",
			tree: baseTree().
				add(Node{ID: elemID, Parent: winID, Container: ContainerMDIArea, Visible: true, Dock: DockTop}),
			kind:   KindDockedPanel,
			reason: ReasonInsideMDI,
		},
		{
			name: "toolbar inside floating panel",
			tree: baseTree().
				add(Node{ID: panelID, Parent: winID, Container: ContainerPanel, Visible: true, Floating: true, Dock: DockTop}).
				add(func() Node {
					n := toolbar
					n.Parent = panelID
					return n
				}()),
			kind:   KindToolbar,
			reason: ReasonInsideLoosePanel,
		},
		{
			name: "toolbar inside top-docked panel",
			tree: baseTree().
				add(Node{ID: panelID, Parent: winID, Container: ContainerPanel, Visible: true, Dock: DockTop}).
				add(func() Node {
					n := toolbar
					n.Parent = panelID
					return n
				}()),
			kind:   KindToolbar,
			member: true,
			reason: ReasonMember,
		},
		{
			name: "docked panel at bottom",
			tree: baseTree().
				add(Node{ID: elemID, Parent: winID, Container: ContainerPanel, Visible: true, Dock: DockBottom}),
			kind:   KindDockedPanel,
			reason: ReasonNotDockedTop,
		},
		{
			name: "docked panel at top",
			tree: baseTree().
				add(Node{ID: elemID, Parent: winID, Container: ContainerPanel, Visible: true, Dock: DockTop}),
			kind:   KindDockedPanel,
			member: true,
			reason: ReasonMember,
		},
		{
			name:   "generic kind",
			tree:   baseTree().add(toolbar),
			kind:   KindGeneric,
			reason: ReasonGenericKind,
		},
		{
			name:   "orphan",
			tree:   mapTree{}.add(Node{ID: elemID, Visible: true}),
			kind:   KindCommandBar,
			reason: ReasonNoTopLevel,
		},
		{
			name:   "unknown node",
			tree:   baseTree(),
			kind:   KindToolbar,
			reason: ReasonUnknownNode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MembershipOf(tt.tree, elemID, tt.kind, tt.grace)
			assert.Equal(t, tt.member, got.Member)
			assert.Equal(t, tt.reason, got.Reason, "reason %s", got.Reason)
		})
	}
}

func TestMembershipReportsWindowWhenExcluded(t *testing.T) {
	tree := baseTree().add(Node{ID: elemID, Parent: winID, Visible: false})
	got := MembershipOf(tree, elemID, KindCommandBar, false)
	assert.False(t, got.Member)
	assert.Equal(t, winID, got.Window)
}

func TestTopLevelOfCycle(t *testing.T) {
	tree := mapTree{
		1: {ID: 1, Parent: 2},
		2: {ID: 2, Parent: 1},
	}
	h := &captureHandler{}
	errors.SetHandler(h)
	defer errors.SetHandler(nil)

	_, ok := TopLevelOf(tree, 1)
	assert.False(t, ok)
	require.Len(t, h.errs, 1)
	assert.Equal(t, errors.KindHost, h.errs[0].Kind)
	assert.Equal(t, "toolsarea.TopLevelOf", h.errs[0].Op)
}

type captureHandler struct {
	errs   []*errors.ToolsAreaError
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.ToolsAreaError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *errors.PanicError)     { h.panics = append(h.panics, err) }

func TestReasonString(t *testing.T) {
	assert.Equal(t, "vertical toolbar", ReasonVertical.String())
	assert.Equal(t, "unknown", Reason(99).String())
}
