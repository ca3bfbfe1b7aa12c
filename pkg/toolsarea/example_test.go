package toolsarea_test

import (
	"fmt"

	"github.com/go-drift/toolsarea/pkg/geometry"
	"github.com/go-drift/toolsarea/pkg/hosttree"
	"github.com/go-drift/toolsarea/pkg/toolsarea"
)

// This example wires a manager to an in-memory host tree and watches the
// area react to a toolbar being detached.
func ExampleManager() {
	tree := hosttree.New()
	m := toolsarea.New(tree, toolsarea.Options{})
	tree.SetSink(m.Dispatch)

	win := tree.AddWindow(geometry.RectFromLTWH(0, 0, 300, 200))
	bar, _ := tree.Add(win, toolsarea.Node{Geometry: geometry.RectFromLTWH(0, 0, 300, 20), Visible: true})
	m.RegisterElement(bar, toolsarea.KindCommandBar, win)
	tb, _ := tree.AddToolbar(win, geometry.RectFromLTWH(0, 20, 120, 24))
	m.RegisterElement(tb, toolsarea.KindToolbar, win)
	fmt.Println(m.Rect(win), m.HasContents(win))

	tree.SetFloating(tb, true)
	fmt.Println(m.Rect(win), m.IsInToolsArea(tb))

	// Output:
	// (0,0,300,44) true
	// (0,0,300,20) false
}

func ExampleMembershipOf() {
	tree := hosttree.New()
	win := tree.AddWindow(geometry.RectFromLTWH(0, 0, 300, 200))
	tb, _ := tree.AddToolbar(win, geometry.RectFromLTWH(0, 0, 300, 24))
	tree.SetOrientation(tb, toolsarea.Vertical)

	res := toolsarea.MembershipOf(tree, tb, toolsarea.KindToolbar, false)
	fmt.Println(res.Member, res.Reason)
	// Output: false vertical toolbar
}
