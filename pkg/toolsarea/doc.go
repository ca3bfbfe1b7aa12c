// Package toolsarea tracks which chrome elements of each top-level window
// form the merged tools area at the top of that window.
//
// A [Manager] owns, per window, the set of registered elements (command bars,
// toolbars, docked panels), classifies each one with [MembershipOf], unions
// the geometry of the members into the area rectangle and runs a color
// animation that follows the window's active state.
//
// The manager never holds pointers into the host's widget tree. Elements and
// windows are referred to by [NodeID]; the host answers questions about a
// node through the [Tree] interface and reports changes through
// [Manager.Dispatch]. Destruction must be reported before an identity is
// reused.
//
// # Threading
//
// Everything runs on the host UI thread. The host calls [Manager.Tick] once
// per frame to fire debounce timers and advance animations. [Manager.Post] is
// the only method safe to call from other goroutines.
//
// # Typical wiring
//
//	m := toolsarea.New(hostTree, toolsarea.Options{Config: &cfg, Theme: palette})
//	m.OnAreaUpdated(func(w toolsarea.NodeID) { host.Repaint(w) })
//	m.RegisterElement(menuBar, toolsarea.KindCommandBar, mainWindow)
//	host.OnEvent(m.Dispatch)
//	host.OnFrame(m.Tick)
package toolsarea
