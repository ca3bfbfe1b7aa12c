package scenario

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-drift/toolsarea/pkg/config"
	"github.com/go-drift/toolsarea/pkg/geometry"
	"github.com/go-drift/toolsarea/pkg/hosttree"
	drifttest "github.com/go-drift/toolsarea/pkg/testing"
	"github.com/go-drift/toolsarea/pkg/theme"
	"github.com/go-drift/toolsarea/pkg/toolsarea"
)

// Options configures a replay.
type Options struct {
	// Config nil means config.Default().
	Config     *config.Resolved
	Theme      theme.Provider
	Logger     *slog.Logger
	Registerer prometheus.Registerer
	// Out receives print steps and the final summary. Nil discards them.
	Out io.Writer
}

// Result summarizes a replay.
type Result struct {
	Steps    int
	Failures []string
	Updates  int
	Stats    toolsarea.Stats
}

// OK reports whether every expectation held.
func (r Result) OK() bool {
	return len(r.Failures) == 0
}

type runner struct {
	tree   *hosttree.Tree
	m      *toolsarea.Manager
	frames *drifttest.FrameDriver
	ids    map[string]toolsarea.NodeID
	names  map[toolsarea.NodeID]string
	kinds  map[string]toolsarea.ElementKind
	out    io.Writer
	result Result
}

type action func(r *runner, st Step) error

var actions map[string]action

func init() {
	actions = map[string]action{
		"register":    (*runner).register,
		"unregister":  (*runner).unregister,
		"rect":        (*runner).setRect,
		"show":        (*runner).show,
		"hide":        (*runner).hide,
		"floating":    (*runner).floating,
		"orientation": (*runner).orientation,
		"dock":        (*runner).dock,
		"reparent":    (*runner).reparent,
		"remove":      (*runner).remove,
		"active":      (*runner).active,
		"enabled":     (*runner).enabled,
		"focus":       (*runner).focus,
	}
}

// Run replays s on a fresh host tree with a fake clock. Expectation
// failures are collected in the result; an error means the scenario could
// not be executed.
func Run(s *Scenario, opts Options) (Result, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	clock := drifttest.NewFakeClock()
	tree := hosttree.New()
	m := toolsarea.New(tree, toolsarea.Options{
		Config:     opts.Config,
		Theme:      opts.Theme,
		Clock:      clock,
		Logger:     opts.Logger,
		Registerer: opts.Registerer,
	})
	defer m.Close()
	tree.SetSink(m.Dispatch)

	r := &runner{
		tree:   tree,
		m:      m,
		frames: drifttest.NewFrameDriver(clock, m),
		ids:    make(map[string]toolsarea.NodeID),
		names:  make(map[toolsarea.NodeID]string),
		kinds:  make(map[string]toolsarea.ElementKind),
		out:    out,
	}
	m.OnAreaUpdated(func(toolsarea.NodeID) { r.result.Updates++ })

	if err := r.build(s); err != nil {
		return r.result, err
	}
	for i, st := range s.Steps {
		if err := r.step(st); err != nil {
			return r.result, fmt.Errorf("step %d: %w", i+1, err)
		}
		r.result.Steps++
	}
	r.result.Stats = m.Stats()
	return r.result, nil
}

func (r *runner) build(s *Scenario) error {
	for _, w := range s.Windows {
		frame, _ := rect(w.Rect)
		id := r.tree.AddWindow(frame)
		if w.Active != nil {
			if err := r.tree.SetActive(id, *w.Active); err != nil {
				return err
			}
		}
		if err := r.tree.SetNoSeparator(id, w.NoSeparator); err != nil {
			return err
		}
		r.bind(w.Name, id)
	}
	for _, n := range s.Nodes {
		node := n.node()
		var id toolsarea.NodeID
		if node.Container == toolsarea.ContainerDialog {
			id = r.tree.AddDialog(r.ids[n.Parent], node.Geometry)
		} else {
			var err error
			if id, err = r.tree.Add(r.ids[n.Parent], node); err != nil {
				return err
			}
		}
		r.bind(n.Name, id)
		if n.Register != "" {
			kind, _ := toolsarea.ParseElementKind(n.Register)
			r.kinds[n.Name] = kind
			r.m.RegisterElement(id, kind, r.tree.TopLevel(id))
		}
	}
	return nil
}

// node converts a validated declaration.
func (n Node) node() toolsarea.Node {
	container, _ := containerKind(n.Container)
	o, _ := orientation(n.Orientation)
	d, _ := dockEdge(n.Dock, toolsarea.DockTop)
	var r geometry.Rect
	if n.Rect != nil {
		r, _ = rect(n.Rect)
	}
	visible := n.Visible == nil || *n.Visible
	return toolsarea.Node{
		Container:   container,
		Geometry:    r,
		Visible:     visible,
		Orientation: o,
		Dock:        d,
		Floating:    n.Floating,
	}
}

func (r *runner) bind(name string, id toolsarea.NodeID) {
	r.ids[name] = id
	r.names[id] = name
}

func (r *runner) lookup(name string) (toolsarea.NodeID, error) {
	id, ok := r.ids[name]
	if !ok {
		return toolsarea.NoNode, fmt.Errorf("unknown node %q", name)
	}
	return id, nil
}

func (r *runner) step(st Step) error {
	switch {
	case st.Do != "":
		return actions[st.Do](r, st)
	case st.Advance != "":
		d, err := time.ParseDuration(st.Advance)
		if err != nil {
			return fmt.Errorf("advance: %w", err)
		}
		r.frames.PumpFor(d)
		return nil
	case st.Expect != nil:
		return r.expect(*st.Expect)
	default:
		return r.print(st.Print)
	}
}

func (r *runner) boolValue(st Step) (bool, error) {
	if st.Value == nil {
		return false, fmt.Errorf("%s requires value", st.Do)
	}
	return *st.Value, nil
}

func (r *runner) register(st Step) error {
	id, err := r.lookup(st.Node)
	if err != nil {
		return err
	}
	kind, ok := r.kinds[st.Node]
	if st.Kind != "" {
		if kind, err = toolsarea.ParseElementKind(st.Kind); err != nil {
			return err
		}
	} else if !ok {
		return fmt.Errorf("register %s: kind is required", st.Node)
	}
	r.kinds[st.Node] = kind
	r.m.RegisterElement(id, kind, r.tree.TopLevel(id))
	return nil
}

func (r *runner) unregister(st Step) error {
	id, err := r.lookup(st.Node)
	if err != nil {
		return err
	}
	r.m.UnregisterElement(id)
	return nil
}

func (r *runner) setRect(st Step) error {
	id, err := r.lookup(st.Node)
	if err != nil {
		return err
	}
	rc, err := rect(st.Rect)
	if err != nil {
		return err
	}
	return r.tree.SetGeometry(id, rc)
}

func (r *runner) show(st Step) error {
	id, err := r.lookup(st.Node)
	if err != nil {
		return err
	}
	return r.tree.SetVisible(id, true)
}

func (r *runner) hide(st Step) error {
	id, err := r.lookup(st.Node)
	if err != nil {
		return err
	}
	return r.tree.SetVisible(id, false)
}

func (r *runner) floating(st Step) error {
	id, err := r.lookup(st.Node)
	if err != nil {
		return err
	}
	v, err := r.boolValue(st)
	if err != nil {
		return err
	}
	return r.tree.SetFloating(id, v)
}

func (r *runner) orientation(st Step) error {
	id, err := r.lookup(st.Node)
	if err != nil {
		return err
	}
	o, err := orientation(st.Orient)
	if err != nil {
		return err
	}
	return r.tree.SetOrientation(id, o)
}

func (r *runner) dock(st Step) error {
	id, err := r.lookup(st.Node)
	if err != nil {
		return err
	}
	d, err := dockEdge(st.Dock, toolsarea.DockNone)
	if err != nil {
		return err
	}
	return r.tree.SetDock(id, d)
}

func (r *runner) reparent(st Step) error {
	id, err := r.lookup(st.Node)
	if err != nil {
		return err
	}
	target, err := r.lookup(st.Target)
	if err != nil {
		return err
	}
	return r.tree.Reparent(id, target)
}

func (r *runner) remove(st Step) error {
	id, err := r.lookup(st.Node)
	if err != nil {
		return err
	}
	return r.tree.Remove(id)
}

func (r *runner) active(st Step) error {
	id, err := r.lookup(st.Node)
	if err != nil {
		return err
	}
	v, err := r.boolValue(st)
	if err != nil {
		return err
	}
	return r.tree.SetActive(id, v)
}

func (r *runner) enabled(st Step) error {
	id, err := r.lookup(st.Node)
	if err != nil {
		return err
	}
	v, err := r.boolValue(st)
	if err != nil {
		return err
	}
	return r.tree.SetEnabled(id, v)
}

func (r *runner) focus(st Step) error {
	id, err := r.lookup(st.Node)
	if err != nil {
		return err
	}
	return r.tree.Focus(id)
}

func (r *runner) expect(e Expectation) error {
	id, err := r.lookup(e.Window)
	if err != nil {
		return err
	}
	fail := func(format string, args ...any) {
		r.result.Failures = append(r.result.Failures,
			fmt.Sprintf("step %d: %s: ", r.result.Steps+1, e.Window)+fmt.Sprintf(format, args...))
	}

	area, _ := r.m.Area(id)
	info, tracked := r.m.Window(id)
	if e.Rect != nil {
		want, err := rect(e.Rect)
		if err != nil {
			return err
		}
		if !area.Rect.Equal(want) {
			fail("rect = %s, want %s", area.Rect, want)
		}
	}
	if e.Contents != nil && r.m.HasContents(id) != *e.Contents {
		fail("contents = %v, want %v", r.m.HasContents(id), *e.Contents)
	}
	if e.Margin != nil && r.m.Margin(id) != *e.Margin {
		fail("margin = %v, want %v", r.m.Margin(id), *e.Margin)
	}
	if e.Members != nil {
		got := r.nameList(info.Members)
		want := slices.Clone(e.Members)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			fail("members = %v, want %v", got, want)
		}
	}
	if e.Phase != "" {
		if !tracked {
			fail("window not tracked, want phase %s", e.Phase)
		} else if info.Phase.String() != e.Phase {
			fail("phase = %s, want %s", info.Phase, e.Phase)
		}
	}
	if e.Passes != nil && info.Passes != *e.Passes {
		fail("passes = %d, want %d", info.Passes, *e.Passes)
	}
	return nil
}

func (r *runner) nameList(ids []toolsarea.NodeID) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, r.names[id])
	}
	slices.Sort(names)
	return names
}

func (r *runner) print(name string) error {
	id, err := r.lookup(name)
	if err != nil {
		return err
	}
	info, ok := r.m.Window(id)
	if !ok {
		_, err := fmt.Fprintf(r.out, "%s: not tracked\n", name)
		return err
	}
	_, err = fmt.Fprintf(r.out, "%s: rect=%s contents=%v margin=%g members=[%s] phase=%s fg=%s bg=%s\n",
		name, info.Area.Rect, info.Area.HasContents, info.Area.Margin,
		strings.Join(r.nameList(info.Members), " "), info.Phase,
		r.m.Foreground(id).Hex(), r.m.Background(id).Hex())
	return err
}
