// Package scenario replays scripted host activity against a tools area
// manager. Scenarios are YAML files:
//
//	version: v1
//	windows:
//	  - name: main
//	    rect: [0, 0, 300, 200]
//	nodes:
//	  - name: menubar
//	    parent: main
//	    register: commandbar
//	    rect: [0, 0, 300, 20]
//	  - name: tools
//	    parent: main
//	    register: toolbar
//	    rect: [0, 20, 120, 24]
//	steps:
//	  - expect: {window: main, rect: [0, 0, 300, 44], contents: true}
//	  - do: floating
//	    node: tools
//	    value: true
//	  - expect: {window: main, rect: [0, 0, 300, 20]}
//
// Nodes default to visible, horizontal and docked top.
package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/toolsarea/pkg/config"
	"github.com/go-drift/toolsarea/pkg/geometry"
	"github.com/go-drift/toolsarea/pkg/toolsarea"
)

// Scenario is a parsed scenario file.
type Scenario struct {
	Version string   `yaml:"version,omitempty"`
	Windows []Window `yaml:"windows"`
	Nodes   []Node   `yaml:"nodes"`
	Steps   []Step   `yaml:"steps"`
}

// Window declares a top-level window.
type Window struct {
	Name        string    `yaml:"name"`
	Rect        []float64 `yaml:"rect"`
	Active      *bool     `yaml:"active,omitempty"`
	NoSeparator bool      `yaml:"no_separator,omitempty"`
}

// Node declares a descendant node. Register names the element kind to
// register it as; empty leaves it unregistered (a plain container).
type Node struct {
	Name        string    `yaml:"name"`
	Parent      string    `yaml:"parent"`
	Container   string    `yaml:"container,omitempty"`
	Register    string    `yaml:"register,omitempty"`
	Rect        []float64 `yaml:"rect,omitempty"`
	Visible     *bool     `yaml:"visible,omitempty"`
	Orientation string    `yaml:"orientation,omitempty"`
	Dock        string    `yaml:"dock,omitempty"`
	Floating    bool      `yaml:"floating,omitempty"`
}

// Step is one action. Exactly one of Do, Advance, Expect or Print is set.
type Step struct {
	Do      string       `yaml:"do,omitempty"`
	Node    string       `yaml:"node,omitempty"`
	Target  string       `yaml:"target,omitempty"`
	Rect    []float64    `yaml:"rect,omitempty"`
	Value   *bool        `yaml:"value,omitempty"`
	Kind    string       `yaml:"kind,omitempty"`
	Dock    string       `yaml:"dock,omitempty"`
	Orient  string       `yaml:"orientation,omitempty"`
	Advance string       `yaml:"advance,omitempty"`
	Expect  *Expectation `yaml:"expect,omitempty"`
	Print   string       `yaml:"print,omitempty"`
}

// Expectation checks the state of one window. Unset fields are not checked.
type Expectation struct {
	Window   string    `yaml:"window"`
	Rect     []float64 `yaml:"rect,omitempty"`
	Contents *bool     `yaml:"contents,omitempty"`
	Margin   *float64  `yaml:"margin,omitempty"`
	Members  []string  `yaml:"members,omitempty"`
	Phase    string    `yaml:"phase,omitempty"`
	Passes   *uint64   `yaml:"passes,omitempty"`
}

// Parse decodes and validates scenario data.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

func (s *Scenario) validate() error {
	if err := config.ValidateVersion(s.Version); err != nil {
		return err
	}
	if len(s.Windows) == 0 {
		return fmt.Errorf("scenario declares no windows")
	}
	names := make(map[string]bool)
	declare := func(name string) error {
		if name == "" {
			return fmt.Errorf("node without a name")
		}
		if names[name] {
			return fmt.Errorf("duplicate name %q", name)
		}
		names[name] = true
		return nil
	}
	for _, w := range s.Windows {
		if err := declare(w.Name); err != nil {
			return err
		}
		if _, err := rect(w.Rect); err != nil {
			return fmt.Errorf("window %s: %w", w.Name, err)
		}
	}
	for _, n := range s.Nodes {
		if err := declare(n.Name); err != nil {
			return err
		}
		if !names[n.Parent] {
			return fmt.Errorf("node %s: parent %q must be declared first", n.Name, n.Parent)
		}
		if _, err := containerKind(n.Container); err != nil {
			return fmt.Errorf("node %s: %w", n.Name, err)
		}
		if n.Register != "" {
			if _, err := toolsarea.ParseElementKind(n.Register); err != nil {
				return fmt.Errorf("node %s: %w", n.Name, err)
			}
		}
		if _, err := orientation(n.Orientation); err != nil {
			return fmt.Errorf("node %s: %w", n.Name, err)
		}
		if _, err := dockEdge(n.Dock, toolsarea.DockTop); err != nil {
			return fmt.Errorf("node %s: %w", n.Name, err)
		}
		if n.Rect != nil {
			if _, err := rect(n.Rect); err != nil {
				return fmt.Errorf("node %s: %w", n.Name, err)
			}
		}
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	set := 0
	for _, b := range []bool{st.Do != "", st.Advance != "", st.Expect != nil, st.Print != ""} {
		if b {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("exactly one of do, advance, expect or print is required")
	}
	if st.Do != "" {
		if _, ok := actions[st.Do]; !ok {
			return fmt.Errorf("unknown action %q", st.Do)
		}
	}
	return nil
}

func rect(v []float64) (geometry.Rect, error) {
	if len(v) != 4 {
		return geometry.Rect{}, fmt.Errorf("rect must be [left, top, width, height]")
	}
	return geometry.RectFromLTWH(v[0], v[1], v[2], v[3]), nil
}

func containerKind(s string) (toolsarea.ContainerKind, error) {
	switch strings.ToLower(s) {
	case "", "plain":
		return toolsarea.ContainerPlain, nil
	case "panel":
		return toolsarea.ContainerPanel, nil
	case "mdi":
		return toolsarea.ContainerMDIArea, nil
	case "dialog":
		return toolsarea.ContainerDialog, nil
	default:
		return 0, fmt.Errorf("unknown container %q", s)
	}
}

func orientation(s string) (toolsarea.Orientation, error) {
	switch strings.ToLower(s) {
	case "", "horizontal":
		return toolsarea.Horizontal, nil
	case "vertical":
		return toolsarea.Vertical, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q", s)
	}
}

func dockEdge(s string, def toolsarea.DockEdge) (toolsarea.DockEdge, error) {
	switch strings.ToLower(s) {
	case "":
		return def, nil
	case "none":
		return toolsarea.DockNone, nil
	case "top":
		return toolsarea.DockTop, nil
	case "bottom":
		return toolsarea.DockBottom, nil
	case "left":
		return toolsarea.DockLeft, nil
	case "right":
		return toolsarea.DockRight, nil
	default:
		return 0, fmt.Errorf("unknown dock edge %q", s)
	}
}
