// Package headless is an in-memory frontend. Views are plain structs with
// global geometry; nothing is drawn. It backs the tests and the scenario
// simulator.
package headless

import (
	"slices"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/ui/view"
)

// Node is a bare native view.
type Node struct {
	self     view.Native
	name     string
	kind     view.Type
	parent   view.Native
	children []view.Native
	geometry geom.Rect
	visible  bool
	focused  bool
	closed   bool
	props    map[string]geom.Size
	window   *Window
	frontend *Frontend

	grabbed  bool
	grabs    int
	releases int
}

func newNode(name string) *Node {
	n := &Node{name: name, visible: true, props: make(map[string]geom.Size)}
	n.self = n
	return n
}

// NewNode creates a detached bare view.
func NewNode(name string) *Node { return newNode(name) }

// Name returns the debug name.
func (n *Node) Name() string { return n.name }

// Kind returns the view kind of a bare node, or view.TypeNone.
func (n *Node) Kind() view.Type { return n.kind }

func (n *Node) Geometry() geom.Rect     { return n.geometry }
func (n *Node) SetGeometry(r geom.Rect) { n.geometry = r }
func (n *Node) IsVisible() bool         { return n.visible && !n.closed }
func (n *Node) SetVisible(v bool)       { n.visible = v }
func (n *Node) HasFocus() bool          { return n.focused }
func (n *Node) Parent() view.Native     { return n.parent }
func (n *Node) Close()                  { n.closed = true }
func (n *Node) IsClosed() bool          { return n.closed }

// SetProperty sets a size property such as view.PropertyMinSize.
func (n *Node) SetProperty(name string, s geom.Size) { n.props[name] = s }

// SetFocus moves focus to n, clearing it on every other node of the same
// frontend.
func (n *Node) SetFocus() {
	if n.frontend != nil {
		for _, other := range n.frontend.nodes {
			asNode(other).focused = false
		}
	}
	n.focused = true
}

// Children returns a copy of the child list.
func (n *Node) Children() []view.Native { return slices.Clone(n.children) }

// SetParent moves n under p; nil detaches it.
func (n *Node) SetParent(p view.Native) {
	if old := asNode(n.parent); old != nil {
		old.children = slices.DeleteFunc(old.children, func(c view.Native) bool { return c == n.self })
	}
	n.parent = p
	if np := asNode(p); np != nil {
		np.children = append(np.children, n.self)
	}
}

// Property returns a size tag set with SetProperty.
func (n *Node) Property(name string) (geom.Size, bool) {
	s, ok := n.props[name]
	return s, ok
}

// GrabMouse records a pointer grab.
func (n *Node) GrabMouse() {
	n.grabbed = true
	n.grabs++
}

// ReleaseMouse records the end of a pointer grab.
func (n *Node) ReleaseMouse() {
	n.grabbed = false
	n.releases++
}

// GrabCounts returns how many grabs and releases n received.
func (n *Node) GrabCounts() (grabs, releases int) { return n.grabs, n.releases }

// IsGrabbing reports whether a grab is active.
func (n *Node) IsGrabbing() bool { return n.grabbed }

// ControllerNode is a native created for a controller.
type ControllerNode struct {
	*Node
	controller view.Controller
}

var (
	_ view.Marked = (*Node)(nil)
	_ view.Bound  = (*ControllerNode)(nil)
)

// NewControllerNode creates a detached view bound to c.
func NewControllerNode(c view.Controller, name string) *ControllerNode {
	cn := &ControllerNode{Node: newNode(name), controller: c}
	cn.self = cn
	return cn
}

// Controller returns the bound controller.
func (c *ControllerNode) Controller() view.Controller { return c.controller }

type sized interface {
	MinSize() geom.Size
	MaxSize() geom.Size
}

// MinSize delegates to the controller when it has size constraints.
func (c *ControllerNode) MinSize() geom.Size {
	if s, ok := c.controller.(sized); ok {
		return s.MinSize()
	}
	return geom.HardcodedMinimumSize
}

// MaxSize delegates to the controller when it has size constraints.
func (c *ControllerNode) MaxSize() geom.Size {
	if s, ok := c.controller.(sized); ok {
		return s.MaxSize()
	}
	return geom.HardcodedMaximumSize
}

func asNode(v view.Native) *Node {
	switch n := v.(type) {
	case *Node:
		return n
	case *ControllerNode:
		return n.Node
	}
	return nil
}
