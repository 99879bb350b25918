package scenario

import (
	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/layout"
)

// Snapshot is a plain copy of the docking state, detached from the live
// controllers so it can be printed or compared.
type Snapshot struct {
	MainWindows     []AreaSnapshot `yaml:"main_windows"`
	FloatingWindows []AreaSnapshot `yaml:"floating_windows,omitempty"`
}

// AreaSnapshot describes one drop area and its item tree.
type AreaSnapshot struct {
	Name string       `yaml:"name"`
	Rect geom.Rect    `yaml:"rect"`
	Root NodeSnapshot `yaml:"root"`
}

// NodeSnapshot is a layout item. Containers carry Orientation and
// Children, leaves carry the group's tabs.
type NodeSnapshot struct {
	Orientation string         `yaml:"orientation,omitempty"`
	Rect        geom.Rect      `yaml:"rect"`
	Hidden      bool           `yaml:"hidden,omitempty"`
	Tabs        []string       `yaml:"tabs,omitempty"`
	Current     int            `yaml:"current,omitempty"`
	Children    []NodeSnapshot `yaml:"children,omitempty"`
}

// IsContainer reports whether the node is a split.
func (n NodeSnapshot) IsContainer() bool { return n.Orientation != "" }

// Leaves returns the tab lists of all leaves, in layout order.
func (n NodeSnapshot) Leaves() [][]string {
	if !n.IsContainer() {
		return [][]string{n.Tabs}
	}
	var out [][]string
	for _, c := range n.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// Take snapshots every main and floating window of reg. Floating windows
// are listed topmost first.
func Take(reg *dock.Registry) Snapshot {
	var s Snapshot
	for _, mw := range reg.MainWindows() {
		s.MainWindows = append(s.MainWindows, AreaSnapshot{
			Name: mw.Name(),
			Rect: mw.Geometry(),
			Root: snapshotItem(mw.Layout().Root()),
		})
	}
	for _, fw := range reg.FloatingWindows() {
		s.FloatingWindows = append(s.FloatingWindows, AreaSnapshot{
			Name: fw.Title(),
			Rect: fw.Geometry(),
			Root: snapshotItem(fw.Layout().Root()),
		})
	}
	return s
}

func snapshotItem(it *layout.Item) NodeSnapshot {
	n := NodeSnapshot{Rect: it.Geometry(), Hidden: !it.IsVisible()}
	if it.IsContainer() {
		n.Orientation = orientationName(it.Orientation())
		for _, c := range it.Children() {
			n.Children = append(n.Children, snapshotItem(c))
		}
		return n
	}
	if g, ok := it.Guest().(*dock.Group); ok {
		for _, dw := range g.DockWidgets() {
			n.Tabs = append(n.Tabs, dw.Name())
		}
		n.Current = g.CurrentIndex()
	}
	return n
}

func orientationName(o geom.Orientation) string {
	if o == geom.Horizontal {
		return "row"
	}
	return "column"
}
