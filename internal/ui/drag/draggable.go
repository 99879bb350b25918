// Package drag implements the drag and drop state machine moving groups,
// dock widgets and floating windows between drop areas.
package drag

import (
	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/ui/dock"
)

// Grabber captures the pointer for the duration of a drag.
type Grabber interface {
	GrabMouse()
	ReleaseMouse()
}

// Draggable is a view a drag can start from.
type Draggable interface {
	// DragRect is where a press may start a drag.
	DragRect() geom.Rect
	// IsWindow reports whether dragging moves an existing floating window
	// as a whole.
	IsWindow() bool
	FloatingWindow() *dock.FloatingWindow
	Group() *dock.Group
	// DockWidget is the single tab being dragged, or nil when the whole
	// group moves.
	DockWidget() *dock.DockWidget
	Grabber() Grabber
}

// FromTitleBar makes a group or floating window title bar draggable.
func FromTitleBar(tb *dock.TitleBar) Draggable {
	return titleBarSource{tb: tb}
}

// FromTab makes the tab at index draggable.
func FromTab(tb *dock.TabBar, index int) Draggable {
	return tabSource{bar: tb, index: index}
}

type titleBarSource struct {
	tb *dock.TitleBar
}

func (s titleBarSource) DragRect() geom.Rect {
	if g := s.tb.Group(); g != nil {
		return g.DragRect()
	}
	return s.tb.FloatingWindow().DragRect()
}

func (s titleBarSource) IsWindow() bool {
	if s.tb.FloatingWindow() != nil {
		return true
	}
	return s.tb.Group().IsSoleGroupOfFloatingWindow()
}

func (s titleBarSource) FloatingWindow() *dock.FloatingWindow {
	if fw := s.tb.FloatingWindow(); fw != nil {
		return fw
	}
	return s.tb.Group().FloatingWindow()
}

func (s titleBarSource) Group() *dock.Group           { return s.tb.Group() }
func (s titleBarSource) DockWidget() *dock.DockWidget { return nil }

func (s titleBarSource) Grabber() Grabber {
	if n := s.tb.Native(); n != nil {
		return n
	}
	return nil
}

type tabSource struct {
	bar   *dock.TabBar
	index int
}

func (s tabSource) DragRect() geom.Rect {
	rects := s.bar.TabRects()
	if s.index < 0 || s.index >= len(rects) {
		return geom.Rect{}
	}
	return rects[s.index]
}

func (s tabSource) IsWindow() bool {
	g := s.bar.Group()
	return g.Count() == 1 && g.IsSoleGroupOfFloatingWindow()
}

func (s tabSource) FloatingWindow() *dock.FloatingWindow { return s.bar.Group().FloatingWindow() }
func (s tabSource) Group() *dock.Group                   { return s.bar.Group() }

func (s tabSource) DockWidget() *dock.DockWidget {
	dws := s.bar.Group().DockWidgets()
	if len(dws) < 2 || s.index < 0 || s.index >= len(dws) {
		return nil
	}
	return dws[s.index]
}

func (s tabSource) Grabber() Grabber {
	if n := s.bar.Native(); n != nil {
		return n
	}
	return nil
}
