package drag

import (
	"github.com/bnema/dockyard/internal/domain/affinity"
	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/domain/weakref"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/indicators"
	"github.com/bnema/dockyard/internal/ui/layout"
)

// WindowBeingDragged is the payload of an active drag.
type WindowBeingDragged interface {
	indicators.Payload

	// FloatingWindow returns the window moving with the pointer, if one
	// exists and is still open.
	FloatingWindow() (*dock.FloatingWindow, bool)
	Size() geom.Size
	DockWidgets() []*dock.DockWidget
	Draggable() Draggable
	// IsValid reports whether the dragged content still exists.
	IsValid() bool
}

// eagerWindow drags a floating window that exists for the whole drag.
type eagerWindow struct {
	ref       weakref.Ref[*dock.FloatingWindow]
	draggable Draggable
	size      geom.Size
	minSize   geom.Size
	maxSize   geom.Size
}

func newEagerWindow(fw *dock.FloatingWindow, d Draggable) *eagerWindow {
	return &eagerWindow{
		ref:       fw.Ref(),
		draggable: d,
		size:      fw.Geometry().Size(),
		minSize:   fw.MinSize(),
		maxSize:   fw.MaxSize(),
	}
}

func (w *eagerWindow) FloatingWindow() (*dock.FloatingWindow, bool) { return w.ref.Get() }

func (w *eagerWindow) IsValid() bool        { return w.ref.Valid() }
func (w *eagerWindow) Draggable() Draggable { return w.draggable }
func (w *eagerWindow) Size() geom.Size      { return w.size }
func (w *eagerWindow) MinSize() geom.Size   { return w.minSize }
func (w *eagerWindow) MaxSize() geom.Size   { return w.maxSize }
func (w *eagerWindow) Group() *dock.Group   { return nil }

func (w *eagerWindow) Contains(l *layout.Layout) bool {
	if l == nil {
		return false
	}
	fw, ok := w.ref.Get()
	return !ok || fw.Layout() != l
}

func (w *eagerWindow) Affinities() []string {
	if fw, ok := w.ref.Get(); ok {
		return fw.Affinities()
	}
	return nil
}

func (w *eagerWindow) DockWidgets() []*dock.DockWidget {
	if fw, ok := w.ref.Get(); ok {
		return fw.DockWidgets()
	}
	return nil
}

// deferredWindow drags a group or a single dock widget. No floating window
// exists until the drag is released over nothing.
type deferredWindow struct {
	draggable  Draggable
	group      *dock.Group
	dockWidget *dock.DockWidget
	opts       dock.Options
}

func newDeferredWindow(d Draggable, opts dock.Options) *deferredWindow {
	return &deferredWindow{draggable: d, group: d.Group(), dockWidget: d.DockWidget(), opts: opts}
}

func (w *deferredWindow) FloatingWindow() (*dock.FloatingWindow, bool) { return nil, false }

func (w *deferredWindow) Draggable() Draggable { return w.draggable }

func (w *deferredWindow) IsValid() bool {
	if w.dockWidget != nil {
		return w.dockWidget.IsOpen()
	}
	return w.group != nil && !w.group.IsEmpty()
}

// Group returns the dragged group when it moves as a whole.
func (w *deferredWindow) Group() *dock.Group {
	if w.dockWidget == nil {
		return w.group
	}
	if g := w.dockWidget.Group(); g != nil && g.Count() == 1 {
		return g
	}
	return nil
}

// Contains is false for a floating layout the dragged content fills
// alone: that layout moves along and cannot be a target.
func (w *deferredWindow) Contains(l *layout.Layout) bool {
	if l == nil {
		return false
	}
	g := w.Group()
	if g == nil || !g.IsSoleGroupOfFloatingWindow() {
		return true
	}
	return g.FloatingWindow().Layout() != l
}

func (w *deferredWindow) Affinities() []string {
	if w.dockWidget != nil {
		return w.dockWidget.Affinities()
	}
	return affinity.Normalize(w.group.Affinities())
}

func (w *deferredWindow) DockWidgets() []*dock.DockWidget {
	if w.dockWidget != nil {
		return []*dock.DockWidget{w.dockWidget}
	}
	return w.group.DockWidgets()
}

func (w *deferredWindow) Size() geom.Size {
	if g := w.Group(); g != nil {
		return g.Geometry().Size()
	}
	if g := w.dockWidget.Group(); g != nil {
		return g.Geometry().Size()
	}
	return w.MinSize()
}

func (w *deferredWindow) MinSize() geom.Size {
	if w.dockWidget == nil {
		return w.group.MinSize()
	}
	s := w.dockWidget.MinSize().ExpandedTo(w.opts.MinimumItemSize)
	s.Height += w.opts.TitleBarHeight
	return s
}

func (w *deferredWindow) MaxSize() geom.Size {
	if w.dockWidget == nil {
		return w.group.MaxSize()
	}
	s := w.dockWidget.MaxSize()
	s.Height = geom.SaturatingAdd(s.Height, w.opts.TitleBarHeight, geom.HardcodedMaximumSize.Height)
	return s.ExpandedTo(w.MinSize())
}
