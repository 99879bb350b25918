package dock

import (
	"slices"

	"github.com/bnema/dockyard/internal/domain/affinity"
	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/domain/weakref"
	"github.com/bnema/dockyard/internal/ui/layout"
	"github.com/bnema/dockyard/internal/ui/view"
)

// FloatingWindow is a top-level window with a caption and a drop area.
// It lives in the registry arena; holders keep a Ref, which becomes
// invalid once the window closes.
type FloatingWindow struct {
	registry *Registry
	ref      weakref.Ref[*FloatingWindow]
	area     *DropArea
	titleBar *TitleBar
	geometry geom.Rect
	native   view.Native
	closed   bool
}

func (f *FloatingWindow) Type() view.Type                   { return view.TypeFloatingWindow }
func (f *FloatingWindow) Ref() weakref.Ref[*FloatingWindow] { return f.ref }
func (f *FloatingWindow) DropArea() *DropArea               { return f.area }
func (f *FloatingWindow) Layout() *layout.Layout            { return f.area.layout }
func (f *FloatingWindow) TitleBar() *TitleBar               { return f.titleBar }
func (f *FloatingWindow) Geometry() geom.Rect               { return f.geometry }
func (f *FloatingWindow) Native() view.Native               { return f.native }
func (f *FloatingWindow) IsClosed() bool                    { return f.closed }
func (f *FloatingWindow) Groups() []*Group                  { return f.area.Groups() }
func (f *FloatingWindow) DockWidgets() []*DockWidget        { return f.area.DockWidgets() }

// Title returns the title of the first group.
func (f *FloatingWindow) Title() string {
	if gs := f.area.Groups(); len(gs) > 0 {
		return gs[0].Title()
	}
	return ""
}

// Affinities returns the affinities of the hosted dock widgets.
func (f *FloatingWindow) Affinities() []string {
	var names []string
	for _, dw := range f.DockWidgets() {
		names = append(names, dw.affinities...)
	}
	return affinity.Normalize(names)
}

// MinSize is the layout minimum plus the caption.
func (f *FloatingWindow) MinSize() geom.Size {
	s := f.area.layout.MinSize()
	s.Height += f.registry.opts.TitleBarHeight
	return s
}

// MaxSize is the layout maximum plus the caption.
func (f *FloatingWindow) MaxSize() geom.Size {
	s := f.area.layout.MaxSize()
	s.Height = geom.SaturatingAdd(s.Height, f.registry.opts.TitleBarHeight, geom.HardcodedMaximumSize.Height)
	return s.ExpandedTo(f.MinSize())
}

// DragRect returns the caption.
func (f *FloatingWindow) DragRect() geom.Rect { return f.titleBar.geometry }

// SetGeometry places the window; the layout fills everything below the
// caption. The window grows when its content needs more room.
func (f *FloatingWindow) SetGeometry(r geom.Rect) {
	th := f.registry.opts.TitleBarHeight
	body := geom.Rect{X: r.X, Y: r.Y + th, Width: r.Width, Height: max(r.Height-th, 0)}
	// A floating layout is never fixed-size, it grows instead of failing.
	_ = f.area.layout.SetGeometry(body)

	body = f.area.layout.Geometry()
	f.geometry = geom.Rect{X: r.X, Y: r.Y, Width: body.Width, Height: body.Height + th}
	f.titleBar.setGeometry(geom.Rect{X: r.X, Y: r.Y, Width: body.Width, Height: th})
	if f.native != nil {
		f.native.SetGeometry(f.geometry)
	}
}

// Move places the top-left corner at p.
func (f *FloatingWindow) Move(p geom.Point) {
	f.SetGeometry(geom.RectFrom(p, f.geometry.Size()))
}

// Close closes the window. Dock widgets still inside are closed too. Refs
// to the window become invalid.
func (f *FloatingWindow) Close() {
	if f.closed {
		return
	}
	f.closed = true

	for _, g := range f.area.Groups() {
		for _, dw := range slices.Clone(g.dockWidgets) {
			dw.group = nil
			if dw.native != nil {
				dw.native.SetParent(nil)
				dw.native.SetVisible(false)
			}
		}
		g.dockWidgets = nil
		g.area = nil
	}

	f.registry.forgetFloating(f)
	if f.native != nil {
		f.native.Close()
	}
	f.registry.logger.Debug().Msg("floating window closed")
}
