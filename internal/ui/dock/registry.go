// Package dock holds the docking controllers: dock widgets, the groups
// showing them as tabs, the drop areas laying groups out, and the main and
// floating windows hosting drop areas.
package dock

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/domain/weakref"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/layout"
	"github.com/bnema/dockyard/internal/ui/view"
)

// Registry indexes the main windows, floating windows and dock widgets of
// one application. Floating windows are kept in z-order, topmost last.
type Registry struct {
	ctx     context.Context
	opts    Options
	factory view.Factory

	floating    *weakref.Arena[*FloatingWindow]
	zOrder      []weakref.Ref[*FloatingWindow]
	mainWindows []*MainWindow
	dockWidgets map[string]*DockWidget
	nextGroupID uint64
	nextFloatID uint64

	logger zerolog.Logger
}

// NewRegistry validates opts and creates an empty registry. Views are
// created through factory; use view.NullFactory for a viewless core.
func NewRegistry(ctx context.Context, factory view.Factory, opts Options) (*Registry, error) {
	if factory == nil {
		return nil, fmt.Errorf("view factory: %w", ErrNilController)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx)
	return &Registry{
		ctx:         ctx,
		opts:        opts,
		factory:     factory,
		floating:    weakref.NewArena[*FloatingWindow](),
		dockWidgets: make(map[string]*DockWidget),
		logger:      log.With().Str("component", "dock-registry").Logger(),
	}, nil
}

// Options returns the docking options.
func (r *Registry) Options() Options { return r.opts }

// Factory returns the view factory.
func (r *Registry) Factory() view.Factory { return r.factory }

// NewDockWidget registers a dock widget. Names are unique.
func (r *Registry) NewDockWidget(name, title string, opts ...DockWidgetOption) (*DockWidget, error) {
	if _, ok := r.dockWidgets[name]; ok {
		return nil, fmt.Errorf("dock widget %q: %w", name, ErrDuplicateName)
	}
	dw := &DockWidget{registry: r, name: name, title: title}
	for _, opt := range opts {
		opt(dw)
	}
	dw.native = r.factory.CreateDockWidget(dw, nil)
	if dw.native == nil {
		r.logger.Debug().Str("dock_widget", name).Msg("frontend has no dock widget view")
	}
	r.dockWidgets[name] = dw
	return dw, nil
}

// DockWidget looks a dock widget up by name.
func (r *Registry) DockWidget(name string) (*DockWidget, bool) {
	dw, ok := r.dockWidgets[name]
	return dw, ok
}

// DockWidgets returns every registered dock widget sorted by name.
func (r *Registry) DockWidgets() []*DockWidget {
	names := slices.Sorted(maps.Keys(r.dockWidgets))
	out := make([]*DockWidget, 0, len(names))
	for _, n := range names {
		out = append(out, r.dockWidgets[n])
	}
	return out
}

// NewGroup creates an empty detached group with its chrome.
func (r *Registry) NewGroup() *Group {
	r.nextGroupID++
	g := &Group{id: r.nextGroupID, registry: r}
	g.logger = r.logger.With().Str("component", "group").Uint64("group", g.id).Logger()

	g.native = r.factory.CreateGroup(g, nil)
	g.titleBar = newTitleBar(r, g, nil, g.native)
	g.tabBar = &TabBar{group: g, pressed: -1}
	g.tabBar.native = r.factory.CreateTabBar(g.tabBar, g.native)
	g.stack = &Stack{group: g}
	g.stack.native = r.factory.CreateStack(g.stack, g.native)
	return g
}

// NewMainWindow creates a named main window with an empty drop area.
func (r *Registry) NewMainWindow(name string, opts ...MainWindowOption) (*MainWindow, error) {
	for _, m := range r.mainWindows {
		if m.name == name {
			return nil, fmt.Errorf("main window %q: %w", name, ErrDuplicateName)
		}
	}
	var cfg mainWindowConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &MainWindow{registry: r, name: name, native: cfg.native}
	var extra []layout.Option
	if cfg.fixed != nil {
		extra = append(extra, layout.WithFixedSize(*cfg.fixed))
	}
	m.area = r.newDropArea(name, cfg.affinities, m.native, extra...)
	m.area.main = m
	m.sideBar = r.factory.CreateSideBar(m, m.native)

	if cfg.mdi {
		m.mdi = layout.NewMDI(r.ctx, cfg.geometry)
		m.mdi.SetMinimumItemSize(r.opts.MinimumItemSize)
		m.mdiNative = r.factory.CreateMDILayout(m, m.native)
	}

	if !cfg.geometry.IsEmpty() || cfg.fixed != nil {
		geometry := cfg.geometry
		if cfg.fixed != nil {
			geometry = geom.RectFrom(geometry.TopLeft(), *cfg.fixed)
		}
		if err := m.SetGeometry(geometry); err != nil {
			return nil, err
		}
	}

	r.mainWindows = append(r.mainWindows, m)
	r.logger.Debug().Str("main_window", name).Msg("main window created")
	return m, nil
}

// MainWindows returns the main windows in creation order.
func (r *Registry) MainWindows() []*MainWindow { return slices.Clone(r.mainWindows) }

// MainWindow looks a main window up by name.
func (r *Registry) MainWindow(name string) (*MainWindow, bool) {
	for _, m := range r.mainWindows {
		if m.name == name {
			return m, true
		}
	}
	return nil, false
}

// NewFloatingWindow creates an empty floating window at rect and raises it.
func (r *Registry) NewFloatingWindow(rect geom.Rect) *FloatingWindow {
	r.nextFloatID++
	fw := &FloatingWindow{registry: r}
	fw.native = r.factory.CreateFloatingWindow(fw, nil)
	fw.area = r.newDropArea(fmt.Sprintf("floating-%d", r.nextFloatID), nil, fw.native)
	fw.area.floating = fw
	fw.titleBar = newTitleBar(r, nil, fw, fw.native)

	fw.ref = r.floating.Insert(fw)
	r.zOrder = append(r.zOrder, fw.ref)
	fw.SetGeometry(rect)
	if fw.native != nil {
		fw.native.SetVisible(true)
	}

	r.logger.Debug().Str("drop_area", fw.area.name).Int("floating_windows", r.floating.Len()).Msg("floating window created")
	return fw
}

// FloatingWindows returns the open floating windows, topmost first.
func (r *Registry) FloatingWindows() []*FloatingWindow {
	out := make([]*FloatingWindow, 0, len(r.zOrder))
	for i := len(r.zOrder) - 1; i >= 0; i-- {
		if fw, ok := r.zOrder[i].Get(); ok {
			out = append(out, fw)
		}
	}
	return out
}

// Raise moves fw to the top of the z-order.
func (r *Registry) Raise(fw *FloatingWindow) error {
	if fw == nil || !fw.ref.Valid() {
		return ErrWindowClosed
	}
	r.zOrder = slices.DeleteFunc(r.zOrder, func(ref weakref.Ref[*FloatingWindow]) bool {
		return ref == fw.ref
	})
	r.zOrder = append(r.zOrder, fw.ref)
	return nil
}

// DropAreas returns every drop area in hit-test order: floating windows
// topmost first, then main windows.
func (r *Registry) DropAreas() []*DropArea {
	var out []*DropArea
	for _, fw := range r.FloatingWindows() {
		out = append(out, fw.area)
	}
	for _, m := range r.mainWindows {
		out = append(out, m.area)
	}
	return out
}

// DropAreaAt returns the topmost drop area containing p.
func (r *Registry) DropAreaAt(p geom.Point) (*DropArea, bool) {
	for _, a := range r.DropAreas() {
		if a.Geometry().Contains(p) {
			return a, true
		}
	}
	return nil, false
}

// FloatGroup moves g into a floating window of its own, placed where the
// group currently is. A group that already is the sole group of a floating
// window keeps it.
func (r *Registry) FloatGroup(g *Group) (*FloatingWindow, error) {
	if g == nil {
		return nil, ErrNilController
	}
	if g.IsSoleGroupOfFloatingWindow() {
		return g.FloatingWindow(), nil
	}

	rect := g.geometry
	if g.area != nil {
		if err := g.area.DetachGroup(g); err != nil {
			return nil, fmt.Errorf("float group %d: %w", g.id, err)
		}
	}
	rect.Y -= r.opts.TitleBarHeight
	rect.Height += r.opts.TitleBarHeight

	fw := r.NewFloatingWindow(rect)
	if err := fw.area.AddGroup(g, layout.LocationLeft, nil); err != nil {
		fw.Close()
		return nil, fmt.Errorf("float group %d: %w", g.id, err)
	}
	fw.SetGeometry(geom.RectFrom(rect.TopLeft(), fw.geometry.Size().ExpandedTo(rect.Size())))
	return fw, nil
}

// FloatDockWidget moves dw out of its group into a new floating window.
func (r *Registry) FloatDockWidget(dw *DockWidget) (*FloatingWindow, error) {
	if dw == nil {
		return nil, ErrNilController
	}
	g := dw.group
	if g != nil && g.Count() == 1 {
		return r.FloatGroup(g)
	}

	rect := geom.RectFrom(geom.Point{}, dw.MinSize().ExpandedTo(r.opts.MinimumItemSize))
	if g != nil {
		rect = g.geometry
		if err := g.RemoveDockWidget(dw); err != nil {
			return nil, err
		}
	}
	ng := r.NewGroup()
	if err := ng.AddDockWidget(dw); err != nil {
		return nil, err
	}
	ng.geometry = rect
	return r.FloatGroup(ng)
}

func (r *Registry) forgetFloating(fw *FloatingWindow) {
	ref := fw.ref
	r.zOrder = slices.DeleteFunc(r.zOrder, func(z weakref.Ref[*FloatingWindow]) bool { return z == ref })
	r.floating.Release(ref)
}
