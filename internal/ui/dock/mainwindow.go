package dock

import (
	"fmt"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/ui/layout"
	"github.com/bnema/dockyard/internal/ui/view"
)

// MainWindow is a named top-level whose drop area hosts docked groups. It
// may also carry an MDI area and one overlayed group shown from a side bar.
type MainWindow struct {
	registry *Registry
	name     string
	area     *DropArea
	native   view.Native
	sideBar  view.Native
	overlay  *Group

	mdi       *layout.MDILayout
	mdiNative view.Native
}

type mainWindowConfig struct {
	affinities []string
	fixed      *geom.Size
	geometry   geom.Rect
	native     view.Native
	mdi        bool
}

// MainWindowOption configures a MainWindow.
type MainWindowOption func(*mainWindowConfig)

// WithMainWindowAffinities restricts which dock widgets may be docked.
func WithMainWindowAffinities(names ...string) MainWindowOption {
	return func(c *mainWindowConfig) { c.affinities = names }
}

// WithFixedSize pins the main window layout. Docking that would need more
// room is rejected.
func WithFixedSize(s geom.Size) MainWindowOption {
	return func(c *mainWindowConfig) { c.fixed = &s }
}

// WithGeometry sets the initial geometry.
func WithGeometry(r geom.Rect) MainWindowOption {
	return func(c *mainWindowConfig) { c.geometry = r }
}

// WithNative attaches the frontend view the main window draws into.
func WithNative(n view.Native) MainWindowOption {
	return func(c *mainWindowConfig) { c.native = n }
}

// WithMDIArea gives the main window a free-positioning MDI area next to
// its docking layout.
func WithMDIArea() MainWindowOption {
	return func(c *mainWindowConfig) { c.mdi = true }
}

func (m *MainWindow) Type() view.Type              { return view.TypeMainWindow }
func (m *MainWindow) Name() string                 { return m.name }
func (m *MainWindow) DropArea() *DropArea          { return m.area }
func (m *MainWindow) Layout() *layout.Layout       { return m.area.layout }
func (m *MainWindow) Native() view.Native          { return m.native }
func (m *MainWindow) Geometry() geom.Rect          { return m.area.Geometry() }
func (m *MainWindow) OverlayedGroup() *Group       { return m.overlay }
func (m *MainWindow) MDILayout() *layout.MDILayout { return m.mdi }

// AddDockWidget docks dw at loc, relative to the whole window when
// relativeTo is nil.
func (m *MainWindow) AddDockWidget(dw *DockWidget, loc layout.Location, relativeTo *Group) (*Group, error) {
	if dw != nil && !m.area.Accepts(dw.affinities) {
		return nil, fmt.Errorf("dock %q into %s: %w", dw.name, m.name, ErrAffinityMismatch)
	}
	return m.area.AddDockWidget(dw, loc, relativeTo)
}

// SetGeometry resizes the main window. A fixed-size window rejects sizes
// below its minimum.
func (m *MainWindow) SetGeometry(r geom.Rect) error {
	if err := m.area.layout.SetGeometry(r); err != nil {
		return fmt.Errorf("resize %s: %w", m.name, err)
	}
	if m.native != nil {
		m.native.SetGeometry(m.area.layout.Geometry())
	}
	if m.mdi != nil {
		m.mdi.SetGeometry(m.area.layout.Geometry())
	}
	if m.overlay != nil {
		m.overlay.SetGeometry(m.overlayRect(m.overlay))
	}
	return nil
}

// OverlayDockWidget shows dw over the left edge of the window without
// taking space in the layout. Any previous overlay is cleared first.
func (m *MainWindow) OverlayDockWidget(dw *DockWidget) (*Group, error) {
	if dw == nil {
		return nil, ErrNilController
	}
	if dw.group != nil {
		return nil, fmt.Errorf("overlay %q: %w", dw.name, ErrAlreadyInGroup)
	}
	m.ClearOverlay()

	g := m.registry.NewGroup()
	if err := g.AddDockWidget(dw); err != nil {
		return nil, err
	}
	g.state = StateOverlayed
	parent := m.sideBar
	if parent == nil {
		parent = m.native
	}
	if g.native != nil && parent != nil {
		g.native.SetParent(parent)
		g.native.SetVisible(true)
	}
	g.SetGeometry(m.overlayRect(g))
	m.overlay = g

	m.registry.logger.Debug().Str("main_window", m.name).Str("dock_widget", dw.name).Msg("dock widget overlayed")
	return g, nil
}

// ClearOverlay hides the overlayed dock widget.
func (m *MainWindow) ClearOverlay() {
	g := m.overlay
	if g == nil {
		return
	}
	m.overlay = nil
	for _, dw := range g.DockWidgets() {
		_ = g.RemoveDockWidget(dw)
	}
	if g.native != nil {
		g.native.SetParent(nil)
	}
}

// overlayRect is a left strip a third of the window wide, within the
// group's own limits.
func (m *MainWindow) overlayRect(g *Group) geom.Rect {
	r := m.area.Geometry()
	minSize, maxSize := g.MinSize(), g.MaxSize()
	w := geom.Clamp(r.Width/3, minSize.Width, maxSize.Width)
	return geom.Rect{X: r.X, Y: r.Y, Width: w, Height: max(r.Height, minSize.Height)}
}

// AddDockWidgetMDI places dw in a new group at r inside the MDI area.
func (m *MainWindow) AddDockWidgetMDI(dw *DockWidget, r geom.Rect) (*Group, error) {
	if m.mdi == nil {
		return nil, fmt.Errorf("%s: %w", m.name, ErrNoMDIArea)
	}
	if dw == nil {
		return nil, ErrNilController
	}
	if dw.group != nil {
		return nil, fmt.Errorf("add %q to MDI area: %w", dw.name, ErrAlreadyInGroup)
	}

	g := m.registry.NewGroup()
	if err := g.AddDockWidget(dw); err != nil {
		return nil, err
	}
	g.state = StateDocked
	if g.native != nil && m.mdiNative != nil {
		g.native.SetParent(m.mdiNative)
		g.native.SetVisible(true)
	}
	if _, err := m.mdi.Add(g, r); err != nil {
		_ = g.RemoveDockWidget(dw)
		return nil, fmt.Errorf("add %q to MDI area: %w", dw.name, err)
	}
	return g, nil
}
