package dock

import (
	"fmt"

	"github.com/bnema/dockyard/internal/domain/affinity"
	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/ui/layout"
	"github.com/bnema/dockyard/internal/ui/view"
)

// DropArea hosts groups in a layout. Every main window and every floating
// window owns one; it is what drags are dropped onto.
type DropArea struct {
	registry   *Registry
	name       string
	layout     *layout.Layout
	native     view.Native
	affinities affinity.Set
	main       *MainWindow
	floating   *FloatingWindow
}

func (r *Registry) newDropArea(name string, affinities []string, parent view.Native, extra ...layout.Option) *DropArea {
	opts := append([]layout.Option{
		layout.WithName(name),
		layout.WithSeparatorThickness(r.opts.SeparatorThickness),
		layout.WithMinimumItemSize(r.opts.MinimumItemSize),
	}, extra...)

	a := &DropArea{
		registry:   r,
		name:       name,
		layout:     layout.New(r.ctx, opts...),
		affinities: affinity.Normalize(affinities),
	}
	a.native = r.factory.CreateDropArea(a, parent)
	a.layout.OnInvalidated(func() {
		if a.native != nil {
			a.native.SetGeometry(a.layout.Geometry())
		}
	})
	return a
}

func (a *DropArea) Type() view.Type                 { return view.TypeDropArea }
func (a *DropArea) Name() string                    { return a.name }
func (a *DropArea) Layout() *layout.Layout          { return a.layout }
func (a *DropArea) Native() view.Native             { return a.native }
func (a *DropArea) Geometry() geom.Rect             { return a.layout.Geometry() }
func (a *DropArea) MainWindow() *MainWindow         { return a.main }
func (a *DropArea) FloatingWindow() *FloatingWindow { return a.floating }
func (a *DropArea) IsFloating() bool                { return a.floating != nil }
func (a *DropArea) IsEmpty() bool                   { return a.layout.IsEmpty() }

// AcceptedAffinities returns the affinities the area accepts. A floating
// area accepts what its dock widgets carry.
func (a *DropArea) AcceptedAffinities() []string {
	if a.floating != nil {
		return a.floating.Affinities()
	}
	return a.affinities
}

// Accepts reports whether a payload tagged with payload may be dropped here.
func (a *DropArea) Accepts(payload []string) bool {
	return affinity.Accepts(a.AcceptedAffinities(), payload)
}

// Groups returns the hosted groups in layout order.
func (a *DropArea) Groups() []*Group {
	return groupsOf(a.layout.Items())
}

// GroupAt returns the visible group under p.
func (a *DropArea) GroupAt(p geom.Point) (*Group, bool) {
	for _, g := range a.Groups() {
		if g.IsVisible() && g.geometry.Contains(p) {
			return g, true
		}
	}
	return nil, false
}

// DockWidgets returns every dock widget hosted by the area.
func (a *DropArea) DockWidgets() []*DockWidget {
	var out []*DockWidget
	for _, g := range a.Groups() {
		out = append(out, g.dockWidgets...)
	}
	return out
}

// AddDockWidget puts dw in a new group at loc relative to relativeTo, or
// relative to the whole area when relativeTo is nil.
func (a *DropArea) AddDockWidget(dw *DockWidget, loc layout.Location, relativeTo *Group) (*Group, error) {
	if dw == nil {
		return nil, ErrNilController
	}
	if dw.group != nil {
		return nil, fmt.Errorf("add %q to %s: %w", dw.name, a.name, ErrAlreadyInGroup)
	}

	g := a.registry.NewGroup()
	if err := g.AddDockWidget(dw); err != nil {
		return nil, err
	}
	if err := a.AddGroup(g, loc, relativeTo); err != nil {
		_ = g.RemoveDockWidget(dw)
		return nil, err
	}
	return g, nil
}

// AddGroup inserts a detached group.
func (a *DropArea) AddGroup(g *Group, loc layout.Location, relativeTo *Group) error {
	if g == nil {
		return ErrNilController
	}
	if g.area != nil {
		return fmt.Errorf("add group %d to %s: %w", g.id, a.name, ErrGroupAttached)
	}
	rel, err := a.itemOf(relativeTo)
	if err != nil {
		return err
	}

	if _, err := a.layout.InsertGuest(g, loc, rel); err != nil {
		return fmt.Errorf("add group %d to %s: %w", g.id, a.name, err)
	}
	a.adopt(g)
	a.layout.Relayout()
	return nil
}

// AddItem inserts a detached layout subtree, for instance the content of
// another drop area, and adopts every group in it.
func (a *DropArea) AddItem(it *layout.Item, loc layout.Location, relativeTo *Group) error {
	rel, err := a.itemOf(relativeTo)
	if err != nil {
		return err
	}
	if err := a.layout.InsertItem(it, loc, rel); err != nil {
		return fmt.Errorf("add items to %s: %w", a.name, err)
	}
	for _, g := range groupsOf(it.Leaves()) {
		a.adopt(g)
	}
	a.layout.Relayout()
	return nil
}

// TakeAll empties the area and returns its layout tree and groups,
// detached and ready to be inserted elsewhere.
func (a *DropArea) TakeAll() (*layout.Item, []*Group, error) {
	it, err := a.layout.TakeAll()
	if err != nil {
		return nil, nil, err
	}
	groups := groupsOf(it.Leaves())
	for _, g := range groups {
		a.release(g)
	}
	return it, groups, nil
}

// DetachGroup removes g from the area without destroying it.
func (a *DropArea) DetachGroup(g *Group) error {
	return a.removeGroup(g)
}

func (a *DropArea) itemOf(g *Group) (*layout.Item, error) {
	if g == nil {
		return nil, nil
	}
	if g.area != a {
		return nil, fmt.Errorf("group %d: %w", g.id, ErrForeignGroup)
	}
	it, ok := a.layout.ItemForGuest(g)
	if !ok {
		return nil, fmt.Errorf("group %d: %w", g.id, ErrForeignGroup)
	}
	return it, nil
}

func (a *DropArea) adopt(g *Group) {
	g.area = a
	if a.floating != nil {
		g.state = StateFloating
	} else {
		g.state = StateDocked
	}
	if g.native != nil && a.native != nil {
		g.native.SetParent(a.native)
		g.native.SetVisible(!g.hidden)
	}
}

func (a *DropArea) release(g *Group) {
	g.area = nil
	g.state = StateFloating
	if g.native != nil {
		g.native.SetParent(nil)
	}
}

func (a *DropArea) removeGroup(g *Group) error {
	it, err := a.itemOf(g)
	if err != nil {
		return err
	}
	if err := a.layout.RemoveItem(it); err != nil {
		return err
	}
	a.release(g)
	a.registry.logger.Debug().
		Uint64("group", g.id).
		Str("drop_area", a.name).
		Int("groups", len(a.Groups())).
		Msg("group removed")

	if a.floating != nil && a.layout.IsEmpty() {
		a.floating.Close()
		return nil
	}
	// Title bar visibility may depend on the number of groups left.
	a.layout.Relayout()
	return nil
}

func groupsOf(items []*layout.Item) []*Group {
	out := make([]*Group, 0, len(items))
	for _, it := range items {
		if g, ok := it.Guest().(*Group); ok {
			out = append(out, g)
		}
	}
	return out
}
