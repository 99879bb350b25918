package dock

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/domain/affinity"
	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/ui/layout"
	"github.com/bnema/dockyard/internal/ui/view"
)

// State is where a group currently lives.
type State int

const (
	// StateFloating is a group standing alone or in a floating window.
	StateFloating State = iota
	// StateDocked is a group inside a main window layout.
	StateDocked
	// StateOverlayed is a group shown over the main window from a side bar.
	StateOverlayed
)

// String returns a lowercase name.
func (s State) String() string {
	switch s {
	case StateDocked:
		return "docked"
	case StateOverlayed:
		return "overlayed"
	default:
		return "floating"
	}
}

// Group is a tab stack of dock widgets sharing one region. It is the guest
// of a leaf layout item.
type Group struct {
	id          uint64
	registry    *Registry
	dockWidgets []*DockWidget
	current     int
	state       State
	area        *DropArea
	geometry    geom.Rect
	hidden      bool

	titleBar *TitleBar
	tabBar   *TabBar
	stack    *Stack
	native   view.Native

	logger zerolog.Logger
}

var _ layout.Guest = (*Group)(nil)

func (g *Group) Type() view.Type     { return view.TypeGroup }
func (g *Group) ID() uint64          { return g.id }
func (g *Group) Native() view.Native { return g.native }
func (g *Group) TitleBar() *TitleBar { return g.titleBar }
func (g *Group) TabBar() *TabBar     { return g.tabBar }
func (g *Group) Stack() *Stack       { return g.stack }
func (g *Group) State() State        { return g.state }
func (g *Group) Geometry() geom.Rect { return g.geometry }
func (g *Group) DropArea() *DropArea { return g.area }
func (g *Group) Count() int          { return len(g.dockWidgets) }
func (g *Group) CurrentIndex() int   { return g.current }
func (g *Group) IsEmpty() bool       { return len(g.dockWidgets) == 0 }

// DockWidgets returns the tabs in order.
func (g *Group) DockWidgets() []*DockWidget { return slices.Clone(g.dockWidgets) }

// CurrentDockWidget returns the visible tab, or nil for an empty group.
func (g *Group) CurrentDockWidget() *DockWidget {
	if g.current < 0 || g.current >= len(g.dockWidgets) {
		return nil
	}
	return g.dockWidgets[g.current]
}

// Title returns the title of the current tab.
func (g *Group) Title() string {
	if dw := g.CurrentDockWidget(); dw != nil {
		return dw.title
	}
	return ""
}

// Affinities returns the affinities shared by the tabs. Tabs of one group
// always carry the same set.
func (g *Group) Affinities() []string {
	if len(g.dockWidgets) == 0 {
		return nil
	}
	return g.dockWidgets[0].affinities
}

// AcceptsTab reports whether a dock widget tagged with affinities may join
// the group as a tab. An empty group takes anything.
func (g *Group) AcceptsTab(affinities []string) bool {
	return len(g.dockWidgets) == 0 || affinity.Equal(g.Affinities(), affinities)
}

// FloatingWindow returns the floating window hosting the group, or nil.
func (g *Group) FloatingWindow() *FloatingWindow {
	if g.area == nil {
		return nil
	}
	return g.area.floating
}

// Item returns the layout item hosting the group.
func (g *Group) Item() (*layout.Item, bool) {
	if g.area == nil {
		return nil, false
	}
	return g.area.layout.ItemForGuest(g)
}

// AddDockWidget appends dw as the current tab.
func (g *Group) AddDockWidget(dw *DockWidget) error {
	return g.InsertDockWidget(dw, len(g.dockWidgets))
}

// InsertDockWidget inserts dw at index and makes it current.
func (g *Group) InsertDockWidget(dw *DockWidget, index int) error {
	if dw == nil {
		return ErrNilController
	}
	if dw.group != nil {
		return fmt.Errorf("add %q: %w", dw.name, ErrAlreadyInGroup)
	}
	if index < 0 || index > len(g.dockWidgets) {
		return fmt.Errorf("insert %q at %d: %w", dw.name, index, ErrIndexOutOfBounds)
	}
	if !g.AcceptsTab(dw.affinities) {
		return fmt.Errorf("tab %q into %q: %w", dw.name, g.Title(), ErrAffinityMismatch)
	}

	g.dockWidgets = slices.Insert(g.dockWidgets, index, dw)
	dw.group = g
	if dw.native != nil && g.stack.native != nil {
		dw.native.SetParent(g.stack.native)
	}
	g.current = index

	g.logger.Debug().
		Str("dock_widget", dw.name).
		Int("index", index).
		Int("tabs", len(g.dockWidgets)).
		Msg("tab added")
	g.constraintsChanged()
	return nil
}

// RemoveDockWidget takes dw out of the group. An emptied group is removed
// from its drop area.
func (g *Group) RemoveDockWidget(dw *DockWidget) error {
	idx := slices.Index(g.dockWidgets, dw)
	if idx < 0 {
		return fmt.Errorf("remove %q: %w", dw.Name(), ErrNotInGroup)
	}

	g.dockWidgets = slices.Delete(g.dockWidgets, idx, idx+1)
	dw.group = nil
	if dw.native != nil {
		dw.native.SetParent(nil)
		dw.native.SetVisible(false)
	}
	if g.current >= len(g.dockWidgets) {
		g.current = len(g.dockWidgets) - 1
	} else if idx < g.current {
		g.current--
	}

	g.logger.Debug().Str("dock_widget", dw.name).Int("tabs", len(g.dockWidgets)).Msg("tab removed")

	if len(g.dockWidgets) == 0 {
		if g.area != nil {
			return g.area.removeGroup(g)
		}
		return nil
	}
	g.constraintsChanged()
	return nil
}

// SetCurrentIndex switches the visible tab.
func (g *Group) SetCurrentIndex(index int) error {
	if index < 0 || index >= len(g.dockWidgets) {
		return fmt.Errorf("set current tab %d: %w", index, ErrIndexOutOfBounds)
	}
	g.current = index
	g.relayoutChrome()
	return nil
}

// MoveTab reorders a tab, keeping it current.
func (g *Group) MoveTab(from, to int) error {
	n := len(g.dockWidgets)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("move tab %d to %d: %w", from, to, ErrIndexOutOfBounds)
	}
	dw := g.dockWidgets[from]
	g.dockWidgets = slices.Insert(slices.Delete(g.dockWidgets, from, from+1), to, dw)
	g.current = to
	g.relayoutChrome()
	return nil
}

// NavigateNext makes the next tab current, wrapping around.
func (g *Group) NavigateNext() {
	if n := len(g.dockWidgets); n > 1 {
		_ = g.SetCurrentIndex((g.current + 1) % n)
	}
}

// NavigatePrevious makes the previous tab current, wrapping around.
func (g *Group) NavigatePrevious() {
	if n := len(g.dockWidgets); n > 1 {
		_ = g.SetCurrentIndex((g.current - 1 + n) % n)
	}
}

// SetVisible shows or hides the whole group.
func (g *Group) SetVisible(v bool) {
	if g.hidden == !v {
		return
	}
	g.hidden = !v
	if g.native != nil {
		g.native.SetVisible(v)
	}
	if g.area != nil {
		g.area.layout.Relayout()
	}
}

// IsVisible reports whether the group takes space in its layout.
func (g *Group) IsVisible() bool { return !g.hidden && len(g.dockWidgets) > 0 }

// FillsBackground reports whether the group paints an opaque background,
// which only overlayed groups need.
func (g *Group) FillsBackground() bool { return g.state == StateOverlayed }

// DockWidgetsMinSize is the smallest size fitting every tab's content.
func (g *Group) DockWidgetsMinSize() geom.Size {
	size := g.registry.opts.MinimumItemSize
	for _, dw := range g.dockWidgets {
		size = size.ExpandedTo(dw.MinSize())
	}
	return size
}

// BiggestDockWidgetMaxSize is the most permissive content maximum.
func (g *Group) BiggestDockWidgetMaxSize() geom.Size {
	if len(g.dockWidgets) == 0 {
		return geom.HardcodedMaximumSize
	}
	var size geom.Size
	for _, dw := range g.dockWidgets {
		size = size.ExpandedTo(dw.MaxSize())
	}
	return size
}

// NonContentsHeight is the height taken by the visible chrome.
func (g *Group) NonContentsHeight() int {
	h := 0
	if g.titleBar.IsVisible() {
		h += g.registry.opts.TitleBarHeight
	}
	if g.tabBar.IsVisible() {
		h += g.registry.opts.TabBarHeight
	}
	return h
}

// MinSize is the content minimum plus the chrome.
func (g *Group) MinSize() geom.Size {
	s := g.DockWidgetsMinSize()
	s.Height += g.NonContentsHeight()
	return s
}

// MaxSize keeps the chrome overhead on top of the most permissive tab
// maximum.
func (g *Group) MaxSize() geom.Size {
	minSize := g.MinSize()
	content := g.DockWidgetsMinSize()
	waste := geom.Size{Width: minSize.Width - content.Width, Height: minSize.Height - content.Height}

	biggest := g.BiggestDockWidgetMaxSize()
	limit := geom.HardcodedMaximumSize
	return geom.Size{
		Width:  geom.SaturatingAdd(waste.Width, biggest.Width, limit.Width),
		Height: geom.SaturatingAdd(waste.Height, biggest.Height, limit.Height),
	}.ExpandedTo(minSize)
}

// DragRect returns the area a drag may start from. It is the title bar
// when shown. With FlagHideTitleBarWhenTabsVisible and tabs shown, it is
// the free strip right of the tabs. The rectangle never leaves the group.
func (g *Group) DragRect() geom.Rect {
	var r geom.Rect
	switch {
	case g.titleBar.IsVisible():
		r = g.titleBar.Geometry()
	case g.tabBar.IsVisible() && g.registry.opts.Flags.Has(FlagHideTitleBarWhenTabsVisible):
		tb := g.tabBar.Geometry()
		r = geom.Rect{
			X:      tb.Right(),
			Y:      tb.Y,
			Width:  g.geometry.Width - tb.Width,
			Height: tb.Height,
		}
	}
	return r.Intersect(g.geometry)
}

// SetGeometry places the group and lays out its chrome.
func (g *Group) SetGeometry(r geom.Rect) {
	g.geometry = r
	if g.native != nil {
		g.native.SetGeometry(r)
	}
	g.relayoutChrome()
}

// relayoutChrome stacks title bar, tab bar and content inside the group.
func (g *Group) relayoutChrome() {
	r := g.geometry
	opts := g.registry.opts
	y := r.Y

	if g.titleBar.IsVisible() {
		g.titleBar.setGeometry(geom.Rect{X: r.X, Y: y, Width: r.Width, Height: opts.TitleBarHeight})
		y += opts.TitleBarHeight
	} else {
		g.titleBar.setGeometry(geom.Rect{})
	}

	if g.tabBar.IsVisible() {
		g.tabBar.setGeometry(geom.Rect{X: r.X, Y: y, Width: g.tabBar.widthFor(r.Width), Height: opts.TabBarHeight})
		y += opts.TabBarHeight
	} else {
		g.tabBar.setGeometry(geom.Rect{})
	}

	content := geom.Rect{X: r.X, Y: y, Width: r.Width, Height: max(r.Bottom()-y, 0)}
	g.stack.setGeometry(content)

	for i, dw := range g.dockWidgets {
		if dw.native == nil {
			continue
		}
		dw.native.SetVisible(i == g.current && !g.hidden)
		if i == g.current {
			dw.native.SetGeometry(content)
		}
	}
}

// constraintsChanged re-runs the layout after tabs or chrome changed the
// group's min or max.
func (g *Group) constraintsChanged() {
	if g.area != nil {
		g.area.layout.Relayout()
		return
	}
	g.relayoutChrome()
}

// IsSoleGroupOfFloatingWindow reports whether g is the only group of a
// floating window; dragging it then moves the whole window.
func (g *Group) IsSoleGroupOfFloatingWindow() bool {
	fw := g.FloatingWindow()
	return fw != nil && len(fw.area.Groups()) == 1
}
