package dock

import (
	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/ui/view"
)

// TabBar shows one tab per dock widget of a group.
type TabBar struct {
	group    *Group
	geometry geom.Rect
	native   view.Native
	pressed  int
}

func (t *TabBar) Type() view.Type     { return view.TypeTabBar }
func (t *TabBar) Native() view.Native { return t.native }
func (t *TabBar) Geometry() geom.Rect { return t.geometry }
func (t *TabBar) Group() *Group       { return t.group }

// IsVisible reports whether tabs are shown: with more than one tab, or
// always when FlagAlwaysShowTabs is set.
func (t *TabBar) IsVisible() bool {
	n := t.group.Count()
	if n == 0 {
		return false
	}
	return n > 1 || t.group.registry.opts.Flags.Has(FlagAlwaysShowTabs)
}

// TabRects returns the rectangle of each tab, clipped to the bar.
func (t *TabBar) TabRects() []geom.Rect {
	opts := t.group.registry.opts
	out := make([]geom.Rect, 0, t.group.Count())
	x := t.geometry.X
	for _, dw := range t.group.dockWidgets {
		w := opts.tabWidth(dw.title)
		r := geom.Rect{X: x, Y: t.geometry.Y, Width: w, Height: t.geometry.Height}
		out = append(out, r.Intersect(t.geometry))
		x += w
	}
	return out
}

// TabAt returns the index of the tab under p.
func (t *TabBar) TabAt(p geom.Point) (int, bool) {
	for i, r := range t.TabRects() {
		if r.Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// Press records the tab a drag may start from and makes it current.
func (t *TabBar) Press(index int) error {
	if err := t.group.SetCurrentIndex(index); err != nil {
		return err
	}
	t.pressed = index
	return nil
}

// PressedDockWidget returns the dock widget of the last pressed tab.
func (t *TabBar) PressedDockWidget() *DockWidget {
	if t.pressed < 0 || t.pressed >= t.group.Count() {
		return t.group.CurrentDockWidget()
	}
	return t.group.dockWidgets[t.pressed]
}

// widthFor returns the width the tabs need, capped to available.
func (t *TabBar) widthFor(available int) int {
	opts := t.group.registry.opts
	w := 0
	for _, dw := range t.group.dockWidgets {
		w += opts.tabWidth(dw.title)
	}
	return min(w, available)
}

func (t *TabBar) setGeometry(r geom.Rect) {
	t.geometry = r
	if t.native != nil {
		t.native.SetGeometry(r)
		t.native.SetVisible(!r.IsEmpty())
	}
}

// Stack hosts the content of the current tab.
type Stack struct {
	group    *Group
	geometry geom.Rect
	native   view.Native
}

func (s *Stack) Type() view.Type     { return view.TypeStack }
func (s *Stack) Native() view.Native { return s.native }
func (s *Stack) Geometry() geom.Rect { return s.geometry }
func (s *Stack) Group() *Group       { return s.group }

func (s *Stack) setGeometry(r geom.Rect) {
	s.geometry = r
	if s.native != nil {
		s.native.SetGeometry(r)
	}
}
