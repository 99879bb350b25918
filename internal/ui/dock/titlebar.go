package dock

import (
	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/ui/view"
)

// TitleBar is the caption strip of a group or of a floating window.
// Exactly one of group and floating is set.
type TitleBar struct {
	group    *Group
	floating *FloatingWindow
	geometry geom.Rect
	native   view.Native
	registry *Registry
}

func newTitleBar(r *Registry, g *Group, fw *FloatingWindow, parent view.Native) *TitleBar {
	tb := &TitleBar{group: g, floating: fw, registry: r}
	tb.native = r.factory.CreateTitleBar(tb, parent)
	return tb
}

func (t *TitleBar) Type() view.Type                 { return view.TypeTitleBar }
func (t *TitleBar) Native() view.Native             { return t.native }
func (t *TitleBar) Geometry() geom.Rect             { return t.geometry }
func (t *TitleBar) Group() *Group                   { return t.group }
func (t *TitleBar) FloatingWindow() *FloatingWindow { return t.floating }

// Title returns the caption text.
func (t *TitleBar) Title() string {
	if t.floating != nil {
		return t.floating.Title()
	}
	return t.group.Title()
}

// IsVisible applies the title bar policy. A floating window always shows
// its own caption, which replaces the caption of a sole group inside it.
func (t *TitleBar) IsVisible() bool {
	if t.floating != nil {
		return true
	}
	g := t.group
	if g.IsSoleGroupOfFloatingWindow() {
		return false
	}
	if g.registry.opts.Flags.Has(FlagHideTitleBarWhenTabsVisible) && g.tabBar.IsVisible() {
		return false
	}
	return true
}

// Buttons lists the buttons shown, in order.
func (t *TitleBar) Buttons() []view.ButtonType {
	if t.floating != nil {
		return []view.ButtonType{view.ButtonNormal, view.ButtonClose}
	}
	if t.group.state == StateDocked {
		return []view.ButtonType{view.ButtonFloat, view.ButtonClose}
	}
	return []view.ButtonType{view.ButtonClose}
}

// Icon returns the frontend icon for b. Frontends without icons return
// nil and the button is drawn as text.
func (t *TitleBar) Icon(b view.ButtonType) view.Icon {
	return t.registry.factory.IconForButtonType(b, t.registry.opts.IconScale)
}

func (t *TitleBar) setGeometry(r geom.Rect) {
	t.geometry = r
	if t.native != nil {
		t.native.SetGeometry(r)
		t.native.SetVisible(!r.IsEmpty())
	}
}
