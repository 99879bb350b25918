package dock

import (
	"github.com/bnema/dockyard/internal/domain/affinity"
	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/ui/view"
)

// DockWidget is a uniquely named dockable panel. It is shown as one tab of
// a Group.
type DockWidget struct {
	registry   *Registry
	name       string
	title      string
	affinities affinity.Set
	minSize    geom.Size
	maxSize    geom.Size
	group      *Group
	native     view.Native
}

// DockWidgetOption configures a DockWidget.
type DockWidgetOption func(*DockWidget)

// WithAffinities restricts the drop areas accepting the dock widget.
func WithAffinities(names ...string) DockWidgetOption {
	return func(d *DockWidget) { d.affinities = affinity.Normalize(names) }
}

// WithMinSize sets the minimum content size.
func WithMinSize(s geom.Size) DockWidgetOption {
	return func(d *DockWidget) { d.minSize = s }
}

// WithMaxSize sets the maximum content size.
func WithMaxSize(s geom.Size) DockWidgetOption {
	return func(d *DockWidget) { d.maxSize = s }
}

func (d *DockWidget) Type() view.Type      { return view.TypeDockWidget }
func (d *DockWidget) Name() string         { return d.name }
func (d *DockWidget) Title() string        { return d.title }
func (d *DockWidget) Affinities() []string { return d.affinities }
func (d *DockWidget) Native() view.Native  { return d.native }
func (d *DockWidget) Group() *Group        { return d.group }
func (d *DockWidget) MinSize() geom.Size   { return d.minSize }
func (d *DockWidget) IsOpen() bool         { return d.group != nil }

// MaxSize returns the maximum content size; unset means unbounded.
func (d *DockWidget) MaxSize() geom.Size {
	if d.maxSize.IsEmpty() {
		return geom.HardcodedMaximumSize
	}
	return d.maxSize.ExpandedTo(d.minSize)
}

// SetTitle renames the tab.
func (d *DockWidget) SetTitle(title string) {
	d.title = title
	if d.group != nil {
		d.group.relayoutChrome()
	}
}

// IsFloating reports whether the dock widget is shown in a floating window.
func (d *DockWidget) IsFloating() bool {
	return d.group != nil && d.group.State() == StateFloating
}

// Close removes the dock widget from its group. An emptied group leaves
// its layout.
func (d *DockWidget) Close() error {
	if d.group == nil {
		return nil
	}
	return d.group.RemoveDockWidget(d)
}
