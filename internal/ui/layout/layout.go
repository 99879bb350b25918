// Package layout implements the geometry item tree that partitions a
// window among dock groups and the separators between them.
package layout

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/logging"
)

// DefaultSeparatorThickness is used when no thickness option is given.
const DefaultSeparatorThickness = 5

// Layout owns the root item of one window: a main window drop area, a
// floating window, or an MDI area.
type Layout struct {
	name               string
	root               *Item
	origin             geom.Point
	size               geom.Size
	fixed              bool
	separatorThickness int
	minItemSize        geom.Size
	nextID             uint64

	observers  map[int]func()
	nextObsKey int

	logger zerolog.Logger
}

// Option configures a Layout at construction.
type Option func(*Layout)

// WithName sets the name used in logs.
func WithName(name string) Option {
	return func(l *Layout) { l.name = name }
}

// WithFixedSize pins the layout to s. Operations that would need more room
// fail with ErrUnsatisfiableMinimum instead of growing the layout.
func WithFixedSize(s geom.Size) Option {
	return func(l *Layout) {
		l.fixed = true
		l.size = s
	}
}

// WithSeparatorThickness sets the gap left between siblings.
func WithSeparatorThickness(px int) Option {
	return func(l *Layout) { l.separatorThickness = max(px, 0) }
}

// WithMinimumItemSize overrides the absolute floor applied to every leaf.
// Frontends measuring in terminal cells use a much smaller floor than
// pixel-based ones.
func WithMinimumItemSize(s geom.Size) Option {
	return func(l *Layout) { l.minItemSize = s }
}

// New creates an empty layout with a horizontal root container.
func New(ctx context.Context, opts ...Option) *Layout {
	log := logging.FromContext(ctx)

	l := &Layout{
		name:               "layout",
		separatorThickness: DefaultSeparatorThickness,
		minItemSize:        geom.HardcodedMinimumSize,
		observers:          make(map[int]func()),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.logger = log.With().Str("component", "layout").Str("layout", l.name).Logger()
	l.root = newContainer(geom.Horizontal)
	l.root.setLayout(l)
	l.root.geometry = geom.RectFrom(l.origin, l.size)
	return l
}

// Name returns the layout name.
func (l *Layout) Name() string { return l.name }

// Root returns the root container.
func (l *Layout) Root() *Item { return l.root }

// Size returns the current size of the layout.
func (l *Layout) Size() geom.Size { return l.size }

// Geometry returns the layout rectangle in global coordinates.
func (l *Layout) Geometry() geom.Rect { return geom.RectFrom(l.origin, l.size) }

// IsFixedSize reports whether the layout refuses to grow.
func (l *Layout) IsFixedSize() bool { return l.fixed }

// SeparatorThickness returns the gap between siblings.
func (l *Layout) SeparatorThickness() int { return l.separatorThickness }

// MinSize returns the minimum size of the whole tree.
func (l *Layout) MinSize() geom.Size { return l.root.MinSize() }

// MaxSize returns the maximum size of the whole tree.
func (l *Layout) MaxSize() geom.Size { return l.root.MaxSize() }

// IsEmpty reports whether the layout hosts no items.
func (l *Layout) IsEmpty() bool { return len(l.root.children) == 0 }

// Items returns all leaves in layout order.
func (l *Layout) Items() []*Item { return l.root.Leaves() }

// VisibleCount returns the number of visible leaves.
func (l *Layout) VisibleCount() int {
	n := 0
	for _, it := range l.Items() {
		if it.IsVisible() {
			n++
		}
	}
	return n
}

// ItemForGuest returns the leaf hosting g.
func (l *Layout) ItemForGuest(g Guest) (*Item, bool) {
	var found *Item
	l.root.Walk(func(it *Item) bool {
		if !it.container && it.guest == g {
			found = it
			return false
		}
		return true
	})
	return found, found != nil
}

// Contains reports whether it belongs to this layout.
func (l *Layout) Contains(it *Item) bool {
	return it != nil && it.layout == l
}

// SetGeometry moves and resizes the layout. A resizable layout grows to its
// minimum when r is too small; a fixed-size layout returns
// ErrUnsatisfiableMinimum and keeps its current geometry.
func (l *Layout) SetGeometry(r geom.Rect) error {
	minSize := l.MinSize()
	if r.Width < minSize.Width || r.Height < minSize.Height {
		if l.fixed {
			return fmt.Errorf("resize %s to %dx%d (min %dx%d): %w",
				l.name, r.Width, r.Height, minSize.Width, minSize.Height, ErrUnsatisfiableMinimum)
		}
		r.Width = max(r.Width, minSize.Width)
		r.Height = max(r.Height, minSize.Height)
	}

	changed := r != l.Geometry()
	l.origin = r.TopLeft()
	l.size = r.Size()
	l.root.setGeometry(r)
	if changed {
		l.logger.Debug().
			Int("x", r.X).Int("y", r.Y).
			Int("width", r.Width).Int("height", r.Height).
			Msg("layout geometry changed")
	}
	l.notify()
	return nil
}

// SetSize resizes the layout keeping its origin.
func (l *Layout) SetSize(s geom.Size) error {
	return l.SetGeometry(geom.RectFrom(l.origin, s))
}

// Move translates the layout to p keeping its size.
func (l *Layout) Move(p geom.Point) {
	// Size is unchanged so this cannot fail on the minimum check.
	_ = l.SetGeometry(geom.RectFrom(p, l.size))
}

// Relayout re-applies the current geometry, for instance after a guest
// changed visibility or constraints.
func (l *Layout) Relayout() {
	if err := l.SetGeometry(l.Geometry()); err != nil {
		l.logger.Warn().Err(err).Msg("relayout failed")
	}
}

// OnInvalidated registers fn to be called synchronously after the layout
// geometry or structure changed. The returned func removes it.
func (l *Layout) OnInvalidated(fn func()) (cancel func()) {
	key := l.nextObsKey
	l.nextObsKey++
	l.observers[key] = fn
	return func() { delete(l.observers, key) }
}

func (l *Layout) notify() {
	for i := 0; i < l.nextObsKey; i++ {
		if fn, ok := l.observers[i]; ok {
			fn()
		}
	}
}

// relayoutFrom lays out c again, walking up to the first ancestor whose
// current rectangle still holds its minimum. The root resizes the layout.
func (l *Layout) relayoutFrom(c *Item) error {
	for c != nil && c != l.root && !c.fits() {
		c = c.parent
	}
	if c == nil || c == l.root {
		return l.SetGeometry(l.Geometry())
	}
	c.setGeometry(c.geometry)
	l.notify()
	return nil
}

// snapshot records the tree shape so a failed operation can be rolled back.
type snapshot struct {
	states []itemState
	origin geom.Point
	size   geom.Size
}

type itemState struct {
	it          *Item
	parent      *Item
	children    []*Item
	orientation geom.Orientation
	percent     float64
	geometry    geom.Rect
}

func (l *Layout) snapshot() snapshot {
	s := snapshot{origin: l.origin, size: l.size}
	l.root.Walk(func(it *Item) bool {
		s.states = append(s.states, itemState{
			it:          it,
			parent:      it.parent,
			children:    it.Children(),
			orientation: it.orientation,
			percent:     it.percent,
			geometry:    it.geometry,
		})
		return true
	})
	return s
}

func (l *Layout) restore(s snapshot) {
	for _, st := range s.states {
		st.it.parent = st.parent
		st.it.children = st.children
		st.it.orientation = st.orientation
		st.it.percent = st.percent
		st.it.geometry = st.geometry
		st.it.layout = l
	}
	l.origin = s.origin
	l.size = s.size
	l.root.setGeometry(geom.RectFrom(l.origin, l.size))
}
