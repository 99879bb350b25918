package layout

import (
	"github.com/bnema/dockyard/internal/domain/geom"
)

// Guest is the content hosted by a leaf item. Dock groups implement it.
type Guest interface {
	MinSize() geom.Size
	MaxSize() geom.Size
	IsVisible() bool
	SetGeometry(geom.Rect)
}

// Item is a node of the geometry tree. A leaf wraps exactly one Guest; a
// container splits its rectangle among its children along its orientation.
// Items are owned by their parent; the root is owned by a Layout.
type Item struct {
	id          uint64
	layout      *Layout
	parent      *Item
	guest       Guest
	children    []*Item
	container   bool
	orientation geom.Orientation
	geometry    geom.Rect
	// percent is the share of the parent's usable length along its axis.
	percent float64
}

func newLeaf(g Guest) *Item {
	return &Item{guest: g, percent: 1}
}

func newContainer(o geom.Orientation) *Item {
	return &Item{container: true, orientation: o, percent: 1}
}

// NewItem creates a detached leaf for g, suitable for Layout.InsertItem.
func NewItem(g Guest) (*Item, error) {
	if g == nil {
		return nil, ErrNilGuest
	}
	return newLeaf(g), nil
}

// ID returns the item's identifier, unique within its layout.
func (it *Item) ID() uint64 { return it.id }

// Layout returns the layout the item belongs to, or nil when detached.
func (it *Item) Layout() *Layout { return it.layout }

// Parent returns the containing item; nil for the root and detached items.
func (it *Item) Parent() *Item { return it.parent }

// Guest returns the leaf content, nil for containers.
func (it *Item) Guest() Guest { return it.guest }

// IsContainer reports whether the item splits space among children.
func (it *Item) IsContainer() bool { return it.container }

// IsRoot reports whether the item is the root of its layout.
func (it *Item) IsRoot() bool { return it.layout != nil && it.layout.root == it }

// Orientation returns the split axis of a container.
func (it *Item) Orientation() geom.Orientation { return it.orientation }

// Geometry returns the rectangle last assigned to the item.
func (it *Item) Geometry() geom.Rect { return it.geometry }

// Percent returns the item's share of its parent.
func (it *Item) Percent() float64 { return it.percent }

// Children returns a copy of the child list.
func (it *Item) Children() []*Item {
	out := make([]*Item, len(it.children))
	copy(out, it.children)
	return out
}

// IsVisible reports whether the item takes space. A container is visible
// when any of its children is.
func (it *Item) IsVisible() bool {
	if !it.container {
		return it.guest != nil && it.guest.IsVisible()
	}
	for _, c := range it.children {
		if c.IsVisible() {
			return true
		}
	}
	return false
}

func (it *Item) visibleChildren() []*Item {
	out := make([]*Item, 0, len(it.children))
	for _, c := range it.children {
		if c.IsVisible() {
			out = append(out, c)
		}
	}
	return out
}

func (it *Item) separatorThickness() int {
	if it.layout == nil {
		return 0
	}
	return it.layout.separatorThickness
}

func (it *Item) floor() geom.Size {
	if it.layout == nil {
		return geom.HardcodedMinimumSize
	}
	return it.layout.minItemSize
}

// MinSize returns the smallest size the item accepts. Containers sum their
// visible children along the split axis, separators included, and take
// the largest child minimum across it.
func (it *Item) MinSize() geom.Size {
	if !it.container {
		if it.guest == nil {
			return it.floor()
		}
		return it.guest.MinSize().ExpandedTo(it.floor())
	}

	vis := it.visibleChildren()
	if len(vis) == 0 {
		return geom.Size{}
	}

	o := it.orientation
	along := it.separatorThickness() * (len(vis) - 1)
	cross := 0
	for _, c := range vis {
		m := c.MinSize()
		along += m.Length(o)
		cross = max(cross, m.Length(o.Other()))
	}
	return geom.Size{}.WithLength(o, along).WithLength(o.Other(), cross)
}

// MaxSize returns the largest size the item accepts, never below MinSize.
func (it *Item) MaxSize() geom.Size {
	if !it.container {
		if it.guest == nil {
			return geom.HardcodedMaximumSize
		}
		return it.guest.MaxSize().BoundedTo(geom.HardcodedMaximumSize).ExpandedTo(it.MinSize())
	}

	vis := it.visibleChildren()
	if len(vis) == 0 {
		return geom.HardcodedMaximumSize
	}

	o := it.orientation
	limit := geom.HardcodedMaximumSize
	along := it.separatorThickness() * (len(vis) - 1)
	cross := 0
	for _, c := range vis {
		m := c.MaxSize()
		along = geom.SaturatingAdd(along, m.Length(o), limit.Length(o))
		cross = max(cross, m.Length(o.Other()))
	}
	return geom.Size{}.WithLength(o, along).WithLength(o.Other(), cross).ExpandedTo(it.MinSize())
}

// Walk visits the item and its descendants depth-first. Returning false
// from fn stops the walk.
func (it *Item) Walk(fn func(*Item) bool) bool {
	if !fn(it) {
		return false
	}
	for _, c := range it.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Leaves returns the leaf items under it in layout order.
func (it *Item) Leaves() []*Item {
	var out []*Item
	it.Walk(func(n *Item) bool {
		if !n.container {
			out = append(out, n)
		}
		return true
	})
	return out
}

func (it *Item) indexOf(child *Item) int {
	for i, c := range it.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (it *Item) fits() bool {
	m := it.MinSize()
	return it.geometry.Width >= m.Width && it.geometry.Height >= m.Height
}

func (it *Item) setLayout(l *Layout) {
	it.Walk(func(n *Item) bool {
		n.layout = l
		if l != nil {
			l.nextID++
			n.id = l.nextID
		}
		return true
	})
}
