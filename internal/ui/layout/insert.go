package layout

import (
	"fmt"

	"github.com/bnema/dockyard/internal/domain/geom"
)

// Location is where an item is inserted relative to another one.
type Location int

const (
	LocationNone Location = iota
	LocationLeft
	LocationTop
	LocationRight
	LocationBottom
)

// String returns a lowercase name.
func (loc Location) String() string {
	switch loc {
	case LocationLeft:
		return "left"
	case LocationTop:
		return "top"
	case LocationRight:
		return "right"
	case LocationBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Orientation returns the split axis an insertion at loc needs.
func (loc Location) Orientation() geom.Orientation {
	if loc == LocationTop || loc == LocationBottom {
		return geom.Vertical
	}
	return geom.Horizontal
}

// leading reports whether the new item goes before its neighbour.
func (loc Location) leading() bool {
	return loc == LocationLeft || loc == LocationTop
}

// InsertGuest wraps g in a new leaf and inserts it at loc relative to
// relativeTo. A nil relativeTo targets the whole layout (outer edges).
func (l *Layout) InsertGuest(g Guest, loc Location, relativeTo *Item) (*Item, error) {
	it, err := NewItem(g)
	if err != nil {
		return nil, err
	}
	if err := l.InsertItem(it, loc, relativeTo); err != nil {
		return nil, err
	}
	return it, nil
}

// InsertItem inserts a detached item, leaf or subtree, at loc relative to
// relativeTo. The tree is left untouched when the result cannot fit a
// fixed-size layout.
func (l *Layout) InsertItem(it *Item, loc Location, relativeTo *Item) error {
	switch {
	case it == nil:
		return ErrNilGuest
	case it.parent != nil || it.layout != nil:
		return ErrItemAttached
	case relativeTo != nil && relativeTo.layout != l:
		return fmt.Errorf("insert relative to item %d: %w", relativeTo.id, ErrItemNotFound)
	case loc == LocationNone:
		loc = LocationRight
	}

	snap := l.snapshot()
	if relativeTo == nil {
		relativeTo = l.root
	}

	var parent *Item
	if relativeTo == l.root {
		parent = l.insertAtRoot(it, loc)
	} else {
		parent = l.insertNextTo(it, loc, relativeTo)
	}
	it.setLayout(l)

	if err := l.relayoutFrom(parent); err != nil {
		l.restore(snap)
		it.parent = nil
		it.setLayout(nil)
		return fmt.Errorf("insert %s of item: %w", loc, err)
	}

	l.logger.Debug().
		Uint64("item", it.id).
		Str("location", loc.String()).
		Int("items", len(l.Items())).
		Msg("item inserted")
	return nil
}

func (l *Layout) insertAtRoot(it *Item, loc Location) *Item {
	root := l.root
	want := loc.Orientation()

	if len(root.children) <= 1 {
		root.orientation = want
	}
	if root.orientation == want {
		idx := len(root.children)
		if loc.leading() {
			idx = 0
		}
		insertChild(root, it, idx)
		return root
	}

	// Orientation differs: push the current children one level down so the
	// root keeps its identity.
	wrapped := newContainer(root.orientation)
	wrapped.children = root.children
	wrapped.layout = l
	l.nextID++
	wrapped.id = l.nextID
	wrapped.geometry = root.geometry
	for _, c := range wrapped.children {
		c.parent = wrapped
	}

	root.orientation = want
	root.children = nil
	wrapped.parent = root
	it.parent = root
	wrapped.percent, it.percent = 0.5, 0.5
	if loc.leading() {
		root.children = []*Item{it, wrapped}
	} else {
		root.children = []*Item{wrapped, it}
	}
	return root
}

func (l *Layout) insertNextTo(it *Item, loc Location, rel *Item) *Item {
	parent := rel.parent
	want := loc.Orientation()
	idx := parent.indexOf(rel)

	if parent.orientation == want || len(parent.children) == 1 {
		parent.orientation = want
		if !loc.leading() {
			idx++
		}
		insertChild(parent, it, idx)
		return parent
	}

	// Replace rel by a container holding both.
	c := newContainer(want)
	c.layout = l
	l.nextID++
	c.id = l.nextID
	c.parent = parent
	c.percent = rel.percent
	c.geometry = rel.geometry
	parent.children[idx] = c

	rel.parent, it.parent = c, c
	rel.percent, it.percent = 0.5, 0.5
	if loc.leading() {
		c.children = []*Item{it, rel}
	} else {
		c.children = []*Item{rel, it}
	}
	return c
}

// insertChild puts it at idx and gives it an equal share, scaling the
// existing visible siblings down.
func insertChild(parent, it *Item, idx int) {
	n := len(parent.visibleChildren())
	it.percent = 1.0 / float64(n+1)
	scale := float64(n) / float64(n+1)
	for _, c := range parent.children {
		c.percent *= scale
	}

	idx = geom.Clamp(idx, 0, len(parent.children))
	parent.children = append(parent.children, nil)
	copy(parent.children[idx+1:], parent.children[idx:])
	parent.children[idx] = it
	it.parent = parent
}

// RemoveItem detaches it, leaf or subtree, from the layout. Containers left
// with a single child collapse into that child. The removed item keeps its
// own subtree and can be inserted elsewhere.
func (l *Layout) RemoveItem(it *Item) error {
	if it == nil || it.layout != l || it == l.root {
		return ErrItemNotFound
	}

	parent := it.parent
	idx := parent.indexOf(it)
	parent.children = append(parent.children[:idx], parent.children[idx+1:]...)
	it.parent = nil
	it.setLayout(nil)

	affected := l.collapse(parent)
	if err := l.relayoutFrom(affected); err != nil {
		// Removing items only lowers the minimum.
		l.logger.Warn().Err(err).Msg("relayout after removal failed")
	}

	l.logger.Debug().Int("items", len(l.Items())).Msg("item removed")
	return nil
}

// collapse removes redundant containers around c and returns the container
// that must be laid out again.
func (l *Layout) collapse(c *Item) *Item {
	if c == l.root {
		if len(c.children) == 1 && c.children[0].container {
			only := c.children[0]
			c.orientation = only.orientation
			c.children = only.children
			for _, gc := range c.children {
				gc.parent = c
			}
		}
		return c
	}

	switch len(c.children) {
	case 0:
		gp := c.parent
		idx := gp.indexOf(c)
		gp.children = append(gp.children[:idx], gp.children[idx+1:]...)
		return l.collapse(gp)
	case 1:
		gp := c.parent
		only := c.children[0]
		only.parent = gp
		only.percent = c.percent
		gp.children[gp.indexOf(c)] = only
		return l.collapse(gp)
	}
	return c
}

// SuggestedDropRect predicts the rectangle an item constrained by min and
// max would get if inserted at loc relative to relativeTo, or relative to
// the whole layout when relativeTo is nil.
func (l *Layout) SuggestedDropRect(loc Location, relativeTo *Item, minSize, maxSize geom.Size) geom.Rect {
	base := l.Geometry()
	if relativeTo != nil && relativeTo.layout == l {
		base = relativeTo.geometry
	}
	if loc == LocationNone {
		return base
	}

	o := loc.Orientation()
	length := geom.Clamp(base.Length(o)/2, minSize.Length(o), maxSize.Length(o))
	length = min(length, base.Length(o))

	r := base
	switch loc {
	case LocationLeft:
		r.Width = length
	case LocationRight:
		r.X = base.Right() - length
		r.Width = length
	case LocationTop:
		r.Height = length
	case LocationBottom:
		r.Y = base.Bottom() - length
		r.Height = length
	}
	return r
}

// TakeAll detaches the whole tree and leaves the layout empty. A single
// top-level child is returned as is; several come back inside a new
// container keeping the root orientation.
func (l *Layout) TakeAll() (*Item, error) {
	root := l.root
	if len(root.children) == 0 {
		return nil, fmt.Errorf("take all from %s: %w", l.name, ErrItemNotFound)
	}

	var out *Item
	if len(root.children) == 1 {
		out = root.children[0]
	} else {
		out = newContainer(root.orientation)
		out.children = root.children
		out.geometry = root.geometry
		for _, c := range out.children {
			c.parent = out
		}
	}
	out.parent = nil
	out.percent = 1
	out.setLayout(nil)
	root.children = nil

	l.Relayout()
	return out, nil
}
