package layout

import (
	"fmt"

	"github.com/bnema/dockyard/internal/domain/geom"
)

// Separator is the draggable gap between two visible siblings. It holds no
// content; moving it resizes its two neighbours.
type Separator struct {
	layout    *Layout
	container *Item
	before    *Item
	after     *Item
	geometry  geom.Rect
}

// Orientation returns the split axis of the owning container. A separator
// in a horizontal container is a vertical bar.
func (s *Separator) Orientation() geom.Orientation { return s.container.orientation }

// Geometry returns the separator rectangle.
func (s *Separator) Geometry() geom.Rect { return s.geometry }

// Position returns the leading edge of the separator along its axis.
func (s *Separator) Position() int { return s.geometry.Pos(s.Orientation()) }

// Neighbours returns the items on each side.
func (s *Separator) Neighbours() (before, after *Item) { return s.before, s.after }

// Separators lists every separator of the layout, outer containers first.
func (l *Layout) Separators() []*Separator {
	var out []*Separator
	l.root.Walk(func(c *Item) bool {
		if !c.container {
			return true
		}
		vis := c.visibleChildren()
		o := c.orientation
		thickness := l.separatorThickness
		for i := 0; i+1 < len(vis); i++ {
			b := vis[i].geometry
			r := c.geometry
			if o == geom.Horizontal {
				r = geom.Rect{X: b.Right(), Y: r.Y, Width: thickness, Height: r.Height}
			} else {
				r = geom.Rect{X: r.X, Y: b.Bottom(), Width: r.Width, Height: thickness}
			}
			out = append(out, &Separator{
				layout:    l,
				container: c,
				before:    vis[i],
				after:     vis[i+1],
				geometry:  r,
			})
		}
		return true
	})
	return out
}

// SeparatorAt returns the separator under p.
func (l *Layout) SeparatorAt(p geom.Point) (*Separator, bool) {
	for _, s := range l.Separators() {
		if s.geometry.Contains(p) {
			return s, true
		}
	}
	return nil, false
}

// DragSeparator moves s by delta along its axis, growing one neighbour and
// shrinking the other. The delta is clamped so both neighbours stay within
// their min and max. Returns the delta actually applied.
func (l *Layout) DragSeparator(s *Separator, delta int) (int, error) {
	if s == nil || s.layout != l || !l.isCurrent(s) {
		return 0, ErrStaleSeparator
	}

	o := s.container.orientation
	bLen := s.before.geometry.Length(o)
	aLen := s.after.geometry.Length(o)
	bMin, bMax := s.before.MinSize().Length(o), s.before.MaxSize().Length(o)
	aMin, aMax := s.after.MinSize().Length(o), s.after.MaxSize().Length(o)

	hi := max(min(bMax-bLen, aLen-aMin), 0)
	lo := min(-min(bLen-bMin, aMax-aLen), 0)
	applied := geom.Clamp(delta, lo, hi)
	if applied == 0 {
		return 0, nil
	}

	lengths := make(map[*Item]int)
	for _, c := range s.container.visibleChildren() {
		lengths[c] = c.geometry.Length(o)
	}
	lengths[s.before] = bLen + applied
	lengths[s.after] = aLen - applied
	s.container.recomputePercents(lengths)

	s.container.setGeometry(s.container.geometry)
	l.notify()

	l.logger.Debug().
		Int("requested", delta).
		Int("applied", applied).
		Str("orientation", o.String()).
		Msg("separator moved")
	return applied, nil
}

// MoveSeparatorTo drags s so that its leading edge lands on pos.
func (l *Layout) MoveSeparatorTo(s *Separator, pos int) (int, error) {
	if s == nil {
		return 0, fmt.Errorf("move separator: %w", ErrStaleSeparator)
	}
	return l.DragSeparator(s, pos-s.Position())
}

func (l *Layout) isCurrent(s *Separator) bool {
	if s.container.layout != l || s.before.parent != s.container || s.after.parent != s.container {
		return false
	}
	vis := s.container.visibleChildren()
	for i := 0; i+1 < len(vis); i++ {
		if vis[i] == s.before && vis[i+1] == s.after {
			return true
		}
	}
	return false
}
