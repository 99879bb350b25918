package indicators

import (
	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/layout"
)

// DefaultHotBand is the width of the outer zones along drop area edges.
const DefaultHotBand = 20

// Payload is what is being dragged, as seen by the resolver.
type Payload interface {
	Affinities() []string
	// Contains reports whether l may receive the payload. It is false for
	// the layout moving along with the drag.
	Contains(l *layout.Layout) bool
	MinSize() geom.Size
	MaxSize() geom.Size
	// Group returns the group moving as a whole, or nil.
	Group() *dock.Group
}

// Hit is the result of hit testing a pointer position.
type Hit struct {
	Area     *dock.DropArea
	Group    *dock.Group
	Location DropLocation
}

// IsNone reports whether nothing accepts the drop.
func (h Hit) IsNone() bool { return h.Location == DropLocationNone }

// Resolver maps a pointer position to a drop zone.
type Resolver struct {
	HotBand int
}

// Resolve hit tests areas, topmost first. The first area under p that may
// contain the payload is the candidate; it must accept the payload
// affinities.
func (r Resolver) Resolve(areas []*dock.DropArea, p geom.Point, payload Payload) Hit {
	for _, a := range areas {
		if !a.Geometry().Contains(p) || !payload.Contains(a.Layout()) {
			continue
		}
		if !a.Accepts(payload.Affinities()) {
			return Hit{}
		}
		return r.resolveIn(a, p, payload)
	}
	return Hit{}
}

func (r Resolver) resolveIn(a *dock.DropArea, p geom.Point, payload Payload) Hit {
	if a.IsEmpty() {
		return Hit{Area: a, Location: DropLocationCenter}
	}

	rect := a.Geometry()
	if loc, d := nearestEdge(rect, p); d < r.HotBand {
		return Hit{Area: a, Location: outer(loc)}
	}

	g, ok := a.GroupAt(p)
	if !ok {
		return Hit{Area: a}
	}
	if own := payload.Group(); own != nil && own == g {
		return Hit{Area: a, Group: g}
	}

	// Center tabs the payload in, which needs the same affinities as g.
	gr := g.Geometry()
	if gr.Inset(gr.Width/4, gr.Height/4).Contains(p) && g.AcceptsTab(payload.Affinities()) {
		return Hit{Area: a, Group: g, Location: DropLocationCenter}
	}
	loc, _ := nearestEdge(gr, p)
	return Hit{Area: a, Group: g, Location: loc}
}

// nearestEdge returns the edge of r closest to p and its distance. Ties go
// to Left, Right, Top then Bottom.
func nearestEdge(r geom.Rect, p geom.Point) (DropLocation, int) {
	candidates := [...]struct {
		loc  DropLocation
		dist int
	}{
		{DropLocationLeft, p.X - r.X},
		{DropLocationRight, r.Right() - 1 - p.X},
		{DropLocationTop, p.Y - r.Y},
		{DropLocationBottom, r.Bottom() - 1 - p.Y},
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.dist < best.dist {
			best = c
		}
	}
	return best.loc, best.dist
}

// Placement predicts the rectangle the payload would occupy after
// dropping at h.
func Placement(h Hit, payload Payload) geom.Rect {
	if h.IsNone() {
		return geom.Rect{}
	}
	l := h.Area.Layout()
	if h.Location == DropLocationCenter {
		if h.Group != nil {
			return h.Group.Geometry()
		}
		return h.Area.Geometry()
	}

	var rel *layout.Item
	if !h.Location.IsOuter() && h.Group != nil {
		rel, _ = h.Group.Item()
	}
	return l.SuggestedDropRect(h.Location.LayoutLocation(), rel, payload.MinSize(), payload.MaxSize())
}
