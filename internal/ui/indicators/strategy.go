package indicators

import (
	"github.com/bnema/dockyard/internal/domain/geom"
)

// IndicatorSize is the side of a classic indicator icon.
const IndicatorSize = 40

// Affordance is one visual hint published by a strategy.
type Affordance struct {
	Location DropLocation
	Rect     geom.Rect
	Active   bool
}

// strategy turns a resolved hit into affordances. Strategies never change
// which zone is resolved.
type strategy interface {
	affordances(h Hit, hotBand int) []Affordance
}

func strategyFor(t Type) strategy {
	switch t {
	case TypeSegmented:
		return segmented{}
	case TypeNone:
		return nullStrategy{}
	default:
		return classic{}
	}
}

// classic draws outer icons centred on each area edge and, over a hovered
// group, a cross of five inner icons.
type classic struct{}

func (classic) affordances(h Hit, _ int) []Affordance {
	if h.Area == nil {
		return nil
	}
	ar := h.Area.Geometry()
	c := ar.Center()
	half := IndicatorSize / 2

	out := []Affordance{
		{Location: DropLocationOuterLeft, Rect: square(ar.X, c.Y-half)},
		{Location: DropLocationOuterTop, Rect: square(c.X-half, ar.Y)},
		{Location: DropLocationOuterRight, Rect: square(ar.Right()-IndicatorSize, c.Y-half)},
		{Location: DropLocationOuterBottom, Rect: square(c.X-half, ar.Bottom()-IndicatorSize)},
	}

	center := c
	if h.Group != nil {
		center = h.Group.Geometry().Center()
	}
	if h.Group != nil || h.Area.IsEmpty() {
		out = append(out, Affordance{Location: DropLocationCenter, Rect: square(center.X-half, center.Y-half)})
	}
	if h.Group != nil {
		out = append(out,
			Affordance{Location: DropLocationLeft, Rect: square(center.X-half-IndicatorSize, center.Y-half)},
			Affordance{Location: DropLocationTop, Rect: square(center.X-half, center.Y-half-IndicatorSize)},
			Affordance{Location: DropLocationRight, Rect: square(center.X+half, center.Y-half)},
			Affordance{Location: DropLocationBottom, Rect: square(center.X-half, center.Y+half)},
		)
	}
	return markActive(out, h.Location)
}

func square(x, y int) geom.Rect {
	return geom.Rect{X: x, Y: y, Width: IndicatorSize, Height: IndicatorSize}
}

// segmented highlights the hot bands of the area and the edge and center
// regions of the hovered group.
type segmented struct{}

func (segmented) affordances(h Hit, hotBand int) []Affordance {
	if h.Area == nil {
		return nil
	}
	if h.Area.IsEmpty() {
		return markActive([]Affordance{{Location: DropLocationCenter, Rect: h.Area.Geometry()}}, h.Location)
	}

	out := edges(h.Area.Geometry(), hotBand, hotBand, true)
	if h.Group != nil {
		gr := h.Group.Geometry()
		qw, qh := gr.Width/4, gr.Height/4
		out = append(out, edges(gr, qw, qh, false)...)
		out = append(out, Affordance{Location: DropLocationCenter, Rect: gr.Inset(qw, qh)})
	}
	return markActive(out, h.Location)
}

func edges(r geom.Rect, w, h int, outerZones bool) []Affordance {
	segs := []Affordance{
		{Location: DropLocationLeft, Rect: geom.Rect{X: r.X, Y: r.Y, Width: w, Height: r.Height}},
		{Location: DropLocationTop, Rect: geom.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: h}},
		{Location: DropLocationRight, Rect: geom.Rect{X: r.Right() - w, Y: r.Y, Width: w, Height: r.Height}},
		{Location: DropLocationBottom, Rect: geom.Rect{X: r.X, Y: r.Bottom() - h, Width: r.Width, Height: h}},
	}
	if outerZones {
		for i := range segs {
			segs[i].Location = outer(segs[i].Location)
		}
	}
	return segs
}

type nullStrategy struct{}

func (nullStrategy) affordances(Hit, int) []Affordance { return nil }

func markActive(out []Affordance, loc DropLocation) []Affordance {
	for i := range out {
		out[i].Active = out[i].Location == loc
	}
	return out
}
