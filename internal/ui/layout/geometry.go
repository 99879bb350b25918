package layout

import (
	"github.com/bnema/dockyard/internal/domain/geom"
)

// setGeometry assigns r to the item and lays out its subtree. An item never
// takes less than its minimum: a smaller rectangle is grown in place.
func (it *Item) setGeometry(r geom.Rect) {
	floor := it.MinSize()
	r.Width = max(r.Width, floor.Width)
	r.Height = max(r.Height, floor.Height)
	it.geometry = r

	if !it.container {
		if it.guest != nil {
			it.guest.SetGeometry(r)
		}
		return
	}

	vis := it.visibleChildren()
	if len(vis) == 0 {
		return
	}

	o := it.orientation
	sep := it.separatorThickness()
	available := r.Length(o) - sep*(len(vis)-1)
	lengths := distribute(vis, o, available)

	pos := r.Pos(o)
	crossPos := r.Pos(o.Other())
	crossLen := r.Length(o.Other())
	for i, c := range vis {
		cmin, cmax := c.MinSize(), c.MaxSize()
		cross := geom.Clamp(crossLen, cmin.Length(o.Other()), cmax.Length(o.Other()))

		var cr geom.Rect
		if o == geom.Horizontal {
			cr = geom.Rect{X: pos, Y: crossPos, Width: lengths[i], Height: cross}
		} else {
			cr = geom.Rect{X: crossPos, Y: pos, Width: cross, Height: lengths[i]}
		}
		c.setGeometry(cr)
		pos += lengths[i] + sep
	}
}

// distribute splits available among items proportionally to their percent,
// then moves the rounding and clamping error onto the items that still have
// room. The result only depends on the inputs, which makes layout passes
// idempotent.
func distribute(items []*Item, o geom.Orientation, available int) []int {
	n := len(items)
	lengths := make([]int, n)
	mins := make([]int, n)
	maxs := make([]int, n)
	weights := make([]float64, n)

	for i, c := range items {
		mins[i] = c.MinSize().Length(o)
		maxs[i] = c.MaxSize().Length(o)
		weights[i] = c.percent
	}

	share(lengths, weights, available, allIndexes(n))
	for i := range lengths {
		lengths[i] = geom.Clamp(lengths[i], mins[i], maxs[i])
	}

	for pass := 0; pass <= 2*n; pass++ {
		diff := available - sum(lengths)
		if diff == 0 {
			break
		}

		var candidates []int
		for i := range lengths {
			if (diff > 0 && lengths[i] < maxs[i]) || (diff < 0 && lengths[i] > mins[i]) {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			break
		}

		portions := make([]int, n)
		share(portions, weights, diff, candidates)
		changed := false
		for _, i := range candidates {
			next := geom.Clamp(lengths[i]+portions[i], mins[i], maxs[i])
			if next != lengths[i] {
				changed = true
			}
			lengths[i] = next
		}
		if !changed {
			// Every portion rounded to zero: hand the remainder out one unit
			// at a time.
			step := 1
			if diff < 0 {
				step = -1
			}
			for _, i := range candidates {
				if diff == 0 {
					break
				}
				lengths[i] += step
				diff -= step
			}
		}
	}
	return lengths
}

// share writes into out[idx] the cumulative-rounded split of total weighted
// by weights. Equal weights are used when the selected weights sum to zero.
func share(out []int, weights []float64, total int, idx []int) {
	var wsum float64
	for _, i := range idx {
		wsum += weights[i]
	}

	acc, prev := 0.0, 0
	for k, i := range idx {
		w := 1.0 / float64(len(idx))
		if wsum > 0 {
			w = weights[i] / wsum
		}
		acc += w
		end := geom.Round(acc * float64(total))
		if k == len(idx)-1 {
			end = total
		}
		out[i] = end - prev
		prev = end
	}
}

func allIndexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func sum(v []int) int {
	total := 0
	for _, x := range v {
		total += x
	}
	return total
}

// recomputePercents derives each visible child's share from its current
// length.
func (it *Item) recomputePercents(lengths map[*Item]int) {
	total := 0
	for _, l := range lengths {
		total += l
	}
	if total <= 0 {
		return
	}
	for c, l := range lengths {
		c.percent = float64(l) / float64(total)
	}
}
