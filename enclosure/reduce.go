package enclosure

import "github.com/geowav/scalespace/depthaxis"

// Reduce — generic bottom-up extremal reduction
//
// Description:
//
//	Computes, for every region, the extreme value among itself and all
//	its descendants: value(id) seeds each region, and better(candidate,
//	incumbent) decides replacement. One pass over the bottom-up order
//	folds every finalized region into its parent, so value is evaluated
//	exactly once per region and shared subtrees are never recomputed.
//
// Contract:
//
//	The forest is finite and acyclic with parent chains bounded by the
//	scale count, so the pass always terminates. For a single-region
//	forest, Reduce(f, value, better)[id] == value(id) for any pair.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
func Reduce[V any](f *Forest, value func(id int) V, better func(candidate, incumbent V) bool) []V {
	reduced := make([]V, f.Len())
	for id := range reduced {
		reduced[id] = value(id)
	}
	// Every region precedes its parent in the bottom-up order, so each
	// region is final when it is folded upward.
	for _, id := range f.order {
		p := f.parent[id]
		if p == Root {
			continue
		}
		if better(reduced[id], reduced[p]) {
			reduced[p] = reduced[id]
		}
	}
	return reduced
}

// Intervals returns each region's final depth interval: the minimum
// descendant min-depth and maximum descendant max-depth, pulled up by
// two Reduce passes. Complexity: O(n).
func (f *Forest) Intervals() []depthaxis.Interval {
	mins := Reduce(f,
		func(id int) float64 { return f.regions[id].MinDepth },
		func(candidate, incumbent float64) bool { return candidate < incumbent })
	maxs := Reduce(f,
		func(id int) float64 { return f.regions[id].MaxDepth },
		func(candidate, incumbent float64) bool { return candidate > incumbent })

	out := make([]depthaxis.Interval, f.Len())
	for id := range out {
		out[id] = depthaxis.Interval{Start: mins[id], End: maxs[id]}
	}
	return out
}

// Thicknesses returns each region's thickness: the interval width
// floored at the sample spacing. Complexity: O(n).
func (f *Forest) Thicknesses(spacing float64) []float64 {
	intervals := f.Intervals()
	out := make([]float64, len(intervals))
	for id, iv := range intervals {
		out[id] = iv.Width()
		if out[id] < spacing {
			out[id] = spacing
		}
	}
	return out
}
