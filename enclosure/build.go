package enclosure

import (
	"sort"

	"github.com/geowav/scalespace/grid"
	"github.com/geowav/scalespace/label"
)

// Build — enclosure forest construction
//
// Description:
//
//	Walks an S×D label grid once to find every region's topmost and
//	bottommost occurrences and depth extent, then assigns each region
//	the parent found one scale step coarser above its topmost
//	occurrence. Regions already at the coarsest scale, or whose
//	one-step-coarser cell is invalid, root at Root - an expected
//	outcome, not an error.
//
// Algorithm Outline:
//  1. Scan row-major from the finest scale. The first visit to a label
//     in a row is at that row's smallest depth index, so the running
//     "largest row seen" update realizes the documented tie-break for
//     both occurrences.
//  2. Parent of region r with topmost (s, x): Root if s+1 is out of
//     range or (s+1, x) is invalid, else the label at (s+1, x). The
//     parent's topmost scale strictly exceeds s, so parent links are
//     acyclic and chains terminate at Root within S steps.
//  3. Group children by parent into one CSR adjacency, children
//     ascending; record the bottom-up order (ascending topmost scale).
//
// Complexity:
//
//	Time   = O(S×D + n log n)
//	Memory = O(S×D output aside, n + edges)
//
// invalid may be nil, meaning every cell is valid. count is the number
// of regions in the labeling; a count of 0 yields an empty forest.
func Build(labels *grid.Grid[int], count int, depths, scales []float64, invalid *grid.Grid[bool]) (*Forest, error) {
	if labels == nil {
		return nil, ErrNilLabels
	}
	if len(scales) != labels.Rows() || len(depths) != labels.Cols() {
		return nil, ErrShapeMismatch
	}
	if invalid != nil && !invalid.SameShape(labels.Rows(), labels.Cols()) {
		return nil, ErrShapeMismatch
	}

	f := &Forest{
		regions: make([]Region, count),
		parent:  make([]int, count),
	}
	seen := make([]bool, count)

	// One row-major pass: occurrences and own extents.
	for r := 0; r < labels.Rows(); r++ {
		for c := 0; c < labels.Cols(); c++ {
			id := labels.At(r, c)
			if id == label.Unlabeled {
				continue
			}
			if id < 0 || id >= count {
				return nil, ErrBadLabel
			}
			reg := &f.regions[id]
			if !seen[id] {
				seen[id] = true
				reg.Top = Coord{Scale: r, Depth: c}
				reg.Bottom = Coord{Scale: r, Depth: c}
				reg.MinDepth, reg.MaxDepth = depths[c], depths[c]
				continue
			}
			if r > reg.Top.Scale {
				// First visit in a strictly coarser row: smallest depth
				// index of that row, per the scan order.
				reg.Top = Coord{Scale: r, Depth: c}
			}
			if depths[c] < reg.MinDepth {
				reg.MinDepth = depths[c]
			}
			if depths[c] > reg.MaxDepth {
				reg.MaxDepth = depths[c]
			}
		}
	}

	// Parent assignment at each topmost occurrence.
	for id := 0; id < count; id++ {
		s, x := f.regions[id].Top.Scale, f.regions[id].Top.Depth
		f.parent[id] = Root
		if s+1 >= labels.Rows() {
			continue
		}
		if invalid != nil && invalid.At(s+1, x) {
			continue
		}
		if pid := labels.At(s+1, x); pid != label.Unlabeled {
			f.parent[id] = pid
		}
	}

	f.buildAdjacency()
	f.buildOrder()
	return f, nil
}

// buildAdjacency fills the CSR child arrays and the root list from the
// parent array. Iterating child ids ascending keeps every child list
// and the root list ordered.
func (f *Forest) buildAdjacency() {
	n := len(f.regions)
	f.childStart = make([]int, n+1)
	for _, p := range f.parent {
		if p != Root {
			f.childStart[p+1]++
		}
	}
	for i := 0; i < n; i++ {
		f.childStart[i+1] += f.childStart[i]
	}
	f.children = make([]int, f.childStart[n])
	fill := make([]int, n)
	f.roots = f.roots[:0]
	for id, p := range f.parent {
		if p == Root {
			f.roots = append(f.roots, id)
			continue
		}
		f.children[f.childStart[p]+fill[p]] = id
		fill[p]++
	}
}

// buildOrder records the bottom-up topological order: ascending topmost
// scale, ties by ascending id. A child's topmost scale is strictly
// smaller than its parent's, so every region precedes its parent.
func (f *Forest) buildOrder() {
	f.order = make([]int, len(f.regions))
	for i := range f.order {
		f.order[i] = i
	}
	sort.SliceStable(f.order, func(a, b int) bool {
		sa, sb := f.regions[f.order[a]].Top.Scale, f.regions[f.order[b]].Top.Scale
		if sa != sb {
			return sa < sb
		}
		return f.order[a] < f.order[b]
	})
}

// Relabel remaps region ids through perm (perm[old] = new) and rebuilds
// the adjacency and ordering. perm must be a bijection on 0..Len()-1.
// Occurrences and extents move with their regions.
func (f *Forest) Relabel(perm []int) error {
	n := len(f.regions)
	if len(perm) != n {
		return ErrBadPermutation
	}
	hit := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || hit[v] {
			return ErrBadPermutation
		}
		hit[v] = true
	}

	regions := make([]Region, n)
	parent := make([]int, n)
	for old, nid := range perm {
		regions[nid] = f.regions[old]
		if p := f.parent[old]; p == Root {
			parent[nid] = Root
		} else {
			parent[nid] = perm[p]
		}
	}
	f.regions, f.parent = regions, parent
	f.buildAdjacency()
	f.buildOrder()
	return nil
}
