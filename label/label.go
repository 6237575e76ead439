package label

import (
	"sort"

	"github.com/geowav/scalespace/grid"
)

// neighborOffsets is the 4-connectivity stencil: adjacent in either
// scale or depth index, never diagonally.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Regions — sign-class connected-component labeling
//
// Description:
//
//	Partitions an S×D grid of real wavelet coefficients into maximal
//	4-connected regions of uniform sign, skipping invalid cells.
//
// Algorithm Outline:
//  1. Scan row-major from the finest scale. Each unvisited valid cell
//     of the non-negative class (value ≥ 0) seeds a BFS over same-class
//     valid neighbors; the component receives the next id 0,1,2,...
//  2. Repeat for the negative class; its components are offset by the
//     non-negative count, keeping ids contiguous from 0.
//  3. If opts.SortBySize, tally each id's occupied-scale count and
//     relabel in descending count, ties by ascending original id.
//
// Complexity:
//
//	Time   = O(S×D)
//	Memory = O(S×D)
//
// invalid may be nil, meaning every cell is valid.
// Returns ErrNilGrid or ErrShapeMismatch on bad input.
func Regions(re *grid.Grid[float64], invalid *grid.Grid[bool], opts Options) (*Labeling, error) {
	if re == nil {
		return nil, ErrNilGrid
	}
	if invalid != nil && !invalid.SameShape(re.Rows(), re.Cols()) {
		return nil, ErrShapeMismatch
	}

	ids, err := grid.New[int](re.Rows(), re.Cols())
	if err != nil {
		return nil, err
	}
	ids.Fill(Unlabeled)

	valid := func(i int) bool { return invalid == nil || !invalid.AtIndex(i) }

	npos := labelClass(re, ids, valid, false, 0)
	nneg := labelClass(re, ids, valid, true, npos)

	out := &Labeling{IDs: ids, Count: npos + nneg}
	if opts.SortBySize {
		sortBySize(out)
	}
	return out, nil
}

// labelClass labels all components of one sign class, assigning ids
// from base upward, and returns the number of components found.
func labelClass(re *grid.Grid[float64], ids *grid.Grid[int], valid func(int) bool, negative bool, base int) int {
	inClass := func(i int) bool { return (re.AtIndex(i) < 0) == negative }

	next := base
	queue := make([]int, 0, re.Len())
	for i := 0; i < re.Len(); i++ {
		if ids.AtIndex(i) != Unlabeled || !valid(i) || !inClass(i) {
			continue
		}
		// BFS to collect the component seeded at i.
		ids.SetIndex(i, next)
		queue = append(queue[:0], i)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ur, uc := re.Coordinate(u)
			for _, d := range neighborOffsets {
				vr, vc := ur+d[0], uc+d[1]
				if !re.InBounds(vr, vc) {
					continue
				}
				v := re.Index(vr, vc)
				if ids.AtIndex(v) != Unlabeled || !valid(v) || !inClass(v) {
					continue
				}
				ids.SetIndex(v, next)
				queue = append(queue, v)
			}
		}
		next++
	}
	return next - base
}

// sortBySize relabels l in place so that id 0 is the region occupying
// the most distinct scale rows. Ties keep ascending original id.
func sortBySize(l *Labeling) {
	counts := occupiedScales(l)

	order := make([]int, l.Count)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if counts[order[a]] != counts[order[b]] {
			return counts[order[a]] > counts[order[b]]
		}
		return order[a] < order[b]
	})

	remap := make([]int, l.Count)
	for rank, old := range order {
		remap[old] = rank
	}
	for i := 0; i < l.IDs.Len(); i++ {
		if id := l.IDs.AtIndex(i); id != Unlabeled {
			l.IDs.SetIndex(i, remap[id])
		}
	}
}

// occupiedScales returns, per id, the number of distinct scale rows in
// which the id appears. Invalid cells never contribute.
func occupiedScales(l *Labeling) []int {
	counts := make([]int, l.Count)
	seen := make([]int, l.Count)
	for i := range seen {
		seen[i] = -1
	}
	for r := 0; r < l.IDs.Rows(); r++ {
		for c := 0; c < l.IDs.Cols(); c++ {
			id := l.IDs.At(r, c)
			if id == Unlabeled || seen[id] == r {
				continue
			}
			seen[id] = r
			counts[id]++
		}
	}
	return counts
}
