// Package enclosure defines the forest arena and sentinel errors for
// region-hierarchy construction.
package enclosure

import "errors"

// Root is the synthetic parent id of regions with no coarser-scale
// parent. It is never a region id.
const Root = -1

// Sentinel errors for enclosure operations.
var (
	// ErrNilLabels indicates a nil label grid.
	ErrNilLabels = errors.New("enclosure: label grid must not be nil")
	// ErrShapeMismatch indicates label grid, validity grid and axes of
	// inconsistent shapes.
	ErrShapeMismatch = errors.New("enclosure: label grid, validity grid and axes must agree in shape")
	// ErrBadLabel indicates a cell id outside the dense 0..count-1 range.
	ErrBadLabel = errors.New("enclosure: label id outside the dense region range")
	// ErrBadPermutation indicates a Relabel mapping that is not a
	// bijection on 0..count-1.
	ErrBadPermutation = errors.New("enclosure: relabel mapping must be a bijection on region ids")
)

// Coord is a grid coordinate: Scale is the row index on the fine→coarse
// scale axis, Depth the column index on the depth axis.
type Coord struct {
	Scale, Depth int
}

// Region holds the per-region geometry computed by Build.
//
//   - Top    — occurrence at the largest scale index carrying the
//     label, ties broken by smallest depth index.
//   - Bottom — occurrence at the smallest scale index, same tie-break.
//   - MinDepth, MaxDepth — the region's own depth extent (over all its
//     cells), before descendants are folded in by Reduce.
type Region struct {
	Top, Bottom        Coord
	MinDepth, MaxDepth float64
}

// Forest is the enclosure hierarchy over a dense arena of regions.
// Children are stored CSR-style: Children(p) is the slice
// children[childStart[p]:childStart[p+1]], ordered by ascending id.
type Forest struct {
	regions    []Region
	parent     []int // Root or a region id one scale step coarser
	childStart []int // len = Len()+1
	children   []int // concatenated child lists
	roots      []int // regions whose parent is Root, ascending
	order      []int // bottom-up order: ascending Top.Scale, then id
}

// Len returns the number of regions.
func (f *Forest) Len() int { return len(f.regions) }

// Region returns the geometry of region id.
func (f *Forest) Region(id int) Region { return f.regions[id] }

// Parent returns region id's parent, or Root.
func (f *Forest) Parent(id int) int { return f.parent[id] }

// Children returns region id's children, ordered by ascending id.
// The returned slice aliases the arena and must not be mutated.
func (f *Forest) Children(id int) []int {
	return f.children[f.childStart[id]:f.childStart[id+1]]
}

// Roots returns the regions parented at Root, ascending.
func (f *Forest) Roots() []int {
	out := make([]int, len(f.roots))
	copy(out, f.roots)
	return out
}

// BottomUp returns all region ids in bottom-up topological order:
// ascending topmost scale, ties by ascending id. Every region precedes
// its parent.
func (f *Forest) BottomUp() []int {
	out := make([]int, len(f.order))
	copy(out, f.order)
	return out
}
