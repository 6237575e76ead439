package wavedomain

import (
	"math/cmplx"
	"sort"

	"github.com/geowav/scalespace/depthaxis"
	"github.com/geowav/scalespace/enclosure"
	"github.com/geowav/scalespace/grid"
	"github.com/geowav/scalespace/label"
	"github.com/geowav/scalespace/mask"
	"github.com/geowav/scalespace/wavelet"
)

// Domain is the per-axis decomposition pipeline. All computation is
// synchronous and single-threaded; a Domain must not be shared across
// goroutines without external synchronization.
type Domain struct {
	name    string
	axis    *depthaxis.Axis
	eval    Evaluator
	params  wavelet.Params
	depths  []float64
	scales  []float64
	invalid *grid.Grid[bool]
	entries map[string]*entry
}

// entry is the cached pipeline state of one property.
type entry struct {
	transform *grid.Grid[complex128]
	effective *grid.Grid[bool] // base mask ∪ non-finite coefficients
	labeling  *label.Labeling
	sorted    bool
	tree      *Tree
}

// New — domain construction
//
// Description:
//
//	Binds a named domain to an identified depth axis and a transform
//	evaluator: the scale axis is derived from the axis spacing and the
//	parameters, and the combined gap/cone validity mask is built once
//	for all properties. The axis must have its gap/subdomain partition
//	identified (ErrAxisUnidentified otherwise).
//
// Complexity: O(S×D×(G+B)) for the mask.
func New(name string, axis *depthaxis.Axis, eval Evaluator, params wavelet.Params) (*Domain, error) {
	if axis == nil {
		return nil, ErrNilAxis
	}
	if eval == nil {
		return nil, ErrNilEvaluator
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if !axis.Identified() {
		return nil, ErrAxisUnidentified
	}

	dt := axis.Spacing()
	if dt <= 0 {
		dt = 1 // single-sample axis: any spacing yields one all-invalid scale
	}
	scales, err := wavelet.Scales(axis.Size(), dt, params)
	if err != nil {
		return nil, err
	}

	gaps, err := axis.Gaps()
	if err != nil {
		return nil, err
	}
	subdomains, err := axis.Subdomains()
	if err != nil {
		return nil, err
	}
	depths := axis.Depths()
	invalid, err := mask.Build(depths, scales, gaps, subdomains, params.EFolding)
	if err != nil {
		return nil, err
	}

	return &Domain{
		name:    name,
		axis:    axis,
		eval:    eval,
		params:  params,
		depths:  depths,
		scales:  scales,
		invalid: invalid,
		entries: make(map[string]*entry),
	}, nil
}

// Name returns the domain identifier.
func (d *Domain) Name() string { return d.name }

// Axis returns the depth axis the domain was built over.
func (d *Domain) Axis() *depthaxis.Axis { return d.axis }

// Depths returns a copy of the sample depths.
func (d *Domain) Depths() []float64 {
	out := make([]float64, len(d.depths))
	copy(out, d.depths)
	return out
}

// Scales returns a copy of the scale axis, fine→coarse.
func (d *Domain) Scales() []float64 {
	out := make([]float64, len(d.scales))
	copy(out, d.scales)
	return out
}

// Validity returns the combined S×D mask shared by all properties
// (true = invalid): gap cells and cone-of-influence cells. Per-property
// non-finite widening is not included. The grid aliases domain state
// and must not be mutated.
func (d *Domain) Validity() *grid.Grid[bool] { return d.invalid }

// Properties returns the names of all transformed properties, sorted.
func (d *Domain) Properties() []string {
	out := make([]string, 0, len(d.entries))
	for name := range d.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// AddTransform runs the evaluator on the property and caches the
// coefficient grid. A second call for the same name is a no-op unless
// force, which recomputes and drops the property's labeling and tree.
// Cells with NaN/Inf coefficients are marked invalid for this property.
// Complexity: evaluator cost + O(S×D).
func (d *Domain) AddTransform(prop Property, force bool) error {
	if len(prop.Values) != len(d.depths) {
		return ErrLengthMismatch
	}
	if e := d.entries[prop.Name]; e != nil && !force {
		return nil
	}

	tr, err := d.eval.Transform(prop.Values, d.depths, d.scales)
	if err != nil {
		return err
	}
	if tr == nil || !tr.SameShape(len(d.scales), len(d.depths)) {
		return ErrBadEvaluator
	}

	effective := d.invalid.Clone()
	for i := 0; i < tr.Len(); i++ {
		if c := tr.AtIndex(i); cmplx.IsNaN(c) || cmplx.IsInf(c) {
			effective.SetIndex(i, true)
		}
	}

	d.entries[prop.Name] = &entry{transform: tr, effective: effective}
	return nil
}

// Transform returns the cached coefficient grid of a property. The grid
// aliases domain state and must not be mutated.
func (d *Domain) Transform(name string) (*grid.Grid[complex128], error) {
	e := d.entries[name]
	if e == nil {
		return nil, ErrNoTransform
	}
	return e.transform, nil
}

// LabelDomains labels the sign regions of the property's real
// coefficient part against its validity mask and caches the result.
// The cache is reused when the sortBySize request is unchanged and
// force is false; otherwise the labeling is recomputed and the
// property's tree dropped. Complexity: O(S×D).
func (d *Domain) LabelDomains(name string, sortBySize, force bool) (*label.Labeling, error) {
	e := d.entries[name]
	if e == nil {
		return nil, ErrNoTransform
	}
	if e.labeling != nil && !force && e.sorted == sortBySize {
		return e.labeling, nil
	}

	re := grid.Map(e.transform, func(c complex128) float64 { return real(c) })
	labeling, err := label.Regions(re, e.effective, label.Options{SortBySize: sortBySize})
	if err != nil {
		return nil, err
	}
	e.labeling, e.sorted, e.tree = labeling, sortBySize, nil
	return labeling, nil
}

// Labels returns the cached labeling of a property.
func (d *Domain) Labels(name string) (*label.Labeling, error) {
	e := d.entries[name]
	if e == nil {
		return nil, ErrNoTransform
	}
	if e.labeling == nil {
		return nil, ErrNoLabels
	}
	return e.labeling, nil
}

// BuildLabelTree builds the enclosure forest of the property's labeled
// regions, with reduced depth intervals and thicknesses, and caches it.
// Idempotent unless force. Complexity: O(S×D + n log n).
func (d *Domain) BuildLabelTree(name string, force bool) (*Tree, error) {
	e := d.entries[name]
	if e == nil {
		return nil, ErrNoTransform
	}
	if e.labeling == nil {
		return nil, ErrNoLabels
	}
	if e.tree != nil && !force {
		return e.tree, nil
	}

	forest, err := enclosure.Build(e.labeling.IDs, e.labeling.Count, d.depths, d.scales, e.effective)
	if err != nil {
		return nil, err
	}
	e.tree = &Tree{
		Forest:      forest,
		Intervals:   forest.Intervals(),
		Thicknesses: forest.Thicknesses(d.axis.Spacing()),
	}
	return e.tree, nil
}

// Tree returns the cached label tree of a property.
func (d *Domain) Tree(name string) (*Tree, error) {
	e := d.entries[name]
	if e == nil {
		return nil, ErrNoTransform
	}
	if e.tree == nil {
		return nil, ErrNoTree
	}
	return e.tree, nil
}

// Records returns the flat reporting view of a property's regions,
// ascending by id.
func (d *Domain) Records(name string) ([]RegionRecord, error) {
	t, err := d.Tree(name)
	if err != nil {
		return nil, err
	}
	out := make([]RegionRecord, len(t.Intervals))
	for id, iv := range t.Intervals {
		out[id] = RegionRecord{
			ID:        id,
			MinDepth:  iv.Start,
			MaxDepth:  iv.End,
			Thickness: t.Thicknesses[id],
		}
	}
	return out, nil
}

// RankLabels renumbers the property's regions by descending thickness,
// ties broken by ascending current id: the thickest region becomes id
// 0. The cached label grid, forest, intervals and thicknesses are all
// remapped in place. Requires a built tree. Complexity: O(S×D + n log n).
func (d *Domain) RankLabels(name string) error {
	e := d.entries[name]
	if e == nil {
		return ErrNoTransform
	}
	if e.labeling == nil {
		return ErrNoLabels
	}
	if e.tree == nil {
		return ErrNoTree
	}

	n := e.labeling.Count
	rank := make([]int, n)
	for i := range rank {
		rank[i] = i
	}
	sort.SliceStable(rank, func(a, b int) bool {
		ta, tb := e.tree.Thicknesses[rank[a]], e.tree.Thicknesses[rank[b]]
		if ta != tb {
			return ta > tb
		}
		return rank[a] < rank[b]
	})
	perm := make([]int, n) // perm[old] = new
	for newID, oldID := range rank {
		perm[oldID] = newID
	}

	if err := e.tree.Forest.Relabel(perm); err != nil {
		return err
	}
	ids := e.labeling.IDs
	for i := 0; i < ids.Len(); i++ {
		if id := ids.AtIndex(i); id != label.Unlabeled {
			ids.SetIndex(i, perm[id])
		}
	}
	intervals := make([]depthaxis.Interval, n)
	thicknesses := make([]float64, n)
	for oldID, newID := range perm {
		intervals[newID] = e.tree.Intervals[oldID]
		thicknesses[newID] = e.tree.Thicknesses[oldID]
	}
	e.tree.Intervals, e.tree.Thicknesses = intervals, thicknesses
	return nil
}
