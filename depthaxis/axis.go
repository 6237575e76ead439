package depthaxis

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// epsilon widens a single-sample subdomain into a non-degenerate
// interval so that interval queries still capture its one depth.
const epsilon = 1e-10

// Axis is a strictly increasing sequence of sample depths, optionally
// partitioned into data subdomains separated by gaps. Immutable after
// construction except for the partition, which is identified once.
type Axis struct {
	name       string
	depths     []float64
	gaps       []Interval
	subdomains []Interval
	identified bool
}

// New constructs an Axis from a non-empty, strictly increasing depth
// slice. The input is deep-copied. Returns ErrEmptyAxis or
// ErrNotIncreasing on bad input. Complexity: O(D).
func New(name string, depths []float64) (*Axis, error) {
	if len(depths) == 0 {
		return nil, ErrEmptyAxis
	}
	for i := 0; i+1 < len(depths); i++ {
		if depths[i] >= depths[i+1] {
			return nil, ErrNotIncreasing
		}
	}
	d := make([]float64, len(depths))
	copy(d, depths)
	return &Axis{name: name, depths: d}, nil
}

// Name returns the axis identifier.
func (a *Axis) Name() string { return a.name }

// Size returns the number of samples.
func (a *Axis) Size() int { return len(a.depths) }

// Depths returns a copy of the sample depths.
func (a *Axis) Depths() []float64 {
	out := make([]float64, len(a.depths))
	copy(out, a.depths)
	return out
}

// Span returns the interval from the first to the last sample.
func (a *Axis) Span() Interval {
	return Interval{Start: a.depths[0], End: a.depths[len(a.depths)-1]}
}

// Spacing returns the first sample spacing, or 0 for a single-sample
// axis. Downstream thickness floors use this value.
func (a *Axis) Spacing() float64 {
	if len(a.depths) < 2 {
		return 0
	}
	return a.depths[1] - a.depths[0]
}

// MedianSpacing returns the median spacing between consecutive samples,
// or 0 for a single-sample axis. Complexity: O(D log D).
func (a *Axis) MedianSpacing() float64 {
	if len(a.depths) < 2 {
		return 0
	}
	spacing := make([]float64, len(a.depths)-1)
	for i := range spacing {
		spacing[i] = a.depths[i+1] - a.depths[i]
	}
	sort.Float64s(spacing)
	return stat.Quantile(0.5, stat.Empirical, spacing, nil)
}

// Identified reports whether gaps and subdomains have been identified.
func (a *Axis) Identified() bool { return a.identified }

// Gaps returns the identified gap intervals, or ErrGapsUnidentified.
func (a *Axis) Gaps() ([]Interval, error) {
	if !a.identified {
		return nil, ErrGapsUnidentified
	}
	out := make([]Interval, len(a.gaps))
	copy(out, a.gaps)
	return out, nil
}

// Subdomains returns the identified subdomain intervals, or
// ErrGapsUnidentified.
func (a *Axis) Subdomains() ([]Interval, error) {
	if !a.identified {
		return nil, ErrGapsUnidentified
	}
	out := make([]Interval, len(a.subdomains))
	copy(out, a.subdomains)
	return out, nil
}

// SplitAtGaps partitions the axis into contiguous-data subdomains
// separated by gaps. A gap is a spacing between consecutive samples
// larger than opts.Threshold × the gap metric (median spacing). The
// subdomains cover the full range minus the gaps, sorted and
// non-overlapping; a single-sample subdomain is widened by epsilon.
// Calling SplitAtGaps again replaces any previous partition.
// Complexity: O(D log D).
func (a *Axis) SplitAtGaps(opts GapOptions) (subdomains, gaps []Interval, err error) {
	if opts.Metric != SpacingMedian {
		return nil, nil, ErrUnknownMetric
	}
	if opts.Threshold <= 0 {
		return nil, nil, ErrBadThreshold
	}

	cutoff := opts.Threshold * a.MedianSpacing()
	var gapIdx []int
	for i := 0; i+1 < len(a.depths); i++ {
		if a.depths[i+1]-a.depths[i] > cutoff {
			gapIdx = append(gapIdx, i)
		}
	}

	gaps = make([]Interval, 0, len(gapIdx))
	for _, i := range gapIdx {
		gaps = append(gaps, Interval{Start: a.depths[i], End: a.depths[i+1]})
	}

	// Subdomain k runs from the sample after gap k-1 up to the sample
	// opening gap k; sentinels -1 and D-1 close off the two ends.
	bounds := make([]int, 0, len(gapIdx)+2)
	bounds = append(bounds, -1)
	bounds = append(bounds, gapIdx...)
	bounds = append(bounds, len(a.depths)-1)

	subdomains = make([]Interval, 0, len(bounds)-1)
	for k := 0; k+1 < len(bounds); k++ {
		from := a.depths[bounds[k]+1]
		to := a.depths[bounds[k+1]]
		if bounds[k]+1 == bounds[k+1] {
			from, to = from-epsilon, to+epsilon
		}
		subdomains = append(subdomains, Interval{Start: from, End: to})
	}

	a.gaps = append([]Interval(nil), gaps...)
	a.subdomains = append([]Interval(nil), subdomains...)
	a.identified = true
	return subdomains, gaps, nil
}

// SetPartition installs an externally identified partition. Gaps must
// strictly separate subdomains: both lists sorted, non-overlapping,
// and within the axis span; every gap must lie between two subdomains
// or at a subdomain boundary. Returns ErrBadPartition on violation.
func (a *Axis) SetPartition(subdomains, gaps []Interval) error {
	if len(subdomains) == 0 {
		return ErrBadPartition
	}
	if !sortedDisjoint(subdomains) || !sortedDisjoint(gaps) {
		return ErrBadPartition
	}
	span := a.Span()
	for _, iv := range subdomains {
		if iv.Start < span.Start-epsilon || iv.End > span.End+epsilon {
			return ErrBadPartition
		}
	}
	a.subdomains = append([]Interval(nil), subdomains...)
	a.gaps = append([]Interval(nil), gaps...)
	a.identified = true
	return nil
}

// sortedDisjoint reports whether intervals are individually ordered,
// depth-sorted, and pairwise non-overlapping.
func sortedDisjoint(ivs []Interval) bool {
	for i, iv := range ivs {
		if iv.Start > iv.End {
			return false
		}
		if i > 0 && iv.Start < ivs[i-1].End {
			return false
		}
	}
	return true
}

// IntervalIndices returns the half-open index range [lo, hi) of samples
// with from ≤ depth ≤ to. Complexity: O(log D).
func (a *Axis) IntervalIndices(from, to float64) (lo, hi int) {
	lo = sort.SearchFloat64s(a.depths, from)
	hi = sort.Search(len(a.depths), func(i int) bool { return a.depths[i] > to })
	return lo, hi
}
