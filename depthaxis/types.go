// Package depthaxis defines options and sentinel errors for depth-axis
// construction and gap identification.
package depthaxis

import "errors"

// Sentinel errors for depthaxis operations.
var (
	// ErrEmptyAxis indicates an axis with no samples.
	ErrEmptyAxis = errors.New("depthaxis: axis must have at least one sample")
	// ErrNotIncreasing indicates depths that are not strictly increasing.
	ErrNotIncreasing = errors.New("depthaxis: depths must be strictly increasing")
	// ErrGapsUnidentified indicates gaps/subdomains were requested before
	// SplitAtGaps or SetPartition was called.
	ErrGapsUnidentified = errors.New("depthaxis: gaps not identified yet - call SplitAtGaps first")
	// ErrBadThreshold indicates a non-positive gap threshold.
	ErrBadThreshold = errors.New("depthaxis: gap threshold must be positive")
	// ErrUnknownMetric indicates an unrecognized gap metric.
	ErrUnknownMetric = errors.New("depthaxis: unknown gap metric")
	// ErrBadPartition indicates a supplied gap/subdomain partition that is
	// unsorted, overlapping, or outside the axis range.
	ErrBadPartition = errors.New("depthaxis: invalid gap/subdomain partition")
)

// GapMetric selects how SplitAtGaps measures "significantly large"
// sample spacing.
type GapMetric int

const (
	// SpacingMedian flags a gap where the spacing between consecutive
	// samples exceeds Threshold × the median spacing of the whole axis.
	SpacingMedian GapMetric = iota
)

// Interval is a (start, end) depth pair with Start ≤ End.
// Gaps and subdomains are both expressed as Intervals.
type Interval struct {
	Start, End float64
}

// Contains reports whether depth x lies inside the closed interval.
func (iv Interval) Contains(x float64) bool {
	return x >= iv.Start && x <= iv.End
}

// Width returns End − Start.
func (iv Interval) Width() float64 { return iv.End - iv.Start }

// GapOptions configures SplitAtGaps.
//
//   - Metric    — gap detection metric; SpacingMedian is the only one.
//   - Threshold — a spacing larger than Threshold × metric is a gap.
//     Must be positive.
type GapOptions struct {
	Metric    GapMetric
	Threshold float64
}

// DefaultGapOptions returns GapOptions with Metric=SpacingMedian and
// Threshold=10: a gap is a spacing an order of magnitude above the
// median spacing.
func DefaultGapOptions() GapOptions {
	return GapOptions{Metric: SpacingMedian, Threshold: 10}
}
