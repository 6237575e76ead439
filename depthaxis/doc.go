// Package depthaxis models the down-hole depth axis a borehole signal
// is sampled on, and identifies the gaps and subdomains the masking
// stage needs.
//
// What:
//
//   - Axis wraps a non-empty, strictly increasing slice of sample
//     depths (metres from collar, or any consistent unit).
//   - SplitAtGaps finds gaps where the sample spacing exceeds
//     Threshold × the median spacing, and the complementary subdomains
//     of contiguous data covering the rest of the range.
//   - SetPartition accepts an externally identified gap/subdomain
//     partition, validated under the same rules.
//
// Why:
//
//   - Wavelet coefficients near a data gap or a domain boundary are
//     unreliable; every downstream mask is derived from this partition.
//   - Splitting must happen before a wavelet domain is constructed —
//     the orchestrator fails fast when Identified() is false.
//
// Complexity:
//
//   - New: O(D). SplitAtGaps: O(D log D) (median of spacings).
//   - IntervalIndices: O(log D).
//
// Options:
//
//   - GapOptions.Metric: gap detection metric (SpacingMedian only).
//   - GapOptions.Threshold: spacing multiple that counts as a gap
//     (default 10).
//
// Errors:
//
//   - ErrEmptyAxis: the axis needs at least one sample.
//   - ErrNotIncreasing: depths must be strictly increasing.
//   - ErrGapsUnidentified: gaps/subdomains requested before splitting.
//   - ErrBadThreshold: threshold must be positive.
//   - ErrUnknownMetric: unrecognized gap metric.
//   - ErrBadPartition: supplied partition is unsorted, overlapping, or
//     outside the axis range.
package depthaxis
