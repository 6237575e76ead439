// File: depthaxis/axis_test.go
package depthaxis_test

import (
	"testing"

	"github.com/geowav/scalespace/depthaxis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation checks the axis construction preconditions.
func TestNew_Validation(t *testing.T) {
	_, err := depthaxis.New("empty", nil)
	assert.ErrorIs(t, err, depthaxis.ErrEmptyAxis, "empty axis must be rejected")

	_, err = depthaxis.New("flat", []float64{1, 1, 2})
	assert.ErrorIs(t, err, depthaxis.ErrNotIncreasing, "repeated depth must be rejected")

	_, err = depthaxis.New("reversed", []float64{3, 2, 1})
	assert.ErrorIs(t, err, depthaxis.ErrNotIncreasing, "decreasing depths must be rejected")

	a, err := depthaxis.New("ok", []float64{0, 1, 2.5})
	require.NoError(t, err)
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, 1.0, a.Spacing())
}

// TestSplitAtGaps_MedianMetric splits an axis sampled every metre with
// one 25 m hole between 4 and 29:
//
//	depths: 0 1 2 3 4 | 29 30 31 32
//
// Median spacing is 1, so the 25 m spacing is a gap at threshold 10.
// Expect two subdomains (0,4) and (29,32) and one gap (4,29).
func TestSplitAtGaps_MedianMetric(t *testing.T) {
	depths := []float64{0, 1, 2, 3, 4, 29, 30, 31, 32}
	a, err := depthaxis.New("hole", depths)
	require.NoError(t, err)
	assert.False(t, a.Identified(), "fresh axis must not be identified")

	subs, gaps, err := a.SplitAtGaps(depthaxis.DefaultGapOptions())
	require.NoError(t, err)

	require.Len(t, gaps, 1)
	assert.Equal(t, depthaxis.Interval{Start: 4, End: 29}, gaps[0])

	require.Len(t, subs, 2)
	assert.Equal(t, depthaxis.Interval{Start: 0, End: 4}, subs[0])
	assert.Equal(t, depthaxis.Interval{Start: 29, End: 32}, subs[1])

	assert.True(t, a.Identified())
	got, err := a.Subdomains()
	require.NoError(t, err)
	assert.Equal(t, subs, got)
}

// TestSplitAtGaps_NoGaps covers the uniform axis: a single subdomain
// spanning the whole range and an empty gap list.
func TestSplitAtGaps_NoGaps(t *testing.T) {
	a, err := depthaxis.New("uniform", []float64{0, 1, 2, 3, 4})
	require.NoError(t, err)

	subs, gaps, err := a.SplitAtGaps(depthaxis.DefaultGapOptions())
	require.NoError(t, err)
	assert.Empty(t, gaps)
	require.Len(t, subs, 1)
	assert.Equal(t, depthaxis.Interval{Start: 0, End: 4}, subs[0])
}

// TestSplitAtGaps_SingleSampleSubdomain checks the epsilon widening of
// a lone sample stranded between two gaps.
func TestSplitAtGaps_SingleSampleSubdomain(t *testing.T) {
	depths := []float64{0, 1, 2, 50, 98, 99, 100}
	a, err := depthaxis.New("stranded", depths)
	require.NoError(t, err)

	subs, gaps, err := a.SplitAtGaps(depthaxis.DefaultGapOptions())
	require.NoError(t, err)
	require.Len(t, gaps, 2)
	require.Len(t, subs, 3)

	// The middle subdomain holds only depth 50, widened symmetrically.
	mid := subs[1]
	assert.Less(t, mid.Start, 50.0)
	assert.Greater(t, mid.End, 50.0)
	assert.True(t, mid.Contains(50))
}

// TestSplitAtGaps_BadOptions checks option validation.
func TestSplitAtGaps_BadOptions(t *testing.T) {
	a, err := depthaxis.New("ok", []float64{0, 1, 2})
	require.NoError(t, err)

	opts := depthaxis.DefaultGapOptions()
	opts.Threshold = 0
	_, _, err = a.SplitAtGaps(opts)
	assert.ErrorIs(t, err, depthaxis.ErrBadThreshold)

	opts = depthaxis.DefaultGapOptions()
	opts.Metric = depthaxis.GapMetric(42)
	_, _, err = a.SplitAtGaps(opts)
	assert.ErrorIs(t, err, depthaxis.ErrUnknownMetric)
}

// TestGapsBeforeSplit ensures the fail-fast precondition.
func TestGapsBeforeSplit(t *testing.T) {
	a, err := depthaxis.New("fresh", []float64{0, 1})
	require.NoError(t, err)

	_, err = a.Gaps()
	assert.ErrorIs(t, err, depthaxis.ErrGapsUnidentified)
	_, err = a.Subdomains()
	assert.ErrorIs(t, err, depthaxis.ErrGapsUnidentified)
}

// TestSetPartition validates externally supplied partitions.
func TestSetPartition(t *testing.T) {
	a, err := depthaxis.New("manual", []float64{0, 1, 2, 10, 11, 12})
	require.NoError(t, err)

	err = a.SetPartition(
		[]depthaxis.Interval{{Start: 0, End: 2}, {Start: 10, End: 12}},
		[]depthaxis.Interval{{Start: 2, End: 10}},
	)
	require.NoError(t, err)
	assert.True(t, a.Identified())

	// Overlapping subdomains are rejected.
	b, _ := depthaxis.New("bad", []float64{0, 1, 2, 3})
	err = b.SetPartition(
		[]depthaxis.Interval{{Start: 0, End: 2}, {Start: 1, End: 3}}, nil)
	assert.ErrorIs(t, err, depthaxis.ErrBadPartition)

	// A subdomain outside the axis span is rejected.
	err = b.SetPartition([]depthaxis.Interval{{Start: -5, End: 2}}, nil)
	assert.ErrorIs(t, err, depthaxis.ErrBadPartition)

	// An empty subdomain list is rejected.
	err = b.SetPartition(nil, nil)
	assert.ErrorIs(t, err, depthaxis.ErrBadPartition)
}

// TestIntervalIndices checks the half-open index range lookup.
func TestIntervalIndices(t *testing.T) {
	a, err := depthaxis.New("idx", []float64{0, 1, 2, 3, 4})
	require.NoError(t, err)

	lo, hi := a.IntervalIndices(1, 3)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 4, hi)

	lo, hi = a.IntervalIndices(2.5, 2.6)
	assert.Equal(t, lo, hi, "empty interval must yield an empty range")
}

// TestSingleSampleAxis covers the degenerate one-sample boundary case.
func TestSingleSampleAxis(t *testing.T) {
	a, err := depthaxis.New("point", []float64{7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, a.Spacing())
	assert.Equal(t, 0.0, a.MedianSpacing())

	subs, gaps, err := a.SplitAtGaps(depthaxis.DefaultGapOptions())
	require.NoError(t, err)
	assert.Empty(t, gaps)
	require.Len(t, subs, 1)
	assert.True(t, subs[0].Contains(7))
}
