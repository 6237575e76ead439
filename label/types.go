// Package label defines options, output types and sentinel errors for
// region labeling.
package label

import (
	"errors"

	"github.com/geowav/scalespace/grid"
)

// Unlabeled is the id carried by invalid cells. It is never a region id.
const Unlabeled = -1

// Sentinel errors for labeling operations.
var (
	// ErrNilGrid indicates a nil transform grid.
	ErrNilGrid = errors.New("label: transform grid must not be nil")
	// ErrShapeMismatch indicates transform and validity grids of
	// different shapes.
	ErrShapeMismatch = errors.New("label: transform and validity grids must have the same shape")
)

// Options configures Regions.
//
//   - SortBySize — relabel by descending occupied-scale count (number
//     of distinct scale rows a region appears in), ties broken by
//     ascending original id. Membership is unchanged; only ids move.
type Options struct {
	SortBySize bool
}

// DefaultOptions returns Options with SortBySize=false: ids keep their
// scan-order assignment.
func DefaultOptions() Options {
	return Options{SortBySize: false}
}

// Labeling is the result of Regions: the S×D id grid and the number of
// regions. Ids form the dense range 0..Count-1; invalid cells carry
// Unlabeled.
type Labeling struct {
	IDs   *grid.Grid[int]
	Count int
}
