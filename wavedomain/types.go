package wavedomain

import (
	"errors"

	"github.com/geowav/scalespace/depthaxis"
	"github.com/geowav/scalespace/enclosure"
	"github.com/geowav/scalespace/grid"
	"github.com/geowav/scalespace/wavelet"
)

// Sentinel errors for domain orchestration.
var (
	// ErrNilAxis indicates a nil depth axis.
	ErrNilAxis = errors.New("wavedomain: depth axis must not be nil")
	// ErrNilEvaluator indicates a nil transform evaluator.
	ErrNilEvaluator = errors.New("wavedomain: evaluator must not be nil")
	// ErrAxisUnidentified indicates an axis whose gap/subdomain
	// partition was never identified.
	ErrAxisUnidentified = errors.New("wavedomain: axis partition unidentified - split the axis at gaps first")
	// ErrLengthMismatch indicates property values and depth axis of
	// different lengths.
	ErrLengthMismatch = errors.New("wavedomain: property values and depth axis must have the same length")
	// ErrBadEvaluator indicates an evaluator grid of unexpected shape.
	ErrBadEvaluator = errors.New("wavedomain: evaluator returned a grid of unexpected shape")
	// ErrNoTransform indicates a stage requested for a property with no
	// cached transform.
	ErrNoTransform = errors.New("wavedomain: no transform for property - call AddTransform first")
	// ErrNoLabels indicates a stage requested before LabelDomains ran.
	ErrNoLabels = errors.New("wavedomain: no labeling for property - call LabelDomains first")
	// ErrNoTree indicates a stage requested before BuildLabelTree ran.
	ErrNoTree = errors.New("wavedomain: no label tree for property - call BuildLabelTree first")
)

// Property is a named sample-aligned value column: Values[i] belongs to
// the i-th depth of the domain's axis.
type Property struct {
	Name   string
	Values []float64
}

// RegionRecord is the flat reporting view of one labeled region after
// tree construction: its reduced depth interval and thickness.
type RegionRecord struct {
	ID                 int
	MinDepth, MaxDepth float64
	Thickness          float64
}

// MatchPair is one mutual best match between a region of property A and
// a region of property B; Score is the symmetric relative difference
// summed over the compared features (lower is closer).
type MatchPair struct {
	A, B  int
	Score float64
}

// Evaluator computes an S×D coefficient grid for a sample-aligned
// signal: rows follow scales fine→coarse, columns depths. Undefined
// coefficients may be returned as NaN/Inf; the domain turns them into
// invalid cells rather than propagating them into labeling.
type Evaluator interface {
	Transform(signal, depths, scales []float64) (*grid.Grid[complex128], error)
}

// CWT is the reference Evaluator: the continuous wavelet transform of
// the wavelet package under a fixed parameter set.
type CWT struct {
	Params wavelet.Params
}

// Transform implements Evaluator.
func (c CWT) Transform(signal, depths, scales []float64) (*grid.Grid[complex128], error) {
	return wavelet.Transform(signal, depths, scales, c.Params)
}

// Tree bundles a property's enclosure forest with its reduced per-region
// depth intervals and thicknesses, indexed by region id.
type Tree struct {
	Forest      *enclosure.Forest
	Intervals   []depthaxis.Interval
	Thicknesses []float64
}
