package mask

import (
	"errors"

	"github.com/geowav/scalespace/depthaxis"
	"github.com/geowav/scalespace/grid"
)

// Sentinel errors for mask construction.
var (
	// ErrNoSubdomains indicates the gap/subdomain partition was never
	// identified for the depth axis.
	ErrNoSubdomains = errors.New("mask: no subdomains identified - split the depth axis at gaps first")
	// ErrBadWidth indicates a non-positive characteristic wavelet width.
	ErrBadWidth = errors.New("mask: characteristic width must be positive")
	// ErrBadScale indicates a non-positive scale value.
	ErrBadScale = errors.New("mask: scales must be positive")
	// ErrEmptyAxis indicates an empty depth or scale axis.
	ErrEmptyAxis = errors.New("mask: depth and scale axes must be non-empty")
)

// Build returns the combined S×D validity grid (true = invalid): the
// union of GapMask and COIMask. Rows follow scales, columns depths.
// Complexity: O(S×D×(G+B)).
func Build(depths, scales []float64, gaps, subdomains []depthaxis.Interval, width float64) (*grid.Grid[bool], error) {
	gm, err := GapMask(depths, scales, gaps, width)
	if err != nil {
		return nil, err
	}
	cm, err := COIMask(depths, scales, subdomains, width)
	if err != nil {
		return nil, err
	}
	for i := 0; i < gm.Len(); i++ {
		if gm.AtIndex(i) {
			cm.SetIndex(i, true)
		}
	}
	return cm, nil
}

// GapMask flags cells whose wavelet footprint lies entirely inside a
// declared gap. An empty gap list yields an all-valid grid.
// Complexity: O(S×D×G).
func GapMask(depths, scales []float64, gaps []depthaxis.Interval, width float64) (*grid.Grid[bool], error) {
	if err := checkAxes(depths, scales, width); err != nil {
		return nil, err
	}
	g, err := grid.New[bool](len(scales), len(depths))
	if err != nil {
		return nil, err
	}
	for s, scale := range scales {
		footprint := scale * width
		for d, x := range depths {
			for _, gap := range gaps {
				if x-gap.Start >= footprint && gap.End-x >= footprint {
					g.Set(s, d, true)
					break
				}
			}
		}
	}
	return g, nil
}

// COIMask flags cells inside the cone of influence: the footprint at
// (s,x) must not extend past either boundary of the subdomain
// containing x, and a cell covered by no subdomain is invalid at every
// scale. Returns ErrNoSubdomains for an empty subdomain list.
// Complexity: O(S×D×B).
func COIMask(depths, scales []float64, subdomains []depthaxis.Interval, width float64) (*grid.Grid[bool], error) {
	if err := checkAxes(depths, scales, width); err != nil {
		return nil, err
	}
	if len(subdomains) == 0 {
		return nil, ErrNoSubdomains
	}
	g, err := grid.New[bool](len(scales), len(depths))
	if err != nil {
		return nil, err
	}
	for s, scale := range scales {
		footprint := scale * width
		for d, x := range depths {
			g.Set(s, d, outsideCone(x, footprint, subdomains))
		}
	}
	return g, nil
}

// outsideCone reports whether depth x is unreliable at the given
// footprint: no subdomain covers it, or the footprint crosses a
// boundary of the subdomain that does. Subdomains are disjoint, so the
// first containing interval decides.
func outsideCone(x, footprint float64, subdomains []depthaxis.Interval) bool {
	for _, sub := range subdomains {
		if !sub.Contains(x) {
			continue
		}
		return x-sub.Start < footprint || sub.End-x < footprint
	}
	return true
}

func checkAxes(depths, scales []float64, width float64) error {
	if len(depths) == 0 || len(scales) == 0 {
		return ErrEmptyAxis
	}
	if width <= 0 {
		return ErrBadWidth
	}
	for _, s := range scales {
		if s <= 0 {
			return ErrBadScale
		}
	}
	return nil
}
