package wavedomain

import "math"

// Match — mutual best matching of regions across properties
//
// Description:
//
//	Pairs the labeled regions of two transformed properties by
//	similarity of their tree geometry. Each region is summarized by
//	three features: the scale value at its topmost occurrence, and the
//	maximum and minimum depths of its reduced interval. The distance
//	between two regions is the symmetric relative difference
//	|a-b|/(|a|+|b|) summed over the features; a pair is kept only when
//	each region is the other's nearest neighbor, ties broken by the
//	smallest id. Both properties need a built tree.
//
// Complexity:
//
//	Time   = O(nA·nB)
//	Memory = O(nA·nB)
//
// Either property having no regions yields an empty match list.
func (d *Domain) Match(nameA, nameB string) ([]MatchPair, error) {
	ta, err := d.Tree(nameA)
	if err != nil {
		return nil, err
	}
	tb, err := d.Tree(nameB)
	if err != nil {
		return nil, err
	}

	fa := d.features(ta)
	fb := d.features(tb)
	na, nb := len(fa), len(fb)
	if na == 0 || nb == 0 {
		return []MatchPair{}, nil
	}

	score := make([][]float64, na)
	for i := range score {
		score[i] = make([]float64, nb)
		for j := range score[i] {
			score[i][j] = distance(fa[i], fb[j])
		}
	}

	// Nearest neighbor per row and per column; < keeps the smallest
	// index on ties.
	rowMin := make([]int, na)
	for i := range rowMin {
		best := 0
		for j := 1; j < nb; j++ {
			if score[i][j] < score[i][best] {
				best = j
			}
		}
		rowMin[i] = best
	}
	colMin := make([]int, nb)
	for j := range colMin {
		best := 0
		for i := 1; i < na; i++ {
			if score[i][j] < score[best][j] {
				best = i
			}
		}
		colMin[j] = best
	}

	out := []MatchPair{}
	for i, j := range rowMin {
		if colMin[j] == i {
			out = append(out, MatchPair{A: i, B: j, Score: score[i][j]})
		}
	}
	return out, nil
}

// features summarizes each region as (topmost scale value, max depth,
// min depth), indexed by region id.
func (d *Domain) features(t *Tree) [][3]float64 {
	out := make([][3]float64, t.Forest.Len())
	for id := range out {
		out[id] = [3]float64{
			d.scales[t.Forest.Region(id).Top.Scale],
			t.Intervals[id].End,
			t.Intervals[id].Start,
		}
	}
	return out
}

// distance is the symmetric relative difference summed over the
// features; a feature with |a|+|b| == 0 contributes nothing.
func distance(a, b [3]float64) float64 {
	sum := 0.0
	for k := range a {
		if den := math.Abs(a[k]) + math.Abs(b[k]); den > 0 {
			sum += math.Abs(a[k]-b[k]) / den
		}
	}
	return sum
}
