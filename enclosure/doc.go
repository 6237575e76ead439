// Package enclosure builds the hierarchy of sign regions across scales
// and reduces extremal depth bounds over it.
//
// What:
//
//   - Build determines, for every labeled region, its topmost
//     occurrence (largest scale index, ties broken by smallest depth
//     index), its bottommost occurrence (smallest scale index, same
//     tie-break), its own depth extent, and its parent: the label one
//     scale step coarser directly above the topmost occurrence, or the
//     synthetic Root when that cell is out of range or invalid.
//   - Forest is a dense arena: regions addressed by id, children stored
//     as a CSR-style adjacency (offsets + one flat child array), roots
//     in a separate list. No hashing, no recursion.
//   - Reduce is a generic bottom-up reduction: given a per-region value
//     and a strict-better comparison, it computes for every region the
//     extreme value among itself and all descendants in one pass over
//     regions sorted by ascending topmost scale, evaluating each value
//     exactly once.
//   - Intervals runs Reduce twice (min and max depth) to produce the
//     final per-region depth interval; Thicknesses floors the interval
//     width at the sample spacing.
//   - Relabel remaps region ids after an external re-ranking without
//     rebuilding occurrences.
//
// Why:
//
//   - A coarser-scale region encloses the finer-scale regions it
//     subsumes; the forest plus reduced extents is the final derived
//     output of the scale-space decomposition.
//
// Complexity:
//
//   - Build: O(S×D + n log n). Reduce/Intervals: O(n). Relabel: O(n).
//
// Determinism:
//
//   - All tie-breaks are total (smallest depth index, ascending ids);
//     children lists are ordered by ascending child id. Identical
//     inputs give identical forests.
//
// Errors:
//
//   - ErrNilLabels: the label grid is nil.
//   - ErrShapeMismatch: label/validity grids or axes disagree in shape.
//   - ErrBadLabel: a cell carries an id outside 0..count-1.
//   - ErrBadPermutation: Relabel's mapping is not a bijection.
package enclosure
