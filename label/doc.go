// Package label partitions a wavelet-transform grid into maximal
// connected regions of uniform sign.
//
// What:
//
//   - Regions classifies every valid cell of an S×D real-part grid as
//     non-negative or negative (value < 0 ⇒ negative), then groups each
//     class into maximal 4-connected components and assigns every
//     component a globally unique integer id.
//   - Non-negative components keep their scan-order ids 0..npos−1;
//     negative components are offset by npos, so ids are contiguous
//     from 0 across both classes.
//   - Options.SortBySize relabels by persistence: ids are reassigned in
//     descending occupied-scale count (the number of distinct scale
//     rows a region appears in), ties broken by ascending original id,
//     so label 0 is the region most persistent across scales.
//   - Invalid cells never receive a label: they carry the Unlabeled
//     sentinel and are excluded from components and size tallies.
//
// Why:
//
//   - A region of uniform transform sign is the scale-space signature
//     of a lithological interval; the enclosure stage stacks these
//     regions into a hierarchy.
//
// Complexity:
//
//   - Regions: O(S×D) time and memory (BFS visits each cell once).
//
// Determinism:
//
//   - Cells are scanned row-major from the finest scale; BFS queues
//     preserve discovery order. Identical inputs produce byte-identical
//     label grids.
//
// Errors:
//
//   - ErrNilGrid: the transform grid is nil.
//   - ErrShapeMismatch: transform and validity grids disagree in shape.
package label
