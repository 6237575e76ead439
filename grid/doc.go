// Package grid provides the dense (scale × depth) grid primitive shared
// by every stage of the scale-space pipeline.
//
// What:
//
//   - Grid[T] wraps a rectangular block of cells addressed by
//     (scale row, depth column), stored row-major in one flat slice.
//   - Transform grids are Grid[complex128], validity masks Grid[bool],
//     label grids Grid[int], real-part views Grid[float64].
//   - FromRows deep-copies a [][]T literal, validating rectangularity.
//
// Why:
//
//   - Every stage (masking, labeling, enclosure) scans the same S×D
//     shape; one arena type keeps index arithmetic in a single place.
//   - A flat backing slice makes equality of two grids a plain
//     element-wise walk, which the determinism guarantees rely on.
//
// Complexity:
//
//   - At/Set/Index/Coordinate: O(1).
//   - New/FromRows/Clone: O(S×D) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: a grid must have at least one row and one column.
//   - ErrNonRectangular: all rows must have the same length.
package grid
