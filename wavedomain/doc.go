// Package wavedomain orchestrates the scale-space decomposition of
// borehole properties: transform, mask, label, enclose - one Domain
// per depth axis, one cached pipeline per property.
//
// What:
//
//   - Domain owns the depth axis, the log-spaced scale axis, the
//     combined validity mask, and a per-property cache of transform
//     grids, labelings and enclosure trees.
//   - New(name, axis, eval, params) fails fast unless the axis has its
//     gap/subdomain partition identified; the validity mask is built
//     once at construction.
//   - AddTransform(prop, force) runs the evaluator and caches the
//     coefficient grid; non-finite coefficients widen the validity
//     mask for that property.
//   - LabelDomains(name, sortBySize, force) labels the sign regions of
//     the real coefficient part against the property's validity mask.
//   - BuildLabelTree(name, force) builds the enclosure forest with its
//     reduced depth intervals and thicknesses.
//   - RankLabels(name) renumbers a property's regions by descending
//     thickness, updating the label grid and the cached forest.
//   - Match(nameA, nameB) pairs regions of two properties by mutual
//     best similarity over (topmost scale, max depth, min depth).
//
// Why:
//
//   - The stages are useful alone, but a survey workflow runs them per
//     property against one shared axis and mask; Domain holds that
//     shared state and keeps each stage idempotent unless forced.
//
// Caching:
//
//   - Each stage caches its output per property name. Repeating a call
//     with unchanged inputs returns the cached value; force recomputes
//     and invalidates everything downstream of that stage.
//
// Errors:
//
//   - ErrNilAxis, ErrNilEvaluator, ErrAxisUnidentified: construction.
//   - ErrLengthMismatch, ErrBadEvaluator: transform stage.
//   - ErrNoTransform, ErrNoLabels, ErrNoTree: a stage requested before
//     its prerequisite ran.
package wavedomain
