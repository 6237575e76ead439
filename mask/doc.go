// Package mask computes which (scale × depth) grid cells carry an
// unreliable wavelet estimate near data gaps and subdomain boundaries.
//
// What:
//
//   - GapMask flags cells whose wavelet footprint lies entirely inside
//     a data gap: at (scale s, depth x) a gap (g0,g1) makes the cell
//     invalid when (x−g0)/(s·width) ≥ 1 and (g1−x)/(s·width) ≥ 1, i.e.
//     the footprint never reaches real data on either side. Union over
//     all gaps.
//   - COIMask flags cells whose footprint extends past a boundary of
//     the subdomain containing them — the cone of influence. A cell at
//     depth x inside subdomain (d0,d1) is invalid when (x−d0) < s·width
//     or (d1−x) < s·width; a cell covered by no subdomain is invalid at
//     every scale.
//   - Build returns the union of both masks: the single validity grid
//     (true = invalid) every property's labeling reuses.
//
// Why:
//
//   - A wavelet coefficient is only meaningful where its support is
//     filled with real samples; labeling or enclosure logic must never
//     see cells that straddle a gap or leak past the domain edge.
//
// Complexity:
//
//   - Build: O(S×D×(G+B)) time, O(S×D) memory, for G gaps and B
//     subdomains.
//
// Errors:
//
//   - ErrNoSubdomains: the gap/subdomain partition was never
//     identified; masking fails fast rather than defaulting.
//   - ErrBadWidth: the characteristic wavelet width must be positive.
//   - ErrBadScale: every scale must be positive.
//   - ErrEmptyAxis: depth or scale axis is empty.
package mask
