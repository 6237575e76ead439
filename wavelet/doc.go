// Package wavelet evaluates the continuous wavelet transform of a
// uniformly sampled borehole signal, and carries the transform
// parameters the rest of the pipeline keys off.
//
// What:
//
//   - Params names the wavelet family (Hermitian derivative-of-Gaussian
//     or Morlet), its order, the characteristic e-folding width used by
//     boundary masking, and the scale-set shape. Params is explicit
//     configuration: nothing is resolved from package-level state.
//   - ParamsFromYAML unmarshals Params from YAML bytes (no file I/O).
//   - Scales builds the log-spaced fine→coarse scale axis for a signal
//     of n samples at spacing dt.
//   - Transform returns the S×D complex coefficient grid: the signal is
//     taken to the frequency domain once, multiplied by the scaled
//     wavelet kernel per scale, and brought back per scale row.
//
// Why:
//
//   - The decomposition core treats the evaluator as a collaborator
//     behind an interface; this package is the reference evaluator, and
//     any other implementation returning the same grid shape plugs in.
//
// Complexity:
//
//   - Transform: O(S·D log D) time, O(S×D) memory.
//   - Scales: O(S).
//
// Errors:
//
//   - ErrUnknownKind, ErrBadOrder, ErrBadEFolding, ErrBadScaleSpec:
//     parameter validation.
//   - ErrEmptySignal, ErrLengthMismatch: signal/axis disagreement.
//   - ErrNotUniform: the transform requires uniform sample spacing;
//     regularize the axis first.
//   - ErrBadScales: scale axis empty, non-positive or not ascending.
package wavelet
