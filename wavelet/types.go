// Package wavelet defines transform parameters, kinds and sentinel
// errors.
package wavelet

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for wavelet parameters and evaluation.
var (
	// ErrUnknownKind indicates an unrecognized wavelet family.
	ErrUnknownKind = errors.New("wavelet: unknown wavelet kind")
	// ErrBadOrder indicates a non-positive wavelet order.
	ErrBadOrder = errors.New("wavelet: order must be positive")
	// ErrBadEFolding indicates a non-positive e-folding width.
	ErrBadEFolding = errors.New("wavelet: e-folding width must be positive")
	// ErrBadScaleSpec indicates a non-positive smallest scale or
	// scales-per-octave.
	ErrBadScaleSpec = errors.New("wavelet: smallest scale and scales per octave must be positive")
	// ErrEmptySignal indicates an empty input signal.
	ErrEmptySignal = errors.New("wavelet: signal must be non-empty")
	// ErrLengthMismatch indicates signal and depth axis of different
	// lengths.
	ErrLengthMismatch = errors.New("wavelet: signal and depth axis must have the same length")
	// ErrNotUniform indicates a depth axis with non-uniform spacing.
	ErrNotUniform = errors.New("wavelet: depth axis must be uniformly sampled - regularize first")
	// ErrBadScales indicates an empty, non-positive or non-ascending
	// scale axis.
	ErrBadScales = errors.New("wavelet: scales must be positive and ascending fine to coarse")
)

// Kind selects the wavelet family.
type Kind int

const (
	// Hermitian is the derivative-of-Gaussian family; Order is the
	// derivative order (2 = Mexican hat).
	Hermitian Kind = iota
	// Morlet is the complex Morlet family; Order is the center
	// frequency ω₀ (6 is the conventional choice).
	Morlet
)

// String returns the YAML name of the kind.
func (k Kind) String() string {
	switch k {
	case Hermitian:
		return "hermitian"
	case Morlet:
		return "morlet"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Params configures the transform and the scale set.
//
//   - Kind            — wavelet family.
//   - Order           — family order (derivative order, or ω₀).
//   - EFolding        — characteristic width: the wavelet footprint at
//     scale s spans s × EFolding on each side; boundary masking tests
//     gap and cone influence against it.
//   - SmallestScale   — finest scale, in units of the sample spacing.
//   - ScalesPerOctave — scale resolution of the log-spaced scale set.
type Params struct {
	Kind            Kind    `yaml:"-"`
	Order           int     `yaml:"order"`
	EFolding        float64 `yaml:"efolding"`
	SmallestScale   float64 `yaml:"smallestScale"`
	ScalesPerOctave int     `yaml:"scalesPerOctave"`
}

// DefaultParams returns the conventional configuration: a second-order
// Hermitian (Mexican hat) wavelet with e-folding width √2, finest scale
// twice the sample spacing, four scales per octave.
func DefaultParams() Params {
	return Params{
		Kind:            Hermitian,
		Order:           2,
		EFolding:        math.Sqrt2,
		SmallestScale:   2,
		ScalesPerOctave: 4,
	}
}

// Validate reports the first parameter violation, if any.
func (p Params) Validate() error {
	if p.Kind != Hermitian && p.Kind != Morlet {
		return ErrUnknownKind
	}
	if p.Order < 1 {
		return ErrBadOrder
	}
	if p.EFolding <= 0 {
		return ErrBadEFolding
	}
	if p.SmallestScale <= 0 || p.ScalesPerOctave < 1 {
		return ErrBadScaleSpec
	}
	return nil
}

// yamlParams mirrors Params with the kind spelled as a string.
type yamlParams struct {
	Wavelet         string  `yaml:"wavelet"`
	Order           int     `yaml:"order"`
	EFolding        float64 `yaml:"efolding"`
	SmallestScale   float64 `yaml:"smallestScale"`
	ScalesPerOctave int     `yaml:"scalesPerOctave"`
}

// ParamsFromYAML unmarshals Params from YAML bytes. Omitted fields keep
// their DefaultParams values; the wavelet kind is spelled "hermitian"
// or "morlet". The result is validated before being returned.
func ParamsFromYAML(data []byte) (Params, error) {
	def := DefaultParams()
	aux := yamlParams{
		Wavelet:         def.Kind.String(),
		Order:           def.Order,
		EFolding:        def.EFolding,
		SmallestScale:   def.SmallestScale,
		ScalesPerOctave: def.ScalesPerOctave,
	}
	if err := yaml.Unmarshal(data, &aux); err != nil {
		return Params{}, fmt.Errorf("wavelet: parsing params: %w", err)
	}

	p := Params{
		Order:           aux.Order,
		EFolding:        aux.EFolding,
		SmallestScale:   aux.SmallestScale,
		ScalesPerOctave: aux.ScalesPerOctave,
	}
	switch aux.Wavelet {
	case "hermitian":
		p.Kind = Hermitian
	case "morlet":
		p.Kind = Morlet
	default:
		return Params{}, ErrUnknownKind
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
