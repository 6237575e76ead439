package wavelet

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/geowav/scalespace/grid"
)

// uniformTol is the relative spacing tolerance under which a depth axis
// counts as uniformly sampled.
const uniformTol = 1e-6

// Scales builds the log-spaced fine→coarse scale axis for a signal of
// n samples at spacing dt: from SmallestScale·dt up to the record
// length n·dt, at ScalesPerOctave scales per doubling.
// Complexity: O(S).
func Scales(n int, dt float64, p Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, ErrEmptySignal
	}
	if dt <= 0 {
		return nil, ErrNotUniform
	}
	s0 := p.SmallestScale * dt
	smax := float64(n) * dt
	if smax <= s0 {
		return []float64{s0}, nil
	}
	octaves := math.Log2(smax / s0)
	count := int(math.Ceil(octaves*float64(p.ScalesPerOctave))) + 1
	return floats.LogSpan(make([]float64, count), s0, smax), nil
}

// Transform — frequency-domain continuous wavelet transform
//
// Description:
//
//	Evaluates the CWT of a uniformly sampled signal on the given scale
//	axis: the signal spectrum is computed once, multiplied by the
//	conjugated wavelet kernel dilated to each scale, and inverted per
//	scale row. Rows follow scales (fine → coarse), columns depths.
//
// Algorithm Outline:
//  1. X̂ ← FFT(signal).
//  2. For each scale s and angular frequency ω_k:
//     row_k ← X̂_k · ψ̂*(s·ω_k) · √(2π·s/dt).
//  3. W(s,·) ← IFFT(row)/D.
//
// Complexity:
//
//	Time   = O(S·D log D)
//	Memory = O(S×D)
//
// The depth axis must be uniformly sampled (ErrNotUniform otherwise);
// a single-sample signal transforms to an all-zero column, since every
// admissible wavelet has zero mean.
func Transform(signal, depths, scales []float64, p Params) (*grid.Grid[complex128], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if len(signal) != len(depths) {
		return nil, ErrLengthMismatch
	}
	if err := checkScales(scales); err != nil {
		return nil, err
	}

	out, err := grid.New[complex128](len(scales), len(signal))
	if err != nil {
		return nil, err
	}
	n := len(signal)
	if n == 1 {
		return out, nil
	}

	dt := depths[1] - depths[0]
	if dt <= 0 {
		return nil, ErrNotUniform
	}
	for i := 0; i+1 < len(depths); i++ {
		if math.Abs((depths[i+1]-depths[i])-dt) > uniformTol*dt {
			return nil, ErrNotUniform
		}
	}

	fft := fourier.NewCmplxFFT(n)
	seq := make([]complex128, n)
	for i, v := range signal {
		seq[i] = complex(v, 0)
	}
	spectrum := fft.Coefficients(nil, seq)

	// Angular frequencies of the DFT bins, negative branch included.
	omega := make([]float64, n)
	for k := range omega {
		f := float64(k)
		if k > n/2 {
			f = float64(k - n)
		}
		omega[k] = 2 * math.Pi * f / (float64(n) * dt)
	}

	row := make([]complex128, n)
	inv := make([]complex128, n)
	for s, scale := range scales {
		norm := complex(math.Sqrt(2*math.Pi*scale/dt), 0)
		for k := range row {
			row[k] = spectrum[k] * cmplx.Conj(freqKernel(scale*omega[k], p)) * norm
		}
		inv = fft.Sequence(inv, row)
		for d := range inv {
			out.Set(s, d, inv[d]/complex(float64(n), 0))
		}
	}
	return out, nil
}

// freqKernel is the frequency-domain wavelet ψ̂ evaluated at the
// dilated angular frequency x = s·ω.
func freqKernel(x float64, p Params) complex128 {
	switch p.Kind {
	case Morlet:
		// Analytic wavelet: zero on the negative frequency axis.
		if x <= 0 {
			return 0
		}
		w0 := float64(p.Order)
		v := math.Pow(math.Pi, -0.25) * math.Exp(-0.5*(x-w0)*(x-w0))
		return complex(v, 0)
	default: // Hermitian (derivative of Gaussian)
		m := float64(p.Order)
		v := math.Pow(x, m) * math.Exp(-0.5*x*x) / math.Sqrt(math.Gamma(m+0.5))
		// -(i)^m rotates the kernel into the real axis for even orders.
		rot := cmplx.Exp(complex(0, math.Pi*m/2))
		return -rot * complex(v, 0)
	}
}

// checkScales validates a positive, strictly ascending scale axis.
func checkScales(scales []float64) error {
	if len(scales) == 0 {
		return ErrBadScales
	}
	prev := 0.0
	for _, s := range scales {
		if s <= prev {
			return ErrBadScales
		}
		prev = s
	}
	return nil
}
