// File: wavelet/cwt_test.go
package wavelet_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/geowav/scalespace/wavelet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformAxis(n int, dt float64) []float64 {
	depths := make([]float64, n)
	for i := range depths {
		depths[i] = float64(i) * dt
	}
	return depths
}

// TestScales_Shape checks the log-spaced scale set: positive, strictly
// ascending fine→coarse, from SmallestScale·dt up to the record length.
func TestScales_Shape(t *testing.T) {
	p := wavelet.DefaultParams()
	scales, err := wavelet.Scales(128, 0.5, p)
	require.NoError(t, err)
	require.NotEmpty(t, scales)

	assert.InDelta(t, p.SmallestScale*0.5, scales[0], 1e-9, "finest scale")
	assert.InDelta(t, 128*0.5, scales[len(scales)-1], 1e-9, "coarsest scale")
	for i := 0; i+1 < len(scales); i++ {
		assert.Less(t, scales[i], scales[i+1], "scales must ascend")
	}
}

// TestScales_Validation covers parameter and axis failures.
func TestScales_Validation(t *testing.T) {
	p := wavelet.DefaultParams()

	_, err := wavelet.Scales(0, 1, p)
	assert.ErrorIs(t, err, wavelet.ErrEmptySignal)

	_, err = wavelet.Scales(16, 0, p)
	assert.ErrorIs(t, err, wavelet.ErrNotUniform)

	p.Order = 0
	_, err = wavelet.Scales(16, 1, p)
	assert.ErrorIs(t, err, wavelet.ErrBadOrder)
}

// TestTransform_ConstantSignal transforms a constant signal: every
// admissible wavelet has zero mean, so all coefficients vanish exactly.
func TestTransform_ConstantSignal(t *testing.T) {
	n := 32
	depths := uniformAxis(n, 1)
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = 3.5
	}
	scales := []float64{2, 4, 8}

	g, err := wavelet.Transform(signal, depths, scales, wavelet.DefaultParams())
	require.NoError(t, err)
	require.Equal(t, len(scales), g.Rows())
	require.Equal(t, n, g.Cols())

	for i := 0; i < g.Len(); i++ {
		assert.InDelta(t, 0, cmplx.Abs(g.AtIndex(i)), 1e-9, "cell %d", i)
	}
}

// TestTransform_SineSign transforms four exact periods of a sine and
// checks that, at the most energetic scale, the real part carries the
// sign of the signal away from its zero crossings.
func TestTransform_SineSign(t *testing.T) {
	n := 64
	depths := uniformAxis(n, 1)
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 16)
	}
	scales, err := wavelet.Scales(n, 1, wavelet.DefaultParams())
	require.NoError(t, err)

	g, err := wavelet.Transform(signal, depths, scales, wavelet.DefaultParams())
	require.NoError(t, err)

	// Find the scale row with the largest energy.
	best, bestEnergy := 0, 0.0
	for s := 0; s < g.Rows(); s++ {
		e := 0.0
		for d := 0; d < g.Cols(); d++ {
			e += cmplx.Abs(g.At(s, d)) * cmplx.Abs(g.At(s, d))
		}
		if e > bestEnergy {
			best, bestEnergy = s, e
		}
	}
	require.Greater(t, bestEnergy, 0.0)

	for d := 0; d < n; d++ {
		if math.Abs(signal[d]) < 0.3 {
			continue // skip zero crossings
		}
		re := real(g.At(best, d))
		assert.Equal(t, signal[d] > 0, re > 0,
			"sign mismatch at depth %d (signal %.2f, coeff %.4f)", d, signal[d], re)
	}
}

// TestTransform_Linearity checks T(a+b) == T(a) + T(b) cell by cell.
func TestTransform_Linearity(t *testing.T) {
	n := 32
	depths := uniformAxis(n, 2)
	a := make([]float64, n)
	b := make([]float64, n)
	sum := make([]float64, n)
	for i := range a {
		a[i] = math.Sin(2 * math.Pi * float64(i) / 8)
		b[i] = 0.5 * math.Cos(2*math.Pi*float64(i)/16)
		sum[i] = a[i] + b[i]
	}
	scales := []float64{4, 8, 16}
	p := wavelet.DefaultParams()

	ga, err := wavelet.Transform(a, depths, scales, p)
	require.NoError(t, err)
	gb, err := wavelet.Transform(b, depths, scales, p)
	require.NoError(t, err)
	gs, err := wavelet.Transform(sum, depths, scales, p)
	require.NoError(t, err)

	for i := 0; i < gs.Len(); i++ {
		want := ga.AtIndex(i) + gb.AtIndex(i)
		assert.InDelta(t, 0, cmplx.Abs(gs.AtIndex(i)-want), 1e-9, "cell %d", i)
	}
}

// TestTransform_MorletAnalytic checks the Morlet path produces a
// non-trivial complex grid for a real sine.
func TestTransform_MorletAnalytic(t *testing.T) {
	n := 32
	depths := uniformAxis(n, 1)
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 8)
	}
	p := wavelet.DefaultParams()
	p.Kind = wavelet.Morlet
	p.Order = 6

	g, err := wavelet.Transform(signal, depths, []float64{2, 4, 8}, p)
	require.NoError(t, err)

	energy := 0.0
	for i := 0; i < g.Len(); i++ {
		energy += cmplx.Abs(g.AtIndex(i))
	}
	assert.Greater(t, energy, 0.0, "Morlet transform of a sine must be non-zero")
}

// TestTransform_SingleSample returns an all-zero column without error.
func TestTransform_SingleSample(t *testing.T) {
	g, err := wavelet.Transform([]float64{5}, []float64{0}, []float64{1}, wavelet.DefaultParams())
	require.NoError(t, err)
	require.Equal(t, 1, g.Cols())
	assert.Equal(t, complex(0, 0), g.At(0, 0))
}

// TestTransform_BadInput covers the sentinel errors.
func TestTransform_BadInput(t *testing.T) {
	p := wavelet.DefaultParams()

	_, err := wavelet.Transform(nil, nil, []float64{1}, p)
	assert.ErrorIs(t, err, wavelet.ErrEmptySignal)

	_, err = wavelet.Transform([]float64{1, 2}, []float64{0}, []float64{1}, p)
	assert.ErrorIs(t, err, wavelet.ErrLengthMismatch)

	_, err = wavelet.Transform([]float64{1, 2}, []float64{0, 1}, nil, p)
	assert.ErrorIs(t, err, wavelet.ErrBadScales)

	_, err = wavelet.Transform([]float64{1, 2}, []float64{0, 1}, []float64{2, 1}, p)
	assert.ErrorIs(t, err, wavelet.ErrBadScales)

	_, err = wavelet.Transform([]float64{1, 2, 3}, []float64{0, 1, 3}, []float64{1}, p)
	assert.ErrorIs(t, err, wavelet.ErrNotUniform)
}

// TestParamsFromYAML covers defaults, overrides and validation.
func TestParamsFromYAML(t *testing.T) {
	p, err := wavelet.ParamsFromYAML([]byte("wavelet: morlet\norder: 6\n"))
	require.NoError(t, err)
	assert.Equal(t, wavelet.Morlet, p.Kind)
	assert.Equal(t, 6, p.Order)
	assert.InDelta(t, math.Sqrt2, p.EFolding, 1e-12, "omitted fields keep defaults")

	p, err = wavelet.ParamsFromYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, wavelet.DefaultParams(), p)

	_, err = wavelet.ParamsFromYAML([]byte("wavelet: haar\n"))
	assert.ErrorIs(t, err, wavelet.ErrUnknownKind)

	_, err = wavelet.ParamsFromYAML([]byte("order: -1\n"))
	assert.ErrorIs(t, err, wavelet.ErrBadOrder)

	_, err = wavelet.ParamsFromYAML([]byte("::not yaml"))
	assert.Error(t, err)
}
