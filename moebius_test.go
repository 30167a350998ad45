package smithchart

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGammaLandmarks(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, complex(0, 0), Gamma(1, 1), "matched load maps to the center")
	assert.Equal(t, complex(-1, 0), Gamma(0, 1), "short circuit maps to Γ = -1")
	assert.InDelta(t, 1, real(Gamma(complex(Infinity, 0), 1)), 1e-8, "open circuit maps to Γ = 1")
	// pure reactances stay on the boundary
	for _, x := range []float64{0.2, 1, 5, -3} {
		g := Gamma(complex(0, x), 1)
		assert.InDelta(t, 1, cmplx.Abs(g), 1e-12, "Γ(i·%g) must have magnitude 1", x)
	}
}

func TestGammaRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, z := range []complex128{30 + 30i, 50 + 50i, 100 + 100i, 5 - 80i, 0.01 + 0i} {
		g := Gamma(z, 50)
		back, err := InvGamma(g, 50)
		require.NoError(t, err)
		assert.InDelta(t, real(z), real(back), 1e-6)
		assert.InDelta(t, imag(z), imag(back), 1e-6)
	}
}

func TestSingularInverse(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := InvGamma(1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSingularPoint))

	z := InvGammaClamped(1, 1)
	assert.Greater(t, real(z), NearInfinity/100, "clamped inverse must be far out on the real axis")
}

func TestGammaOf(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g, err := GammaOf(0.3+0.4i, SParameter, 50)
	require.NoError(t, err)
	assert.Equal(t, 0.3+0.4i, g, "S-parameters pass through unchanged")

	z := 100 + 25i
	gz, err := GammaOf(z, ZParameter, 50)
	require.NoError(t, err)
	gy, err := GammaOf(1/z, YParameter, 50)
	require.NoError(t, err)
	assert.InDelta(t, real(gy), real(-gz), 1e-12, "admittance chart mirrors through the origin")
	assert.InDelta(t, imag(gy), imag(-gz), 1e-12)

	_, err = GammaOf(z, ParamKind(9), 50)
	assert.True(t, errors.Is(err, ErrInvalidDatatype))
}

func TestRealSpreadMidpoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	out := RealSpread([]float64{0.5, 2}, 2, 1)
	require.Len(t, out, 3)
	assert.Equal(t, 0.5, out[0])
	assert.Equal(t, 2.0, out[2])
	// the midpoint halves the interval in Γ-space, not in impedance space
	g0 := real(Gamma(complex(0.5, 0), 1))
	g1 := real(Gamma(complex(2, 0), 1))
	gm := real(Gamma(complex(out[1], 0), 1))
	assert.InDelta(t, 0.5*(g0+g1), gm, 1e-6)
}

func TestImagSpread(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	out := ImagSpread([]float64{0.2, 1}, 4, 1)
	require.Len(t, out, 5)
	assert.Equal(t, 0.2, out[0])
	assert.Equal(t, 1.0, out[4])
	for i := 0; i+1 < len(out); i++ {
		assert.Less(t, out[i], out[i+1], "spread values must stay ordered")
	}
}

func TestConfigValidation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := NewConfig(-50)
	assert.True(t, errors.Is(err, ErrNonPositiveImpedance))

	cfg, err := NewConfig(50)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Norm(), "normalized charts transform against 1")

	cfg, err = NewConfig(200, func(c *Config) { c.Normalize = false })
	require.NoError(t, err)
	assert.Equal(t, 200.0, cfg.Norm())
}
