package smithchart

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

var (
	// ErrSingularPoint indicates an inverse transform at Γ = 1 (or Γ = -1
	// for admittances), i.e. an open or short circuit. The point is valid
	// chart geometry but has no finite impedance.
	ErrSingularPoint = errors.New("singular point has no finite inverse")
	// ErrInvalidDatatype indicates an unknown parameter kind tag.
	ErrInvalidDatatype = errors.New("invalid datatype")
	// ErrNonPositiveImpedance indicates a reference impedance Z0 <= 0.
	ErrNonPositiveImpedance = errors.New("reference impedance must be positive")
)

// Gamma maps an impedance z to its reflection coefficient
//
//	Γ = 1 - 2·norm/(z + norm) = (z - norm)/(z + norm) .
//
// norm is the reference impedance (1 for a normalized chart). Values at or
// beyond NearInfinity collapse onto Γ = 1.
func Gamma(z complex128, norm float64) complex128 {
	return 1 - complex(2*norm, 0)/(z+complex(norm, 0))
}

// GammaY is the admittance-domain dual of Gamma,
//
//	Γ = (1 - y·norm)/(1 + y·norm) = -Gamma(1/y, norm) .
func GammaY(y complex128, norm float64) complex128 {
	return -Gamma(1/y, norm)
}

// InvGamma maps a reflection coefficient back to impedance space,
//
//	z = norm·(1 + Γ)/(1 - Γ) .
//
// It fails with ErrSingularPoint for Γ = 1, the point at infinity. Callers
// plotting lines should drop such a point from interpolation instead of
// aborting; callers needing a finite stand-in use InvGammaClamped.
func InvGamma(g complex128, norm float64) (complex128, error) {
	if cmplx.Abs(g-1) <= Epsilon {
		return 0, fmt.Errorf("%w: Γ = %v", ErrSingularPoint, g)
	}
	return complex(norm, 0) * (1 + g) / (1 - g), nil
}

// InvGammaY inverts GammaY. It fails with ErrSingularPoint for Γ = -1.
func InvGammaY(g complex128, norm float64) (complex128, error) {
	z, err := InvGamma(-g, norm)
	if err != nil {
		return 0, err
	}
	return 1 / z, nil
}

// InvGammaClamped is InvGamma with the singularity substituted by
// Γ = 1 - ε, mirroring the clamped inverse the grid plumbing relies on.
func InvGammaClamped(g complex128, norm float64) complex128 {
	if cmplx.Abs(g-1) <= Epsilon {
		g = complex(1-Epsilon, 0)
	}
	return complex(norm, 0) * (1 + g) / (1 - g)
}

// GammaOf applies the kind rule before transforming: S-parameters are
// already reflection coefficients and pass through unchanged, admittances
// take the dual form, impedances the direct form. An unknown kind yields
// ErrInvalidDatatype.
func GammaOf(v complex128, kind ParamKind, norm float64) (complex128, error) {
	switch kind {
	case SParameter:
		return v, nil
	case ZParameter:
		return Gamma(v, norm), nil
	case YParameter:
		return GammaY(v, norm), nil
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidDatatype, kind)
}

// GammaXY is a convenience form of Gamma for a real/imaginary split
// impedance, as the grid generator handles its line parameters.
func GammaXY(x, y float64, norm float64) complex128 {
	return Gamma(complex(x, y), norm)
}

// RealSpread interpolates real impedance values such that the interpolated
// points are evenly spaced after the Möbius transform. Each segment between
// neighbors is divided into steps equal parts; the input values are
// preserved exactly.
func RealSpread(xs []float64, steps int, norm float64) []float64 {
	if len(xs) == 0 || steps < 2 {
		return append([]float64{}, xs...)
	}
	gs := make([]float64, len(xs))
	for i, x := range xs {
		gs[i] = real(Gamma(complex(x, 0), norm))
	}
	out := make([]float64, 0, (len(xs)-1)*steps+1)
	for i := 0; i < len(gs)-1; i++ {
		for k := 0; k < steps; k++ {
			g := gs[i] + (gs[i+1]-gs[i])*float64(k)/float64(steps)
			out = append(out, real(InvGammaClamped(complex(g, 0), norm)))
		}
	}
	out = append(out, xs[len(xs)-1])
	return out
}

// ImagSpread interpolates imaginary impedance values such that the
// interpolated points are evenly spaced in the Γ-space boundary angle.
func ImagSpread(ys []float64, steps int, norm float64) []float64 {
	if len(ys) == 0 || steps < 2 {
		return append([]float64{}, ys...)
	}
	angs := make([]float64, len(ys))
	for i, y := range ys {
		angs[i] = math.Mod(cmplx.Phase(Gamma(complex(0, y), norm))+2*math.Pi, 2*math.Pi)
	}
	out := make([]float64, 0, (len(ys)-1)*steps+1)
	for i := 0; i < len(angs)-1; i++ {
		for k := 0; k < steps; k++ {
			a := angs[i] + (angs[i+1]-angs[i])*float64(k)/float64(steps)
			g := complex(math.Cos(a), math.Sin(a))
			out = append(out, imag(InvGammaClamped(g, norm)))
		}
	}
	out = append(out, ys[len(ys)-1])
	return out
}
