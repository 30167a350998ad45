package smithchart

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrUnreachableRotation indicates a VSWR rotation destination the |Γ|
// circle of the input point never crosses.
var ErrUnreachableRotation = errors.New("rotation destination not reachable")

// LambdaToRad converts a rotation given in wavelengths into radians.
// A quarter wavelength is half a turn on the chart.
func LambdaToRad(lmb float64) float64 {
	return lmb * 4 * math.Pi
}

// RadToLambda converts a rotation angle in radians into wavelengths.
func RadToLambda(rad float64) float64 {
	return rad * 0.25 / math.Pi
}

// Turn describes one VSWR rotation result: the destination point in
// impedance space and the applied rotation in wavelengths.
type Turn struct {
	From   complex128
	To     complex128
	Lambda float64
}

const twoPi = 2 * math.Pi

func mod2pi(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// rotate turns the Γ image of z by ang radians and maps back.
func rotate(z complex128, impedance, ang float64) Turn {
	g := Gamma(z, impedance)
	dest := g * cmplx.Rect(1, ang)
	return Turn{
		From:   z,
		To:     InvGammaClamped(dest, impedance),
		Lambda: RadToLambda(ang),
	}
}

// RotateByLambda rotates a point along its constant-|Γ| circle by a fixed
// amount of wavelengths. Clockwise rotation is the "toward the generator"
// convention.
func RotateByLambda(z complex128, impedance, lambda float64, clockwise bool) Turn {
	ang := LambdaToRad(lambda)
	if clockwise {
		ang = -ang
	}
	return rotate(z, impedance, ang)
}

// FullTurn rotates a point one full revolution, λ/2.
func FullTurn(z complex128, impedance float64) Turn {
	return rotate(z, impedance, twoPi)
}

// RotateToReal rotates a point along its constant-|Γ| circle until the real
// part of the impedance matches re. Two crossings exist; solution2 selects
// the one with negative imaginary part.
func RotateToReal(z complex128, impedance, re float64, solution2, clockwise bool) (Turn, error) {
	if re <= 0 {
		return Turn{}, fmt.Errorf("%w: real destination must be positive, got %g", ErrUnreachableRotation, re)
	}
	g := Gamma(z, impedance)
	a := cmplx.Abs(g)
	gr := real(Gamma(complex(re, 0), impedance))
	if math.Abs(gr) > a+Epsilon {
		return Turn{}, fmt.Errorf("%w: real part %g lies outside the |Γ|=%.4g circle", ErrUnreachableRotation, re, a)
	}
	b := 0.5 * (1 - gr)
	c := 1 - b
	// Triangle with sides a, c and opposite side b: crossing angle on the
	// constant-resistance circle around (1-b, 0).
	cosG := (a*a + c*c - b*b) / (2 * a * c)
	cosG = math.Max(-1, math.Min(1, cosG))
	gamma := math.Acos(cosG)
	if solution2 {
		gamma = -gamma
	}
	gamma = mod2pi(gamma)
	ang := mod2pi(gamma - mod2pi(cmplx.Phase(g)))
	if clockwise {
		ang -= twoPi
	}
	return rotate(z, impedance, ang), nil
}

// RotateToImag rotates a point along its constant-|Γ| circle until the
// imaginary part of the impedance matches im. solution2 selects the
// crossing closer to infinity.
func RotateToImag(z complex128, impedance, im float64, solution2, clockwise bool) (Turn, error) {
	g := Gamma(z, impedance)
	a := cmplx.Abs(g)
	var gamma float64
	if Is0(im) {
		// The real axis: crossings at angles 0 and π.
		if solution2 {
			gamma = 0
		} else {
			gamma = math.Pi
		}
	} else {
		b := impedance / im
		c := math.Sqrt(1 + b*b)
		if c > a+math.Abs(b)+Epsilon {
			return Turn{}, fmt.Errorf("%w: imaginary part %g lies outside the |Γ|=%.4g circle", ErrUnreachableRotation, im, a)
		}
		cosG := (a*a + c*c - b*b) / (2 * a * c)
		cosG = math.Max(-1, math.Min(1, cosG))
		gamma = math.Acos(cosG)
		if solution2 != (im < 0) {
			gamma = -gamma
		}
		gamma = mod2pi(math.Atan(b) + gamma)
	}
	ang := mod2pi(gamma - mod2pi(cmplx.Phase(g)))
	if clockwise {
		ang -= twoPi
	}
	return rotate(z, impedance, ang), nil
}
