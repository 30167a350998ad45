/*
Package smithchart implements the coordinate engine for Smith charts:
the bidirectional mapping between normalized impedance/admittance space
and the bounded reflection-coefficient disk, together with the chart
configuration and display projection.

# BSD License

# Copyright (c) the pySmithPlot authors

All rights reserved.

Please refer to the license file for more information.
*/
package smithchart

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'smithchart'
func tracer() tracing.Trace {
	return tracing.Select("smithchart")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 1e-7

// Infinity is the numeric stand-in for points at infinity. Every value at
// or beyond NearInfinity collapses onto the chart point Γ = 1.
const Infinity float64 = 1e9

// NearInfinity is the threshold above which values are treated as infinite.
const NearInfinity float64 = 0.9 * Infinity

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// IsInf is a predicate: does n mean "at infinity" on the chart?
func IsInf(n float64) bool {
	return math.Abs(n) >= NearInfinity
}

// === Pair Data Type ========================================================

// Pair is a 2D point. It doubles as the representation for reflection
// coefficients (Γ-space) and for display coordinates.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p.C()), imag(p.C())
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p.C())
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p.C())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	p2 = p2.Zap()
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Abs is the distance of a pair from origin.
func (p Pair) Abs() float64 {
	return cmplx.Abs(p.C())
}

// Angle is the phase of a pair, in radians.
func (p Pair) Angle() float64 {
	return cmplx.Phase(p.C())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a).Zap()
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return (p + v).Zap()
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	T := Rotation(theta)
	return T.Transform(p).Zap()
}

// AngC returns the point on a circle around origin with the given radius,
// at angle ang (radians).
func AngC(ang, radius float64) Pair {
	return P(radius*math.Cos(ang), radius*math.Sin(ang))
}

// === Parameter Kinds =======================================================

// ParamKind tags a complex value as scattering/reflection, impedance or
// admittance. Exactly one kind applies per value.
type ParamKind int

// Parameter kinds for chart data.
const (
	SParameter ParamKind = iota // reflection coefficient, already in Γ-space
	ZParameter                  // impedance, normalized by the reference impedance
	YParameter                  // admittance, reciprocal of impedance
)

func (k ParamKind) String() string {
	switch k {
	case SParameter:
		return "S"
	case ZParameter:
		return "Z"
	case YParameter:
		return "Y"
	}
	return fmt.Sprintf("ParamKind(%d)", int(k))
}

// Valid is a predicate: is k one of the three known parameter kinds?
func (k ParamKind) Valid() bool {
	return k == SParameter || k == ZParameter || k == YParameter
}
