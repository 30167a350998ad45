package interp

import (
	"math"

	smith "github.com/scottprahl/pySmithPlot"
)

// Spline interpolation after John Hobby's algorithm, reduced to open paths
// with smooth knots and neutral tension. The solved control points turn
// each knot pair into a cubic Bézier segment.
//
//	Smooth, Easy to Compute Interpolating Splines -- John D. Hobby
//	Report No. STAN-CS-85-1047, Jan 1985

type spline struct {
	knots []smith.Pair
	post  []smith.Pair // control point following knot i
	pre   []smith.Pair // control point preceding knot i
}

const pi float64 = 3.14159265
const pi2 float64 = 6.28318530

// Reduce an angle to fit into -pi .. pi.
func reduceAngle(a float64) float64 {
	if math.Abs(a) > pi {
		if a > 0 {
			a -= pi2
		} else {
			a += pi2
		}
	}
	return a
}

func hobbyAlphaBeta(theta, phi float64) (float64, float64) {
	constA := 1.41421356     // sqrt(2) -- empiric constants, as explained by J.Hobby
	constB := 0.0625         // 1/16
	constC := 0.38196601125  // (3 - sqrt(5)) / 2
	constCC := 0.61803398875 // 1 - c
	st, ct := math.Sin(theta), math.Cos(theta)
	sf, cf := math.Sin(phi), math.Cos(phi)
	alpha := constA * (st - constB*sf) * (sf - constB*st) * (ct - cf)
	beta := 1 + constCC*ct + constC*cf
	return alpha, beta
}

// Control points flanking the segment from z.i to z.i+1, for in-angle theta
// and out-angle phi.
func controlPoints(theta, phi float64, dvec smith.Pair) (smith.Pair, smith.Pair) {
	alpha, beta := hobbyAlphaBeta(theta, phi)
	rho := (2 + alpha) / beta
	sigma := (2 - alpha) / beta
	st, ct := math.Sin(theta), math.Cos(theta)
	sf, cf := math.Sin(phi), math.Cos(phi)
	dx, dy := dvec.F()
	uv1 := smith.P(dx*ct-dy*st, dx*st+dy*ct)
	uv2 := smith.P(dx*cf+dy*sf, -dx*sf+dy*cf)
	return uv1.Scaled(rho / 3), uv2.Scaled(sigma / 3)
}

// solveSpline finds the Bézier control points for an open path through the
// given knots. Knots must be pairwise distinct neighbors (see collapse) and
// there must be at least three of them.
func solveSpline(knots []smith.Pair) *spline {
	n := len(knots)
	delta := func(i int) smith.Pair { return knots[i+1] - knots[i] }
	d := func(i int) float64 { return delta(i).Abs() }
	psi := func(i int) float64 {
		if i <= 0 || i >= n-1 {
			return 0
		}
		return reduceAngle(delta(i).Angle() - delta(i-1).Angle())
	}

	u := make([]float64, n)
	v := make([]float64, n)
	theta := make([]float64, n)

	// Neutral end curl makes the boundary coefficient 1.
	u[0] = 1
	v[0] = -u[0] * psi(1)
	for i := 1; i <= n-2; i++ {
		// tridiagonal row for unit tension
		A := 1 / d(i-1)
		B := 2 / d(i-1)
		C := 2 / d(i)
		D := 1 / d(i)
		t := B - u[i-1]*A + C
		u[i] = D / t
		v[i] = (-B*psi(i) - D*psi(i+1) - A*v[i-1]) / t
	}
	last := n - 1
	theta[last] = v[last-1] / (u[last-1] - 1)
	for i := last - 1; i >= 0; i-- {
		theta[i] = v[i] - u[i]*theta[i+1]
	}

	sp := &spline{
		knots: knots,
		post:  make([]smith.Pair, n),
		pre:   make([]smith.Pair, n),
	}
	for i := 0; i+1 < n; i++ {
		phi := -psi(i+1) - theta[i+1]
		p2, p3 := controlPoints(theta[i], phi, delta(i))
		sp.post[i] = knots[i] + p2
		sp.pre[i+1] = knots[i+1] - p3
	}
	return sp
}

// at evaluates the cubic Bézier of segment i at parameter t in [0, 1].
func (sp *spline) at(i int, t float64) smith.Pair {
	z0, z1 := sp.knots[i], sp.knots[i+1]
	c1, c2 := sp.post[i], sp.pre[i+1]
	s := 1 - t
	b0 := z0.Scaled(s * s * s)
	b1 := c1.Scaled(3 * s * s * t)
	b2 := c2.Scaled(3 * s * t * t)
	b3 := z1.Scaled(t * t * t)
	return b0 + b1 + b2 + b3
}
