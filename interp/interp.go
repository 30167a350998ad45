// Package interp resamples sequences of chart points prior to transform.
// Straight lines in impedance space are not straight in Γ-space, so lines
// are either subdivided in data space before the Möbius transform, or
// smoothed/equalized with an interpolating spline in Γ-space.
package interp

import (
	"github.com/npillmayer/schuko/tracing"

	smith "github.com/scottprahl/pySmithPlot"
)

// tracer writes to trace with key 'interp'
func tracer() tracing.Trace {
	return tracing.Select("interp")
}

// Segments inserts n evenly spaced intermediate points into every segment
// of the input sequence, in data space. The first and last input points are
// preserved exactly. Degenerate input (empty, a single point, identical
// neighbors) passes through without error.
func Segments(points []smith.Pair, n int) []smith.Pair {
	if len(points) == 0 {
		return []smith.Pair{}
	}
	if len(points) == 1 || n < 1 {
		return append([]smith.Pair{}, points...)
	}
	out := make([]smith.Pair, 0, (len(points)-1)*(n+1)+1)
	for i := 0; i+1 < len(points); i++ {
		p0, p1 := points[i], points[i+1]
		out = append(out, p0)
		if p0.Equal(p1) {
			continue // no room between identical points
		}
		d := p1 - p0
		for k := 1; k <= n; k++ {
			f := float64(k) / float64(n+1)
			out = append(out, p0+d.Scaled(f))
		}
	}
	out = append(out, points[len(points)-1])
	return out
}

// Smooth interpolates the input sequence with a spline and samples steps
// intermediate points per segment. Endpoints are preserved exactly; fewer
// than three distinct points fall back to Segments.
func Smooth(points []smith.Pair, steps int) []smith.Pair {
	knots := collapse(points)
	if len(knots) < 3 {
		return Segments(points, steps)
	}
	sp := solveSpline(knots)
	out := make([]smith.Pair, 0, (len(knots)-1)*(steps+1)+1)
	for i := 0; i+1 < len(knots); i++ {
		for k := 0; k <= steps; k++ {
			t := float64(k) / float64(steps+1)
			out = append(out, sp.at(i, t))
		}
	}
	out = append(out, knots[len(knots)-1])
	tracer().Debugf("smoothed %d points into %d", len(points), len(out))
	return out
}

// samples per segment used to measure spline arc length
const flattenSteps = 16

// Equidistant resamples the input sequence to count points equally spaced
// in spline arc length. The first and last input points are preserved
// exactly. count < 2 degenerates to the endpoint(s).
func Equidistant(points []smith.Pair, count int) []smith.Pair {
	if len(points) == 0 || count <= 0 {
		return []smith.Pair{}
	}
	knots := collapse(points)
	if len(knots) == 1 || count == 1 {
		return []smith.Pair{points[0]}
	}
	var dense []smith.Pair
	if len(knots) < 3 {
		dense = Segments(knots, flattenSteps)
	} else {
		dense = Smooth(knots, flattenSteps)
	}

	// cumulative chord length along the flattened spline
	acc := make([]float64, len(dense))
	for i := 1; i < len(dense); i++ {
		acc[i] = acc[i-1] + (dense[i] - dense[i-1]).Abs()
	}
	total := acc[len(acc)-1]
	if smith.Is0(total) {
		out := make([]smith.Pair, count)
		for i := range out {
			out[i] = points[0]
		}
		return out
	}

	out := make([]smith.Pair, 0, count)
	out = append(out, points[0])
	j := 0
	for k := 1; k < count-1; k++ {
		target := total * float64(k) / float64(count-1)
		for j+1 < len(acc) && acc[j+1] < target {
			j++
		}
		span := acc[j+1] - acc[j]
		f := 0.0
		if !smith.Is0(span) {
			f = (target - acc[j]) / span
		}
		out = append(out, dense[j]+(dense[j+1]-dense[j]).Scaled(f))
	}
	out = append(out, points[len(points)-1])
	return out
}

// collapse removes consecutive duplicate points, which would otherwise
// produce degenerate spline segments.
func collapse(points []smith.Pair) []smith.Pair {
	out := make([]smith.Pair, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && out[len(out)-1].Equal(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}
