// Package grid generates the circular gridlines of a Smith chart. Lines of
// constant resistance and constant reactance both map to circles under the
// Möbius transform, so every gridline is described by its family, the
// impedance value it marks and the interval it covers on the other axis.
// The generator supports a plain grid, one full circle per tick, and a
// fancy grid, which thins and truncates lines adaptively where the
// transform compresses them.
package grid

import (
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"

	smith "github.com/scottprahl/pySmithPlot"
)

// tracer writes to trace with key 'grid'
func tracer() tracing.Trace {
	return tracing.Select("grid")
}

// Family designates the axis a gridline belongs to.
type Family int8

const (
	// RealAxis marks circles of constant resistance (or conductance).
	RealAxis Family = iota
	// ImagAxis marks circles of constant reactance (or susceptance).
	ImagAxis
)

func (f Family) String() string {
	if f == RealAxis {
		return "real"
	}
	return "imag"
}

// Arc is one gridline in impedance space: the circle of the family at
// value At, covering [From, To] on the opposite axis. The Möbius image of
// an arc is a circular arc in Γ-space, produced by Points.
type Arc struct {
	Family   Family
	At       float64
	From, To float64
}

// Circle returns center and radius of the arc's full circle in Γ-space.
// For a resistance circle the center lies on the real axis halfway between
// Γ(x) and 1; a reactance circle is centered at 1 + i·scale/y. ok is false
// for the degenerate members: a reactance value of zero (the real axis, a
// straight line) and values at infinity (the point Γ = 1).
func (a Arc) Circle(cfg *smith.Config) (center smith.Pair, radius float64, ok bool) {
	if math.Abs(a.At) >= smith.NearInfinity {
		return smith.P(1, 0), 0, false
	}
	if a.Family == RealAxis {
		zm := 0.5 * (1 + smith.Gamma(complex(a.At, 0), cfg.Norm()))
		return smith.Pair(zm), cmplx.Abs(zm - 1), true
	}
	if smith.Is0(a.At) {
		return 0, 0, false
	}
	scale := 1.0
	if !cfg.Normalize {
		scale = cfg.Impedance
	}
	zm := complex(1, 0) + complex(0, scale)/complex(a.At, 0)
	return smith.Pair(zm), cmplx.Abs(zm - 1), true
}

// endpoints are the Γ-space images of the arc's interval bounds.
func (a Arc) endpoints(norm float64) (complex128, complex128) {
	if a.Family == RealAxis {
		return smith.GammaXY(a.At, a.From, norm), smith.GammaXY(a.At, a.To, norm)
	}
	return smith.GammaXY(a.From, a.At, norm), smith.GammaXY(a.To, a.At, norm)
}

// Points samples the arc as n points in Γ-space, ordered from the image of
// From to the image of To. Degenerate arcs collapse to a straight segment
// (reactance zero) or a single point (value at infinity). For admittance
// charts the sample points are mirrored through the origin.
func (a Arc) Points(cfg *smith.Config, n int) []smith.Pair {
	if n < 2 {
		n = 2
	}
	out := a.points(cfg, n)
	if cfg.Datatype == smith.YParameter {
		for i := range out {
			out[i] = -out[i]
		}
	}
	return out
}

func (a Arc) points(cfg *smith.Config, n int) []smith.Pair {
	zm, r, ok := a.Circle(cfg)
	if !ok && math.Abs(a.At) >= smith.NearInfinity {
		return []smith.Pair{smith.P(1, 0)}
	}
	z0, z1 := a.endpoints(cfg.Norm())
	if !ok {
		// reactance zero, a straight slice of the real axis
		out := make([]smith.Pair, n)
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n-1)
			out[i] = smith.Pair(z0 + (z1-z0)*complex(t, 0))
		}
		return out
	}

	ang0 := mod2pi(cmplx.Phase(z0 - zm.C()))
	ang1 := mod2pi(cmplx.Phase(z1 - zm.C()))
	reverse := ang0 > ang1
	if reverse {
		ang0, ang1 = ang1, ang0
	}
	out := make([]smith.Pair, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		out[i] = zm + smith.AngC(ang0+(ang1-ang0)*t, r)
	}
	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func mod2pi(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
