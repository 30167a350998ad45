// Package ticks provides the tick locators and label formatters for Smith
// chart axes. Linear steps in Γ-space correspond to wildly uneven steps in
// impedance space, so ticks are found by walking Γ-space and nice-rounding
// every step back in impedance space.
package ticks

import (
	"math"
	"math/cmplx"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"

	smith "github.com/scottprahl/pySmithPlot"
)

// tracer writes to trace with key 'ticks'
func tracer() tracing.Trace {
	return tracing.Select("ticks")
}

// Locator produces the ordered tick values of one grid family. The located
// values are exactly the parameter values the grid generator turns into
// circles.
type Locator interface {
	Ticks() []float64
}

// axisScale is the per-family view onto Γ-space: the real axis walks the
// real Γ interval [-1, 1], the imaginary axis walks the boundary angle.
type axisScale interface {
	transform(v float64) float64
	invert(t float64) float64
	outOfRange(t float64) bool
}

// niceRounder rounds impedance values to visually pleasant numbers, with
// the precision interpreted as significant decimals per decade.
type niceRounder struct {
	precision int
}

func (nr niceRounder) round(num float64, down bool) float64 {
	exp := math.Ceil(math.Log10(math.Abs(num) + smith.Epsilon))
	if exp < 1 { // fix for leading 0
		exp++
	}
	norm := math.Pow(10, -(exp - float64(nr.precision)))

	numNormed := num * norm
	if numNormed < 3.3 {
		norm *= 2
	} else if numNormed > 50 {
		norm /= 10
	}

	rem := math.Mod(numNormed, 10)
	var f func(float64) float64
	if !(1 < rem && rem < 9) {
		if math.Abs(rem-1) < smith.Epsilon {
			num -= 0.5 / norm
		}
		f = math.Round
	} else if down {
		f = math.Floor
	} else {
		f = math.Ceil
	}
	return f(roundTo(num*norm, 1)) / norm
}

func roundTo(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}

// walk collects ticks between vmin and vmax: the endpoints, the
// nice-rounded midpoint of the Γ interval, and then steps outward from the
// midpoint to either end, nice-rounding each step in impedance space.
func walk(s axisScale, nr niceRounder, steps int, vmin, vmax float64) []float64 {
	tmin, tmax := s.transform(vmin), s.transform(vmax)
	mean := s.transform(nr.round(s.invert(0.5*(tmin+tmax)), true))

	set := treemap.NewWith(utils.Float64Comparator)
	put := func(t float64) {
		v := s.invert(t)
		set.Put(roundTo(v, 7), struct{}{})
	}
	// endpoints enter unchanged; their Γ images sit too close to the
	// singularity for a faithful round trip through the clamped inverse
	set.Put(roundTo(vmin, 7), struct{}{})
	set.Put(roundTo(vmax, 7), struct{}{})
	put(mean)

	// The second walk starts with the first step width the first walk
	// settled on, so both sides spread comparably around the midpoint.
	d0 := math.Abs(tmin-tmax) / float64(steps+1)
	for _, dir := range []struct {
		sgn  float64
		down bool
		end  float64
	}{{1, false, tmax}, {-1, true, tmin}} {
		d, reset := d0, true
		last := mean
		for {
			next := last + d*dir.sgn
			if s.outOfRange(next) || math.Abs(dir.end-next) < d/2 {
				break
			}
			next = s.transform(nr.round(s.invert(next), dir.down))
			d = math.Abs(next - last)
			if reset {
				d0, reset = d, false
			}
			last = next
			put(last)
		}
	}

	out := make([]float64, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		out = append(out, it.Key().(float64))
	}
	tracer().Debugf("located %d ticks in [%g, %g]", len(out), vmin, vmax)
	return out
}

// === Real axis =============================================================

// RealLocator locates nicely rounded resistance (or conductance) values
// covering 0 to infinity, always including both.
type RealLocator struct {
	cfg   *smith.Config
	steps int
	nr    niceRounder
	ticks []float64
}

// NewRealLocator creates a locator with at most n spacing steps.
func NewRealLocator(cfg *smith.Config, n int) *RealLocator {
	if n <= 0 {
		panic("tick locator needs a positive step count")
	}
	return &RealLocator{cfg: cfg, steps: n, nr: niceRounder{precision: cfg.Precision}}
}

type realScale struct {
	norm float64
}

func (rs realScale) transform(v float64) float64 {
	return real(smith.Gamma(complex(v, 0), rs.norm))
}

func (rs realScale) invert(t float64) float64 {
	return real(smith.InvGammaClamped(complex(t, 0), rs.norm))
}

func (rs realScale) outOfRange(t float64) bool {
	return math.Abs(t) > 1
}

// Ticks returns the cached tick values, strictly increasing from 0 to
// Infinity.
func (l *RealLocator) Ticks() []float64 {
	if l.ticks == nil {
		l.ticks = l.TickValues(0, smith.Infinity)
	}
	return l.ticks
}

// TickValues locates ticks for an explicit value range.
func (l *RealLocator) TickValues(vmin, vmax float64) []float64 {
	return walk(realScale{norm: l.cfg.Norm()}, l.nr, l.steps, vmin, vmax)
}

// === Imaginary axis ========================================================

// ImagLocator locates reactance (or susceptance) values. The positive half
// is located like the real axis, but along the Γ boundary angle; the result
// is mirrored to negative values and therefore always zero-symmetric.
type ImagLocator struct {
	cfg   *smith.Config
	steps int
	nr    niceRounder
	ticks []float64
}

// NewImagLocator creates a locator with at most n spacing steps over the
// full axis, i.e. n/2 per half.
func NewImagLocator(cfg *smith.Config, n int) *ImagLocator {
	if n <= 0 {
		panic("tick locator needs a positive step count")
	}
	return &ImagLocator{cfg: cfg, steps: n / 2, nr: niceRounder{precision: cfg.Precision}}
}

type imagScale struct {
	norm float64
}

func (is imagScale) transform(v float64) float64 {
	return math.Pi - cmplx.Phase(smith.Gamma(complex(0, v), is.norm))
}

func (is imagScale) invert(t float64) float64 {
	g := cmplx.Rect(1, math.Pi+t)
	return imag(-smith.InvGammaClamped(g, is.norm))
}

func (is imagScale) outOfRange(t float64) bool {
	return t < 0 || t > math.Pi
}

// Ticks returns the cached tick values, zero-symmetric and strictly
// increasing from -Infinity to Infinity.
func (l *ImagLocator) Ticks() []float64 {
	if l.ticks == nil {
		pos := walk(imagScale{norm: l.cfg.Norm()}, l.nr, l.steps, 0, smith.Infinity)
		ticks := make([]float64, 0, 2*len(pos)-1)
		for i := len(pos) - 1; i > 0; i-- {
			ticks = append(ticks, -pos[i])
		}
		ticks = append(ticks, pos...)
		l.ticks = ticks
	}
	return l.ticks
}

// === Minor ticks ===========================================================

// MinorLocator subdivides the intervals between major ticks into n evenly
// spaced parts.
type MinorLocator struct {
	major Locator
	ndivs int
	ticks []float64
}

// NewMinorLocator creates a minor locator with n subdivisions per major
// interval.
func NewMinorLocator(major Locator, n int) *MinorLocator {
	if n <= 0 {
		panic("minor locator needs a positive subdivision count")
	}
	return &MinorLocator{major: major, ndivs: n}
}

// Ticks returns the interior minor tick values, excluding the major ticks
// themselves.
func (l *MinorLocator) Ticks() []float64 {
	if l.ticks == nil {
		major := l.major.Ticks()
		minor := make([]float64, 0, (len(major)-1)*(l.ndivs-1))
		for i := 0; i+1 < len(major); i++ {
			p0, p1 := major[i], major[i+1]
			for k := 1; k < l.ndivs; k++ {
				minor = append(minor, p0+(p1-p0)*float64(k)/float64(l.ndivs))
			}
		}
		l.ticks = minor
	}
	return l.ticks
}
