package grid

import (
	"errors"
	"math"
	"math/cmplx"

	smith "github.com/scottprahl/pySmithPlot"
	"github.com/scottprahl/pySmithPlot/ticks"
)

// ErrAsymmetricTicks indicates imaginary-axis ticks that are not symmetric
// about zero. The fancy grid mirrors the upper half plane and cannot work
// with anything else.
var ErrAsymmetricTicks = errors.New("fancy grid needs zero-symmetric imaginary ticks")

// Generator turns the located ticks of both axes into gridline arcs. It is
// created per chart and caches its results until Invalidate is called.
type Generator struct {
	cfg    *smith.Config
	xloc   ticks.Locator
	yloc   ticks.Locator
	xticks []float64
	yhalf  []float64 // non-negative half of the imaginary ticks
	major  []Arc
	minor  []Arc
}

// New creates a generator for the given configuration and major tick
// locators. It fails with ErrAsymmetricTicks if the imaginary ticks are not
// mirrored around zero.
func New(cfg *smith.Config, xloc, yloc ticks.Locator) (*Generator, error) {
	yhalf, err := upperHalf(yloc.Ticks())
	if err != nil {
		return nil, err
	}
	return &Generator{
		cfg:    cfg,
		xloc:   xloc,
		yloc:   yloc,
		xticks: append([]float64{}, xloc.Ticks()...),
		yhalf:  yhalf,
	}, nil
}

// upperHalf verifies zero symmetry and returns the ticks from zero upward.
func upperHalf(yticks []float64) ([]float64, error) {
	if len(yticks)%2 != 1 {
		return nil, ErrAsymmetricTicks
	}
	mid := (len(yticks) - 1) / 2
	for i := 0; i <= mid; i++ {
		if math.Abs(yticks[mid+i]+yticks[mid-i]) > smith.Epsilon {
			return nil, ErrAsymmetricTicks
		}
	}
	return append([]float64{}, yticks[mid:]...), nil
}

// Invalidate drops the cached arcs, forcing regeneration on next access.
func (g *Generator) Invalidate() {
	g.major, g.minor = nil, nil
}

// Major returns the major gridline arcs. The slice is cached; callers must
// not modify it.
func (g *Generator) Major() []Arc {
	if !g.cfg.GridMajor.Enable {
		return nil
	}
	if g.major == nil {
		if g.cfg.GridMajor.Fancy {
			g.major = g.fancyMajor()
		} else {
			g.major = g.plain(g.xticks, g.yloc.Ticks())
		}
		tracer().Debugf("generated %d major arcs", len(g.major))
	}
	return g.major
}

// Minor returns the minor gridline arcs. The fancy variant depends on the
// major arcs and subtracts everything they already cover.
func (g *Generator) Minor() []Arc {
	if !g.cfg.GridMinor.Enable {
		return nil
	}
	if g.minor == nil {
		if g.cfg.GridMinor.Fancy {
			g.minor = g.fancyMinor(g.Major())
		} else {
			xminor := ticks.NewMinorLocator(g.xloc, g.cfg.MinorAuto)
			yminor := ticks.NewMinorLocator(g.yloc, g.cfg.MinorAuto)
			g.minor = g.plain(xminor.Ticks(), yminor.Ticks())
		}
		tracer().Debugf("generated %d minor arcs", len(g.minor))
	}
	return g.minor
}

// plain draws one full-length arc per tick. Ticks at infinity degenerate to
// the point Γ = 1 and are skipped.
func (g *Generator) plain(xticks, yticks []float64) []Arc {
	arcs := make([]Arc, 0, len(xticks)+len(yticks))
	for _, xs := range xticks {
		if xs < smith.NearInfinity {
			arcs = append(arcs, Arc{RealAxis, xs, -smith.NearInfinity, smith.Infinity})
		}
	}
	for _, ys := range yticks {
		if math.Abs(ys) < smith.NearInfinity {
			arcs = append(arcs, Arc{ImagAxis, ys, 0, smith.Infinity})
		}
	}
	return arcs
}

// fancyMajor thins the major grid: wherever two neighboring reactance lines
// come closer than the threshold (measured in Γ-space), the denser one is
// truncated at the current resistance value and dropped from the walk; the
// resistance lines get the same treatment against the reactance ticks.
// Every line is added exactly once since at infinity all distances collapse
// below any threshold.
func (g *Generator) fancyMajor() []Arc {
	thrX := g.cfg.MajorThresholdX / 1000
	thrY := g.cfg.MajorThresholdY / 1000
	norm := g.cfg.Norm()

	var arcs []Arc
	add := func(f Family, at, from, to float64) {
		if from == to {
			return
		}
		arcs = append(arcs, Arc{f, at, from, to})
	}

	// the real axis first
	add(ImagAxis, g.yhalf[0], 0, smith.Infinity)

	ys := append([]float64{}, g.yhalf...)
	for _, xs := range g.xticks {
		k := 1
		for k < len(ys) {
			y0, y1 := ys[k-1], ys[k]
			if cmplx.Abs(smith.GammaXY(xs, y0, norm)-smith.GammaXY(xs, y1, norm)) < thrX {
				add(ImagAxis, y1, 0, xs)
				add(ImagAxis, -y1, 0, xs)
				ys = append(ys[:k], ys[k+1:]...)
			} else {
				k++
			}
		}
	}

	xs := append([]float64{}, g.xticks...)
	for i := 1; i < len(g.yhalf); i++ {
		y0, y1 := g.yhalf[i-1], g.yhalf[i]
		k := 1
		for k < len(xs) {
			x0, x1 := xs[k-1], xs[k]
			if cmplx.Abs(smith.GammaXY(x0, y1, norm)-smith.GammaXY(x1, y1, norm)) < thrY {
				add(RealAxis, x1, -y0, y0)
				xs = append(xs[:k], xs[k+1:]...)
			} else {
				k++
			}
		}
	}
	return arcs
}
