// Package chart assembles the chart pieces into a renderer-facing facade:
// configuration, projection, tick locators with their formatters, and the
// grid generator. A host plotting system asks the chart for display-space
// polylines and labeled tick positions, and feeds plotted values through
// the Plot pipeline.
package chart

import (
	"math"

	"github.com/npillmayer/schuko/tracing"

	smith "github.com/scottprahl/pySmithPlot"
	"github.com/scottprahl/pySmithPlot/grid"
	"github.com/scottprahl/pySmithPlot/polygon"
	"github.com/scottprahl/pySmithPlot/ticks"
)

// tracer writes to trace with key 'chart'
func tracer() tracing.Trace {
	return tracing.Select("chart")
}

// Default flattening resolution for gridline polylines. Hosts that stroke
// true circular arcs skip the flattening and sample the arc primitives from
// MajorArcs/MinorArcs at 3 points instead.
const arcSamples = 50

// Chart is one Smith chart instance. It is safe to share between goroutines
// after construction as long as the configuration is not mutated.
type Chart struct {
	cfg  *smith.Config
	proj *smith.SmithProjection
	gen  *grid.Generator
	xloc *ticks.RealLocator
	yloc *ticks.ImagLocator
	xfmt ticks.Formatter
	yfmt ticks.Formatter

	viewport *polygon.Polygon // Γ-space, nil = whole disk
}

// New creates a chart for the given configuration.
func New(cfg *smith.Config) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	xloc := ticks.NewRealLocator(cfg, cfg.XMaxN)
	yloc := ticks.NewImagLocator(cfg, cfg.YMaxN)
	gen, err := grid.New(cfg, xloc, yloc)
	if err != nil {
		return nil, err
	}
	tracer().Infof("new chart, Z0 = %g%s, normalized = %v", cfg.Impedance, cfg.OhmSymbol, cfg.Normalize)
	return &Chart{
		cfg:  cfg,
		proj: smith.NewProjection(cfg),
		gen:  gen,
		xloc: xloc,
		yloc: yloc,
		xfmt: ticks.NewRealFormatter(cfg),
		yfmt: ticks.NewImagFormatter(cfg),
	}, nil
}

// Config returns the chart configuration.
func (c *Chart) Config() *smith.Config {
	return c.cfg
}

// Projection returns the impedance-to-display projection of this chart.
func (c *Chart) Projection() smith.Projection {
	return c.proj
}

// SetViewport restricts the grid to the Γ-space box spanned by the two
// corners; gridlines entirely outside are culled. A nil call is undone by
// ResetViewport.
func (c *Chart) SetViewport(p0, p1 smith.Pair) {
	c.viewport = polygon.Box(p0, p1)
}

// ResetViewport restores the full chart disk.
func (c *Chart) ResetViewport() {
	c.viewport = nil
}

// visible applies the viewport culling, if a viewport is set.
func (c *Chart) visible(arcs []grid.Arc) []grid.Arc {
	if c.viewport != nil {
		arcs = grid.Cull(c.cfg, arcs, c.viewport)
	}
	return arcs
}

// MajorArcs returns the major gridlines as arc primitives in impedance
// space, culled to the viewport. A circular arc is fully described by 3
// sample points (grid.Arc.Points), so hosts rendering arcs natively need
// not go through the flattened polylines.
func (c *Chart) MajorArcs() []grid.Arc {
	return c.visible(c.gen.Major())
}

// MinorArcs returns the minor gridlines as arc primitives in impedance
// space, culled to the viewport.
func (c *Chart) MinorArcs() []grid.Arc {
	return c.visible(c.gen.Minor())
}

// flatten samples arcs into display-space polylines.
func (c *Chart) flatten(arcs []grid.Arc) [][]smith.Pair {
	arcs = c.visible(arcs)
	disp := c.proj.Display()
	out := make([][]smith.Pair, 0, len(arcs))
	for _, a := range arcs {
		pts := a.Points(c.cfg, arcSamples)
		line := make([]smith.Pair, len(pts))
		for i, p := range pts {
			line[i] = disp.Project(p.C())
		}
		out = append(out, line)
	}
	return out
}

// MajorGrid returns the major gridlines as display-space polylines.
func (c *Chart) MajorGrid() [][]smith.Pair {
	return c.flatten(c.gen.Major())
}

// MinorGrid returns the minor gridlines as display-space polylines.
func (c *Chart) MinorGrid() [][]smith.Pair {
	return c.flatten(c.gen.Minor())
}

// Boundary returns the chart outline, the unit circle of Γ-space, as a
// display-space polyline.
func (c *Chart) Boundary() []smith.Pair {
	b := grid.Arc{Family: grid.RealAxis, At: 0, From: -smith.NearInfinity, To: smith.Infinity}
	pts := b.Points(c.cfg, 2*arcSamples)
	disp := c.proj.Display()
	out := make([]smith.Pair, len(pts))
	for i, p := range pts {
		out[i] = disp.Project(p.C())
	}
	return out
}

// TickLabel is one labeled axis position in display space. Ticks whose
// formatter yields an empty label are suppressed by the renderer, not by
// the chart.
type TickLabel struct {
	Value    float64
	Position smith.Pair
	Label    string
}

// RealTickLabels returns the resistance (or conductance) tick labels. The
// anchors sit on the real Γ axis.
func (c *Chart) RealTickLabels() []TickLabel {
	disp := c.proj.Display()
	norm := c.cfg.Norm()
	vals := c.xloc.Ticks()
	out := make([]TickLabel, 0, len(vals))
	for _, v := range vals {
		g := smith.Gamma(complex(v, 0), norm)
		out = append(out, TickLabel{
			Value:    v,
			Position: disp.Project(g),
			Label:    c.xfmt.Format(v),
		})
	}
	return out
}

// ImagTickLabels returns the reactance (or susceptance) tick labels. The
// anchors sit on the chart boundary.
func (c *Chart) ImagTickLabels() []TickLabel {
	disp := c.proj.Display()
	norm := c.cfg.Norm()
	vals := c.yloc.Ticks()
	out := make([]TickLabel, 0, len(vals))
	for _, v := range vals {
		g := smith.ClampToDisk(smith.Gamma(complex(0, v), norm))
		out = append(out, TickLabel{
			Value:    v,
			Position: disp.Project(g),
			Label:    c.yfmt.Format(v),
		})
	}
	return out
}

// VSWRCircle returns the circle of constant reflection magnitude through
// the impedance z as a display-space polyline. All impedances on it share
// the same standing wave ratio.
func (c *Chart) VSWRCircle(z complex128, samples int) []smith.Pair {
	if samples < 3 {
		samples = 3
	}
	if c.cfg.Normalize {
		z /= complex(c.cfg.Impedance, 0)
	}
	g := smith.Gamma(z, c.cfg.Norm())
	r := smith.Pair(g).Abs()
	disp := c.proj.Display()
	out := make([]smith.Pair, samples+1)
	for i := 0; i <= samples; i++ {
		ang := 2 * math.Pi * float64(i) / float64(samples)
		out[i] = disp.Project(smith.AngC(ang, r).C())
	}
	return out
}
