package chart

import (
	"errors"
	"fmt"
	"math"

	smith "github.com/scottprahl/pySmithPlot"
	"github.com/scottprahl/pySmithPlot/interp"
)

// ErrConflictingOptions indicates that both interpolation and equidistant
// resampling were requested for the same line.
var ErrConflictingOptions = errors.New("interpolation and equidistant resampling exclude each other")

// PlotOption mutates the per-line plot settings.
type PlotOption func(*plotOpts)

type plotOpts struct {
	datatype    smith.ParamKind
	interpolate int
	equidistant int
	markerHack  bool
	rotate      bool
}

// Datatype sets how the input values are interpreted: impedances,
// admittances or reflection coefficients.
func Datatype(kind smith.ParamKind) PlotOption {
	return func(o *plotOpts) { o.datatype = kind }
}

// Interpolate smooths the line with a spline in Γ-space, inserting steps
// intermediate points per segment. steps <= 0 uses the configured default.
func Interpolate(steps int) PlotOption {
	return func(o *plotOpts) {
		if steps <= 0 {
			steps = -1 // resolved to the configured default in Plot
		}
		o.interpolate = steps
	}
}

// Equidistant resamples the line to count points equally spaced along the
// splined Γ-space curve.
func Equidistant(count int) PlotOption {
	return func(o *plotOpts) { o.equidistant = count }
}

// MarkerHack replaces the start and end markers of the line with the
// configured dedicated markers.
func MarkerHack(rotate bool) PlotOption {
	return func(o *plotOpts) { o.markerHack = true; o.rotate = rotate }
}

// Line is one plotted data line after the transform pipeline. Values holds
// the normalized impedance-plane points, Gamma their reflection
// coefficients, Display the projected points a renderer strokes.
type Line struct {
	Values  []smith.Pair
	Gamma   []smith.Pair
	Display []smith.Pair

	// endpoint-marker cosmetics
	StartMarker string
	EndMarker   string
	EndAngle    float64 // rotation of the end marker, radians CCW from north
}

// Plot feeds values through the chart pipeline: interpret them per
// datatype, normalize, optionally smooth or resample in Γ-space, and
// project into the display frame.
//
// S-parameters are reflection coefficients already and are mapped back
// into the impedance plane without normalization; admittances are
// reciprocated first.
func (c *Chart) Plot(values []complex128, options ...PlotOption) (*Line, error) {
	opts := plotOpts{
		datatype:   c.cfg.Datatype,
		markerHack: c.cfg.Markers.Hack,
		rotate:     c.cfg.Markers.Rotate,
	}
	for _, o := range options {
		o(&opts)
	}
	if !opts.datatype.Valid() {
		return nil, fmt.Errorf("%w: %v", smith.ErrInvalidDatatype, opts.datatype)
	}
	if opts.interpolate < 0 {
		opts.interpolate = c.cfg.Interpolation
	}
	if opts.interpolate > 0 && opts.equidistant > 0 {
		return nil, ErrConflictingOptions
	}

	norm := c.cfg.Norm()
	z := make([]smith.Pair, len(values))
	for i, v := range values {
		switch opts.datatype {
		case smith.SParameter:
			z[i] = smith.Pair(smith.InvGammaClamped(v, norm))
		case smith.YParameter:
			if v == 0 {
				z[i] = smith.P(smith.Infinity, 0)
			} else {
				z[i] = smith.Pair(1 / v)
			}
		default:
			z[i] = smith.Pair(v)
		}
		if c.cfg.Normalize && opts.datatype != smith.SParameter {
			z[i] = z[i].Scaled(1 / c.cfg.Impedance)
		}
	}

	gamma := make([]smith.Pair, len(z))
	for i, p := range z {
		gamma[i] = smith.Pair(smith.Gamma(p.C(), norm))
	}

	if len(gamma) > 1 {
		switch {
		case opts.equidistant > 0:
			gamma = interp.Equidistant(gamma, opts.equidistant)
		case opts.interpolate > 0:
			gamma = interp.Smooth(gamma, opts.interpolate)
		}
		if opts.equidistant > 0 || opts.interpolate > 0 {
			z = make([]smith.Pair, len(gamma))
			for i, g := range gamma {
				z[i] = smith.Pair(smith.InvGammaClamped(g.C(), norm))
			}
		}
	}

	disp := c.proj.Display()
	display := make([]smith.Pair, len(gamma))
	for i, g := range gamma {
		display[i] = disp.Project(g.C())
	}

	line := &Line{Values: z, Gamma: gamma, Display: display}
	if opts.markerHack {
		line.StartMarker = c.cfg.Markers.Start
		line.EndMarker = c.cfg.Markers.End
		if opts.rotate && len(display) > 1 {
			d := display[len(display)-1] - display[len(display)-2]
			// marker glyphs point north, so rotate relative to the y axis
			line.EndAngle = math.Atan2(d.Y(), d.X()) - math.Pi/2
		}
	}
	tracer().Debugf("plotted %d values as %d display points", len(values), len(display))
	return line, nil
}
