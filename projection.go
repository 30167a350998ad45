package smithchart

import (
	"math"
	"math/cmplx"
)

// Projection is the contract a host plotting system consumes: a bidirectional
// mapping between chart data coordinates and the bounded display frame. A
// host adapter depends on this interface only, never on a concrete chart
// type.
type Projection interface {
	Forward(p Pair) Pair
	Inverse(p Pair) Pair
}

// Display maps reflection coefficients (the unit disk) into the chart's
// drawing area: Γ-space scaled by the configured radius, rotated by the
// orientation offset and translated to the (0.5, 0.5) axes center.
type Display struct {
	affine  AT
	inverse AT
}

// NewDisplay builds the display transform for a configuration.
func NewDisplay(cfg *Config) *Display {
	m := Scaling(cfg.Radius, cfg.Radius)
	if !Is0(cfg.Rotation) {
		m = Rotation(cfg.Rotation).Combine(m)
	}
	m = m.Combine(Translation(P(0.5, 0.5)))
	return &Display{affine: m, inverse: m.Inverted()}
}

// Project maps a reflection coefficient to a display point. Points with
// |Γ| > 1 stay continuous and land outside the drawing disk; the chart
// clips them, it does not reject them.
func (d *Display) Project(g complex128) Pair {
	return d.affine.Transform(C2P(g))
}

// Unproject maps a display point back to a reflection coefficient.
func (d *Display) Unproject(p Pair) complex128 {
	return d.inverse.Transform(p).C()
}

// ClampToDisk clips a reflection coefficient to the unit disk boundary,
// preserving its phase. Used for off-chart data that must degrade
// gracefully instead of raising.
func ClampToDisk(g complex128) complex128 {
	if r := cmplx.Abs(g); r > 1 {
		return g / complex(r, 0)
	}
	return g
}

// SmithProjection composes the Möbius transform with the display transform:
// the forward direction maps an impedance-plane point to a display point,
// the inverse direction maps back. It is the chart's registration under the
// host's projection contract.
type SmithProjection struct {
	cfg     *Config
	display *Display
}

var _ Projection = &SmithProjection{}

// NewProjection creates the projection for a chart configuration.
func NewProjection(cfg *Config) *SmithProjection {
	return &SmithProjection{cfg: cfg, display: NewDisplay(cfg)}
}

// Display exposes the bare Γ-to-display stage, used once per gridline
// vertex and tick position.
func (sp *SmithProjection) Display() *Display {
	return sp.display
}

// Forward maps an impedance-plane point into the display frame.
func (sp *SmithProjection) Forward(p Pair) Pair {
	return sp.display.Project(Gamma(p.C(), sp.cfg.Norm()))
}

// Inverse maps a display point back to the impedance plane. The Γ = 1
// singularity is substituted by its ε-clamped stand-in so that host event
// handling (picking, cursor readout) never faults on the boundary.
func (sp *SmithProjection) Inverse(p Pair) Pair {
	return C2P(InvGammaClamped(sp.display.Unproject(p), sp.cfg.Norm()))
}

// LabelShift pushes tick-label anchors radially outward from the chart
// center, with an extra vertical shift of half the font size so labels
// clear their contours. The zero value is unusable; construct with
// NewLabelShift.
type LabelShift struct {
	Center   Pair
	Pad      float64
	FontSize float64
}

// NewLabelShift builds a label translation relative to the given chart
// center (in display coordinates).
func NewLabelShift(center Pair, pad, fontSize float64) LabelShift {
	return LabelShift{Center: center, Pad: pad, FontSize: fontSize}
}

// Shift translates a point outward from the center.
func (ls LabelShift) Shift(p Pair) Pair {
	ang := math.Atan2(p.Y()-ls.Center.Y(), p.X()-ls.Center.X())
	return P(
		p.X()+math.Cos(ang)*ls.Pad,
		p.Y()+math.Sin(ang)*(ls.Pad+0.5*ls.FontSize),
	)
}

// Unshift reverses Shift, recomputing the angle from the shifted point.
// Off-axis anchors invert only approximately.
func (ls LabelShift) Unshift(p Pair) Pair {
	ang := math.Atan2(p.Y()-ls.Center.Y(), p.X()-ls.Center.X())
	return P(
		p.X()-math.Cos(ang)*ls.Pad,
		p.Y()-math.Sin(ang)*(ls.Pad+0.5*ls.FontSize),
	)
}
