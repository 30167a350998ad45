package grid

import (
	smith "github.com/scottprahl/pySmithPlot"
	"github.com/scottprahl/pySmithPlot/polygon"
)

// flattening resolution for visibility tests
const cullSamples = 24

// half-width of the ribbon an arc is fattened to before clipping; wide
// enough to survive float jitter, narrow enough not to leak neighbors in
const cullWidth = 1e-3

// Cull filters arcs down to those visible inside the viewport, a polygon
// in Γ-space (typically a Box over the zoomed region). The viewport is
// first clipped against the unit disk, then each arc is flattened and
// tested for overlap.
func Cull(cfg *smith.Config, arcs []Arc, viewport *polygon.Polygon) []Arc {
	disk := polygon.Disk(0, 1, 64)
	visible := polygon.Intersect(disk, viewport)
	if visible.N() == 0 {
		return nil
	}
	out := make([]Arc, 0, len(arcs))
	for _, a := range arcs {
		if visibleArc(a.Points(cfg, cullSamples), visible) {
			out = append(out, a)
		}
	}
	tracer().Debugf("culling kept %d of %d arcs", len(out), len(arcs))
	return out
}

// visibleArc decides whether a flattened arc reaches into the visible
// region. Any sample point inside settles it; boolean clipping of the
// fattened polyline is only the fallback for arcs that merely graze the
// region. The point test must come first: arc endpoints on the chart
// boundary coincide with vertices of the polygonized disk, and the clipper
// returns empty contours for such degenerate near-touching input.
func visibleArc(pts []smith.Pair, visible *polygon.Polygon) bool {
	for _, p := range pts {
		if visible.Contains(p) {
			return true
		}
	}
	return polygon.Ribbon(pts, cullWidth).Overlaps(visible)
}
