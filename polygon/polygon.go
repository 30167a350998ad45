// Package polygon provides simple polygons and boolean clipping, used by
// the grid generator to cull arcs against a zoomed viewport. Polygons are
// built with a builder pattern, clipping is delegated to polyclip-go.
package polygon

import (
	"fmt"
	"math"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"

	smith "github.com/scottprahl/pySmithPlot"
)

// L traces to a tracer with key 'polygon'.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a planar polygon, open while being built, closed by Cycle().
type Polygon struct {
	points []smith.Pair
	closed bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a corner point. Part of builder functionality.
func (pg *Polygon) Knot(p smith.Pair) *Polygon {
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.closed = true
	return pg
}

// N returns the corner count.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Pt returns corner i.
func (pg *Polygon) Pt(i int) smith.Pair {
	return pg.points[i]
}

// IsCycle is a predicate: has this polygon been closed?
func (pg *Polygon) IsCycle() bool {
	return pg.closed
}

// Box creates a rectangle from two opposite corners.
func Box(p1, p2 smith.Pair) *Polygon {
	x0, x1 := math.Min(p1.X(), p2.X()), math.Max(p1.X(), p2.X())
	y0, y1 := math.Min(p1.Y(), p2.Y()), math.Max(p1.Y(), p2.Y())
	return NullPolygon().
		Knot(smith.P(x0, y0)).
		Knot(smith.P(x1, y0)).
		Knot(smith.P(x1, y1)).
		Knot(smith.P(x0, y1)).
		Cycle()
}

// Disk approximates a circle by a regular polygon with the given number of
// segments.
func Disk(center smith.Pair, radius float64, segments int) *Polygon {
	if segments < 3 {
		segments = 3
	}
	pg := NullPolygon()
	for i := 0; i < segments; i++ {
		ang := 2 * math.Pi * float64(i) / float64(segments)
		pg.Knot(center + smith.AngC(ang, radius))
	}
	return pg.Cycle()
}

// Ribbon fattens a polyline into a closed polygon of the given half-width,
// so open arcs can participate in boolean clipping.
func Ribbon(line []smith.Pair, halfwidth float64) *Polygon {
	if len(line) == 0 {
		return NullPolygon()
	}
	if len(line) == 1 {
		return Box(line[0]+smith.P(-halfwidth, -halfwidth), line[0]+smith.P(halfwidth, halfwidth))
	}
	pg := NullPolygon()
	offset := func(i int, sign float64) smith.Pair {
		var dir smith.Pair
		switch {
		case i == 0:
			dir = line[1] - line[0]
		case i == len(line)-1:
			dir = line[i] - line[i-1]
		default:
			dir = line[i+1] - line[i-1]
		}
		a := dir.Abs()
		if smith.Is0(a) {
			return line[i]
		}
		normal := smith.P(-dir.Y()/a, dir.X()/a)
		return line[i] + normal.Scaled(sign*halfwidth)
	}
	for i := 0; i < len(line); i++ {
		pg.Knot(offset(i, 1))
	}
	for i := len(line) - 1; i >= 0; i-- {
		pg.Knot(offset(i, -1))
	}
	return pg.Cycle()
}

// Contains is a predicate: does the polygon contain point p? Ray casting;
// points exactly on an edge may land on either side.
func (pg *Polygon) Contains(p smith.Pair) bool {
	n := len(pg.points)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := pg.points[i].F()
		xj, yj := pg.points[j].F()
		if (yi > p.Y()) != (yj > p.Y()) &&
			p.X() < (xj-xi)*(p.Y()-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// AsString is a debug Stringer for polygons.
func AsString(pg *Polygon) string {
	s := ""
	for i, p := range pg.points {
		if i > 0 {
			s += " -- "
		}
		s += fmt.Sprintf("%s", p)
	}
	if pg.closed {
		s += " -- cycle"
	}
	return s
}

func (pg *Polygon) clipPoly() polyclip.Polygon {
	contour := make(polyclip.Contour, 0, len(pg.points))
	for _, p := range pg.points {
		contour = append(contour, polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return polyclip.Polygon{contour}
}

func fromClipPoly(cp polyclip.Polygon) *Polygon {
	pg := NullPolygon()
	if len(cp) == 0 {
		return pg
	}
	// keep the largest contour; clipping chart geometry never produces
	// meaningful holes
	best := 0
	for i := 1; i < len(cp); i++ {
		if len(cp[i]) > len(cp[best]) {
			best = i
		}
	}
	for _, pt := range cp[best] {
		pg.Knot(smith.P(pt.X, pt.Y))
	}
	return pg.Cycle()
}

// Intersect clips pg against other and returns the intersection polygon,
// possibly empty.
func Intersect(pg, other *Polygon) *Polygon {
	if pg.N() < 3 || other.N() < 3 {
		return NullPolygon()
	}
	result := pg.clipPoly().Construct(polyclip.INTERSECTION, other.clipPoly())
	L().Debugf("intersection of %d-gon and %d-gon has %d contours", pg.N(), other.N(), len(result))
	return fromClipPoly(result)
}

// Overlaps is a predicate: do the two polygons share interior area?
func (pg *Polygon) Overlaps(other *Polygon) bool {
	return Intersect(pg, other).N() > 0
}
