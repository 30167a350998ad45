package grid

import (
	"math"
	"math/cmplx"
	"sort"

	smith "github.com/scottprahl/pySmithPlot"
)

// segment is a minor gridline candidate before overlap removal and merging.
type segment struct {
	at, p0, p1 float64
}

// fancyMinor builds the minor grid in four steps: probe every major cell
// for the largest divider whose subdivisions stay above the threshold in
// Γ-space, smooth the divider matrix, expand the cells into line segments,
// and finally subtract the major arcs and merge adjacent leftovers.
func (g *Generator) fancyMinor(major []Arc) []Arc {
	norm := g.cfg.Norm()
	thrX := g.cfg.MinorThreshold / 1000
	thrY := g.cfg.MinorThreshold / 1000

	dividers := make([]int, len(g.cfg.MinorDividers))
	copy(dividers, g.cfg.MinorDividers)
	sort.Ints(dividers)

	xticks, yhalf := g.xticks, g.yhalf
	lenX, lenY := len(xticks)-1, len(yhalf)-1
	if lenX < 1 || lenY < 1 {
		return nil
	}

	// per-cell divider pair [x_div, y_div]
	dmat := make([][][2]int, lenX)
	for i := range dmat {
		dmat[i] = make([][2]int, lenY)
	}

	mz := func(x, y float64) complex128 { return smith.GammaXY(x, y, norm) }

	for i := 0; i < lenX; i++ {
		for k := 0; k < lenY; k++ {
			x0, x1 := xticks[i], xticks[i+1]
			y0, y1 := yhalf[k], yhalf[k+1]

			// cell midpoints, evenly spaced after the transform
			xm := smith.RealSpread([]float64{x0, x1}, 2, norm)[1]
			ym := smith.ImagSpread([]float64{y0, y1}, 2, norm)[1]

			xdiv, ydiv := dividers[0], dividers[0]
			for _, div := range dividers[1:] {
				if cmplx.Abs(mz(x1-(x1-x0)/float64(div), ym)-mz(x1, ym)) > thrX {
					xdiv = div
				} else {
					break
				}
			}
			for _, div := range dividers[1:] {
				if cmplx.Abs(mz(xm, y1)-mz(xm, y1-(y1-y0)/float64(div))) > thrY {
					ydiv = div
				} else {
					break
				}
			}
			dmat[i][k] = [2]int{xdiv, ydiv}
		}
	}

	// the x spacing along the real axis must not widen towards infinity
	for i := 0; i+1 < lenX; i++ {
		if dmat[i+1][0][0] > dmat[i][0][0] {
			dmat[i][0][0] = dmat[i+1][0][0]
		}
	}

	// extend the spacing of the cells around the chart center (z = norm,
	// Γ = 0) diagonally towards the border
	idx := sort.SearchFloat64s(xticks, norm) + 1
	idy := sort.SearchFloat64s(yhalf, norm)
	if idx > idy {
		for d := 0; d < idy; d++ {
			delta := idx - idy + d
			if delta >= lenX || d >= lenY {
				break
			}
			val := dmat[delta][0]
			for k := 0; k <= d; k++ {
				dmat[delta][k] = val
			}
			for i := 0; i < delta; i++ {
				dmat[i][d] = val
			}
		}
	} else {
		for d := 0; d < idx; d++ {
			delta := idy - idx + d
			if d >= lenX || delta >= lenY {
				break
			}
			val := dmat[d][0]
			for i := 0; i <= d; i++ {
				dmat[i][delta] = val
			}
			for k := 0; k < delta; k++ {
				dmat[d][k] = val
			}
		}
	}

	// expand cells into segments, mirrored into the lower half plane
	var xlines, ylines []segment
	for i := 0; i < lenX; i++ {
		x0, x1 := xticks[i], xticks[i+1]
		for k := 0; k < lenY; k++ {
			y0, y1 := yhalf[k], yhalf[k+1]
			xdiv, ydiv := dmat[i][k][0], dmat[i][k][1]

			for s := 1; s <= xdiv; s++ {
				xs := round7(x0 + (x1-x0)*float64(s)/float64(xdiv))
				xlines = append(xlines,
					segment{xs, round7(y0), round7(y1)},
					segment{xs, round7(-y1), round7(-y0)})
			}
			for s := 1; s <= ydiv; s++ {
				ys := round7(y0 + (y1-y0)*float64(s)/float64(ydiv))
				xr0, xr1 := round7(x0), round7(x1)
				ylines = append(ylines,
					segment{ys, xr0, xr1},
					segment{-ys, xr0, xr1})
			}
		}
	}

	var arcs []Arc
	for _, fam := range []struct {
		kind  Family
		lines []segment
	}{{RealAxis, xlines}, {ImagAxis, ylines}} {
		kept := removeCovered(fam.lines, major, fam.kind)
		if len(kept) == 0 {
			continue
		}
		sort.Slice(kept, func(a, b int) bool {
			if kept[a].at != kept[b].at {
				return kept[a].at < kept[b].at
			}
			return kept[a].p0 < kept[b].p0
		})

		// merge adjacent segments of the same line
		cur := kept[0]
		for _, s := range kept[1:] {
			if cur.at != s.at || math.Abs(cur.p1-s.p0) > smith.Epsilon {
				arcs = append(arcs, Arc{fam.kind, cur.at, cur.p0, cur.p1})
				cur = s
			} else {
				cur.p1 = s.p1
			}
		}
		arcs = append(arcs, Arc{fam.kind, cur.at, cur.p0, cur.p1})
	}
	return arcs
}

// removeCovered drops segments already covered by a major arc of the same
// family. Segments are normalized to p0 < p1 first.
func removeCovered(lines []segment, major []Arc, kind Family) []segment {
	kept := make([]segment, 0, len(lines))
	for _, ln := range lines {
		if ln.p0 > ln.p1 {
			ln.p0, ln.p1 = ln.p1, ln.p0
		}
		covered := false
		for _, q := range major {
			if q.Family != kind {
				continue
			}
			q0, q1 := math.Min(q.From, q.To), math.Max(q.From, q.To)
			if math.Abs(ln.at-q.At) < smith.Epsilon && ln.p1 > q0 && ln.p0 < q1 {
				covered = true
				break
			}
		}
		if !covered {
			kept = append(kept, ln)
		}
	}
	return kept
}

func round7(x float64) float64 {
	return math.Round(x*1e7) / 1e7
}
