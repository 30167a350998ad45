package chart

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smith "github.com/scottprahl/pySmithPlot"
)

func testChart(t *testing.T) *Chart {
	t.Helper()
	c, err := New(smith.DefaultConfig())
	require.NoError(t, err)
	return c
}

func TestNewChartValidates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := smith.DefaultConfig()
	cfg.Impedance = -1
	_, err := New(cfg)
	assert.ErrorIs(t, err, smith.ErrNonPositiveImpedance)
}

func TestBoundary(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := testChart(t)
	pts := c.Boundary()
	require.NotEmpty(t, pts)
	center := smith.P(0.5, 0.5)
	for _, p := range pts {
		assert.InDelta(t, c.Config().Radius, (p - center).Abs(), 1e-9,
			"boundary point %v must sit on the chart circle", p)
	}
}

func TestMajorGridPolylines(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := testChart(t)
	lines := c.MajorGrid()
	require.NotEmpty(t, lines)
	center := smith.P(0.5, 0.5)
	for _, line := range lines {
		require.NotEmpty(t, line)
		for _, p := range line {
			assert.LessOrEqual(t, (p-center).Abs(), c.Config().Radius+1e-6,
				"gridline point %v leaves the drawing disk", p)
		}
	}
}

func TestMinorGridDisabledByDefault(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := testChart(t)
	assert.Empty(t, c.MinorGrid())
}

func TestArcPrimitives(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := testChart(t)
	arcs := c.MajorArcs()
	require.NotEmpty(t, arcs)
	assert.Equal(t, len(arcs), len(c.MajorGrid()), "primitives and polylines describe the same grid")
	// three samples suffice for a host that strokes circular arcs natively
	pts := arcs[0].Points(c.Config(), 3)
	assert.Len(t, pts, 3)
}

func TestViewportCulling(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := testChart(t)
	full := len(c.MajorGrid())
	c.SetViewport(smith.P(0.4, 0.4), smith.P(1, 1))
	zoomed := len(c.MajorGrid())
	assert.Less(t, zoomed, full, "a zoomed viewport must drop gridlines")
	c.ResetViewport()
	assert.Equal(t, full, len(c.MajorGrid()))
}

func TestRealTickLabels(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := testChart(t)
	labels := c.RealTickLabels()
	require.NotEmpty(t, labels)

	var foundCenter, foundZero bool
	for _, l := range labels {
		if l.Value == 1 {
			foundCenter = true
			assert.True(t, l.Position.Equal(smith.P(0.5, 0.5)), "the center tick anchors at the axes center")
			assert.Equal(t, "1", l.Label)
		}
		if l.Value == 0 {
			foundZero = true
			assert.Equal(t, "", l.Label, "zero stays unlabeled on the real axis")
		}
	}
	assert.True(t, foundCenter)
	assert.True(t, foundZero)
}

func TestImagTickLabels(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := testChart(t)
	labels := c.ImagTickLabels()
	require.NotEmpty(t, labels)
	center := smith.P(0.5, 0.5)
	for _, l := range labels {
		assert.InDelta(t, c.Config().Radius, (l.Position - center).Abs(), 1e-6,
			"imaginary tick %g anchors on the boundary", l.Value)
	}
	last := labels[len(labels)-1]
	assert.Equal(t, c.Config().InfinitySymbol, last.Label)
}

func TestVSWRCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := testChart(t)
	pts := c.VSWRCircle(100, 36) // Γ = 1/3 against the normalized center
	require.Len(t, pts, 37)
	center := smith.P(0.5, 0.5)
	want := c.Config().Radius / 3
	for _, p := range pts {
		assert.InDelta(t, want, (p - center).Abs(), 1e-9)
	}
}

func TestVSWRCircleUnnormalized(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := smith.DefaultConfig()
	cfg.Normalize = false
	c, err := New(cfg)
	require.NoError(t, err)
	pts := c.VSWRCircle(150, 12) // Γ = 1/2 against Z0 = 50
	center := smith.P(0.5, 0.5)
	for _, p := range pts {
		assert.InDelta(t, cfg.Radius/2, (p-center).Abs(), 1e-9)
	}
}

func TestEndAngle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := testChart(t)
	// a horizontal run to the right means the end marker turns -90° from north
	line, err := c.Plot([]complex128{10, 100}, Datatype(smith.ZParameter), MarkerHack(true))
	require.NoError(t, err)
	require.Len(t, line.Display, 2)
	assert.InDelta(t, -math.Pi/2, line.EndAngle, 1e-9)
	assert.Equal(t, c.Config().Markers.Start, line.StartMarker)
	assert.Equal(t, c.Config().Markers.End, line.EndMarker)
}
