package smithchart

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayTransform(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	d := NewDisplay(cfg)
	center := d.Project(0)
	assert.True(t, center.Equal(P(0.5, 0.5)), "Γ = 0 projects to the axes center, got %v", center)
	right := d.Project(1)
	assert.True(t, right.Equal(P(0.5+cfg.Radius, 0.5)), "Γ = 1 projects to the disk edge, got %v", right)

	g := d.Unproject(d.Project(complex(0.3, -0.4)))
	assert.InDelta(t, 0.3, real(g), 1e-9)
	assert.InDelta(t, -0.4, imag(g), 1e-9)
}

func TestProjectionRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg, err := NewConfig(50)
	require.NoError(t, err)
	proj := NewProjection(cfg)
	for _, p := range []Pair{P(1, 0), P(0.5, 0.5), P(2, -1), P(0.1, 3)} {
		q := proj.Inverse(proj.Forward(p))
		assert.InDelta(t, p.X(), q.X(), 1e-6, "round trip of %v", p)
		assert.InDelta(t, p.Y(), q.Y(), 1e-6, "round trip of %v", p)
	}
}

func TestProjectionRotation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	cfg.Rotation = 90 * Deg2Rad
	d := NewDisplay(cfg)
	up := d.Project(1)
	assert.True(t, up.Equal(P(0.5, 0.5+cfg.Radius)), "rotated chart points Γ = 1 north, got %v", up)
}

func TestClampToDisk(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := ClampToDisk(complex(3, 4))
	assert.InDelta(t, 1, real(g)*real(g)+imag(g)*imag(g), 1e-12)
	inside := complex(0.2, 0.1)
	assert.Equal(t, inside, ClampToDisk(inside))
}

func TestLabelShift(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ls := NewLabelShift(P(0.5, 0.5), 0.02, 0.01)
	p := P(0.8, 0.5)
	s := ls.Shift(p)
	assert.Greater(t, s.X(), p.X(), "labels move outward from the center")
	q := ls.Unshift(s)
	assert.InDelta(t, p.X(), q.X(), 1e-12)
	assert.InDelta(t, p.Y(), q.Y(), 1e-12)

	// off-axis anchors shift the angle slightly, the inverse only holds
	// approximately there
	p = P(0.8, 0.6)
	q = ls.Unshift(ls.Shift(p))
	assert.InDelta(t, p.X(), q.X(), 1e-2)
	assert.InDelta(t, p.Y(), q.Y(), 1e-2)
}
