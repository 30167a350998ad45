package polygon

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	smith "github.com/scottprahl/pySmithPlot"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(smith.P(0, 0)).Knot(smith.P(1, 3)).Knot(smith.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(smith.P(0, 5), smith.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
}

func TestIntersect(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(smith.P(0, 0), smith.P(2, 2))
	b := Box(smith.P(1, 1), smith.P(3, 3))
	isect := Intersect(a, b)
	L().Infof("isect = %s", AsString(isect))
	if isect.N() < 3 {
		t.Errorf("expected a non-empty intersection, got %d corners", isect.N())
	}
	c := Box(smith.P(5, 5), smith.P(6, 6))
	if a.Overlaps(c) {
		t.Errorf("disjoint boxes must not overlap")
	}
}

func TestDiskOverlap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	disk := Disk(smith.P(0, 0), 1, 32)
	if disk.N() != 32 {
		t.Errorf("expected 32 corners, got %d", disk.N())
	}
	inner := Box(smith.P(-0.2, -0.2), smith.P(0.2, 0.2))
	if !disk.Overlaps(inner) {
		t.Errorf("box inside the disk must overlap it")
	}
	outer := Box(smith.P(2, 2), smith.P(3, 3))
	if disk.Overlaps(outer) {
		t.Errorf("box outside the disk must not overlap it")
	}
}

func TestContains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	disk := Disk(smith.P(0, 0), 1, 64)
	if !disk.Contains(smith.P(0.3, -0.9)) {
		t.Errorf("point well inside the disk must be contained")
	}
	if disk.Contains(smith.P(1.2, 0)) {
		t.Errorf("point outside the disk must not be contained")
	}
	if NullPolygon().Knot(smith.P(0, 0)).Knot(smith.P(1, 1)).Contains(smith.P(0.5, 0.5)) {
		t.Errorf("a degenerate polygon contains nothing")
	}
}

func TestRibbon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	line := []smith.Pair{smith.P(0, 0), smith.P(1, 0), smith.P(2, 0)}
	rb := Ribbon(line, 0.1)
	if rb.N() != 2*len(line) {
		t.Errorf("expected %d corners, got %d", 2*len(line), rb.N())
	}
	window := Box(smith.P(0.5, -0.05), smith.P(1.5, 0.05))
	if !rb.Overlaps(window) {
		t.Errorf("ribbon must overlap a window on its spine")
	}
}
