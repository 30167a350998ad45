package smithchart

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if !IsInf(Infinity) || IsInf(1000) {
		t.Errorf("Expected only values beyond %g to be infinite", NearInfinity)
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.Equal(Origin) {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).Equal(Origin) {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180*Deg2Rad).Shifted(P(1, 0)).Equal(Origin) {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestAffineInversion(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := Scaling(0.43, 0.43).Combine(Translation(P(0.5, 0.5)))
	p := P(0.3, -0.7)
	q := m.Inverted().Transform(m.Transform(p))
	if !q.Equal(p) {
		t.Errorf("Expected inverse transform to recover %v, got %v", p, q)
	}
}

func TestParamKinds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !ZParameter.Valid() || !SParameter.Valid() || !YParameter.Valid() {
		t.Errorf("Expected all three parameter kinds to be valid")
	}
	if ParamKind(7).Valid() {
		t.Errorf("Expected unknown kind to be invalid")
	}
	if ZParameter.String() != "Z" {
		t.Errorf("Expected kind to print as Z, got %s", ZParameter)
	}
}
