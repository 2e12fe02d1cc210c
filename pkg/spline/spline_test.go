package spline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func defaultLoop() []Vec2 {
	return []Vec2{
		V(100, 100), V(100, 500), V(300, 450),
		V(500, 500), V(500, 100), V(300, 150),
	}
}

func TestBezierInterpolatesEndpoints(t *testing.T) {
	pts := defaultLoop()
	for _, tension := range []float64{-1, -0.5, 0, 0.3, 0.75, 1} {
		segs := ClosedSegments(pts, tension)
		for i, seg := range segs {
			start, _ := seg.Eval(0)
			end, _ := seg.Eval(1)
			if start != pts[i] {
				t.Fatalf("tension %.2f segment %d: Eval(0)=%v, want %v", tension, i, start, pts[i])
			}
			want := pts[(i+1)%len(pts)]
			if end != want {
				t.Fatalf("tension %.2f segment %d: Eval(1)=%v, want %v", tension, i, end, want)
			}
		}
	}
}

func TestCoincidentPointsEvaluateExactly(t *testing.T) {
	p := V(5.1, -3.7)
	segs := ClosedSegments([]Vec2{p, p, p}, 0.25)
	for i, seg := range segs {
		for j := 0; j <= 100; j++ {
			u := float64(j) / 100
			if got := seg.Point(u); got != p {
				t.Fatalf("segment %d u=%.2f: %v, want %v", i, u, got, p)
			}
		}
	}
	table := BuildArcTable(segs, DefaultSamplesPerSegment)
	if table.Total() != 0 {
		t.Fatalf("total = %g, want exactly 0", table.Total())
	}
	if got := table.ParamAt(1e-16); got != 0 {
		t.Fatalf("ParamAt on zero-length table = %g, want 0", got)
	}
}

func TestAtLengthAndNormal(t *testing.T) {
	square := []Vec2{V(0, 0), V(100, 0), V(100, 100), V(0, 100)}
	tr := NewTrack(square, 1)
	pos, tan := tr.AtLength(450)
	if diff := cmp.Diff(V(50, 0), pos, cmpopts.EquateApprox(0, 0.05)); diff != "" {
		t.Fatalf("AtLength(450) wraps to the first edge (-want +got):\n%s", diff)
	}
	if tan.X <= 0 || math.Abs(tan.Y) > 1e-9 {
		t.Fatalf("tangent on the first edge = %v, want +x", tan)
	}

	n := tr.Normal(tr.ParamAtLength(150, false))
	if diff := cmp.Diff(V(-1, 0), n, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("normal on the right edge (-want +got):\n%s", diff)
	}
}

func TestCardinalToBezierCatmullRomTangents(t *testing.T) {
	p0, p1, p2, p3 := V(0, 0), V(6, 0), V(12, 6), V(12, 12)
	b := CardinalToBezier(p0, p1, p2, p3, 0)
	want := Bezier{p1, V(8, 1), V(11, 4), p2}
	approx := cmpopts.EquateApprox(0, 1e-9)
	if diff := cmp.Diff(want, b, approx); diff != "" {
		t.Fatalf("control points mismatch (-want +got):\n%s", diff)
	}

	// The derivative at the ends equals the cardinal tangent.
	_, t0 := b.Eval(0)
	if diff := cmp.Diff(V(6, 3), t0, approx); diff != "" {
		t.Fatalf("tangent at u=0 = %v, want (6,3)", t0)
	}
}

func TestTensionOneGivesPolygon(t *testing.T) {
	square := []Vec2{V(0, 0), V(100, 0), V(100, 100), V(0, 100)}
	tr := NewTrack(square, 1)
	if got := tr.Total(); math.Abs(got-400) > 1e-6 {
		t.Fatalf("total length = %.9f, want 400", got)
	}
}

func TestArcTableMonotonic(t *testing.T) {
	for _, tension := range []float64{-1, -0.5, 0, 0.25, 0.5, 0.9, 1} {
		tr := NewTrack(defaultLoop(), tension)
		tbl := tr.Table()
		if tbl.Len() != len(defaultLoop())*(DefaultSamplesPerSegment+1) {
			t.Fatalf("table size = %d", tbl.Len())
		}
		prev := tbl.At(0)
		if prev.Length != 0 || prev.Param != 0 {
			t.Fatalf("first sample = %+v, want zero", prev)
		}
		for i := 1; i < tbl.Len(); i++ {
			s := tbl.At(i)
			if s.Length < prev.Length {
				t.Fatalf("tension %.2f: length decreased at %d: %.6f < %.6f", tension, i, s.Length, prev.Length)
			}
			if s.Param < prev.Param {
				t.Fatalf("tension %.2f: param decreased at %d", tension, i)
			}
			prev = s
		}
		if tbl.Total() <= 0 {
			t.Fatalf("tension %.2f: expected positive total", tension)
		}
	}
}

func TestParamAtMatchesHighResolution(t *testing.T) {
	for _, tension := range []float64{0, 0.5} {
		coarse := NewTrack(defaultLoop(), tension)
		fine := NewTrack(defaultLoop(), tension)
		fine.SetResolution(2000)

		total := coarse.Total()
		if math.Abs(total-fine.Total()) > 1 {
			t.Fatalf("tension %.2f: totals diverge: %.3f vs %.3f", tension, total, fine.Total())
		}
		for i := 0; i <= 64; i++ {
			length := total * float64(i) / 64
			got, _ := coarse.Eval(coarse.ParamAtLength(length, false))
			want, _ := fine.Eval(fine.ParamAtLength(length, false))
			if d := got.Dist(want); d > 1.0 {
				t.Fatalf("tension %.2f length %.2f: position off by %.4f (%v vs %v)", tension, length, d, got, want)
			}
		}
	}
}

func TestParamAtEdgeCases(t *testing.T) {
	var empty ArcTable
	if got := empty.ParamAt(10); got != 0 {
		t.Fatalf("empty table ParamAt = %f, want 0", got)
	}

	degenerate := NewTrack([]Vec2{V(5, 5), V(5, 5), V(5, 5)}, 0)
	if degenerate.Total() != 0 {
		t.Fatalf("degenerate total = %f", degenerate.Total())
	}
	if got := degenerate.Table().ParamAt(3); got != 0 {
		t.Fatalf("zero-length table ParamAt = %f, want 0", got)
	}

	tr := NewTrack(defaultLoop(), 0)
	if got := tr.Table().ParamAt(tr.Total() + 1); got != float64(tr.Len()) {
		t.Fatalf("past-end ParamAt = %f, want %d", got, tr.Len())
	}
	if got := tr.Table().ParamAt(0); got != 0 {
		t.Fatalf("ParamAt(0) = %f, want 0", got)
	}
	if got := tr.ParamAtLength(-1, false); got != 0 {
		t.Fatalf("clamped negative = %f, want 0", got)
	}
	wrapped := tr.ParamAtLength(tr.Total()+10, true)
	direct := tr.ParamAtLength(10, true)
	if math.Abs(wrapped-direct) > 1e-9 {
		t.Fatalf("wrap mismatch: %f vs %f", wrapped, direct)
	}
}

func TestInvalidTrackShortCircuits(t *testing.T) {
	tr := NewTrack([]Vec2{V(1, 2)}, 0)
	if tr.Valid() {
		t.Fatal("single point track should be invalid")
	}
	if len(tr.Segments()) != 0 || tr.Table().Len() != 0 {
		t.Fatal("invalid track should have no segments or samples")
	}
	pos, tan := tr.Eval(0.5)
	if pos != (Vec2{}) || tan != (Vec2{}) {
		t.Fatalf("Eval on invalid track = %v %v", pos, tan)
	}
	if got := tr.ParamAtLength(5, true); got != 0 {
		t.Fatalf("ParamAtLength on invalid track = %f", got)
	}
}

func TestTrackMutationsRebuild(t *testing.T) {
	tr := NewTrack(defaultLoop(), 0)
	before := tr.Total()

	if !tr.MovePoint(0, V(0, 0)) {
		t.Fatal("MovePoint rejected valid index")
	}
	if tr.Total() == before {
		t.Fatal("moving a point should change the loop length")
	}
	if tr.MovePoint(99, V(0, 0)) {
		t.Fatal("MovePoint accepted out-of-range index")
	}

	tr.InsertPoint(1, V(50, 300))
	tr.RemovePoint(3)
	want := []Vec2{V(0, 0), V(50, 300), V(100, 500), V(500, 500), V(500, 100), V(300, 150)}
	if diff := cmp.Diff(want, tr.Points()); diff != "" {
		t.Fatalf("points mismatch (-want +got):\n%s", diff)
	}
	if len(tr.Segments()) != len(want) {
		t.Fatalf("segments = %d, want %d", len(tr.Segments()), len(want))
	}

	length := tr.Total()
	tr.SetTension(0.8)
	if tr.Total() == length {
		t.Fatal("changing tension should rebuild the table")
	}
}

func TestNearestPoint(t *testing.T) {
	tr := NewTrack(defaultLoop(), 0)
	if got := tr.NearestPoint(V(104, 97), 10); got != 0 {
		t.Fatalf("NearestPoint = %d, want 0", got)
	}
	if got := tr.NearestPoint(V(200, 300), 10); got != -1 {
		t.Fatalf("NearestPoint = %d, want -1", got)
	}
}
