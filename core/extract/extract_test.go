package extract

import (
	"strings"
	"testing"

	"seqextract-core/coords"
)

var ref50 = strings.Repeat("ACGT", 13)[:50]

func TestExtract_Scenario(t *testing.T) {
	p, ok := Extract(coords.Record{Name: "chr1", Start: 10, End: 20}, ref50, Bounds{Min: 1, Max: 1000})
	if !ok {
		t.Fatal("expected record to pass filters")
	}
	if p.Forward != ref50[10:20] {
		t.Errorf("forward = %s, want %s", p.Forward, ref50[10:20])
	}
	if p.RevComp != RevComp(ref50[10:20]) {
		t.Errorf("revcomp = %s", p.RevComp)
	}
	if p.Start != 10 || p.End != 20 || p.SeqLen != 50 || p.Source != "chr1" {
		t.Errorf("coords = %+v", p)
	}
	if p.Name != "" {
		t.Errorf("name must be unset before dedup, got %q", p.Name)
	}
}

func TestExtract_ClampsPadding(t *testing.T) {
	p, ok := Extract(coords.Record{Name: "c", Start: -5, End: 60}, ref50, Bounds{Min: 1, Max: 1000})
	if !ok || p.Start != 0 || p.End != 50 || p.Forward != ref50 {
		t.Fatalf("got %+v ok=%v", p, ok)
	}
}

func TestExtract_LengthFilterEdges(t *testing.T) {
	b := Bounds{Min: 5, Max: 10}
	cases := []struct {
		span int
		want bool
	}{
		{4, false}, // Min-1
		{5, true},  // Min
		{10, true}, // Max
		{11, false},
	}
	for _, tc := range cases {
		_, ok := Extract(coords.Record{Name: "c", Start: 0, End: tc.span}, ref50, b)
		if ok != tc.want {
			t.Errorf("span %d: ok=%v, want %v", tc.span, ok, tc.want)
		}
	}
}

func TestExtract_InvertedAfterClampDoesNotPanic(t *testing.T) {
	// start beyond the end of the reference: clamped end < start.
	_, ok := Extract(coords.Record{Name: "c", Start: 70, End: 90}, ref50, Bounds{Min: 0, Max: 1000})
	if ok {
		t.Fatal("negative span must be rejected")
	}
	// zero-length at the very end is allowed when Min is 0.
	p, ok := Extract(coords.Record{Name: "c", Start: 50, End: 80}, ref50, Bounds{Min: 0, Max: 1000})
	if !ok || p.Forward != "" || p.RevComp != "" {
		t.Fatalf("zero span: %+v ok=%v", p, ok)
	}
}

func TestClampIdempotent(t *testing.T) {
	for _, c := range [][3]int{{-3, 10, 8}, {2, 5, 8}, {9, 20, 8}, {-1, -1, 0}} {
		s1, e1 := Clamp(c[0], c[1], c[2])
		s2, e2 := Clamp(s1, e1, c[2])
		if s1 != s2 || e1 != e2 {
			t.Errorf("Clamp not idempotent for %v: (%d,%d) then (%d,%d)", c, s1, e1, s2, e2)
		}
	}
}

func TestPairNamed(t *testing.T) {
	p := Pair{Forward: "AC"}
	q := p.Named("x-1")
	if p.Name != "" || q.Name != "x-1" || q.Forward != "AC" {
		t.Fatalf("Named mutated or lost fields: p=%+v q=%+v", p, q)
	}
}
