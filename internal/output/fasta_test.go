// internal/output/fasta_test.go
package output

import (
	"bytes"
	"testing"

	"seqextract-core/extract"
)

func TestWritePair_ExactLayout(t *testing.T) {
	var buf bytes.Buffer
	p := extract.Pair{Name: "chr1", Forward: "GTACGTACGT", RevComp: "ACGTACGTAC", Start: 10, End: 20, SeqLen: 50}
	if err := WritePair(&buf, p); err != nil {
		t.Fatalf("WritePair: %v", err)
	}
	want := ">chr1 range=chr1:11-20 5'pad=0 3'pad=0 strand=+ repeatMasking=none\n" +
		"GTACGTACGT\n" +
		">chr1_rev_compl range=chr1_rev_compl:31-40 5'pad=0 3'pad=0 strand=+ repeatMasking=none\n" +
		"ACGTACGTAC\n"
	if buf.String() != want {
		t.Fatalf("layout changed:\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestRanges_WholeSequence(t *testing.T) {
	p := extract.Pair{Start: 0, End: 8, SeqLen: 8}
	if s, e := ForwardRange(p); s != 1 || e != 8 {
		t.Errorf("forward %d-%d", s, e)
	}
	if s, e := RevCompRange(p); s != 1 || e != 8 {
		t.Errorf("revcomp %d-%d", s, e)
	}
}
