// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"seqextract-core/extract"
)

// RevCompSuffix is appended to the output name of the reverse-complement record.
const RevCompSuffix = "_rev_compl"

// HeaderTail is the fixed annotation carried by every header line.
const HeaderTail = "5'pad=0 3'pad=0 strand=+ repeatMasking=none"

// ForwardRange is the 1-based inclusive interval of the forward record.
func ForwardRange(p extract.Pair) (int, int) {
	return p.Start + 1, p.End
}

// RevCompRange is the 1-based inclusive interval of the reverse-complement
// record on the reverse strand.
func RevCompRange(p extract.Pair) (int, int) {
	return p.SeqLen - p.End + 1, p.SeqLen - p.Start
}

// WritePair writes the forward and reverse-complement blocks for p.
func WritePair(w io.Writer, p extract.Pair) error {
	fs, fe := ForwardRange(p)
	rs, re := RevCompRange(p)
	rc := p.Name + RevCompSuffix
	_, err := fmt.Fprintf(w,
		">%s range=%s:%d-%d %s\n%s\n>%s range=%s:%d-%d %s\n%s\n",
		p.Name, p.Name, fs, fe, HeaderTail, p.Forward,
		rc, rc, rs, re, HeaderTail, p.RevComp,
	)
	return err
}
