// core/extract/extract.go
package extract

import (
	"github.com/cznic/mathutil"

	"seqextract-core/coords"
)

// Bounds is an inclusive [Min, Max] filter on the clamped span.
type Bounds struct {
	Min int
	Max int
}

// Accepts reports whether span lies within b.
func (b Bounds) Accepts(span int) bool {
	return span >= b.Min && span <= b.Max
}

// Pair is one extracted subsequence and its reverse complement.
// Start/End are post-clamp, 0-based half-open; SeqLen is the full
// reference length. Name is the output identifier, empty until a
// registry assigns one.
type Pair struct {
	Name    string
	Forward string
	RevComp string
	Start   int
	End     int
	SeqLen  int
	Source  string // reference name the slice came from
}

// Named returns a copy of p carrying the output name.
func (p Pair) Named(name string) Pair {
	p.Name = name
	return p
}

// Clamp bounds start to >= 0 and end to <= seqLen, independently.
// The result may still have start > end; callers filter on the span.
func Clamp(start, end, seqLen int) (int, int) {
	return mathutil.Max(start, 0), mathutil.Min(end, seqLen)
}

// Extract clamps rec against seq, filters by b, and slices. ok=false means
// the record was filtered out; that is not an error.
func Extract(rec coords.Record, seq string, b Bounds) (Pair, bool) {
	start, end := Clamp(rec.Start, rec.End, len(seq))
	span := end - start
	if span < 0 || !b.Accepts(span) {
		return Pair{}, false
	}
	fwd := seq[start:end]
	return Pair{
		Forward: fwd,
		RevComp: RevComp(fwd),
		Start:   start,
		End:     end,
		SeqLen:  len(seq),
		Source:  rec.Name,
	}, true
}
