// core/extract/rc.go
package extract

// gapBase stands in for anything outside A/C/G/T.
const gapBase = '_'

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = gapBase
	}
	for _, p := range [][2]byte{{'A', 'T'}, {'T', 'A'}, {'C', 'G'}, {'G', 'C'}} {
		complement[p[0]] = p[1]
		complement[p[0]+'a'-'A'] = p[1]
	}
}

// RevComp returns the reverse complement of seq. Lookup is case-insensitive,
// the result is upper-case, and non-ACGT bytes become '_'.
func RevComp(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return string(out)
}
