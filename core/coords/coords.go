// core/coords/coords.go
package coords

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedRecord marks an input line (or syntax selector) that cannot be
// turned into a coordinate record. Callers treat it as fatal.
var ErrMalformedRecord = errors.New("malformed record")

// Syntax selects how a raw input line is interpreted.
type Syntax int

const (
	// Bracket is a FASTA-style header: ">chr1:100-200 ...". Only the first
	// name:start-end token on the line is used.
	Bracket Syntax = iota + 1
	// Tabular is a BED-like row: "chr1\t100\t200[\t...]".
	Tabular
)

// Command-line names of the two syntaxes.
const (
	FormatFASTA = "fasta"
	FormatTSV   = "tsv"
)

func (s Syntax) String() string {
	switch s {
	case Bracket:
		return FormatFASTA
	case Tabular:
		return FormatTSV
	default:
		return fmt.Sprintf("Syntax(%d)", int(s))
	}
}

// ParseSyntax maps "fasta" / "tsv" to a Syntax.
func ParseSyntax(name string) (Syntax, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatFASTA:
		return Bracket, nil
	case FormatTSV:
		return Tabular, nil
	}
	return 0, fmt.Errorf("%w: unknown input format %q (want %s | %s)", ErrMalformedRecord, name, FormatFASTA, FormatTSV)
}

// Record is a named half-open 0-based interval. After padding Start may be
// negative and End may exceed the sequence; clamping happens downstream.
type Record struct {
	Name  string
	Start int
	End   int
}

// Span is End-Start (may be negative before clamping).
func (r Record) Span() int { return r.End - r.Start }

// Padding widens a record: Prefix is taken off Start, Suffix added to End.
type Padding struct {
	Prefix int
	Suffix int
}

// Apply returns r widened by p.
func (p Padding) Apply(r Record) Record {
	r.Start -= p.Prefix
	r.End += p.Suffix
	return r
}

// headerMarker starts every bracket-form line.
const headerMarker = '>'

var tokenRE = regexp.MustCompile(`([\w-]+):(\d+)-(\d+)`)

// ParseLine turns one trimmed, non-empty line into a padded Record.
// ok=false (with nil error) means the line carries no record and should be
// skipped. Tabular lines with fewer than three fields, or with non-integer
// coordinates, return ErrMalformedRecord.
func ParseLine(line string, syn Syntax, pad Padding) (rec Record, ok bool, err error) {
	switch syn {
	case Bracket:
		rec, ok = parseBracket(line)
	case Tabular:
		rec, err = parseTabular(line)
		ok = err == nil
	default:
		return Record{}, false, fmt.Errorf("%w: unsupported syntax %v", ErrMalformedRecord, syn)
	}
	if !ok || err != nil {
		return Record{}, false, err
	}
	return pad.Apply(rec), true, nil
}

func parseBracket(line string) (Record, bool) {
	if len(line) == 0 || line[0] != headerMarker {
		return Record{}, false
	}
	m := tokenRE.FindStringSubmatch(strings.TrimLeft(line, string(headerMarker)))
	if m == nil {
		return Record{}, false
	}
	start, err1 := strconv.Atoi(m[2])
	end, err2 := strconv.Atoi(m[3])
	if err1 != nil || err2 != nil {
		// only reachable on integer overflow
		return Record{}, false
	}
	return Record{Name: m[1], Start: start, End: end}, true
}

func parseTabular(line string) (Record, error) {
	f := strings.Split(line, "\t")
	if len(f) < 3 {
		return Record{}, fmt.Errorf("%w: want at least 3 tab-separated fields, got %d", ErrMalformedRecord, len(f))
	}
	start, err := strconv.Atoi(strings.TrimSpace(f[1]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: bad start %q", ErrMalformedRecord, f[1])
	}
	end, err := strconv.Atoi(strings.TrimSpace(f[2]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: bad end %q", ErrMalformedRecord, f[2])
	}
	return Record{Name: strings.TrimSpace(f[0]), Start: start, End: end}, nil
}
