// internal/runutil/bounds.go
package runutil

import "fmt"

// ValidateLengths checks the numeric run options. Negative values are errors;
// min > max is allowed (every record is then filtered) but reported as a warning.
func ValidateLengths(minLen, maxLen, prefix, suffix int) (warns []string, err error) {
	switch {
	case minLen < 0:
		return nil, fmt.Errorf("--min-length must be ≥ 0 (got %d)", minLen)
	case maxLen < 0:
		return nil, fmt.Errorf("--max-length must be ≥ 0 (got %d)", maxLen)
	case prefix < 0:
		return nil, fmt.Errorf("--prefix-length must be ≥ 0 (got %d)", prefix)
	case suffix < 0:
		return nil, fmt.Errorf("--suffix-length must be ≥ 0 (got %d)", suffix)
	}
	if minLen > maxLen {
		warns = append(warns, fmt.Sprintf("--min-length (%d) exceeds --max-length (%d); no record can pass", minLen, maxLen))
	}
	return warns, nil
}
