// internal/cmdutil/exit.go
package cmdutil

import (
	"context"
	"errors"

	"seqextract/internal/writers"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

// ExitCode maps a run outcome to a process exit code. A broken pipe on the
// output is a normal end for a CLI filter.
func ExitCode(err error, written, noMatch int) int {
	switch {
	case err == nil:
		if written == 0 {
			return noMatch
		}
		return ExitOK
	case writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	default:
		return ExitRuntime
	}
}
