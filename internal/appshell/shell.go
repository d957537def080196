// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"seqextract/internal/cmdutil"
)

// RunFunc is the testable body of a command.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main wires signals and process exit around run. SIGINT/SIGTERM cancel
// the context; a run that still reports success after cancellation exits 130.
func Main(run RunFunc) {
	os.Exit(exec(run, os.Args[1:], os.Stdout, os.Stderr))
}

func exec(run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == cmdutil.ExitOK {
		code = cmdutil.ExitCanceled
	}
	return code
}
