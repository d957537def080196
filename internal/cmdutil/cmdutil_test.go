package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/fatih/color"
)

func TestWarnf(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	Warnf(&buf, false, "skipped %q", ">x")
	if got := buf.String(); got != "WARN: skipped \">x\"\n" {
		t.Fatalf("got %q", got)
	}
	buf.Reset()
	Warner(&buf, true)("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("quiet leaked %q", buf.String())
	}
	Errorf(&buf, "boom: %v", errors.New("x"))
	if got := buf.String(); got != "error: boom: x\n" {
		t.Fatalf("got %q", got)
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err     error
		written int
		noMatch int
		want    int
	}{
		{nil, 3, 1, ExitOK},
		{nil, 0, 0, ExitOK},
		{nil, 0, 4, 4},
		{fmt.Errorf("write: %w", syscall.EPIPE), 0, 4, ExitOK},
		{fmt.Errorf("in:3: %w", context.Canceled), 1, 0, ExitCanceled},
		{errors.New("retrieval"), 1, 0, ExitRuntime},
	}
	for i, c := range cases {
		if got := ExitCode(c.err, c.written, c.noMatch); got != c.want {
			t.Errorf("case %d: got %d want %d", i, got, c.want)
		}
	}
}
