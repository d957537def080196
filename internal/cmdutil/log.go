// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	warnTag  = color.New(color.FgYellow, color.Bold)
	errorTag = color.New(color.FgRed, color.Bold)
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "%s "+format+"\n", append([]any{warnTag.Sprint("WARN:")}, a...)...)
}

// Errorf prints a fatal diagnostic; --quiet never hides it.
func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "%s "+format+"\n", append([]any{errorTag.Sprint("error:")}, a...)...)
}

// Warner binds Warnf to dst for callers that take a printf-style hook.
func Warner(dst io.Writer, quiet bool) func(string, ...any) {
	return func(format string, a ...any) { Warnf(dst, quiet, format, a...) }
}
