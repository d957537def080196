// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"seqextract-core/coords"
	"seqextract-core/extract"
	"seqextract-core/naming"
	"seqextract/internal/cli"
	"seqextract/internal/cmdutil"
	"seqextract/internal/pipeline"
	"seqextract/internal/runutil"
	"seqextract/internal/seqsource"
	"seqextract/internal/version"
	"seqextract/internal/writers"
)

const progName = "seqextract"

// writerQueue is how many pairs may wait on the output goroutine.
const writerQueue = 16

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(progName)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage(fs, stdout, stderr, cmdutil.ExitOK)
		}
		cmdutil.Errorf(stderr, "%v", err)
		return usage(fs, stderr, stderr, cmdutil.ExitUsage)
	}
	if opts.Version {
		if _, err := fmt.Fprintf(stdout, "%s version %s\n", progName, version.Version); err != nil && !writers.IsBrokenPipe(err) {
			cmdutil.Errorf(stderr, "%v", err)
			return cmdutil.ExitRuntime
		}
		return cmdutil.ExitOK
	}

	warns, err := runutil.ValidateLengths(opts.MinLen, opts.MaxLen, opts.Prefix, opts.Suffix)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return cmdutil.ExitUsage
	}
	for _, w := range warns {
		cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
	}

	return run(parent, opts, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func usage(fs *flag.FlagSet, dst, stderr io.Writer, code int) int {
	bw := bufio.NewWriter(dst)
	fs.SetOutput(bw)
	fs.Usage()
	if err := bw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		cmdutil.Errorf(stderr, "%v", err)
		return cmdutil.ExitRuntime
	}
	return code
}

// NewProvider assembles the sequence sources: an optional .2bit genome,
// then the folder cache (with an optional downloader), behind an LRU.
func NewProvider(o cli.Options) seqsource.Provider {
	var fetcher seqsource.Fetcher
	if o.FetchURL != "" {
		fetcher = seqsource.NewHTTPFetcher(o.FetchURL, o.FetchTimeout)
	}
	var chain seqsource.Chain
	if o.TwoBit != "" {
		chain = append(chain, seqsource.NewTwoBit(o.TwoBit))
	}
	chain = append(chain, seqsource.NewFolder(o.Folder, fetcher))
	return seqsource.NewCached(chain, o.CacheSize)
}

func run(ctx context.Context, o cli.Options, stdout, stderr io.Writer) int {
	var dst io.Writer = stdout
	var file *writers.LazyFile
	if o.Output != "-" {
		file = writers.NewLazyFile(o.Output)
		dst = file
	}
	w := writers.StartRecordWriter(dst, writerQueue)

	cfg := pipeline.Config{
		Syntax:  o.Syntax,
		Padding: coords.Padding{Prefix: o.Prefix, Suffix: o.Suffix},
		Bounds:  extract.Bounds{Min: o.MinLen, Max: o.MaxLen},
		Warn:    cmdutil.Warner(stderr, o.Quiet),
	}
	_, perr := pipeline.Run(ctx, cfg, o.InputFiles, NewProvider(o), naming.NewRegistry(), w.Send)

	werr := w.Close()
	if file != nil {
		if cerr := file.Close(); cerr != nil && werr == nil {
			werr = cerr
		}
	}

	err := perr
	if werr != nil && (err == nil || writers.IsBrokenPipe(werr)) {
		err = werr
	}
	code := cmdutil.ExitCode(err, w.Written(), o.NoMatchExitCode)
	if code == cmdutil.ExitRuntime {
		cmdutil.Errorf(stderr, "%v", err)
	}
	return code
}
