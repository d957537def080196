// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"seqextract-core/coords"
	"seqextract/internal/cliutil"
)

// Defaults for the length window and destinations.
const (
	DefaultMinLength    = 1
	DefaultMaxLength    = 1000
	DefaultFolder       = "."
	DefaultOutput       = "output.fa"
	DefaultFetchTimeout = 60 * time.Second
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	InputFiles []string // --input-file first, then positionals in order
	Format     string
	Syntax     coords.Syntax

	// Window
	MinLen int
	MaxLen int
	Prefix int
	Suffix int

	// Sequence sources
	Folder       string
	TwoBit       string
	FetchURL     string
	FetchTimeout time.Duration
	CacheSize    int

	// Output
	Output          string
	NoMatchExitCode int
	Quiet           bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	installUsage(fs, name)
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var input string
	var help bool

	fs.StringVar(&input, "input-file", "", "coordinate file ('-' = stdin, .gz ok) [*]")
	fs.StringVar(&input, "i", "", "alias of --input-file")
	fs.StringVar(&opt.Format, "input-format", "", "coordinate syntax: "+coords.FormatFASTA+" | "+coords.FormatTSV+" [*]")
	fs.StringVar(&opt.Format, "f", "", "alias of --input-format")

	fs.IntVar(&opt.MinLen, "min-length", DefaultMinLength, fmt.Sprintf("minimum span after clamping [%d]", DefaultMinLength))
	fs.IntVar(&opt.MinLen, "min", DefaultMinLength, "alias of --min-length")
	fs.IntVar(&opt.MaxLen, "max-length", DefaultMaxLength, fmt.Sprintf("maximum span after clamping [%d]", DefaultMaxLength))
	fs.IntVar(&opt.MaxLen, "max", DefaultMaxLength, "alias of --max-length")
	fs.IntVar(&opt.Prefix, "prefix-length", 0, "bases added before start [0]")
	fs.IntVar(&opt.Prefix, "p", 0, "alias of --prefix-length")
	fs.IntVar(&opt.Suffix, "suffix-length", 0, "bases added after end [0]")
	fs.IntVar(&opt.Suffix, "s", 0, "alias of --suffix-length")

	fs.StringVar(&opt.Folder, "folder", DefaultFolder, "sequence cache folder (<name>_sequences.fasta, <name>.zip) ["+DefaultFolder+"]")
	fs.StringVar(&opt.Folder, "d", DefaultFolder, "alias of --folder")
	fs.StringVar(&opt.TwoBit, "twobit", "", "optional .2bit genome consulted before the folder")
	fs.StringVar(&opt.FetchURL, "fetch-url", "", "URL template for <name>.zip downloads, e.g. https://host/{name}.zip")
	fs.DurationVar(&opt.FetchTimeout, "fetch-timeout", DefaultFetchTimeout, "timeout per download [60s]")
	fs.IntVar(&opt.CacheSize, "cache-size", 0, "sequences kept in memory (0 = default) [0]")

	fs.StringVar(&opt.Output, "output-file", DefaultOutput, "output FASTA ('-' = stdout) ["+DefaultOutput+"]")
	fs.StringVar(&opt.Output, "o", DefaultOutput, "alias of --output-file")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no record is written [0]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")
	fs.BoolVar(&help, "help", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	extra, err := cliutil.ExpandPositionals(append(posArgs, fs.Args()...))
	if err != nil {
		return opt, err
	}
	if input != "" {
		opt.InputFiles = append(opt.InputFiles, input)
	}
	opt.InputFiles = append(opt.InputFiles, extra...)

	// Validation
	if len(opt.InputFiles) == 0 {
		return opt, errors.New("--input-file is required")
	}
	if strings.TrimSpace(opt.Format) == "" {
		return opt, errors.New("--input-format is required (" + coords.FormatFASTA + " | " + coords.FormatTSV + ")")
	}
	if opt.Syntax, err = coords.ParseSyntax(opt.Format); err != nil {
		return opt, err
	}
	for _, c := range []struct {
		name string
		v    int
	}{
		{"--min-length", opt.MinLen}, {"--max-length", opt.MaxLen},
		{"--prefix-length", opt.Prefix}, {"--suffix-length", opt.Suffix},
		{"--cache-size", opt.CacheSize},
	} {
		if c.v < 0 {
			return opt, fmt.Errorf("%s must be ≥ 0", c.name)
		}
	}
	if opt.FetchURL != "" && !strings.Contains(opt.FetchURL, "{name}") {
		return opt, errors.New("--fetch-url must contain {name}")
	}
	if opt.FetchTimeout <= 0 {
		return opt, errors.New("--fetch-timeout must be > 0")
	}
	if opt.Output == "" {
		return opt, errors.New("--output-file must not be empty")
	}
	return opt, nil
}
