// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"seqextract/internal/version"
)

// installUsage replaces fs.Usage with a grouped help screen; aliases are
// shown next to their long names instead of as separate entries.
func installUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – padded subsequence and reverse-complement extractor\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage of %s:\n", name)
		fmt.Fprintf(out, "  %s -i COORDS -f fasta|tsv [flags] [more-coord-files...]\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --input-file file        Coordinate file, '-' for STDIN, .gz accepted [*]")
		fmt.Fprintln(out, "  -f, --input-format string    fasta (>name:start-end) | tsv (name<TAB>start<TAB>end) [*]")

		fmt.Fprintln(out, "\nWindow:")
		fmt.Fprintf(out, "  -min, --min-length int       Minimum span after clamping [%s]\n", def("min-length"))
		fmt.Fprintf(out, "  -max, --max-length int       Maximum span after clamping [%s]\n", def("max-length"))
		fmt.Fprintf(out, "  -p, --prefix-length int      Bases added before start [%s]\n", def("prefix-length"))
		fmt.Fprintf(out, "  -s, --suffix-length int      Bases added after end [%s]\n", def("suffix-length"))

		fmt.Fprintln(out, "\nSequences:")
		fmt.Fprintf(out, "  -d, --folder dir             Cache of <name>_sequences.fasta / <name>.zip [%s]\n", def("folder"))
		fmt.Fprintln(out, "      --twobit file            .2bit genome consulted before the folder")
		fmt.Fprintln(out, "      --fetch-url string       Download template for <name>.zip, must contain {name}")
		fmt.Fprintf(out, "      --fetch-timeout dur      Timeout per download [%s]\n", def("fetch-timeout"))
		fmt.Fprintf(out, "      --cache-size int         Sequences kept in memory (0=default) [%s]\n", def("cache-size"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output-file file       Output FASTA, '-' for STDOUT [%s]\n", def("output-file"))
		fmt.Fprintf(out, "      --no-match-exit-code int Exit code when no record is written [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                  Suppress warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version                Print version and exit")
		fmt.Fprintln(out, "  -h, --help                   Show this help and exit")

		fmt.Fprintln(out, "\nExamples:")
		fmt.Fprintf(out, "  %s -i regions.tsv -f tsv -p 50 -s 50 -d refs -o regions.fa\n", name)
		fmt.Fprintf(out, "  zcat hits.fa.gz | %s -i - -f fasta -o - | head\n", name)
	}
}
