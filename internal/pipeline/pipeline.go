// internal/pipeline/pipeline.go
package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"seqextract-core/coords"
	"seqextract-core/extract"
	"seqextract-core/fasta"
	"seqextract-core/naming"
	"seqextract/internal/seqsource"
)

// maxLine bounds a single input line; bracket headers can be long.
const maxLine = 64 << 20

// Config controls how lines are interpreted and filtered.
type Config struct {
	Syntax  coords.Syntax
	Padding coords.Padding
	Bounds  extract.Bounds

	// Warn receives non-fatal diagnostics (skipped header lines). May be nil.
	Warn func(format string, a ...any)
	// OnState observes every state transition. May be nil.
	OnState func(State)
}

// Stats summarizes a run.
type Stats struct {
	Lines    int // non-blank lines read
	Written  int // pairs accepted by the sink
	Filtered int // resolved but outside length bounds
	Skipped  int // lines carrying no usable record
	State    State
}

// Sink accepts one named pair. It is called from the run goroutine only.
type Sink func(context.Context, extract.Pair) error

type runner struct {
	cfg   Config
	prov  seqsource.Provider
	names *naming.Registry
	sink  Sink
	stats Stats
}

// Run processes inputs in order against prov, reserving output names in
// names and handing accepted pairs to sink. prov is closed exactly once
// before Run returns, whatever the outcome.
func Run(
	ctx context.Context,
	cfg Config,
	inputs []string,
	prov seqsource.Provider,
	names *naming.Registry,
	sink Sink,
) (st Stats, err error) {
	r := &runner{cfg: cfg, prov: prov, names: names, sink: sink}
	r.enter(Idle)
	defer func() {
		if cerr := prov.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("release sequence provider: %w", cerr)
		}
		if err != nil {
			r.enter(Aborted)
		} else {
			r.enter(Done)
		}
		st = r.stats
	}()

	if names == nil {
		return r.stats, errors.New("pipeline: nil name registry")
	}
	for _, in := range inputs {
		if err := r.file(ctx, in); err != nil {
			return r.stats, err
		}
	}
	return r.stats, nil
}

func (r *runner) enter(s State) {
	r.stats.State = s
	if r.cfg.OnState != nil {
		r.cfg.OnState(s)
	}
}

func (r *runner) warn(format string, a ...any) {
	if r.cfg.Warn != nil {
		r.cfg.Warn(format, a...)
	}
}

func (r *runner) file(ctx context.Context, path string) error {
	rc, err := fasta.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)
	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.enter(Reading)
		if !sc.Scan() {
			break
		}
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		r.stats.Lines++
		if err := r.line(ctx, line); err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

func (r *runner) line(ctx context.Context, line string) error {
	r.enter(ParsingLine)
	rec, ok, err := coords.ParseLine(line, r.cfg.Syntax, r.cfg.Padding)
	if err != nil {
		return err
	}
	if !ok || rec.Name == "" {
		r.stats.Skipped++
		if strings.HasPrefix(line, ">") {
			r.warn("no name:start-end token in header %q; skipped", line)
		}
		return nil
	}

	r.enter(FetchingSequence)
	seq, err := r.prov.Resolve(ctx, rec.Name)
	if err != nil {
		return err
	}

	r.enter(Extracting)
	pair, ok := extract.Extract(rec, seq, r.cfg.Bounds)
	if !ok {
		r.stats.Filtered++
		return nil
	}

	r.enter(Deduplicating)
	pair = pair.Named(r.names.Reserve(rec.Name))

	r.enter(Writing)
	if err := r.sink(ctx, pair); err != nil {
		return err
	}
	r.stats.Written++
	return nil
}
