// internal/seqsource/twobit.go
package seqsource

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/mendelics/twobit"
)

var errProviderClosed = errors.New("provider closed")

// TwoBit serves sequences from a UCSC .2bit genome. The file is opened and
// indexed on the first Resolve.
type TwoBit struct {
	Path string

	mu     sync.Mutex
	fh     *os.File
	rd     *twobit.Reader
	names  map[string]struct{}
	closed bool
}

func NewTwoBit(path string) *TwoBit { return &TwoBit{Path: path} }

func (t *TwoBit) open() error {
	if t.rd != nil {
		return nil
	}
	fh, err := os.Open(t.Path)
	if err != nil {
		return err
	}
	rd, err := twobit.NewReader(fh)
	if err != nil {
		_ = fh.Close()
		return fmt.Errorf("%s: %w", t.Path, err)
	}
	names := make(map[string]struct{}, rd.Count())
	for _, n := range rd.Names() {
		names[n] = struct{}{}
	}
	t.fh, t.rd, t.names = fh, rd, names
	return nil
}

func (t *TwoBit) Resolve(_ context.Context, name string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return "", retrievalErr(name, errProviderClosed)
	}
	if err := t.open(); err != nil {
		return "", retrievalErr(name, err)
	}
	if _, ok := t.names[name]; !ok {
		return "", retrievalErr(name, fmt.Errorf("%w in %s", ErrNotFound, t.Path))
	}
	n, err := t.rd.Length(name)
	if err != nil {
		return "", retrievalErr(name, err)
	}
	if n == 0 {
		return "", retrievalErr(name, fmt.Errorf("%w in %s", ErrEmpty, t.Path))
	}
	b, err := t.rd.Read(name)
	if err != nil {
		return "", retrievalErr(name, err)
	}
	return string(b), nil
}

// Close releases the genome file; safe to call more than once.
func (t *TwoBit) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	if t.fh == nil {
		return nil
	}
	err := t.fh.Close()
	t.fh, t.rd, t.names = nil, nil, nil
	return err
}
