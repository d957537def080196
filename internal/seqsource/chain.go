// internal/seqsource/chain.go
package seqsource

import (
	"context"
	"errors"
)

// Chain asks each provider in turn; a provider answering ErrNotFound passes
// the name on, any other error stops the search.
type Chain []Provider

func (c Chain) Resolve(ctx context.Context, name string) (string, error) {
	last := error(ErrNotFound)
	for _, p := range c {
		seq, err := p.Resolve(ctx, name)
		if err == nil {
			return seq, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return "", err
		}
		last = err
	}
	return "", retrievalErr(name, last)
}

// Close closes every provider and returns the first error.
func (c Chain) Close() error {
	var first error
	for _, p := range c {
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
