// internal/seqsource/provider.go
package seqsource

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrRetrieval classifies every failure to produce a sequence.
	ErrRetrieval = errors.New("sequence retrieval failed")
	// ErrNotFound means the provider has no sequence under that name.
	// Chain falls through to the next provider only on this error.
	ErrNotFound = errors.New("sequence not found")
	// ErrEmpty means a sequence was found but holds no bases.
	ErrEmpty = errors.New("empty sequence")
)

// Provider is the capability the pipeline needs.
type Provider interface {
	Resolve(ctx context.Context, name string) (string, error)
	Close() error
}

// RetrievalError carries the sequence name of a failed Resolve.
type RetrievalError struct {
	Name string
	Err  error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieve %q: %v", e.Name, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// Is makes every RetrievalError match ErrRetrieval.
func (e *RetrievalError) Is(target error) bool { return target == ErrRetrieval }

func retrievalErr(name string, err error) error {
	var re *RetrievalError
	if errors.As(err, &re) {
		return err
	}
	return &RetrievalError{Name: name, Err: err}
}
