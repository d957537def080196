// internal/writers/record.go
package writers

import (
	"bufio"
	"context"
	"io"

	"seqextract-core/extract"
	"seqextract/internal/output"
)

// RecordWriter serializes pairs from a single goroutine in send order.
type RecordWriter struct {
	in      chan extract.Pair
	done    chan struct{}
	err     error
	written int
}

// StartRecordWriter spins up the writer goroutine over out.
func StartRecordWriter(out io.Writer, bufSize int) *RecordWriter {
	if bufSize <= 0 {
		bufSize = 64
	}
	w := &RecordWriter{
		in:   make(chan extract.Pair, bufSize),
		done: make(chan struct{}),
	}
	go w.run(out)
	return w
}

func (w *RecordWriter) run(out io.Writer) {
	defer close(w.done)
	bw := bufio.NewWriterSize(out, 64<<10)
	for p := range w.in {
		if err := output.WritePair(bw, p); err != nil {
			w.err = err
			return
		}
		// one flush per pair: records are durable as soon as they are accepted
		if err := bw.Flush(); err != nil {
			w.err = err
			return
		}
		w.written++
	}
}

// Send queues p. It fails fast once the writer has stopped on an error.
func (w *RecordWriter) Send(ctx context.Context, p extract.Pair) error {
	select {
	case <-w.done:
		return w.failure()
	default:
	}
	select {
	case w.in <- p:
		return nil
	case <-w.done:
		return w.failure()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains queued pairs and returns the first write error.
func (w *RecordWriter) Close() error {
	close(w.in)
	<-w.done
	return w.err
}

// Written is the number of pairs flushed; valid after Close.
func (w *RecordWriter) Written() int {
	<-w.done
	return w.written
}

func (w *RecordWriter) failure() error {
	if w.err != nil {
		return w.err
	}
	return io.ErrClosedPipe
}
