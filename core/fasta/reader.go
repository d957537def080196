// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ErrNoRecord is returned when the input holds no FASTA record.
var ErrNoRecord = errors.New("fasta: no record")

// Record is one parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// ReadFirst parses the first record of r. Sequence lines are concatenated
// with whitespace removed; later records are ignored.
func ReadFirst(r io.Reader) (Record, error) {
	br := bufio.NewReader(r)
	if err := skipToHeader(br); err != nil {
		return Record{}, err
	}

	rd := biofasta.NewReader(br, linear.NewSeq("", nil, alphabet.DNA))
	s, err := rd.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, ErrNoRecord
		}
		return Record{}, fmt.Errorf("fasta read: %w", err)
	}
	ls, ok := s.(*linear.Seq)
	if !ok {
		return Record{}, fmt.Errorf("fasta read: unexpected sequence type %T", s)
	}
	seq := make([]byte, len(ls.Seq))
	for i, l := range ls.Seq {
		seq[i] = byte(l)
	}
	return Record{ID: ls.Name(), Seq: seq}, nil
}

// skipToHeader drops leading blank lines and checks that a '>' header follows.
func skipToHeader(br *bufio.Reader) error {
	for {
		b, err := br.Peek(1)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrNoRecord
			}
			return err
		}
		switch b[0] {
		case '>':
			return nil
		case '\n', '\r', ' ', '\t':
			_, _ = br.ReadByte()
		default:
			line, _ := br.ReadSlice('\n')
			return fmt.Errorf("fasta read: expected '>' header, got %q", bytes.TrimSpace(line))
		}
	}
}
