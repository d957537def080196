package fasta

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>seq1 some description
ACGT
acgt
>seq2
NNnn
`

// writeGz creates a gzipped file with provided data, returns the file path.
func writeGz(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestReadFirst(t *testing.T) {
	rec, err := ReadFirst(strings.NewReader(plain))
	if err != nil {
		t.Fatalf("ReadFirst: %v", err)
	}
	if rec.ID != "seq1" {
		t.Errorf("ID = %q, want seq1", rec.ID)
	}
	if string(rec.Seq) != "ACGTacgt" {
		t.Errorf("Seq = %q, want ACGTacgt", rec.Seq)
	}
}

func TestReadFirst_LeadingBlankLines(t *testing.T) {
	rec, err := ReadFirst(strings.NewReader("\n\n>x\nAC\nGT\n"))
	if err != nil || string(rec.Seq) != "ACGT" {
		t.Fatalf("rec=%+v err=%v", rec, err)
	}
}

func TestReadFirst_Empty(t *testing.T) {
	if _, err := ReadFirst(strings.NewReader("")); !errors.Is(err, ErrNoRecord) {
		t.Fatalf("want ErrNoRecord, got %v", err)
	}
	if _, err := ReadFirst(strings.NewReader("\n\n")); !errors.Is(err, ErrNoRecord) {
		t.Fatalf("want ErrNoRecord for blank input, got %v", err)
	}
}

func TestReadFirst_NoHeader(t *testing.T) {
	_, err := ReadFirst(strings.NewReader("ACGT\n"))
	if err == nil || errors.Is(err, ErrNoRecord) {
		t.Fatalf("want header error, got %v", err)
	}
}

func TestOpenGzip(t *testing.T) {
	gzPath := writeGz(t, "test.fa.gz", plain)
	rc, err := Open(gzPath)
	if err != nil {
		t.Fatalf("open gz: %v", err)
	}
	defer func() { _ = rc.Close() }()
	rec, err := ReadFirst(rc)
	if err != nil || rec.ID != "seq1" {
		t.Fatalf("gzip parse failed: rec=%+v err=%v", rec, err)
	}
}

// Gzip detection by magic number, without a .gz suffix.
func TestOpenGzipMagic(t *testing.T) {
	path := writeGz(t, "noext.fasta", plain)
	rc, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = rc.Close() }()
	b, _ := io.ReadAll(rc)
	if string(b) != plain {
		t.Fatalf("magic-detected gzip not decompressed: %q", b)
	}
}

func TestOpenStdin(t *testing.T) {
	orig := os.Stdin
	r, w, _ := os.Pipe()
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	rc, err := Open("-")
	if err != nil {
		t.Fatalf("open stdin: %v", err)
	}
	rec, err := ReadFirst(rc)
	if err != nil || rec.ID != "seq1" {
		t.Fatalf("stdin parse failed: rec=%+v err=%v", rec, err)
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.fa")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want ErrNotExist, got %v", err)
	}
}
