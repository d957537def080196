package seqsource

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// writeZip creates a zip at path with the given member name → content.
func writeZip(t *testing.T, path string, members map[string]string) {
	t.Helper()
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}
	zw := zip.NewWriter(fh)
	for name, data := range members {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip member %s: %v", name, err)
		}
		if _, err := w.Write([]byte(data)); err != nil {
			t.Fatalf("zip write: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("file close: %v", err)
	}
}

func zipBytes(t *testing.T, members map[string]string) []byte {
	t.Helper()
	p := filepath.Join(t.TempDir(), "tmp.zip")
	writeZip(t, p, members)
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// fakeProvider serves a fixed map and counts calls.
type fakeProvider struct {
	seqs   map[string]string
	calls  int
	closed int
}

func (f *fakeProvider) Resolve(_ context.Context, name string) (string, error) {
	f.calls++
	if s, ok := f.seqs[name]; ok {
		return s, nil
	}
	return "", retrievalErr(name, ErrNotFound)
}

func (f *fakeProvider) Close() error { f.closed++; return nil }
