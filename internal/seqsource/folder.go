// internal/seqsource/folder.go
package seqsource

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"seqextract-core/fasta"
)

// File names inside a sequence folder.
const (
	SequenceSuffix = "_sequences.fasta"
	ArchiveSuffix  = ".zip"
)

// Fetcher downloads the archive for name to dst.
type Fetcher interface {
	Fetch(ctx context.Context, name, dst string) error
	Close() error
}

// Folder is a cache-or-fetch provider over a directory:
//
//	<dir>/<name>_sequences.fasta   used as is
//	<dir>/<name>.zip               extracted into <dir>, then used
//	Fetcher (optional)             downloads <name>.zip on a miss
type Folder struct {
	Dir     string
	Fetcher Fetcher
}

// NewFolder returns a Folder provider; fetcher may be nil.
func NewFolder(dir string, fetcher Fetcher) *Folder {
	if dir == "" {
		dir = "."
	}
	return &Folder{Dir: dir, Fetcher: fetcher}
}

// SequencePath is where the FASTA for name is cached.
func (f *Folder) SequencePath(name string) string {
	return filepath.Join(f.Dir, name+SequenceSuffix)
}

// ArchivePath is where the downloaded archive for name is kept.
func (f *Folder) ArchivePath(name string) string {
	return filepath.Join(f.Dir, name+ArchiveSuffix)
}

func (f *Folder) Resolve(ctx context.Context, name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", retrievalErr(name, err)
	}
	seqPath := f.SequencePath(name)
	if !isFile(seqPath) {
		arc := f.ArchivePath(name)
		if !isFile(arc) {
			if f.Fetcher == nil {
				return "", retrievalErr(name, fmt.Errorf("%w: neither %s nor %s exists", ErrNotFound, seqPath, arc))
			}
			if err := f.Fetcher.Fetch(ctx, name, arc); err != nil {
				return "", retrievalErr(name, err)
			}
		}
		if err := Unzip(arc, f.Dir); err != nil {
			return "", retrievalErr(name, fmt.Errorf("extract %s: %w", arc, err))
		}
		if !isFile(seqPath) {
			return "", retrievalErr(name, fmt.Errorf("%w: %s does not contain %s", ErrNotFound, arc, filepath.Base(seqPath)))
		}
	}
	return readSequence(name, seqPath)
}

// Close releases the fetcher, if any.
func (f *Folder) Close() error {
	if f.Fetcher == nil {
		return nil
	}
	return f.Fetcher.Close()
}

func readSequence(name, path string) (string, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return "", retrievalErr(name, err)
	}
	defer func() { _ = rc.Close() }()

	rec, err := fasta.ReadFirst(rc)
	if errors.Is(err, fasta.ErrNoRecord) || (err == nil && len(rec.Seq) == 0) {
		return "", retrievalErr(name, fmt.Errorf("%w in %s", ErrEmpty, path))
	}
	if err != nil {
		return "", retrievalErr(name, fmt.Errorf("%s: %w", path, err))
	}
	return string(rec.Seq), nil
}

// checkName rejects names that would resolve outside the folder.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid sequence name %q", name)
	}
	return nil
}

func isFile(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}
