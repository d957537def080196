// internal/writers/file.go
package writers

import "os"

// LazyFile creates (or truncates) Path on the first Write; a run that
// accepts no record leaves the destination untouched.
type LazyFile struct {
	Path string
	f    *os.File
}

func NewLazyFile(path string) *LazyFile { return &LazyFile{Path: path} }

func (l *LazyFile) Write(b []byte) (int, error) {
	if l.f == nil {
		f, err := os.OpenFile(l.Path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return 0, err
		}
		l.f = f
	}
	return l.f.Write(b)
}

// Opened reports whether the destination has been created.
func (l *LazyFile) Opened() bool { return l.f != nil }

func (l *LazyFile) Close() error {
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}
