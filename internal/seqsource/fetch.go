// internal/seqsource/fetch.go
package seqsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// NamePlaceholder is substituted with the (path-escaped) sequence name.
const NamePlaceholder = "{name}"

var errFetcherClosed = errors.New("fetcher closed")

// HTTPFetcher downloads sequence archives from a URL template such as
// "https://example.org/seq/{name}.zip". The HTTP client is created on the
// first Fetch and its idle connections are dropped on Close.
type HTTPFetcher struct {
	URL     string
	Timeout time.Duration

	mu     sync.Mutex
	client *http.Client
	closed bool
}

func NewHTTPFetcher(urlTemplate string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{URL: urlTemplate, Timeout: timeout}
}

func (h *HTTPFetcher) acquire() (*http.Client, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, errFetcherClosed
	}
	if h.client == nil {
		h.client = &http.Client{Timeout: h.Timeout}
	}
	return h.client, nil
}

// Fetch GETs the archive for name and stores it at dst. The body goes to a
// temporary file first so an interrupted download never leaves a partial dst.
func (h *HTTPFetcher) Fetch(ctx context.Context, name, dst string) error {
	hc, err := h.acquire()
	if err != nil {
		return err
	}
	u := strings.ReplaceAll(h.URL, NamePlaceholder, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: GET %s: %s", ErrNotFound, u, resp.Status)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("GET %s: %s", u, resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".fetch-*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("download %s: %w", u, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}

// Close is safe to call more than once.
func (h *HTTPFetcher) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	if h.client != nil {
		h.client.CloseIdleConnections()
	}
	return nil
}
