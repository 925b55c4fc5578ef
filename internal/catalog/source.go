package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Source fetches the raw data document
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	// Location describes where the document comes from, for logs
	Location() string
}

// NewSource picks an HTTP source for http(s) URLs and a file source otherwise
func NewSource(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTPSource{URL: location}
	}
	return &FileSource{Path: location}
}

// FileSource reads the document from the local filesystem
type FileSource struct {
	Path string
}

// Fetch reads the whole file
func (f *FileSource) Fetch(_ context.Context) ([]byte, error) {
	return os.ReadFile(f.Path)
}

// Location returns the file path
func (f *FileSource) Location() string {
	return f.Path
}

// HTTPSource fetches the document with a single GET. There is no retry;
// cancellation comes only from the context.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// Fetch performs the GET and returns the body of a 2xx response
func (h *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to load data: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// Location returns the URL
func (h *HTTPSource) Location() string {
	return h.URL
}

// BytesSource serves a document already held in memory
type BytesSource struct {
	Data []byte
	Name string
}

// Fetch returns the held document
func (b *BytesSource) Fetch(_ context.Context) ([]byte, error) {
	return b.Data, nil
}

// Location returns the source name
func (b *BytesSource) Location() string {
	if b.Name == "" {
		return "memory"
	}
	return b.Name
}
