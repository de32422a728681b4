// internal/dataset/fetch.go
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// ErrFetch marks a dataset that could not be retrieved.
var ErrFetch = errors.New("fetch failed")

// FetchError reports a failed retrieval of one dataset source. Status is the
// HTTP status line for non-success responses and empty otherwise.
type FetchError struct {
	Source string
	Status string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("fetch %s: unexpected status %s", e.Source, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

// Unwrap lets errors.Is match ErrFetch and the underlying cause.
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFetch}
	}
	return []error{ErrFetch, e.Err}
}

// Fetcher retrieves the raw bytes of a dataset source.
type Fetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

// SourceFetcher reads http(s) URLs with an HTTP client and everything else
// from the local filesystem.
type SourceFetcher struct {
	Client *http.Client
}

// NewSourceFetcher returns a fetcher using client, or http.DefaultClient if nil.
// No timeout is applied beyond what the client carries.
func NewSourceFetcher(client *http.Client) *SourceFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &SourceFetcher{Client: client}
}

// IsRemote reports whether source is an http(s) URL.
func IsRemote(source string) bool {
	lower := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Fetch implements Fetcher.
func (f *SourceFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	if IsRemote(source) {
		return f.fetchHTTP(ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}
	return data, nil
}

func (f *SourceFetcher) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Source: url, Err: err}
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Source: url, Status: resp.Status}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: url, Err: err}
	}
	return data, nil
}
